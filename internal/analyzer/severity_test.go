package analyzer

import "testing"

func TestClassifySignal(t *testing.T) {
	tests := []struct {
		label string
		want  Level
	}{
		{"Niveau 5", LevelCritical},
		{"niveau 4 - harcèlement sévère", LevelSevere},
		{"3", LevelModerate},
		{"NIVEAU 2", LevelLight},
		{"niveau 1 : rien à signaler", LevelNone},
		{"Harcèlement probable", LevelModerate},
		{"harcelement", LevelModerate},
		{"conversation normale", LevelInconclusive},
		{"", LevelInconclusive},
	}

	for _, tt := range tests {
		if got := ClassifySignal(tt.label); got != tt.want {
			t.Errorf("ClassifySignal(%q) = %s, want %s", tt.label, got, tt.want)
		}
	}
}

func TestClassifySignal_HigherMarkerWins(t *testing.T) {
	// Markers are checked from 5 down, so any "5" in the label decides.
	if got := ClassifySignal("niveau 1 sur 5"); got != LevelCritical {
		t.Errorf("expected critical, got %s", got)
	}
}

func TestClassifyHits_Bands(t *testing.T) {
	tests := []struct {
		n    int
		want Level
	}{
		{0, LevelNone},
		{1, LevelLight},
		{2, LevelLight},
		{3, LevelModerate},
		{5, LevelModerate},
		{6, LevelSevere},
		{100, LevelSevere},
	}

	for _, tt := range tests {
		if got := ClassifyHits(tt.n); got != tt.want {
			t.Errorf("ClassifyHits(%d) = %s, want %s", tt.n, got, tt.want)
		}
	}
}

func TestClassifyHits_Monotonic(t *testing.T) {
	prev := ClassifyHits(0)
	for n := 1; n <= 50; n++ {
		got := ClassifyHits(n)
		if got < prev {
			t.Fatalf("level decreased from %s to %s at n=%d", prev, got, n)
		}
		prev = got
	}
}

// The keyword path stops at severe while the direct-signal path reaches
// critical. This asymmetry is kept until product intent is clarified.
func TestClassifyHits_NeverCritical(t *testing.T) {
	for n := 0; n <= 1000; n++ {
		if ClassifyHits(n) == LevelCritical {
			t.Fatalf("keyword path reached critical at n=%d", n)
		}
	}
}

func TestLevelString(t *testing.T) {
	want := map[Level]string{
		LevelNone:         "none",
		LevelLight:        "light",
		LevelModerate:     "moderate",
		LevelSevere:       "severe",
		LevelCritical:     "critical",
		LevelInconclusive: "inconclusive",
	}
	for l, s := range want {
		if l.String() != s {
			t.Errorf("Level(%d).String() = %q, want %q", l, l.String(), s)
		}
	}
}
