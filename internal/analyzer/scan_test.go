package analyzer

import (
	"reflect"
	"testing"
)

func TestScan_CaseInsensitiveHit(t *testing.T) {
	hits := DefaultScanner().Scan([]Message{{Content: "Tu es vraiment IDIOT"}})

	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	if !reflect.DeepEqual(hits[0].Terms, []string{"idiot"}) {
		t.Errorf("terms = %v, want [idiot]", hits[0].Terms)
	}
	if hits[0].Content != "Tu es vraiment IDIOT" {
		t.Errorf("expected original content preserved, got %q", hits[0].Content)
	}
}

func TestScan_IndicesAreOneBasedAndSkipCleanMessages(t *testing.T) {
	msgs := []Message{
		{Content: "bonjour"},
		{Content: "t'es nul"},
		{Content: "merci"},
		{Content: "dégage"},
	}

	hits := DefaultScanner().Scan(msgs)

	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d: %+v", len(hits), hits)
	}
	if hits[0].Index != 2 || hits[1].Index != 4 {
		t.Errorf("indices = %d, %d; want 2, 4", hits[0].Index, hits[1].Index)
	}
}

func TestScan_TermsFollowLexiconOrderWithoutDuplicates(t *testing.T) {
	hits := DefaultScanner().Scan([]Message{{Content: "connard, connard, CONNARD"}})

	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	want := []string{"con", "connard"}
	if !reflect.DeepEqual(hits[0].Terms, want) {
		t.Errorf("terms = %v, want %v", hits[0].Terms, want)
	}
}

// Substring matching without word boundaries is a known false-positive
// source: "con" matches inside "continuer".
func TestScan_SubstringFalsePositive(t *testing.T) {
	hits := DefaultScanner().Scan([]Message{{Content: "on va continuer demain"}})

	if len(hits) != 1 {
		t.Fatalf("expected the known false positive, got %d hits", len(hits))
	}
	if !reflect.DeepEqual(hits[0].Terms, []string{"con"}) {
		t.Errorf("terms = %v, want [con]", hits[0].Terms)
	}
}

func TestScan_SerializedContentIsScanned(t *testing.T) {
	msgs := extract(t, `[{"user":"a","meta":{"note":"espèce d'abruti"}}]`)

	hits := DefaultScanner().Scan(msgs)

	if len(hits) != 1 || hits[0].Terms[0] != "abruti" {
		t.Errorf("expected serialized message to be scanned, got %+v", hits)
	}
}

func TestScan_NoMessages(t *testing.T) {
	if hits := DefaultScanner().Scan(nil); len(hits) != 0 {
		t.Errorf("expected no hits, got %+v", hits)
	}
}

func TestScanner_LowercasesAndDedupesTerms(t *testing.T) {
	s := newScanner([]string{"Foo", "foo", "", "BAR"})

	got := s.Match("FOO et bar")
	want := []string{"foo", "bar"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match = %v, want %v", got, want)
	}
}

func TestLexicon_ReturnsCopy(t *testing.T) {
	terms := Lexicon()
	terms[0] = "modifié"

	if Lexicon()[0] == "modifié" {
		t.Error("expected Lexicon to return a copy")
	}
}

func TestLexicon_IsLowercaseAndUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, term := range Lexicon() {
		if seen[term] {
			t.Errorf("duplicate lexicon term %q", term)
		}
		seen[term] = true
		if newScanner([]string{term}).terms[0] != term {
			t.Errorf("lexicon term %q is not lower-case", term)
		}
	}
}
