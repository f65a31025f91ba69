package analyzer

import "strings"

// signalMarkers is checked top to bottom; the first marker found decides.
var signalMarkers = []struct {
	markers []string
	level   Level
}{
	{[]string{"niveau 5", "5"}, LevelCritical},
	{[]string{"niveau 4", "4"}, LevelSevere},
	{[]string{"niveau 3", "3"}, LevelModerate},
	{[]string{"niveau 2", "2"}, LevelLight},
	{[]string{"niveau 1", "1"}, LevelNone},
}

var harassmentStems = []string{"harcèlement", "harcelement", "harcel"}

// ClassifySignal maps a declared result label to a level without looking at
// any message.
func ClassifySignal(label string) Level {
	lower := strings.ToLower(label)
	for _, m := range signalMarkers {
		for _, marker := range m.markers {
			if strings.Contains(lower, marker) {
				return m.level
			}
		}
	}
	for _, stem := range harassmentStems {
		if strings.Contains(lower, stem) {
			return LevelModerate
		}
	}
	return LevelInconclusive
}

// ClassifyHits maps the number of flagged messages to a level. Critical is
// never returned on this path.
func ClassifyHits(n int) Level {
	switch {
	case n <= 0:
		return LevelNone
	case n <= 2:
		return LevelLight
	case n <= 5:
		return LevelModerate
	default:
		return LevelSevere
	}
}
