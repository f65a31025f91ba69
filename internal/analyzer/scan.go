package analyzer

import "strings"

// Scanner matches message content against a fixed term list.
type Scanner struct {
	terms []string
}

// newScanner builds a scanner over terms. Terms are lower-cased once and
// duplicates dropped, keeping the first occurrence.
func newScanner(terms []string) *Scanner {
	seen := make(map[string]bool, len(terms))
	lowered := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		lowered = append(lowered, t)
	}
	return &Scanner{terms: lowered}
}

var defaultScanner = newScanner(lexicon)

// DefaultScanner scans against the built-in French lexicon. The returned
// scanner is shared and safe for concurrent use.
func DefaultScanner() *Scanner {
	return defaultScanner
}

// Match returns the terms contained in text, in term order.
func (s *Scanner) Match(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, t := range s.terms {
		if strings.Contains(lower, t) {
			found = append(found, t)
		}
	}
	return found
}

// Scan reports the messages with at least one match, in message order.
func (s *Scanner) Scan(msgs []Message) []KeywordHit {
	var hits []KeywordHit
	for i, m := range msgs {
		terms := s.Match(m.Content)
		if len(terms) == 0 {
			continue
		}
		hits = append(hits, KeywordHit{
			Index:   i + 1,
			Content: m.Content,
			Terms:   terms,
		})
	}
	return hits
}
