package analyzer

// Level is the ordinal severity of a conversation analysis.
type Level int

const (
	LevelNone Level = iota
	LevelLight
	LevelModerate
	LevelSevere
	LevelCritical
	// LevelInconclusive is only produced when neither a direct signal nor
	// keyword evidence resolves a level.
	LevelInconclusive
)

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelLight:
		return "light"
	case LevelModerate:
		return "moderate"
	case LevelSevere:
		return "severe"
	case LevelCritical:
		return "critical"
	default:
		return "inconclusive"
	}
}

// Label is the French display name used in reports and CLI output.
func (l Level) Label() string {
	switch l {
	case LevelNone:
		return "NIVEAU 1 - AUCUN HARCÈLEMENT"
	case LevelLight:
		return "NIVEAU 2 - HARCÈLEMENT LÉGER"
	case LevelModerate:
		return "NIVEAU 3 - HARCÈLEMENT MODÉRÉ"
	case LevelSevere:
		return "NIVEAU 4 - HARCÈLEMENT SÉVÈRE"
	case LevelCritical:
		return "NIVEAU 5 - HARCÈLEMENT CRITIQUE"
	default:
		return "RÉSULTAT NON CONCLUANT"
	}
}

// Path records how a report's level was decided.
type Path int

const (
	// PathKeywords derives the level from lexicon hits.
	PathKeywords Path = iota
	// PathDirect trusts a "result" field already present in the input.
	PathDirect
)

// Message is one conversation turn after extraction.
type Message struct {
	User    string
	Content string
}

// KeywordHit lists the lexicon terms found in a single message.
type KeywordHit struct {
	Index   int // 1-based position in the extracted sequence
	Content string
	Terms   []string
}

// Report is everything the renderer needs. It lives for a single request.
type Report struct {
	Level          Level
	Path           Path
	Signal         string // raw "result" label on the direct path
	MessageCount   int
	Hits           []KeywordHit
	Conclusion     string
	Recommendation string
}

// Flagged returns the number of messages with at least one hit.
func (r *Report) Flagged() int {
	return len(r.Hits)
}
