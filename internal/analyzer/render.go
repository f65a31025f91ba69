package analyzer

import (
	"fmt"
	"strings"
)

const maxExcerpt = 100

// markerCount is the banner density of the direct-signal path.
func markerCount(l Level) int {
	switch l {
	case LevelLight, LevelModerate:
		return 1
	case LevelSevere:
		return 2
	case LevelCritical:
		return 3
	default:
		return 0
	}
}

// Render formats a report as French plain text. Output depends only on r.
func Render(r *Report) string {
	var sb strings.Builder
	sb.WriteString(reportHeader + "\n")
	sb.WriteString(headerRule + "\n\n")

	if r.Path == PathDirect {
		renderDirect(&sb, r)
		return sb.String()
	}

	if r.MessageCount == 0 {
		sb.WriteString(noMessagesGuidance + "\n")
		return sb.String()
	}

	fmt.Fprintf(&sb, "Nombre de messages analysés : %d\n\n", r.MessageCount)

	if len(r.Hits) == 0 {
		sb.WriteString(noHitsBanner + "\n\n")
		fmt.Fprintf(&sb, "CONCLUSION : %s\n\n", r.Conclusion)
		sb.WriteString(noHitsDisclaimer + "\n")
		return sb.String()
	}

	sb.WriteString(keywordBanners[r.Level] + "\n")
	fmt.Fprintf(&sb, "Messages signalés : %d\n\n", len(r.Hits))
	for _, h := range r.Hits {
		fmt.Fprintf(&sb, "Message #%d : \"%s\"\n", h.Index, excerpt(h.Content))
		fmt.Fprintf(&sb, "  Termes détectés : %s\n\n", strings.Join(h.Terms, ", "))
	}
	fmt.Fprintf(&sb, "CONCLUSION : %s\n\n", r.Conclusion)
	fmt.Fprintf(&sb, "RECOMMANDATION : %s\n", r.Recommendation)
	return sb.String()
}

func renderDirect(sb *strings.Builder, r *Report) {
	markers := strings.Repeat(markerGlyph, markerCount(r.Level))
	if markers != "" {
		markers += " "
	}
	fmt.Fprintf(sb, "%s%s\n\n", markers, r.Level.Label())
	fmt.Fprintf(sb, "CONCLUSION : %s\n\n", r.Conclusion)
	fmt.Fprintf(sb, "RECOMMANDATION : %s\n", r.Recommendation)
}

// excerpt truncates s to maxExcerpt characters, appending "..." when cut.
func excerpt(s string) string {
	runes := []rune(s)
	if len(runes) <= maxExcerpt {
		return s
	}
	return string(runes[:maxExcerpt]) + "..."
}
