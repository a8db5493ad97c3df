package drafting

import (
	"fmt"
	"strings"

	"docket/internal/domain"
)

// formatCitation renders one evidence source: "Ex. A, pp. 1-3".
// Evidence with neither exhibit nor pages is cited by ID.
func formatCitation(src domain.EvidenceSource) string {
	var parts []string
	if src.Exhibit != "" {
		parts = append(parts, "Ex. "+src.Exhibit)
	}
	switch n := len(src.Pages); {
	case n == 1:
		parts = append(parts, fmt.Sprintf("p. %d", src.Pages[0]))
	case n > 1:
		parts = append(parts, fmt.Sprintf("pp. %d-%d", src.Pages[0], src.Pages[n-1]))
	}
	if len(parts) == 0 {
		return src.ID.String()
	}
	return strings.Join(parts, ", ")
}

// formatCitations joins per-source citations: "(Ex. A, pp. 1-3; Ex. B, p. 5)".
// Empty input yields "".
func formatCitations(sources []domain.EvidenceSource) string {
	if len(sources) == 0 {
		return ""
	}
	cites := make([]string, 0, len(sources))
	for _, src := range sources {
		cites = append(cites, formatCitation(src))
	}
	return "(" + strings.Join(cites, "; ") + ")"
}

// snippet shortens content for error messages.
func snippet(content string) string {
	r := []rune(content)
	if len(r) <= 50 {
		return content
	}
	return string(r[:50]) + "..."
}
