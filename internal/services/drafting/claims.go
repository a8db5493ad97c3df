package drafting

import (
	"regexp"
	"sort"

	"docket/internal/domain"
)

// ProximityWindow is how close (in bytes) a citation must be to a claim.
const ProximityWindow = 200

// claimPattern marks text that typically asserts a fact needing evidence.
type claimPattern struct {
	name string
	re   *regexp.Regexp
}

var claimPatterns = []claimPattern{
	{"conduct", regexp.MustCompile(`Respondent \w+ (?:did|failed to|refused to)`)},
	{"date", regexp.MustCompile(`On \w+\s+\d+,\s+\d{4}`)},
	{"money", regexp.MustCompile(`\$[\d,]+`)},
	{"count", regexp.MustCompile(`\d+ (?:times|instances|occasions)`)},
}

// findUncited returns claims in document with no citation near them,
// ordered by offset.
func findUncited(document string, citations []domain.Citation) []domain.UncitedClaim {
	var out []domain.UncitedClaim
	for _, p := range claimPatterns {
		for _, loc := range p.re.FindAllStringIndex(document, -1) {
			if cited(loc[0], citations) {
				continue
			}
			out = append(out, domain.UncitedClaim{
				Text:    document[loc[0]:loc[1]],
				Pattern: p.name,
				Offset:  loc[0],
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Offset < out[j].Offset })
	return out
}

func cited(pos int, citations []domain.Citation) bool {
	for _, c := range citations {
		d := c.Location - pos
		if d < 0 {
			d = -d
		}
		if d < ProximityWindow {
			return true
		}
	}
	return false
}
