package keywords

import (
	"regexp"
	"sort"
	"strings"
)

var qualityAcronymRe = regexp.MustCompile(`^[A-Z]{2,}$`)

// FilterLowQuality demotes low-information single-word candidates.
// Multi-word terms always pass. A single word passes if it is an
// all-caps acronym, matches a domain pattern, or scores at or above the
// median of the whole set — demotion by omission, not a hard blacklist:
// plausible but generic words are cut only when enough stronger
// candidates exist.
func FilterLowQuality(items []ScoredCandidate, isDomainTerm func(string) bool) []ScoredCandidate {
	if len(items) == 0 {
		return items
	}

	median := medianScore(items)

	var out []ScoredCandidate
	for _, item := range items {
		if strings.Contains(strings.TrimSpace(item.Term), " ") {
			out = append(out, item)
			continue
		}
		if qualityAcronymRe.MatchString(item.Term) {
			out = append(out, item)
			continue
		}
		if isDomainTerm != nil && isDomainTerm(item.Term) {
			out = append(out, item)
			continue
		}
		if item.Score >= median {
			out = append(out, item)
		}
	}
	return out
}

func medianScore(items []ScoredCandidate) float64 {
	scores := make([]float64, len(items))
	for i, item := range items {
		scores[i] = item.Score
	}
	sort.Float64s(scores)

	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return (scores[mid-1] + scores[mid]) / 2
	}
	return scores[mid]
}
