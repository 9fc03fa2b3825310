package keywords

import (
	"regexp"
	"sort"
	"strings"
)

// SemanticDedupeThreshold is the cosine similarity at or above which
// two candidates are treated as paraphrases of one another.
const SemanticDedupeThreshold = 0.80

// A single threshold cannot catch every duplicate shape: case
// variants, substring variants, and paraphrase variants each need a
// different comparison. The three passes below run in sequence, each
// consuming the previous pass's output.

// DedupeCaseFold groups candidates by lower-cased term and keeps the
// highest-scoring variant of each group, preserving first-occurrence
// order.
func DedupeCaseFold(candidates []ScoredCandidate) []ScoredCandidate {
	best := make(map[string]int)
	var out []ScoredCandidate
	for _, c := range candidates {
		key := strings.ToLower(c.Term)
		if idx, ok := best[key]; ok {
			if c.Score > out[idx].Score {
				out[idx] = c
			}
			continue
		}
		best[key] = len(out)
		out = append(out, c)
	}
	return out
}

// Degree-phrase variants collapse onto four canonical strings before
// containment comparison, so "bachelors degree required" and "BS" meet
// at "Bachelor's Degree".
var degreeCanonical = []struct {
	pattern   *regexp.Regexp
	canonical string
}{
	{regexp.MustCompile(`(?i)\bph\.?\s?d\b|\bdoctorate\b|\bdoctoral\b`), "PhD"},
	{regexp.MustCompile(`(?i)\bmba\b`), "MBA"},
	{regexp.MustCompile(`(?i)\bmaster(?:'?s)?\b|\bm\.?s\.?\s+degree\b`), "Master's Degree"},
	{regexp.MustCompile(`(?i)\bbachelor(?:'?s)?\b|\bb\.?[as]\.?\s+degree\b`), "Bachelor's Degree"},
}

func canonicalizeDegree(term string) string {
	for _, d := range degreeCanonical {
		if d.pattern.MatchString(term) {
			return d.canonical
		}
	}
	return term
}

// DedupeContainment canonicalizes degree phrases, then prefers the most
// concise phrasing among substring pairs: whenever a shorter
// candidate's text appears case-insensitively inside a longer one, the
// longer one is dropped.
func DedupeContainment(candidates []ScoredCandidate) []ScoredCandidate {
	mapped := make([]ScoredCandidate, len(candidates))
	copy(mapped, candidates)
	for i := range mapped {
		mapped[i].Term = canonicalizeDegree(mapped[i].Term)
	}

	// Degree canonicalization can merge previously distinct terms.
	mapped = DedupeCaseFold(mapped)

	sort.SliceStable(mapped, func(i, j int) bool {
		if len(mapped[i].Term) != len(mapped[j].Term) {
			return len(mapped[i].Term) < len(mapped[j].Term)
		}
		return mapped[i].Score > mapped[j].Score
	})

	dropped := make([]bool, len(mapped))
	for i := 0; i < len(mapped); i++ {
		if dropped[i] {
			continue
		}
		shorter := strings.ToLower(mapped[i].Term)
		for j := i + 1; j < len(mapped); j++ {
			if dropped[j] {
				continue
			}
			if strings.Contains(strings.ToLower(mapped[j].Term), shorter) {
				dropped[j] = true
			}
		}
	}

	var out []ScoredCandidate
	for i, c := range mapped {
		if !dropped[i] {
			out = append(out, c)
		}
	}
	return out
}

// DedupeSemantic collapses paraphrase/synonym variants: processing in
// descending score order, a candidate whose embedding is within
// threshold of an already-kept item is a duplicate — but if its surface
// string is shorter than the kept one, it replaces it. Ties thus favor
// brevity at the best available score.
func DedupeSemantic(candidates []ScoredCandidate, threshold float64) []ScoredCandidate {
	sorted := make([]ScoredCandidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	var kept []ScoredCandidate
	for _, c := range sorted {
		dupIdx := -1
		for i, k := range kept {
			if Cosine(c.Embedding, k.Embedding) >= threshold {
				dupIdx = i
				break
			}
		}
		if dupIdx == -1 {
			kept = append(kept, c)
			continue
		}
		if len(c.Term) < len(kept[dupIdx].Term) {
			kept[dupIdx] = c
		}
	}
	return kept
}
