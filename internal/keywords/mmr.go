package keywords

// DefaultLambda favors relevance over diversity while still penalizing
// near-duplicates of already-selected terms.
const DefaultLambda = 0.8

// SelectMMR greedily selects up to topK candidates by Maximal Marginal
// Relevance: at each step the remaining candidate maximizing
//
//	lambda*relevance - (1-lambda)*maxSimilarityToSelected
//
// is taken. The diversity penalty is the maximum, not average,
// similarity against the selected set, so a single close duplicate is
// enough to suppress a later pick.
func SelectMMR(candidates []ScoredCandidate, lambda float64, topK int) []ScoredCandidate {
	if topK <= 0 || len(candidates) == 0 {
		return nil
	}

	remaining := make([]ScoredCandidate, len(candidates))
	copy(remaining, candidates)

	selected := make([]ScoredCandidate, 0, topK)
	for len(selected) < topK && len(remaining) > 0 {
		bestIdx := 0
		bestScore := mmrScore(remaining[0], selected, lambda)
		for i := 1; i < len(remaining); i++ {
			if s := mmrScore(remaining[i], selected, lambda); s > bestScore {
				bestScore = s
				bestIdx = i
			}
		}
		selected = append(selected, remaining[bestIdx])
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}
	return selected
}

func mmrScore(c ScoredCandidate, selected []ScoredCandidate, lambda float64) float64 {
	maxSim := 0.0
	for _, s := range selected {
		if sim := Cosine(c.Embedding, s.Embedding); sim > maxSim {
			maxSim = sim
		}
	}
	return lambda*c.Score - (1-lambda)*maxSim
}
