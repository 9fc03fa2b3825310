// Package keywords ranks mined candidate phrases against a source
// document and produces a deduplicated, diversity-controlled keyword
// list.
package keywords

import "math"

// Keyword is the public output unit: a scored term with its embedding
// stripped.
type Keyword struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

// ScoredCandidate is a candidate term with its embedding and its cosine
// similarity to the document centroid. Owned by a single extraction
// call; never persisted. Scores are only comparable within one call.
type ScoredCandidate struct {
	Term      string
	Embedding []float32
	Score     float64
}

// Cosine returns the cosine similarity of two vectors. A zero-norm
// vector yields a denominator of 1, so the result is 0 rather than NaN.
func Cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		denom = 1
	}
	return dot / denom
}
