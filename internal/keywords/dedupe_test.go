package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupeCaseFold_KeepsHighestScore(t *testing.T) {
	in := []ScoredCandidate{
		{Term: "Python", Score: 0.7},
		{Term: "python", Score: 0.9},
		{Term: "SQL", Score: 0.5},
	}

	out := DedupeCaseFold(in)
	require.Len(t, out, 2)
	assert.Equal(t, "python", out[0].Term)
	assert.Equal(t, 0.9, out[0].Score)
	assert.Equal(t, "SQL", out[1].Term)
}

func TestDedupeContainment_DropsLongerOfSubstringPair(t *testing.T) {
	in := []ScoredCandidate{
		{Term: "project management experience", Score: 0.9},
		{Term: "project management", Score: 0.8},
		{Term: "sql", Score: 0.7},
	}

	out := DedupeContainment(in)
	terms := termsOf(out)
	assert.Contains(t, terms, "project management")
	assert.NotContains(t, terms, "project management experience")
	assert.Contains(t, terms, "sql")
}

func TestDedupeContainment_DegreeCanonicalization(t *testing.T) {
	in := []ScoredCandidate{
		{Term: "bachelors degree required", Score: 0.9},
		{Term: "Bachelor's Degree", Score: 0.8},
		{Term: "masters degree", Score: 0.7},
		{Term: "MBA", Score: 0.6},
		{Term: "Ph.D preferred", Score: 0.5},
	}

	out := DedupeContainment(in)
	terms := termsOf(out)
	assert.Contains(t, terms, "Bachelor's Degree")
	assert.Contains(t, terms, "Master's Degree")
	assert.Contains(t, terms, "MBA")
	assert.Contains(t, terms, "PhD")

	counts := make(map[string]int)
	for _, term := range terms {
		counts[term]++
	}
	assert.Equal(t, 1, counts["Bachelor's Degree"], "degree variants must merge")
}

func TestDedupeSemantic_CollapsesNearDuplicates(t *testing.T) {
	// Same direction = similarity 1.0; orthogonal = 0.
	in := []ScoredCandidate{
		{Term: "project management", Embedding: []float32{1, 0}, Score: 0.9},
		{Term: "managing projects daily", Embedding: []float32{0.99, 0.01}, Score: 0.8},
		{Term: "sql", Embedding: []float32{0, 1}, Score: 0.7},
	}

	out := DedupeSemantic(in, 0.8)
	terms := termsOf(out)
	require.Len(t, out, 2)
	assert.Contains(t, terms, "project management")
	assert.Contains(t, terms, "sql")
}

func TestDedupeSemantic_ShorterSurfaceReplacesKept(t *testing.T) {
	in := []ScoredCandidate{
		{Term: "project management skills", Embedding: []float32{1, 0}, Score: 0.9},
		{Term: "project mgmt", Embedding: []float32{0.99, 0.01}, Score: 0.8},
	}

	out := DedupeSemantic(in, 0.8)
	require.Len(t, out, 1)
	assert.Equal(t, "project mgmt", out[0].Term, "shorter surface form wins among near-duplicates")
}

func TestDedupeSemantic_BelowThresholdKeepsBoth(t *testing.T) {
	in := []ScoredCandidate{
		{Term: "python", Embedding: []float32{1, 0}, Score: 0.9},
		{Term: "nursing", Embedding: []float32{0, 1}, Score: 0.8},
	}

	out := DedupeSemantic(in, 0.8)
	assert.Len(t, out, 2)
}

// Containment monotonicity: a substring pair never survives the chain
// together.
func TestDedupeChain_ContainmentMonotonicity(t *testing.T) {
	in := []ScoredCandidate{
		{Term: "data analysis", Embedding: []float32{1, 0}, Score: 0.9},
		{Term: "advanced data analysis", Embedding: []float32{0, 1}, Score: 0.85},
		{Term: "sql", Embedding: []float32{0.5, 0.5}, Score: 0.4},
	}

	out := DedupeCaseFold(in)
	out = DedupeContainment(out)
	out = DedupeSemantic(out, 0.8)

	terms := termsOf(out)
	assert.Contains(t, terms, "data analysis")
	assert.NotContains(t, terms, "advanced data analysis")
}

func termsOf(items []ScoredCandidate) []string {
	terms := make([]string, len(items))
	for i, item := range items {
		terms[i] = item.Term
	}
	return terms
}
