package keywords

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fakeDim = 128

// fakeProvider returns deterministic vectors: explicit fixtures when
// present, otherwise a one-hot vector per distinct input so unrelated
// terms are orthogonal.
type fakeProvider struct {
	fixtures map[string][]float32
	dims     map[string]int
	calls    int
	batches  [][]string
}

func (f *fakeProvider) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	f.calls++
	f.batches = append(f.batches, texts)

	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = f.vectorFor(strings.ToLower(t))
	}
	return out, nil
}

func (f *fakeProvider) vectorFor(term string) []float32 {
	if v, ok := f.fixtures[term]; ok {
		return v
	}
	if f.dims == nil {
		f.dims = make(map[string]int)
	}
	idx, ok := f.dims[term]
	if !ok {
		idx = len(f.dims) % fakeDim
		f.dims[term] = idx
	}
	v := make([]float32, fakeDim)
	v[idx] = 1
	return v
}

func (f *fakeProvider) Close() error { return nil }

func TestExtract_EmptyInput(t *testing.T) {
	provider := &fakeProvider{}
	e := NewExtractor(provider, DefaultOptions())

	result, err := e.Extract(context.Background(), []string{}, 25)
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.Zero(t, provider.calls, "empty input must not trigger embedding calls")
}

func TestExtract_SingleBatch(t *testing.T) {
	provider := &fakeProvider{}
	e := NewExtractor(provider, DefaultOptions())

	_, err := e.Extract(context.Background(), []string{
		"Requirements: Python and SQL experience required. Docker knowledge preferred.",
	}, 25)
	require.NoError(t, err)
	assert.Equal(t, 1, provider.calls, "document and candidates must share one batch")
	require.Len(t, provider.batches, 1)
	assert.Greater(t, len(provider.batches[0]), 1, "batch holds centroid plus candidates")
}

func TestExtract_CapRespected(t *testing.T) {
	provider := &fakeProvider{}
	e := NewExtractor(provider, DefaultOptions())

	text := "Requirements: experience with Python, SQL, Docker, Kubernetes, Terraform, " +
		"React, Angular, Django, Linux, Git, GraphQL, Tableau, Excel, and Salesforce required."

	for _, k := range []int{0, 1, 3, 5, 100} {
		result, err := e.Extract(context.Background(), []string{text}, k)
		require.NoError(t, err)
		want := k
		if want <= 0 {
			want = DefaultTopK
		}
		assert.LessOrEqual(t, len(result), want, "topK=%d", k)
	}
}

func TestExtract_CaseInsensitiveUniqueness(t *testing.T) {
	provider := &fakeProvider{}
	e := NewExtractor(provider, DefaultOptions())

	result, err := e.Extract(context.Background(), []string{
		"Requirements: Python required. python experience. SQL and sql knowledge.",
	}, 25)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, kw := range result {
		lower := strings.ToLower(kw.Term)
		assert.False(t, seen[lower], "duplicate term under case folding: %s", kw.Term)
		seen[lower] = true
	}
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float32{1, 0}, []float32{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, Cosine([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, Cosine([]float32{1, 0}, []float32{-1, 0}), 1e-9)
}

func TestCosine_ZeroVector(t *testing.T) {
	// Zero-norm vectors default the denominator to 1: score 0, no NaN.
	assert.Equal(t, 0.0, Cosine([]float32{0, 0}, []float32{1, 1}))
	assert.Equal(t, 0.0, Cosine(nil, []float32{1, 1}))
}

func TestSelectMMR_PrefersRelevanceThenDiversity(t *testing.T) {
	// a and b point the same way; c is orthogonal with a lower score.
	// With the diversity penalty, c beats b for the second slot.
	candidates := []ScoredCandidate{
		{Term: "a", Embedding: []float32{1, 0}, Score: 0.9},
		{Term: "b", Embedding: []float32{1, 0.01}, Score: 0.8},
		{Term: "c", Embedding: []float32{0, 1}, Score: 0.5},
	}

	selected := SelectMMR(candidates, 0.5, 2)
	require.Len(t, selected, 2)
	assert.Equal(t, "a", selected[0].Term)
	assert.Equal(t, "c", selected[1].Term)
}

func TestSelectMMR_CapAndExhaustion(t *testing.T) {
	candidates := []ScoredCandidate{
		{Term: "a", Embedding: []float32{1, 0}, Score: 0.9},
		{Term: "b", Embedding: []float32{0, 1}, Score: 0.8},
	}

	assert.Len(t, SelectMMR(candidates, DefaultLambda, 1), 1)
	assert.Len(t, SelectMMR(candidates, DefaultLambda, 5), 2)
	assert.Empty(t, SelectMMR(candidates, DefaultLambda, 0))
	assert.Empty(t, SelectMMR(nil, DefaultLambda, 3))
}
