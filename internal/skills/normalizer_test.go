package skills

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fakeDim = 256

// fakeProvider returns deterministic vectors. Fixture terms use a
// configured vector; everything else gets its own one-hot direction,
// orthogonal to every other term.
type fakeProvider struct {
	mu       sync.Mutex
	fixtures map[string][]float32
	dims     map[string]int
	calls    int
	embedded []string
	err      error
}

func (f *fakeProvider) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.embedded = append(f.embedded, texts...)
	if f.err != nil {
		return nil, f.err
	}

	out := make([][]float32, len(texts))
	for i, t := range texts {
		if v, ok := f.fixtures[t]; ok {
			out[i] = v
			continue
		}
		if f.dims == nil {
			f.dims = make(map[string]int)
		}
		idx, ok := f.dims[t]
		if !ok {
			idx = len(f.dims) % fakeDim
			f.dims[t] = idx
		}
		v := make([]float32, fakeDim)
		v[idx] = 1
		out[i] = v
	}
	return out, nil
}

func (f *fakeProvider) Close() error { return nil }

func (f *fakeProvider) embeddedTerms() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.embedded...)
}

func TestNormalizeTerm(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Python  ", "python"},
		{"C++", "c++"},
		{"C#", "c#"},
		{"Node.js", "node.js"},
		{"React (Frontend)", "react frontend"},
		{"problem-solving", "problemsolving"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeTerm(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeSkills_AliasNeverEmbeds(t *testing.T) {
	provider := &fakeProvider{}
	n := NewNormalizer(provider)

	out, err := n.NormalizeSkills(context.Background(), []string{"golang", "K8s", "ReactJS"})
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "kubernetes", "react"}, out)
	assert.Zero(t, provider.calls, "alias hits must not trigger embedding calls")
}

func TestNormalizeSkills_CanonicalPassesThrough(t *testing.T) {
	provider := &fakeProvider{}
	n := NewNormalizer(provider)

	out, err := n.NormalizeSkills(context.Background(), []string{"Python", "SQL"})
	require.NoError(t, err)
	assert.Equal(t, []string{"python", "sql"}, out)
	assert.Zero(t, provider.calls)
}

func TestNormalizeSkills_UnknownTermIdentity(t *testing.T) {
	// The unknown term is orthogonal to the whole vocabulary, stays
	// below the match threshold, and passes through as itself.
	fixtures := map[string][]float32{"underwater basket weaving": {1, 0, 0}}
	for _, c := range CanonicalSkills {
		fixtures[c] = []float32{0, 1, 0}
	}
	provider := &fakeProvider{fixtures: fixtures}
	n := NewNormalizer(provider)

	out, err := n.NormalizeSkills(context.Background(), []string{"Underwater Basket Weaving!"})
	require.NoError(t, err)
	assert.Contains(t, out, "underwater basket weaving")
}

func TestNormalizeSkills_NearestCanonicalAboveThreshold(t *testing.T) {
	// Give the pending term the same direction as canonical "python".
	fixtures := map[string][]float32{"python scripting": {1, 0, 0}}
	for _, c := range CanonicalSkills {
		fixtures[c] = []float32{0, 1, 0}
	}
	fixtures["python"] = []float32{1, 0.01, 0}

	provider := &fakeProvider{fixtures: fixtures}
	n := NewNormalizer(provider)

	out, err := n.NormalizeSkills(context.Background(), []string{"Python Scripting"})
	require.NoError(t, err)
	assert.Equal(t, []string{"python"}, out)
}

func TestNormalizeSkills_CachesDecisions(t *testing.T) {
	provider := &fakeProvider{
		fixtures: map[string][]float32{"mystery skill": {1, 0, 0}},
	}
	n := NewNormalizer(provider)

	_, err := n.NormalizeSkills(context.Background(), []string{"mystery skill"})
	require.NoError(t, err)
	callsAfterFirst := provider.calls

	_, err = n.NormalizeSkills(context.Background(), []string{"mystery skill"})
	require.NoError(t, err)
	assert.Equal(t, callsAfterFirst, provider.calls, "cached term must not re-embed")
}

func TestNormalizeSkills_CanonicalVocabularyEmbeddedOnce(t *testing.T) {
	provider := &fakeProvider{}
	n := NewNormalizer(provider)

	_, err := n.NormalizeSkills(context.Background(), []string{"first unknown"})
	require.NoError(t, err)
	_, err = n.NormalizeSkills(context.Background(), []string{"second unknown"})
	require.NoError(t, err)

	vocabBatches := 0
	for _, term := range provider.embeddedTerms() {
		if term == CanonicalSkills[0] {
			vocabBatches++
		}
	}
	assert.Equal(t, 1, vocabBatches, "canonical vocabulary must be embedded at most once")
}

func TestNormalizeSkills_Idempotent(t *testing.T) {
	provider := &fakeProvider{}
	n := NewNormalizer(provider)

	first, err := n.NormalizeSkills(context.Background(), []string{"golang", "Python", "k8s"})
	require.NoError(t, err)

	second, err := n.NormalizeSkills(context.Background(), first)
	require.NoError(t, err)
	assert.Equal(t, first, second, "canonical output is a fixed point")
}

func TestNormalizeSkills_SortedDeduped(t *testing.T) {
	provider := &fakeProvider{}
	n := NewNormalizer(provider)

	out, err := n.NormalizeSkills(context.Background(), []string{"sql", "Python", "SQL", "golang", "go"})
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "python", "sql"}, out)
}

func TestNormalizeSkills_ProviderError(t *testing.T) {
	provider := &fakeProvider{err: fmt.Errorf("quota exceeded")}
	n := NewNormalizer(provider)

	_, err := n.NormalizeSkills(context.Background(), []string{"definitely unknown term"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestNormalizeSkills_ConcurrentFirstCallers(t *testing.T) {
	provider := &fakeProvider{}
	n := NewNormalizer(provider)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := n.NormalizeSkills(context.Background(), []string{fmt.Sprintf("unknown term %d", i)})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	vocabBatches := 0
	for _, term := range provider.embeddedTerms() {
		if term == CanonicalSkills[0] {
			vocabBatches++
		}
	}
	assert.Equal(t, 1, vocabBatches, "single-flight: one in-flight vocabulary computation shared by all callers")
}

func TestLookupAlias(t *testing.T) {
	canonical, ok := LookupAlias("golang")
	require.True(t, ok)
	assert.Equal(t, "go", canonical)

	_, ok = LookupAlias("definitely not a skill")
	assert.False(t, ok)
}

func TestIsCanonical(t *testing.T) {
	assert.True(t, IsCanonical("python"))
	assert.True(t, IsCanonical("node.js"))
	assert.False(t, IsCanonical("Python"), "canonical check expects normalized input")
	assert.False(t, strings.ContainsAny(CanonicalSkills[0], "ABCDEFGHIJKLMNOPQRSTUVWXYZ"))
}
