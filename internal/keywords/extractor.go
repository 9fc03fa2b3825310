package keywords

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/skill-extractor/internal/embedding"
	"github.com/jonathan/skill-extractor/internal/mining"
)

const (
	// DefaultTopK is the selection cap for general extraction.
	DefaultTopK = 25
	// ResumeTopK is the selection cap used by résumé and job-specific
	// callers, which want a wider net before normalization.
	ResumeTopK = 40
)

// Options holds the tunable knobs of the extraction pipeline.
type Options struct {
	Lambda            float64
	SemanticThreshold float64
	Thresholds        mining.Thresholds
}

// DefaultOptions returns the production defaults.
func DefaultOptions() Options {
	return Options{
		Lambda:            DefaultLambda,
		SemanticThreshold: SemanticDedupeThreshold,
		Thresholds:        mining.DefaultThresholds(),
	}
}

// Extractor runs the full keyword pipeline: mine, embed, rank with
// MMR, deduplicate, quality-filter.
type Extractor struct {
	provider embedding.Provider
	opts     Options
}

// NewExtractor creates an Extractor backed by the given embedding
// provider.
func NewExtractor(provider embedding.Provider, opts Options) *Extractor {
	if opts.Lambda <= 0 || opts.Lambda > 1 {
		opts.Lambda = DefaultLambda
	}
	if opts.SemanticThreshold <= 0 || opts.SemanticThreshold > 1 {
		opts.SemanticThreshold = SemanticDedupeThreshold
	}
	if opts.Thresholds == (mining.Thresholds{}) {
		opts.Thresholds = mining.DefaultThresholds()
	}
	return &Extractor{provider: provider, opts: opts}
}

// Extract mines candidates from texts, ranks them against the narrowed
// document, and returns at most topK keywords. topK <= 0 selects
// DefaultTopK. Output terms are unique under case-insensitive
// comparison; scores are only comparable within this call.
func (e *Extractor) Extract(ctx context.Context, texts []string, topK int) ([]Keyword, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	candidates := mining.MineCandidatesWith(e.opts.Thresholds, texts)
	if len(candidates) == 0 {
		return []Keyword{}, nil
	}

	cleaned := mining.CleanText(strings.Join(texts, "\n"))
	narrowed := mining.NarrowToSkills(cleaned, e.opts.Thresholds)

	// One batch: document centroid first, then every candidate.
	inputs := make([]string, 0, len(candidates)+1)
	inputs = append(inputs, narrowed)
	inputs = append(inputs, candidates...)

	vectors, err := e.provider.EmbedTexts(ctx, inputs)
	if err != nil {
		return nil, fmt.Errorf("failed to embed candidates: %w", err)
	}
	if len(vectors) != len(inputs) {
		return nil, fmt.Errorf("embedding count mismatch: got %d, want %d", len(vectors), len(inputs))
	}

	centroid := vectors[0]
	scored := make([]ScoredCandidate, len(candidates))
	for i, term := range candidates {
		scored[i] = ScoredCandidate{
			Term:      term,
			Embedding: vectors[i+1],
			Score:     Cosine(vectors[i+1], centroid),
		}
	}

	selected := SelectMMR(scored, e.opts.Lambda, topK)
	selected = DedupeCaseFold(selected)
	selected = DedupeContainment(selected)
	selected = DedupeSemantic(selected, e.opts.SemanticThreshold)
	selected = FilterLowQuality(selected, mining.MatchesDomainPattern)

	result := make([]Keyword, len(selected))
	for i, c := range selected {
		result[i] = Keyword{Term: c.Term, Score: c.Score}
	}
	return result, nil
}
