package skills

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/skill-extractor/internal/embedding"
	"github.com/jonathan/skill-extractor/internal/keywords"
)

// MatchThreshold is the minimum cosine similarity for a term to be
// mapped onto its nearest canonical skill. Below it the term passes
// through as its own canonical identity: unknown skills are preserved,
// not discarded.
const MatchThreshold = 0.70

var normalizeStripRe = regexp.MustCompile(`[^a-z0-9+#. ]`)

// NormalizeTerm lower-cases a term, strips characters outside
// [a-z0-9+#. ], and collapses whitespace.
func NormalizeTerm(term string) string {
	term = strings.ToLower(term)
	term = normalizeStripRe.ReplaceAllString(term, "")
	return strings.Join(strings.Fields(term), " ")
}

// Normalizer maps arbitrary extracted terms onto the canonical skill
// vocabulary using the alias table and nearest-embedding matching.
//
// Both caches live for the Normalizer's lifetime. Construct one
// long-lived instance per process; tests construct isolated instances
// to assert on cache behavior deterministically.
type Normalizer struct {
	provider embedding.Provider

	mu    sync.Mutex
	cache map[string]string // normalized input term -> canonical-or-identity

	// Canonical-vocabulary embeddings are computed at most once; the
	// sync.Once gives all concurrent first callers a single in-flight
	// computation.
	canonOnce sync.Once
	canonVecs [][]float32
	canonErr  error
}

// NewNormalizer creates a Normalizer with empty caches.
func NewNormalizer(provider embedding.Provider) *Normalizer {
	return &Normalizer{
		provider: provider,
		cache:    make(map[string]string),
	}
}

// NormalizeSkills maps candidates onto canonical skills and returns a
// deduplicated, alphabetically sorted list. Alias and cache hits never
// trigger an embedding call; only terms with no alias or cache entry
// are embedded, in one batch.
func (n *Normalizer) NormalizeSkills(ctx context.Context, candidates []string) ([]string, error) {
	resolved := make(map[string]bool)
	var pending []string
	pendingSeen := make(map[string]bool)

	for _, candidate := range candidates {
		term := NormalizeTerm(candidate)
		if term == "" {
			continue
		}

		if canonical, ok := LookupAlias(term); ok {
			n.cacheSet(term, canonical)
			resolved[canonical] = true
			continue
		}
		if IsCanonical(term) {
			n.cacheSet(term, term)
			resolved[term] = true
			continue
		}
		if canonical, ok := n.cacheGet(term); ok {
			resolved[canonical] = true
			continue
		}
		if !pendingSeen[term] {
			pendingSeen[term] = true
			pending = append(pending, term)
		}
	}

	if len(pending) > 0 {
		matched, err := n.matchPending(ctx, pending)
		if err != nil {
			return nil, err
		}
		for _, canonical := range matched {
			resolved[canonical] = true
		}
	}

	out := make([]string, 0, len(resolved))
	for skill := range resolved {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out, nil
}

// matchPending embeds all pending terms in one batch — alongside the
// one-time canonical-vocabulary embedding, so the canonical cost only
// blocks the first caller — and maps each term to its arg-max canonical
// neighbor, or to itself below MatchThreshold. Decisions are cached
// either way.
func (n *Normalizer) matchPending(ctx context.Context, pending []string) ([]string, error) {
	var pendingVecs [][]float32
	var canonVecs [][]float32

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		vecs, err := n.canonicalEmbeddings(gctx)
		if err != nil {
			return err
		}
		canonVecs = vecs
		return nil
	})
	g.Go(func() error {
		vecs, err := n.provider.EmbedTexts(gctx, pending)
		if err != nil {
			return fmt.Errorf("failed to embed pending terms: %w", err)
		}
		if len(vecs) != len(pending) {
			return fmt.Errorf("embedding count mismatch: got %d, want %d", len(vecs), len(pending))
		}
		pendingVecs = vecs
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]string, len(pending))
	for i, term := range pending {
		bestIdx := -1
		bestSim := -1.0
		for j, cv := range canonVecs {
			if sim := keywords.Cosine(pendingVecs[i], cv); sim > bestSim {
				bestSim = sim
				bestIdx = j
			}
		}

		canonical := term
		if bestIdx >= 0 && bestSim >= MatchThreshold {
			canonical = CanonicalSkills[bestIdx]
		}
		n.cacheSet(term, canonical)
		out[i] = canonical
	}
	return out, nil
}

// canonicalEmbeddings returns the embedding of every canonical skill,
// computing it at most once for the Normalizer's lifetime.
func (n *Normalizer) canonicalEmbeddings(ctx context.Context) ([][]float32, error) {
	n.canonOnce.Do(func() {
		vecs, err := n.provider.EmbedTexts(ctx, CanonicalSkills)
		if err != nil {
			n.canonErr = fmt.Errorf("failed to embed canonical vocabulary: %w", err)
			return
		}
		if len(vecs) != len(CanonicalSkills) {
			n.canonErr = fmt.Errorf("canonical embedding count mismatch: got %d, want %d", len(vecs), len(CanonicalSkills))
			return
		}
		n.canonVecs = vecs
	})
	return n.canonVecs, n.canonErr
}

func (n *Normalizer) cacheGet(term string) (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	canonical, ok := n.cache[term]
	return canonical, ok
}

// cacheSet overwrites unconditionally. The value for a given key is a
// pure function of that key plus the fixed vocabulary, so concurrent
// writes are idempotent and last-write-wins is safe.
func (n *Normalizer) cacheSet(term, canonical string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cache[term] = canonical
}

// CacheSize reports the number of cached normalization decisions.
func (n *Normalizer) CacheSize() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.cache)
}
