// Package embedding provides text-embedding providers for the keyword pipeline.
package embedding

import "context"

// Provider is an abstraction over embedding backends.
//
// Implementations must return one vector per input string, in input
// order, with a fixed dimensionality across calls. Callers batch all
// texts for one document into a single call, so providers should accept
// batch sizes in the tens.
type Provider interface {
	// EmbedTexts embeds a batch of texts.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
	// Close releases any resources held by the provider.
	Close() error
}
