package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/skill-extractor/internal/embedding"
	"github.com/jonathan/skill-extractor/internal/keywords"
	"github.com/jonathan/skill-extractor/internal/schemas"
	"github.com/jonathan/skill-extractor/internal/skills"
	"github.com/jonathan/skill-extractor/internal/types"
)

// newEmbeddingProvider builds the Gemini embedding provider. Empty
// arguments fall back to GEMINI_API_KEY and EMBEDDING_MODEL from the
// environment.
func newEmbeddingProvider(ctx context.Context, apiKey, model string) (*embedding.GeminiProvider, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	if model == "" {
		model = os.Getenv("EMBEDDING_MODEL")
	}
	if model == "" {
		model = embedding.DefaultModel
	}

	provider, err := embedding.NewGeminiProvider(ctx, apiKey, model)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding provider: %w", err)
	}
	return provider, nil
}

// newSkillsService wires an extractor and normalizer around a provider.
func newSkillsService(provider embedding.Provider, opts keywords.Options) *skills.Service {
	extractor := keywords.NewExtractor(provider, opts)
	return skills.NewService(extractor, skills.NewNormalizer(provider))
}

// loadResume reads and validates a resume JSON file.
func loadResume(path string) (*types.Resume, error) {
	if err := schemas.ValidateResumeFile(path); err != nil {
		return nil, fmt.Errorf("resume failed schema validation: %w", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}

	var resume types.Resume
	if err := json.Unmarshal(content, &resume); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume JSON: %w", err)
	}
	return &resume, nil
}

// writeJSONOutput marshals v with indentation and writes it to path,
// creating parent directories as needed.
func writeJSONOutput(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
