package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-extractor/internal/observability"
	"github.com/jonathan/skill-extractor/internal/skills"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Normalize raw skill terms onto the canonical vocabulary",
	Long:  "Maps raw skill terms onto the canonical skill vocabulary using alias lookup and embedding similarity. Terms come from flags or from a JSON array file.",
	RunE:  runNormalize,
}

var (
	normalizeTerms  []string
	normalizeInput  string
	normalizeOutput string
)

func init() {
	normalizeCmd.Flags().StringSliceVarP(&normalizeTerms, "term", "t", nil, "Raw skill term to normalize (repeatable)")
	normalizeCmd.Flags().StringVarP(&normalizeInput, "in", "i", "", "Path to JSON file containing an array of terms")
	normalizeCmd.Flags().StringVarP(&normalizeOutput, "out", "o", "", "Path to output JSON file (optional)")

	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, _ []string) error {
	terms := normalizeTerms
	if normalizeInput != "" {
		content, err := os.ReadFile(normalizeInput)
		if err != nil {
			return fmt.Errorf("failed to read input file %s: %w", normalizeInput, err)
		}
		var fileTerms []string
		if err := json.Unmarshal(content, &fileTerms); err != nil {
			return fmt.Errorf("failed to unmarshal terms JSON: %w", err)
		}
		terms = append(terms, fileTerms...)
	}
	if len(terms) == 0 {
		return fmt.Errorf("no terms provided; use --term or --in")
	}

	ctx := cmd.Context()
	provider, err := newEmbeddingProvider(ctx, "", "")
	if err != nil {
		return err
	}
	defer provider.Close() //nolint:errcheck

	normalizer := skills.NewNormalizer(provider)
	normalized, err := normalizer.NormalizeSkills(ctx, terms)
	if err != nil {
		return fmt.Errorf("normalization failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintNormalizedSkills(terms, normalized)

	if normalizeOutput != "" {
		if err := writeJSONOutput(normalizeOutput, normalized); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Normalized skills written to %s\n", normalizeOutput)
	}

	return nil
}
