package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-extractor/internal/keywords"
	"github.com/jonathan/skill-extractor/internal/observability"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract ranked keywords from text files",
	Long:  "Mines candidate phrases from one or more text files, ranks them by embedding relevance with redundancy penalties, and prints the surviving keywords.",
	RunE:  runExtract,
}

var (
	extractFiles  []string
	extractTopK   int
	extractOutput string
)

func init() {
	extractCmd.Flags().StringSliceVarP(&extractFiles, "text-file", "t", nil, "Path to a text file to extract from (repeatable, required)")
	extractCmd.Flags().IntVarP(&extractTopK, "top-k", "k", 0, "Maximum number of keywords to return (0 = pipeline default)")
	extractCmd.Flags().StringVarP(&extractOutput, "out", "o", "", "Path to output JSON file (optional)")

	if err := extractCmd.MarkFlagRequired("text-file"); err != nil {
		panic(fmt.Sprintf("failed to mark text-file flag as required: %v", err))
	}

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	texts := make([]string, 0, len(extractFiles))
	for _, path := range extractFiles {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read text file %s: %w", path, err)
		}
		texts = append(texts, string(content))
	}

	ctx := cmd.Context()
	provider, err := newEmbeddingProvider(ctx, "", "")
	if err != nil {
		return err
	}
	defer provider.Close() //nolint:errcheck

	extractor := keywords.NewExtractor(provider, keywords.DefaultOptions())
	kws, err := extractor.Extract(ctx, texts, extractTopK)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintKeywords(kws)

	if extractOutput != "" {
		if err := writeJSONOutput(extractOutput, kws); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Keywords written to %s\n", extractOutput)
	}

	return nil
}
