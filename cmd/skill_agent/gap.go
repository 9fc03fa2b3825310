package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-extractor/internal/config"
	"github.com/jonathan/skill-extractor/internal/gap"
	"github.com/jonathan/skill-extractor/internal/ingestion"
	"github.com/jonathan/skill-extractor/internal/keywords"
	"github.com/jonathan/skill-extractor/internal/observability"
	"github.com/jonathan/skill-extractor/internal/types"
)

var gapCmd = &cobra.Command{
	Use:   "gap",
	Short: "Report the skill gap between a resume and a job posting",
	Long:  "Derives canonical skill sets for a resume and a job posting, then reports which job skills the candidate already has and which are missing. A JSON config file may supply defaults for any flag.",
	RunE:  runGap,
}

var (
	gapConfigPath string
	gapResume     string
	gapJobURL     string
	gapJobFile    string
	gapUseBrowser bool
	gapOutput     string
)

func init() {
	gapCmd.Flags().StringVarP(&gapConfigPath, "config", "c", "", "Path to JSON config file providing flag defaults")
	gapCmd.Flags().StringVarP(&gapResume, "resume", "r", "", "Path to resume JSON file")
	gapCmd.Flags().StringVarP(&gapJobURL, "job-url", "u", "", "URL of the job posting")
	gapCmd.Flags().StringVarP(&gapJobFile, "job-file", "j", "", "Path to text file containing the job posting")
	gapCmd.Flags().BoolVar(&gapUseBrowser, "browser", false, "Render the job URL in a headless browser when static HTML is too thin")
	gapCmd.Flags().StringVarP(&gapOutput, "out", "o", "", "Path to output JSON file (optional)")

	rootCmd.AddCommand(gapCmd)
}

// gapConfig merges flag values over the optional config file.
func gapConfig() (*config.Config, error) {
	cfg := config.Config{
		Resume:     gapResume,
		JobURL:     gapJobURL,
		Job:        gapJobFile,
		UseBrowser: gapUseBrowser,
	}

	if gapConfigPath != "" {
		fileCfg, err := config.LoadConfig(gapConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Resume == "" {
		return nil, fmt.Errorf("a resume is required; use --resume or the config file")
	}
	if cfg.JobURL == "" && cfg.Job == "" {
		return nil, fmt.Errorf("either --job-url or --job-file must be provided")
	}
	return &cfg, nil
}

func runGap(cmd *cobra.Command, _ []string) error {
	cfg, err := gapConfig()
	if err != nil {
		return err
	}

	resume, err := loadResume(cfg.Resume)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	job := &types.JobPosting{URL: cfg.JobURL}
	if cfg.Job != "" {
		text, _, err := ingestion.IngestFromFile(cfg.Job)
		if err != nil {
			return fmt.Errorf("failed to ingest job posting from file: %w", err)
		}
		job.Text = text
	} else {
		text, _, err := ingestion.IngestFromURL(ctx, cfg.JobURL, &ingestion.URLOptions{
			UseBrowser: cfg.UseBrowser,
			Verbose:    cfg.Verbose,
		})
		if err != nil {
			return fmt.Errorf("failed to ingest job posting from URL: %w", err)
		}
		job.Text = text
	}

	provider, err := newEmbeddingProvider(ctx, cfg.APIKey, cfg.EmbeddingModel)
	if err != nil {
		return err
	}
	defer provider.Close() //nolint:errcheck

	opts := keywords.DefaultOptions()
	if cfg.Lambda > 0 {
		opts.Lambda = cfg.Lambda
	}
	if cfg.SemanticThreshold > 0 {
		opts.SemanticThreshold = cfg.SemanticThreshold
	}

	service := newSkillsService(provider, opts)
	profileSkills := service.ComputeProfileSkills(ctx, resume)
	jobSkills := service.ComputeJobSkills(ctx, job)

	result := gap.ComputeSkillGap(profileSkills, jobSkills, resume)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintGapReport(&result)

	if gapOutput != "" {
		if err := writeJSONOutput(gapOutput, result); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Gap report written to %s\n", gapOutput)
	}

	return nil
}
