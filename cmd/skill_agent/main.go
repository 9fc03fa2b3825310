// Package main implements the skill_agent CLI for keyword extraction and
// skill-gap analysis.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skill_agent",
	Short: "Skill extraction and gap analysis toolkit",
	Long:  "skill_agent mines keywords from job postings and resumes, normalizes them onto a canonical skill vocabulary, and reports the gap between a candidate profile and a job.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
