// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/skill-extractor/internal/keywords"
	"github.com/jonathan/skill-extractor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintKeywords outputs ranked keywords with their relevance scores.
func (p *Printer) PrintKeywords(kws []keywords.Keyword) {
	if len(kws) == 0 {
		p.printBox("EXTRACTED KEYWORDS", "No keywords survived ranking and filtering.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total keywords: %d\n\n", len(kws)))

	count := min(len(kws), maxItemsToShow*2)
	for i := 0; i < count; i++ {
		kw := kws[i]
		term := kw.Term
		if len(term) > 40 {
			term = term[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%-2d %-40s %.3f\n", i+1, term, kw.Score))
	}

	if len(kws) > count {
		sb.WriteString(fmt.Sprintf("\n... and %d more keywords", len(kws)-count))
	}

	p.printBox("EXTRACTED KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintNormalizedSkills outputs the raw-to-canonical skill mapping summary.
func (p *Printer) PrintNormalizedSkills(raw, normalized []string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Input terms:  %d\n", len(raw)))
	sb.WriteString(fmt.Sprintf("Output terms: %d\n\n", len(normalized)))

	count := min(len(normalized), maxItemsToShow*2)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", normalized[i]))
	}
	if len(normalized) > count {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(normalized)-count))
	}

	p.printBox("NORMALIZED SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGapReport outputs matched and missing skills for a job.
func (p *Printer) PrintGapReport(result *types.SkillGapResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	total := len(result.Matched) + len(result.Missing)
	if total > 0 {
		sb.WriteString(fmt.Sprintf("Coverage: %d/%d job skills\n\n", len(result.Matched), total))
	}

	if len(result.Matched) > 0 {
		sb.WriteString("Matched:\n")
		count := min(len(result.Matched), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", result.Matched[i]))
		}
		if len(result.Matched) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Matched)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(result.Missing) > 0 {
		sb.WriteString("Missing:\n")
		count := min(len(result.Missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ✗ %s\n", result.Missing[i]))
		}
		if len(result.Missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Missing)-maxItemsToShow))
		}
	} else {
		sb.WriteString("No missing skills 🎉")
	}

	p.printBox("SKILL GAP", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintIngestSummary outputs where an ingested posting came from.
func (p *Printer) PrintIngestSummary(url, platform string, chars int, fromCache bool) {
	var sb strings.Builder
	if url != "" {
		sb.WriteString(fmt.Sprintf("URL:      %s\n", url))
	}
	if platform != "" {
		sb.WriteString(fmt.Sprintf("Platform: %s\n", platform))
	}
	sb.WriteString(fmt.Sprintf("Text:     %d chars\n", chars))
	sb.WriteString(fmt.Sprintf("Cached:   %v", fromCache))

	p.printBox("INGESTED JOB POSTING", sb.String())
}
