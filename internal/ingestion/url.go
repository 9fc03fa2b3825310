package ingestion

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/skill-extractor/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the HTTP request fails.
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails.
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// URLOptions configures URL ingestion.
type URLOptions struct {
	// Fetcher handles the HTTP fetch, with optional database caching.
	// A nil Fetcher means a plain uncached fetch.
	Fetcher *fetch.CachedFetcher
	// UseBrowser enables headless browser fallback for SPA job boards
	// that render the description client-side.
	UseBrowser bool
	Verbose    bool
}

// IngestFromURL fetches a job posting URL, extracts and cleans the
// description text, and returns it with metadata.
func IngestFromURL(ctx context.Context, urlStr string, opts *URLOptions) (string, *Metadata, error) {
	if opts == nil {
		opts = &URLOptions{}
	}
	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = fetch.NewCachedFetcher(nil, nil)
	}

	result, err := fetcher.Fetch(ctx, urlStr)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	if opts.Verbose {
		log.Printf("[INGEST] URL: %s", urlStr)
		log.Printf("[INGEST] Platform: %s, cached: %v, HTML: %d bytes", result.Platform, result.FromCache, len(result.HTML))
	}

	textContent := result.Text

	// SPA fallback: re-render with a headless browser when the HTTP
	// response carried too little text to be a real description.
	if opts.UseBrowser && !result.FromCache && fetch.ShouldUseBrowser(textContent) {
		if opts.Verbose {
			log.Printf("[INGEST] Content too short (%d chars < %d), falling back to browser rendering",
				len(textContent), fetch.MinContentLength)
		}
		browserHTML, browserErr := fetch.RenderWithBrowser(ctx, urlStr, fetch.DefaultTimeout, opts.Verbose)
		if browserErr != nil {
			if opts.Verbose {
				log.Printf("[INGEST] Browser rendering failed: %v, keeping HTTP content", browserErr)
			}
		} else {
			rendered, extractErr := fetch.ExtractMainText(browserHTML,
				result.Platform.ContentSelectors(), result.Platform.NoiseSelectors()...)
			if extractErr == nil && len(rendered) > len(textContent) {
				textContent = rendered
			}
		}
	}

	if textContent == "" {
		return "", nil, fmt.Errorf("%w: no text content found at %s", ErrContentExtractionFailed, urlStr)
	}

	cleanedText := CleanText(textContent)
	if opts.Verbose {
		log.Printf("[INGEST] Cleaned text: %d chars", len(cleanedText))
	}

	metadata := NewMetadata(cleanedText, urlStr)
	metadata.Platform = string(result.Platform)
	metadata.FromCache = result.FromCache

	return cleanedText, metadata, nil
}
