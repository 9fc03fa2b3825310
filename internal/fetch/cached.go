package fetch

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/skill-extractor/internal/db"
)

// CachedFetcher wraps job posting fetching with database-backed caching.
// A nil database disables caching and every call fetches fresh.
type CachedFetcher struct {
	db        *db.DB
	options   *Options
	skipCache bool
}

// CachedFetcherConfig holds configuration for the cached fetcher.
type CachedFetcherConfig struct {
	SkipCache bool
	Options   *Options
}

// NewCachedFetcher creates a new cached fetcher.
func NewCachedFetcher(database *db.DB, config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = &CachedFetcherConfig{}
	}
	if config.Options == nil {
		config.Options = DefaultOptions()
	}
	return &CachedFetcher{
		db:        database,
		options:   config.Options,
		skipCache: config.SkipCache,
	}
}

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	*Result
	Platform  Platform
	FromCache bool
	PostingID uuid.UUID
}

// Fetch retrieves a job posting URL, serving from cache when a fresh
// entry exists. Fresh fetches have their main text extracted with
// platform-aware selectors and are written back to the cache.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	platform := DetectPlatform(urlStr)

	if !f.skipCache && f.db != nil {
		skip, reason, err := f.db.ShouldSkipURL(ctx, urlStr)
		if err != nil {
			return nil, fmt.Errorf("failed to check skip status: %w", err)
		}
		if skip {
			return nil, &Error{
				URL:     urlStr,
				Message: fmt.Sprintf("URL in backoff: %s", reason),
			}
		}

		cached, err := f.db.GetFreshJobPosting(ctx, urlStr)
		if err != nil {
			return nil, fmt.Errorf("failed to check cache: %w", err)
		}
		if cached != nil {
			return &CachedResult{
				Result: &Result{
					URL:        cached.URL,
					HTML:       derefString(cached.RawHTML),
					Text:       derefString(cached.CleanedText),
					StatusCode: derefInt(cached.HTTPStatus),
				},
				Platform:  platform,
				FromCache: true,
				PostingID: cached.ID,
			}, nil
		}
	}

	result, err := URL(ctx, urlStr, f.options)
	if err != nil {
		if f.db != nil {
			var status *int
			if result != nil {
				status = &result.StatusCode
			}
			if recErr := f.db.RecordFailedJobFetch(ctx, urlStr, status, err.Error()); recErr != nil {
				log.Printf("[FETCH] Failed to record fetch error for %s: %v", urlStr, recErr)
			}
		}
		return nil, err
	}

	text, err := ExtractMainText(result.HTML, platform.ContentSelectors(), platform.NoiseSelectors()...)
	if err != nil {
		return nil, err
	}
	result.Text = text

	cachedResult := &CachedResult{
		Result:    result,
		Platform:  platform,
		FromCache: false,
	}

	if f.db != nil {
		posting, err := f.db.UpsertJobPosting(ctx, &db.JobPostingCreateInput{
			URL:         urlStr,
			Platform:    string(platform),
			RawHTML:     result.HTML,
			CleanedText: result.Text,
			HTTPStatus:  result.StatusCode,
		})
		if err != nil {
			// The fetch itself succeeded; caching is best-effort.
			log.Printf("[FETCH] Failed to cache job posting for %s: %v", urlStr, err)
		} else {
			cachedResult.PostingID = posting.ID
		}
	}

	return cachedResult, nil
}

// FetchWithTimeout is Fetch with a per-call deadline.
func (f *CachedFetcher) FetchWithTimeout(ctx context.Context, urlStr string, timeout time.Duration) (*CachedResult, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return f.Fetch(ctx, urlStr)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
