package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GetJobPostingByURL retrieves a cached job posting by its URL. Returns
// nil when the URL has never been fetched.
func (db *DB) GetJobPostingByURL(ctx context.Context, url string) (*JobPosting, error) {
	var p JobPosting
	err := db.pool.QueryRow(ctx,
		`SELECT id, url, role_title, company, platform, raw_html, cleaned_text,
		        content_hash, http_status, fetch_status, error_message,
		        fetched_at, expires_at, created_at, updated_at
		 FROM job_postings WHERE url = $1`,
		url,
	).Scan(&p.ID, &p.URL, &p.RoleTitle, &p.Company, &p.Platform, &p.RawHTML,
		&p.CleanedText, &p.ContentHash, &p.HTTPStatus, &p.FetchStatus, &p.ErrorMessage,
		&p.FetchedAt, &p.ExpiresAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job posting: %w", err)
	}
	return &p, nil
}

// GetJobPostingByID retrieves a cached job posting by ID
func (db *DB) GetJobPostingByID(ctx context.Context, id uuid.UUID) (*JobPosting, error) {
	var p JobPosting
	err := db.pool.QueryRow(ctx,
		`SELECT id, url, role_title, company, platform, raw_html, cleaned_text,
		        content_hash, http_status, fetch_status, error_message,
		        fetched_at, expires_at, created_at, updated_at
		 FROM job_postings WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.URL, &p.RoleTitle, &p.Company, &p.Platform, &p.RawHTML,
		&p.CleanedText, &p.ContentHash, &p.HTTPStatus, &p.FetchStatus, &p.ErrorMessage,
		&p.FetchedAt, &p.ExpiresAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job posting: %w", err)
	}
	return &p, nil
}

// GetFreshJobPosting retrieves a posting only if it was fetched
// successfully and has not expired
func (db *DB) GetFreshJobPosting(ctx context.Context, url string) (*JobPosting, error) {
	posting, err := db.GetJobPostingByURL(ctx, url)
	if err != nil {
		return nil, err
	}
	if posting == nil || posting.FetchStatus != FetchStatusSuccess || posting.IsExpired() {
		return nil, nil
	}
	return posting, nil
}

// UpsertJobPosting caches a successfully fetched job posting
func (db *DB) UpsertJobPosting(ctx context.Context, input *JobPostingCreateInput) (*JobPosting, error) {
	contentHash := HashJobContent(input.CleanedText)
	expiresAt := time.Now().Add(DefaultJobPostingCacheTTL)

	var p JobPosting
	err := db.pool.QueryRow(ctx,
		`INSERT INTO job_postings (url, role_title, company, platform, raw_html,
		                           cleaned_text, content_hash, http_status,
		                           fetch_status, fetched_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'success', NOW(), $9)
		 ON CONFLICT (url) DO UPDATE SET
		     role_title = $2,
		     company = $3,
		     platform = $4,
		     raw_html = $5,
		     cleaned_text = $6,
		     content_hash = $7,
		     http_status = $8,
		     fetch_status = 'success',
		     error_message = NULL,
		     fetched_at = NOW(),
		     expires_at = $9,
		     updated_at = NOW()
		 RETURNING id, url, role_title, company, platform, content_hash, fetch_status,
		           fetched_at, expires_at, created_at, updated_at`,
		input.URL, nullIfEmpty(input.RoleTitle), nullIfEmpty(input.Company),
		nullIfEmpty(input.Platform), input.RawHTML, input.CleanedText, contentHash,
		input.HTTPStatus, expiresAt,
	).Scan(&p.ID, &p.URL, &p.RoleTitle, &p.Company, &p.Platform, &p.ContentHash,
		&p.FetchStatus, &p.FetchedAt, &p.ExpiresAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert job posting: %w", err)
	}
	return &p, nil
}

// RecordFailedJobFetch records a failed fetch attempt. Failed entries
// expire after an hour so transient errors get retried.
func (db *DB) RecordFailedJobFetch(ctx context.Context, url string, httpStatus *int, errorMsg string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO job_postings (url, http_status, fetch_status, error_message, fetched_at, expires_at)
		 VALUES ($1, $2, 'error', $3, NOW(), NOW() + INTERVAL '1 hour')
		 ON CONFLICT (url) DO UPDATE SET
		     http_status = $2,
		     fetch_status = 'error',
		     error_message = $3,
		     fetched_at = NOW(),
		     updated_at = NOW()`,
		url, httpStatus, errorMsg,
	)
	if err != nil {
		return fmt.Errorf("failed to record failed job fetch: %w", err)
	}
	return nil
}

// ShouldSkipURL reports whether a URL recently failed and is still in
// its backoff window, along with the recorded error.
func (db *DB) ShouldSkipURL(ctx context.Context, url string) (bool, string, error) {
	posting, err := db.GetJobPostingByURL(ctx, url)
	if err != nil {
		return false, "", err
	}
	if posting == nil || posting.FetchStatus != FetchStatusError || posting.IsExpired() {
		return false, "", nil
	}
	reason := "previous fetch failed"
	if posting.ErrorMessage != nil {
		reason = *posting.ErrorMessage
	}
	return true, reason, nil
}

// ListJobPostings retrieves cached postings, newest first
func (db *DB) ListJobPostings(ctx context.Context, limit int) ([]JobPosting, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, url, role_title, company, platform, content_hash, fetch_status,
		        fetched_at, expires_at, created_at, updated_at
		 FROM job_postings
		 ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	var postings []JobPosting
	for rows.Next() {
		var p JobPosting
		if err := rows.Scan(&p.ID, &p.URL, &p.RoleTitle, &p.Company, &p.Platform,
			&p.ContentHash, &p.FetchStatus, &p.FetchedAt, &p.ExpiresAt,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		postings = append(postings, p)
	}
	return postings, nil
}

// DeleteExpiredPostings removes postings past their expiry
func (db *DB) DeleteExpiredPostings(ctx context.Context) (int64, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM job_postings WHERE expires_at IS NOT NULL AND expires_at < NOW()`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired postings: %w", err)
	}
	return result.RowsAffected(), nil
}
