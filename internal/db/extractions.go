package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveExtraction stores a keyword extraction snapshot
func (db *DB) SaveExtraction(ctx context.Context, input *ExtractionCreateInput) (*Extraction, error) {
	keywordsJSON, err := json.Marshal(input.Keywords)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal keywords: %w", err)
	}

	e := Extraction{
		UserID:   input.UserID,
		Source:   input.Source,
		JobURL:   nullIfEmpty(input.JobURL),
		Keywords: input.Keywords,
	}
	err = db.pool.QueryRow(ctx,
		`INSERT INTO extractions (user_id, source, job_url, keywords)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		input.UserID, input.Source, nullIfEmpty(input.JobURL), keywordsJSON,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save extraction: %w", err)
	}
	return &e, nil
}

// GetExtraction retrieves an extraction snapshot by ID. Returns nil when not found.
func (db *DB) GetExtraction(ctx context.Context, id uuid.UUID) (*Extraction, error) {
	var e Extraction
	var keywordsJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, source, job_url, keywords, created_at
		 FROM extractions WHERE id = $1`,
		id,
	).Scan(&e.ID, &e.UserID, &e.Source, &e.JobURL, &keywordsJSON, &e.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get extraction: %w", err)
	}

	if keywordsJSON != nil {
		if err := json.Unmarshal(keywordsJSON, &e.Keywords); err != nil {
			return nil, fmt.Errorf("failed to parse stored keywords: %w", err)
		}
	}
	return &e, nil
}

// ExtractionFilters holds optional filters for listing extractions
type ExtractionFilters struct {
	UserID uuid.UUID
	Source string
	Limit  int
}

// ListExtractions retrieves extraction snapshots, newest first
func (db *DB) ListExtractions(ctx context.Context, filters ExtractionFilters) ([]Extraction, error) {
	if filters.Limit <= 0 {
		filters.Limit = 50
	}

	query := `SELECT id, user_id, source, job_url, keywords, created_at
		FROM extractions WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.UserID != uuid.Nil {
		query += fmt.Sprintf(" AND user_id = $%d", argNum)
		args = append(args, filters.UserID)
		argNum++
	}
	if filters.Source != "" {
		query += fmt.Sprintf(" AND source = $%d", argNum)
		args = append(args, filters.Source)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list extractions: %w", err)
	}
	defer rows.Close()

	var extractions []Extraction
	for rows.Next() {
		var e Extraction
		var keywordsJSON []byte
		if err := rows.Scan(&e.ID, &e.UserID, &e.Source, &e.JobURL, &keywordsJSON, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan extraction: %w", err)
		}
		if keywordsJSON != nil {
			_ = json.Unmarshal(keywordsJSON, &e.Keywords)
		}
		extractions = append(extractions, e)
	}
	return extractions, nil
}

// DeleteExtraction deletes an extraction snapshot
func (db *DB) DeleteExtraction(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM extractions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete extraction: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("extraction not found: %s", id)
	}
	return nil
}
