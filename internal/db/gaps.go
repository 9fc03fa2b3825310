package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveGapSnapshot stores the result of a skill-gap computation
func (db *DB) SaveGapSnapshot(ctx context.Context, userID *uuid.UUID, jobURL string, matched, missing []string) (*GapSnapshot, error) {
	matchedJSON, err := json.Marshal(matched)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal matched skills: %w", err)
	}
	missingJSON, err := json.Marshal(missing)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal missing skills: %w", err)
	}

	s := GapSnapshot{
		UserID:  userID,
		JobURL:  nullIfEmpty(jobURL),
		Matched: matched,
		Missing: missing,
	}
	err = db.pool.QueryRow(ctx,
		`INSERT INTO gap_snapshots (user_id, job_url, matched, missing)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		userID, nullIfEmpty(jobURL), matchedJSON, missingJSON,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save gap snapshot: %w", err)
	}
	return &s, nil
}

// GetGapSnapshot retrieves a gap snapshot by ID. Returns nil when not found.
func (db *DB) GetGapSnapshot(ctx context.Context, id uuid.UUID) (*GapSnapshot, error) {
	var s GapSnapshot
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, job_url, matched, missing, created_at
		 FROM gap_snapshots WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.UserID, &s.JobURL, &s.Matched, &s.Missing, &s.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get gap snapshot: %w", err)
	}
	return &s, nil
}

// ListGapSnapshots retrieves a user's gap snapshots, newest first
func (db *DB) ListGapSnapshots(ctx context.Context, userID uuid.UUID, limit int) ([]GapSnapshot, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, job_url, matched, missing, created_at
		 FROM gap_snapshots WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list gap snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []GapSnapshot
	for rows.Next() {
		var s GapSnapshot
		if err := rows.Scan(&s.ID, &s.UserID, &s.JobURL, &s.Matched, &s.Missing, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan gap snapshot: %w", err)
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, nil
}

// DeleteGapSnapshot deletes a gap snapshot
func (db *DB) DeleteGapSnapshot(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM gap_snapshots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete gap snapshot: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("gap snapshot not found: %s", id)
	}
	return nil
}
