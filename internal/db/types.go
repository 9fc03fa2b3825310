package db

import (
	"crypto/sha256"
	"database/sql/driver"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/skill-extractor/internal/keywords"
)

// DefaultJobPostingCacheTTL is how long before a cached job posting is
// considered stale and re-fetched.
const DefaultJobPostingCacheTTL = 7 * 24 * time.Hour

// Fetch status constants for cached job postings
const (
	FetchStatusSuccess = "success"
	FetchStatusError   = "error"
)

// User represents a user profile
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet  bool      `json:"password_set" db:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Extraction is a stored keyword extraction result. Source records where
// the text came from ("resume", "job", "text").
type Extraction struct {
	ID        uuid.UUID          `json:"id"`
	UserID    *uuid.UUID         `json:"user_id,omitempty"`
	Source    string             `json:"source"`
	JobURL    *string            `json:"job_url,omitempty"`
	Keywords  []keywords.Keyword `json:"keywords"`
	CreatedAt time.Time          `json:"created_at"`
}

// ExtractionCreateInput is used when saving a new extraction snapshot
type ExtractionCreateInput struct {
	UserID   *uuid.UUID
	Source   string
	JobURL   string
	Keywords []keywords.Keyword
}

// GapSnapshot is a stored skill-gap computation
type GapSnapshot struct {
	ID        uuid.UUID   `json:"id"`
	UserID    *uuid.UUID  `json:"user_id,omitempty"`
	JobURL    *string     `json:"job_url,omitempty"`
	Matched   StringArray `json:"matched"`
	Missing   StringArray `json:"missing"`
	CreatedAt time.Time   `json:"created_at"`
}

// JobPosting represents a fetched job posting held in the fetch cache
type JobPosting struct {
	ID          uuid.UUID `json:"id"`
	URL         string    `json:"url"`
	RoleTitle   *string   `json:"role_title,omitempty"`
	Company     *string   `json:"company,omitempty"`
	Platform    *string   `json:"platform,omitempty"`
	RawHTML     *string   `json:"-"` // Don't serialize (large)
	CleanedText *string   `json:"cleaned_text,omitempty"`
	ContentHash *string   `json:"content_hash,omitempty"`

	// Caching
	HTTPStatus   *int       `json:"http_status,omitempty"`
	FetchStatus  string     `json:"fetch_status"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	FetchedAt    time.Time  `json:"fetched_at"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// JobPostingCreateInput is used when caching a fetched job posting
type JobPostingCreateInput struct {
	URL         string
	RoleTitle   string
	Company     string
	Platform    string
	RawHTML     string
	CleanedText string
	HTTPStatus  int
}

// IsFresh returns true if the posting hasn't expired
func (p *JobPosting) IsFresh() bool {
	if p.ExpiresAt == nil {
		return false
	}
	return time.Now().Before(*p.ExpiresAt)
}

// IsExpired returns true if the posting has expired
func (p *JobPosting) IsExpired() bool {
	return !p.IsFresh()
}

// HashJobContent generates a SHA-256 hash of the cleaned text
func HashJobContent(text string) string {
	hash := sha256.Sum256([]byte(text))
	return hex.EncodeToString(hash[:])
}

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}
