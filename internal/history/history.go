// Package history records every generated commit message and what became of it.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wizzomafizzo/gitmind/internal/database"
)

// Outcome describes what the user did with a generation.
type Outcome string

const (
	OutcomePending     Outcome = "pending"
	OutcomeCommitted   Outcome = "committed"
	OutcomeRegenerated Outcome = "regenerated"
	OutcomeCancelled   Outcome = "cancelled"
	OutcomeFailed      Outcome = "failed"
)

// DefaultLimit is the number of entries Recent returns for a non-positive limit.
const DefaultLimit = 10

// ErrNotFound is returned when an entry id does not exist.
var ErrNotFound = errors.New("history entry not found")

// Entry is one generation round.
type Entry struct {
	CreatedAt time.Time
	ID        string
	Repo      string
	Branch    string
	Provider  string
	Model     string
	Raw       string
	Message   string
	Outcome   Outcome
}

// Store persists entries in the gitmind database.
type Store struct {
	db   *sql.DB
	repo string
}

// NewStore creates a store scoped to the given repository root.
func NewStore(manager *database.Manager, repo string) *Store {
	return &Store{db: manager.DB(), repo: repo}
}

// Add records a new pending entry and returns its id.
func (s *Store) Add(ctx context.Context, entry *Entry) (string, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Outcome == "" {
		entry.Outcome = OutcomePending
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	entry.Repo = s.repo

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO generations (id, repo, branch, provider, model, raw, message, outcome, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Repo, entry.Branch, entry.Provider, entry.Model,
		entry.Raw, entry.Message, string(entry.Outcome),
		entry.CreatedAt.Unix(), entry.CreatedAt.Unix())
	if err != nil {
		return "", fmt.Errorf("failed to add history entry: %w", err)
	}
	return entry.ID, nil
}

// Resolve records the outcome of an entry. An empty message keeps the one
// stored when the entry was added.
func (s *Store) Resolve(ctx context.Context, id string, outcome Outcome, message string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE generations SET outcome = ?, message = COALESCE(NULLIF(?, ''), message), updated_at = unixepoch()
		WHERE id = ? AND repo = ?`,
		string(outcome), message, id, s.repo)
	if err != nil {
		return fmt.Errorf("failed to update history entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update history entry: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// Recent returns the newest entries for the repository, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, repo, branch, provider, model, raw, message, outcome, created_at
		FROM generations WHERE repo = ?
		ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		s.repo, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var (
			entry     Entry
			outcome   string
			createdAt int64
		)
		if err := rows.Scan(&entry.ID, &entry.Repo, &entry.Branch, &entry.Provider, &entry.Model,
			&entry.Raw, &entry.Message, &outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entry.Outcome = Outcome(outcome)
		entry.CreatedAt = time.Unix(createdAt, 0)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	return entries, nil
}
