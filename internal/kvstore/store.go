package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/cheatsheet/internal/db"
	"github.com/ziadkadry99/cheatsheet/internal/theme"
)

// Event records one write to a key.
type Event struct {
	ID            string
	Key           string
	PreviousValue string
	NewValue      string
	CreatedAt     time.Time
}

// Store is a durable string key-value store with a change history.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

var _ theme.Storage = (*Store)(nil)

// Get returns the value for key and whether it exists.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}
	return value, true, nil
}

// Set overwrites the value for key. A history event is appended when the
// value changes.
func (s *Store) Set(ctx context.Context, key, value string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var previous sql.NullString
	err = tx.QueryRowContext(ctx, "SELECT value FROM preferences WHERE key = ?", key).Scan(&previous)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("reading previous %s: %w", key, err)
	}

	if previous.Valid && previous.String == value {
		return tx.Commit()
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value)
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO preference_events (id, seq, key, previous_value, new_value)
		VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM preference_events), ?, ?, ?)`,
		uuid.NewString(), key, previous, value)
	if err != nil {
		return fmt.Errorf("recording %s event: %w", key, err)
	}

	return tx.Commit()
}

// History returns the events for key, newest first. A limit of 0 means all.
func (s *Store) History(ctx context.Context, key string, limit int) ([]Event, error) {
	query := `SELECT id, key, previous_value, new_value, created_at
		FROM preference_events WHERE key = ? ORDER BY seq DESC`
	args := []any{key}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying %s history: %w", key, err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			e        Event
			previous sql.NullString
			ts       string
		)
		if err := rows.Scan(&e.ID, &e.Key, &previous, &e.NewValue, &ts); err != nil {
			return nil, err
		}
		if previous.Valid {
			e.PreviousValue = previous.String
		}
		if t, parseErr := time.Parse(time.DateTime, ts); parseErr == nil {
			e.CreatedAt = t
		} else if t, parseErr := time.Parse(time.RFC3339, ts); parseErr == nil {
			e.CreatedAt = t
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
