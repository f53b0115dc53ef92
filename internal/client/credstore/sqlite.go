package credstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Querier is the part of database/sql the store needs. *sql.DB, *sql.Tx and
// *sql.Conn all satisfy it.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLiteStore stores the token in the metadata table of the profile database.
type SQLiteStore struct {
	db Querier
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(db Querier) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Read(ctx context.Context) (string, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, TokenKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read credential: %w", err)
	}
	if len(value) == 0 {
		return "", false, nil
	}
	return string(value), true, nil
}

func (s *SQLiteStore) Write(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, TokenKey, []byte(token))
	if err != nil {
		return fmt.Errorf("failed to write credential: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, TokenKey)
	if err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	return nil
}
