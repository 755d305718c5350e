package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PostgresStore implements the document store on top of a PostgreSQL
// documents table. Each key maps to one JSONB value; the whole-document
// read/write semantics are identical to the file backend.
type PostgresStore struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresStore creates a PostgresStore with the given database connection.
// db must be a valid *sql.DB connected to a PostgreSQL instance with the
// documents table created (see the db package).
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

// Read returns the document stored under key, or ErrNotFound.
func (s *PostgresStore) Read(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.DB.QueryRowContext(
		ctx,
		`SELECT value FROM documents WHERE key = $1`,
		key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read document %q: %w", key, err)
	}
	return value, nil
}

// Write stores value under key, replacing any previous document.
func (s *PostgresStore) Write(ctx context.Context, key string, value []byte) error {
	_, err := s.DB.ExecContext(
		ctx,
		`INSERT INTO documents (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("write document %q: %w", key, err)
	}
	return nil
}

// Delete removes the document under key. Deleting an absent key is a no-op.
func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM documents WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("delete document %q: %w", key, err)
	}
	return nil
}
