package statestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const stateSchema = `
CREATE TABLE IF NOT EXISTS state_entries (
    address    TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresStore persists state entries in PostgreSQL.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgres constructs a Postgres-backed store.
func NewPostgres(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the state table when it does not exist yet.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, stateSchema); err != nil {
		return fmt.Errorf("migrate state_entries: %w", err)
	}
	return nil
}

// Get returns the value stored at address.
func (s *PostgresStore) Get(ctx context.Context, address string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(ctx, `SELECT value FROM state_entries WHERE address = $1`, address).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select state %s: %w", address, err)
	}
	return value, true, nil
}

// Set upserts value at address.
func (s *PostgresStore) Set(ctx context.Context, address, value string) error {
	_, err := s.db.Exec(ctx, `INSERT INTO state_entries (address, value) VALUES ($1, $2)
        ON CONFLICT (address) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`, address, value)
	if err != nil {
		return fmt.Errorf("upsert state %s: %w", address, err)
	}
	return nil
}

// Ping verifies the pool can reach the database.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
