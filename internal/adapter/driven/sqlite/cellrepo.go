// Package sqlite provides SQLite-backed persistence adapters.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmswanson/walletvault/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.Cell = (*CellRepo)(nil)

// CellRepo is the SQLite implementation of the Cell port. Each key maps to one
// row in the cells table; values are opaque strings (the vault stores
// ciphertext here, never plaintext).
type CellRepo struct {
	db *DB
}

// NewCellRepo creates a new CellRepo on db.
func NewCellRepo(db *DB) *CellRepo {
	return &CellRepo{db: db}
}

// Get returns the value stored under key.
func (r *CellRepo) Get(ctx context.Context, key string) (string, bool, error) {
	const query = `SELECT value FROM cells WHERE key = ?`
	var value string
	err := r.db.Reader.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get cell %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores or replaces the value under key.
func (r *CellRepo) Set(ctx context.Context, key, value string) error {
	const query = `INSERT OR REPLACE INTO cells (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)`
	_, err := r.db.Writer.ExecContext(ctx, query, key, value)
	if err != nil {
		return fmt.Errorf("set cell %q: %w", key, err)
	}
	return nil
}

// Remove deletes the value under key. Removing an absent key is not an error.
func (r *CellRepo) Remove(ctx context.Context, key string) error {
	const query = `DELETE FROM cells WHERE key = ?`
	_, err := r.db.Writer.ExecContext(ctx, query, key)
	if err != nil {
		return fmt.Errorf("remove cell %q: %w", key, err)
	}
	return nil
}
