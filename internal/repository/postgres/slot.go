package postgres

import (
	"context"
	"database/sql"
)

// SlotRepo implements repository.SlotRepository on a PostgreSQL table
type SlotRepo struct {
	db *sql.DB
}

// NewSlotRepo creates a new slot repository
func NewSlotRepo(db *sql.DB) *SlotRepo {
	return &SlotRepo{db: db}
}

// Get returns the value stored under key, or nil if the slot is empty
func (r *SlotRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	query := `SELECT value FROM slots WHERE key = $1`
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return []byte(value), nil
}

// Set overwrites the slot with data
func (r *SlotRepo) Set(ctx context.Context, key string, data []byte) error {
	query := `
		INSERT INTO slots (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	_, err := r.db.ExecContext(ctx, query, key, string(data))
	return err
}
