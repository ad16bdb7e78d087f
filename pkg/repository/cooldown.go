package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// CooldownRepository persists the last population time per cooldown key
type CooldownRepository struct {
	db *sqlx.DB
}

// NewCooldownRepository creates a new cooldown repository
func NewCooldownRepository(db *sqlx.DB) *CooldownRepository {
	return &CooldownRepository{db: db}
}

// Get returns the stored population time for key, ok is false when none is stored
func (r *CooldownRepository) Get(ctx context.Context, key string) (time.Time, bool, error) {
	var ts time.Time
	err := r.db.GetContext(ctx, &ts, "SELECT populated_at FROM populate_cooldowns WHERE cooldown_key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("get cooldown %s: %w", key, err)
	}
	return ts, true, nil
}

// Set stores the population time for key
func (r *CooldownRepository) Set(ctx context.Context, key string, ts time.Time) error {
	return withRetry(ctx, "set cooldown", func() error {
		query := `
			INSERT INTO populate_cooldowns (cooldown_key, populated_at) VALUES (?, ?)
			ON CONFLICT(cooldown_key) DO UPDATE SET populated_at = excluded.populated_at
		`
		_, err := r.db.ExecContext(ctx, query, key, ts.UTC())
		return err
	})
}
