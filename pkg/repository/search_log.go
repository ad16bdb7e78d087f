package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/luvbee/discovery/pkg/domain"
)

// SearchLogRepository records external nearby searches
type SearchLogRepository struct {
	db *sqlx.DB
}

// NewSearchLogRepository creates a new search log repository
func NewSearchLogRepository(db *sqlx.DB) *SearchLogRepository {
	return &SearchLogRepository{db: db}
}

// Record stores a search log entry
func (r *SearchLogRepository) Record(ctx context.Context, entry domain.SearchLog) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	return withRetry(ctx, "record search log", func() error {
		query := `
			INSERT INTO search_cache_logs (latitude, longitude, radius, search_type, created_at)
			VALUES (?, ?, ?, ?, ?)
		`
		_, err := r.db.ExecContext(ctx, query, entry.Lat, entry.Lng, entry.Radius, entry.SearchType, entry.CreatedAt.UTC())
		return err
	})
}

// CountSince returns the number of searches logged after since
func (r *SearchLogRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM search_cache_logs WHERE created_at >= ?", since.UTC()); err != nil {
		return 0, fmt.Errorf("count search logs: %w", err)
	}
	return count, nil
}
