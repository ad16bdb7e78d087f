package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/luvbee/discovery/pkg/domain"
)

// InteractionRepository stores user matches and rejections of locations
type InteractionRepository struct {
	db *sqlx.DB
}

// NewInteractionRepository creates a new interaction repository
func NewInteractionRepository(db *sqlx.DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

// Record stores an interaction, repeated records of the same pair are ignored
func (r *InteractionRepository) Record(ctx context.Context, in domain.Interaction) error {
	table, err := interactionTable(in.Kind)
	if err != nil {
		return err
	}
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now()
	}
	return withRetry(ctx, "record "+string(in.Kind), func() error {
		query := "INSERT OR IGNORE INTO " + table + " (user_id, location_id, created_at) VALUES (?, ?, ?)"
		_, err := r.db.ExecContext(ctx, query, in.UserID, in.LocationID, in.CreatedAt.UTC())
		return err
	})
}

// Remove deletes an interaction of the given kind
func (r *InteractionRepository) Remove(ctx context.Context, kind domain.InteractionKind, userID, locationID string) error {
	table, err := interactionTable(kind)
	if err != nil {
		return err
	}
	return withRetry(ctx, "remove "+string(kind), func() error {
		query := "DELETE FROM " + table + " WHERE user_id = ? AND location_id = ?"
		_, err := r.db.ExecContext(ctx, query, userID, locationID)
		return err
	})
}

// MatchedIDs returns ids of locations the user matched
func (r *InteractionRepository) MatchedIDs(ctx context.Context, userID string) ([]string, error) {
	return r.locationIDs(ctx, domain.InteractionMatch, userID)
}

// RejectedIDs returns ids of locations the user rejected
func (r *InteractionRepository) RejectedIDs(ctx context.Context, userID string) ([]string, error) {
	return r.locationIDs(ctx, domain.InteractionRejection, userID)
}

func (r *InteractionRepository) locationIDs(ctx context.Context, kind domain.InteractionKind, userID string) ([]string, error) {
	table, err := interactionTable(kind)
	if err != nil {
		return nil, err
	}
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, "SELECT location_id FROM "+table+" WHERE user_id = ?", userID); err != nil {
		return nil, fmt.Errorf("get %s ids: %w", kind, err)
	}
	return ids, nil
}

func interactionTable(kind domain.InteractionKind) (string, error) {
	switch kind {
	case domain.InteractionMatch:
		return "location_matches", nil
	case domain.InteractionRejection:
		return "location_rejections", nil
	default:
		return "", fmt.Errorf("unknown interaction kind %q", kind)
	}
}
