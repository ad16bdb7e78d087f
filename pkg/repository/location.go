package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/luvbee/discovery/pkg/domain"
	"github.com/luvbee/discovery/pkg/geo"
)

// LocationRepository handles cached places and events
type LocationRepository struct {
	db *sqlx.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *sqlx.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// locationRow is the database shape of a location
type locationRow struct {
	ID           string         `db:"id"`
	PlaceID      sql.NullString `db:"place_id"`
	SourceID     sql.NullString `db:"source_id"`
	Name         string         `db:"name"`
	Address      string         `db:"address"`
	Category     string         `db:"category"`
	Description  string         `db:"description"`
	ImageURL     string         `db:"image_url"`
	PhotoRef     string         `db:"photo_ref"`
	Lat          float64        `db:"lat"`
	Lng          float64        `db:"lng"`
	City         string         `db:"city"`
	State        string         `db:"state"`
	Rating       float64        `db:"rating"`
	RatingsTotal int            `db:"ratings_total"`
	PriceLevel   int            `db:"price_level"`
	IsAdult      bool           `db:"is_adult"`
	IsActive     bool           `db:"is_active"`
	EventStart   sql.NullTime   `db:"event_start_date"`
	EventEnd     sql.NullTime   `db:"event_end_date"`
	TicketURL    string         `db:"ticket_url"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// LocationStats holds counts of active rows
type LocationStats struct {
	Places int `db:"places" json:"places"`
	Events int `db:"events" json:"events"`
}

// QueryNear returns active locations inside the box around the query point, newest first.
// A box crossing the antimeridian matches both longitude ranges.
// Events stored without coordinates (0,0) are always included so the caller can match them by city.
func (r *LocationRepository) QueryNear(ctx context.Context, q domain.NearbyQuery) ([]domain.Location, error) {
	ranges := geo.LngRanges(q.Lng, q.LngDelta)
	lngConds := make([]string, 0, len(ranges))
	args := []any{q.Lat - q.LatDelta, q.Lat + q.LatDelta}
	for _, rng := range ranges {
		lngConds = append(lngConds, "lng BETWEEN ? AND ?")
		args = append(args, rng[0], rng[1])
	}
	args = append(args, q.Limit)

	query := `
		SELECT * FROM locations
		WHERE is_active = 1
		AND (
			(lat BETWEEN ? AND ? AND (` + strings.Join(lngConds, " OR ") + `))
			OR (lat = 0 AND lng = 0 AND event_start_date IS NOT NULL)
		)
		ORDER BY created_at DESC
		LIMIT ?
	`
	var rows []locationRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query near: %w", err)
	}

	res := make([]domain.Location, len(rows))
	for i := range rows {
		res[i] = rows[i].toDomain()
	}
	return res, nil
}

// GetLocation retrieves a location by id
func (r *LocationRepository) GetLocation(ctx context.Context, id string) (*domain.Location, error) {
	var row locationRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM locations WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get location %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get location %s: %w", id, err)
	}
	loc := row.toDomain()
	return &loc, nil
}

// UpsertPlace inserts or updates a place keyed by place_id. Reports true when a new row was created.
func (r *LocationRepository) UpsertPlace(ctx context.Context, loc *domain.Location) (bool, error) {
	if loc.PlaceID == "" {
		return false, errors.New("upsert place: empty place id")
	}
	return r.upsert(ctx, "place_id", loc.PlaceID, loc)
}

// UpsertEvent inserts or updates an event keyed by source_id. Reports true when a new row was created.
func (r *LocationRepository) UpsertEvent(ctx context.Context, loc *domain.Location) (bool, error) {
	if loc.SourceID == "" {
		return false, errors.New("upsert event: empty source id")
	}
	return r.upsert(ctx, "source_id", loc.SourceID, loc)
}

// upsert writes loc in a single transaction, keeping id and created_at of an existing row
func (r *LocationRepository) upsert(ctx context.Context, keyCol, keyVal string, loc *domain.Location) (bool, error) {
	var created bool
	err := withRetry(ctx, "upsert location", func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck // no-op after commit

		var existingID string
		err = tx.GetContext(ctx, &existingID, "SELECT id FROM locations WHERE "+keyCol+" = ?", keyVal)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			created = true
			if loc.ID == "" {
				loc.ID = uuid.NewString()
			}
		case err != nil:
			return fmt.Errorf("find existing: %w", err)
		default:
			created = false
			loc.ID = existingID
		}

		now := time.Now().UTC()
		row := toRow(loc)
		row.CreatedAt, row.UpdatedAt = now, now

		query := `
			INSERT INTO locations (
				id, place_id, source_id, name, address, category, description, image_url, photo_ref,
				lat, lng, city, state, rating, ratings_total, price_level, is_adult, is_active,
				event_start_date, event_end_date, ticket_url, created_at, updated_at
			) VALUES (
				:id, :place_id, :source_id, :name, :address, :category, :description, :image_url, :photo_ref,
				:lat, :lng, :city, :state, :rating, :ratings_total, :price_level, :is_adult, :is_active,
				:event_start_date, :event_end_date, :ticket_url, :created_at, :updated_at
			)
			ON CONFLICT(` + keyCol + `) DO UPDATE SET
				name = excluded.name,
				address = excluded.address,
				category = excluded.category,
				description = excluded.description,
				image_url = excluded.image_url,
				photo_ref = excluded.photo_ref,
				lat = excluded.lat,
				lng = excluded.lng,
				city = excluded.city,
				state = excluded.state,
				rating = excluded.rating,
				ratings_total = excluded.ratings_total,
				price_level = excluded.price_level,
				is_adult = excluded.is_adult,
				is_active = excluded.is_active,
				event_start_date = excluded.event_start_date,
				event_end_date = excluded.event_end_date,
				ticket_url = excluded.ticket_url,
				updated_at = excluded.updated_at
		`
		if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
			return fmt.Errorf("write: %w", err)
		}
		return tx.Commit()
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

// DeactivateEndedEvents marks events whose end (or start, when no end is known) is before now as inactive
func (r *LocationRepository) DeactivateEndedEvents(ctx context.Context, now time.Time) (int64, error) {
	var affected int64
	err := withRetry(ctx, "deactivate ended events", func() error {
		query := `
			UPDATE locations
			SET is_active = 0, updated_at = ?
			WHERE is_active = 1
			AND event_start_date IS NOT NULL
			AND COALESCE(event_end_date, event_start_date) < ?
		`
		res, err := r.db.ExecContext(ctx, query, now.UTC(), now.UTC())
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	return affected, err
}

// Stats returns counts of active places and events
func (r *LocationRepository) Stats(ctx context.Context) (LocationStats, error) {
	var stats LocationStats
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN event_start_date IS NULL THEN 1 ELSE 0 END), 0) AS places,
			COALESCE(SUM(CASE WHEN event_start_date IS NOT NULL THEN 1 ELSE 0 END), 0) AS events
		FROM locations
		WHERE is_active = 1
	`
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return LocationStats{}, fmt.Errorf("location stats: %w", err)
	}
	return stats, nil
}

func toRow(loc *domain.Location) locationRow {
	row := locationRow{
		ID:           loc.ID,
		PlaceID:      sql.NullString{String: loc.PlaceID, Valid: loc.PlaceID != ""},
		SourceID:     sql.NullString{String: loc.SourceID, Valid: loc.SourceID != ""},
		Name:         loc.Name,
		Address:      loc.Address,
		Category:     loc.Category,
		Description:  loc.Description,
		ImageURL:     loc.ImageURL,
		PhotoRef:     loc.PhotoRef,
		Lat:          loc.Lat,
		Lng:          loc.Lng,
		City:         loc.City,
		State:        loc.State,
		Rating:       loc.Rating,
		RatingsTotal: loc.RatingsTotal,
		PriceLevel:   loc.PriceLevel,
		IsAdult:      loc.IsAdult,
		IsActive:     loc.IsActive,
		TicketURL:    loc.TicketURL,
	}
	if loc.EventStart != nil && !loc.EventStart.IsZero() {
		row.EventStart = sql.NullTime{Time: loc.EventStart.UTC(), Valid: true}
	}
	if loc.EventEnd != nil && !loc.EventEnd.IsZero() {
		row.EventEnd = sql.NullTime{Time: loc.EventEnd.UTC(), Valid: true}
	}
	return row
}

func (row *locationRow) toDomain() domain.Location {
	loc := domain.Location{
		ID:           row.ID,
		PlaceID:      row.PlaceID.String,
		SourceID:     row.SourceID.String,
		Name:         row.Name,
		Address:      row.Address,
		Category:     row.Category,
		Description:  row.Description,
		ImageURL:     row.ImageURL,
		PhotoRef:     row.PhotoRef,
		Lat:          row.Lat,
		Lng:          row.Lng,
		City:         row.City,
		State:        row.State,
		Rating:       row.Rating,
		RatingsTotal: row.RatingsTotal,
		PriceLevel:   row.PriceLevel,
		IsAdult:      row.IsAdult,
		IsActive:     row.IsActive,
		TicketURL:    row.TicketURL,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	if row.EventStart.Valid {
		t := row.EventStart.Time
		loc.EventStart = &t
	}
	if row.EventEnd.Valid {
		t := row.EventEnd.Time
		loc.EventEnd = &t
	}
	return loc
}
