package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luvbee/discovery/pkg/domain"
)

func testPlace(placeID string, lat, lng float64) *domain.Location {
	return &domain.Location{
		PlaceID:  placeID,
		Name:     "Place " + placeID,
		Address:  "Rua Augusta, 100 - Consolação, São Paulo - SP, Brasil",
		Category: "bar",
		Lat:      lat,
		Lng:      lng,
		City:     "São Paulo",
		State:    "SP",
		Rating:   4.5,
		IsActive: true,
	}
}

func testEvent(sourceID string, lat, lng float64, start time.Time) *domain.Location {
	return &domain.Location{
		SourceID:   sourceID,
		Name:       "Event " + sourceID,
		Category:   "event",
		Lat:        lat,
		Lng:        lng,
		City:       "sao-paulo",
		State:      "sp",
		IsActive:   true,
		EventStart: &start,
	}
}

func TestLocationRepository_UpsertPlace(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	place := testPlace("gp-1", -23.55, -46.63)
	created, err := repos.Location.UpsertPlace(ctx, place)
	require.NoError(t, err)
	assert.True(t, created)
	require.NotEmpty(t, place.ID)
	firstID := place.ID

	// same place id updates the existing row and keeps its id
	updated := testPlace("gp-1", -23.55, -46.63)
	updated.Name = "Renamed"
	updated.Rating = 4.9
	created, err = repos.Location.UpsertPlace(ctx, updated)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, firstID, updated.ID)

	got, err := repos.Location.GetLocation(ctx, firstID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.InDelta(t, 4.9, got.Rating, 1e-9)
	assert.Equal(t, "gp-1", got.PlaceID)
	assert.Empty(t, got.SourceID)
	assert.False(t, got.IsEvent())
	assert.True(t, got.IsActive)

	_, err = repos.Location.UpsertPlace(ctx, &domain.Location{Name: "no id"})
	require.Error(t, err)
}

func TestLocationRepository_UpsertEvent(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	start := time.Date(2026, 11, 20, 22, 0, 0, 0, time.UTC)
	ev := testEvent("sympla-123", -23.56, -46.65, start)
	ev.TicketURL = "https://example.com/tickets/123"
	created, err := repos.Location.UpsertEvent(ctx, ev)
	require.NoError(t, err)
	assert.True(t, created)

	again := testEvent("sympla-123", -23.56, -46.65, start.Add(time.Hour))
	created, err = repos.Location.UpsertEvent(ctx, again)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, ev.ID, again.ID)

	got, err := repos.Location.GetLocation(ctx, ev.ID)
	require.NoError(t, err)
	require.True(t, got.IsEvent())
	assert.True(t, start.Add(time.Hour).Equal(*got.EventStart), "got %v", got.EventStart)
	assert.Nil(t, got.EventEnd)
	assert.Equal(t, "https://example.com/tickets/123", ev.TicketURL)
	assert.Empty(t, got.TicketURL, "ticket url replaced by the latest write")

	// places and events without place id do not collide on the null place_id
	created, err = repos.Location.UpsertEvent(ctx, testEvent("other-1", 0, 0, start))
	require.NoError(t, err)
	assert.True(t, created)
}

func TestLocationRepository_GetLocationNotFound(t *testing.T) {
	repos := setupTestDB(t)
	_, err := repos.Location.GetLocation(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLocationRepository_QueryNear(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	start := time.Now().Add(48 * time.Hour)
	inside := testPlace("inside", -23.551, -46.634)
	outside := testPlace("outside", -22.9, -43.17)
	inactive := testPlace("inactive", -23.552, -46.632)
	inactive.IsActive = false
	placeholderEvent := testEvent("placeholder", 0, 0, start)
	placeholderPlace := testPlace("zero-place", 0, 0)

	for _, p := range []*domain.Location{inside, outside, inactive, placeholderPlace} {
		_, err := repos.Location.UpsertPlace(ctx, p)
		require.NoError(t, err)
	}
	_, err := repos.Location.UpsertEvent(ctx, placeholderEvent)
	require.NoError(t, err)

	res, err := repos.Location.QueryNear(ctx, domain.NearbyQuery{Lat: -23.55, Lng: -46.63, LatDelta: 0.05, LngDelta: 0.05, Limit: 50})
	require.NoError(t, err)

	ids := make([]string, 0, len(res))
	for _, l := range res {
		ids = append(ids, l.ID)
	}
	assert.ElementsMatch(t, []string{inside.ID, placeholderEvent.ID}, ids)
}

func TestLocationRepository_QueryNearOrderAndLimit(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	for i := range 5 {
		_, err := repos.Location.UpsertPlace(ctx, testPlace(fmt.Sprintf("p-%d", i), -23.55, -46.63))
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	res, err := repos.Location.QueryNear(ctx, domain.NearbyQuery{Lat: -23.55, Lng: -46.63, LatDelta: 0.01, LngDelta: 0.01, Limit: 3})
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, "p-4", res[0].PlaceID)
	assert.Equal(t, "p-3", res[1].PlaceID)
	assert.Equal(t, "p-2", res[2].PlaceID)
}

func TestLocationRepository_QueryNearAntimeridian(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	east := testPlace("east", -16.5, 179.99)
	west := testPlace("west", -16.5, -179.995)
	far := testPlace("far", -16.5, -179.0)
	for _, p := range []*domain.Location{east, west, far} {
		_, err := repos.Location.UpsertPlace(ctx, p)
		require.NoError(t, err)
	}

	res, err := repos.Location.QueryNear(ctx, domain.NearbyQuery{Lat: -16.5, Lng: 179.99, LatDelta: 0.05, LngDelta: 0.05, Limit: 50})
	require.NoError(t, err)
	ids := make([]string, 0, len(res))
	for _, l := range res {
		ids = append(ids, l.PlaceID)
	}
	assert.ElementsMatch(t, []string{"east", "west"}, ids)
}

func TestLocationRepository_DeactivateEndedEvents(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	now := time.Now()

	past := now.Add(-48 * time.Hour)
	pastEnd := now.Add(-46 * time.Hour)
	ended := testEvent("ended", -23.55, -46.63, past)
	ended.EventEnd = &pastEnd

	startedNoEnd := testEvent("started", -23.55, -46.63, now.Add(-time.Hour))

	runningEnd := now.Add(2 * time.Hour)
	running := testEvent("running", -23.55, -46.63, now.Add(-time.Hour))
	running.EventEnd = &runningEnd

	upcoming := testEvent("upcoming", -23.55, -46.63, now.Add(24*time.Hour))

	for _, ev := range []*domain.Location{ended, startedNoEnd, running, upcoming} {
		_, err := repos.Location.UpsertEvent(ctx, ev)
		require.NoError(t, err)
	}
	_, err := repos.Location.UpsertPlace(ctx, testPlace("place", -23.55, -46.63))
	require.NoError(t, err)

	n, err := repos.Location.DeactivateEndedEvents(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	stats, err := repos.Location.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, LocationStats{Places: 1, Events: 2}, stats)

	got, err := repos.Location.GetLocation(ctx, ended.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	// second pass has nothing left to do
	n, err = repos.Location.DeactivateEndedEvents(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestLocationRepository_StatsEmpty(t *testing.T) {
	repos := setupTestDB(t)
	stats, err := repos.Location.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, LocationStats{}, stats)
}
