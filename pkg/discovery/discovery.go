// Package discovery assembles the location feed: it queries cached places and events near a point,
// filters out locations the user already acted upon, and populates the cache from external sources
// when the result is too sparse.
package discovery

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/luvbee/discovery/pkg/domain"
)

//go:generate moq -out mocks/location_store.go -pkg mocks -skip-ensure -fmt goimports . LocationStore
//go:generate moq -out mocks/interaction_store.go -pkg mocks -skip-ensure -fmt goimports . InteractionStore
//go:generate moq -out mocks/place_source.go -pkg mocks -skip-ensure -fmt goimports . PlaceSource
//go:generate moq -out mocks/event_source.go -pkg mocks -skip-ensure -fmt goimports . EventSource
//go:generate moq -out mocks/cooldown_hints.go -pkg mocks -skip-ensure -fmt goimports . CooldownHints

// defaults
const (
	DefaultMinFeedItems  = 5
	DefaultPopulateTTL   = 15 * time.Minute
	DefaultQueryLimit    = 50
	DefaultEventRadiusKm = 50.0
	DefaultRadius        = 5000.0 // meters

	placeholderDistance = 1.0 // km, assigned to events without coordinates in the query city
)

// notice messages shown to users
const (
	msgFeedError   = "Erro ao carregar locais e eventos"
	msgStoreError  = "Erro ao carregar locais"
	msgNewEvents   = "Novos eventos encontrados!"
	msgPlacesError = "Erro ao buscar novos locais"
	msgEventsError = "Erro ao buscar novos eventos"
)

// LocationStore queries cached locations inside a bounding box
type LocationStore interface {
	QueryNear(ctx context.Context, q domain.NearbyQuery) ([]domain.Location, error)
}

// InteractionStore returns ids of locations a user matched or rejected
type InteractionStore interface {
	MatchedIDs(ctx context.Context, userID string) ([]string, error)
	RejectedIDs(ctx context.Context, userID string) ([]string, error)
}

// PlaceSource searches an external places API and stores the results
type PlaceSource interface {
	SearchNearby(ctx context.Context, req domain.PlaceSearch) (domain.PlaceSearchResult, error)
}

// EventSource discovers events for a city and stores them
type EventSource interface {
	Discover(ctx context.Context, req domain.EventSearch) (domain.EventSearchResult, error)
}

// Request is a feed request
type Request struct {
	Lat    float64     `json:"lat"`
	Lng    float64     `json:"lng"`
	Radius float64     `json:"radius"` // meters
	UserID string      `json:"user_id,omitempty"`
	Mode   domain.Mode `json:"mode,omitempty"`
}

// CooldownKey returns the population cooldown key for a request, "lat|lng|radius|mode".
// Coordinates are used as is, nearby points produce different keys.
func CooldownKey(req Request) string {
	return strings.Join([]string{formatFloat(req.Lat), formatFloat(req.Lng), formatFloat(req.Radius),
		string(domain.ParseMode(string(req.Mode)))}, "|")
}

// FeedKey returns the in-flight deduplication key, "lat|lng|radius|userID", with "|mode" appended
// for non-default modes
func FeedKey(req Request) string {
	key := strings.Join([]string{formatFloat(req.Lat), formatFloat(req.Lng), formatFloat(req.Radius), req.UserID}, "|")
	if mode := domain.ParseMode(string(req.Mode)); mode != domain.ModeNormal {
		key += "|" + string(mode)
	}
	return key
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
