package places

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/luvbee/discovery/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/search_logger.go -pkg mocks -skip-ensure -fmt goimports . SearchLogger

// DefaultTypes are the place types searched in normal mode
var DefaultTypes = []string{"night_club", "bar", "restaurant", "cafe", "park", "art_gallery"}

// SoloTypes are the place types searched in solo mode
var SoloTypes = []string{"night_club", "bar"}

// textSearchType is recorded in search logs for keyword queries
const textSearchType = "text"

// Searcher performs external place searches
type Searcher interface {
	Nearby(ctx context.Context, lat, lng, radius float64, types []string) ([]Place, error)
	Text(ctx context.Context, query string, lat, lng, radius float64) ([]Place, error)
}

// Store persists places
type Store interface {
	UpsertPlace(ctx context.Context, loc *domain.Location) (bool, error)
}

// SearchLogger records performed searches
type SearchLogger interface {
	Record(ctx context.Context, entry domain.SearchLog) error
}

// PopulatorParams configures the populator
type PopulatorParams struct {
	Searcher  Searcher
	Store     Store
	SearchLog SearchLogger
	MinRating float64
	Types     []string // normal mode types, DefaultTypes if empty
}

// Populator searches places near a point and upserts them into the store
type Populator struct {
	searcher  Searcher
	store     Store
	searchLog SearchLogger
	minRating float64
	types     []string
}

// NewPopulator creates a populator
func NewPopulator(params PopulatorParams) *Populator {
	types := params.Types
	if len(types) == 0 {
		types = DefaultTypes
	}
	return &Populator{
		searcher:  params.Searcher,
		store:     params.Store,
		searchLog: params.SearchLog,
		minRating: params.MinRating,
		types:     types,
	}
}

// SearchNearby fetches places around the point, keeps those rated at least MinRating,
// de-duplicates them by place id and upserts them. Individual write failures are collected in the result.
func (p *Populator) SearchNearby(ctx context.Context, req domain.PlaceSearch) (domain.PlaceSearchResult, error) {
	types := p.types
	if req.Mode == domain.ModeSolo {
		types = SoloTypes
	}

	var found []Place
	var err error
	searchType := strings.Join(types, "|")
	if req.Keyword != "" {
		found, err = p.searcher.Text(ctx, req.Keyword, req.Lat, req.Lng, req.Radius)
		searchType = textSearchType
	} else {
		found, err = p.searcher.Nearby(ctx, req.Lat, req.Lng, req.Radius, types)
	}
	if err != nil {
		return domain.PlaceSearchResult{}, fmt.Errorf("search nearby places: %w", err)
	}

	res := domain.PlaceSearchResult{}
	seen := make(map[string]struct{}, len(found))
	for _, place := range found {
		if place.ID == "" || place.Rating < p.minRating {
			continue
		}
		if _, ok := seen[place.ID]; ok {
			continue
		}
		seen[place.ID] = struct{}{}
		res.Found++

		loc := toLocation(place)
		if _, err := p.store.UpsertPlace(ctx, &loc); err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("save place %s: %v", loc.Name, err))
			continue
		}
		res.Saved++
	}

	if p.searchLog != nil {
		entry := domain.SearchLog{Lat: req.Lat, Lng: req.Lng, Radius: clampRadius(req.Radius), SearchType: searchType}
		if err := p.searchLog.Record(ctx, entry); err != nil {
			lgr.Printf("[WARN] failed to record search log: %v", err)
		}
	}

	lgr.Printf("[DEBUG] places near %.5f,%.5f r=%.0f: found %d, saved %d, errors %d",
		req.Lat, req.Lng, req.Radius, res.Found, res.Saved, len(res.Errors))
	return res, nil
}
