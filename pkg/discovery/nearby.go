package discovery

import (
	"cmp"
	"context"
	"fmt"
	"regexp"
	"slices"

	"github.com/go-pkgz/lgr"

	"github.com/luvbee/discovery/pkg/domain"
	"github.com/luvbee/discovery/pkg/geo"
)

// lowQualityNames matches places that are never worth showing in a nightlife feed
var lowQualityNames = regexp.MustCompile(`(?i)playground|parquinho|pracinha|quadra|campo de futebol|pista de skate|` +
	`academia ao ar livre|ponto de ônibus|parada de ônibus|estação de metrô|terminal|cemitério|igreja|escola|` +
	`hospital|posto de saúde|delegacia|correios`)

// nearby queries the store around the request point and ranks the candidates
func (s *Service) nearby(ctx context.Context, req Request) ([]domain.FeedItem, error) {
	box := geo.BoundingBox(req.Lat, req.Radius)
	locs, err := s.locations.QueryNear(ctx, domain.NearbyQuery{
		Lat:      req.Lat,
		Lng:      req.Lng,
		LatDelta: box.LatDelta,
		LngDelta: box.LngDelta,
		Limit:    s.queryLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("query nearby locations: %w", err)
	}
	items := s.rank(req, locs)
	lgr.Printf("[DEBUG] %d of %d stored locations near %v,%v within %.0fm", len(items), len(locs), req.Lat, req.Lng, req.Radius)
	return items, nil
}

// rank computes distances, drops locations out of range or of low quality, and sorts events first,
// then by ascending distance. Events without coordinates are kept at a nominal distance when the
// request point lies in their city.
func (s *Service) rank(req Request, locs []domain.Location) []domain.FeedItem {
	radiusKm := req.Radius / 1000
	items := make([]domain.FeedItem, 0, len(locs))
	for _, loc := range locs {
		if loc.HasPlaceholderCoords() {
			if loc.IsEvent() && loc.City != "" && geo.InCity(req.Lat, req.Lng, loc.City) {
				items = append(items, domain.NewFeedItem(loc, placeholderDistance))
			}
			continue
		}

		dist := geo.Haversine(req.Lat, req.Lng, loc.Lat, loc.Lng)
		if loc.IsEvent() {
			if dist <= s.eventRadiusKm {
				items = append(items, domain.NewFeedItem(loc, dist))
			}
			continue
		}
		if dist > radiusKm || s.lowQuality(loc) {
			continue
		}
		items = append(items, domain.NewFeedItem(loc, dist))
	}

	sortFeed(items)
	return items
}

// lowQuality reports places rated below the minimum or with a blocked name, unrated places pass
func (s *Service) lowQuality(loc domain.Location) bool {
	if loc.Rating > 0 && loc.Rating < s.minRating {
		return true
	}
	return lowQualityNames.MatchString(loc.Name)
}

// sortFeed orders events before places, each group by ascending distance
func sortFeed(items []domain.FeedItem) {
	slices.SortStableFunc(items, func(a, b domain.FeedItem) int {
		if a.IsEvent != b.IsEvent {
			if a.IsEvent {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Distance, b.Distance)
	})
}
