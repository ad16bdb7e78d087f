package discovery

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luvbee/discovery/pkg/domain"
	"github.com/luvbee/discovery/pkg/geo"
)

const spLat, spLng = -23.5505, -46.6333

// north returns a point km kilometers north of the São Paulo center
func north(km float64) (lat, lng float64) {
	return spLat + km/(geo.EarthRadiusKm*math.Pi/180), spLng
}

func testPlace(id string, km float64) domain.Location {
	lat, lng := north(km)
	return domain.Location{ID: id, PlaceID: "gp-" + id, Name: "Bar " + id, Category: "bar", Lat: lat, Lng: lng,
		City: "São Paulo", State: "SP", Rating: 4.5, IsActive: true}
}

func testEvent(id string, km float64) domain.Location {
	lat, lng := north(km)
	start := time.Now().Add(48 * time.Hour)
	return domain.Location{ID: id, SourceID: "ev-" + id, Name: "Show " + id, Category: "event", Lat: lat, Lng: lng,
		City: "sao-paulo", State: "sp", IsActive: true, EventStart: &start}
}

func ids(items []domain.FeedItem) []string {
	res := make([]string, 0, len(items))
	for _, item := range items {
		res = append(res, item.ID)
	}
	return res
}

func TestService_RankEventLeniency(t *testing.T) {
	s := NewService(Params{MinRating: 4})
	req := Request{Lat: spLat, Lng: spLng, Radius: 5000}

	items := s.rank(req, []domain.Location{testEvent("e30", 30), testPlace("p30", 30), testEvent("e60", 60), testPlace("p4", 4)})
	require.Equal(t, []string{"e30", "p4"}, ids(items))
	assert.InDelta(t, 30, items[0].Distance, 0.01)
	assert.True(t, items[0].IsEvent)
	assert.Equal(t, items[0].EventStart, items[0].EventDate)
	assert.False(t, items[1].IsEvent)
}

func TestService_RankPlaceholderCoordinates(t *testing.T) {
	s := NewService(Params{})
	req := Request{Lat: spLat, Lng: spLng, Radius: 5000}

	inCity := testEvent("sp", 0)
	inCity.Lat, inCity.Lng = 0, 0
	otherCity := inCity
	otherCity.ID, otherCity.City = "recife", "recife"
	noCity := inCity
	noCity.ID, noCity.City = "nocity", ""
	place := testPlace("place", 0)
	place.Lat, place.Lng = 0, 0

	items := s.rank(req, []domain.Location{inCity, otherCity, noCity, place})
	require.Equal(t, []string{"sp"}, ids(items))
	assert.Equal(t, 1.0, items[0].Distance)

	// accented display name matches too
	inCity.City = "São Paulo"
	items = s.rank(req, []domain.Location{inCity})
	require.Len(t, items, 1)

	// same event, query point in another metro
	items = s.rank(Request{Lat: -22.9068, Lng: -43.1729, Radius: 5000}, []domain.Location{inCity})
	assert.Empty(t, items)
}

func TestService_RankSortOrder(t *testing.T) {
	s := NewService(Params{})
	req := Request{Lat: spLat, Lng: spLng, Radius: 10000}
	locs := []domain.Location{testPlace("p3", 3), testEvent("e5", 5), testPlace("p1", 1), testEvent("e2", 2), testPlace("p4", 4)}

	for range 10 {
		shuffled := append([]domain.Location(nil), locs...)
		rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		assert.Equal(t, []string{"e2", "e5", "p1", "p3", "p4"}, ids(s.rank(req, shuffled)))
	}
}

func TestService_RankQualityFilter(t *testing.T) {
	s := NewService(Params{MinRating: 4})
	req := Request{Lat: spLat, Lng: spLng, Radius: 5000}

	low := testPlace("low", 1)
	low.Rating = 3.9
	unrated := testPlace("unrated", 1)
	unrated.Rating = 0
	school := testPlace("school", 1)
	school.Name = "Escola Estadual Caetano"
	church := testPlace("church", 1)
	church.Name = "IGREJA matriz"
	lowEvent := testEvent("event", 1)
	lowEvent.Rating = 2
	lowEvent.Name = "Festa no Terminal"

	items := s.rank(req, []domain.Location{low, unrated, school, church, lowEvent})
	assert.Equal(t, []string{"event", "unrated"}, ids(items))
}

func TestService_RankRadiusBoundary(t *testing.T) {
	s := NewService(Params{})
	req := Request{Lat: spLat, Lng: spLng, Radius: 2000}
	items := s.rank(req, []domain.Location{testPlace("in", 1.99), testPlace("out", 2.01)})
	assert.Equal(t, []string{"in"}, ids(items))
}

func TestShuffle(t *testing.T) {
	base := make([]domain.FeedItem, 10)
	for i := range base {
		base[i].ID = string(rune('a' + i))
	}

	orders := map[string]bool{}
	for range 50 {
		items := append([]domain.FeedItem(nil), base...)
		shuffle(items)
		assert.ElementsMatch(t, ids(base), ids(items))
		key := ""
		for _, id := range ids(items) {
			key += id
		}
		orders[key] = true
	}
	assert.Greater(t, len(orders), 1, "order is randomized across calls")

	shuffle(nil)
	one := []domain.FeedItem{{Location: domain.Location{ID: "x"}}}
	shuffle(one)
	assert.Equal(t, "x", one[0].ID)
}
