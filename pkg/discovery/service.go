package discovery

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/go-pkgz/lgr"

	"github.com/luvbee/discovery/pkg/domain"
	"github.com/luvbee/discovery/pkg/geo"
)

// errSkipped marks a population task that had nothing to do
var errSkipped = errors.New("population skipped")

// Params configures the discovery service. Interactions, Places, Events, Notices and Metrics are optional.
type Params struct {
	Locations    LocationStore
	Interactions InteractionStore
	Places       PlaceSource
	Events       EventSource
	Cache        *Cache // NewCache(DefaultPopulateTTL, nil) if nil
	Notices      *NoticeBoard
	Metrics      *Metrics

	MinFeedItems  int     // DefaultMinFeedItems if zero
	QueryLimit    int     // DefaultQueryLimit if zero
	EventRadiusKm float64 // DefaultEventRadiusKm if zero
	DefaultRadius float64 // meters, used for requests without radius, DefaultRadius if zero
	MinRating     float64 // places rated below are dropped, unrated places are kept
}

// Service builds discovery feeds
type Service struct {
	locations    LocationStore
	interactions InteractionStore
	places       PlaceSource
	events       EventSource
	cache        *Cache
	notices      *NoticeBoard
	metrics      *Metrics

	minFeedItems  int
	queryLimit    int
	eventRadiusKm float64
	defaultRadius float64
	minRating     float64

	shuffle func(items []domain.FeedItem)
}

// NewService makes a discovery service
func NewService(params Params) *Service {
	s := &Service{
		locations:     params.Locations,
		interactions:  params.Interactions,
		places:        params.Places,
		events:        params.Events,
		cache:         params.Cache,
		notices:       params.Notices,
		metrics:       params.Metrics,
		minFeedItems:  params.MinFeedItems,
		queryLimit:    params.QueryLimit,
		eventRadiusKm: params.EventRadiusKm,
		defaultRadius: params.DefaultRadius,
		minRating:     params.MinRating,
		shuffle:       shuffle,
	}
	if s.cache == nil {
		s.cache = NewCache(DefaultPopulateTTL, nil)
	}
	if s.minFeedItems <= 0 {
		s.minFeedItems = DefaultMinFeedItems
	}
	if s.queryLimit <= 0 {
		s.queryLimit = DefaultQueryLimit
	}
	if s.eventRadiusKm <= 0 {
		s.eventRadiusKm = DefaultEventRadiusKm
	}
	if s.defaultRadius <= 0 {
		s.defaultRadius = DefaultRadius
	}
	return s
}

// Cache returns the service cooldown and in-flight cache
func (s *Service) Cache() *Cache { return s.cache }

// Notices returns the notice board, may be nil
func (s *Service) Notices() *NoticeBoard { return s.notices }

// Stats is a snapshot of population bookkeeping
type Stats struct {
	CooldownEntries int `json:"cooldown_entries"`
	InFlight        int `json:"in_flight"`
}

// Stats returns the number of remembered cooldown keys and feeds being computed right now
func (s *Service) Stats() Stats {
	return Stats{CooldownEntries: s.cache.Entries(), InFlight: s.cache.InFlight()}
}

// DrainNotices returns and clears pending notices for the user
func (s *Service) DrainNotices(userID string) []Notice {
	return s.notices.Drain(userID)
}

// GetFeed returns shuffled feed items near the request point. Concurrent identical requests share
// a single computation and get the same slice. It never fails, on errors the feed is empty or
// sparser than usual and a notice is left for the user.
func (s *Service) GetFeed(ctx context.Context, req Request) []domain.FeedItem {
	if req.Radius <= 0 {
		req.Radius = s.defaultRadius
	}
	req.Mode = domain.ParseMode(string(req.Mode))

	// population keeps running when the caller goes away
	ctx = context.WithoutCancel(ctx)
	items, shared := s.cache.Do(FeedKey(req), func() []domain.FeedItem { return s.compute(ctx, req) })
	s.metrics.feedRequest(shared)
	if items == nil {
		return []domain.FeedItem{}
	}
	return items
}

// compute queries, filters, populates when the result is sparse, and shuffles
func (s *Service) compute(ctx context.Context, req Request) (res []domain.FeedItem) {
	defer func() {
		if r := recover(); r != nil {
			lgr.Printf("[ERROR] feed for %v,%v failed: %v", req.Lat, req.Lng, r)
			s.notices.Add(req.UserID, Notice{Level: NoticeError, Message: msgFeedError})
			res = []domain.FeedItem{}
		}
	}()

	items := s.candidates(ctx, req)
	if len(items) < s.minFeedItems {
		area := geo.ReverseGeocode(req.Lat, req.Lng)
		key := CooldownKey(req)
		if s.cache.Reserve(ctx, key) {
			s.populate(ctx, req, area)
			s.cache.MarkPopulated(ctx, key)
			items = s.candidates(ctx, req)
		} else {
			lgr.Printf("[DEBUG] only %d items for %s, population on cooldown", len(items), key)
			s.metrics.gateDenied()
		}
	}

	s.shuffle(items)
	s.metrics.feedSize(len(items))
	return items
}

// candidates returns ranked nearby items without the user's interactions.
// A store failure is reported as a notice and yields no items.
func (s *Service) candidates(ctx context.Context, req Request) []domain.FeedItem {
	items, err := s.nearby(ctx, req)
	if err != nil {
		lgr.Printf("[WARN] %v", err)
		s.notices.Add(req.UserID, Notice{Level: NoticeError, Message: msgStoreError})
		return []domain.FeedItem{}
	}
	return s.filterInteractions(ctx, req.UserID, items)
}

// shuffle is a Fisher-Yates shuffle in place
func shuffle(items []domain.FeedItem) {
	for i := len(items) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
