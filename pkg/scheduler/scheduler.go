// Package scheduler runs periodic background jobs over the location cache: deactivation of past
// events and optional event discovery for a fixed list of cities.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/luvbee/discovery/pkg/domain"
)

//go:generate moq -out mocks/location_manager.go -pkg mocks -skip-ensure -fmt goimports . LocationManager
//go:generate moq -out mocks/event_discoverer.go -pkg mocks -skip-ensure -fmt goimports . EventDiscoverer

// LocationManager updates stored locations
type LocationManager interface {
	DeactivateEndedEvents(ctx context.Context, now time.Time) (int64, error)
}

// EventDiscoverer finds and stores events for a city
type EventDiscoverer interface {
	Discover(ctx context.Context, req domain.EventSearch) (domain.EventSearchResult, error)
}

// Params holds scheduler dependencies and settings
type Params struct {
	Locations       LocationManager
	Events          EventDiscoverer      // optional, required for warm-up
	CleanupInterval time.Duration        // 1h if zero
	WarmInterval    time.Duration        // 6h if zero
	WarmAreas       []domain.EventSearch // cities to discover events for periodically
}

// Scheduler manages periodic cleanup and event warm-up
type Scheduler struct {
	locations       LocationManager
	events          EventDiscoverer
	cleanupInterval time.Duration
	warmInterval    time.Duration
	warmAreas       []domain.EventSearch
	now             func() time.Time

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewScheduler creates a new scheduler instance
func NewScheduler(params Params) *Scheduler {
	if params.CleanupInterval <= 0 {
		params.CleanupInterval = time.Hour
	}
	if params.WarmInterval <= 0 {
		params.WarmInterval = 6 * time.Hour
	}
	return &Scheduler{
		locations:       params.Locations,
		events:          params.Events,
		cleanupInterval: params.CleanupInterval,
		warmInterval:    params.WarmInterval,
		warmAreas:       params.WarmAreas,
		now:             time.Now,
	}
}

// Start begins the scheduler workers, each runs once immediately
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.worker(ctx, s.cleanupInterval, func(ctx context.Context) { _, _ = s.CleanupNow(ctx) })

	if s.events != nil && len(s.warmAreas) > 0 {
		s.wg.Add(1)
		go s.worker(ctx, s.warmInterval, s.warmUp)
	}

	lgr.Printf("[INFO] scheduler started with cleanup interval %v, warm interval %v, %d warm areas",
		s.cleanupInterval, s.warmInterval, len(s.warmAreas))
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// CleanupNow deactivates events that already ended
func (s *Scheduler) CleanupNow(ctx context.Context) (int64, error) {
	n, err := s.locations.DeactivateEndedEvents(ctx, s.now())
	if err != nil {
		lgr.Printf("[ERROR] failed to deactivate ended events: %v", err)
		return 0, err
	}
	if n > 0 {
		lgr.Printf("[INFO] deactivated %d ended events", n)
	}
	return n, nil
}

// worker runs job immediately and then every interval until ctx is done
func (s *Scheduler) worker(ctx context.Context, interval time.Duration, job func(ctx context.Context)) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	job(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			job(ctx)
		}
	}
}

// warmUp discovers events for every configured area, one at a time
func (s *Scheduler) warmUp(ctx context.Context) {
	for _, area := range s.warmAreas {
		if ctx.Err() != nil {
			return
		}
		res, err := s.events.Discover(ctx, area)
		if err != nil {
			lgr.Printf("[WARN] event warm-up for %s/%s failed: %v", area.City, area.State, err)
			continue
		}
		lgr.Printf("[INFO] event warm-up for %s/%s: count %d, saved %d, updated %d",
			area.City, area.State, res.Count, res.Saved, res.Updated)
	}
}
