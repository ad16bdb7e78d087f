package discovery

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/luvbee/discovery/pkg/domain"
	"github.com/luvbee/discovery/pkg/geo"
)

// population sources
const (
	sourcePlaces = "places"
	sourceEvents = "events"
)

// populate runs place and event population concurrently and waits for both, whatever the outcome.
// Failures are logged and reported as notices, nothing is returned to the caller.
func (s *Service) populate(ctx context.Context, req Request, area geo.Area) {
	lgr.Printf("[INFO] populating %s/%s around %v,%v within %.0fm", area.City, area.State, req.Lat, req.Lng, req.Radius)

	g := errgroup.Group{}
	g.Go(func() error {
		s.settle(sourcePlaces, req.UserID, msgPlacesError, func() error { return s.populatePlaces(ctx, req) })
		return nil
	})
	g.Go(func() error {
		s.settle(sourceEvents, req.UserID, msgEventsError, func() error { return s.populateEvents(ctx, req, area) })
		return nil
	})
	_ = g.Wait() // population tasks always return nil
}

// settle runs a population task, recovering panics and recording the outcome
func (s *Service) settle(source, userID, failMsg string, fn func() error) {
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		return fn()
	}()

	switch {
	case err == nil:
		s.metrics.populated(source, outcomeSuccess)
	case errors.Is(err, errSkipped):
		s.metrics.populated(source, outcomeSkipped)
	default:
		lgr.Printf("[ERROR] %s population failed: %v", source, err)
		s.metrics.populated(source, outcomeError)
		s.notices.Add(userID, Notice{Level: NoticeError, Message: failMsg})
	}
}

func (s *Service) populatePlaces(ctx context.Context, req Request) error {
	if s.places == nil {
		return errSkipped
	}
	res, err := s.places.SearchNearby(ctx, domain.PlaceSearch{
		Lat:    req.Lat,
		Lng:    req.Lng,
		Radius: req.Radius,
		Mode:   domain.ParseMode(string(req.Mode)),
	})
	if err != nil {
		return fmt.Errorf("search nearby places: %w", err)
	}
	lgr.Printf("[INFO] places population: found %d, saved %d, errors %d", res.Found, res.Saved, len(res.Errors))
	return nil
}

func (s *Service) populateEvents(ctx context.Context, req Request, area geo.Area) error {
	if s.events == nil {
		return errSkipped
	}
	if area.City == "" || area.State == "" {
		lgr.Printf("[WARN] no city or state for %v,%v, event population skipped", req.Lat, req.Lng)
		return errSkipped
	}
	res, err := s.events.Discover(ctx, domain.EventSearch{Lat: req.Lat, Lng: req.Lng, City: area.City, State: area.State})
	if err != nil {
		return fmt.Errorf("discover events in %s/%s: %w", area.City, area.State, err)
	}
	lgr.Printf("[INFO] events population for %s/%s: count %d, saved %d, updated %d, errors %d",
		area.City, area.State, res.Count, res.Saved, res.Updated, len(res.Errors))
	if res.Count > 0 {
		s.notices.Add(req.UserID, Notice{
			Level:       NoticeSuccess,
			Message:     msgNewEvents,
			Description: fmt.Sprintf("%d eventos adicionados próximos a você", res.Count),
		})
	}
	return nil
}
