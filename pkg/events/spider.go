package events

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/sync/errgroup"

	"github.com/luvbee/discovery/pkg/domain"
	"github.com/luvbee/discovery/pkg/geo"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// ErrMissingArea is returned when a discovery request has no city or state
var ErrMissingArea = errors.New("city and state are required")

// DefaultHorizon is how far ahead events are searched
const DefaultHorizon = 30 * 24 * time.Hour

// maxDescription limits stored event descriptions, in runes
const maxDescription = 2000

// Store persists events
type Store interface {
	UpsertEvent(ctx context.Context, loc *domain.Location) (bool, error)
}

// SpiderParams configures the spider
type SpiderParams struct {
	Scrapers []Scraper
	Store    Store
	Horizon  time.Duration // DefaultHorizon if zero
	Workers  int           // concurrent scrapers, unlimited if zero
}

// Spider runs all scrapers for a city and stores the de-duplicated results
type Spider struct {
	scrapers []Scraper
	store    Store
	horizon  time.Duration
	workers  int
	policy   *bluemonday.Policy
	now      func() time.Time
}

// NewSpider creates a spider
func NewSpider(params SpiderParams) *Spider {
	horizon := params.Horizon
	if horizon <= 0 {
		horizon = DefaultHorizon
	}
	return &Spider{
		scrapers: params.Scrapers,
		store:    params.Store,
		horizon:  horizon,
		workers:  params.Workers,
		policy:   bluemonday.StrictPolicy(),
		now:      time.Now,
	}
}

// scrapeResult holds the outcome of a single scraper
type scrapeResult struct {
	events []Event
	err    error
}

// Discover runs every scraper concurrently and waits for all of them. A failing scraper is
// reported in the result errors and does not affect the others. Events are de-duplicated by
// source id, the first occurrence wins.
func (s *Spider) Discover(ctx context.Context, req domain.EventSearch) (domain.EventSearchResult, error) {
	city, state := strings.TrimSpace(req.City), strings.TrimSpace(req.State)
	if city == "" || state == "" {
		return domain.EventSearchResult{}, ErrMissingArea
	}

	now := s.now()
	target := Target{
		City:      city,
		State:     state,
		CitySlug:  geo.Slug(city),
		StateSlug: geo.Slug(state),
		From:      now,
		To:        now.Add(s.horizon),
	}
	lgr.Printf("[INFO] spider started for %s/%s with %d scrapers", target.CitySlug, target.StateSlug, len(s.scrapers))

	results := make([]scrapeResult, len(s.scrapers))
	g := errgroup.Group{}
	if s.workers > 0 {
		g.SetLimit(s.workers)
	}
	for i, sc := range s.scrapers {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					results[i] = scrapeResult{err: fmt.Errorf("panic: %v", r)}
				}
			}()
			events, err := sc.Scrape(ctx, target)
			results[i] = scrapeResult{events: events, err: err}
			return nil
		})
	}
	_ = g.Wait() // workers always return nil

	res := domain.EventSearchResult{}
	var unique []Event
	seen := map[string]struct{}{}
	for i, r := range results {
		name := s.scrapers[i].Name()
		if r.err != nil {
			lgr.Printf("[WARN] scraper %s failed: %v", name, r.err)
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", name, r.err))
			continue
		}
		lgr.Printf("[DEBUG] scraper %s: %d events", name, len(r.events))
		for _, ev := range r.events {
			if ev.SourceID == "" {
				continue
			}
			if _, ok := seen[ev.SourceID]; ok {
				continue
			}
			seen[ev.SourceID] = struct{}{}
			unique = append(unique, ev)
		}
	}

	for _, ev := range unique {
		loc := s.toLocation(ev, target)
		created, err := s.store.UpsertEvent(ctx, &loc)
		if err != nil {
			lgr.Printf("[WARN] failed to save event %q: %v", ev.Name, err)
			continue
		}
		if created {
			res.Saved++
		} else {
			res.Updated++
		}
	}
	res.Count = res.Saved + res.Updated

	lgr.Printf("[INFO] spider for %s/%s: found %d, saved %d, updated %d, errors %d",
		target.CitySlug, target.StateSlug, len(unique), res.Saved, res.Updated, len(res.Errors))
	return res, nil
}

// toLocation converts a scraped event to a location row, filling missing coordinates with the
// city center and a missing address with "city, state"
func (s *Spider) toLocation(ev Event, target Target) domain.Location {
	start := ev.Start
	loc := domain.Location{
		SourceID:    ev.SourceID,
		Name:        strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(ev.Name))),
		Address:     strings.TrimSpace(ev.Address),
		Category:    "event",
		Description: s.cleanDescription(ev.Description),
		ImageURL:    ev.ImageURL,
		TicketURL:   ev.TicketURL,
		Lat:         ev.Lat,
		Lng:         ev.Lng,
		City:        target.City,
		State:       target.State,
		IsActive:    true,
		EventStart:  &start,
		EventEnd:    ev.End,
	}
	if loc.Address == "" {
		loc.Address = target.City + ", " + target.State
	}
	if loc.Lat == 0 || loc.Lng == 0 {
		center := geo.CityCenter(target.City)
		loc.Lat, loc.Lng = center.Lat, center.Lng
	}
	return loc
}

// cleanDescription strips markup and limits the length
func (s *Spider) cleanDescription(d string) string {
	d = strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(d)))
	d = strings.Join(strings.Fields(d), " ")
	if r := []rune(d); len(r) > maxDescription {
		d = string(r[:maxDescription])
	}
	return d
}
