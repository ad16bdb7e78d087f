package events

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/mmcdole/gofeed"
)

// FeedScraper reads events from RSS/Atom feeds. Item publish dates are taken as event start dates,
// unless the item carries an explicit "startDate" extension or custom field.
type FeedScraper struct {
	name    string
	urls    []string
	fetcher *fetcher
}

// NewFeedScraper creates a scraper over feed url templates ({city}, {state}, {from}, {to})
func NewFeedScraper(name string, urls []string, timeout time.Duration, userAgent string) *FeedScraper {
	return &FeedScraper{name: name, urls: urls, fetcher: newFetcher(timeout, userAgent)}
}

// Name returns the scraper name
func (s *FeedScraper) Name() string { return s.name }

// Scrape fetches every feed and returns items dated within the target window.
// Fails only when no feed could be read.
func (s *FeedScraper) Scrape(ctx context.Context, target Target) ([]Event, error) {
	var res []Event
	var errs []error
	for _, tmpl := range s.urls {
		feedURL := target.expand(tmpl)
		items, err := s.fetch(ctx, feedURL)
		if err != nil {
			lgr.Printf("[DEBUG] %s: can't read feed %s: %v", s.name, feedURL, err)
			errs = append(errs, fmt.Errorf("%s: %w", feedURL, err))
			continue
		}
		for _, item := range items {
			if ev, ok := s.toEvent(item); ok && target.inWindow(ev.Start) {
				res = append(res, ev)
			}
		}
	}
	if len(errs) == len(s.urls) && len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return res, nil
}

func (s *FeedScraper) fetch(ctx context.Context, feedURL string) ([]*gofeed.Item, error) {
	pg, err := s.fetcher.get(ctx, feedURL, "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(pg.body))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	return feed.Items, nil
}

func (s *FeedScraper) toEvent(item *gofeed.Item) (Event, bool) {
	name := strings.TrimSpace(item.Title)
	if name == "" {
		return Event{}, false
	}

	var start time.Time
	if v := itemField(item, "startDate"); v != "" {
		if t, ok := parseDate(v); ok {
			start = t
		}
	}
	if start.IsZero() && item.PublishedParsed != nil {
		start = *item.PublishedParsed
	}
	if start.IsZero() && item.UpdatedParsed != nil {
		start = *item.UpdatedParsed
	}
	if start.IsZero() {
		return Event{}, false
	}

	ev := Event{
		Name:        name,
		Description: item.Description,
		TicketURL:   item.Link,
		Start:       start,
		Address:     itemField(item, "location"),
	}
	if v := itemField(item, "endDate"); v != "" {
		if t, ok := parseDate(v); ok {
			ev.End = &t
		}
	}
	if item.Image != nil {
		ev.ImageURL = item.Image.URL
	}
	for _, enc := range item.Enclosures {
		if ev.ImageURL == "" && strings.HasPrefix(enc.Type, "image/") {
			ev.ImageURL = enc.URL
		}
	}

	ident := item.GUID
	if ident == "" {
		ident = item.Link
	}
	ev.SourceID = sourceID(s.name, ident, name, start)
	return ev, true
}

// itemField looks up a custom element or extension value by local name, case-insensitively,
// so both "startDate" and the RSS event module "ev:startdate" match
func itemField(item *gofeed.Item, name string) string {
	for key, v := range item.Custom {
		if strings.EqualFold(key, name) && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	for _, ns := range item.Extensions {
		for key, exts := range ns {
			if !strings.EqualFold(key, name) {
				continue
			}
			for _, ext := range exts {
				if v := strings.TrimSpace(ext.Value); v != "" {
					return v
				}
			}
		}
	}
	return ""
}
