package events

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-pkgz/lgr"
	"golang.org/x/net/html"
)

// card selectors, tried in order until one matches
var cardSelectors = []string{
	`[data-testid="event-card"]`,
	`[class*="EventCard"]`,
	`[class*="event-card"]`,
	`.eds-event-card`,
}

const (
	cardTitleSelector = `h3, h2, [class*="title"], [class*="name"]`
	cardDateSelector  = `time, [class*="date"], [class*="Date"], [data-testid*="date"]`
	jsonAccept        = "application/json, text/plain, */*"
)

// Site describes a ticketing site scraped by PageScraper
type Site struct {
	Name string
	// URLs are tried in order until one yields events. Templates may use {city}, {state}, {from} and {to}.
	URLs []string
}

// PageScraper extracts events from a site's city listing pages. It reads, in order of preference,
// JSON-LD Event blocks, Next.js hydration data, JSON listing responses and visual event cards.
type PageScraper struct {
	site    Site
	fetcher *fetcher
	now     func() time.Time
}

// NewPageScraper creates a scraper for the site
func NewPageScraper(site Site, timeout time.Duration, userAgent string) *PageScraper {
	return &PageScraper{site: site, fetcher: newFetcher(timeout, userAgent), now: time.Now}
}

// Name returns the site name
func (s *PageScraper) Name() string { return s.site.Name }

// Scrape tries each site url until one returns events within the target window.
// Fails only when every url failed to load.
func (s *PageScraper) Scrape(ctx context.Context, target Target) ([]Event, error) {
	var errs []error
	loaded := false
	for _, tmpl := range s.site.URLs {
		pageURL := target.expand(tmpl)
		base, err := url.Parse(pageURL)
		if err != nil {
			errs = append(errs, fmt.Errorf("parse url %s: %w", pageURL, err))
			continue
		}

		accept := ""
		if strings.Contains(base.Path, "/api/") {
			accept = jsonAccept
		}
		pg, err := s.fetcher.get(ctx, pageURL, accept)
		if err != nil {
			lgr.Printf("[DEBUG] %s: can't load %s: %v", s.site.Name, pageURL, err)
			errs = append(errs, fmt.Errorf("%s: %w", pageURL, err))
			continue
		}
		loaded = true

		events := s.parse(pg, base, target)
		lgr.Printf("[DEBUG] %s: %d events from %s", s.site.Name, len(events), pageURL)
		if len(events) > 0 {
			return events, nil
		}
	}
	if !loaded && len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return nil, nil
}

// parse extracts events from a fetched page
func (s *PageScraper) parse(pg *page, base *url.URL, target Target) []Event {
	if strings.Contains(pg.contentType, "json") {
		return s.collect(dataEvents(pg.body), base, target)
	}

	doc, err := html.Parse(bytes.NewReader(pg.body))
	if err != nil {
		lgr.Printf("[WARN] %s: can't parse html from %s: %v", s.site.Name, base, err)
		return nil
	}

	found := findScripts(doc)
	var objects []map[string]any
	for _, block := range found.jsonLD {
		objects = append(objects, ldEvents(block)...)
	}
	if events := s.collect(objects, base, target); len(events) > 0 {
		return events
	}

	if len(found.nextData) > 0 {
		if events := s.collect(dataEvents(found.nextData), base, target); len(events) > 0 {
			return events
		}
	}

	return s.cards(goquery.NewDocumentFromNode(doc), base, target)
}

func (s *PageScraper) collect(objects []map[string]any, base *url.URL, target Target) []Event {
	res := make([]Event, 0, len(objects))
	for _, obj := range objects {
		ev, ok := fromObject(s.site.Name, obj, base)
		if !ok || !target.inWindow(ev.Start) {
			continue
		}
		res = append(res, ev)
	}
	return res
}

// cards reads visual event cards, used when a page has no structured data
func (s *PageScraper) cards(doc *goquery.Document, base *url.URL, target Target) []Event {
	var res []Event
	for _, sel := range cardSelectors {
		found := doc.Find(sel)
		if found.Length() == 0 {
			continue
		}
		found.Each(func(_ int, card *goquery.Selection) {
			name := strings.TrimSpace(card.Find(cardTitleSelector).First().Text())
			link, _ := card.Find("a[href]").First().Attr("href")
			if link == "" {
				link, _ = card.Attr("href") // card itself is a link
			}
			if name == "" || link == "" {
				return
			}
			dateText := strings.TrimSpace(card.Find(cardDateSelector).First().Text())
			if dt, ok := card.Find("time[datetime]").First().Attr("datetime"); ok {
				dateText = dt
			}
			start, ok := parseBrazilianDate(dateText, s.now())
			if !ok || !target.inWindow(start) {
				return
			}
			img, _ := card.Find("img").First().Attr("src")
			ticketURL := resolve(base, link)
			res = append(res, Event{
				SourceID:  sourceID(s.site.Name, ticketURL, name, start),
				Name:      name,
				TicketURL: ticketURL,
				ImageURL:  resolve(base, img),
				Start:     start,
			})
		})
		break
	}
	return res
}
