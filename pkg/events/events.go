// Package events discovers upcoming events for a city by scraping ticketing sites and event feeds,
// and upserts them into the location store.
package events

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// brt is the Brazilian (Brasília) time zone, used for dates published without an offset
var brt = time.FixedZone("BRT", -3*60*60)

// Event is a single scraped event
type Event struct {
	SourceID    string
	Name        string
	Description string
	ImageURL    string
	TicketURL   string
	Address     string
	Start       time.Time
	End         *time.Time
	Lat         float64
	Lng         float64
}

// Target describes the city and date window to scrape
type Target struct {
	City      string // as requested
	State     string
	CitySlug  string // "sao-paulo"
	StateSlug string // "sp"
	From      time.Time
	To        time.Time
}

// inWindow reports whether t falls within the target date window
func (t Target) inWindow(ts time.Time) bool {
	return !ts.Before(t.From) && !ts.After(t.To)
}

// expand replaces {city}, {state}, {from} and {to} placeholders in a url template
func (t Target) expand(tmpl string) string {
	r := strings.NewReplacer(
		"{city}", t.CitySlug,
		"{state}", t.StateSlug,
		"{from}", t.From.Format(time.DateOnly),
		"{to}", t.To.Format(time.DateOnly),
	)
	return r.Replace(tmpl)
}

// Scraper finds events for a target
type Scraper interface {
	Name() string
	Scrape(ctx context.Context, target Target) ([]Event, error)
}

// sourceID builds a stable source id from a site name and an item identifier.
// When no identifier is available the id is derived from the event name and start time.
func sourceID(site, ident, name string, start time.Time) string {
	if ident = lastPathSegment(ident); ident != "" {
		return site + "_" + ident
	}
	return site + "_" + uuid.NewSHA1(uuid.NameSpaceURL, []byte(name+"|"+start.UTC().Format(time.RFC3339))).String()
}

// lastPathSegment returns the final non-empty path segment of a url or slug, without query
func lastPathSegment(s string) string {
	s, _, _ = strings.Cut(s, "?")
	s, _, _ = strings.Cut(s, "#")
	s = strings.TrimRight(s, "/")
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(s)
}
