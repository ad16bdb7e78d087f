package events

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/luvbee/discovery/pkg/geo"
)

var (
	numericDateRe   = regexp.MustCompile(`(\d{1,2})[/\-\s](\d{1,2})[/\-\s](\d{4})`)
	textDateYearRe  = regexp.MustCompile(`(\d{1,2})(?:\s+de)?[/\-\s]+(\pL{3,})\.?(?:\s+de)?[/\-\s]+(\d{4})`)
	textDateRe      = regexp.MustCompile(`(\d{1,2})(?:\s+de)?\s+(\pL{3,})`)
	clockRe         = regexp.MustCompile(`(\d{1,2})[:h](\d{2})`)
	isoDateLayouts  = []string{time.RFC3339Nano, "2006-01-02T15:04:05Z0700", "2006-01-02T15:04Z07:00"}
	localDateLayout = []string{"2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02 15:04:05", "2006-01-02 15:04", time.DateOnly}
)

// months maps the first three letters of an accent-free Portuguese month name to its number
var months = map[string]time.Month{
	"jan": time.January, "fev": time.February, "mar": time.March, "abr": time.April,
	"mai": time.May, "jun": time.June, "jul": time.July, "ago": time.August,
	"set": time.September, "out": time.October, "nov": time.November, "dez": time.December,
}

// parseDate parses machine-readable dates as published in JSON-LD and APIs.
// Dates without an offset are treated as Brazilian local time.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range isoDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range localDateLayout {
		if t, err := time.ParseInLocation(layout, s, brt); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseBrazilianDate parses human-readable dates shown on event cards, like "22/10/2026 20:00",
// "22 de outubro de 2026" or "Sáb, 22 Out · 23h00". Dates without a year are placed in the
// current year, or the next one when that date is already more than a month in the past.
func parseBrazilianDate(s string, now time.Time) (time.Time, bool) {
	clean := strings.ToLower(strings.TrimSpace(s))
	if clean == "" {
		return time.Time{}, false
	}
	if t, ok := parseDate(s); ok {
		return t, true
	}

	hour, minute := 0, 0
	if m := clockRe.FindStringSubmatch(clean); m != nil {
		hour, _ = strconv.Atoi(m[1])
		minute, _ = strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			hour, minute = 0, 0
		}
	}

	build := func(year int, month time.Month, day int) (time.Time, bool) {
		if day < 1 || day > 31 || month < time.January || month > time.December {
			return time.Time{}, false
		}
		t := time.Date(year, month, day, hour, minute, 0, 0, brt)
		if t.Day() != day { // rolled over, e.g. 31/02
			return time.Time{}, false
		}
		return t, true
	}

	if m := numericDateRe.FindStringSubmatch(clean); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return build(year, time.Month(month), day)
	}

	if m := textDateYearRe.FindStringSubmatch(clean); m != nil {
		if month, ok := monthFromWord(m[2]); ok {
			day, _ := strconv.Atoi(m[1])
			year, _ := strconv.Atoi(m[3])
			return build(year, month, day)
		}
	}

	for _, m := range textDateRe.FindAllStringSubmatch(clean, -1) {
		month, ok := monthFromWord(m[2])
		if !ok {
			continue
		}
		day, _ := strconv.Atoi(m[1])
		local := now.In(brt)
		t, ok := build(local.Year(), month, day)
		if !ok {
			return time.Time{}, false
		}
		if t.Before(local.AddDate(0, -1, 0)) {
			t = t.AddDate(1, 0, 0)
		}
		return t, true
	}

	return time.Time{}, false
}

func monthFromWord(w string) (time.Month, bool) {
	w = geo.Slug(w)
	if len(w) < 3 {
		return 0, false
	}
	m, ok := months[w[:3]]
	return m, ok
}
