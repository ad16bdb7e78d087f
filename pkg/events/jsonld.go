package events

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// scripts holds the structured data blocks found in a page
type scripts struct {
	jsonLD   [][]byte
	nextData []byte
}

// findScripts walks the document and collects JSON-LD and Next.js hydration scripts
func findScripts(doc *html.Node) scripts {
	var res scripts
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Script && n.FirstChild != nil {
			typ, id := attr(n, "type"), attr(n, "id")
			switch {
			case strings.EqualFold(typ, "application/ld+json"):
				res.jsonLD = append(res.jsonLD, []byte(n.FirstChild.Data))
			case id == "__NEXT_DATA__":
				res.nextData = []byte(n.FirstChild.Data)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return res
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// ldEvents decodes a JSON-LD block and returns all event objects in it,
// including those nested in @graph and ItemList elements
func ldEvents(data []byte) []map[string]any {
	var v any
	if err := json.Unmarshal(bytes.TrimSpace(data), &v); err != nil {
		return nil
	}
	var res []map[string]any
	var collect func(v any)
	collect = func(v any) {
		switch val := v.(type) {
		case []any:
			for _, item := range val {
				collect(item)
			}
		case map[string]any:
			if isEventType(val["@type"]) {
				res = append(res, val)
				return
			}
			for _, key := range []string{"@graph", "itemListElement", "item"} {
				if nested, ok := val[key]; ok {
					collect(nested)
				}
			}
		}
	}
	collect(v)
	return res
}

// isEventType reports whether a JSON-LD @type names an event, e.g. Event, MusicEvent or Festival
func isEventType(v any) bool {
	switch t := v.(type) {
	case string:
		return strings.HasSuffix(t, "Event") || t == "Festival"
	case []any:
		for _, item := range t {
			if isEventType(item) {
				return true
			}
		}
	}
	return false
}

// dataEvents walks arbitrary JSON (Next.js page props, listing APIs) and returns objects that
// look like events: a title or name together with a start date
func dataEvents(data []byte) []map[string]any {
	var v any
	if err := json.Unmarshal(bytes.TrimSpace(data), &v); err != nil {
		return nil
	}
	var res []map[string]any
	var walk func(v any)
	walk = func(v any) {
		switch val := v.(type) {
		case []any:
			for _, item := range val {
				walk(item)
			}
		case map[string]any:
			if firstString(val, "title", "name") != "" && firstString(val, "startDate", "start_date", "date") != "" {
				res = append(res, val)
				return
			}
			for _, nested := range val {
				walk(nested)
			}
		}
	}
	walk(v)
	return res
}

// fromObject maps a JSON-LD or API event object to an Event, base resolves relative urls
func fromObject(site string, obj map[string]any, base *url.URL) (Event, bool) {
	name := strings.TrimSpace(firstString(obj, "name", "title"))
	start, ok := parseDate(firstString(obj, "startDate", "start_date", "date"))
	if name == "" || !ok {
		return Event{}, false
	}

	ev := Event{
		Name:        name,
		Start:       start,
		Description: firstString(obj, "description"),
		ImageURL:    resolve(base, firstString(obj, "image", "banner", "cover")),
	}
	if end, ok := parseDate(firstString(obj, "endDate", "end_date")); ok {
		ev.End = &end
	}

	link := firstString(obj, "url")
	slug := firstString(obj, "slug")
	switch {
	case link != "":
		ev.TicketURL = resolve(base, link)
	case slug != "":
		ev.TicketURL = resolve(base, slug)
	}

	if loc, ok := obj["location"].(map[string]any); ok {
		ev.Address = addressOf(loc)
		if g, ok := loc["geo"].(map[string]any); ok {
			ev.Lat, ev.Lng = number(g["latitude"]), number(g["longitude"])
		}
	}
	if ev.Address == "" {
		if venue, ok := obj["venue"].(map[string]any); ok {
			ev.Address = addressOf(venue)
		}
	}
	if ev.Address == "" {
		ev.Address = firstString(obj, "address")
	}

	ident := firstString(obj, "id", "slug")
	if ident == "" {
		ident = ev.TicketURL
	}
	ev.SourceID = sourceID(site, ident, ev.Name, ev.Start)
	return ev, true
}

// addressOf extracts a printable address from a schema.org Place or a venue object
func addressOf(place map[string]any) string {
	switch addr := place["address"].(type) {
	case string:
		return strings.TrimSpace(addr)
	case map[string]any:
		if street := firstString(addr, "streetAddress"); street != "" {
			return street
		}
	}
	return firstString(place, "name")
}

// firstString returns the first key holding a non-empty string-like value
func firstString(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := stringOf(obj[key]); s != "" {
			return s
		}
	}
	return ""
}

// stringOf flattens JSON-LD values: strings, numbers, the first element of arrays,
// and url/@id/name of nested objects
func stringOf(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []any:
		for _, item := range val {
			if s := stringOf(item); s != "" {
				return s
			}
		}
	case map[string]any:
		return firstString(val, "url", "@id", "contentUrl", "name")
	}
	return ""
}

func number(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

// resolve makes ref absolute against base, empty refs stay empty
func resolve(base *url.URL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || base == nil {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return base.ResolveReference(u).String()
}
