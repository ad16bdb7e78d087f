package events

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestFindScripts(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<html><head>
		<script type="application/ld+json">{"@type": "Event", "name": "A"}</script>
		<script type="text/javascript">var x = 1;</script>
		</head><body>
		<script type="application/ld+json">[{"@type": "Organization"}]</script>
		<script id="__NEXT_DATA__" type="application/json">{"props": {}}</script>
		</body></html>`))
	require.NoError(t, err)

	res := findScripts(doc)
	require.Len(t, res.jsonLD, 2)
	assert.JSONEq(t, `{"@type": "Event", "name": "A"}`, string(res.jsonLD[0]))
	assert.JSONEq(t, `{"props": {}}`, string(res.nextData))
}

func TestLdEvents(t *testing.T) {
	tbl := []struct {
		name string
		in   string
		want []string
	}{
		{"single", `{"@type": "Event", "name": "A"}`, []string{"A"}},
		{"array", `[{"@type": "MusicEvent", "name": "A"}, {"@type": "Place", "name": "P"}, {"@type": "Festival", "name": "F"}]`,
			[]string{"A", "F"}},
		{"graph", `{"@context": "https://schema.org", "@graph": [{"@type": "WebPage"}, {"@type": ["Event", "Thing"], "name": "G"}]}`,
			[]string{"G"}},
		{"item list", `{"@type": "ItemList", "itemListElement": [{"@type": "ListItem", "item": {"@type": "SocialEvent", "name": "L"}}]}`,
			[]string{"L"}},
		{"broken json", `{"@type": "Event",`, nil},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			var names []string
			for _, obj := range ldEvents([]byte(tt.in)) {
				names = append(names, obj["name"].(string))
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestDataEvents(t *testing.T) {
	in := `{"props": {"pageProps": {"events": [
		{"id": 101, "title": "Festa", "startDate": "2026-11-01T23:00:00-03:00", "venue": {"name": "Clube"}},
		{"id": 102, "title": "No date"},
		{"nested": {"name": "Show", "date": "2026-11-02"}}
	]}}}`
	var names []string
	for _, obj := range dataEvents([]byte(in)) {
		names = append(names, firstString(obj, "title", "name"))
	}
	assert.ElementsMatch(t, []string{"Festa", "Show"}, names)
}

func TestFromObject(t *testing.T) {
	base, err := url.Parse("https://tickets.example.com/eventos/sao-paulo-sp")
	require.NoError(t, err)

	t.Run("json-ld event", func(t *testing.T) {
		obj := map[string]any{
			"@type":       "Event",
			"name":        " Samba na Laje ",
			"startDate":   "2026-11-01T20:00:00-03:00",
			"endDate":     "2026-11-02T02:00:00-03:00",
			"url":         "/evento/samba-na-laje/998877",
			"image":       []any{"https://img.example.com/a.jpg"},
			"description": "Roda de samba",
			"location": map[string]any{
				"@type":   "Place",
				"name":    "Laje",
				"address": map[string]any{"streetAddress": "Rua Harmonia, 10"},
				"geo":     map[string]any{"latitude": "-23.556", "longitude": -46.69},
			},
		}
		ev, ok := fromObject("ticketsite", obj, base)
		require.True(t, ok)
		assert.Equal(t, "Samba na Laje", ev.Name)
		assert.Equal(t, "https://tickets.example.com/evento/samba-na-laje/998877", ev.TicketURL)
		assert.Equal(t, "ticketsite_998877", ev.SourceID)
		assert.Equal(t, "https://img.example.com/a.jpg", ev.ImageURL)
		assert.Equal(t, "Rua Harmonia, 10", ev.Address)
		assert.Equal(t, "Roda de samba", ev.Description)
		assert.InDelta(t, -23.556, ev.Lat, 1e-9)
		assert.InDelta(t, -46.69, ev.Lng, 1e-9)
		require.NotNil(t, ev.End)
		assert.True(t, time.Date(2026, 11, 2, 5, 0, 0, 0, time.UTC).Equal(*ev.End))
	})

	t.Run("api event with slug and venue", func(t *testing.T) {
		obj := map[string]any{
			"id":        float64(42),
			"title":     "Techno",
			"date":      "2026-11-03",
			"slug":      "/events/techno-night",
			"banner":    "/img/techno.png",
			"venue":     map[string]any{"address": "Av. Paulista, 900"},
			"unrelated": true,
		}
		ev, ok := fromObject("club", obj, base)
		require.True(t, ok)
		assert.Equal(t, "club_42", ev.SourceID)
		assert.Equal(t, "https://tickets.example.com/events/techno-night", ev.TicketURL)
		assert.Equal(t, "https://tickets.example.com/img/techno.png", ev.ImageURL)
		assert.Equal(t, "Av. Paulista, 900", ev.Address)
		assert.Nil(t, ev.End)
	})

	t.Run("stable id without identifiers", func(t *testing.T) {
		obj := map[string]any{"name": "Anon", "startDate": "2026-11-05T21:00:00Z"}
		ev1, ok := fromObject("x", obj, nil)
		require.True(t, ok)
		ev2, _ := fromObject("x", obj, nil)
		assert.Equal(t, ev1.SourceID, ev2.SourceID)
		assert.True(t, strings.HasPrefix(ev1.SourceID, "x_"))
	})

	t.Run("missing name or date", func(t *testing.T) {
		_, ok := fromObject("x", map[string]any{"name": "A"}, base)
		assert.False(t, ok)
		_, ok = fromObject("x", map[string]any{"startDate": "2026-11-05"}, base)
		assert.False(t, ok)
	})
}

func TestLastPathSegment(t *testing.T) {
	assert.Equal(t, "123", lastPathSegment("https://a.com/e/x/123?ref=home"))
	assert.Equal(t, "x", lastPathSegment("https://a.com/e/x/"))
	assert.Equal(t, "slug", lastPathSegment("slug"))
	assert.Empty(t, lastPathSegment(""))
}
