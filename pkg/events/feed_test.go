package events

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedScraper(t *testing.T) {
	now := time.Now()
	soon := now.Add(24 * time.Hour)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/feeds/sao-paulo.xml", r.URL.Path)
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprintf(w, `<?xml version="1.0"?>
<rss version="2.0" xmlns:ev="http://purl.org/rss/1.0/modules/event/">
<channel><title>Agenda</title>
<item>
  <title>Jazz no Parque</title>
  <link>https://agenda.example.com/jazz</link>
  <guid>https://agenda.example.com/e/jazz-2026</guid>
  <description>&lt;b&gt;Jazz&lt;/b&gt; ao ar livre</description>
  <pubDate>%s</pubDate>
  <ev:startdate>%s</ev:startdate>
  <ev:location>Parque Ibirapuera</ev:location>
  <enclosure url="https://agenda.example.com/jazz.jpg" type="image/jpeg" length="1"/>
</item>
<item>
  <title>Published long ago</title>
  <link>https://agenda.example.com/old</link>
  <pubDate>%s</pubDate>
</item>
<item>
  <title></title>
  <pubDate>%s</pubDate>
</item>
</channel></rss>`,
			now.Add(-10*24*time.Hour).Format(time.RFC1123Z), soon.Format(time.RFC3339),
			now.Add(-10*24*time.Hour).Format(time.RFC1123Z), soon.Format(time.RFC1123Z))
	}))
	defer ts.Close()

	s := NewFeedScraper("agenda", []string{ts.URL + "/feeds/{city}.xml"}, time.Second, "")
	assert.Equal(t, "agenda", s.Name())

	events, err := s.Scrape(context.Background(), testTarget(now))
	require.NoError(t, err)
	require.Len(t, events, 1)
	ev := events[0]
	assert.Equal(t, "Jazz no Parque", ev.Name)
	assert.Equal(t, "agenda_jazz-2026", ev.SourceID)
	assert.Equal(t, "https://agenda.example.com/jazz", ev.TicketURL)
	assert.Equal(t, "Parque Ibirapuera", ev.Address)
	assert.Equal(t, "https://agenda.example.com/jazz.jpg", ev.ImageURL)
	assert.Equal(t, soon.Unix(), ev.Start.Unix(), "start date taken from the event extension")
}

func TestFeedScraper_Errors(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not a feed"))
	}))
	defer bad.Close()

	s := NewFeedScraper("agenda", []string{bad.URL}, time.Second, "")
	_, err := s.Scrape(context.Background(), testTarget(time.Now()))
	require.Error(t, err)

	empty := NewFeedScraper("none", nil, time.Second, "")
	events, err := empty.Scrape(context.Background(), testTarget(time.Now()))
	require.NoError(t, err)
	assert.Empty(t, events)
}
