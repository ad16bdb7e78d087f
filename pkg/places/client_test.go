package places

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nearbyResponse = `{"places": [
	{"id": "p1", "displayName": {"text": "Bar A"}, "formattedAddress": "R. A, 1 - Centro, São Paulo - SP, Brasil",
	 "rating": 4.5, "types": ["bar"], "location": {"latitude": -23.55, "longitude": -46.63},
	 "photos": [{"name": "places/p1/photos/x"}], "priceLevel": "PRICE_LEVEL_EXPENSIVE"},
	{"id": "p2", "displayName": {"text": "Club B"}, "rating": 3.9, "types": ["night_club"],
	 "location": {"latitude": -23.56, "longitude": -46.64}}
]}`

func TestClient_Nearby(t *testing.T) {
	var got nearbyRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/places:searchNearby", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-Goog-Api-Key"))
		assert.Equal(t, fieldMask, r.Header.Get("X-Goog-FieldMask"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(nearbyResponse))
	}))
	defer ts.Close()

	c := NewClient(ClientParams{APIKey: "secret", Endpoint: ts.URL + "/", Timeout: time.Second})
	res, err := c.Nearby(context.Background(), -23.55, -46.63, 75000, []string{"bar", "cafe"})
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "p1", res[0].ID)
	assert.Equal(t, "Bar A", res[0].DisplayName.Text)
	assert.Equal(t, "places/p1/photos/x", res[0].Photos[0].Name)
	assert.InDelta(t, -46.64, res[1].Location.Longitude, 1e-9)

	assert.Equal(t, []string{"bar", "cafe"}, got.IncludedTypes)
	assert.Equal(t, 20, got.MaxResultCount)
	assert.Equal(t, "POPULARITY", got.RankPreference)
	assert.InDelta(t, 50000, got.LocationRestriction.Circle.Radius, 1e-9, "radius clamped to the api maximum")
	assert.InDelta(t, -23.55, got.LocationRestriction.Circle.Center.Latitude, 1e-9)
}

func TestClient_Text(t *testing.T) {
	var got textRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/places:searchText", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"places": [{"id": "t1", "rating": 4.8}]}`))
	}))
	defer ts.Close()

	c := NewClient(ClientParams{APIKey: "k", Endpoint: ts.URL, MaxResults: 5, Language: "pt-BR"})
	res, err := c.Text(context.Background(), "wine bar", -23.55, -46.63, 0)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "wine bar", got.TextQuery)
	assert.Equal(t, 5, got.MaxResultCount)
	assert.Equal(t, "pt-BR", got.LanguageCode)
	assert.InDelta(t, 1, got.LocationBias.Circle.Radius, 1e-9, "radius clamped to the api minimum")
}

func TestClient_Errors(t *testing.T) {
	t.Run("no api key", func(t *testing.T) {
		c := NewClient(ClientParams{})
		_, err := c.Nearby(context.Background(), 0, 0, 1000, nil)
		require.ErrorIs(t, err, ErrNoAPIKey)
	})

	t.Run("retries server errors", func(t *testing.T) {
		var calls int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) == 1 {
				http.Error(w, "boom", http.StatusInternalServerError)
				return
			}
			_, _ = w.Write([]byte(`{"places": []}`))
		}))
		defer ts.Close()

		c := NewClient(ClientParams{APIKey: "k", Endpoint: ts.URL})
		res, err := c.Nearby(context.Background(), 0, 0, 1000, nil)
		require.NoError(t, err)
		assert.Empty(t, res)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("gives up after repeated failures", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "denied", http.StatusForbidden)
		}))
		defer ts.Close()

		c := NewClient(ClientParams{APIKey: "k", Endpoint: ts.URL})
		_, err := c.Nearby(context.Background(), 0, 0, 1000, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 403")
	})

	t.Run("bad json", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		}))
		defer ts.Close()

		c := NewClient(ClientParams{APIKey: "k", Endpoint: ts.URL})
		_, err := c.Nearby(context.Background(), 0, 0, 1000, nil)
		require.Error(t, err)
	})
}
