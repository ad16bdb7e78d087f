// Package places populates the location store from the Google Places (v1) nearby search.
package places

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"golang.org/x/time/rate"
)

// DefaultEndpoint is the Google Places API (v1) base url
const DefaultEndpoint = "https://places.googleapis.com/v1"

// fieldMask limits the response to the fields mapped into locations
const fieldMask = "places.id,places.displayName,places.formattedAddress,places.priceLevel,places.rating," +
	"places.userRatingCount,places.photos,places.editorialSummary,places.types,places.location"

// radius limits accepted by the nearby search, meters
const (
	minRadius = 1
	maxRadius = 50000
)

// ErrNoAPIKey is returned when the client is used without an api key
var ErrNoAPIKey = errors.New("places api key not configured")

// Place is a single place as returned by the nearby search
type Place struct {
	ID               string   `json:"id"`
	DisplayName      text     `json:"displayName"`
	FormattedAddress string   `json:"formattedAddress"`
	PriceLevel       string   `json:"priceLevel"`
	Rating           float64  `json:"rating"`
	UserRatingCount  int      `json:"userRatingCount"`
	Photos           []photo  `json:"photos"`
	EditorialSummary text     `json:"editorialSummary"`
	Types            []string `json:"types"`
	Location         struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"location"`
}

type text struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode"`
}

type photo struct {
	Name string `json:"name"` // resource name, places/{place}/photos/{photo}
}

type circle struct {
	Center struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"center"`
	Radius float64 `json:"radius"`
}

type area struct {
	Circle circle `json:"circle"`
}

type nearbyRequest struct {
	IncludedTypes       []string `json:"includedTypes,omitempty"`
	MaxResultCount      int      `json:"maxResultCount"`
	LocationRestriction area     `json:"locationRestriction"`
	RankPreference      string   `json:"rankPreference"`
	LanguageCode        string   `json:"languageCode,omitempty"`
}

type textRequest struct {
	TextQuery      string `json:"textQuery"`
	MaxResultCount int    `json:"maxResultCount"`
	LocationBias   area   `json:"locationBias"`
	LanguageCode   string `json:"languageCode,omitempty"`
}

type searchResponse struct {
	Places []Place `json:"places"`
}

// ClientParams configures the places client
type ClientParams struct {
	APIKey     string
	Endpoint   string
	Timeout    time.Duration
	RateLimit  float64 // requests per second, 0 disables limiting
	MaxResults int
	Language   string
	HTTPClient *http.Client
}

// Client calls the Google Places API
type Client struct {
	apiKey     string
	endpoint   string
	maxResults int
	language   string
	http       *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a places client
func NewClient(params ClientParams) *Client {
	if params.Endpoint == "" {
		params.Endpoint = DefaultEndpoint
	}
	if params.Timeout <= 0 {
		params.Timeout = 10 * time.Second
	}
	if params.MaxResults <= 0 || params.MaxResults > 20 {
		params.MaxResults = 20
	}
	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: params.Timeout}
	}
	limiter := rate.NewLimiter(rate.Inf, 0)
	if params.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(params.RateLimit), 1)
	}
	return &Client{
		apiKey:     params.APIKey,
		endpoint:   strings.TrimSuffix(params.Endpoint, "/"),
		maxResults: params.MaxResults,
		language:   params.Language,
		http:       httpClient,
		limiter:    limiter,
	}
}

// Nearby searches places of the given types within radius meters of the point, ranked by popularity
func (c *Client) Nearby(ctx context.Context, lat, lng, radius float64, types []string) ([]Place, error) {
	req := nearbyRequest{
		IncludedTypes:       types,
		MaxResultCount:      c.maxResults,
		LocationRestriction: area{Circle: newCircle(lat, lng, radius)},
		RankPreference:      "POPULARITY",
		LanguageCode:        c.language,
	}
	return c.search(ctx, "/places:searchNearby", req)
}

// Text searches places matching the query, biased to the circle around the point
func (c *Client) Text(ctx context.Context, query string, lat, lng, radius float64) ([]Place, error) {
	req := textRequest{
		TextQuery:      query,
		MaxResultCount: c.maxResults,
		LocationBias:   area{Circle: newCircle(lat, lng, radius)},
		LanguageCode:   c.language,
	}
	return c.search(ctx, "/places:searchText", req)
}

func (c *Client) search(ctx context.Context, path string, payload any) ([]Place, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	var resp searchResponse
	retrier := repeater.NewBackoff(3, 200*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err = retrier.Do(ctx, func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Goog-Api-Key", c.apiKey)
		req.Header.Set("X-Goog-FieldMask", fieldMask)

		r, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("send request: %w", err)
		}
		defer r.Body.Close()

		if r.StatusCode != http.StatusOK {
			msg, _ := io.ReadAll(io.LimitReader(r.Body, 1024))
			lgr.Printf("[WARN] places api %s returned %d: %s", path, r.StatusCode, strings.TrimSpace(string(msg)))
			return fmt.Errorf("places api status %d", r.StatusCode)
		}

		resp = searchResponse{}
		if err := json.NewDecoder(r.Body).Decode(&resp); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("places search %s: %w", path, err)
	}
	return resp.Places, nil
}

func newCircle(lat, lng, radius float64) circle {
	c := circle{Radius: clampRadius(radius)}
	c.Center.Latitude = lat
	c.Center.Longitude = lng
	return c
}

func clampRadius(r float64) float64 {
	return max(minRadius, min(maxRadius, r))
}
