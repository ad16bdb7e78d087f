package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/luvbee/discovery/pkg/discovery"
	"github.com/luvbee/discovery/pkg/domain"
	"github.com/luvbee/discovery/pkg/repository"
)

// maxRadius is the largest accepted search radius in meters
const maxRadius = 50000

// statusHandler returns server status with population bookkeeping and stored location counts
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":    "ok",
		"version":   s.version,
		"time":      time.Now().UTC(),
		"discovery": s.discovery.Stats(),
	}
	if s.locations != nil {
		stats, err := s.locations.Stats(r.Context())
		if err != nil {
			log.Printf("[WARN] can't get location stats: %v", err)
		} else {
			status["locations"] = stats
		}
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// feedHandler returns the discovery feed around lat,lng. Once parameters parse the response
// is always 200 with an array, population problems are reported via notices.
func (s *Server) feedHandler(w http.ResponseWriter, r *http.Request) {
	req, err := parseFeedRequest(r)
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	items := s.discovery.GetFeed(r.Context(), req)
	if items == nil {
		items = []domain.FeedItem{}
	}
	RenderJSON(w, r, http.StatusOK, items)
}

// noticesHandler drains pending notices for the user
func (s *Server) noticesHandler(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	RenderJSON(w, r, http.StatusOK, s.discovery.DrainNotices(userID))
}

// interactionHandler records a match or a rejection of a location
func (s *Server) interactionHandler(w http.ResponseWriter, r *http.Request) {
	var kind domain.InteractionKind
	switch r.PathValue("action") {
	case "match":
		kind = domain.InteractionMatch
	case "reject":
		kind = domain.InteractionRejection
	default:
		RenderError(w, r, fmt.Errorf("invalid action"), http.StatusBadRequest)
		return
	}

	userID, err := requestUserID(r)
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	locationID := r.PathValue("id")
	if _, err := s.locations.GetLocation(r.Context(), locationID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			RenderError(w, r, fmt.Errorf("location not found"), http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to get location %s: %v", locationID, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	in := domain.Interaction{UserID: userID, LocationID: locationID, Kind: kind}
	if err := s.interactions.Record(r.Context(), in); err != nil {
		log.Printf("[ERROR] failed to record %s of %s by %s: %v", kind, locationID, userID, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	log.Printf("[DEBUG] %s recorded for %s by %s", kind, locationID, userID)
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "ok", "kind": string(kind)})
}

// unmatchHandler removes a match
func (s *Server) unmatchHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := requestUserID(r)
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	locationID := r.PathValue("id")
	if err := s.interactions.Remove(r.Context(), domain.InteractionMatch, userID, locationID); err != nil {
		log.Printf("[ERROR] failed to remove match of %s by %s: %v", locationID, userID, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// parseFeedRequest reads feed query parameters, lat and lng are required
func parseFeedRequest(r *http.Request) (discovery.Request, error) {
	q := r.URL.Query()
	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		return discovery.Request{}, fmt.Errorf("invalid lat")
	}
	lng, err := strconv.ParseFloat(q.Get("lng"), 64)
	if err != nil || lng < -180 || lng > 180 {
		return discovery.Request{}, fmt.Errorf("invalid lng")
	}

	req := discovery.Request{
		Lat:    lat,
		Lng:    lng,
		UserID: strings.TrimSpace(q.Get("user_id")),
		Mode:   domain.ParseMode(q.Get("mode")),
	}
	if radiusStr := q.Get("radius"); radiusStr != "" {
		radius, err := strconv.ParseFloat(radiusStr, 64)
		if err != nil || radius <= 0 || radius > maxRadius {
			return discovery.Request{}, fmt.Errorf("invalid radius")
		}
		req.Radius = radius
	}
	return req, nil
}

// requestUserID takes user_id from the query string or from a json body
func requestUserID(r *http.Request) (string, error) {
	if userID := strings.TrimSpace(r.URL.Query().Get("user_id")); userID != "" {
		return userID, nil
	}

	var body struct {
		UserID string `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("invalid request body: %w", err)
	}
	if userID := strings.TrimSpace(body.UserID); userID != "" {
		return userID, nil
	}
	return "", fmt.Errorf("user_id is required")
}
