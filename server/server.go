package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/luvbee/discovery/pkg/discovery"
	"github.com/luvbee/discovery/pkg/domain"
	"github.com/luvbee/discovery/pkg/repository"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/discovery.go -pkg mocks -skip-ensure -fmt goimports . Discovery
//go:generate moq -out mocks/locations.go -pkg mocks -skip-ensure -fmt goimports . Locations
//go:generate moq -out mocks/interactions.go -pkg mocks -skip-ensure -fmt goimports . Interactions

// Server represents HTTP server instance
type Server struct {
	config       ConfigProvider
	discovery    Discovery
	locations    Locations
	interactions Interactions
	metrics      http.Handler
	version      string
	debug        bool
	throttle     int

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Discovery builds feeds and keeps notices about background population
type Discovery interface {
	GetFeed(ctx context.Context, req discovery.Request) []domain.FeedItem
	DrainNotices(userID string) []discovery.Notice
	Stats() discovery.Stats
}

// Locations provides read access to cached locations
type Locations interface {
	GetLocation(ctx context.Context, id string) (*domain.Location, error)
	Stats(ctx context.Context) (repository.LocationStats, error)
}

// Interactions records user matches and rejections
type Interactions interface {
	Record(ctx context.Context, in domain.Interaction) error
	Remove(ctx context.Context, kind domain.InteractionKind, userID, locationID string) error
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// Params holds server dependencies. Metrics handler is optional, /metrics is not served without it.
type Params struct {
	Config       ConfigProvider
	Discovery    Discovery
	Locations    Locations
	Interactions Interactions
	Metrics      http.Handler
	Version      string
	Debug        bool
	Throttle     int // max concurrent requests, 100 if zero
}

// New initializes a new server instance
func New(params Params) *Server {
	s := &Server{
		config:       params.Config,
		discovery:    params.Discovery,
		locations:    params.Locations,
		interactions: params.Interactions,
		metrics:      params.Metrics,
		version:      params.Version,
		debug:        params.Debug,
		throttle:     params.Throttle,
		router:       routegroup.New(http.NewServeMux()),
	}
	if s.throttle <= 0 {
		s.throttle = 100
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		// population may take a while on sparse areas
		WriteTimeout: 2 * timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("luvbee", "luvbee", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(int64(s.throttle)))
	s.router.Use(rest.SizeLimit(64 * 1024)) // 64KB, only small json bodies are accepted
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /feed", s.feedHandler)
		r.HandleFunc("GET /notices", s.noticesHandler)
		r.HandleFunc("POST /locations/{id}/{action}", s.interactionHandler)
		r.HandleFunc("DELETE /locations/{id}/match", s.unmatchHandler)
	})

	if s.metrics != nil {
		s.router.Handle("GET /metrics", s.metrics)
	}
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
