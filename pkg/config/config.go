package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/luvbee/discovery/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server       ServerConfig       `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database     DatabaseConfig     `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Discovery    DiscoveryConfig    `yaml:"discovery" json:"discovery" jsonschema:"description=Feed assembly and population settings"`
	Places       PlacesConfig       `yaml:"places" json:"places" jsonschema:"description=External places API configuration"`
	Events       EventsConfig       `yaml:"events" json:"events" jsonschema:"description=Event spider configuration"`
	Hints        HintsConfig        `yaml:"hints" json:"hints" jsonschema:"description=Durable population cooldown hints"`
	Housekeeping HousekeepingConfig `yaml:"housekeeping" json:"housekeeping" jsonschema:"description=Background jobs configuration"`
}

// ServerConfig holds http server settings
type ServerConfig struct {
	Listen   string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	Throttle int           `yaml:"throttle" json:"throttle" jsonschema:"default=100,minimum=1,description=Maximum concurrent requests"`
}

// DatabaseConfig holds sqlite settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:luvbee.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// DiscoveryConfig holds feed assembly settings
type DiscoveryConfig struct {
	MinFeedItems  int           `yaml:"min_feed_items" json:"min_feed_items" jsonschema:"default=5,minimum=1,description=Feeds with fewer items trigger population"`
	PopulateTTL   time.Duration `yaml:"populate_ttl" json:"populate_ttl" jsonschema:"default=15m,description=Minimum time between population runs for the same query"`
	EventRadiusKm float64       `yaml:"event_radius_km" json:"event_radius_km" jsonschema:"default=50,description=Maximum distance of events in km"`
	QueryLimit    int           `yaml:"query_limit" json:"query_limit" jsonschema:"default=50,minimum=1,description=Most recent stored candidates considered per query"`
	DefaultRadius float64       `yaml:"default_radius" json:"default_radius" jsonschema:"default=5000,description=Search radius in meters for requests without one"`
	MinRating     float64       `yaml:"min_rating" json:"min_rating" jsonschema:"default=4,minimum=0,maximum=5,description=Stored places rated below are hidden"`
}

// PlacesConfig holds external places API settings
type PlacesConfig struct {
	APIKey        string        `yaml:"api_key" json:"api_key" jsonschema:"description=Google Places API key, places population is disabled without it"`
	Endpoint      string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://places.googleapis.com/v1,description=Places API base URL"`
	MinRating     float64       `yaml:"min_rating" json:"min_rating" jsonschema:"default=4,minimum=0,maximum=5,description=Places rated below are not stored"`
	MaxResults    int           `yaml:"max_results" json:"max_results" jsonschema:"default=20,minimum=1,maximum=20,description=Results per search"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Request timeout"`
	RateLimit     float64       `yaml:"rate_limit" json:"rate_limit" jsonschema:"default=5,description=Requests per second, unlimited if zero"`
	Language      string        `yaml:"language" json:"language" jsonschema:"default=pt-BR,description=Result language"`
	IncludedTypes []string      `yaml:"included_types" json:"included_types" jsonschema:"description=Place types searched in normal mode"`
}

// EventsConfig holds event spider settings
type EventsConfig struct {
	Disabled    bool          `yaml:"disabled" json:"disabled" jsonschema:"default=false,description=Disable event discovery"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=20s,description=Request timeout per page"`
	HorizonDays int           `yaml:"horizon_days" json:"horizon_days" jsonschema:"default=30,minimum=1,description=How many days ahead to look for events"`
	UserAgent   string        `yaml:"user_agent" json:"user_agent" jsonschema:"description=Browser user agent for scraping"`
	Workers     int           `yaml:"workers" json:"workers" jsonschema:"default=4,minimum=1,description=Concurrent scrapers"`
	Sites       []Source      `yaml:"sites" json:"sites" jsonschema:"description=Event pages, JSON-LD or cards, url templates with {city} {state} {from} {to}"`
	Feeds       []Source      `yaml:"feeds" json:"feeds" jsonschema:"description=RSS or Atom event feeds, url templates with {city} {state} {from} {to}"`
	WarmCities  []string      `yaml:"warm_cities" json:"warm_cities" jsonschema:"description=Cities to discover events for periodically, as city/state slugs"`
}

// Source is a named set of url templates
type Source struct {
	Name string   `yaml:"name" json:"name" jsonschema:"required,description=Source name, used as source id prefix"`
	URLs []string `yaml:"urls" json:"urls" jsonschema:"required,description=URL templates tried in order"`
}

// HintsConfig selects the cooldown hint store
type HintsConfig struct {
	Provider string `yaml:"provider" json:"provider" jsonschema:"default=sqlite,enum=sqlite,enum=redis,enum=none,description=Hint store"`
	RedisURL string `yaml:"redis_url" json:"redis_url" jsonschema:"description=Redis url for the redis provider"`
	Prefix   string `yaml:"prefix" json:"prefix" jsonschema:"default=luvbee:cooldown:,description=Redis key prefix"`
}

// HousekeepingConfig holds background job intervals
type HousekeepingConfig struct {
	Interval     time.Duration `yaml:"interval" json:"interval" jsonschema:"default=1h,description=How often ended events are deactivated"`
	WarmInterval time.Duration `yaml:"warm_interval" json:"warm_interval" jsonschema:"default=6h,description=How often events are discovered for warm cities"`
}

// hint providers
const (
	HintsSqlite = "sqlite"
	HintsRedis  = "redis"
	HintsNone   = "none"
)

// DefaultSites are the ticketing sites scraped when none are configured
var DefaultSites = []Source{
	{Name: "sympla", URLs: []string{
		"https://www.sympla.com.br/eventos/{city}-{state}?data={from}-{to}",
		"https://www.sympla.com.br/eventos/{city}-{state}",
	}},
	{Name: "eventbrite", URLs: []string{
		"https://www.eventbrite.com.br/d/{state}--{city}/all-events/?start_date={from}&end_date={to}",
	}},
	{Name: "ingresse", URLs: []string{"https://ingresse.com/br/{city}"}},
	{Name: "shotgun", URLs: []string{
		"https://shotgun.com.br/{city}",
		"https://shotgun.com.br/events/{city}",
		"https://shotgun.com.br/cidade/{city}",
	}},
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// Default returns a configuration with all defaults set, used when no config file is given
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.Throttle == 0 {
		c.Server.Throttle = 100
	}

	// database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:luvbee.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// discovery
	if c.Discovery.MinFeedItems == 0 {
		c.Discovery.MinFeedItems = 5
	}
	if c.Discovery.PopulateTTL == 0 {
		c.Discovery.PopulateTTL = 15 * time.Minute
	}
	if c.Discovery.EventRadiusKm == 0 {
		c.Discovery.EventRadiusKm = 50
	}
	if c.Discovery.QueryLimit == 0 {
		c.Discovery.QueryLimit = 50
	}
	if c.Discovery.DefaultRadius == 0 {
		c.Discovery.DefaultRadius = 5000
	}
	if c.Discovery.MinRating == 0 {
		c.Discovery.MinRating = 4
	}

	// places
	if c.Places.Endpoint == "" {
		c.Places.Endpoint = "https://places.googleapis.com/v1"
	}
	if c.Places.MinRating == 0 {
		c.Places.MinRating = 4
	}
	if c.Places.MaxResults == 0 {
		c.Places.MaxResults = 20
	}
	if c.Places.Timeout == 0 {
		c.Places.Timeout = 15 * time.Second
	}
	if c.Places.RateLimit == 0 {
		c.Places.RateLimit = 5
	}
	if c.Places.Language == "" {
		c.Places.Language = "pt-BR"
	}

	// events
	if c.Events.Timeout == 0 {
		c.Events.Timeout = 20 * time.Second
	}
	if c.Events.HorizonDays == 0 {
		c.Events.HorizonDays = 30
	}
	if c.Events.Workers == 0 {
		c.Events.Workers = 4
	}
	if len(c.Events.Sites) == 0 && len(c.Events.Feeds) == 0 {
		c.Events.Sites = DefaultSites
	}

	// hints
	if c.Hints.Provider == "" {
		c.Hints.Provider = HintsSqlite
	}
	if c.Hints.Prefix == "" {
		c.Hints.Prefix = "luvbee:cooldown:"
	}

	// housekeeping
	if c.Housekeeping.Interval == 0 {
		c.Housekeeping.Interval = time.Hour
	}
	if c.Housekeeping.WarmInterval == 0 {
		c.Housekeeping.WarmInterval = 6 * time.Hour
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Server.Throttle < 1 {
		return fmt.Errorf("server.throttle must be at least 1")
	}

	// validate discovery config
	if cfg.Discovery.MinFeedItems < 1 {
		return fmt.Errorf("discovery.min_feed_items must be at least 1")
	}
	if cfg.Discovery.PopulateTTL < 0 {
		return fmt.Errorf("discovery.populate_ttl must be non-negative")
	}
	if cfg.Discovery.QueryLimit < 1 {
		return fmt.Errorf("discovery.query_limit must be at least 1")
	}
	if cfg.Discovery.DefaultRadius < 0 || cfg.Discovery.DefaultRadius > 50000 {
		return fmt.Errorf("discovery.default_radius must be between 0 and 50000")
	}

	// validate places config
	if cfg.Places.MinRating < 0 || cfg.Places.MinRating > 5 {
		return fmt.Errorf("places.min_rating must be between 0 and 5")
	}
	if cfg.Places.MaxResults < 1 || cfg.Places.MaxResults > 20 {
		return fmt.Errorf("places.max_results must be between 1 and 20")
	}

	// validate events config
	if !cfg.Events.Disabled {
		if cfg.Events.Timeout < time.Second {
			return fmt.Errorf("events timeout must be at least 1 second")
		}
		for _, src := range append(append([]Source{}, cfg.Events.Sites...), cfg.Events.Feeds...) {
			if src.Name == "" || len(src.URLs) == 0 {
				return fmt.Errorf("event source requires name and urls")
			}
		}
		for _, city := range cfg.Events.WarmCities {
			if c, s, ok := strings.Cut(city, "/"); !ok || c == "" || s == "" {
				return fmt.Errorf("events.warm_cities entry %q must be city/state", city)
			}
		}
	}

	// validate hints config
	switch cfg.Hints.Provider {
	case HintsSqlite, HintsNone:
	case HintsRedis:
		if cfg.Hints.RedisURL == "" {
			return fmt.Errorf("hints.redis_url is required for redis provider")
		}
	default:
		return fmt.Errorf("unknown hints provider %q", cfg.Hints.Provider)
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// WarmAreas returns warm cities as event searches
func (c *Config) WarmAreas() []domain.EventSearch {
	res := make([]domain.EventSearch, 0, len(c.Events.WarmCities))
	for _, city := range c.Events.WarmCities {
		if name, state, ok := strings.Cut(city, "/"); ok {
			res = append(res, domain.EventSearch{City: strings.TrimSpace(name), State: strings.TrimSpace(state)})
		}
	}
	return res
}
