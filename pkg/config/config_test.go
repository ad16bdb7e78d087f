package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luvbee/discovery/pkg/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configContent := `
server:
  listen: ":9090"
  timeout: 45s
  throttle: 20

discovery:
  min_feed_items: 8
  populate_ttl: 5m
  event_radius_km: 30

places:
  api_key: test-key
  min_rating: 4.2
  included_types: [bar, restaurant]

events:
  horizon_days: 14
  sites:
    - name: agenda
      urls: ["https://agenda.example.com/{city}-{state}"]
  feeds:
    - name: jazz
      urls: ["https://jazz.example.com/{city}/rss"]
  warm_cities: ["sao-paulo/sp", "recife/pe"]

hints:
  provider: redis
  redis_url: redis://localhost:6379/0
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, 20, cfg.Server.Throttle)

		assert.Equal(t, 8, cfg.Discovery.MinFeedItems)
		assert.Equal(t, 5*time.Minute, cfg.Discovery.PopulateTTL)
		assert.InDelta(t, 30, cfg.Discovery.EventRadiusKm, 0.001)

		assert.Equal(t, "test-key", cfg.Places.APIKey)
		assert.InDelta(t, 4.2, cfg.Places.MinRating, 0.001)
		assert.Equal(t, []string{"bar", "restaurant"}, cfg.Places.IncludedTypes)

		assert.Equal(t, 14, cfg.Events.HorizonDays)
		require.Len(t, cfg.Events.Sites, 1)
		assert.Equal(t, "agenda", cfg.Events.Sites[0].Name)
		require.Len(t, cfg.Events.Feeds, 1)
		assert.Equal(t, []string{"https://jazz.example.com/{city}/rss"}, cfg.Events.Feeds[0].URLs)

		assert.Equal(t, HintsRedis, cfg.Hints.Provider)
		assert.Equal(t, "redis://localhost:6379/0", cfg.Hints.RedisURL)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "server:\n  listen: \":8081\"\n"))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		// check server defaults
		assert.Equal(t, ":8081", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, 100, cfg.Server.Throttle)

		// check discovery defaults
		assert.Equal(t, 5, cfg.Discovery.MinFeedItems)
		assert.Equal(t, 15*time.Minute, cfg.Discovery.PopulateTTL)
		assert.InDelta(t, 50, cfg.Discovery.EventRadiusKm, 0.001)
		assert.Equal(t, 50, cfg.Discovery.QueryLimit)
		assert.InDelta(t, 5000, cfg.Discovery.DefaultRadius, 0.001)

		assert.Equal(t, "https://places.googleapis.com/v1", cfg.Places.Endpoint)
		assert.Equal(t, 20, cfg.Places.MaxResults)
		assert.Empty(t, cfg.Places.APIKey)

		// ticketing sites are used when no event sources are configured
		assert.Equal(t, DefaultSites, cfg.Events.Sites)
		assert.Equal(t, 30, cfg.Events.HorizonDays)
		assert.Equal(t, 4, cfg.Events.Workers)

		assert.Equal(t, HintsSqlite, cfg.Hints.Provider)
		assert.Equal(t, "luvbee:cooldown:", cfg.Hints.Prefix)
		assert.Equal(t, time.Hour, cfg.Housekeeping.Interval)
		assert.Equal(t, 6*time.Hour, cfg.Housekeeping.WarmInterval)
	})

	t.Run("feeds only keep default sites off", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, `
events:
  feeds:
    - name: jazz
      urls: ["https://jazz.example.com/rss"]
`))
		require.NoError(t, err)
		assert.Empty(t, cfg.Events.Sites)
		assert.Len(t, cfg.Events.Feeds, 1)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("LUVBEE_TEST_PLACES_KEY", "secret-from-env")
		cfg, err := Load(writeConfig(t, "places:\n  api_key: ${LUVBEE_TEST_PLACES_KEY}\n"))
		require.NoError(t, err)
		assert.Equal(t, "secret-from-env", cfg.Places.APIKey)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		configContent := `
invalid yaml content
  with bad indentation
    and no structure
`
		cfg, err := Load(writeConfig(t, configContent))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("validation errors", func(t *testing.T) {
		tests := []struct {
			name    string
			content string
			errMsg  string
		}{
			{name: "short timeout", content: "server:\n  timeout: 10ms\n", errMsg: "server timeout must be at least 1 second"},
			{name: "radius too large", content: "discovery:\n  default_radius: 60000\n", errMsg: "discovery.default_radius"},
			{name: "rating out of range", content: "places:\n  min_rating: 7\n", errMsg: "places.min_rating"},
			{name: "too many results", content: "places:\n  max_results: 50\n", errMsg: "places.max_results"},
			{name: "source without urls", content: "events:\n  sites:\n    - name: agenda\n", errMsg: "event source requires name and urls"},
			{name: "bad warm city", content: "events:\n  warm_cities: [recife]\n", errMsg: "must be city/state"},
			{name: "redis without url", content: "hints:\n  provider: redis\n", errMsg: "hints.redis_url is required"},
			{name: "unknown provider", content: "hints:\n  provider: memcached\n", errMsg: "unknown hints provider"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				cfg, err := Load(writeConfig(t, tt.content))
				require.Error(t, err)
				assert.Nil(t, cfg)
				assert.Contains(t, err.Error(), "validate config")
				assert.Contains(t, err.Error(), tt.errMsg)
			})
		}
	})

	t.Run("disabled events skip event validation", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "events:\n  disabled: true\n  warm_cities: [recife]\n"))
		require.NoError(t, err)
		assert.True(t, cfg.Events.Disabled)
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NotNil(t, cfg)
	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, "file:luvbee.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)
	require.NoError(t, validate(cfg))
	require.NoError(t, VerifyAgainstEmbeddedSchema(cfg))
}

func TestConfig_GetServerConfig(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Listen: ":9090", Timeout: 45 * time.Second}}

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":9090", listen)
	assert.Equal(t, 45*time.Second, timeout)
}

func TestConfig_WarmAreas(t *testing.T) {
	cfg := &Config{Events: EventsConfig{WarmCities: []string{"sao-paulo/sp", " recife / pe ", "broken"}}}
	assert.Equal(t, []domain.EventSearch{
		{City: "sao-paulo", State: "sp"},
		{City: "recife", State: "pe"},
	}, cfg.WarmAreas())

	assert.Empty(t, (&Config{}).WarmAreas())
}
