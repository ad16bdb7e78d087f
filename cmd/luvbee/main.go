package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/luvbee/discovery/pkg/config"
	"github.com/luvbee/discovery/pkg/discovery"
	"github.com/luvbee/discovery/pkg/events"
	"github.com/luvbee/discovery/pkg/places"
	"github.com/luvbee/discovery/pkg/repository"
	"github.com/luvbee/discovery/pkg/scheduler"
	"github.com/luvbee/discovery/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"configuration file, defaults are used if empty"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	DB     string `long:"db" env:"DB" description:"database dsn, overrides config"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug, os.Getenv("PLACES_API_KEY"))

	log.Printf("[INFO] starting luvbee discovery version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires all components and blocks until the server stops
func run(ctx context.Context, opts Opts) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if secs := configSecrets(cfg); len(secs) > 0 {
		setupLog(opts.Debug, secs...)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	hints, closeHints, err := makeHints(ctx, cfg, repos)
	if err != nil {
		return fmt.Errorf("failed to setup cooldown hints: %w", err)
	}
	defer closeHints()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	params := discovery.Params{
		Locations:     repos.Location,
		Interactions:  repos.Interaction,
		Cache:         discovery.NewCache(cfg.Discovery.PopulateTTL, hints),
		Notices:       discovery.NewNoticeBoard(),
		Metrics:       discovery.NewMetrics(registry),
		MinFeedItems:  cfg.Discovery.MinFeedItems,
		QueryLimit:    cfg.Discovery.QueryLimit,
		EventRadiusKm: cfg.Discovery.EventRadiusKm,
		DefaultRadius: cfg.Discovery.DefaultRadius,
		MinRating:     cfg.Discovery.MinRating,
	}

	if populator := makePlaces(cfg, repos); populator != nil {
		params.Places = populator
	} else {
		log.Printf("[WARN] places api key is not set, places population disabled")
	}

	schedParams := scheduler.Params{
		Locations:       repos.Location,
		CleanupInterval: cfg.Housekeeping.Interval,
		WarmInterval:    cfg.Housekeeping.WarmInterval,
		WarmAreas:       cfg.WarmAreas(),
	}
	if spider := makeSpider(cfg, repos); spider != nil {
		params.Events = spider
		schedParams.Events = spider
	} else {
		log.Printf("[INFO] event discovery disabled")
	}

	svc := discovery.NewService(params)

	sched := scheduler.NewScheduler(schedParams)
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(server.Params{
		Config:       cfg,
		Discovery:    svc,
		Locations:    repos.Location,
		Interactions: repos.Interaction,
		Metrics:      promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Version:      revision,
		Debug:        opts.Debug,
		Throttle:     cfg.Server.Throttle,
	})

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// loadConfig reads the config file if set and applies command line overrides
func loadConfig(opts Opts) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return nil, err
		}
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.DB != "" {
		cfg.Database.DSN = opts.DB
	}
	return cfg, nil
}

// configSecrets returns config values masked in logs
func configSecrets(cfg *config.Config) []string {
	var res []string
	if cfg.Places.APIKey != "" {
		res = append(res, cfg.Places.APIKey)
	}
	if cfg.Hints.RedisURL != "" {
		if redisOpts, err := redis.ParseURL(cfg.Hints.RedisURL); err == nil && redisOpts.Password != "" {
			res = append(res, redisOpts.Password)
		}
	}
	return res
}

// makeHints builds the durable cooldown hint store selected in config
func makeHints(ctx context.Context, cfg *config.Config, repos *repository.Repositories) (discovery.CooldownHints, func(), error) {
	switch cfg.Hints.Provider {
	case config.HintsRedis:
		redisOpts, err := redis.ParseURL(cfg.Hints.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("parse redis url: %w", err)
		}
		client := redis.NewClient(redisOpts)
		if err := client.Ping(ctx).Err(); err != nil {
			// hints are best effort, the in-memory gate still works
			log.Printf("[WARN] redis %s is not reachable: %v", redisOpts.Addr, err)
		}
		closer := func() {
			if err := client.Close(); err != nil {
				log.Printf("[WARN] failed to close redis client: %v", err)
			}
		}
		log.Printf("[INFO] cooldown hints in redis %s", redisOpts.Addr)
		return discovery.NewRedisHints(client, cfg.Hints.Prefix, cfg.Discovery.PopulateTTL), closer, nil
	case config.HintsNone:
		return discovery.NoopHints{}, func() {}, nil
	case config.HintsSqlite, "":
		return repos.Cooldown, func() {}, nil
	default:
		return nil, nil, errors.New("unknown hints provider " + cfg.Hints.Provider)
	}
}

// makePlaces builds the places populator, nil without api key
func makePlaces(cfg *config.Config, repos *repository.Repositories) *places.Populator {
	if cfg.Places.APIKey == "" {
		return nil
	}
	client := places.NewClient(places.ClientParams{
		APIKey:     cfg.Places.APIKey,
		Endpoint:   cfg.Places.Endpoint,
		Timeout:    cfg.Places.Timeout,
		RateLimit:  cfg.Places.RateLimit,
		MaxResults: cfg.Places.MaxResults,
		Language:   cfg.Places.Language,
	})
	return places.NewPopulator(places.PopulatorParams{
		Searcher:  client,
		Store:     repos.Location,
		SearchLog: repos.SearchLog,
		MinRating: cfg.Places.MinRating,
		Types:     cfg.Places.IncludedTypes,
	})
}

// makeSpider builds the event spider with a scraper per configured site and feed, nil if disabled
func makeSpider(cfg *config.Config, repos *repository.Repositories) *events.Spider {
	if cfg.Events.Disabled {
		return nil
	}
	scrapers := make([]events.Scraper, 0, len(cfg.Events.Sites)+len(cfg.Events.Feeds))
	for _, site := range cfg.Events.Sites {
		scrapers = append(scrapers, events.NewPageScraper(events.Site{Name: site.Name, URLs: site.URLs},
			cfg.Events.Timeout, cfg.Events.UserAgent))
	}
	for _, feed := range cfg.Events.Feeds {
		scrapers = append(scrapers, events.NewFeedScraper(feed.Name, feed.URLs, cfg.Events.Timeout, cfg.Events.UserAgent))
	}
	if len(scrapers) == 0 {
		return nil
	}
	log.Printf("[INFO] event spider with %d scrapers", len(scrapers))
	return events.NewSpider(events.SpiderParams{
		Scrapers: scrapers,
		Store:    repos.Location,
		Horizon:  time.Duration(cfg.Events.HorizonDays) * 24 * time.Hour,
		Workers:  cfg.Events.Workers,
	})
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	var secrets []string
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}

