package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-redis/redis/v8"
	"github.com/mattn/go-isatty"

	"github.com/cafb-tech/alacarte/internal/cli"
	"github.com/cafb-tech/alacarte/internal/config"
	"github.com/cafb-tech/alacarte/internal/db"
	"github.com/cafb-tech/alacarte/internal/geo"
	"github.com/cafb-tech/alacarte/internal/importer"
	"github.com/cafb-tech/alacarte/internal/llm"
	"github.com/cafb-tech/alacarte/internal/repository"
	"github.com/cafb-tech/alacarte/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	}))

	cfg, err := config.Load(os.Getenv("ALACARTE_CONFIG"))
	if err != nil {
		return err
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".alacarte", "alacarte.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	agencyRepo := repository.NewSQLiteAgencyRepo(database)
	hoursRepo := repository.NewSQLiteHoursRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	locator, err := buildLocator(cfg, agencyRepo)
	if err != nil {
		return err
	}

	geocoder := geo.NewNominatimGeocoder(cfg.Geo.GeocoderBaseURL, cfg.Geo.UserAgent)

	llmCfg := llm.LoadConfig()
	var responder llm.Responder = llm.DisabledResponder{}
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		responder = llm.NewOpenAIResponder(llmCfg, observer)
	}

	matchSvc := service.NewMatchService(service.MatchConfig{
		Periods:             cfg.Periods,
		HorizonDays:         cfg.HorizonDays,
		EveryOtherWeekGrace: cfg.EveryOtherWeekGrace,
	}, logger)

	app := &cli.App{
		Find:     service.NewFindService(geocoder, locator, agencyRepo, hoursRepo, matchSvc, responder, logger),
		Agencies: service.NewAgencyService(agencyRepo, hoursRepo),
		Importer: importer.New(uow, logger),
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
		DefaultRadiusMiles: cfg.Geo.DefaultRadiusMiles,
		DefaultLimit:       cfg.Geo.DefaultLimit,
	}

	return cli.NewRootCmd(app).Execute()
}

// buildLocator selects the geo backend. The memory backend loads every
// stored agency with coordinates at startup; the redis backend assumes a
// shared index and syncs it on each run.
func buildLocator(cfg config.Config, agencies repository.AgencyRepo) (geo.Locator, error) {
	ctx := context.Background()

	located, err := agencies.ListWithCoordinates(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading agency coordinates: %w", err)
	}

	switch cfg.Geo.Locator {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr: cfg.Geo.RedisAddr,
			DB:   cfg.Geo.RedisDB,
		})
		locator := geo.NewRedisLocator(client)
		if err := locator.Ping(ctx); err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		for _, a := range located {
			loc := geo.Location{Latitude: a.Latitude, Longitude: a.Longitude}
			if err := locator.Add(ctx, a.ID, loc); err != nil {
				return nil, err
			}
		}
		return locator, nil
	default:
		locator := geo.NewMemoryLocator()
		for _, a := range located {
			locator.Add(a.ID, geo.Location{Latitude: a.Latitude, Longitude: a.Longitude})
		}
		return locator, nil
	}
}

func logLevel() slog.Level {
	if os.Getenv("ALACARTE_DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}
