package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cafb-tech/alacarte/internal/domain"
	"github.com/cafb-tech/alacarte/internal/schedule"
	"github.com/spf13/viper"
)

// Config is the startup configuration for one run. It is built once in
// main and passed into constructors; nothing reloads it afterwards.
type Config struct {
	DBPath string

	// Schedule core settings.
	HorizonDays         int
	EveryOtherWeekGrace bool
	Periods             map[domain.Period]domain.TimeWindow

	Geo GeoConfig
}

// GeoConfig configures the geocoder and the nearby-agency locator.
type GeoConfig struct {
	// Locator selects the backend: "memory" (haversine over stored
	// coordinates) or "redis" (GEO commands against a redis instance).
	Locator   string
	RedisAddr string
	RedisDB   int

	GeocoderBaseURL string
	UserAgent       string

	DefaultRadiusMiles float64
	DefaultLimit       int
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		DBPath:              "",
		HorizonDays:         schedule.DefaultHorizonDays,
		EveryOtherWeekGrace: false,
		Periods:             schedule.DefaultPeriods(),
		Geo: GeoConfig{
			Locator:            "memory",
			RedisAddr:          "localhost:6379",
			GeocoderBaseURL:    "https://nominatim.openstreetmap.org",
			UserAgent:          "alacarte",
			DefaultRadiusMiles: 10,
			DefaultLimit:       25,
		},
	}
}

// Load reads configuration from an optional YAML file merged over defaults
// and ALACARTE_* environment variables. An empty path searches the working
// directory and $HOME/.alacarte for alacarte.yaml; a missing file is fine,
// a malformed one is not.
func Load(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("alacarte")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.alacarte")
	}
	v.SetEnvPrefix("ALACARTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("db_path", cfg.DBPath)
	v.SetDefault("horizon_days", cfg.HorizonDays)
	v.SetDefault("every_other_week_grace", cfg.EveryOtherWeekGrace)
	v.SetDefault("geo.locator", cfg.Geo.Locator)
	v.SetDefault("geo.redis_addr", cfg.Geo.RedisAddr)
	v.SetDefault("geo.redis_db", cfg.Geo.RedisDB)
	v.SetDefault("geo.geocoder_base_url", cfg.Geo.GeocoderBaseURL)
	v.SetDefault("geo.user_agent", cfg.Geo.UserAgent)
	v.SetDefault("geo.default_radius_miles", cfg.Geo.DefaultRadiusMiles)
	v.SetDefault("geo.default_limit", cfg.Geo.DefaultLimit)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg.DBPath = v.GetString("db_path")
	cfg.HorizonDays = v.GetInt("horizon_days")
	cfg.EveryOtherWeekGrace = v.GetBool("every_other_week_grace")
	cfg.Geo.Locator = v.GetString("geo.locator")
	cfg.Geo.RedisAddr = v.GetString("geo.redis_addr")
	cfg.Geo.RedisDB = v.GetInt("geo.redis_db")
	cfg.Geo.GeocoderBaseURL = v.GetString("geo.geocoder_base_url")
	cfg.Geo.UserAgent = v.GetString("geo.user_agent")
	cfg.Geo.DefaultRadiusMiles = v.GetFloat64("geo.default_radius_miles")
	cfg.Geo.DefaultLimit = v.GetInt("geo.default_limit")

	if cfg.HorizonDays <= 0 {
		return Config{}, fmt.Errorf("horizon_days must be positive, got %d", cfg.HorizonDays)
	}

	periods, err := parsePeriods(v.GetStringMapStringSlice("periods"))
	if err != nil {
		return Config{}, err
	}
	for name, window := range periods {
		cfg.Periods[name] = window
	}

	return cfg, nil
}

// parsePeriods converts the file's periods table, e.g.
//
//	periods:
//	  morning: ["06:00", "11:59"]
//
// into the period-window map. Partial overrides are allowed; unnamed
// periods keep their defaults.
func parsePeriods(raw map[string][]string) (map[domain.Period]domain.TimeWindow, error) {
	out := make(map[domain.Period]domain.TimeWindow, len(raw))
	for name, bounds := range raw {
		if !domain.ValidPeriods[strings.ToLower(name)] {
			return nil, fmt.Errorf("unknown period name %q in config", name)
		}
		if len(bounds) != 2 {
			return nil, fmt.Errorf("period %q needs [start, end], got %d values", name, len(bounds))
		}
		start, err := domain.ParseTimeOfDay(bounds[0])
		if err != nil {
			return nil, fmt.Errorf("period %q start: %w", name, err)
		}
		end, err := domain.ParseTimeOfDay(bounds[1])
		if err != nil {
			return nil, fmt.Errorf("period %q end: %w", name, err)
		}
		if start > end {
			return nil, fmt.Errorf("period %q start %s after end %s", name, start, end)
		}
		out[domain.Period(strings.ToLower(name))] = domain.TimeWindow{Start: start, End: end}
	}
	return out, nil
}
