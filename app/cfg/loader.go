package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Provider configuration
	SerperAPIKey      string `long:"serper-api-key" env:"SERPER_API_KEY" description:"Serper.dev API key (required)" required:"true"`
	SerperURL         string `long:"serper-url" env:"SERPER_URL" default:"https://google.serper.dev" description:"Serper API base URL"`
	SearchTimeout     int    `long:"search-timeout" env:"SEARCH_TIMEOUT" default:"10" description:"Provider request timeout in seconds"`
	RateLimitInterval int    `long:"rate-limit-interval" env:"RATE_LIMIT_INTERVAL" default:"1000" description:"Minimum milliseconds between provider calls"`

	// Application configuration
	Port            string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	GL              string `long:"gl" env:"SEARCH_GL" default:"us" description:"Provider country code for search results"`
	HL              string `long:"hl" env:"SEARCH_HL" default:"en" description:"Provider language code for search results"`
	DBPath          string `long:"db-path" env:"DB_PATH" default:"./event-scout.db" description:"Path to the SQLite search log database"`
	CategoriesDir   string `long:"categories-dir" env:"CATEGORIES_DIR" default:"./categories" description:"Directory containing category profile files"`
	MonitorInterval int    `long:"monitor-interval" env:"MONITOR_INTERVAL" default:"60" description:"Health monitor probe interval in seconds"`
	APIAccessKey    string `long:"api-key" env:"API_ACCESS_KEY" description:"API access key for authentication (optional)"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Event Scout/1.0" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		SerperAPIKey:      raw.SerperAPIKey,
		SerperURL:         raw.SerperURL,
		SearchTimeout:     raw.SearchTimeout,
		RateLimitInterval: raw.RateLimitInterval,
		Port:              raw.Port,
		GL:                raw.GL,
		HL:                raw.HL,
		DBPath:            raw.DBPath,
		CategoriesDir:     raw.CategoriesDir,
		MonitorInterval:   raw.MonitorInterval,
		APIAccessKey:      raw.APIAccessKey,
		UserAgent:         raw.UserAgent,
		Timezone:          raw.Timezone,
		Debug:             raw.Debug,
		Version:           GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
