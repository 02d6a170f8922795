// Package config loads client configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/leaguedesk/airbase-client/pkg/model"
)

// Config is the environment-driven configuration for the Airbase client.
type Config struct {
	// BaseURL is the Airbase API root.
	BaseURL string `env:"AIRBASE_URL" envDefault:"https://api.airbase.example/v0"`

	// BaseID selects the data base; no usable default exists.
	BaseID string `env:"AIRBASE_BASE_ID"`

	// APIKey is the bearer token for every request.
	APIKey string `env:"AIRBASE_API_KEY"`

	// ScorersTable overrides the default table for the scorer kind.
	ScorersTable string `env:"AIRBASE_TABLE_SCORERS"`

	// TeamWeekScorersTable overrides the default table for the
	// team-week-scorer kind.
	TeamWeekScorersTable string `env:"AIRBASE_TABLE_TEAM_WEEK_SCORERS"`

	// MaxPages bounds one fetch against a non-terminating cursor sequence.
	MaxPages int `env:"AIRBASE_MAX_PAGES" envDefault:"50"`

	// RequestTimeout bounds each page request.
	RequestTimeout time.Duration `env:"AIRBASE_REQUEST_TIMEOUT" envDefault:"30s"`

	// AuthSecret verifies session tokens; sessions are the cache
	// partition key.
	AuthSecret string `env:"AUTH_JWT_SECRET"`

	// RedisAddr, when set, switches the session cache to the shared
	// Redis store.
	RedisAddr string `env:"REDIS_ADDR"`

	// CacheTTL is the Redis entry lifetime; zero keeps entries until
	// logout.
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"0"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LogPretty switches to human-readable console logs.
	LogPretty bool `env:"LOG_PRETTY" envDefault:"false"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the fields that have no usable defaults.
func (c Config) Validate() error {
	if c.BaseID == "" {
		return fmt.Errorf("AIRBASE_BASE_ID is required")
	}
	if c.APIKey == "" {
		return fmt.Errorf("AIRBASE_API_KEY is required")
	}
	if c.MaxPages <= 0 {
		return fmt.Errorf("AIRBASE_MAX_PAGES must be positive (got %d)", c.MaxPages)
	}
	return nil
}

// TableOverrides returns the non-empty per-kind table overrides.
func (c Config) TableOverrides() map[model.Kind]string {
	overrides := make(map[model.Kind]string)
	if c.ScorersTable != "" {
		overrides[model.KindScorer] = c.ScorersTable
	}
	if c.TeamWeekScorersTable != "" {
		overrides[model.KindTeamWeekScorer] = c.TeamWeekScorersTable
	}
	return overrides
}
