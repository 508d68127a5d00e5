package config

import (
	"errors"
	"os"
	"time"
)

// Config holds runtime settings for the StudyPrep CLI.
//
// Fields:
//   - APIBaseURL: root of the StudyPrep REST API.
//   - DatabasePath: SQLite file backing the secure store.
//   - RequestTimeout: limit for the launch-time profile check and API calls.
//   - StoreSecret: secret the store's cipher key is derived from.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL     string
	DatabasePath   string
	RequestTimeout time.Duration
	StoreSecret    string
	LogLevel       string
}

var (
	ErrNoAPIURL      = errors.New("config: api base url is not set")
	ErrNoStoreSecret = errors.New("config: store secret is not set (" + EnvStoreSecret + ")")
	ErrBadTimeout    = errors.New("config: request timeout must be positive")
)

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000"
	c.DatabasePath = "studyprep.db"
	c.RequestTimeout = 10 * time.Second
	c.StoreSecret = ""
	c.LogLevel = "info"
}

// Validate reports settings the client cannot start without.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return ErrNoAPIURL
	}
	if c.StoreSecret == "" {
		return ErrNoStoreSecret
	}
	if c.RequestTimeout <= 0 {
		return ErrBadTimeout
	}
	return nil
}

// LoadConfig constructs a Config from, in increasing precedence: defaults,
// the environment (and an optional .env file), a JSON file, and flags.
// Malformed input panics.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, args)
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
