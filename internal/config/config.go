// Package config assembles runtime settings for the admin console. Sources
// are layered: built-in defaults, then a .env file and environment
// variables, then an optional JSON config file, then command-line flags.
// Later sources take precedence.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the admin console.
//
// Units: RequestTimeout is a time.Duration (e.g., 15*time.Second).
type Config struct {
	// BaseURL is the root of the store API, e.g. "http://localhost:5000".
	BaseURL string
	// SessionFile is where the signed-in session is persisted.
	SessionFile string
	// RequestTimeout bounds every API call.
	RequestTimeout time.Duration
	// PageSize is the number of rows requested per list page.
	PageSize int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:5000"
	c.SessionFile = defaultSessionFile()
	c.RequestTimeout = 15 * time.Second
	c.PageSize = 10
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".shopadmin/session.json"
	}
	return filepath.Join(home, ".shopadmin", "session.json")
}

// Load constructs a Config: defaults, then environment (including a .env
// file when present), then the JSON file at jsonPath (if non-empty). Flag
// overrides are applied by the caller on top of the result.
func Load(jsonPath string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	// Missing .env is fine; explicit env vars still apply below.
	_ = godotenv.Load()
	cfg.applyEnv()

	if jsonPath != "" {
		if err := cfg.applyJSON(jsonPath); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SHOPADMIN_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("SHOPADMIN_SESSION_FILE"); v != "" {
		c.SessionFile = v
	}
	if v := os.Getenv("SHOPADMIN_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.RequestTimeout = d
		}
	}
	if v := os.Getenv("SHOPADMIN_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.PageSize = n
		}
	}
}
