package config

import (
	"os"
	"path/filepath"
)

// Config holds runtime settings for the TripBuddy CLI.
//
// Fields:
//   - DatabasePath: SQLite file holding accounts and the session.
//   - LogLevel: debug, info, warn or error.
//   - Currency: code printed next to trip budgets.
type Config struct {
	DatabasePath string
	LogLevel     string
	Currency     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = defaultDatabasePath()
	c.LogLevel = "warn"
	c.Currency = "EUR"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

func defaultDatabasePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "tripbuddy.db"
	}
	return filepath.Join(dir, "tripbuddy", "tripbuddy.db")
}
