// Package config holds the runtime settings of the OnCall client and the
// layering that produces them: built-in defaults, then a .env file, then a
// JSON config file, then command-line flags. Later sources win.
package config

import "time"

// Config holds runtime settings for the OnCall CLI.
//
// Timeout is the fixed per-request timeout of the HTTP client core.
// RetryAttempts/RetryDelay configure the caller-side retry policy applied to
// read-only list fetches; they are not part of the HTTP core's contract.
type Config struct {
	BaseURL       string
	Timeout       time.Duration
	DatabasePath  string
	RetryAttempts uint64
	RetryDelay    time.Duration
}

// LoadDefaults populates c with the defaults the mobile build shipped with.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:5000"
	c.Timeout = 10 * time.Second
	c.DatabasePath = "oncall.db"
	c.RetryAttempts = 2
	c.RetryDelay = 500 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including a .env file if present), a JSON file (if named
// via -c/-config), and command-line flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
