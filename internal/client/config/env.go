package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first (ignored when absent); real
// environment variables take precedence over the file, which is godotenv's
// default behavior.
//
// Recognized keys:
//
//	ONCALL_BASE_URL    backend base URL
//	ONCALL_TIMEOUT_MS  request timeout in milliseconds
//	ONCALL_DB_PATH     path of the local sqlite database
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ONCALL_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("ONCALL_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.Timeout = time.Duration(ms) * time.Millisecond
		}
	}
	if v := os.Getenv("ONCALL_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
}
