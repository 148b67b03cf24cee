package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/oncall-app/oncall-cli/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// carried as integer milliseconds to match the backend team's convention
// (the mobile build configured its timeout the same way).
type JsonConfig struct {
	BaseURL       string `json:"base_url"`
	TimeoutMs     int    `json:"timeout_ms"`
	DatabasePath  string `json:"database_path"`
	RetryAttempts int    `json:"retry_attempts"`
	RetryDelayMs  int    `json:"retry_delay_ms"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flag. When no flag is given, nothing is loaded. Zero-valued
// fields in the file leave the current config untouched. Read or unmarshal
// errors panic; config problems should stop startup.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.TimeoutMs > 0 {
		cfg.Timeout = time.Duration(jc.TimeoutMs) * time.Millisecond
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RetryAttempts > 0 {
		cfg.RetryAttempts = uint64(jc.RetryAttempts)
	}
	if jc.RetryDelayMs > 0 {
		cfg.RetryDelay = time.Duration(jc.RetryDelayMs) * time.Millisecond
	}
}
