package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/studyprep/internal/flagx"
	"github.com/dmitrijs2005/studyprep/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations use
// timex.Duration, so "10s" and integer nanoseconds are both accepted.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	DatabasePath   string         `json:"database_path"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	StoreSecret    string         `json:"store_secret"`
	LogLevel       string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c/-config. Fields
// absent from the file keep their current value. Read and decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.StoreSecret != "" {
		cfg.StoreSecret = jc.StoreSecret
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
