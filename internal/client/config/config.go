package config

import "time"

// Config holds runtime settings for the campusctl CLI.
//
// Fields:
//   - BaseURL: base URL of the platform gateway; every service path is
//     resolved relative to it.
//   - RequestTimeout: fixed per-request ceiling for all HTTP calls.
//   - HealthCheckInterval: how often the status screen re-probes services.
//   - DBPath: location of the local SQLite file holding session state.
type Config struct {
	BaseURL             string
	RequestTimeout      time.Duration
	HealthCheckInterval time.Duration
	DBPath              string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8080"
	c.RequestTimeout = 10 * time.Second
	c.HealthCheckInterval = 30 * time.Second
	c.DBPath = "campus.db"
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
