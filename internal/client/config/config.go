package config

import "time"

// Config holds runtime settings for the borelog CLI.
//
// Fields:
//   - BaseURL: root of the report service REST API.
//   - RequestTimeout: per-request timeout of the underlying HTTP client.
//   - StorePath: sqlite file holding local snapshots (session, draft, Q&A).
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	StorePath      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 15 * time.Second
	c.StorePath = "borelog.db"
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
