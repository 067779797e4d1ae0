// Package config handles configuration for the editor CLI, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the awarddeck editor CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend HTTP API.
//   - APIToken: bearer token sent with every request.
//   - DraftDBPath: sqlite file used for local working-copy autosave.
//   - RequestTimeout: per-request timeout for API calls.
type Config struct {
	ServerEndpointAddr string
	APIToken           string
	DraftDBPath        string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8090"
	c.APIToken = "devtoken"
	c.DraftDBPath = "drafts.db"
	c.RequestTimeout = 15 * time.Second
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
