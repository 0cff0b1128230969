// Package config loads runtime settings for the fitcoach CLI.
//
// Sources are applied in layers, later ones overriding earlier ones:
// built-in defaults, environment variables (including a .env file),
// a JSON config file (-c/-config), and finally command-line flags.
package config

import "time"

// Config holds runtime settings for the fitcoach CLI.
//
// Fields:
//   - APIBaseURL: scheme://host[:port] of the backend; the /api/v1 prefix
//     is appended by the gateway client.
//   - TokenDBPath: path of the local SQLite file holding the credential.
//   - ToastDelay: how long a transient notification stays on screen.
type Config struct {
	APIBaseURL  string
	TokenDBPath string
	ToastDelay  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.TokenDBPath = "fitcoach.db"
	c.ToastDelay = 4 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, JSON (if present), and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
