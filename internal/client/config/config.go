package config

import "time"

// Config holds runtime settings for the tempchat CLI.
//
// Fields:
//   - DatabasePath: path of the local SQLite file backing the store.
//   - RetentionWindow: how long messages survive before being pruned on load.
type Config struct {
	DatabasePath    string
	RetentionWindow time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "tempchat.db"
	c.RetentionWindow = 72 * time.Hour
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including a .env file if present), JSON (if present) and
// command-line flags (if present). Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
