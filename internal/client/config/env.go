package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first, if present;
// variables already set in the environment win over the file.
//
// Supported variables:
//
//	TEMPCHAT_DATABASE_PATH      path of the SQLite file
//	TEMPCHAT_RETENTION_WINDOW   duration string, e.g. "72h"
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("TEMPCHAT_DATABASE_PATH"); ok && v != "" {
		cfg.DatabasePath = v
	}
	if v, ok := os.LookupEnv("TEMPCHAT_RETENTION_WINDOW"); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RetentionWindow = d
		}
	}
}
