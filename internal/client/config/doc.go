// Package config loads runtime configuration for the tempchat CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally from a .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path of the local SQLite database file
//	-r int      message retention window (hours)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the retention window, so values
// can be either strings like "72h" or integer nanoseconds:
//
//	{
//	  "database_path": "tempchat.db",
//	  "retention_window": "72h"
//	}
package config
