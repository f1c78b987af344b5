package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/tempchat/internal/flagx"
	"github.com/dmitrijs2005/tempchat/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify the retention window
// either as a string like "72h" or as integer nanoseconds. After parsing,
// values are copied into the runtime Config.
type JsonConfig struct {
	DatabasePath    string         `json:"database_path"`
	RetentionWindow timex.Duration `json:"retention_window"`
}

// parseJson overlays Config with values loaded from a JSON file selected
// via the -c or -config flags. If neither flag is given, nothing happens.
// Read or unmarshal errors panic (caller may recover if desired).
//
// Intended usage is: defaults -> parseEnv -> parseJson -> parseFlags, where
// later stages override earlier ones.
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

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RetentionWindow.Duration != 0 {
		cfg.RetentionWindow = time.Duration(jc.RetentionWindow.Duration)
	}
}
