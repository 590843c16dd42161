package config

import (
	"encoding/json"
	"os"

	"github.com/cityzen/tripbuddy/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell an absent key from an empty value.
type JsonConfig struct {
	DatabasePath *string `json:"database_path"`
	LogLevel     *string `json:"log_level"`
	Currency     *string `json:"currency"`
}

// parseJson overlays Config with values from the JSON file named by -c or
// -config. Without either flag it does nothing. Read or decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath()
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

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.Currency != nil {
		cfg.Currency = *jc.Currency
	}
}
