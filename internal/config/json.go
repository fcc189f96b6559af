package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// JsonConfig is the on-disk shape of the optional configuration file.
type JsonConfig struct {
	DatabaseDSN string `json:"database_dsn"`
	LogFile     string `json:"log_file"`
	LogLevel    string `json:"log_level"`
}

// parseJson overlays non-empty values from the JSON file at path onto
// config. An empty path loads nothing.
func parseJson(config *Config, path string) error {
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.LogFile != "" {
		config.LogFile = c.LogFile
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	return nil
}
