package config

import "os"

const (
	EnvDSN      = "SNIPPETS_DSN"
	EnvLogFile  = "SNIPPETS_LOG_FILE"
	EnvLogLevel = "SNIPPETS_LOG_LEVEL"
)

// parseEnv overlays non-empty environment variables onto config.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv(EnvDSN); ok && v != "" {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok && v != "" {
		config.LogFile = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		config.LogLevel = v
	}
}
