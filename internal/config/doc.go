// Package config loads runtime configuration for the snippets CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with --config / -c.
//  3. Environment variables SNIPPETS_DSN, SNIPPETS_LOG_FILE, SNIPPETS_LOG_LEVEL.
//  4. Command-line flags that were explicitly set.
//
// # JSON schema
//
//	{
//	  "database_dsn": "postgres://localhost:5432/snippets?sslmode=disable",
//	  "log_file": "snippets.log",
//	  "log_level": "debug"
//	}
//
// Empty JSON values leave the previous value in place.
package config
