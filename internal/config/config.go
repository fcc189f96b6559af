package config

import (
	"errors"

	"github.com/dmitrijs2005/snippets/internal/logging"
	"github.com/spf13/pflag"
)

// Config holds runtime settings for the snippets CLI.
//
// Fields:
//   - DatabaseDSN: PostgreSQL URL/keyword DSN (pgx) or SQLite path (modernc).
//   - LogFile: append-only diagnostic log path.
//   - LogLevel: minimum level written to LogFile (debug, info, warn, error).
type Config struct {
	DatabaseDSN string
	LogFile     string
	LogLevel    string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "postgres://localhost:5432/snippets?sslmode=disable"
	c.LogFile = "snippets.log"
	c.LogLevel = "debug"
}

// Validate checks that the configuration can be used to start the app.
func (c *Config) Validate() error {
	if c.DatabaseDSN == "" {
		return errors.New("database DSN is required")
	}
	if c.LogFile == "" {
		return errors.New("log file is required")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then the JSON file named
// by the --config flag, then the environment, then explicitly set flags.
// fs is the parsed flag set that RegisterFlags populated.
func LoadConfig(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	path, err := fs.GetString(FlagConfig)
	if err != nil {
		return nil, err
	}
	if err := parseJson(cfg, path); err != nil {
		return nil, err
	}
	parseEnv(cfg)
	if err := parseFlags(cfg, fs); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
