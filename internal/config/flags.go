package config

import "github.com/spf13/pflag"

const (
	FlagConfig   = "config"
	FlagDSN      = "dsn"
	FlagLogFile  = "log-file"
	FlagLogLevel = "log-level"
)

// RegisterFlags declares the configuration flags on fs.
//
//	-c, --config string      path to a JSON config file
//	-d, --dsn string         database DSN
//	-l, --log-file string    diagnostic log file
//	    --log-level string   debug, info, warn or error
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "path to JSON config file")
	fs.StringP(FlagDSN, "d", "", "database DSN (postgres://... or path to a SQLite file)")
	fs.StringP(FlagLogFile, "l", "", "diagnostic log file")
	fs.String(FlagLogLevel, "", "log level: debug, info, warn, error")
}

// parseFlags copies flags the user explicitly set onto config, so that an
// unset flag never hides a JSON or environment value.
func parseFlags(config *Config, fs *pflag.FlagSet) error {
	targets := []struct {
		name string
		dst  *string
	}{
		{FlagDSN, &config.DatabaseDSN},
		{FlagLogFile, &config.LogFile},
		{FlagLogLevel, &config.LogLevel},
	}

	for _, t := range targets {
		if !fs.Changed(t.name) {
			continue
		}
		v, err := fs.GetString(t.name)
		if err != nil {
			return err
		}
		*t.dst = v
	}
	return nil
}
