// Package config loads application configuration from environment variables.
//
// It wraps github.com/joho/godotenv to read optional .env files and
// github.com/caarlos0/env/v11 to parse the environment into a struct described
// with field tags.
//
// # Usage
//
//	type Config struct {
//		Definition string `env:"DEFINITION,required"`
//		LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg, config.WithPrefix("FSM_"))
//
// The default .env file in the working directory is loaded once, on the first
// call, and only if it exists. Additional files can be requested per call with
// WithFiles. Values already present in the process environment always win.
//
// # Error Handling
//
// Load wraps failures with ErrParsingConfig or ErrLoadingEnvFile using
// errors.Join, so callers can match them with errors.Is while keeping the
// underlying message.
package config
