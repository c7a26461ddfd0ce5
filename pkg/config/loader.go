package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Option configures a single Load call.
type Option func(*options)

type options struct {
	prefix string
	files  []string
}

// WithPrefix prepends prefix to every env tag of the target struct.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithFiles loads the given .env files before parsing. Unlike the default .env
// file, an explicitly listed file that cannot be read is an error.
// Variables already present in the environment are never overridden.
func WithFiles(paths ...string) Option {
	return func(o *options) { o.files = append(o.files, paths...) }
}

// Load parses environment variables into the struct pointed to by v.
//
// The default .env file in the working directory is loaded once per process if
// it exists. Fields are populated according to their env tags:
//
//	type Config struct {
//		Definition string `env:"FSM_DEFINITION,required"`
//		LogLevel   string `env:"FSM_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		// the .env file is optional
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if len(o.files) > 0 {
		if err := godotenv.Load(o.files...); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
