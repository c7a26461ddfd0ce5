// Command fsmctl loads a state machine definition and fires events against it.
//
// Usage:
//
//	FSM_DEFINITION=order.yaml fsmctl submit approve close
//
// Every fired event prints "event: from -> to". The first refused event stops
// the run with a non-zero exit code. Hooks named "log" in the definition write
// a structured log line for each phase.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"github.com/dmitrymomot/fsmlite/pkg/config"
	"github.com/dmitrymomot/fsmlite/pkg/definition"
	"github.com/dmitrymomot/fsmlite/pkg/logger"
	"github.com/dmitrymomot/fsmlite/pkg/statemachine"
)

// Config is populated from environment variables and an optional .env file.
type Config struct {
	Definition string `env:"FSM_DEFINITION,required"`
	LogLevel   string `env:"FSM_LOG_LEVEL"`
	LogFormat  string `env:"FSM_LOG_FORMAT"`
	Env        string `env:"FSM_ENV" envDefault:"development"`
	ListEvents bool   `env:"FSM_LIST_EVENTS" envDefault:"false"`
}

const serviceName = "fsmctl"

func main() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := newLogger(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log, os.Args[1:], os.Stdout); err != nil {
		log.ErrorContext(ctx, "run failed", logger.Error(err))
		stop()
		os.Exit(1)
	}
}

var errInvalidLogFormat = errors.New("invalid log format")

type runIDKey struct{}

// withRunID tags ctx so every record logged during the run carries run_id.
func withRunID(ctx context.Context) context.Context {
	return context.WithValue(ctx, runIDKey{}, uuid.NewString())
}

// newLogger starts from the defaults of cfg.Env. FSM_LOG_LEVEL and
// FSM_LOG_FORMAT override them only when set.
func newLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithOutput(w),
		logger.WithContextValue("run_id", runIDKey{}),
	}

	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}

	if cfg.LogFormat != "" {
		format := logger.Format(strings.ToLower(cfg.LogFormat))
		if format != logger.FormatJSON && format != logger.FormatText {
			return nil, fmt.Errorf("%w: %q", errInvalidLogFormat, cfg.LogFormat)
		}
		opts = append(opts, logger.WithFormat(format))
	}

	return logger.New(opts...), nil
}

// hooks returns the registry of hooks that definition files may reference.
func hooks(log *slog.Logger) *definition.Registry {
	return definition.NewRegistry().
		MustRegister("log", statemachine.HookFunc(func(ctx context.Context, t statemachine.Transition) error {
			log.InfoContext(ctx, "hook",
				logger.Machine(t.Machine),
				logger.Event(t.Event),
				logger.Phase(t.Phase),
				logger.From(t.From),
				logger.To(t.To),
				logger.TransitionID(t.ID),
			)
			return nil
		}))
}

func run(ctx context.Context, cfg Config, log *slog.Logger, events []string, stdout io.Writer) error {
	ctx = withRunID(ctx)

	metrics := &statemachine.Metrics{}
	observer := statemachine.NewCompositeObserver(statemachine.NewLoggingObserver(log), metrics)

	m, err := definition.LoadFile(ctx, cfg.Definition, hooks(log), statemachine.WithObserver(observer))
	if err != nil {
		return fmt.Errorf("load definition: %w", err)
	}
	if err := m.Build(); err != nil {
		return fmt.Errorf("build %s: %w", m.Name, err)
	}

	defer func() {
		s := metrics.Snapshot()
		log.DebugContext(ctx, "run finished",
			logger.Machine(m.Name),
			logger.State(m.CurrentState()),
			slog.Int64("transitions", s.Transitions),
			slog.Int64("refusals", s.Refusals),
			slog.Int64("hook_failures", s.HookFailures),
		)
	}()

	for _, event := range events {
		if err := ctx.Err(); err != nil {
			return err
		}
		from := m.CurrentState()
		if err := m.Fire(ctx, event); err != nil {
			return fmt.Errorf("fire %s: %w", event, err)
		}
		fmt.Fprintf(stdout, "%s: %s -> %s\n", event, from, m.CurrentState())
	}

	if cfg.ListEvents {
		fmt.Fprintf(stdout, "available: %s\n", strings.Join(m.AvailableEvents(), ", "))
	}
	return nil
}
