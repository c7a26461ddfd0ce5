package statemachine

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/dmitrymomot/fsmlite/pkg/logger"
)

// Observer receives notifications about builds and fire attempts.
//
// Implementations run synchronously inside Build and Fire and should be fast.
type Observer interface {
	// OnBuild is called after every Build, with a nil err on success.
	OnBuild(machine string, err error)

	// OnTransition is called after every Fire. err is nil when the transition
	// completed. For refused fires To is empty; for hook failures Phase names
	// the failing hook.
	OnTransition(ctx context.Context, t Transition, err error)
}

// NoopObserver is an Observer that does nothing.
type NoopObserver struct{}

func (NoopObserver) OnBuild(string, error)                           {}
func (NoopObserver) OnTransition(context.Context, Transition, error) {}

// CompositeObserver fans out notifications to multiple observers.
type CompositeObserver struct {
	observers []Observer
}

// NewCompositeObserver creates an Observer forwarding to each non-nil observer in obs.
func NewCompositeObserver(obs ...Observer) Observer {
	filtered := make([]Observer, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			filtered = append(filtered, o)
		}
	}
	switch len(filtered) {
	case 0:
		return NoopObserver{}
	case 1:
		return filtered[0]
	}
	return &CompositeObserver{observers: filtered}
}

func (c *CompositeObserver) OnBuild(machine string, err error) {
	for _, o := range c.observers {
		o.OnBuild(machine, err)
	}
}

func (c *CompositeObserver) OnTransition(ctx context.Context, t Transition, err error) {
	for _, o := range c.observers {
		o.OnTransition(ctx, t, err)
	}
}

// LoggingObserver writes structured logs using log/slog.
type LoggingObserver struct {
	Logger *slog.Logger
}

// NewLoggingObserver creates an Observer logging builds and transitions.
// If logger is nil, slog.Default() is used.
func NewLoggingObserver(logger *slog.Logger) Observer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{Logger: logger}
}

func (o *LoggingObserver) OnBuild(machine string, err error) {
	if err != nil {
		o.Logger.Error("state machine build failed", logger.Machine(machine), logger.Error(err))
		return
	}
	o.Logger.Debug("state machine built", logger.Machine(machine))
}

func (o *LoggingObserver) OnTransition(ctx context.Context, t Transition, err error) {
	attrs := []slog.Attr{
		logger.Machine(t.Machine),
		logger.TransitionID(t.ID),
		logger.Event(t.Event),
		logger.From(t.From),
		logger.To(t.To),
	}

	var hookErr *ErrHookFailed
	switch {
	case err == nil:
		o.Logger.LogAttrs(ctx, slog.LevelInfo, "transition completed", attrs...)
	case errors.As(err, &hookErr):
		attrs = append(attrs, logger.Phase(hookErr.Phase), logger.Error(err))
		o.Logger.LogAttrs(ctx, slog.LevelError, "transition hook failed", attrs...)
	default:
		attrs = append(attrs, logger.Error(err))
		o.Logger.LogAttrs(ctx, slog.LevelWarn, "transition refused", attrs...)
	}
}

// Metrics counts builds and fire outcomes. It is safe to share one instance
// between many machines.
type Metrics struct {
	builds        atomic.Int64
	buildFailures atomic.Int64
	transitions   atomic.Int64
	refusals      atomic.Int64
	hookFailures  atomic.Int64
}

// MetricsSnapshot is an immutable copy of Metrics counters.
type MetricsSnapshot struct {
	Builds        int64
	BuildFailures int64
	Transitions   int64
	Refusals      int64
	HookFailures  int64
}

func (m *Metrics) OnBuild(_ string, err error) {
	if err != nil {
		m.buildFailures.Add(1)
		return
	}
	m.builds.Add(1)
}

func (m *Metrics) OnTransition(_ context.Context, _ Transition, err error) {
	switch {
	case err == nil:
		m.transitions.Add(1)
	case IsHookFailedError(err):
		m.hookFailures.Add(1)
	default:
		m.refusals.Add(1)
	}
}

// Snapshot returns the current counter values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Builds:        m.builds.Load(),
		BuildFailures: m.buildFailures.Load(),
		Transitions:   m.transitions.Load(),
		Refusals:      m.refusals.Load(),
		HookFailures:  m.hookFailures.Load(),
	}
}
