package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// LogHandlerDecorator adds attributes found in the record's context, such as a
// run or request ID, before passing the record on.
type LogHandlerDecorator struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// NewLogHandlerDecorator wraps next. Nil extractors are dropped; with none left
// next is returned unchanged.
func NewLogHandlerDecorator(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	var kept []ContextExtractor
	for _, ex := range extractors {
		if ex != nil {
			kept = append(kept, ex)
		}
	}
	if len(kept) == 0 {
		return next
	}
	return &LogHandlerDecorator{next: next, extractors: kept}
}

func (h *LogHandlerDecorator) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *LogHandlerDecorator) Handle(ctx context.Context, rec slog.Record) error {
	if ctx != nil {
		attrs := make([]slog.Attr, 0, len(h.extractors))
		for _, ex := range h.extractors {
			if attr, ok := ex(ctx); ok {
				attrs = append(attrs, attr)
			}
		}
		rec.AddAttrs(attrs...)
	}
	return h.next.Handle(ctx, rec)
}

func (h *LogHandlerDecorator) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.with(h.next.WithAttrs(attrs))
}

func (h *LogHandlerDecorator) WithGroup(name string) slog.Handler {
	return h.with(h.next.WithGroup(name))
}

func (h *LogHandlerDecorator) with(next slog.Handler) *LogHandlerDecorator {
	return &LogHandlerDecorator{next: next, extractors: h.extractors}
}
