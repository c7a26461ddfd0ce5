// Package logger provides a context-aware wrapper around Go's slog package with
// functional options, attribute helpers for state machine records, and
// transparent injection of values stored in context.Context.
//
// New creates a *slog.Logger. The concrete handler is slog.NewTextHandler or
// slog.NewJSONHandler depending on the configured Format. If any
// ContextExtractor is registered it is wrapped with LogHandlerDecorator, which
// runs the extractors on every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "fsmctl"),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//
//	log.InfoContext(ctx, "transition completed",
//	    logger.Machine("order"),
//	    logger.Event("submit"),
//	    logger.From("draft"),
//	    logger.To("review"),
//	)
//
// Helpers such as Error, To and TransitionID return an empty attribute for zero
// input, which slog handlers drop, so callers need no extra checks.
package logger
