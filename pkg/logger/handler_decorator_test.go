package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fsmlite/pkg/logger"
)

type runKey struct{}

func runExtractor(ctx context.Context) (slog.Attr, bool) {
	if id, ok := ctx.Value(runKey{}).(string); ok {
		return slog.String("run_id", id), true
	}
	return slog.Attr{}, false
}

func TestNewLogHandlerDecorator(t *testing.T) {
	t.Parallel()

	t.Run("returns next when no extractor is left", func(t *testing.T) {
		t.Parallel()

		next := slog.NewJSONHandler(&bytes.Buffer{}, nil)
		assert.Same(t, next, logger.NewLogHandlerDecorator(next, nil, nil))
	})

	t.Run("derived handlers keep extractors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		h := logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), runExtractor)
		log := slog.New(h).With(logger.Machine("order")).WithGroup("fire")

		ctx := context.WithValue(context.Background(), runKey{}, "run-7")
		log.InfoContext(ctx, "transition completed", logger.Event("submit"))

		out := buf.String()
		assert.Contains(t, out, `"machine":"order"`)
		assert.Contains(t, out, `"fire":{`)
		assert.Contains(t, out, `"run_id":"run-7"`)
		assert.Contains(t, out, `"event":"submit"`)
	})

	t.Run("missing values add nothing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), runExtractor))
		log.InfoContext(context.Background(), "build completed")

		assert.NotContains(t, buf.String(), "run_id")
	})
}
