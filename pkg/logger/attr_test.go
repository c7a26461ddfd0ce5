package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fsmlite/pkg/logger"
)

type phase string

func (p phase) String() string { return string(p) }

func TestGroup(t *testing.T) {
	attr := logger.Group("transition", logger.From("A"), logger.To("B"))
	require.Equal(t, "transition", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "from", g[0].Key)
	assert.Equal(t, "to", g[1].Key)
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestStateMachineAttrs(t *testing.T) {
	assert.Equal(t, slog.String("machine", "order"), logger.Machine("order"))
	assert.Equal(t, slog.String("event", "submit"), logger.Event("submit"))
	assert.Equal(t, slog.String("state", "draft"), logger.State("draft"))
	assert.Equal(t, slog.String("from", "draft"), logger.From("draft"))
	assert.Equal(t, slog.String("to", "review"), logger.To("review"))
	assert.Equal(t, slog.String("phase", "enter"), logger.Phase(phase("enter")))
	assert.Equal(t, slog.String("transition_id", "t-1"), logger.TransitionID("t-1"))
	assert.Equal(t, slog.String("component", "cli"), logger.Component("cli"))
}

func TestEmptyAttrs(t *testing.T) {
	assert.True(t, logger.To("").Equal(slog.Attr{}))
	assert.True(t, logger.TransitionID("").Equal(slog.Attr{}))
}
