package definition_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fsmlite/pkg/definition"
	"github.com/dmitrymomot/fsmlite/pkg/statemachine"
)

type auditLog struct {
	entries []string
}

func (a *auditLog) hook() statemachine.Hook {
	return statemachine.HookFunc(func(_ context.Context, t statemachine.Transition) error {
		a.entries = append(a.entries, t.Phase.String()+":"+t.Event)
		return nil
	})
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"testdata/order.yaml", "testdata/order.json"} {
		t.Run(path, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			audit := &auditLog{}
			reg := definition.NewRegistry().MustRegister("audit", audit.hook())

			m, err := definition.LoadFile(ctx, path, reg)
			require.NoError(t, err)
			assert.Equal(t, "order", m.Name)
			assert.Equal(t, statemachine.StatusUnbuilt, m.Status())

			require.NoError(t, m.Build())
			assert.Equal(t, "draft", m.CurrentState())

			require.NoError(t, m.Fire(ctx, "submit"))
			require.NoError(t, m.Fire(ctx, "approve"))
			require.NoError(t, m.Fire(ctx, "close"))
			assert.True(t, m.IsFinished())

			assert.Equal(t, []string{
				"before:submit",
				"enter:submit",
				"enter:close",
				"after:close",
			}, audit.entries)
		})
	}
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reg := definition.NewRegistry().MustRegister("audit", noopHook())

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := definition.LoadFile(ctx, "testdata/missing.yaml", reg)
		assert.ErrorIs(t, err, definition.ErrFailedToReadFile)
	})

	t.Run("unsupported format", func(t *testing.T) {
		t.Parallel()

		_, err := definition.LoadFile(ctx, "testdata/order.toml", reg)
		assert.ErrorIs(t, err, definition.ErrUnsupportedFormat)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		_, err := definition.LoadFile(ctx, "testdata/unknown_field.yaml", reg)
		assert.ErrorIs(t, err, definition.ErrFailedToParseYAML)
		assert.Contains(t, err.Error(), "testdata/unknown_field.yaml")
	})

	t.Run("unregistered hook", func(t *testing.T) {
		t.Parallel()

		_, err := definition.LoadFile(ctx, "testdata/order.yaml", definition.NewRegistry())
		require.Error(t, err)
		assert.True(t, definition.IsUnknownHookError(err))

		var unknown *definition.ErrUnknownHook
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, "audit", unknown.Name)
		assert.Equal(t, "state submitted", unknown.Owner)
	})
}

func TestLoadFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"machines/light.yml": &fstest.MapFile{Data: []byte(`
name: light
initial: "off"
states:
  - name: "off"
  - name: "on"
events:
  - name: toggle
    from: "off"
    to: "on"
  - name: toggle_back
    from: "on"
    to: "off"
`)},
	}

	m, err := definition.LoadFS(context.Background(), fsys, "machines/light.yml", nil,
		statemachine.WithIDGenerator(func() string { return "fixed" }))
	require.NoError(t, err)
	require.NoError(t, m.Build())
	assert.Equal(t, []string{"toggle"}, m.AvailableEvents())

	_, err = definition.LoadFS(context.Background(), fsys, "machines/missing.yml", nil)
	assert.ErrorIs(t, err, definition.ErrFailedToReadFile)
}

func TestDocument_Machine(t *testing.T) {
	t.Parallel()

	doc := &definition.Document{
		Name:    "dup",
		Initial: "a",
		States:  []definition.StateDef{{Name: "a"}, {Name: "a"}},
		Events:  []definition.EventDef{{Name: "loop", From: definition.Names{"a"}, To: "a"}},
	}

	m, err := doc.Machine(nil)
	require.NoError(t, err, "structure is validated by Build")

	err = m.Build()
	assert.True(t, statemachine.IsDuplicateStateError(err))
}

func TestDocument_MachineUnknownEventHook(t *testing.T) {
	t.Parallel()

	doc := &definition.Document{
		Name:    "x",
		Initial: "a",
		States:  []definition.StateDef{{Name: "a"}},
		Events:  []definition.EventDef{{Name: "loop", From: definition.Names{"a"}, To: "a", After: "notify"}},
	}

	_, err := doc.Machine(definition.NewRegistry())
	var unknown *definition.ErrUnknownHook
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "event loop", unknown.Owner)
}
