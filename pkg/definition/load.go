package definition

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dmitrymomot/fsmlite/pkg/statemachine"
)

// LoadFile reads a YAML or JSON definition from disk and converts it into an
// unbuilt machine. Call Build on the result before firing events.
func LoadFile(ctx context.Context, path string, reg *Registry, opts ...statemachine.Option) (*statemachine.Machine, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return decode(ctx, path, content, reg, opts...)
}

// LoadFS works like LoadFile but reads from fsys, e.g. an embed.FS.
func LoadFS(ctx context.Context, fsys fs.FS, path string, reg *Registry, opts ...statemachine.Option) (*statemachine.Machine, error) {
	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return decode(ctx, path, content, reg, opts...)
}

func decode(ctx context.Context, path string, content []byte, reg *Registry, opts ...statemachine.Option) (*statemachine.Machine, error) {
	parser := NewParserForFile(path)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	doc, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc.Machine(reg, opts...)
}
