package definition

import (
	"errors"
	"fmt"
)

var (
	// Parsing
	ErrParsingCancelled  = errors.New("definition parsing cancelled")
	ErrFailedToParseYAML = errors.New("failed to parse YAML definition")
	ErrFailedToParseJSON = errors.New("failed to parse JSON definition")
	ErrUnsupportedFormat = errors.New("unsupported definition file format")

	// Files
	ErrFailedToReadFile = errors.New("failed to read definition file")

	// Hook registry
	ErrEmptyHookName = errors.New("hook name cannot be empty")
	ErrNilHook       = errors.New("hook cannot be nil")
	ErrDuplicateHook = errors.New("hook is already registered")
)

// ErrUnknownHook indicates a document referencing a hook that is not registered.
type ErrUnknownHook struct {
	Name  string
	Owner string
}

func (e *ErrUnknownHook) Error() string {
	return fmt.Sprintf("unknown hook '%s' referenced by '%s'", e.Name, e.Owner)
}

func IsUnknownHookError(err error) bool {
	var e *ErrUnknownHook
	return errors.As(err, &e)
}
