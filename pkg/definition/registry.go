package definition

import (
	"fmt"
	"sort"

	"github.com/dmitrymomot/fsmlite/pkg/statemachine"
)

// Registry maps hook names used in documents to hook implementations.
// The zero value is ready to use. Registry is not safe for concurrent writes.
type Registry struct {
	hooks map[string]statemachine.Hook
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{hooks: make(map[string]statemachine.Hook)}
}

// Register adds a hook under name. Names must be unique and non-empty.
func (r *Registry) Register(name string, hook statemachine.Hook) error {
	if name == "" {
		return ErrEmptyHookName
	}
	if fn, ok := hook.(statemachine.HookFunc); hook == nil || (ok && fn == nil) {
		return fmt.Errorf("%w: '%s'", ErrNilHook, name)
	}
	if r.hooks == nil {
		r.hooks = make(map[string]statemachine.Hook)
	}
	if _, ok := r.hooks[name]; ok {
		return fmt.Errorf("%w: '%s'", ErrDuplicateHook, name)
	}
	r.hooks[name] = hook
	return nil
}

// MustRegister works like Register but panics on error.
func (r *Registry) MustRegister(name string, hook statemachine.Hook) *Registry {
	if err := r.Register(name, hook); err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the hook registered under name.
func (r *Registry) Lookup(name string) (statemachine.Hook, bool) {
	if r == nil {
		return nil, false
	}
	h, ok := r.hooks[name]
	return h, ok
}

// Names returns registered hook names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.hooks))
	for name := range r.hooks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
