package statemachine

import "fmt"

// Builder provides a fluent API for declaring state machines.
type Builder struct {
	machine *Machine
}

// NewBuilder creates a new state machine builder.
func NewBuilder(name string, opts ...Option) *Builder {
	return &Builder{
		machine: New(name, opts...),
	}
}

// Initial sets the state the machine starts in.
func (b *Builder) Initial(state string) *Builder {
	b.machine.InitialState = state
	return b
}

// Final sets the terminal state. Reaching it finishes the machine.
func (b *Builder) Final(state string) *Builder {
	b.machine.FinalState = state
	return b
}

// State declares a state.
func (b *Builder) State(name string, opts ...StateOption) *Builder {
	b.machine.States = append(b.machine.States, NewState(name, opts...))
	return b
}

// Event declares an event from the given source states to a single destination.
func (b *Builder) Event(name string, from []string, to string, opts ...EventOption) *Builder {
	b.machine.Events = append(b.machine.Events, NewEvent(name, from, to, opts...))
	return b
}

// Observer sets the observer of the machine being built.
func (b *Builder) Observer(o Observer) *Builder {
	b.machine.observer = o
	return b
}

// Build validates the declaration and returns the ready machine.
// On failure the unbuilt machine is returned alongside the error.
func (b *Builder) Build() (*Machine, error) {
	if err := b.machine.Build(); err != nil {
		return b.machine, err
	}
	return b.machine, nil
}

// MustBuild works like Build but panics if validation fails.
func (b *Builder) MustBuild() *Machine {
	m, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to build state machine: %v", err))
	}
	return m
}
