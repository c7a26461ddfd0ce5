package statemachine

import (
	"context"
)

// Phase identifies the point of a transition at which a hook runs.
type Phase int

const (
	PhaseNone Phase = iota
	PhaseBefore
	PhaseLeave
	PhaseEnter
	PhaseAfter
)

func (p Phase) String() string {
	switch p {
	case PhaseBefore:
		return "before"
	case PhaseLeave:
		return "leave"
	case PhaseEnter:
		return "enter"
	case PhaseAfter:
		return "after"
	default:
		return "none"
	}
}

// Transition describes a single fire attempt. Every hook invoked during one
// Fire call receives the same ID, Event, From and To; only Phase differs.
type Transition struct {
	ID      string
	Machine string
	Event   string
	From    string
	To      string
	Phase   Phase
}

// Hook runs caller-supplied logic around a transition. Returning an error aborts
// the transition before the state changes.
type Hook interface {
	Run(ctx context.Context, t Transition) error
}

// HookFunc adapts an ordinary function to the Hook interface.
type HookFunc func(ctx context.Context, t Transition) error

// Run calls f. A nil HookFunc is a no-op.
func (f HookFunc) Run(ctx context.Context, t Transition) error {
	if f == nil {
		return nil
	}
	return f(ctx, t)
}

// Call adapts a zero-argument procedure to the Hook interface.
func Call(fn func()) Hook {
	return HookFunc(func(context.Context, Transition) error {
		fn()
		return nil
	})
}

// State is a named mode the machine can occupy.
type State struct {
	Name  string
	Enter Hook
	Leave Hook
}

// Event is a named transition from one or more source states to a single destination.
type Event struct {
	Name   string
	From   []string
	To     string
	Before Hook
	After  Hook
}

// Status is the lifecycle of the machine itself.
type Status int

const (
	// StatusUnbuilt means Build has not succeeded yet; nothing can be fired.
	StatusUnbuilt Status = iota
	// StatusActive means the machine is built and events may be fired.
	StatusActive
	// StatusFinished means the declared final state was reached. It is terminal.
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusFinished:
		return "finished"
	default:
		return "unbuilt"
	}
}
