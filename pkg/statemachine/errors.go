package statemachine

import (
	"errors"
	"fmt"
)

// Taxonomy roots. Every build-time error unwraps to ErrValidation and every
// fire-time error unwraps to ErrTransition.
var (
	ErrValidation = errors.New("statemachine: invalid definition")
	ErrTransition = errors.New("statemachine: transition refused")
)

var (
	ErrMissingInitialState   = fmt.Errorf("%w: initial state cannot be empty", ErrValidation)
	ErrNoStates              = fmt.Errorf("%w: no state is defined", ErrValidation)
	ErrNoEvents              = fmt.Errorf("%w: no event is defined", ErrValidation)
	ErrUnreachableFinalState = fmt.Errorf("%w: no event is connected to final state", ErrValidation)

	ErrNotReady        = fmt.Errorf("%w: state machine is not ready", ErrTransition)
	ErrAlreadyFinished = fmt.Errorf("%w: state machine is finished", ErrTransition)

	// ErrFireInProgress is returned when a hook calls Fire, Reset or Build on the
	// machine whose transition it is part of.
	ErrFireInProgress = fmt.Errorf("%w: another transition is in progress", ErrTransition)
)

// ErrDuplicateState indicates a state name declared more than once.
type ErrDuplicateState struct {
	Name string
}

func (e *ErrDuplicateState) Error() string {
	return fmt.Sprintf("duplicate state definition: '%s'", e.Name)
}

func (e *ErrDuplicateState) Unwrap() error { return ErrValidation }

// ErrDuplicateEvent indicates an event name declared more than once.
type ErrDuplicateEvent struct {
	Name string
}

func (e *ErrDuplicateEvent) Error() string {
	return fmt.Sprintf("duplicate event definition: '%s'", e.Name)
}

func (e *ErrDuplicateEvent) Unwrap() error { return ErrValidation }

// ErrEmptyFromStates indicates an event without any source state.
type ErrEmptyFromStates struct {
	Event string
}

func (e *ErrEmptyFromStates) Error() string {
	return fmt.Sprintf("no from state is defined in event '%s'", e.Event)
}

func (e *ErrEmptyFromStates) Unwrap() error { return ErrValidation }

// ErrUndefinedState indicates an event referencing a state that is not declared.
type ErrUndefinedState struct {
	Name  string
	Event string
}

func (e *ErrUndefinedState) Error() string {
	return fmt.Sprintf("state '%s' referenced by event '%s' is not defined", e.Name, e.Event)
}

func (e *ErrUndefinedState) Unwrap() error { return ErrValidation }

// ErrInvalidTransition indicates the event cannot be fired from the current state,
// either because no such event exists or because the state is not one of its sources.
type ErrInvalidTransition struct {
	Event string
	State string
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("event '%s' cannot be fired from state '%s'", e.Event, e.State)
}

func (e *ErrInvalidTransition) Unwrap() error { return ErrTransition }

// ErrHookFailed wraps an error returned by a hook. The transition was aborted
// and the machine stayed in its previous state.
type ErrHookFailed struct {
	Phase Phase
	Event string
	Err   error
}

func (e *ErrHookFailed) Error() string {
	return fmt.Sprintf("%s hook of event '%s' failed: %v", e.Phase, e.Event, e.Err)
}

func (e *ErrHookFailed) Unwrap() []error { return []error{ErrTransition, e.Err} }

func NewErrInvalidTransition(event, state string) *ErrInvalidTransition {
	return &ErrInvalidTransition{Event: event, State: state}
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsTransitionError(err error) bool {
	return errors.Is(err, ErrTransition)
}

func IsDuplicateStateError(err error) bool {
	var e *ErrDuplicateState
	return errors.As(err, &e)
}

func IsDuplicateEventError(err error) bool {
	var e *ErrDuplicateEvent
	return errors.As(err, &e)
}

func IsUndefinedStateError(err error) bool {
	var e *ErrUndefinedState
	return errors.As(err, &e)
}

func IsInvalidTransitionError(err error) bool {
	var e *ErrInvalidTransition
	return errors.As(err, &e)
}

func IsHookFailedError(err error) bool {
	var e *ErrHookFailed
	return errors.As(err, &e)
}
