// Package statemachine provides an embeddable finite-state-machine engine with
// declarative, centrally validated transitions.
//
// A machine is described by plain data: named States, named Events moving from
// one or more source states to a single destination, an initial state and an
// optional final state. Nothing is checked while the definition is assembled;
// Build validates it once and puts the machine in its initial state.
//
// # Lifecycle
//
// Every Machine is in one of three statuses:
//  1. StatusUnbuilt: Build has not succeeded; Fire returns ErrNotReady
//  2. StatusActive: events may be fired
//  3. StatusFinished: the final state was reached; Fire returns ErrAlreadyFinished
//
// A machine without a final state never finishes.
//
// # Usage
//
//	m, err := statemachine.NewBuilder("order").
//	    Initial("draft").
//	    Final("done").
//	    State("draft").
//	    State("review", statemachine.WithEnter(notifyReviewers)).
//	    State("done").
//	    Event("submit", []string{"draft"}, "review").
//	    Event("approve", []string{"review"}, "done").
//	    Build()
//	if err != nil {
//	    // the definition is invalid
//	}
//
//	_ = m.Fire(ctx, "submit")
//
// The same definition can be written as a struct literal or with New and
// functional options; all three produce a Machine that must be built.
//
// # Hooks
//
// States carry optional Enter and Leave hooks, events carry optional Before and
// After hooks. A successful Fire runs them in the order
//
//	event.Before → current.Leave → destination.Enter → event.After
//
// and then moves to the destination. Each hook receives a Transition describing
// the event, both endpoints and the phase. Call adapts a func() for hooks that
// need no context. A hook returning an error aborts the transition: later hooks
// are skipped and the machine stays where it was.
//
// # Error Handling
//
// Build errors unwrap to ErrValidation and Fire errors unwrap to ErrTransition.
// Specific failures can be inspected with helper predicates:
//
//	if statemachine.IsDuplicateStateError(err) { /* ... */ }
//	if statemachine.IsInvalidTransitionError(err) { /* ... */ }
//	if errors.Is(err, statemachine.ErrAlreadyFinished) { /* ... */ }
//
// # Observers
//
// An Observer is notified after every Build and Fire. LoggingObserver writes
// slog records, Metrics counts outcomes, and NewCompositeObserver combines them.
//
// # Concurrency
//
// Machine has no internal locking. Fire, Build and Reset mutate the machine and
// must be serialized by the caller. Hooks must not drive their own machine:
// calling Fire, Reset or Build from a hook returns ErrFireInProgress.
package statemachine
