package statemachine

import (
	"context"
	"slices"

	"github.com/google/uuid"
)

// Machine holds a state machine definition and its runtime status.
//
// The exported fields are plain definition data and are not checked until Build.
// Build takes a snapshot of them; changes made afterwards have no effect until
// the next Build call.
//
// A Machine is not safe for concurrent use. Callers that fire events from several
// goroutines must serialize Fire, Build and Reset themselves.
type Machine struct {
	Name         string
	InitialState string // empty means not declared
	FinalState   string // empty means not declared
	States       []State
	Events       []Event

	observer Observer
	newID    func() string

	status  Status
	current string
	def     *compiled
	firing  bool
}

// compiled is the immutable snapshot produced by a successful Build.
type compiled struct {
	initial string
	final   string
	states  []State
	events  []Event
	stateAt map[string]int
	eventAt map[string]int
}

func (c *compiled) statusOf(current string) Status {
	if c.final != "" && current == c.final {
		return StatusFinished
	}
	return StatusActive
}

// resolved is the outcome of a feasibility check: the event to fire and its endpoints.
type resolved struct {
	event *Event
	from  *State
	to    *State
}

// New creates an unbuilt machine from the given options. No validation happens here.
func New(name string, opts ...Option) *Machine {
	m := &Machine{Name: name}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetObserver replaces the observer notified about builds and fire attempts.
// A nil observer disables notifications.
func (m *Machine) SetObserver(o Observer) {
	m.observer = o
}

// Build validates the definition and, on success, places the machine in its
// initial state. Checks run in a fixed order and stop at the first violation.
// On failure the machine is left unbuilt, even if a previous Build succeeded.
func (m *Machine) Build() error {
	if m.firing {
		return ErrFireInProgress
	}

	def, err := m.compile()
	if err != nil {
		m.status = StatusUnbuilt
		m.current = ""
		m.def = nil
		m.notifyBuild(err)
		return err
	}

	m.def = def
	m.current = def.initial
	m.status = def.statusOf(m.current)
	m.notifyBuild(nil)
	return nil
}

func (m *Machine) compile() (*compiled, error) {
	if m.InitialState == "" {
		return nil, ErrMissingInitialState
	}
	if len(m.States) == 0 {
		return nil, ErrNoStates
	}

	stateCount := make(map[string]int, len(m.States))
	for _, s := range m.States {
		stateCount[s.Name]++
	}
	// count != 1 rather than > 1: a name must map to exactly one declaration
	for _, s := range m.States {
		if stateCount[s.Name] != 1 {
			return nil, &ErrDuplicateState{Name: s.Name}
		}
	}

	if len(m.Events) == 0 {
		return nil, ErrNoEvents
	}

	eventCount := make(map[string]int, len(m.Events))
	for _, e := range m.Events {
		eventCount[e.Name]++
	}
	for _, e := range m.Events {
		if eventCount[e.Name] != 1 {
			return nil, &ErrDuplicateEvent{Name: e.Name}
		}
		if len(e.From) == 0 {
			return nil, &ErrEmptyFromStates{Event: e.Name}
		}
		for _, from := range e.From {
			if _, ok := stateCount[from]; !ok {
				return nil, &ErrUndefinedState{Name: from, Event: e.Name}
			}
		}
		if _, ok := stateCount[e.To]; !ok {
			return nil, &ErrUndefinedState{Name: e.To, Event: e.Name}
		}
	}

	if m.FinalState != "" {
		reachable := slices.ContainsFunc(m.Events, func(e Event) bool {
			return e.To == m.FinalState
		})
		if !reachable {
			return nil, ErrUnreachableFinalState
		}
	}

	def := &compiled{
		initial: m.InitialState,
		final:   m.FinalState,
		states:  slices.Clone(m.States),
		events:  make([]Event, len(m.Events)),
		stateAt: make(map[string]int, len(m.States)),
		eventAt: make(map[string]int, len(m.Events)),
	}
	for i, s := range def.states {
		def.stateAt[s.Name] = i
	}
	for i, e := range m.Events {
		e.From = slices.Clone(e.From)
		def.events[i] = e
		def.eventAt[e.Name] = i
	}
	return def, nil
}

// Status reports whether the machine is unbuilt, active or finished.
func (m *Machine) Status() Status {
	return m.status
}

// IsReady reports whether Build has succeeded.
func (m *Machine) IsReady() bool {
	return m.status != StatusUnbuilt
}

// CurrentState returns the name of the current state, or an empty string if the
// machine has not been built.
func (m *Machine) CurrentState() string {
	return m.current
}

// IsFinished reports whether a final state is declared and the machine is in it.
// A machine without a final state never finishes.
func (m *Machine) IsFinished() bool {
	return m.status == StatusFinished
}

// CanFire reports whether Fire(event) would start a transition. It never mutates
// the machine and never runs hooks.
func (m *Machine) CanFire(event string) bool {
	_, err := m.plan(event)
	return err == nil
}

// AvailableEvents returns the names of all events that can be fired from the
// current state, in declaration order.
func (m *Machine) AvailableEvents() []string {
	if m.status != StatusActive {
		return nil
	}
	var names []string
	for _, e := range m.def.events {
		if slices.Contains(e.From, m.current) {
			names = append(names, e.Name)
		}
	}
	return names
}

// Fire runs the transition registered under event. Hooks are invoked in the order
// Before, Leave (current state), Enter (destination state), After, and the state
// changes only after all of them succeed. A hook that calls Fire on the same
// machine gets ErrFireInProgress.
func (m *Machine) Fire(ctx context.Context, event string) error {
	t := Transition{
		ID:      m.nextID(),
		Machine: m.Name,
		Event:   event,
		From:    m.current,
	}

	r, err := m.plan(event)
	if err != nil {
		m.notifyTransition(ctx, t, err)
		return err
	}

	t.To = r.to.Name
	if err := m.apply(ctx, t, r); err != nil {
		m.notifyTransition(ctx, t, err)
		return err
	}

	m.notifyTransition(ctx, t, nil)
	return nil
}

// Reset returns a built machine to its initial state without running hooks.
func (m *Machine) Reset() error {
	if m.firing {
		return ErrFireInProgress
	}
	if m.status == StatusUnbuilt {
		return ErrNotReady
	}
	m.current = m.def.initial
	m.status = m.def.statusOf(m.current)
	return nil
}

// plan resolves the event against the current snapshot without side effects.
func (m *Machine) plan(event string) (resolved, error) {
	if m.firing {
		return resolved{}, ErrFireInProgress
	}

	switch m.status {
	case StatusUnbuilt:
		return resolved{}, ErrNotReady
	case StatusFinished:
		return resolved{}, ErrAlreadyFinished
	}

	i, ok := m.def.eventAt[event]
	if !ok || !slices.Contains(m.def.events[i].From, m.current) {
		return resolved{}, NewErrInvalidTransition(event, m.current)
	}

	e := &m.def.events[i]
	return resolved{
		event: e,
		from:  &m.def.states[m.def.stateAt[m.current]],
		to:    &m.def.states[m.def.stateAt[e.To]],
	}, nil
}

// apply runs the hooks of a planned transition and commits the new state.
// The machine refuses Fire, Reset and Build until apply returns, including when
// a hook panics.
func (m *Machine) apply(ctx context.Context, t Transition, r resolved) error {
	m.firing = true
	defer func() { m.firing = false }()

	steps := [...]struct {
		phase Phase
		hook  Hook
	}{
		{PhaseBefore, r.event.Before},
		{PhaseLeave, r.from.Leave},
		{PhaseEnter, r.to.Enter},
		{PhaseAfter, r.event.After},
	}

	for _, s := range steps {
		if s.hook == nil {
			continue
		}
		t.Phase = s.phase
		if err := s.hook.Run(ctx, t); err != nil {
			return &ErrHookFailed{Phase: s.phase, Event: t.Event, Err: err}
		}
	}

	m.current = r.to.Name
	m.status = m.def.statusOf(m.current)
	return nil
}

func (m *Machine) nextID() string {
	if m.newID != nil {
		return m.newID()
	}
	return uuid.NewString()
}

func (m *Machine) notifyBuild(err error) {
	if m.observer != nil {
		m.observer.OnBuild(m.Name, err)
	}
}

func (m *Machine) notifyTransition(ctx context.Context, t Transition, err error) {
	if m.observer == nil {
		return
	}
	if hf, ok := err.(*ErrHookFailed); ok {
		t.Phase = hf.Phase
	}
	m.observer.OnTransition(ctx, t, err)
}
