package statemachine

// Option configures a machine during construction.
type Option func(*Machine)

// StateOption configures a single state.
type StateOption func(*State)

// EventOption configures a single event.
type EventOption func(*Event)

func WithInitialState(name string) Option {
	return func(m *Machine) { m.InitialState = name }
}

func WithFinalState(name string) Option {
	return func(m *Machine) { m.FinalState = name }
}

// WithStates appends states in the given order.
func WithStates(states ...State) Option {
	return func(m *Machine) { m.States = append(m.States, states...) }
}

// WithEvents appends events in the given order.
func WithEvents(events ...Event) Option {
	return func(m *Machine) { m.Events = append(m.Events, events...) }
}

// WithObserver sets the observer notified about builds and fire attempts.
func WithObserver(o Observer) Option {
	return func(m *Machine) { m.observer = o }
}

// WithIDGenerator replaces the UUID generator used for Transition.ID.
// Nil generators are ignored.
func WithIDGenerator(fn func() string) Option {
	return func(m *Machine) {
		if fn != nil {
			m.newID = fn
		}
	}
}

// NewState creates a state with the given name and hooks.
func NewState(name string, opts ...StateOption) State {
	s := State{Name: name}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// NewEvent creates an event moving from any of the source states to the destination.
func NewEvent(name string, from []string, to string, opts ...EventOption) Event {
	e := Event{Name: name, From: from, To: to}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// WithEnter sets the hook run when the state is entered. Nil hooks are ignored.
func WithEnter(h Hook) StateOption {
	return func(s *State) {
		if h != nil {
			s.Enter = h
		}
	}
}

// WithLeave sets the hook run when the state is left. Nil hooks are ignored.
func WithLeave(h Hook) StateOption {
	return func(s *State) {
		if h != nil {
			s.Leave = h
		}
	}
}

// WithBefore sets the hook run before any state hook of the event.
func WithBefore(h Hook) EventOption {
	return func(e *Event) {
		if h != nil {
			e.Before = h
		}
	}
}

// WithAfter sets the hook run after all state hooks of the event.
func WithAfter(h Hook) EventOption {
	return func(e *Event) {
		if h != nil {
			e.After = h
		}
	}
}
