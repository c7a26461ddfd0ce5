package logger

import (
	"fmt"
	"log/slog"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Machine records the state machine name under the key "machine".
func Machine(name string) slog.Attr {
	return slog.String("machine", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// State records a state name under the key "state".
func State(name string) slog.Attr {
	return slog.String("state", name)
}

// From records the source state of a transition under the key "from".
func From(name string) slog.Attr {
	return slog.String("from", name)
}

// To records the destination state of a transition under the key "to".
// If name is empty, it returns an empty Attr.
func To(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("to", name)
}

// Phase records the hook phase under the key "phase".
func Phase(p fmt.Stringer) slog.Attr {
	return slog.String("phase", p.String())
}

// TransitionID records the transition identifier under the key "transition_id".
// If id is empty, it returns an empty Attr.
func TransitionID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("transition_id", id)
}
