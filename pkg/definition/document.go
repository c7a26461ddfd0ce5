package definition

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fsmlite/pkg/statemachine"
)

// Document is the serialized form of a state machine definition. Hooks are
// referenced by name and resolved through a Registry.
type Document struct {
	Name    string     `yaml:"name" json:"name"`
	Initial string     `yaml:"initial" json:"initial"`
	Final   string     `yaml:"final,omitempty" json:"final,omitempty"`
	States  []StateDef `yaml:"states" json:"states"`
	Events  []EventDef `yaml:"events" json:"events"`
}

// StateDef declares a state and the names of its hooks.
type StateDef struct {
	Name  string `yaml:"name" json:"name"`
	Enter string `yaml:"enter,omitempty" json:"enter,omitempty"`
	Leave string `yaml:"leave,omitempty" json:"leave,omitempty"`
}

// EventDef declares an event and the names of its hooks.
type EventDef struct {
	Name   string `yaml:"name" json:"name"`
	From   Names  `yaml:"from" json:"from"`
	To     string `yaml:"to" json:"to"`
	Before string `yaml:"before,omitempty" json:"before,omitempty"`
	After  string `yaml:"after,omitempty" json:"after,omitempty"`
}

// Names is a list of state names that also accepts a single scalar,
// so `from: draft` and `from: [draft]` are equivalent.
type Names []string

func (n *Names) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*n = Names{s}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*n = list
		return nil
	default:
		return fmt.Errorf("line %d: expected a state name or a list of state names", value.Line)
	}
}

func (n *Names) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Names{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*n = list
	return nil
}

// Machine converts the document into an unbuilt state machine, resolving hook
// names through reg. Only hook references are checked here; the structure of
// the definition is validated by Machine.Build.
func (d *Document) Machine(reg *Registry, opts ...statemachine.Option) (*statemachine.Machine, error) {
	base := []statemachine.Option{
		statemachine.WithInitialState(d.Initial),
		statemachine.WithFinalState(d.Final),
	}
	m := statemachine.New(d.Name, append(base, opts...)...)

	for _, s := range d.States {
		enter, err := resolve(reg, s.Enter, "state "+s.Name)
		if err != nil {
			return nil, err
		}
		leave, err := resolve(reg, s.Leave, "state "+s.Name)
		if err != nil {
			return nil, err
		}
		m.States = append(m.States, statemachine.State{Name: s.Name, Enter: enter, Leave: leave})
	}

	for _, e := range d.Events {
		before, err := resolve(reg, e.Before, "event "+e.Name)
		if err != nil {
			return nil, err
		}
		after, err := resolve(reg, e.After, "event "+e.Name)
		if err != nil {
			return nil, err
		}
		m.Events = append(m.Events, statemachine.Event{
			Name:   e.Name,
			From:   []string(e.From),
			To:     e.To,
			Before: before,
			After:  after,
		})
	}

	return m, nil
}

func resolve(reg *Registry, name, owner string) (statemachine.Hook, error) {
	if name == "" {
		return nil, nil
	}
	h, ok := reg.Lookup(name)
	if !ok {
		return nil, &ErrUnknownHook{Name: name, Owner: owner}
	}
	return h, nil
}
