// Package definition loads state machine definitions from YAML or JSON files.
//
// A document names states and events the same way the statemachine package
// does, but hooks are referenced by name. Names are resolved through a
// Registry when the document is converted into a machine:
//
//	reg := definition.NewRegistry()
//	reg.MustRegister("audit", statemachine.HookFunc(auditTransition))
//
//	m, err := definition.LoadFile(ctx, "order.yaml", reg)
//	if err != nil {
//		return err
//	}
//	if err := m.Build(); err != nil {
//		return err
//	}
//
// The `from` field of an event accepts a single state name or a list. Unknown
// fields are rejected by both parsers. LoadFile does not build the machine, so
// structural errors such as duplicate states are reported by Machine.Build.
package definition
