package statemachine_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/dmitrymomot/fsmlite/pkg/statemachine"
)

func constantID() string { return "bench" }

func newCycle(b *testing.B, opts ...statemachine.EventOption) *statemachine.Machine {
	b.Helper()
	return statemachine.NewBuilder("cycle", statemachine.WithIDGenerator(constantID)).
		Initial("idle").
		State("idle").
		State("running").
		State("stopped").
		Event("start", []string{"idle", "stopped"}, "running", opts...).
		Event("stop", []string{"running"}, "stopped", opts...).
		MustBuild()
}

func BenchmarkMachine_Fire(b *testing.B) {
	ctx := context.Background()
	m := newCycle(b)

	b.ResetTimer()

	for b.Loop() {
		_ = m.Fire(ctx, "start")
		_ = m.Fire(ctx, "stop")
	}
}

func BenchmarkMachine_FireWithHooks(b *testing.B) {
	ctx := context.Background()
	noop := statemachine.HookFunc(func(context.Context, statemachine.Transition) error { return nil })
	m := newCycle(b, statemachine.WithBefore(noop), statemachine.WithAfter(noop))

	b.ResetTimer()

	for b.Loop() {
		_ = m.Fire(ctx, "start")
		_ = m.Fire(ctx, "stop")
	}
}

func BenchmarkMachine_FireDefaultIDs(b *testing.B) {
	ctx := context.Background()
	m := statemachine.NewBuilder("uuid").
		Initial("idle").
		State("idle").
		Event("tick", []string{"idle"}, "idle").
		MustBuild()

	b.ResetTimer()

	for b.Loop() {
		_ = m.Fire(ctx, "tick")
	}
}

func BenchmarkMachine_CanFire(b *testing.B) {
	m := newCycle(b)

	b.ResetTimer()

	for b.Loop() {
		_ = m.CanFire("start")
		_ = m.CanFire("stop")
		_ = m.CanFire("pause")
	}
}

func BenchmarkMachine_Build(b *testing.B) {
	for _, size := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("states=%d", size), func(b *testing.B) {
			m := &statemachine.Machine{Name: "large", InitialState: "s0"}
			for i := range size {
				m.States = append(m.States, statemachine.State{Name: fmt.Sprintf("s%d", i)})
				m.Events = append(m.Events, statemachine.Event{
					Name: fmt.Sprintf("e%d", i),
					From: []string{fmt.Sprintf("s%d", i)},
					To:   fmt.Sprintf("s%d", (i+1)%size),
				})
			}

			b.ResetTimer()

			for b.Loop() {
				if err := m.Build(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
