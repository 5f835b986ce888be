package engine

import (
	"slices"

	"github.com/quiesce-dev/quiesce/internal/hook"
)

// Caps is the capability set handed to the program on every pass: the
// base hook accessors plus Invoke for registered extensions.
//
// Every accessor advances the arena cursor by exactly one position. The
// program must therefore perform the same accessor calls in the same
// order on every pass (call-order contract, package hook).
type Caps struct {
	engine *Engine
}

// Ref is a mutable cell returned by Caps.Ref. Writing Current is visible
// to later passes but never triggers a re-run.
type Ref = hook.RefSlot

// State returns the slot's current value and a setter. The initial value
// is used on the first visit only.
func (c *Caps) State(initial any) (any, *Setter) {
	s, _ := c.engine.arena.Visit(hook.KindState, func() hook.Slot {
		return &hook.StateSlot{Value: initial}
	})
	slot := s.(*hook.StateSlot)
	return slot.Value, &Setter{engine: c.engine, slot: slot}
}

// Reducer returns the slot's current value and a dispatcher that advances
// it through reduce. The initial value is used on the first visit only;
// reduce is refreshed on every visit.
func (c *Caps) Reducer(reduce func(state, action any) any, initial any) (any, *Dispatcher) {
	s, _ := c.engine.arena.Visit(hook.KindReducer, func() hook.Slot {
		return &hook.ReducerSlot{Value: initial, Reduce: reduce}
	})
	slot := s.(*hook.ReducerSlot)
	slot.Reduce = reduce
	return slot.Value, &Dispatcher{engine: c.engine, slot: slot}
}

// Ref returns a mutable cell initialized on first visit. Mutating the
// cell never queues an update or restarts the loop.
func (c *Caps) Ref(initial any) *Ref {
	s, _ := c.engine.arena.Visit(hook.KindRef, func() hook.Slot {
		return &hook.RefSlot{Current: initial}
	})
	return s.(*hook.RefSlot)
}

// Input returns the latest externally supplied input value, refreshed on
// every pass. Returns nil until SetInput has been called.
func (c *Caps) Input() any {
	s, _ := c.engine.arena.Visit(hook.KindInput, func() hook.Slot {
		return &hook.InputSlot{}
	})
	slot := s.(*hook.InputSlot)
	slot.Value = c.engine.input
	return slot.Value
}

// Effect registers a deferred side effect. The callback runs after the
// fixpoint when the dependency list changed since the previous pass; a
// non-nil return value is stored as the cleanup and invoked before the
// next execution.
//
// A nil deps list means "always run". A non-nil list is compared by
// length, then element-wise reference/primitive identity. A non-nil empty
// list therefore means "run once".
func (c *Caps) Effect(fn func() func(), deps []any) {
	s, created := c.engine.arena.Visit(hook.KindEffect, func() hook.Slot {
		return &hook.EffectSlot{Run: fn, Deps: slices.Clone(deps)}
	})
	if created {
		return
	}

	slot := s.(*hook.EffectSlot)
	slot.Run = fn
	if hook.DepsChanged(slot.Deps, deps) {
		slot.Deps = slices.Clone(deps)
		slot.HasRun = false
	}
}

// Output records an overwrite-mode output entry and returns its handle.
// Namespace, key and value are rewritten unconditionally on every visit.
func (c *Caps) Output(namespace, key string, value any) *OutputHandle {
	return c.outputEntry(namespace, key, value, hook.ModeOverwrite)
}

// AppendOutput records an append-mode output entry and returns its
// handle. Sequential append entries sharing a namespace/key accumulate
// into an ordered sequence in the aggregated document.
func (c *Caps) AppendOutput(namespace, key string, value any) *OutputHandle {
	return c.outputEntry(namespace, key, value, hook.ModeAppend)
}

func (c *Caps) outputEntry(namespace, key string, value any, mode hook.OutputMode) *OutputHandle {
	s, _ := c.engine.arena.Visit(hook.KindOutput, func() hook.Slot {
		return &hook.OutputSlot{Enabled: true}
	})
	slot := s.(*hook.OutputSlot)
	slot.Namespace = namespace
	slot.Key = key
	slot.Value = value
	slot.Mode = mode
	slot.Live = true
	return &OutputHandle{slot: slot}
}

// Setter writes a state slot.
type Setter struct {
	engine *Engine
	slot   *hook.StateSlot
}

// Set writes a value. Writes of an identical value are dropped. During a
// pass the write is queued; outside a pass it applies immediately and
// synchronously restarts the loop, returning that run's error.
func (s *Setter) Set(v any) error {
	return s.engine.commit(&s.slot.Value, v)
}

// Update writes the result of fn applied to the value visible now. Two
// same-pass updates to one slot each see the pre-pass value: queued
// updates capture their computed value at enqueue time and do not compose
// as a reduction over intermediate values.
func (s *Setter) Update(fn func(prev any) any) error {
	return s.engine.commit(&s.slot.Value, fn(s.slot.Value))
}

// Dispatcher advances a reducer slot.
type Dispatcher struct {
	engine *Engine
	slot   *hook.ReducerSlot
}

// Dispatch computes reduce(current, action) against the value visible now
// and routes it like Setter.Set.
func (d *Dispatcher) Dispatch(action any) error {
	return d.engine.commit(&d.slot.Value, d.slot.Reduce(d.slot.Value, action))
}

// OutputHandle gates one output entry.
type OutputHandle struct {
	slot *hook.OutputSlot
}

// Enable includes the entry in aggregation. Entries start enabled.
func (h *OutputHandle) Enable() { h.slot.Enabled = true }

// Disable omits the entry from aggregation until re-enabled. The gate
// persists across passes.
func (h *OutputHandle) Disable() { h.slot.Enabled = false }

// Enabled reports the entry's current gate state.
func (h *OutputHandle) Enabled() bool { return h.slot.Enabled }
