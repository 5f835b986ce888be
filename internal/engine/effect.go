package engine

import "github.com/quiesce-dev/quiesce/internal/hook"

// runEffects executes pending effects after the fixpoint.
//
// Effects run in arena position order. A slot is pending when HasRun is
// false, which the accessor arranges on creation and whenever the
// dependency list changes. The stored cleanup from the previous execution
// runs first, then the callback; a non-nil callback result becomes the new
// cleanup.
func (e *Engine) runEffects() {
	for _, s := range e.arena.Slots() {
		slot, ok := s.(*hook.EffectSlot)
		if !ok || slot.HasRun {
			continue
		}
		// Marked before the callback: an effect that writes state restarts
		// the loop synchronously, and the nested runEffects must not see
		// this slot as still pending.
		slot.HasRun = true
		if slot.Cleanup != nil {
			slot.Cleanup()
		}
		slot.Cleanup = slot.Run()
	}
}

// Cleanup invokes every effect slot's stored cleanup regardless of
// dependency state, in position order, and clears them. Intended for
// instance teardown.
func (e *Engine) Cleanup() {
	for _, s := range e.arena.Slots() {
		slot, ok := s.(*hook.EffectSlot)
		if !ok || slot.Cleanup == nil {
			continue
		}
		slot.Cleanup()
		slot.Cleanup = nil
	}
}
