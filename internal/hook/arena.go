package hook

import "fmt"

// Arena is the ordered, growable store of hook slots.
//
// Slots are created lazily on first visit and mutated in place thereafter.
// The cursor is reset to zero at the start of every pass; each Visit call
// advances it by one. The arena never shrinks.
//
// Arena is not safe for concurrent use. The engine's single-writer loop is
// the only mutator by construction.
type Arena struct {
	slots []Slot
	pos   int
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Begin resets the position cursor for a new pass. Existing slot values
// are preserved.
func (a *Arena) Begin() {
	a.pos = 0
}

// Visit returns the slot at the current cursor position, creating it with
// init on first visit, and advances the cursor. The second return value
// reports whether this visit created the slot.
//
// Panics if the slot at this position was created with a different kind:
// that is a call-order violation by the program, which the engine cannot
// correct (see the package doc).
func (a *Arena) Visit(kind Kind, init func() Slot) (Slot, bool) {
	pos := a.pos
	a.pos++

	if pos < len(a.slots) {
		s := a.slots[pos]
		if s.Kind() != kind {
			panic(fmt.Sprintf(
				"hook: slot %d holds a %s hook but a %s hook was requested; hook calls must occur in the same order on every pass",
				pos, s.Kind(), kind,
			))
		}
		return s, false
	}

	s := init()
	a.slots = append(a.slots, s)
	return s, true
}

// Len returns the number of slots created so far.
func (a *Arena) Len() int {
	return len(a.slots)
}

// Slots returns the underlying slot sequence in position order.
// Callers must not reorder or truncate it.
func (a *Arena) Slots() []Slot {
	return a.slots
}

// ResetOutputs discards every output entry in place: the slot keeps its
// position but loses its namespace, key and value, drops out of
// aggregation until revisited, and has its enabled gate restored to the
// default. State, reducer, ref, effect and input slots are untouched.
func (a *Arena) ResetOutputs() {
	for _, s := range a.slots {
		out, ok := s.(*OutputSlot)
		if !ok {
			continue
		}
		out.Namespace = ""
		out.Key = ""
		out.Value = nil
		out.Enabled = true
		out.Live = false
	}
}
