package hook

// Kind identifies the variant stored in a slot.
type Kind int

const (
	// KindState is a plain value slot with a setter.
	KindState Kind = iota + 1
	// KindReducer is a value slot advanced by a reducer function.
	KindReducer
	// KindRef is a mutable cell whose mutation never triggers a re-run.
	KindRef
	// KindEffect is a deferred side effect with dependency tracking.
	KindEffect
	// KindInput mirrors the externally supplied input value.
	KindInput
	// KindOutput is a namespaced output entry folded by the aggregator.
	KindOutput
)

// String returns the lowercase kind name used in logs and panics.
func (k Kind) String() string {
	switch k {
	case KindState:
		return "state"
	case KindReducer:
		return "reducer"
	case KindRef:
		return "ref"
	case KindEffect:
		return "effect"
	case KindInput:
		return "input"
	case KindOutput:
		return "output"
	default:
		return "unknown"
	}
}

// Slot is the sealed interface over slot variants. Only the six concrete
// slot types in this package implement it.
type Slot interface {
	Kind() Kind
}

// StateSlot holds a plain value written through a setter.
type StateSlot struct {
	Value any
}

// Kind implements Slot.
func (*StateSlot) Kind() Kind { return KindState }

// ReducerSlot holds a value advanced by dispatching actions through Reduce.
type ReducerSlot struct {
	Value  any
	Reduce func(state, action any) any
}

// Kind implements Slot.
func (*ReducerSlot) Kind() Kind { return KindReducer }

// RefSlot is a mutable cell. Writing Current is visible to later passes
// but never queues an update or restarts the loop.
type RefSlot struct {
	Current any
}

// Kind implements Slot.
func (*RefSlot) Kind() Kind { return KindRef }

// EffectSlot holds a deferred side effect.
//
// Deps is the dependency list recorded on the last visit. A nil Deps means
// no list was supplied, which the accessor treats as "always changed".
// HasRun is cleared whenever the dependencies change; the effect runner
// executes slots with HasRun false and sets it back to true.
type EffectSlot struct {
	Run     func() func()
	Deps    []any
	Cleanup func()
	HasRun  bool
}

// Kind implements Slot.
func (*EffectSlot) Kind() Kind { return KindEffect }

// InputSlot mirrors the engine's externally supplied input value. The
// accessor refreshes Value on every visit.
type InputSlot struct {
	Value any
}

// Kind implements Slot.
func (*InputSlot) Kind() Kind { return KindInput }

// OutputMode selects how the aggregator folds an output entry.
type OutputMode int

const (
	// ModeOverwrite replaces any prior value at the namespace/key.
	ModeOverwrite OutputMode = iota + 1
	// ModeAppend accumulates values into an ordered sequence.
	ModeAppend
)

// String returns the lowercase mode name.
func (m OutputMode) String() string {
	switch m {
	case ModeOverwrite:
		return "overwrite"
	case ModeAppend:
		return "append"
	default:
		return "unknown"
	}
}

// OutputSlot is a namespaced output entry.
//
// Namespace, Key and Value are overwritten unconditionally on every visit.
// Enabled persists across passes and is only touched through the entry's
// handle. Live distinguishes entries visited since the last input reset
// from ones left behind by a program whose shape changed with the input;
// the aggregator skips dead entries.
type OutputSlot struct {
	Namespace string
	Key       string
	Value     any
	Mode      OutputMode
	Enabled   bool
	Live      bool
}

// Kind implements Slot.
func (*OutputSlot) Kind() Kind { return KindOutput }
