package engine

import (
	"log/slog"
	"sort"

	"github.com/quiesce-dev/quiesce/internal/hook"
	"github.com/quiesce-dev/quiesce/internal/output"
	"github.com/quiesce-dev/quiesce/internal/snapshot"
)

// DefaultMaxPasses is the default stabilization ceiling. A program that
// still queues updates after this many passes is assumed to diverge.
const DefaultMaxPasses = 1000

// Program is the user-supplied function driven to a fixpoint. It receives
// the capability set on every pass and must perform the same capability
// calls in the same order on every pass (see package hook).
type Program func(*Caps)

// Engine drives a Program to a fixpoint over a positional hook arena.
//
// Engine is not safe for concurrent use: all public calls must come from
// a single goroutine. Correctness rests on the call-order contract and on
// the executing guard that routes writes to either the pending queue or
// an immediate synchronous re-run.
type Engine struct {
	arena    *hook.Arena
	program  Program
	input    any
	pending  *updateQueue
	recorder *snapshot.Recorder
	caps     *Caps

	outputFn output.Callback

	exts    map[string]Extension
	extInit map[string]bool

	tokens    TokenGenerator
	maxPasses int

	// executing is true while the program is being invoked; writes made
	// during that window are queued instead of applied.
	executing bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxPasses sets the stabilization ceiling.
//
// Default: 1000 passes (DefaultMaxPasses).
// Use a small value in tests that exercise the ceiling.
func WithMaxPasses(n int) Option {
	return func(e *Engine) {
		e.maxPasses = n
	}
}

// WithTokenGenerator sets the run-token generator.
// Tests use FixedGenerator for deterministic snapshot tags.
func WithTokenGenerator(g TokenGenerator) Option {
	return func(e *Engine) {
		e.tokens = g
	}
}

// New creates an idle engine with an empty arena. The first run happens
// when SetProgram is called.
func New(opts ...Option) *Engine {
	e := &Engine{
		arena:     hook.NewArena(),
		pending:   newUpdateQueue(),
		recorder:  snapshot.NewRecorder(),
		exts:      make(map[string]Extension),
		extInit:   make(map[string]bool),
		tokens:    UUIDv7Generator{},
		maxPasses: DefaultMaxPasses,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.caps = &Caps{engine: e}
	return e
}

// SetProgram installs the program and triggers the first run.
//
// Installing a new program over an old one keeps the existing arena: the
// new program inherits the slots by position. Passing nil clears the
// program without running.
func (e *Engine) SetProgram(p Program) error {
	e.program = p
	return e.run()
}

// Rerun forces a full stabilization run with slot values preserved.
func (e *Engine) Rerun() error {
	return e.run()
}

// SetInput supplies new input data. All output entry slots are discarded
// in place before the run so append sequences cannot carry stale values
// across input cycles; state, reducer, ref, effect and input slots keep
// their values.
func (e *Engine) SetInput(v any) error {
	e.input = v
	e.arena.ResetOutputs()
	return e.run()
}

// OnOutput registers the output callback. It receives the aggregated
// document exactly once per completed stabilization.
func (e *Engine) OnOutput(fn output.Callback) {
	e.outputFn = fn
}

// Snapshots returns the full snapshot log, one snapshot per executed pass.
func (e *Engine) Snapshots() []snapshot.Snapshot {
	return e.recorder.All()
}

// Latest returns the most recent snapshot, or false if none exist.
func (e *Engine) Latest() (snapshot.Snapshot, bool) {
	return e.recorder.Latest()
}

// ClearSnapshots discards the snapshot log. Live slots are unaffected.
func (e *Engine) ClearSnapshots() {
	e.recorder.Clear()
}

// MaxPasses returns the configured stabilization ceiling.
func (e *Engine) MaxPasses() int {
	return e.maxPasses
}

// Extensions returns the registered extension names in sorted order.
// Used for introspection and diagnostics.
func (e *Engine) Extensions() []string {
	names := make([]string, 0, len(e.exts))
	for name := range e.exts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// run executes the stabilization loop to completion.
//
// Each pass gets a fresh pending queue, so a re-entrant restart can never
// observe updates queued by an outer context. Returns *StabilizationError
// when the ceiling is reached before the fixpoint; the arena is left as of
// the last applied update batch.
func (e *Engine) run() error {
	if e.program == nil {
		return nil
	}

	token := e.tokens.Generate()
	slog.Debug("stabilization started", "run", token)

	for pass := 0; pass < e.maxPasses; pass++ {
		e.executePass()
		e.recorder.Record(token, pass, e.arena.Slots())

		if e.pending.Len() == 0 {
			slog.Debug("stabilized",
				"run", token,
				"passes", pass+1,
				"slots", e.arena.Len(),
			)
			e.runEffects()
			if e.outputFn != nil {
				e.outputFn(output.Collect(e.arena.Slots()))
			}
			return nil
		}

		e.pending.Drain()
	}

	err := &StabilizationError{RunToken: token, Passes: e.maxPasses, Limit: e.maxPasses}
	slog.Error("stabilization failed",
		"run", token,
		"limit", e.maxPasses,
		"error", err,
	)
	return err
}

// executePass invokes the program for one pass with the executing guard
// held.
func (e *Engine) executePass() {
	e.arena.Begin()
	e.pending = newUpdateQueue()
	e.executing = true
	defer func() { e.executing = false }()
	e.program(e.caps)
}

// commit routes a write to a state or reducer slot.
//
// Identical values (reference/primitive identity) are dropped entirely: an
// idempotent write never causes another pass. During an active pass the
// write is queued with the value captured now, not re-evaluated at apply
// time. Outside a pass the slot is mutated immediately and the loop
// restarts synchronously from pass zero with slot values preserved.
func (e *Engine) commit(target *any, next any) error {
	if hook.Identical(*target, next) {
		return nil
	}
	if e.executing {
		e.pending.Push(func() { *target = next })
		return nil
	}
	*target = next
	return e.run()
}
