package snapshot

import (
	"time"

	"github.com/quiesce-dev/quiesce/internal/hook"
)

// Record is the captured form of a single slot.
//
// Only the fields meaningful for the slot's kind are populated: Value for
// state, reducer, ref and input slots; Deps and HasRun for effects;
// Namespace, Key, Value, Enabled and Mode for output entries.
type Record struct {
	Position int
	Kind     hook.Kind

	Value any

	Deps   []any
	HasRun bool

	Namespace string
	Key       string
	Enabled   bool
	Mode      hook.OutputMode
}

// Snapshot is an immutable copy of the whole arena after one pass.
type Snapshot struct {
	RunToken string
	Pass     int
	At       time.Time
	Slots    []Record
}

// Recorder accumulates snapshots in an append-only log.
//
// Recorder is not safe for concurrent use; the engine's single-writer
// loop is the only caller by construction.
type Recorder struct {
	log []Snapshot
	now func() time.Time
}

// NewRecorder creates an empty recorder stamping snapshots with the wall
// clock.
func NewRecorder() *Recorder {
	return &Recorder{now: time.Now}
}

// NewRecorderAt creates a recorder using the given time source.
// Used by tests for deterministic timestamps.
func NewRecorderAt(now func() time.Time) *Recorder {
	return &Recorder{now: now}
}

// Record captures a snapshot of the given slots in position order and
// appends it to the log.
func (r *Recorder) Record(runToken string, pass int, slots []hook.Slot) {
	snap := Snapshot{
		RunToken: runToken,
		Pass:     pass,
		At:       r.now(),
		Slots:    make([]Record, len(slots)),
	}
	for i, s := range slots {
		snap.Slots[i] = capture(i, s)
	}
	r.log = append(r.log, snap)
}

// capture deep-copies one slot's externally meaningful fields.
func capture(pos int, s hook.Slot) Record {
	rec := Record{Position: pos, Kind: s.Kind()}

	switch slot := s.(type) {
	case *hook.StateSlot:
		rec.Value = Clone(slot.Value)
	case *hook.ReducerSlot:
		rec.Value = Clone(slot.Value)
	case *hook.RefSlot:
		rec.Value = Clone(slot.Current)
	case *hook.EffectSlot:
		rec.Deps = cloneDeps(slot.Deps)
		rec.HasRun = slot.HasRun
	case *hook.InputSlot:
		rec.Value = Clone(slot.Value)
	case *hook.OutputSlot:
		rec.Namespace = slot.Namespace
		rec.Key = slot.Key
		rec.Value = Clone(slot.Value)
		rec.Enabled = slot.Enabled
		rec.Mode = slot.Mode
	}

	return rec
}

// All returns the full snapshot log in capture order. The returned slice
// is a copy; the log itself stays append-only.
func (r *Recorder) All() []Snapshot {
	out := make([]Snapshot, len(r.log))
	copy(out, r.log)
	return out
}

// Latest returns the most recent snapshot, or false if none were taken.
func (r *Recorder) Latest() (Snapshot, bool) {
	if len(r.log) == 0 {
		return Snapshot{}, false
	}
	return r.log[len(r.log)-1], true
}

// Len returns the number of recorded snapshots.
func (r *Recorder) Len() int {
	return len(r.log)
}

// Clear discards the whole log.
func (r *Recorder) Clear() {
	r.log = nil
}
