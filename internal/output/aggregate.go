package output

import "github.com/quiesce-dev/quiesce/internal/hook"

// Document is the aggregated output: namespace → key → value.
//
// Values under append-mode keys are ordered []any sequences; everything
// else is whatever the program supplied.
type Document map[string]map[string]any

// Callback receives the aggregated document once per completed
// stabilization.
type Callback func(Document)

// Collect folds the arena's output entries into a Document.
//
// Entries are visited in position order. Dead entries (reset by an input
// change and not revisited) and disabled entries are omitted. An
// overwrite entry replaces any prior value at its namespace/key, including
// a sequence accumulated by earlier append entries. An append entry
// appends to the sequence at its namespace/key, starting a fresh sequence
// if the prior value was not produced by appends.
func Collect(slots []hook.Slot) Document {
	doc := make(Document)

	// Tracks which namespace/key values are append-built sequences, so an
	// append after an overwrite starts fresh instead of wrapping it.
	appended := make(map[string]map[string]bool)

	for _, s := range slots {
		entry, ok := s.(*hook.OutputSlot)
		if !ok || !entry.Live || !entry.Enabled {
			continue
		}

		ns := doc[entry.Namespace]
		if ns == nil {
			ns = make(map[string]any)
			doc[entry.Namespace] = ns
		}

		switch entry.Mode {
		case hook.ModeAppend:
			marks := appended[entry.Namespace]
			if marks == nil {
				marks = make(map[string]bool)
				appended[entry.Namespace] = marks
			}
			if marks[entry.Key] {
				ns[entry.Key] = append(ns[entry.Key].([]any), entry.Value)
			} else {
				ns[entry.Key] = []any{entry.Value}
				marks[entry.Key] = true
			}

		default: // hook.ModeOverwrite
			ns[entry.Key] = entry.Value
			if marks := appended[entry.Namespace]; marks != nil {
				delete(marks, entry.Key)
			}
		}
	}

	return doc
}
