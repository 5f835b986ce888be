// Package output folds hook output entries into the aggregated document.
//
// The aggregator keeps no state of its own: on every completed
// stabilization it scans the arena's output entries in position order and
// folds the live, enabled ones into a two-level mapping of
// namespace → key → value. Overwrite entries replace, append entries
// accumulate an ordered sequence, disabled entries vanish.
//
// Render serializes a document to YAML with deterministic, NFC-normalized
// key order so the same document always produces the same bytes. Golden
// tests and the CLI depend on that.
package output
