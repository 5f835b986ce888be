// Package snapshot records immutable copies of the hook arena.
//
// After every pass of the stabilization loop the engine captures one
// Snapshot: the run token, the pass index, a timestamp, and a deep copy of
// every slot's externally meaningful fields. Snapshots accumulate in an
// append-only log and are unaffected by later mutation of the live arena,
// which makes them the replay/trace substrate for tests and the CLI.
//
// Deep copying is an explicit, closed set of cases (see Clone). Structured
// types outside that set are copied by reference on purpose: the engine
// treats them as opaque.
package snapshot
