// Package engine implements the quiesce stabilization loop.
//
// The engine repeatedly invokes a user-supplied program, threading
// positionally addressed hook slots across invocations, until a pass
// queues no updates (the fixpoint). It then runs the deferred effects
// whose dependencies changed and hands the aggregated output document to
// the registered callback.
//
// ARCHITECTURE:
//
// Single-writer loop:
// All slot mutation happens on the caller's goroutine inside run(). There
// is no parallelism and no asynchronous suspension; every capability call
// executes to completion before control returns. The only concurrency-like
// behavior is controlled re-entrancy: a setter invoked outside an active
// pass mutates its slot immediately and restarts the loop synchronously on
// the same call stack.
//
// Pass lifecycle:
//  1. Reset the arena cursor, install a fresh pending-update queue, mark
//     the engine executing, invoke the program with the capability set.
//  2. Record a snapshot of every slot.
//  3. Queue non-empty: drain it in enqueue order and go again.
//     Queue empty: stabilized - run effects, then aggregate output.
//  4. A run that executes the pass ceiling (default 1000) without
//     stabilizing fails with *StabilizationError.
//
// INVARIANTS:
//   - The Nth capability call of any pass addresses the Nth arena slot
//     (call-order contract; violations panic in the hook package).
//   - Within one pass, capability calls observe values exactly as
//     committed after the previous pass's queue drain.
//   - Updates apply strictly in enqueue order; each queued update writes
//     the value computed at enqueue time, never re-evaluated at apply
//     time.
//   - Evaluation is single-threaded for determinism.
package engine
