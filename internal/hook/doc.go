// Package hook defines the positional state arena at the heart of quiesce.
//
// A hook is a single persistent state slot. Slots are tagged variants
// (state, reducer, ref, effect, input, output entry) stored in an ordered,
// growable arena and addressed by call position: the Nth accessor call
// during any pass of the user program always lands on the Nth slot.
//
// CALL-ORDER CONTRACT:
//
// Positional addressing only works if the program performs the same
// accessor calls in the same order on every pass. Conditionally skipping
// an accessor call shifts every later position and yields undefined slot
// assignment. The arena treats a kind mismatch at a visited position as a
// programmer error and panics; it never attempts to correct call order.
//
// The arena only grows during an engine instance's lifetime. Output entry
// slots are the one exception to strict immutability of shape: supplying
// new input resets them in place (positions preserved) so that aggregated
// sequences cannot carry stale values across input cycles.
package hook
