package engine

import (
	"errors"
	"fmt"
)

// StabilizationError is returned when a run executes the pass ceiling
// without reaching a fixpoint.
//
// The failure is fatal to the call that triggered the run (SetProgram,
// Rerun, SetInput, or an external setter): no partial document is
// delivered and no retry occurs. The arena is left as of the last applied
// update batch, so the snapshot log still describes every executed pass.
type StabilizationError struct {
	RunToken string // Run that failed
	Passes   int    // Passes executed
	Limit    int    // Configured ceiling
}

// Error implements the error interface.
func (e *StabilizationError) Error() string {
	return fmt.Sprintf("run %s did not stabilize within %d passes", e.RunToken, e.Limit)
}

// IsStabilizationError reports whether err is a StabilizationError.
// Uses errors.As to handle wrapped errors.
func IsStabilizationError(err error) bool {
	var se *StabilizationError
	return errors.As(err, &se)
}

// UnknownExtensionError is returned by Caps.Invoke for a name that was
// never registered.
type UnknownExtensionError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownExtensionError) Error() string {
	return fmt.Sprintf("unknown extension %q", e.Name)
}

// IsUnknownExtensionError reports whether err is an UnknownExtensionError.
// Uses errors.As to handle wrapped errors.
func IsUnknownExtensionError(err error) bool {
	var ue *UnknownExtensionError
	return errors.As(err, &ue)
}
