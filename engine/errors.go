package engine

import (
	"errors"
	"fmt"
)

// ErrOutOfMemory reports that the graph is larger than the engine's working
// arrays and packed 32-bit fields can index: more than math.MaxInt32
// vertices, or more than math.MaxUint32 directed edge slots.
var ErrOutOfMemory = errors.New("engine: graph too large to allocate working arrays on this platform")

// FatalError wraps a failure returned by Compute with a diagnostic
// identifying the category and the underlying cause: "OutOfMemory" for
// ErrOutOfMemory or an msf.ErrCapacityExceeded from the contract phase, and
// "ValidationFailed" for msf.ErrValidationFailed. The wrapped error already
// carries the detail (see msf.Validate); FatalError only adds the category
// label. Input invariant violations are not wrapped here: csr.NewGraph
// returns them as csr.Err* sentinels when the graph is built, before
// Compute runs.
type FatalError struct {
	Category string // "OutOfMemory" | "ValidationFailed"
	Err      error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("mastiff: fatal (%s): %v", e.Category, e.Err)
}

func (e *FatalError) Unwrap() error { return e.Err }

func fatalf(category string, err error) *FatalError {
	return &FatalError{Category: category, Err: err}
}
