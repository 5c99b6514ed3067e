package msf

import "errors"

var (
	// ErrCapacityExceeded indicates more than n-1 edges were appended to a
	// Result sized for n vertices — a programming error in the contraction
	// engine, never a legitimate outcome of a correct run.
	ErrCapacityExceeded = errors.New("msf: result capacity exceeded")

	// ErrValidationFailed is returned by Validate (wrapped with detail) when
	// the accumulated edges do not form a valid spanning forest of the
	// source graph. Validate does not compare total weight against an
	// oracle.
	ErrValidationFailed = errors.New("msf: validation failed")
)
