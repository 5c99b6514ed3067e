package csr

import "errors"

// Sentinel errors returned by NewGraph when an input invariant is violated.
// Callers should use errors.Is to branch on these; NewGraph wraps them with
// the offending vertex/edge ID before returning them.
var (
	// ErrBadDimensions indicates N or M do not agree with len(Offsets)/len(Edges).
	ErrBadDimensions = errors.New("csr: offsets/edges length does not match n/m")

	// ErrOffsetsNotMonotonic indicates Offsets is not non-decreasing, or
	// Offsets[N] != 2*M.
	ErrOffsetsNotMonotonic = errors.New("csr: offsets array is not monotonic")

	// ErrUnsortedAdjacency indicates a neighbor list is not sorted by
	// neighbor ID ascending, a precondition the selector relies on for its
	// linear cursor scan.
	ErrUnsortedAdjacency = errors.New("csr: neighbor list is not sorted by id")

	// ErrNonPositiveWeight indicates a zero or negative edge weight.
	ErrNonPositiveWeight = errors.New("csr: edge weight must be strictly positive")

	// ErrAsymmetricEdge indicates a directed slot (u->v,w) has no matching
	// (v->u,w) slot.
	ErrAsymmetricEdge = errors.New("csr: graph is not symmetric")

	// ErrSelfLoop indicates a neighbor slot points back at its own vertex.
	ErrSelfLoop = errors.New("csr: self-loops are not allowed")
)
