package msf

import (
	"fmt"
	"sync/atomic"
)

// Edge is one selected MSF edge, in the orientation it was discovered.
// Edge ordering within a Result is not part of the contract: edges land
// in whatever order concurrent Append calls happened to claim slots.
type Edge struct {
	From, To uint32
	Weight   uint32
}

// Result is the growable, concurrency-safe MSF accumulator. Appends come
// from many contraction-engine goroutines concurrently within a round;
// each claims a slot via a single atomic fetch-add so two goroutines never
// write the same index.
type Result struct {
	edges []Edge
	size  atomic.Int64

	totalWeight atomic.Uint64
}

// NewResult preallocates a Result with capacity n-1, the maximum possible
// MSF size for an n-vertex graph.
func NewResult(n uint32) *Result {
	cap := 0
	if n > 0 {
		cap = int(n) - 1
	}
	return &Result{edges: make([]Edge, cap)}
}

// Append claims the next free slot and records (from, to, weight), adding
// weight to TotalWeight. Returns ErrCapacityExceeded if the Result is
// already full, which can only happen if a caller appends more than n-1
// edges — a contraction-engine bug, not a legitimate graph outcome.
//
// Complexity: O(1).
func (r *Result) Append(from, to, weight uint32) error {
	idx := r.size.Add(1) - 1
	if idx >= int64(len(r.edges)) {
		r.size.Add(-1) // release the claim so Count stays at capacity
		return fmt.Errorf("%w: index %d, capacity %d", ErrCapacityExceeded, idx, len(r.edges))
	}
	r.edges[idx] = Edge{From: from, To: to, Weight: weight}
	r.totalWeight.Add(uint64(weight))
	return nil
}

// Edges returns the edges appended so far. The returned slice aliases
// Result's internal storage and must not be retained across further
// Append calls.
func (r *Result) Edges() []Edge {
	n := r.size.Load()
	return r.edges[:n]
}

// Count returns the number of edges appended so far.
func (r *Result) Count() int { return int(r.size.Load()) }

// TotalWeight returns the sum of weights of all appended edges.
func (r *Result) TotalWeight() uint64 { return r.totalWeight.Load() }
