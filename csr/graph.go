package csr

import (
	"fmt"
	"sort"
)

// NewGraph validates offsets/edges against the invariants documented in
// doc.go and, on success, wraps them in a Graph with a freshly allocated,
// all-live Liveness bitset.
//
// Steps:
//  1. Validate dimensions: len(offsets) == n+1, offsets[n] == len(edges)
//     (the 2*m directed slots).
//  2. Validate offsets is monotonically non-decreasing.
//  3. Per vertex: validate every neighbor ID is below n, the neighbor list
//     is sorted by neighbor ID, every weight is strictly positive, and no
//     slot is a self-loop.
//  4. Validate symmetry: for every (u,v,w) there is a matching (v,u,w).
//
// Any violation returns a wrapped sentinel identifying the offending vertex
// or edge index; no field of csr.Graph is ever constructed from invalid
// input. Complexity: O(m log d) time for maximum degree d (symmetry check
// uses the sorted-adjacency invariant to binary-search the reverse slot),
// O(1) extra space beyond the liveness bitset.
func NewGraph(n uint32, offsets []uint64, edges []EdgeSlot) (*Graph, error) {
	// 1. Dimensions.
	if len(offsets) != int(n)+1 {
		return nil, fmt.Errorf("%w: len(offsets)=%d, want n+1=%d", ErrBadDimensions, len(offsets), n+1)
	}
	m2 := uint64(len(edges))
	if offsets[n] != m2 {
		return nil, fmt.Errorf("%w: offsets[n]=%d, len(edges)=%d", ErrBadDimensions, offsets[n], m2)
	}

	// 2. Monotonicity.
	for v := uint32(0); v < n; v++ {
		if offsets[v] > offsets[v+1] {
			return nil, fmt.Errorf("%w: vertex %d: offsets[%d]=%d > offsets[%d]=%d",
				ErrOffsetsNotMonotonic, v, v, offsets[v], v+1, offsets[v+1])
		}
	}

	// 3. Per-vertex adjacency checks.
	for v := uint32(0); v < n; v++ {
		lo, hi := offsets[v], offsets[v+1]
		prevNeighbor := int64(-1)
		for i := lo; i < hi; i++ {
			slot := edges[i]
			if slot.Neighbor >= n {
				return nil, fmt.Errorf("%w: vertex %d, edge slot %d: neighbor %d out of range",
					ErrAsymmetricEdge, v, i, slot.Neighbor)
			}
			if slot.Neighbor == v {
				return nil, fmt.Errorf("%w: vertex %d, edge slot %d", ErrSelfLoop, v, i)
			}
			if int64(slot.Neighbor) <= prevNeighbor {
				return nil, fmt.Errorf("%w: vertex %d, edge slot %d", ErrUnsortedAdjacency, v, i)
			}
			prevNeighbor = int64(slot.Neighbor)
			if slot.Weight == 0 {
				return nil, fmt.Errorf("%w: edge slot %d (vertex %d -> %d)", ErrNonPositiveWeight, i, v, slot.Neighbor)
			}
		}
	}

	// 4. Symmetry: sorted adjacency lets us binary-search the reverse slot.
	for v := uint32(0); v < n; v++ {
		slots, _ := (&Graph{Offsets: offsets, Edges: edges}).Neighbors(v)
		for _, s := range slots {
			other, _ := (&Graph{Offsets: offsets, Edges: edges}).Neighbors(s.Neighbor)
			j := sort.Search(len(other), func(i int) bool { return other[i].Neighbor >= v })
			if j == len(other) || other[j].Neighbor != v || other[j].Weight != s.Weight {
				return nil, fmt.Errorf("%w: vertex %d -> %d (weight %d) has no matching reverse slot",
					ErrAsymmetricEdge, v, s.Neighbor, s.Weight)
			}
		}
	}

	return &Graph{
		N:       n,
		M:       m2 / 2,
		Offsets: offsets,
		Edges:   edges,
		Live:    NewLiveness(m2),
	}, nil
}
