package selector

import (
	"github.com/qub-hpc/mastiff/csr"
)

// ResolvedEdge is a Candidate expanded back into real graph coordinates.
type ResolvedEdge struct {
	From, To uint32
	Weight   uint32
}

// Resolve recovers the real (u, v, w) edge a Candidate refers to: u is the
// vertex owning the edge slot (via csr.Graph.OwnerOf), v is the slot's
// Neighbor, w is the slot's Weight (always equal to Candidate.Weight by
// construction, re-read from the graph as the authoritative source so P4
// — "every emitted edge corresponds to some edge slot with the same
// weight" — holds by definition rather than by bookkeeping discipline).
//
// Complexity: O(log N) for the OwnerOf binary search.
func Resolve(graph *csr.Graph, cand Candidate) ResolvedEdge {
	slot := graph.Edges[cand.EdgeIndex]
	u := graph.OwnerOf(uint64(cand.EdgeIndex))
	return ResolvedEdge{From: u, To: slot.Neighbor, Weight: slot.Weight}
}
