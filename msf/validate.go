package msf

import (
	"fmt"

	"github.com/qub-hpc/mastiff/csr"
	"github.com/qub-hpc/mastiff/unionfind"
)

// Validate checks edges (an MSF candidate) against graph, the same
// weighted symmetric graph the MSF was computed over:
//
//   - edge membership: every edge must exist as a slot in graph with the
//     same weight.
//   - forest property: replaying the edges through a fresh union-find
//     must never union two vertices already in the same component.
//   - spanning property: after replay, every pair of vertices joined
//     by a direct edge in graph must share a union-find root — which, by
//     transitivity, extends to every pair connected by any path in graph.
//
// Edge count and weight optimality against an oracle are checked by the
// caller, which has the graph's component count and the oracle's total
// weight respectively; Validate only knows about edges and graph.
//
// Complexity: O(m log n).
func Validate(graph *csr.Graph, edges []Edge) error {
	uf := unionfind.New(graph.N)

	for _, e := range edges {
		if !edgeExistsWithWeight(graph, e) {
			return fmt.Errorf("%w: edge (%d,%d,w=%d) not present in source graph",
				ErrValidationFailed, e.From, e.To, e.Weight)
		}
		if !uf.Union(e.From, e.To) {
			return fmt.Errorf("%w: edge (%d,%d) forms a cycle with previously accepted edges",
				ErrValidationFailed, e.From, e.To)
		}
	}

	for v := uint32(0); v < graph.N; v++ {
		slots, _ := graph.Neighbors(v)
		for _, s := range slots {
			if uf.Find(v) != uf.Find(s.Neighbor) {
				return fmt.Errorf("%w: vertices %d and %d are connected in the source graph but not spanned by the MSF",
					ErrValidationFailed, v, s.Neighbor)
			}
		}
	}

	return nil
}

// edgeExistsWithWeight does a binary-search-free linear scan of e.From's
// neighbor list (sorted by ID) for e.To with a matching weight. A binary
// search would be asymptotically better, but the MSF has at most n-1
// edges, so this is never the dominant cost.
func edgeExistsWithWeight(graph *csr.Graph, e Edge) bool {
	slots, _ := graph.Neighbors(e.From)
	for _, s := range slots {
		if s.Neighbor == e.To {
			return s.Weight == e.Weight
		}
	}
	return false
}
