package csr

import "sort"

// ReverseIndex returns the global edge-slot index of the directed slot
// v->u within v's (sorted) neighbor list. Callers must only pass (u,v)
// pairs known to be a real edge of the graph (guaranteed by NewGraph's
// symmetry check), so the search always succeeds.
//
// Complexity: O(log degree(v)).
func (g *Graph) ReverseIndex(u, v uint32) uint64 {
	slots, start := g.Neighbors(v)
	j := sort.Search(len(slots), func(i int) bool { return slots[i].Neighbor >= u })
	return start + uint64(j)
}
