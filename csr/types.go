package csr

// EdgeSlot is one directed half of an undirected edge: a 32-bit neighbor ID
// and a 32-bit weight, packed contiguously so a neighbor scan touches one
// cache line per few edges instead of chasing pointers.
type EdgeSlot struct {
	Neighbor uint32
	Weight   uint32
}

// Graph is the immutable-layout CSR adjacency the MASTIFF core consumes.
//
// Offsets has length N+1; Offsets[v]..Offsets[v+1] indexes the half-open
// range of Edges belonging to vertex v. Edges has length 2*M (M undirected
// edges, each contributing two directed slots). Live is the one piece of
// mutable state the core owns on top of this otherwise read-only graph.
type Graph struct {
	N       uint32
	M       uint64
	Offsets []uint64
	Edges   []EdgeSlot
	Live    *Liveness
}

// Neighbors returns the slice of edge slots belonging to vertex v and the
// absolute index of its first slot within Edges (so a caller can convert a
// position within the returned slice back into a global edge index for
// Liveness.IsLive/MarkDead).
//
// Complexity: O(1); the returned slice aliases Graph.Edges, no copy is made.
func (g *Graph) Neighbors(v uint32) (slots []EdgeSlot, start uint64) {
	start = g.Offsets[v]
	end := g.Offsets[v+1]
	return g.Edges[start:end], start
}

// Degree returns the number of directed edge slots owned by vertex v.
// Complexity: O(1).
func (g *Graph) Degree(v uint32) uint64 {
	return g.Offsets[v+1] - g.Offsets[v]
}

// OwnerOf returns the vertex whose neighbor list contains the directed edge
// slot at edgeIndex, recovered by binary search over Offsets. The selector
// packs only (weight, edgeIndex) into its atomic CAS word; the contraction
// engine calls OwnerOf once per winning candidate per round to recover the
// actual endpoint vertex, which is far cheaper than widening the CAS word
// past 64 bits.
//
// Complexity: O(log N).
func (g *Graph) OwnerOf(edgeIndex uint64) uint32 {
	// Largest v such that Offsets[v] <= edgeIndex.
	lo, hi := 0, int(g.N)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if g.Offsets[mid] <= edgeIndex {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return uint32(lo)
}
