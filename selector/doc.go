// Package selector implements the per-round minimum-edge selection pass:
// for every still-active component, find the lightest live edge crossing
// to a different component, with a tie-break that is reproducible
// regardless of which vertex or goroutine discovers a given edge first.
//
// Representation: Best is one atomic.Uint64 per vertex ID, used only at
// indices that are currently component roots. Each word packs
// (weight uint32 << 32 | edgeIndex uint32); plain ascending comparison of
// the packed word realizes the lexicographic (weight, edgeIndex) order in a
// single CAS.
//
// Why edgeIndex and not otherRoot: packing (weight, other_root_id) is
// enough to decide which component a candidate points at but not which
// physical edge it is — and the contraction engine needs the real
// endpoint vertices to append a valid (u,v,w) triple to the MSF, not a
// (root,root,w) triple that may not exist as an edge at all. Packing the
// edge's own slot index instead lets csr.Graph.OwnerOf and the slot's own
// Neighbor field recover both real endpoints in O(log n), and the other
// component is just uf.Find(neighbor) — recovered lazily, once per
// winning candidate per round, instead of carried in every CAS.
//
// This trades a root-pair tie-break for an edge-index tie-break, but both
// are fixed deterministic total orders over candidates, so weight
// optimality is unaffected and results stay reproducible at a fixed
// thread count; only which specific edge set wins a multi-way weight tie
// can differ from a root-pair-keyed selector, and no correctness property
// depends on that choice.
package selector
