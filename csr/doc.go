// Package csr defines the immutable-layout compressed-sparse-row graph that
// the MASTIFF core consumes, plus the parallel mutable edge-liveness bitset
// it owns.
//
// What & Why
//
//   - A csr.Graph is a read-only view over two flat arrays: Offsets (one
//     entry per vertex, plus a sentinel) and Edges (one EdgeSlot per directed
//     edge half). It never changes shape after construction; the only
//     mutable state attached to it is the Liveness bitset, which workers
//     flip as components merge.
//
//   - Why CSR? Borůvka-style contraction scans every still-live neighbor of
//     every active vertex once per round. A flat, sorted, cache-resident
//     adjacency beats pointer-chasing maps by a wide margin at the vertex
//     counts this engine targets, and it is the representation the original
//     MASTIFF paper assumes (see original_source/graph.c, trans.c).
//
// Invariants (asserted at construction, see NewGraph):
//
//   - Offsets is monotonically non-decreasing, len(Offsets) == N+1, and
//     Offsets[N] == 2*M.
//   - Every neighbor list Edges[Offsets[v]:Offsets[v+1]] is sorted by
//     Neighbor ID ascending.
//   - Every weight is strictly positive.
//   - The graph is symmetric: for every slot (u→v, w) there is a matching
//     slot (v→u, w).
//   - No self-loops.
//
// Violating any of the above is reported as one of the csr.Err* sentinels
// declared in errors.go, never a panic, so callers can surface a clean diagnostic instead
// of recovering from a crash.
package csr
