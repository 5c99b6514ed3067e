// Package mastiff implements MASTIFF: a parallel, Borůvka-style minimum
// spanning forest engine over large CSR-encoded undirected graphs.
//
// The core is organized under focused subpackages, each a near 1:1 mapping
// onto one component of the design:
//
//	csr/         — the weighted edge store: immutable CSR adjacency plus
//	               the one piece of mutable state the core owns, a
//	               concurrent edge-liveness bitset.
//	unionfind/   — lock-free disjoint-set over vertex IDs, path halving on
//	               find, CAS-based linking on union.
//	partition/   — the static degree-balanced partition plan and the
//	               work-stealing dispatcher that hands partitions to
//	               worker goroutines round by round.
//	selector/    — per-component minimum live cross-component edge,
//	               published into one atomic CAS word per component root.
//	contraction/ — applies each round's winning candidates: union,
//	               append to the forest, mark consumed slots dead.
//	msf/         — the growable concurrent-safe result accumulator and
//	               the independent validator used to check a computed
//	               forest against its source graph.
//	engine/      — round-loop orchestration, configuration, and the
//	               package's single public entry point, engine.Compute.
//
// cmd/mastiff is a thin CLI driver over engine.Compute; internal/oracle is
// a serial reference implementation used only by tests.
package mastiff
