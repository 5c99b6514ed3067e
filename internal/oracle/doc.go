// Package oracle provides a serial, heap-based minimum-spanning-forest
// computation used only as a correctness reference in tests: weight
// optimality is checked by comparing engine.Compute's
// output against this package rather than by reasoning about optimality
// from first principles in every test.
//
// The algorithm is Prim grown from every undiscovered vertex in turn
// (equivalent to running Prim once per connected component), adapted to
// operate directly over a csr.Graph adjacency. Not part of the public
// API; not optimized for the partition/concurrency story the rest of this
// module implements.
package oracle
