// Command mastiff is a thin driver around engine.Compute: it loads a
// plain-text CSR graph dump, optionally symmetrizes and weights a directed
// edge list into the form the core requires, runs the parallel contraction
// loop, and prints the resulting forest's edge count and total weight.
//
// Usage:
//
//	mastiff [flags] <graph-file>
//
// Exit code 0 on success, 1 on any fatal error (load, invariant violation,
// out-of-memory, or validation failure).
package main
