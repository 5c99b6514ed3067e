// Package contraction implements the per-round contraction pass: given the
// candidates selector published into Best, union the endpoints of each
// selected edge, append survivors to the MSF output, and mark the selected
// slot dead in both directions.
//
// The append-at-most-once guarantee falls directly out of
// unionfind.UF.Link's contract: only the goroutine whose Union call actually
// installed the merge appends the edge. When both endpoints' components
// independently propose the same edge toward each other, both goroutines
// call Union on the same (u,v) pair; exactly one of them performs the
// winning Link and appends, the other observes roots already equal and
// does nothing.
package contraction
