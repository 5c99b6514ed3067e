package contraction

import (
	"github.com/qub-hpc/mastiff/csr"
	"github.com/qub-hpc/mastiff/msf"
	"github.com/qub-hpc/mastiff/selector"
	"github.com/qub-hpc/mastiff/unionfind"
)

// ContractRange runs the per-round contraction step over every component
// root index in the half-open vertex range [lo, hi): for each one that
// best published a candidate, resolve it to a real (u,v,w) edge, attempt
// the union, and on success append the edge to result and mark both
// directed slots dead.
//
// Only root indices ever have a published candidate (selector.ScanVertex
// always proposes under uf.Find(v), which is a root by definition), so
// iterating every index in range and skipping those with no candidate is
// equivalent to iterating only the roots within range, without needing a
// separate root enumeration.
//
// Returns the number of candidates observed in range (regardless of
// whether their Union call won), which the caller sums across the whole
// round to decide termination: a round with zero candidates anywhere means
// every component has no outgoing live edge left, and the run is done.
//
// Complexity: O((hi-lo) log n) — one Resolve (O(log n)) and one Union
// (O(log n) amortized) per candidate in range.
func ContractRange(graph *csr.Graph, uf *unionfind.UF, best *selector.Best, result *msf.Result, lo, hi uint32) (candidates int64, err error) {
	for c := lo; c < hi; c++ {
		cand, ok := best.Get(c)
		if !ok {
			continue
		}
		candidates++

		edge := selector.Resolve(graph, cand)
		if !uf.Union(edge.From, edge.To) {
			// Another goroutine already merged these components via a
			// different (or the same, symmetric) candidate this round.
			continue
		}

		// Only the goroutine whose Union call installed the merge reaches
		// here, so this append can never double-count a selected edge.
		if appendErr := result.Append(edge.From, edge.To, edge.Weight); appendErr != nil {
			return candidates, appendErr
		}

		graph.Live.MarkDead(uint64(cand.EdgeIndex))
		graph.Live.MarkDead(graph.ReverseIndex(edge.From, edge.To))
	}
	return candidates, nil
}
