package selector

import (
	"github.com/qub-hpc/mastiff/csr"
	"github.com/qub-hpc/mastiff/unionfind"
)

// ScanVertex scans vertex v's adjacency for a single round, advancing
// cursor[v] over the contiguous dead-or-intra-component prefix and
// publishing a candidate into best for v's component whenever it finds a
// live cross-component edge.
//
// cursor must be private to the goroutine processing v for the duration of
// the round (true here because a vertex is always scanned by the same
// partition's worker for the whole round; the partition plan never
// changes mid-round).
//
// Complexity: O(degree(v)) touching only slots from the old cursor[v]
// onward; O(1) amortized advance of cursor[v] itself across the whole run
// of rounds (each slot is skipped past at most once).
func ScanVertex(graph *csr.Graph, uf *unionfind.UF, best *Best, cursor []uint32, v uint32) {
	c := uf.Find(v)
	slots, start := graph.Neighbors(v)
	n := uint32(len(slots))

	advancingPrefix := true
	i := cursor[v]
	for ; i < n; i++ {
		edgeIdx := start + uint64(i)
		if !graph.Live.IsLive(edgeIdx) {
			if advancingPrefix {
				cursor[v] = i + 1
			}
			continue
		}

		d := slots[i].Neighbor
		cd := uf.Find(d)
		if cd == c {
			// Intra-component: dead from now on, never a candidate again.
			graph.Live.MarkDead(edgeIdx)
			if advancingPrefix {
				cursor[v] = i + 1
			}
			continue
		}

		// Live cross-component edge: a candidate, but not yet known dead —
		// stop advancing the guaranteed-dead prefix here.
		advancingPrefix = false
		best.Propose(c, slots[i].Weight, uint32(edgeIdx))
	}
}

// ScanRange runs ScanVertex over the half-open vertex range [lo, hi), the
// unit of work a partition hands to a single worker goroutine.
func ScanRange(graph *csr.Graph, uf *unionfind.UF, best *Best, cursor []uint32, lo, hi uint32) {
	for v := lo; v < hi; v++ {
		ScanVertex(graph, uf, best, cursor, v)
	}
}
