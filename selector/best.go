package selector

import "sync/atomic"

// Candidate is the minimum-weight live cross-component edge discovered so
// far for some component, identified by its global directed edge-slot
// index rather than by the raw (u,v) pair — see doc.go for why.
type Candidate struct {
	Weight    uint32
	EdgeIndex uint32
}

// Best is one atomic word per vertex ID, meaningful only at indices that
// are currently component roots. A zero word means "no candidate yet" —
// safe because every real edge weight is strictly positive (zero is
// reserved to mean "no real weight"), so a packed (weight,edgeIndex) word
// is never zero.
type Best struct {
	words []atomic.Uint64
}

// New allocates a Best with n slots, all "no candidate". Reallocated once
// per round by the engine rather than reset in place, since the set of
// indices that matter (current roots) changes as components merge.
func New(n uint32) *Best {
	return &Best{words: make([]atomic.Uint64, n)}
}

func pack(weight, edgeIndex uint32) uint64 {
	return uint64(weight)<<32 | uint64(edgeIndex)
}

func unpack(word uint64) Candidate {
	return Candidate{Weight: uint32(word >> 32), EdgeIndex: uint32(word)}
}

// Propose publishes (weight, edgeIndex) as a candidate for component c if
// it is strictly better (lexicographically smaller) than whatever is
// currently published, retrying the CAS until it either installs the
// proposal or observes an existing candidate that already wins.
//
// Ordering by (weight, edgeIndex) is a fixed deterministic total order,
// which is all a tie-break needs to be: any other deterministic rule over
// the same candidate set (for instance keying on the two component root
// IDs instead of the edge index) would preserve weight optimality and
// reproducibility just as well, just pick a different edge among those
// tied for lightest.
//
// Complexity: O(1) expected; bounded by the number of concurrent proposers
// for the same c racing at the same instant, always terminates since each
// failed CAS corresponds to some other proposal strictly improving best[c].
func (b *Best) Propose(c uint32, weight, edgeIndex uint32) {
	key := pack(weight, edgeIndex)
	for {
		old := b.words[c].Load()
		if old != 0 && old <= key {
			return
		}
		if b.words[c].CompareAndSwap(old, key) {
			return
		}
	}
}

// Get returns the published candidate for component c, or ok=false if none
// was proposed this round (c is Finalized: no outgoing live edge).
func (b *Best) Get(c uint32) (Candidate, bool) {
	w := b.words[c].Load()
	if w == 0 {
		return Candidate{}, false
	}
	return unpack(w), true
}
