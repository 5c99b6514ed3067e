package csr

import (
	"sync/atomic"

	"github.com/bits-and-blooms/bitset"
)

// Liveness is the parallel mutable bitset marking edge slots already
// consumed. One bit per directed edge slot: 0 = live, 1 = dead. A slot
// marked dead from either direction is dead from both (the contraction
// engine always marks both directed slots of a selected edge).
//
// bitset.BitSet itself offers no atomicity guarantee across goroutines, so
// Liveness only uses it for allocation and for diagnostic reads (Count);
// every hot-path read/write goes through sync/atomic directly against the
// []uint64 word array the bitset exposes via Bytes(), giving this type the
// word-level atomic OR and relaxed load that concurrent readers/writers
// racing across rounds require.
type Liveness struct {
	bits  *bitset.BitSet
	words []uint64
}

// NewLiveness allocates a liveness bitset sized for numSlots directed edge
// slots, all initially live. Complexity: O(numSlots/64) words, zeroed.
func NewLiveness(numSlots uint64) *Liveness {
	bs := bitset.New(uint(numSlots))
	return &Liveness{bits: bs, words: bs.Bytes()}
}

func wordAndMask(edgeIndex uint64) (word int, mask uint64) {
	return int(edgeIndex >> 6), uint64(1) << (edgeIndex & 63)
}

// IsLive reports whether edgeIndex is still live. A relaxed atomic load is
// sufficient: a stale "live" read only costs a wasted candidate proposal
// this round, never a correctness violation, since a dead slot never comes
// back to life.
func (l *Liveness) IsLive(edgeIndex uint64) bool {
	w, mask := wordAndMask(edgeIndex)
	return atomic.LoadUint64(&l.words[w])&mask == 0
}

// MarkDead sets edgeIndex dead via an atomic OR implemented as a
// compare-and-swap retry loop. Idempotent: marking an already-dead slot
// is a no-op.
func (l *Liveness) MarkDead(edgeIndex uint64) {
	w, mask := wordAndMask(edgeIndex)
	for {
		old := atomic.LoadUint64(&l.words[w])
		if old&mask != 0 {
			return
		}
		if atomic.CompareAndSwapUint64(&l.words[w], old, old|mask) {
			return
		}
	}
}

// DeadCount returns a point-in-time count of dead slots, for diagnostics and
// tests only; it is not linearizable with concurrent MarkDead calls.
func (l *Liveness) DeadCount() uint64 {
	return uint64(l.bits.Count())
}
