package unionfind

import "sync/atomic"

// UF is a lock-free disjoint-set structure over vertex IDs 0..n-1.
// Zero value is not usable; construct with New.
type UF struct {
	parent []atomic.Uint32
	size   []atomic.Uint32
}

// New returns a UF with n singleton components: parent[v] = v, size[v] = 1.
// Complexity: O(n).
func New(n uint32) *UF {
	uf := &UF{
		parent: make([]atomic.Uint32, n),
		size:   make([]atomic.Uint32, n),
	}
	for v := uint32(0); v < n; v++ {
		uf.parent[v].Store(v)
		uf.size[v].Store(1)
	}
	return uf
}

// Find returns the root of v's tree, applying one-step path halving along
// the way. Safe for unbounded concurrent callers: the only write a racing
// goroutine can perform is parent[x] <- ancestor(x), so two concurrent
// halvings of the same node can only ever agree on being "more compressed",
// never disagree about which tree x belongs to.
//
// Complexity: O(log n) amortized, single-goroutine worst case O(n) on a
// degenerate unhalved chain (cannot occur here since halving runs on every
// call).
func (uf *UF) Find(v uint32) uint32 {
	for {
		p := uf.parent[v].Load()
		if p == v {
			return v
		}
		gp := uf.parent[p].Load()
		if gp != p {
			// One-step halving: point v directly at its grandparent.
			uf.parent[v].Store(gp)
		}
		v = p
	}
}

// Link attempts to merge the trees rooted at a and b, which MUST both
// already be roots (Find(a) == a, Find(b) == b) and distinct. It orders the
// two roots deterministically by (size, id) — the smaller-size (ties broken
// by lower id) root is always the one CAS'd to point at the other, so the
// winner is the larger tree and the structure stays shallow.
//
// Returns true iff this call installed the link. A false return means some
// other goroutine already dethroned the intended loser; the caller (Union)
// must re-Find both endpoints and retry, since the merge it attempted has
// already happened, possibly with swapped roles.
//
// Complexity: O(1).
func (uf *UF) Link(a, b uint32) bool {
	sa, sb := uf.size[a].Load(), uf.size[b].Load()
	// Deterministic ordering: smaller size loses; ties broken by lower id
	// (which becomes the loser, so the surviving root trends toward the
	// higher id — the exact tie-break direction is arbitrary but fixed).
	winner, loser := a, b
	if sb > sa || (sb == sa && b > a) {
		winner, loser = b, a
	}

	if !uf.parent[loser].CompareAndSwap(loser, winner) {
		return false
	}
	uf.size[winner].Add(uf.size[loser].Load())
	return true
}

// Union repeatedly Finds both endpoints and attempts Link until either a
// merge is installed or the endpoints are discovered to already share a
// root. Returns true iff this call caused a merge (false means u and v were
// already in the same component, possibly merged by a racing goroutine
// between the Find and the Link attempt — in which case no new merge
// occurred and the caller must not double-count it).
//
// Complexity: O(log n) amortized per attempt; CAS failures are bounded by
// the number of concurrent Unions racing on the same root, always
// terminates because every failed CAS corresponds to a merge that
// shrinks the number of distinct roots by one.
func (uf *UF) Union(u, v uint32) bool {
	for {
		ru, rv := uf.Find(u), uf.Find(v)
		if ru == rv {
			return false
		}
		if uf.Link(ru, rv) {
			return true
		}
		// Lost the race: retry with fresh roots.
	}
}

// Len returns the number of vertices this UF was constructed over.
func (uf *UF) Len() int { return len(uf.parent) }
