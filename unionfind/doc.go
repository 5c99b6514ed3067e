// Package unionfind implements a lock-free, rank/size-weighted disjoint-set
// structure over dense 32-bit vertex IDs: the classic iterative,
// path-compressing disjoint-set shape, reworked for concurrent access by
// replacing the parent/size maps with flat atomic arrays and replacing a
// single caller's union with a CAS-and-retry union safe under arbitrary
// interleaving of goroutines.
//
// Concurrency contract:
//
//   - Find never blocks. It walks parent pointers with plain loads and
//     performs one-step path halving (parent[v] <- parent[parent[v]]) with
//     a plain store: a racing writer can only ever replace a pointer with
//     an ancestor further along the same path, so concurrent compressions
//     cannot diverge or create cycles.
//   - Link is only ever called on two distinct roots. It orders them
//     deterministically by (size, id) and attempts a single atomic
//     CompareAndSwap on the loser's parent from itself to the winner. A
//     root, once dethroned by a successful Link, never becomes a root
//     again — this is the invariant the contraction engine's
//     append-at-most-once guarantee depends on.
//   - Union retries Find+Link until it either installs a link or discovers
//     the two vertices already share a root.
//
// No mutex, no spinlock, no blocking primitive appears anywhere in this
// package.
package unionfind
