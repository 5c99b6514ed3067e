// Package msf defines the growable, concurrency-safe MSF output buffer and
// the post-hoc validator that checks it against the source graph.
//
// Result accumulates edges via a single atomic fetch-add on a size counter
// into a preallocated []Edge of capacity n-1, so concurrent appends from
// many contraction goroutines within a round never race for the same
// slot. TotalWeight is an atomic.Uint64 updated alongside every append.
//
// Validate replays the accumulated edges through a fresh union-find to
// check the forest property, the spanning property, and edge membership
// against the source graph; edge count is checked by the caller against
// the graph's connected-component count.
package msf
