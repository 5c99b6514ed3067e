package main

import (
	"sort"

	"github.com/qub-hpc/mastiff/csr"
)

// splitmix64Seed expands a single vertex ID into a 4-word xoshiro256 state,
// exactly the splitmix64 step used by trans.c's add_4B_weight_to_ll_400_graph
// to turn a (there: partition) index into a reproducible stream seed. Keyed
// per vertex here rather than per partition, since at load time no
// partition plan exists yet — partitioning happens later, once engine.Compute
// has a graph to build one from.
func splitmix64Seed(v uint32) (s [4]uint64) {
	x := uint64(v)
	for i := 0; i < 4; i++ {
		x += 0x9e3779b97f4a7c15
		z := x
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		s[i] = z ^ (z >> 31)
	}
	return s
}

func rotl(x uint64, k uint) uint64 {
	return (x << k) | (x >> (64 - k))
}

// xoshiro256pp advances s in place and returns the next xoshiro256++ output
// word, transcribed directly from trans.c's inline next() step.
func xoshiro256pp(s *[4]uint64) uint64 {
	result := rotl(s[0]+s[3], 23) + s[0]

	t := s[1] << 17
	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]
	s[2] ^= t
	s[3] = rotl(s[3], 45)

	return result
}

// directedEdge is one (from, to) pair of an as-yet-unweighted, possibly
// asymmetric directed edge list, the input symmetrize consumes.
type directedEdge struct {
	From, To uint32
}

// symmetrize turns a directed edge list into the symmetric, sorted,
// self-loop-free, positively-weighted csr.Graph the core requires,
// following trans.c's two-pass weight-then-mirror structure: each edge
// (u,v) with u<v is assigned a
// deterministic pseudo-random weight in [1, maxWeight] seeded from u, and
// the mirror edge (v,u) receives the identical weight. Self-loops (u==v)
// and edges already seen in the opposite direction are dropped.
func symmetrize(n uint32, directed []directedEdge, maxWeight uint32) (*csr.Graph, error) {
	type half struct {
		to, weight uint32
	}
	adj := make([][]half, n)

	seeds := make(map[uint32]*[4]uint64, n)
	seedFor := func(v uint32) *[4]uint64 {
		if s, ok := seeds[v]; ok {
			return s
		}
		s := splitmix64Seed(v)
		seeds[v] = &s
		return &s
	}

	seen := make(map[[2]uint32]struct{}, len(directed))
	for _, e := range directed {
		if e.From == e.To {
			continue // self-loop: never a valid MSF edge, drop at the source.
		}
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		key := [2]uint32{u, v}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		rand := xoshiro256pp(seedFor(u))
		weight := uint32(1 + rand%uint64(maxWeight))

		adj[u] = append(adj[u], half{to: v, weight: weight})
		adj[v] = append(adj[v], half{to: u, weight: weight})
	}

	offsets := make([]uint64, n+1)
	var edges []csr.EdgeSlot
	for v := uint32(0); v < n; v++ {
		offsets[v] = uint64(len(edges))
		sort.Slice(adj[v], func(i, j int) bool { return adj[v][i].to < adj[v][j].to })
		for _, h := range adj[v] {
			edges = append(edges, csr.EdgeSlot{Neighbor: h.to, Weight: h.weight})
		}
	}
	offsets[n] = uint64(len(edges))

	return csr.NewGraph(n, offsets, edges)
}
