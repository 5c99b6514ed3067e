package partition

import "sort"

// DefaultPartitionsPerThread is the default oversubscription factor F:
// enough partitions per worker to give the dispatcher room to balance load
// when some partitions finish faster than others.
const DefaultPartitionsPerThread = 64

// Plan holds the vertex-range boundaries computed once at round 0.
// Partition i owns the half-open vertex range [Bounds[i], Bounds[i+1]).
type Plan struct {
	Bounds []uint32
}

// Build partitions vertices 0..n into k (or fewer, if n < k) contiguous
// ranges such that the sum of degrees (offsets[v+1]-offsets[v]) within each
// range is as close to total/k as the vertex granularity allows.
//
// Steps:
//  1. Compute the prefix sum of degrees directly from offsets (offsets IS
//     already a prefix sum of degree when indexed from 0, so no extra pass
//     over edges is needed: prefix(v) = offsets[v] - offsets[0]).
//  2. For i in 1..k-1, binary-search the first vertex whose prefix sum
//     reaches i * total/k, and record it as a boundary.
//  3. Bounds[0] = 0, Bounds[k] = n; boundaries are deduplicated and sorted,
//     so Build may return fewer than k partitions when n is small or edges
//     are concentrated.
//
// Complexity: O(k log n) time, O(k) space.
func Build(n uint32, offsets []uint64, threads, partitionsPerThread int) Plan {
	if partitionsPerThread <= 0 {
		partitionsPerThread = DefaultPartitionsPerThread
	}
	if threads <= 0 {
		threads = 1
	}
	k := threads * partitionsPerThread
	if k <= 0 || uint32(k) > n {
		k = int(n)
	}
	if k == 0 {
		return Plan{Bounds: []uint32{0}}
	}

	total := offsets[n] - offsets[0]
	bounds := make([]uint32, 0, k+1)
	bounds = append(bounds, 0)
	for i := 1; i < k; i++ {
		target := offsets[0] + (total*uint64(i))/uint64(k)
		v := uint32(sort.Search(int(n)+1, func(x int) bool {
			return offsets[x] >= target
		}))
		if v > n {
			v = n
		}
		if len(bounds) == 0 || bounds[len(bounds)-1] != v {
			bounds = append(bounds, v)
		}
	}
	if bounds[len(bounds)-1] != n {
		bounds = append(bounds, n)
	}
	return Plan{Bounds: bounds}
}

// Count returns the number of partitions in the plan.
func (p Plan) Count() int {
	if len(p.Bounds) == 0 {
		return 0
	}
	return len(p.Bounds) - 1
}

// Range returns the half-open vertex range of partition i.
func (p Plan) Range(i int) (lo, hi uint32) {
	return p.Bounds[i], p.Bounds[i+1]
}
