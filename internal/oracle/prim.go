package oracle

import (
	"container/heap"

	"github.com/qub-hpc/mastiff/csr"
)

// edge is one candidate (from, to, weight) triple sitting in the heap,
// mirroring prim_kruskal's edgePQ element but keyed on uint32 vertex IDs
// instead of string labels.
type edge struct {
	from, to, weight uint32
}

// edgeHeap is a container/heap.Interface ordered by ascending weight, ties
// broken by ascending `to`; entries equal in both weight and `to` pop in
// whatever order the heap holds them. The order need not match the engine's tie-break
// rule, since P1/P6 only compare total weight and component structure.
type edgeHeap []edge

func (h edgeHeap) Len() int { return len(h) }
func (h edgeHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].to < h[j].to
}
func (h edgeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *edgeHeap) Push(x any)        { *h = append(*h, x.(edge)) }
func (h *edgeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// MSF computes a minimum spanning forest of graph by running Prim's
// algorithm from every vertex not yet visited, in ascending vertex-ID
// order. Returns the selected edges and their total weight.
//
// Steps (per component, mirroring prim_kruskal.Prim):
//  1. Mark root visited, push all its edges into a min-heap.
//  2. While the heap is non-empty: pop the minimum edge; if its far
//     endpoint is already visited, discard (would close a cycle);
//     otherwise accept it, mark the endpoint visited, and push its edges.
//  3. When the heap empties with the component exhausted, advance to the
//     next unvisited vertex and repeat, accumulating into the same result.
//
// Complexity: O(m log n), same asymptotic shape as prim_kruskal.Prim.
func MSF(graph *csr.Graph) (edges []edge, totalWeight uint64) {
	visited := make([]bool, graph.N)
	edges = make([]edge, 0, graph.N)

	for root := uint32(0); root < graph.N; root++ {
		if visited[root] {
			continue
		}
		visited[root] = true

		h := &edgeHeap{}
		heap.Init(h)
		pushNeighbors(graph, visited, h, root)

		for h.Len() > 0 {
			e := heap.Pop(h).(edge)
			if visited[e.to] {
				continue
			}
			visited[e.to] = true
			edges = append(edges, e)
			totalWeight += uint64(e.weight)
			pushNeighbors(graph, visited, h, e.to)
		}
	}

	return edges, totalWeight
}

func pushNeighbors(graph *csr.Graph, visited []bool, h *edgeHeap, v uint32) {
	slots, _ := graph.Neighbors(v)
	for _, s := range slots {
		if !visited[s.Neighbor] {
			heap.Push(h, edge{from: v, to: s.Neighbor, weight: s.Weight})
		}
	}
}
