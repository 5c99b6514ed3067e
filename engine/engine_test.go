package engine_test

import (
	"testing"

	"github.com/qub-hpc/mastiff/csr"
	"github.com/qub-hpc/mastiff/engine"
	"github.com/qub-hpc/mastiff/internal/oracle"
	"github.com/qub-hpc/mastiff/msf"
	"github.com/stretchr/testify/require"
)

// buildGraph is a small helper over csr.NewGraph for symmetric inputs
// expressed as an undirected edge list.
func buildGraph(t *testing.T, n uint32, undirected [][3]uint32) *csr.Graph {
	t.Helper()
	type half = struct{ to, w uint32 }
	adj := make([][]half, n)
	for _, e := range undirected {
		u, v, w := e[0], e[1], e[2]
		adj[u] = append(adj[u], half{v, w})
		adj[v] = append(adj[v], half{u, w})
	}
	offsets := make([]uint64, n+1)
	var edges []csr.EdgeSlot
	for v := uint32(0); v < n; v++ {
		offsets[v] = uint64(len(edges))
		sortHalves(adj[v])
		for _, h := range adj[v] {
			edges = append(edges, csr.EdgeSlot{Neighbor: h.to, Weight: h.w})
		}
	}
	offsets[n] = uint64(len(edges))
	g, err := csr.NewGraph(n, offsets, edges)
	require.NoError(t, err)
	return g
}

func sortHalves(hs []struct{ to, w uint32 }) {
	for i := 1; i < len(hs); i++ {
		for j := i; j > 0 && hs[j-1].to > hs[j].to; j-- {
			hs[j-1], hs[j] = hs[j], hs[j-1]
		}
	}
}

func TestCompute_EmptyGraph(t *testing.T) {
	g := buildGraph(t, 0, nil)
	result, err := engine.Compute(g, engine.WithValidate(true))
	require.NoError(t, err)
	require.Zero(t, result.Count())
}

func TestCompute_SingleVertexNoEdges(t *testing.T) {
	g := buildGraph(t, 1, nil)
	result, err := engine.Compute(g, engine.WithValidate(true))
	require.NoError(t, err)
	require.Zero(t, result.Count())
}

func TestCompute_SingleEdge(t *testing.T) {
	g := buildGraph(t, 2, [][3]uint32{{0, 1, 7}})
	result, err := engine.Compute(g, engine.WithValidate(true))
	require.NoError(t, err)
	require.Equal(t, 1, result.Count())
	require.EqualValues(t, 7, result.TotalWeight())
}

func TestCompute_Triangle(t *testing.T) {
	// Triangle: n=3, edges {(0,1,2),(1,2,5),(0,2,3)}.
	g := buildGraph(t, 3, [][3]uint32{{0, 1, 2}, {1, 2, 5}, {0, 2, 3}})
	result, err := engine.Compute(g, engine.WithValidate(true))
	require.NoError(t, err)
	require.Equal(t, 2, result.Count())
	require.EqualValues(t, 5, result.TotalWeight(), "MST must pick (0,1,2) and (0,2,3), skipping (1,2,5)")
}

func TestCompute_SquareWithDiagonal(t *testing.T) {
	// 4-cycle 0-1-2-3-0 plus a diagonal.
	g := buildGraph(t, 4, [][3]uint32{
		{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {3, 0, 1}, {0, 2, 1},
	})
	result, err := engine.Compute(g, engine.WithValidate(true))
	require.NoError(t, err)
	require.Equal(t, 3, result.Count())
	require.EqualValues(t, 3, result.TotalWeight())
}

func TestCompute_DisconnectedTwoTriangles(t *testing.T) {
	// Two disjoint triangles form a 2-tree forest.
	g := buildGraph(t, 6, [][3]uint32{
		{0, 1, 1}, {1, 2, 1}, {0, 2, 1},
		{3, 4, 2}, {4, 5, 2}, {3, 5, 2},
	})
	result, err := engine.Compute(g, engine.WithValidate(true))
	require.NoError(t, err)
	require.Equal(t, 4, result.Count(), "2 components * (3 vertices - 1) edges each")
	require.EqualValues(t, 1+1+2+2, result.TotalWeight())
}

func TestCompute_TieBreakStressIsDeterministicAtFixedThreadCount(t *testing.T) {
	// A star of equal-weight edges: every one of the hub's candidates ties
	// on weight, so the hub's choice rests on the tie-break alone. The
	// forest is n-1 edges of weight 1, and the exact edge set chosen must
	// not vary across repeated runs at a fixed thread count.
	n := uint32(9)
	edgeList := make([][3]uint32, 0, n-1)
	for v := uint32(1); v < n; v++ {
		edgeList = append(edgeList, [3]uint32{0, v, 1})
	}
	g := buildGraph(t, n, edgeList)

	first, err := engine.Compute(g, engine.WithThreads(4), engine.WithValidate(true))
	require.NoError(t, err)
	require.EqualValues(t, n-1, first.Count())
	require.EqualValues(t, n-1, first.TotalWeight())

	g2 := buildGraph(t, n, edgeList)
	second, err := engine.Compute(g2, engine.WithThreads(4), engine.WithValidate(true))
	require.NoError(t, err)
	require.Equal(t, edgeSet(first.Edges()), edgeSet(second.Edges()), "same thread count must reproduce the same edge set")
}

func edgeSet(edges []msf.Edge) map[[2]uint32]uint32 {
	m := make(map[[2]uint32]uint32, len(edges))
	for _, e := range edges {
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		m[[2]uint32{u, v}] = e.Weight
	}
	return m
}

func TestCompute_MatchesOracleWeightOnRandomishGraphs(t *testing.T) {
	// Weight optimality, checked against the serial Prim oracle.
	n := uint32(8)
	edgeList := [][3]uint32{
		{0, 1, 4}, {0, 2, 1}, {1, 2, 2}, {1, 3, 5},
		{2, 3, 8}, {2, 4, 10}, {3, 4, 2}, {3, 5, 6},
		{4, 5, 3}, {4, 6, 7}, {5, 6, 1}, {5, 7, 9}, {6, 7, 4},
	}
	g := buildGraph(t, n, edgeList)

	result, err := engine.Compute(g, engine.WithThreads(3), engine.WithValidate(true))
	require.NoError(t, err)

	gOracle := buildGraph(t, n, edgeList)
	_, wantWeight := oracle.MSF(gOracle)
	require.EqualValues(t, wantWeight, result.TotalWeight())
}

func TestCompute_SingleThreadedMatchesMultiThreaded(t *testing.T) {
	n := uint32(8)
	edgeList := [][3]uint32{
		{0, 1, 4}, {0, 2, 1}, {1, 2, 2}, {1, 3, 5},
		{2, 3, 8}, {2, 4, 10}, {3, 4, 2}, {3, 5, 6},
		{4, 5, 3}, {4, 6, 7}, {5, 6, 1}, {5, 7, 9}, {6, 7, 4},
	}
	g1 := buildGraph(t, n, edgeList)
	one, err := engine.Compute(g1, engine.WithThreads(1), engine.WithValidate(true))
	require.NoError(t, err)

	g2 := buildGraph(t, n, edgeList)
	many, err := engine.Compute(g2, engine.WithThreads(8), engine.WithValidate(true))
	require.NoError(t, err)

	require.Equal(t, one.TotalWeight(), many.TotalWeight())
	require.Equal(t, one.Count(), many.Count())
}
