package csr_test

import (
	"errors"
	"testing"

	"github.com/qub-hpc/mastiff/csr"
	"github.com/stretchr/testify/require"
)

// triangle builds a small symmetric graph for exercising NewGraph's
// invariant checks: n=3, edges = {(0,1,2),(1,2,5),(0,2,3)}.
func triangle(t *testing.T) *csr.Graph {
	t.Helper()
	offsets := []uint64{0, 2, 4, 6}
	edges := []csr.EdgeSlot{
		{Neighbor: 1, Weight: 2}, {Neighbor: 2, Weight: 3}, // vertex 0
		{Neighbor: 0, Weight: 2}, {Neighbor: 2, Weight: 5}, // vertex 1
		{Neighbor: 0, Weight: 3}, {Neighbor: 1, Weight: 5}, // vertex 2
	}
	g, err := csr.NewGraph(3, offsets, edges)
	require.NoError(t, err)
	return g
}

func TestNewGraph_Valid(t *testing.T) {
	g := triangle(t)
	require.EqualValues(t, 3, g.N)
	require.EqualValues(t, 3, g.M)

	slots, start := g.Neighbors(0)
	require.EqualValues(t, 0, start)
	require.Len(t, slots, 2)
	require.EqualValues(t, 2, g.Degree(1))
}

func TestNewGraph_RejectsBadDimensions(t *testing.T) {
	_, err := csr.NewGraph(3, []uint64{0, 1, 2}, nil)
	require.ErrorIs(t, err, csr.ErrBadDimensions)
}

func TestNewGraph_RejectsNonMonotonicOffsets(t *testing.T) {
	offsets := []uint64{0, 2, 1, 2}
	edges := make([]csr.EdgeSlot, 2)
	_, err := csr.NewGraph(3, offsets, edges)
	require.ErrorIs(t, err, csr.ErrOffsetsNotMonotonic)
}

func TestNewGraph_RejectsUnsortedAdjacency(t *testing.T) {
	offsets := []uint64{0, 2, 2, 2}
	edges := []csr.EdgeSlot{{Neighbor: 2, Weight: 1}, {Neighbor: 1, Weight: 1}}
	_, err := csr.NewGraph(3, offsets, edges)
	require.ErrorIs(t, err, csr.ErrUnsortedAdjacency)
}

func TestNewGraph_RejectsSelfLoop(t *testing.T) {
	offsets := []uint64{0, 1}
	edges := []csr.EdgeSlot{{Neighbor: 0, Weight: 1}}
	_, err := csr.NewGraph(1, offsets, edges)
	require.ErrorIs(t, err, csr.ErrSelfLoop)
}

func TestNewGraph_RejectsNonPositiveWeight(t *testing.T) {
	offsets := []uint64{0, 1, 2}
	edges := []csr.EdgeSlot{{Neighbor: 1, Weight: 0}, {Neighbor: 0, Weight: 0}}
	_, err := csr.NewGraph(2, offsets, edges)
	require.ErrorIs(t, err, csr.ErrNonPositiveWeight)
}

func TestNewGraph_RejectsAsymmetry(t *testing.T) {
	offsets := []uint64{0, 1, 1}
	edges := []csr.EdgeSlot{{Neighbor: 1, Weight: 4}}
	_, err := csr.NewGraph(2, offsets, edges)
	require.True(t, errors.Is(err, csr.ErrAsymmetricEdge))
}

func TestLiveness_MarkDeadIdempotentAndIsolatedByWord(t *testing.T) {
	l := csr.NewLiveness(200)
	require.True(t, l.IsLive(5))
	require.True(t, l.IsLive(130))

	l.MarkDead(5)
	require.False(t, l.IsLive(5))
	require.True(t, l.IsLive(130), "marking one bit must not affect bits in other words")

	l.MarkDead(5) // idempotent
	require.False(t, l.IsLive(5))
	require.EqualValues(t, 1, l.DeadCount())

	l.MarkDead(130)
	require.EqualValues(t, 2, l.DeadCount())
}
