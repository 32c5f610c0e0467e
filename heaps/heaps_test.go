// Package heaps_test runs both priority-queue implementations against the
// identical Heap contract: ordering under interleaved insert/delete,
// duplicate (stale) entries, NaN costs, and emptiness boundaries.
package heaps_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mdraeger/networks/core"
	"github.com/mdraeger/networks/heaps"
)

// HeapSuite exercises one Heap implementation; it is instantiated once per
// implementation so both satisfy the same expectations.
type HeapSuite struct {
	suite.Suite
	newHeap func() heaps.Heap
}

func TestBinaryHeapSuite(t *testing.T) {
	suite.Run(t, &HeapSuite{newHeap: func() heaps.Heap { return heaps.NewBinaryHeap(0) }})
}

func TestFibonacciHeapSuite(t *testing.T) {
	suite.Run(t, &HeapSuite{newHeap: func() heaps.Heap { return heaps.NewFibonacciHeap() }})
}

func (s *HeapSuite) TestEmpty() {
	h := s.newHeap()
	require.True(s.T(), h.IsEmpty())
	require.Equal(s.T(), 0, h.Size())
	_, ok := h.FindMin()
	require.False(s.T(), ok, "FindMin on empty heap must miss")
	h.DeleteMin() // no-op, must not panic
	require.True(s.T(), h.IsEmpty())
}

func (s *HeapSuite) TestInterleaved() {
	// Mirror of the classic interleaving: the minimum must always reflect
	// the logically current entries.
	h := s.newHeap()
	h.Insert(0, 0.0)
	id, ok := h.FindMin()
	require.True(s.T(), ok)
	require.Equal(s.T(), core.NodeID(0), id)

	h.Insert(1, 1.0)
	h.DeleteMin() // removes node 0
	h.Insert(2, 2.0)
	h.Insert(3, 3.0)
	id, _ = h.FindMin()
	require.Equal(s.T(), core.NodeID(1), id)
	require.Equal(s.T(), 3, h.Size())

	h.Insert(4, 4.0)
	h.Insert(5, 5.0)
	require.Equal(s.T(), 5, h.Size())
	id, _ = h.FindMin()
	require.Equal(s.T(), core.NodeID(1), id)

	h.Insert(0, 0.0)
	id, _ = h.FindMin()
	require.Equal(s.T(), core.NodeID(0), id)
}

func (s *HeapSuite) TestDuplicateEntries() {
	// Re-inserting the same node at improved cost is expected usage; the
	// improved entry must win FindMin while the stale one lingers.
	h := s.newHeap()
	h.Insert(7, 10.0)
	h.Insert(7, 4.0)
	h.Insert(8, 6.0)
	require.Equal(s.T(), 3, h.Size(), "stale duplicates stay counted")

	id, _ := h.FindMin()
	require.Equal(s.T(), core.NodeID(7), id)
	h.DeleteMin() // improved entry for 7

	id, _ = h.FindMin()
	require.Equal(s.T(), core.NodeID(8), id)
	h.DeleteMin()

	// The stale entry for 7 surfaces last.
	id, _ = h.FindMin()
	require.Equal(s.T(), core.NodeID(7), id)
	h.DeleteMin()
	require.True(s.T(), h.IsEmpty())
}

func (s *HeapSuite) TestNaNNeverLess() {
	// A NaN cost must not panic and must not shadow finite entries.
	h := s.newHeap()
	h.Insert(1, math.NaN())
	h.Insert(2, 5.0)
	h.Insert(3, 7.0)
	id, ok := h.FindMin()
	require.True(s.T(), ok)
	require.Equal(s.T(), core.NodeID(2), id, "finite entry wins against NaN")

	// NaN keeps losing through extraction: it surfaces only once the
	// finite entries are gone.
	h.DeleteMin()
	id, ok = h.FindMin()
	require.True(s.T(), ok)
	require.Equal(s.T(), core.NodeID(3), id)

	h.DeleteMin()
	id, ok = h.FindMin()
	require.True(s.T(), ok)
	require.Equal(s.T(), core.NodeID(1), id, "NaN entry drains last")
}

func (s *HeapSuite) TestDrainSortedRandom() {
	// Random entries with unique ids must drain in non-decreasing cost
	// order; each popped id resolves back to the cost it carried in.
	const n = 500
	rng := rand.New(rand.NewSource(42))
	costs := make([]float64, n)
	h := s.newHeap()
	for i := range costs {
		costs[i] = rng.Float64() * 1000
		h.Insert(core.NodeID(i), costs[i])
	}

	var drained []float64
	for !h.IsEmpty() {
		id, ok := h.FindMin()
		require.True(s.T(), ok)
		drained = append(drained, costs[id])
		h.DeleteMin()
	}
	require.Len(s.T(), drained, n)
	require.True(s.T(), sort.Float64sAreSorted(drained),
		"extraction order is not ascending")
}

func (s *HeapSuite) TestDrainMatchesSort() {
	// Insert known costs, then verify extraction order equals sorted order
	// by tracking each id's cost.
	costs := []float64{9, 3, 7, 1, 5, 8, 2, 6, 4, 0}
	h := s.newHeap()
	for i, c := range costs {
		h.Insert(core.NodeID(i), c)
	}

	var drained []float64
	for !h.IsEmpty() {
		id, ok := h.FindMin()
		require.True(s.T(), ok)
		drained = append(drained, costs[id])
		h.DeleteMin()
	}

	require.True(s.T(), sort.Float64sAreSorted(drained),
		"extraction order %v is not ascending", drained)
	require.Len(s.T(), drained, len(costs))
}
