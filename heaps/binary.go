package heaps

import (
	"container/heap"

	"github.com/mdraeger/networks/core"
)

// BinaryHeap is an array-backed binary min-heap over (NodeID, cost)
// entries. Insert and DeleteMin are O(log size), FindMin is O(1).
//
// It is the default priority queue for heap-accelerated shortest paths.
type BinaryHeap struct {
	inner entryHeap
}

// compile-time check against the shared contract.
var _ Heap = (*BinaryHeap)(nil)

// NewBinaryHeap returns an empty BinaryHeap with room for initCap entries.
func NewBinaryHeap(initCap int) *BinaryHeap {
	return &BinaryHeap{inner: make(entryHeap, 0, initCap)}
}

// Insert adds an entry for id at the given cost. O(log size).
func (h *BinaryHeap) Insert(id core.NodeID, cost float64) {
	heap.Push(&h.inner, entry{id: id, cost: cost})
}

// FindMin returns the minimum-cost entry's id without removing it. O(1).
func (h *BinaryHeap) FindMin() (core.NodeID, bool) {
	if len(h.inner) == 0 {
		return 0, false
	}

	return h.inner[0].id, true
}

// DeleteMin removes the minimum-cost entry. O(log size).
func (h *BinaryHeap) DeleteMin() {
	if len(h.inner) > 0 {
		heap.Pop(&h.inner)
	}
}

// Size returns the number of entries held.
func (h *BinaryHeap) Size() int { return len(h.inner) }

// IsEmpty reports whether the heap holds no entries.
func (h *BinaryHeap) IsEmpty() bool { return len(h.inner) == 0 }

// entryHeap adapts []entry to container/heap's interface.
type entryHeap []entry

func (eh entryHeap) Len() int           { return len(eh) }
func (eh entryHeap) Less(i, j int) bool { return less(eh[i], eh[j]) }
func (eh entryHeap) Swap(i, j int)      { eh[i], eh[j] = eh[j], eh[i] }

func (eh *entryHeap) Push(x interface{}) { *eh = append(*eh, x.(entry)) }

func (eh *entryHeap) Pop() interface{} {
	old := *eh
	n := len(old)
	e := old[n-1]
	*eh = old[:n-1]

	return e
}
