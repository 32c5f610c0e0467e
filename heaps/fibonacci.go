package heaps

import (
	"math/bits"

	"github.com/mdraeger/networks/core"
)

// FibonacciHeap is a lazily consolidated min-heap over (NodeID, cost)
// entries: O(1) Insert and FindMin, O(log size) amortized DeleteMin.
//
// Structure: a flat list of heap-ordered root trees plus a pointer to the
// current minimum root. Insert just appends a one-node tree; the real work
// happens on DeleteMin, which promotes the minimum's children to roots and
// then links roots of equal rank until ranks are unique.
//
// The consolidation bookkeeping uses a rank table of nil-able tree
// pointers: slot r holds the tree of rank r currently awaiting a partner,
// or nil when the slot is free. An explicit nil marker, not an in-band
// magic value, so no heap size can ever collide with a valid rank.
//
// Without decrease-key there is nothing for the classic "marked node"
// cascade to do; consumers practicing lazy deletion (see Heap) never need
// it.
type FibonacciHeap struct {
	roots []*fibNode
	min   *fibNode // nil iff the heap is empty
	size  int
}

// compile-time check against the shared contract.
var _ Heap = (*FibonacciHeap)(nil)

// fibNode is one tree node. rank == len(children).
type fibNode struct {
	entry
	children []*fibNode
}

// NewFibonacciHeap returns an empty FibonacciHeap.
func NewFibonacciHeap() *FibonacciHeap {
	return &FibonacciHeap{}
}

// Insert adds an entry for id at the given cost. O(1): the entry becomes a
// new root tree, and only the minimum pointer is maintained eagerly.
func (h *FibonacciHeap) Insert(id core.NodeID, cost float64) {
	n := &fibNode{entry: entry{id: id, cost: cost}}
	h.roots = append(h.roots, n)
	if h.min == nil || less(n.entry, h.min.entry) {
		h.min = n
	}
	h.size++
}

// FindMin returns the minimum-cost entry's id without removing it. O(1).
func (h *FibonacciHeap) FindMin() (core.NodeID, bool) {
	if h.min == nil {
		return 0, false
	}

	return h.min.id, true
}

// DeleteMin removes the minimum entry, promotes its children to roots, and
// consolidates the root list. O(log size) amortized.
func (h *FibonacciHeap) DeleteMin() {
	if h.min == nil {
		return
	}

	// 1) Drop the minimum root; its children become roots.
	survivors := make([]*fibNode, 0, len(h.roots)+len(h.min.children))
	for _, r := range h.roots {
		if r != h.min {
			survivors = append(survivors, r)
		}
	}
	survivors = append(survivors, h.min.children...)
	h.size--

	if len(survivors) == 0 {
		h.roots, h.min = h.roots[:0], nil
		return
	}

	// 2) Consolidate: link trees of equal rank until every occupied slot
	//    in the rank table is unique. Slot r == nil means "no tree of
	//    rank r pending".
	ranks := make([]*fibNode, maxRank(h.size)+1)
	for _, t := range survivors {
		for ranks[t.rank()] != nil {
			other := ranks[t.rank()]
			ranks[t.rank()] = nil
			t = link(t, other)
		}
		ranks[t.rank()] = t
	}

	// 3) Rebuild the root list from the table and restore the minimum
	//    pointer.
	h.roots = h.roots[:0]
	h.min = nil
	for _, t := range ranks {
		if t == nil {
			continue
		}
		h.roots = append(h.roots, t)
		if h.min == nil || less(t.entry, h.min.entry) {
			h.min = t
		}
	}
}

// Size returns the number of entries held.
func (h *FibonacciHeap) Size() int { return h.size }

// IsEmpty reports whether the heap holds no entries.
func (h *FibonacciHeap) IsEmpty() bool { return h.size == 0 }

func (n *fibNode) rank() int { return len(n.children) }

// link merges two trees of equal rank: the larger root becomes a child of
// the smaller, growing the winner's rank by one.
func link(a, b *fibNode) *fibNode {
	if less(b.entry, a.entry) {
		a, b = b, a
	}
	a.children = append(a.children, b)

	return a
}

// maxRank bounds the rank any tree in a heap of the given size can reach.
// A tree of rank r holds at least φ^r nodes, so ranks stay below
// 1.45·log2(size); two bit-lengths is a comfortable table size.
func maxRank(size int) int {
	if size <= 1 {
		return 1
	}

	return 2 * bits.Len(uint(size))
}
