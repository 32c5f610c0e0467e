// Package heaps defines the priority-queue contract shared by the binary
// and Fibonacci implementations.
package heaps

import (
	"math"

	"github.com/mdraeger/networks/core"
)

// Heap is a min-priority queue over (NodeID, cost) entries, ordered
// ascending by cost. Duplicate insertions of the same node at improved
// cost are expected usage: consumers practice lazy deletion, suppressing
// stale extractions with their own finalized markers rather than asking
// the heap for decrease-key.
//
// Comparisons involving a NaN cost never report "less than"; a NaN entry
// simply loses every ordering contest instead of panicking.
type Heap interface {
	// Insert adds an entry for id at the given cost.
	Insert(id core.NodeID, cost float64)

	// FindMin returns the id of the minimum-cost entry without removing
	// it. The bool is false when the heap is empty.
	FindMin() (core.NodeID, bool)

	// DeleteMin removes the minimum-cost entry. A no-op on an empty heap.
	DeleteMin()

	// Size returns the number of entries, stale duplicates included.
	Size() int

	// IsEmpty reports whether the heap holds no entries.
	IsEmpty() bool
}

// entry pairs a node id with the cost it was inserted at.
type entry struct {
	id   core.NodeID
	cost float64
}

// less orders entries ascending by cost. A NaN cost loses every contest:
// it is never reported as less than anything, and any other cost displaces
// it, so NaN entries sink instead of shadowing the finite ones.
func less(a, b entry) bool {
	if math.IsNaN(a.cost) {
		return false
	}
	if math.IsNaN(b.cost) {
		return true
	}

	return a.cost < b.cost
}
