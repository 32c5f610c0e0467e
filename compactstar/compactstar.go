// Package compactstar implements the compact-star representation of a
// directed network: all arcs flattened into index-aligned arrays, grouped
// contiguously by source node, with a half-open range index per node.
// See Ahuja, Magnanti, Orlin: "Network Flows" for the classic treatment.
package compactstar

import (
	"fmt"
	"sort"

	"github.com/mdraeger/networks/core"
)

// CompactStar is an immutable compact-star network. Build it once with
// Build; afterwards it is read-only and safe to share across goroutines.
//
// Forward index: point[i]..point[i+1] is the half-open range of arc indices
// leaving node i within the flattened tail/head/costs/capacities arrays.
//
// Reverse index: rpoint[j]..rpoint[j+1] is the analogous range into trace,
// whose entries are forward arc indices entering node j. No in-scope
// algorithm consumes it; it is preserved as the extension point for
// reverse traversal and flow work (see InArcIndices).
type CompactStar struct {
	point      []int
	rpoint     []int
	tail       []core.NodeID
	head       []core.NodeID
	trace      []int
	costs      []float64
	capacities []float64
	costSum    float64
}

// compile-time check that CompactStar satisfies the Network contract.
var _ core.Network = (*CompactStar)(nil)

// Build constructs a CompactStar over numNodes nodes from an unordered arc
// list. The input slice is not modified; arcs are copied and stably sorted
// by source id, so arcs sharing a source keep their relative supply order.
//
// Node ids must be contiguous in [0, numNodes): any endpoint outside that
// range fails with ErrNodeOutOfRange. Isolated nodes (no arcs) are fine.
//
// Complexity: O(m log m) time for the sort, O(n + m) space.
func Build(numNodes int, arcs []core.Arc) (*CompactStar, error) {
	// 1) Validate the id range up front: an explicit failure here, never a
	//    silently corrupt index.
	if numNodes < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeNodeCount, numNodes)
	}
	for _, a := range arcs {
		if int(a.From) >= numNodes || int(a.To) >= numNodes {
			return nil, fmt.Errorf("%w: arc %d→%d, nodes [0,%d)",
				ErrNodeOutOfRange, a.From, a.To, numNodes)
		}
	}

	// 2) Copy and stably sort by source id. Stability preserves the
	//    caller's relative arc order inside each source group, which is
	//    what AdjacentNodes later reports.
	sorted := make([]core.Arc, len(arcs))
	copy(sorted, arcs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].From < sorted[j].From
	})

	n, m := numNodes, len(sorted)
	cs := &CompactStar{
		point:      make([]int, n+1),
		rpoint:     make([]int, n+1),
		tail:       make([]core.NodeID, m),
		head:       make([]core.NodeID, m),
		trace:      make([]int, m),
		costs:      make([]float64, m),
		capacities: make([]float64, m),
	}

	// 3) Fill the flattened arrays and count degrees. point and rpoint
	//    temporarily hold out-/in-degrees shifted by one slot; the prefix
	//    sums below turn them into the half-open range indices.
	for idx, a := range sorted {
		cs.tail[idx] = a.From
		cs.head[idx] = a.To
		cs.costs[idx] = a.Cost
		cs.capacities[idx] = a.Capacity
		cs.costSum += a.Cost
		cs.point[a.From+1]++
		cs.rpoint[a.To+1]++
	}
	for i := 1; i <= n; i++ {
		cs.point[i] += cs.point[i-1]
		cs.rpoint[i] += cs.rpoint[i-1]
	}

	// 4) Build the reverse trace: forward arc indices bucketed by target,
	//    ascending within each bucket (counting order preserves it).
	next := make([]int, n)
	for idx := range sorted {
		to := cs.head[idx]
		cs.trace[cs.rpoint[to]+next[to]] = idx
		next[to]++
	}

	return cs, nil
}

// AdjacentNodes returns the targets of all arcs leaving node i, in the
// relative order the arcs were supplied to Build (duplicates preserved).
// The returned slice is freshly allocated; mutating it cannot corrupt the
// network. Returns nil for an out-of-range id.
//
// Complexity: O(degree(i)).
func (cs *CompactStar) AdjacentNodes(i core.NodeID) []core.NodeID {
	if int(i) >= cs.NumNodes() {
		return nil
	}
	lo, hi := cs.point[i], cs.point[i+1]
	adj := make([]core.NodeID, hi-lo)
	copy(adj, cs.head[lo:hi])

	return adj
}

// Cost reports the cost of the first-built arc from→to, scanning the
// outgoing range linearly. If parallel arcs exist, only the first-built one
// is visible through this lookup. The bool is false when no arc matches.
//
// Complexity: O(degree(from)).
func (cs *CompactStar) Cost(from, to core.NodeID) (float64, bool) {
	if idx, ok := cs.arcIndex(from, to); ok {
		return cs.costs[idx], true
	}

	return 0, false
}

// Capacity reports the capacity of the first-built arc from→to.
// The bool is false when no arc matches.
//
// Complexity: O(degree(from)).
func (cs *CompactStar) Capacity(from, to core.NodeID) (float64, bool) {
	if idx, ok := cs.arcIndex(from, to); ok {
		return cs.capacities[idx], true
	}

	return 0, false
}

// NumNodes returns the number of nodes n; valid ids are [0, n).
func (cs *CompactStar) NumNodes() int { return len(cs.point) - 1 }

// NumArcs returns the number of directed arcs.
func (cs *CompactStar) NumArcs() int { return len(cs.tail) }

// InvalidID returns NodeID(NumNodes()), the reserved "no node" sentinel.
func (cs *CompactStar) InvalidID() core.NodeID {
	return core.NodeID(cs.NumNodes())
}

// Infinity returns the sum of all arc costs: a finite value no simple path
// can reach, used as the "unreached" distance by relaxation algorithms.
func (cs *CompactStar) Infinity() float64 { return cs.costSum }

// ArcAt returns the arc stored at the given flattened index, in Build's
// sorted order. Together with InArcIndices it makes the reverse index
// consumable without re-deriving arc data.
func (cs *CompactStar) ArcAt(index int) (core.Arc, error) {
	if index < 0 || index >= cs.NumArcs() {
		return core.Arc{}, fmt.Errorf("%w: %d, arcs [0,%d)",
			ErrArcIndexOutOfRange, index, cs.NumArcs())
	}

	return core.Arc{
		From:     cs.tail[index],
		To:       cs.head[index],
		Cost:     cs.costs[index],
		Capacity: cs.capacities[index],
	}, nil
}

// InArcIndices returns the flattened indices of all arcs entering node j,
// ascending. This is the reverse-index extension point: nothing in-scope
// consumes it, but reverse traversal or flow algorithms can, via ArcAt.
// Returns nil for an out-of-range id.
//
// Complexity: O(indegree(j)).
func (cs *CompactStar) InArcIndices(j core.NodeID) []int {
	if int(j) >= cs.NumNodes() {
		return nil
	}
	lo, hi := cs.rpoint[j], cs.rpoint[j+1]
	in := make([]int, hi-lo)
	copy(in, cs.trace[lo:hi])

	return in
}

// arcIndex locates the first arc from→to inside from's outgoing range.
func (cs *CompactStar) arcIndex(from, to core.NodeID) (int, bool) {
	if int(from) >= cs.NumNodes() {
		return 0, false
	}
	for idx := cs.point[from]; idx < cs.point[from+1]; idx++ {
		if cs.head[idx] == to {
			return idx, true
		}
	}

	return 0, false
}
