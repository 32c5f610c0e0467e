// Package dijkstra defines configuration options, sentinel errors, and the
// result type for single-source shortest paths.
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/mdraeger/networks/core"
	"github.com/mdraeger/networks/heaps"
)

// Sentinel errors returned by ShortestPaths.
var (
	// ErrNilNetwork is returned when a nil network is passed.
	ErrNilNetwork = errors.New("dijkstra: network is nil")

	// ErrSourceOutOfRange is returned when the source id is not a valid
	// node of the network.
	ErrSourceOutOfRange = errors.New("dijkstra: source node out of range")

	// ErrNegativeCost is returned when a negative arc cost is encountered
	// during relaxation. Dijkstra's invariants require non-negative costs.
	ErrNegativeCost = errors.New("dijkstra: negative arc cost encountered")

	// ErrInconsistentNetwork is returned when a network reports a
	// neighbor but then misses the cost lookup for the same arc.
	ErrInconsistentNetwork = errors.New("dijkstra: adjacency and cost lookup disagree")

	// ErrNotReached is returned by PathTo for an unreached destination.
	ErrNotReached = errors.New("dijkstra: destination not reached")
)

// Options configures a ShortestPaths run.
//
// UseHeap selects the binary-heap strategy over the array-scan strategy.
// The two are observationally equivalent on non-negative costs; the heap
// is purely a performance choice: O((V+E) log E) instead of O(V²+E).
//
// NewHeap supplies the priority queue for the heap strategy, so callers
// can swap in heaps.NewFibonacciHeap (or their own) without touching the
// algorithm. It is ignored by the array strategy.
type Options struct {
	UseHeap bool
	NewHeap func(initCap int) heaps.Heap
}

// Option is a functional option for ShortestPaths.
type Option func(*Options)

// WithHeap selects the binary-heap acceleration.
func WithHeap() Option {
	return func(o *Options) {
		o.UseHeap = true
	}
}

// WithHeapConstructor selects heap acceleration backed by a caller-chosen
// priority queue. A nil constructor keeps the default binary heap.
func WithHeapConstructor(newHeap func(initCap int) heaps.Heap) Option {
	return func(o *Options) {
		o.UseHeap = true
		if newHeap != nil {
			o.NewHeap = newHeap
		}
	}
}

// DefaultOptions returns the baseline configuration: array-scan strategy,
// binary heap on standby for WithHeap.
func DefaultOptions() Options {
	return Options{
		UseHeap: false,
		NewHeap: func(initCap int) heaps.Heap { return heaps.NewBinaryHeap(initCap) },
	}
}

// Result holds single-source shortest-path output:
//
//   - Dist[v]: minimum cost from Source to v, or the network's finite
//     Infinity() when v is unreached.
//   - Pred[v]: predecessor of v on one shortest path, or the invalid
//     sentinel for the source and unreached nodes. Tie-breaking among
//     equal-cost paths is insertion-order dependent, not canonical.
type Result struct {
	// Source is the node distances are measured from.
	Source core.NodeID

	// Dist maps each node to its shortest-path cost.
	Dist []float64

	// Pred maps each node to its shortest-path predecessor.
	Pred []core.NodeID

	invalid core.NodeID
}

// Reached reports whether v was reached from the source.
func (r *Result) Reached(v core.NodeID) bool {
	if int(v) >= len(r.Pred) {
		return false
	}

	return v == r.Source || r.Pred[v] != r.invalid
}

// PathTo reconstructs one shortest path from the source to dest by walking
// Pred backwards. Returns ErrNotReached for unreached destinations.
func (r *Result) PathTo(dest core.NodeID) ([]core.NodeID, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: node %d", ErrNotReached, dest)
	}

	var path []core.NodeID
	for cur := dest; ; cur = r.Pred[cur] {
		path = append(path, cur)
		if cur == r.Source {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
