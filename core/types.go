// Package core defines the central NodeID, Arc, and Network types shared by
// every algorithm package in this module.
//
// A Network is a read-only view over a directed graph whose arcs carry a
// cost and a capacity. Implementations (see compactstar) are built once and
// never mutated afterwards, so a single Network value may be shared by
// reference across any number of concurrent algorithm invocations without
// locking. Each algorithm call allocates its own private working arrays.
//
// Node ids are dense integers in [0, NumNodes()); the value NumNodes()
// itself is reserved as the "invalid" sentinel (see Network.InvalidID) and
// means "no predecessor" / "not found" wherever a NodeID is reported.
package core

// NodeID identifies a node in a Network. Ids are dense and contiguous:
// a network over n nodes uses exactly the ids 0..n-1, and NodeID(n) is the
// invalid sentinel.
type NodeID uint32

// Arc is a directed, weighted, capacity-bearing edge between two node ids.
// An undirected edge is represented as two Arcs, one per direction.
type Arc struct {
	// From is the source node id.
	From NodeID

	// To is the target node id.
	To NodeID

	// Cost is the length (weight) of the arc. Shortest-path algorithms
	// assume non-negative costs.
	Cost float64

	// Capacity is the flow capacity of the arc. No in-scope algorithm
	// consumes it; it is carried so that the representation stays
	// flow-ready.
	Capacity float64
}

// Network is the read-only contract every graph representation in this
// module satisfies. All methods are pure queries; implementations must be
// safe for concurrent use once constructed.
type Network interface {
	// AdjacentNodes returns the targets of all arcs leaving node i, in the
	// relative order the arcs were supplied at construction time
	// (duplicates preserved). Returns nil for an out-of-range id.
	AdjacentNodes(i NodeID) []NodeID

	// Cost reports the cost of the first-built arc from→to.
	// The second return value is false when no such arc exists.
	Cost(from, to NodeID) (float64, bool)

	// Capacity reports the capacity of the first-built arc from→to.
	// The second return value is false when no such arc exists.
	Capacity(from, to NodeID) (float64, bool)

	// NumNodes returns the number of nodes n; valid ids are [0, n).
	NumNodes() int

	// NumArcs returns the number of directed arcs.
	NumArcs() int

	// InvalidID returns NodeID(NumNodes()), the reserved sentinel meaning
	// "no node".
	InvalidID() NodeID

	// Infinity returns a finite value strictly larger than the cost of any
	// simple path: the sum of all arc costs. Using a finite "infinity"
	// keeps every relaxation sum finite-safe.
	Infinity() float64
}
