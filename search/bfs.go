package search

import (
	"github.com/mdraeger/networks/collection"
	"github.com/mdraeger/networks/core"
)

// BFS runs breadth-first search from start: the generic traversal loop
// driven by a FIFO queue, so nodes are discovered in increasing hop
// distance from the start.
//
// Complexity: O(V·Δ + E) time, O(V) space.
func BFS(network core.Network, start core.NodeID) (*Result, error) {
	if network == nil {
		return nil, ErrNilNetwork
	}

	return Traverse(network, collection.NewQueue(network.NumNodes()), start)
}
