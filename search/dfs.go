package search

import (
	"github.com/mdraeger/networks/collection"
	"github.com/mdraeger/networks/core"
)

// DFS runs depth-first search from start: the generic traversal loop
// driven by a LIFO stack, so each newly discovered node is expanded before
// its siblings.
//
// DFS reaches exactly the same node set as BFS from the same start; only
// predecessor links and discovery order may differ.
//
// Complexity: O(V·Δ + E) time, O(V) space.
func DFS(network core.Network, start core.NodeID) (*Result, error) {
	if network == nil {
		return nil, ErrNilNetwork
	}

	return Traverse(network, collection.NewStack(network.NumNodes()), start)
}
