// Package search provides sentinel errors and the traversal Result type.
package search

import (
	"errors"
	"fmt"

	"github.com/mdraeger/networks/core"
)

// Sentinel errors for traversal execution.
var (
	// ErrNilNetwork is returned when a nil network is passed.
	ErrNilNetwork = errors.New("search: network is nil")

	// ErrStartOutOfRange is returned when the start node id is not a
	// valid node of the network.
	ErrStartOutOfRange = errors.New("search: start node out of range")

	// ErrNotReached is returned by PathTo when the destination was not
	// discovered by the traversal.
	ErrNotReached = errors.New("search: destination not reached")
)

// Result holds the outcome of one traversal:
//
//   - Pred[v] is the node that discovered v, or the invalid sentinel for
//     the start node and for every unreached node.
//   - Order[v] is v's discovery number: 0 for the start, 1 for the first
//     node discovered, and so on. Unreached nodes keep their
//     zero-initialized slot, so reachability must be judged via Pred (or
//     Reached), never via Order.
type Result struct {
	// Start is the node the traversal began at.
	Start core.NodeID

	// Pred maps each node to its discovering predecessor.
	Pred []core.NodeID

	// Order maps each node to its discovery number.
	Order []core.NodeID

	invalid core.NodeID
}

// Reached reports whether the traversal discovered id.
func (r *Result) Reached(id core.NodeID) bool {
	if int(id) >= len(r.Pred) {
		return false
	}

	return id == r.Start || r.Pred[id] != r.invalid
}

// PathTo reconstructs the discovery path from the start node to dest by
// walking Pred backwards. Returns ErrNotReached if dest was not
// discovered.
func (r *Result) PathTo(dest core.NodeID) ([]core.NodeID, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: node %d", ErrNotReached, dest)
	}

	var path []core.NodeID
	for cur := dest; ; cur = r.Pred[cur] {
		path = append(path, cur)
		if cur == r.Start {
			break
		}
	}
	// reverse to start→dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
