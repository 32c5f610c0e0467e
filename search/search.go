// Package search implements graph traversal over a core.Network: one
// generic peek-scan loop, specialized into breadth-first and depth-first
// search purely by the container discipline it is handed.
package search

import (
	"github.com/mdraeger/networks/collection"
	"github.com/mdraeger/networks/core"
)

// Traverse runs the generic search loop from start using the supplied
// container discipline: a FIFO collection yields breadth-first order, a
// LIFO collection depth-first order. The frontier must be empty; Traverse
// owns it for the duration of the call.
//
// The loop peeks (never pops) the current front node, scans its adjacency
// for the first undiscovered neighbor, and either pushes that neighbor
// (leaving the current node in place for its remaining neighbors) or,
// when the scan comes up empty, pops the exhausted node. The discipline
// decides discovery order only; the reached set is discipline-independent.
//
// Complexity: O(V·Δ + E) time with Δ the maximum out-degree (each node is
// re-scanned once per discovered neighbor), O(V) space beyond the result.
func Traverse(network core.Network, frontier collection.Collection, start core.NodeID) (*Result, error) {
	if network == nil {
		return nil, ErrNilNetwork
	}
	n := network.NumNodes()
	if int(start) >= n {
		return nil, ErrStartOutOfRange
	}

	invalid := network.InvalidID()
	res := &Result{
		Start:   start,
		Pred:    make([]core.NodeID, n),
		Order:   make([]core.NodeID, n),
		invalid: invalid,
	}
	for i := range res.Pred {
		res.Pred[i] = invalid
	}

	visited := make([]bool, n)
	visited[start] = true
	// Order[start] stays 0; discovered nodes number from 1.
	var next core.NodeID

	frontier.Push(start)
	for !frontier.IsEmpty() {
		cur, _ := frontier.Peek()

		// First undiscovered neighbor of the current node, in adjacency
		// (insertion-relative) order.
		found := invalid
		for _, cand := range network.AdjacentNodes(cur) {
			if !visited[cand] {
				found = cand
				break
			}
		}

		if found == invalid {
			// Exhausted: only now does the current node leave the frontier.
			frontier.Pop()
			continue
		}

		visited[found] = true
		res.Pred[found] = cur
		next++
		res.Order[found] = next
		frontier.Push(found)
	}

	return res, nil
}
