// Package pagerank_test provides a runnable rank-propagation example.
package pagerank_test

import (
	"fmt"

	"github.com/mdraeger/networks/compactstar"
	"github.com/mdraeger/networks/core"
	"github.com/mdraeger/networks/pagerank"
)

// ExampleRanks propagates rank over a 4-node network with a near-zero
// teleport probability and prints two-decimal ranks.
func ExampleRanks() {
	cs, err := compactstar.Build(4, []core.Arc{
		{From: 0, To: 1}, {From: 0, To: 2}, {From: 0, To: 3},
		{From: 1, To: 2}, {From: 1, To: 3},
		{From: 2, To: 0},
		{From: 3, To: 0}, {From: 3, To: 2},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	ranks, err := pagerank.Ranks(cs,
		pagerank.WithBeta(1e-10),
		pagerank.WithEps(1e-3),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for i, r := range ranks {
		fmt.Printf("node %d: %.2f\n", i, r)
	}
	// Output:
	// node 0: 0.39
	// node 1: 0.13
	// node 2: 0.29
	// node 3: 0.19
}
