// Package compactstar_test provides runnable examples for building and
// querying a compact-star network.
package compactstar_test

import (
	"fmt"

	"github.com/mdraeger/networks/compactstar"
	"github.com/mdraeger/networks/core"
)

// ExampleBuild demonstrates constructing a small directed network and
// enumerating a neighborhood. The arc list may be supplied in any order;
// Build sorts by source id while preserving the relative order of arcs
// sharing a source.
func ExampleBuild() {
	arcs := []core.Arc{
		{From: 3, To: 4, Cost: 45, Capacity: 60},
		{From: 0, To: 1, Cost: 25, Capacity: 30},
		{From: 0, To: 2, Cost: 35, Capacity: 50},
		{From: 3, To: 2, Cost: 15, Capacity: 30},
	}
	cs, err := compactstar.Build(5, arcs)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("nodes:", cs.NumNodes(), "arcs:", cs.NumArcs())
	fmt.Println("adjacent(3):", cs.AdjacentNodes(3))
	cost, ok := cs.Cost(3, 2)
	fmt.Println("cost(3,2):", cost, ok)
	// Output:
	// nodes: 5 arcs: 4
	// adjacent(3): [4 2]
	// cost(3,2): 15 true
}

// ExampleCompactStar_InArcIndices shows the reverse-index extension point:
// incoming arcs of a node, resolved back to full arcs via ArcAt.
func ExampleCompactStar_InArcIndices() {
	arcs := []core.Arc{
		{From: 0, To: 2, Cost: 1},
		{From: 1, To: 2, Cost: 2},
		{From: 2, To: 0, Cost: 3},
	}
	cs, err := compactstar.Build(3, arcs)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, idx := range cs.InArcIndices(2) {
		a, _ := cs.ArcAt(idx)
		fmt.Printf("%d→%d cost=%g\n", a.From, a.To, a.Cost)
	}
	// Output:
	// 0→2 cost=1
	// 1→2 cost=2
}
