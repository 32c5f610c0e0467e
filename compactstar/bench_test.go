package compactstar_test

import (
	"math/rand"
	"testing"

	"github.com/mdraeger/networks/compactstar"
	"github.com/mdraeger/networks/core"
)

// randomArcs builds m arcs over n nodes with a fixed seed so benchmark
// runs stay comparable.
func randomArcs(n, m int, seed int64) []core.Arc {
	rng := rand.New(rand.NewSource(seed))
	arcs := make([]core.Arc, m)
	for i := range arcs {
		arcs[i] = core.Arc{
			From:     core.NodeID(rng.Intn(n)),
			To:       core.NodeID(rng.Intn(n)),
			Cost:     rng.Float64() * 100,
			Capacity: rng.Float64() * 100,
		}
	}

	return arcs
}

// BenchmarkBuild measures construction cost on a sparse random network.
func BenchmarkBuild(b *testing.B) {
	const n, m = 10000, 50000
	arcs := randomArcs(n, m, 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = compactstar.Build(n, arcs)
	}
}

// BenchmarkAdjacentNodes measures the contiguous neighbor scan.
func BenchmarkAdjacentNodes(b *testing.B) {
	const n, m = 10000, 50000
	cs, err := compactstar.Build(n, randomArcs(n, m, 1))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cs.AdjacentNodes(core.NodeID(i % n))
	}
}

// BenchmarkCost measures the O(degree) pair lookup.
func BenchmarkCost(b *testing.B) {
	const n, m = 10000, 50000
	cs, err := compactstar.Build(n, randomArcs(n, m, 1))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cs.Cost(core.NodeID(i%n), core.NodeID((i+1)%n))
	}
}
