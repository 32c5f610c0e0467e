// Package pagerank implements rank propagation by power iteration over a
// core.Network.
package pagerank

import (
	"math"

	"github.com/mdraeger/networks/core"
)

// Ranks runs the power iteration until convergence and returns one rank
// per node, summing to ≈1.0.
//
// Each iteration propagates (1-beta) of every node's rank evenly across
// its outgoing arcs. Dangling nodes (out-degree zero) propagate nothing:
// their mass leaks by design. The shortfall 1-Σnewrank — damping removal
// plus dangling leakage — is then redistributed evenly over all nodes.
// Iteration stops when the L2 distance between successive rank vectors is
// at most eps.
//
// If the post-redistribution mass ever exceeds 1.0 the computation aborts
// with ErrMassExceeded: that signals a misconfigured beta or a numerics
// defect, and clamping would hide it.
func Ranks(network core.Network, opts ...Option) ([]float64, error) {
	if network == nil {
		return nil, ErrNilNetwork
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	n := network.NumNodes()
	if n == 0 {
		return []float64{}, nil
	}

	// Snapshot the adjacency and inverse out-degrees once; the iteration
	// only ever reads them.
	adj := make([][]core.NodeID, n)
	invOutDeg := make([]float64, n)
	for i := 0; i < n; i++ {
		adj[i] = network.AdjacentNodes(core.NodeID(i))
		if deg := len(adj[i]); deg > 0 {
			invOutDeg[i] = 1 / float64(deg)
		}
		// dangling nodes keep invOutDeg 0: they contribute nothing
	}

	// Seed with the uniform vector and take the first step up front, so
	// even an immediately-converging tolerance returns a unit-mass vector.
	ranks := make([]float64, n)
	uniform := 1 / float64(n)
	for i := range ranks {
		ranks[i] = uniform
	}
	newRanks, err := step(adj, invOutDeg, cfg.Beta, ranks)
	if err != nil {
		return nil, err
	}

	for !converged(ranks, newRanks, cfg.Eps) {
		ranks = newRanks
		next, err := step(adj, invOutDeg, cfg.Beta, ranks)
		if err != nil {
			return nil, err
		}
		newRanks = next
	}

	return ranks, nil
}

// step performs one propagation round: damped mass flows along arcs, then
// the shortfall is redistributed evenly.
func step(adj [][]core.NodeID, invOutDeg []float64, beta float64, current []float64) ([]float64, error) {
	n := len(current)
	next := make([]float64, n)
	for i := 0; i < n; i++ {
		share := (1 - beta) * invOutDeg[i] * current[i]
		for _, j := range adj[i] {
			next[j] += share
		}
	}

	var sum float64
	for _, r := range next {
		sum += r
	}
	if sum > 1.0 {
		return nil, ErrMassExceeded
	}

	corrective := (1 - sum) / float64(n)
	for i := range next {
		next[i] += corrective
	}

	return next, nil
}

// converged reports whether the L2 distance between two successive rank
// vectors is within eps.
func converged(old, next []float64, eps float64) bool {
	var sum float64
	for i := range old {
		d := old[i] - next[i]
		sum += d * d
	}

	return math.Sqrt(sum) <= eps
}
