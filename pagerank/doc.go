// Package pagerank computes PageRank-style rank propagation over a
// core.Network by power iteration with convergence detection.
//
// Model:
//
//   - Ranks start uniform at 1/n.
//   - Each iteration, node i pushes (1-beta)·rank(i)/outdeg(i) along every
//     outgoing arc. Arc costs and capacities play no role; only the
//     adjacency structure does.
//   - Dangling nodes (no outgoing arcs) push nothing. Their mass is not
//     redirected along arcs — a deliberate leak, not an oversight.
//   - After summing, the shortfall 1-Σ is spread evenly across all nodes,
//     covering both the teleport share and the dangling leak, so every
//     vector sums to ≈1.0.
//   - Iteration stops when ‖ranks_t − ranks_{t+1}‖₂ ≤ eps.
//
// Parameters (functional options, validated on use):
//
//   - WithBeta: teleport probability, strictly in (0,1), default 0.2.
//     Never run with beta effectively 0 in production: rounding can push
//     the mass sum above 1.0, which aborts with ErrMassExceeded.
//   - WithEps: convergence tolerance, positive, default 1e-6.
//
// The computation is deterministic: identical network and parameters give
// bit-identical ranks on every run.
package pagerank
