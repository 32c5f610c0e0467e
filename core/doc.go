// Package core holds the shared vocabulary of the networks module:
//
//   - NodeID — dense node identifier with a reserved invalid sentinel.
//   - Arc    — directed (from, to, cost, capacity) tuple.
//   - Network — the read-only graph contract consumed by every algorithm
//     package (search, dijkstra, pagerank).
//
// core contains no algorithms and no mutable state. The canonical Network
// implementation lives in package compactstar; algorithm packages accept
// the interface so alternative representations can be swapped in without
// touching them.
package core
