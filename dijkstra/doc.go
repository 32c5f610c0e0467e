// Package dijkstra computes single-source shortest paths on networks with
// non-negative arc costs.
//
// Strategies:
//
//   - Array scan (default): repeatedly scan the not-yet-finalized set for
//     the minimum tentative distance, remove it, relax its outgoing arcs.
//     O(V²+E) time, O(V) space. Wins on tiny or dense networks.
//   - Binary heap (WithHeap): a min-heap keyed by tentative distance with
//     lazy deletion — every improvement re-inserts, a finalized marker
//     discards stale extractions. O((V+E) log E) time. WithHeapConstructor
//     swaps in any heaps.Heap, e.g. the Fibonacci heap.
//
// The two strategies are observationally equivalent: identical Dist and
// Pred arrays for the same input. Which of several equal-cost shortest
// paths ends up in Pred is insertion-order dependent — callers must not
// rely on a canonical tie-break.
//
// Sentinels:
//
//   - Dist of an unreached node is network.Infinity(), the finite
//     cost-sum value, so all relaxation arithmetic stays finite.
//   - Pred of the source and of unreached nodes is the invalid id.
//
// Errors are reserved for real misuse (nil network, source out of range,
// negative cost); non-reachability is a normal result.
package dijkstra
