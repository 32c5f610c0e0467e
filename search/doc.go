// Package search implements breadth-first and depth-first traversal over
// a core.Network as two faces of one algorithm.
//
// Overview:
//
//   - Traverse(network, frontier, start) is the single search loop,
//     written against the collection.Collection interface. It peeks the
//     frontier's current node, discovers at most one new neighbor per
//     iteration, and pops a node only once its adjacency is exhausted.
//   - BFS hands the loop a Queue (FIFO), DFS hands it a Stack (LIFO).
//     Nothing else differs, so the two disciplines cannot diverge in
//     anything but discovery order.
//
// Results:
//
//   - Pred[v]: discovering node, or the network's invalid sentinel for
//     the start and for unreached nodes.
//   - Order[v]: discovery number, start = 0. Unreached nodes keep a zero
//     slot — use Reached or Pred, never Order, to test reachability.
//   - PathTo reconstructs the discovery path to any reached node.
//
// Guarantees:
//
//   - BFS and DFS from the same start always agree on the set of reached
//     nodes; predecessors and order may legitimately differ wherever
//     multiple discovery paths exist.
//   - Unreached nodes are a normal outcome, never an error.
package search
