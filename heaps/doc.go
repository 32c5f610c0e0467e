// Package heaps provides the min-priority queues backing heap-accelerated
// shortest paths: a binary heap (the default) and a Fibonacci heap.
//
// Contract:
//
//   - Entries are (NodeID, cost) pairs ordered ascending by cost.
//   - Insert, FindMin, DeleteMin, Size, IsEmpty — nothing else. There is
//     deliberately no decrease-key: consumers re-insert a node whenever
//     its tentative cost improves and suppress stale extractions with a
//     finalized marker of their own (lazy deletion).
//   - NaN costs are unordered, never "less than": a NaN entry loses every
//     comparison instead of panicking or poisoning the heap order.
//
// Choosing an implementation:
//
//   - BinaryHeap: O(log n) Insert/DeleteMin, O(1) FindMin, contiguous
//     backing array. The right default for every workload in this module.
//   - FibonacciHeap: O(1) amortized Insert, O(log n) amortized DeleteMin
//     via lazy root consolidation. A theoretical win when inserts heavily
//     outnumber deletions; both satisfy the identical Heap contract, so
//     swapping them is a one-line change for the consumer.
package heaps
