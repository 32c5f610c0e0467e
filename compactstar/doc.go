// Package compactstar implements the compact-star (forward/reverse star)
// representation of a directed, cost- and capacity-weighted network.
//
// Overview:
//
//   - Build(numNodes, arcs) copies and stably sorts the arc list by source
//     id, flattens it into index-aligned tail/head/costs/capacities arrays,
//     and derives two range indexes: point (arcs grouped by source) and
//     rpoint/trace (arc indices grouped by target).
//   - The resulting CompactStar is immutable. It satisfies core.Network and
//     may be shared by reference across concurrent algorithm calls with no
//     locking, because nothing ever mutates it after Build returns.
//
// Why compact star:
//
//   - Neighbor enumeration is a contiguous O(degree) scan, with no pointer
//     chasing and no per-node allocation inside the structure.
//   - Pair lookups (Cost, Capacity) are O(degree) linear scans of one
//     range. That is deliberate: they are only used inside relaxation
//     inner loops, never as a primary access path.
//
// Sentinels:
//
//   - InvalidID() == NodeID(NumNodes()): "no node". Predecessor arrays use
//     it for the start node and for unreached nodes.
//   - Infinity() == sum of all arc costs: a finite "infinity" that no
//     simple path can exceed, keeping relaxation arithmetic finite-safe.
//
// The reverse index (rpoint/trace, surfaced via InArcIndices and ArcAt) is
// built during construction but consumed by no in-scope algorithm. It is
// kept as the documented extension point for reverse-traversal and flow
// work, which need O(indegree) access to incoming arcs.
package compactstar
