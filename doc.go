// Package networks is a small-graph algorithms engine built around a
// compact-star adjacency representation: build the network once from an
// arc list, then share it read-only across traversals, shortest-path
// queries, and rank propagation.
//
// Everything is organized under focused subpackages:
//
//	core/        — NodeID, Arc, and the Network interface every algorithm consumes
//	compactstar/ — the immutable forward/reverse star representation and its queries
//	collection/  — the FIFO/LIFO frontier abstraction behind the traversal loop
//	search/      — one generic traversal loop, specialized to BFS and DFS
//	heaps/       — binary and Fibonacci min-heaps behind a shared interface
//	dijkstra/    — single-source shortest paths, array-scan or heap strategy
//	pagerank/    — rank power iteration with dangling-mass redistribution
//	ingest/      — regex-driven edge-file parsing and name interning
//	cmd/networks — the command-line front end tying it all together
//
// Quick example:
//
//	arcs := []core.Arc{{From: 0, To: 1, Cost: 2}, {From: 1, To: 2, Cost: 3}}
//	network, err := compactstar.Build(3, arcs)
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := dijkstra.ShortestPaths(network, 0)
//
// Networks are immutable after Build, so a single instance may serve any
// number of concurrent algorithm calls; each call keeps its working state
// private.
package networks
