// Package compactstar provides sentinel errors for compact-star
// construction.
package compactstar

import "errors"

// Sentinel errors returned by Build.
var (
	// ErrNegativeNodeCount indicates a negative node count was supplied.
	ErrNegativeNodeCount = errors.New("compactstar: node count must be non-negative")

	// ErrNodeOutOfRange indicates an arc endpoint outside [0, numNodes).
	// Node ids must be dense and contiguous; an out-of-range endpoint means
	// the caller's name→id mapping is broken, and silently building a
	// corrupt index is never acceptable.
	ErrNodeOutOfRange = errors.New("compactstar: arc endpoint outside contiguous id range")

	// ErrArcIndexOutOfRange indicates an arc index outside [0, NumArcs()).
	ErrArcIndexOutOfRange = errors.New("compactstar: arc index out of range")
)
