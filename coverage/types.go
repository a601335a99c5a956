// This file declares the coverage result types and sentinel errors.
package coverage

import "errors"

// Sentinel errors returned by Compute.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to Compute.
	ErrNilGraph = errors.New("coverage: graph is nil")

	// ErrNegativeRadius indicates a radius below zero, which cannot cover
	// anything — not even the source itself — and is always a caller bug.
	ErrNegativeRadius = errors.New("coverage: radius must be non-negative")

	// ErrNegativeWeight indicates a negative edge weight was detected.
	// Dijkstra's invariants do not hold under negative weights, so Compute
	// fails fast before exploring anything.
	ErrNegativeWeight = errors.New("coverage: negative edge weight encountered")
)

// Set is a membership set of vertex ids.
type Set map[int]struct{}

// Contains reports whether id is in the set.
func (s Set) Contains(id int) bool {
	_, ok := s[id]

	return ok
}

// Map assigns to each vertex the set of vertices reachable from it within
// the radius. Every vertex covers at least itself (distance 0).
type Map map[int]Set
