package flightgraph

import "errors"

var (
	// ErrNotFound is returned when an airport lookup by name or by
	// positional index does not match any vertex in the graph.
	ErrNotFound = errors.New("airport not found")

	// ErrDuplicateVertex is returned when a vertex is added with a name
	// that is already present in the graph. Duplicate names would make
	// lookups ambiguous, so they are rejected at build time.
	ErrDuplicateVertex = errors.New("duplicate airport name")

	// ErrNegativeWeight is returned when an edge is added with a
	// negative time or price weight.
	ErrNegativeWeight = errors.New("negative edge weights not supported")
)
