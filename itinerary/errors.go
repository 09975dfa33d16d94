package itinerary

import "errors"

var (
	// ErrNoRoute is returned when a summary is requested for a nil
	// terminal waypoint, i.e. a search that never reached its
	// destination.
	ErrNoRoute = errors.New("no route found")

	// ErrBrokenPath is returned when two consecutive path vertices are
	// not connected by an edge. A waypoint produced by a search over an
	// unmodified graph can never trigger it.
	ErrBrokenPath = errors.New("no edge between consecutive path vertices")
)
