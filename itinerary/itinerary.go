/*
	itinerary package computes the travel summary for a completed search
	run: the ordered airport path reconstructed from the terminal
	waypoint, its display rendering and the aggregate flight time, price
	and stop-over count.
*/

package itinerary

import (
	"fmt"
	"strings"

	"github.com/mycok/skySearch/flightgraph"
)

// Itinerary summarizes the route described by a terminal search
// waypoint.
type Itinerary struct {
	// Path is the ordered airport sequence from origin to destination.
	Path []*flightgraph.Vertex

	// PathString renders the path as "A → B → C".
	PathString string

	// ElapsedTime is the summed flight time over the path's edges.
	ElapsedTime float64

	// Price is the summed ticket price over the path's edges.
	Price float64

	// Stops is the number of intermediate airports; a direct flight has
	// zero stops.
	Stops int
}

// FromWaypoint builds the itinerary for the route described by a
// terminal search waypoint. A nil waypoint (unreachable destination)
// yields ErrNoRoute; callers must check their search result before
// requesting a summary.
func FromWaypoint(wp *flightgraph.Waypoint) (*Itinerary, error) {
	if wp == nil {
		return nil, ErrNoRoute
	}

	path := wp.Path()
	it := &Itinerary{Path: path}

	var sb strings.Builder
	for i, v := range path {
		if i > 0 {
			sb.WriteString(" → ")
		}
		sb.WriteString(v.Name)
	}
	it.PathString = sb.String()

	for i := 0; i < len(path)-1; i++ {
		e, exists := path[i].EdgeTo(path[i+1])
		if !exists {
			return nil, fmt.Errorf("%s -> %s: %w", path[i].Name, path[i+1].Name, ErrBrokenPath)
		}

		it.ElapsedTime += e.Time
		it.Price += e.Price
	}

	// A single-vertex path (start equals destination) has no
	// stop-overs; clamp instead of reporting len(path)-2 = -1.
	if it.Stops = len(path) - 2; it.Stops < 0 {
		it.Stops = 0
	}

	return it, nil
}
