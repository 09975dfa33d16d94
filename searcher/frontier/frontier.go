/*
	frontier package provides the pending-waypoint collections used by
	the search variants: a FIFO frontier for the breadth-first variant
	and a cost-ordered frontier for the uniform-cost variant.
*/

package frontier

import (
	"sort"

	"github.com/mycok/skySearch/flightgraph"
)

// Static and compile-time checks to ensure both frontier types implement
// the Frontier interface.
var _ Frontier = (*fifo)(nil)
var _ Frontier = (*byCost)(nil)

// Frontier holds waypoints that have been discovered but not yet
// processed. Implementations are not safe for concurrent use; searches
// run synchronously on a single goroutine.
type Frontier interface {
	// Push adds a waypoint to the frontier.
	Push(wp *flightgraph.Waypoint)

	// Pop removes and returns the next waypoint to process. It returns
	// false when the frontier is empty.
	Pop() (*flightgraph.Waypoint, bool)

	// Len returns the number of pending waypoints.
	Len() int

	// Waypoints returns a copy of the pending waypoints in processing
	// order. The copy is safe to retain in trace snapshots since the
	// waypoints themselves are immutable.
	Waypoints() []*flightgraph.Waypoint
}

// fifo processes waypoints in insertion order.
type fifo struct {
	wps []*flightgraph.Waypoint
}

// NewFIFO creates a frontier that pops waypoints in insertion order.
func NewFIFO() Frontier {
	return &fifo{}
}

// Push adds a waypoint at the tail of the frontier.
func (f *fifo) Push(wp *flightgraph.Waypoint) {
	f.wps = append(f.wps, wp)
}

// Pop removes and returns the oldest-inserted waypoint.
func (f *fifo) Pop() (*flightgraph.Waypoint, bool) {
	if len(f.wps) == 0 {
		return nil, false
	}

	wp := f.wps[0]
	f.wps = f.wps[1:]

	return wp, true
}

// Len returns the number of pending waypoints.
func (f *fifo) Len() int {
	return len(f.wps)
}

// Waypoints returns a copy of the pending waypoints in pop order.
func (f *fifo) Waypoints() []*flightgraph.Waypoint {
	cp := make([]*flightgraph.Waypoint, len(f.wps))
	copy(cp, f.wps)

	return cp
}

// byCost processes waypoints in ascending accumulated-cost order. The
// relative order of equal-cost waypoints is unspecified; the only
// guarantee is that pops never decrease in cost.
type byCost struct {
	wps []*flightgraph.Waypoint
}

// NewByCost creates a frontier that pops waypoints in ascending
// accumulated-cost order.
func NewByCost() Frontier {
	return &byCost{}
}

// Push adds a waypoint to the frontier. Duplicate entries for the same
// vertex are allowed; the search variants resolve them via lazy
// deletion on pop.
func (f *byCost) Push(wp *flightgraph.Waypoint) {
	f.wps = append(f.wps, wp)
}

// Pop re-sorts the pending waypoints by ascending cost, then removes
// and returns the minimum-cost one.
func (f *byCost) Pop() (*flightgraph.Waypoint, bool) {
	if len(f.wps) == 0 {
		return nil, false
	}

	sort.Slice(f.wps, func(i, j int) bool {
		return f.wps[i].Cost() < f.wps[j].Cost()
	})

	wp := f.wps[0]
	f.wps = f.wps[1:]

	return wp, true
}

// Len returns the number of pending waypoints.
func (f *byCost) Len() int {
	return len(f.wps)
}

// Waypoints returns a copy of the pending waypoints, ordered as of the
// most recent re-sort.
func (f *byCost) Waypoints() []*flightgraph.Waypoint {
	cp := make([]*flightgraph.Waypoint, len(f.wps))
	copy(cp, f.wps)

	return cp
}
