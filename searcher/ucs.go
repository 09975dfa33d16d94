package searcher

import (
	"fmt"
	"strings"

	"github.com/mycok/skySearch/flightgraph"
	"github.com/mycok/skySearch/searcher/frontier"
)

// runUniformCost finds a minimum-total-weight path from start to dest,
// where w selects the edge weight field to minimize. A vertex may be
// pushed onto the frontier several times via different paths; only the
// first pop of a vertex (necessarily the minimum-cost one, since pops
// never decrease in cost) is acted on, and stale later pops are
// discarded silently without emitting a snapshot.
func runUniformCost(start, dest *flightgraph.Vertex, w flightgraph.Weight, tr *trace) *flightgraph.Waypoint {
	pending := frontier.NewByCost()
	visited := newVisitSet()

	pending.Push(flightgraph.NewWaypoint(start, nil, 0))

	tr.record(Snapshot{
		Frontier:    pending.Waypoints(),
		Visited:     visited.names(),
		Description: fmt.Sprintf("starting uniform-cost search from %s, minimizing %s", start.Name, w),
	})

	for pending.Len() > 0 {
		current, _ := pending.Pop()
		v := current.Vertex()

		// Lazy deletion of stale frontier entries.
		if visited.contains(v.Name) {
			continue
		}

		visited.add(v.Name)
		cost := current.Cost()

		tr.record(Snapshot{
			Processing:  v.Name,
			Frontier:    pending.Waypoints(),
			Visited:     visited.names(),
			Exploring:   []string{v.Name},
			Cost:        &cost,
			Description: fmt.Sprintf("visiting %s at total %s %g", v.Name, w, cost),
		})

		// The first pop of the destination is guaranteed minimum-cost
		// because pops occur in non-decreasing cost order.
		if v == dest {
			tr.record(Snapshot{
				Processing:  v.Name,
				Frontier:    pending.Waypoints(),
				Visited:     visited.names(),
				Found:       current,
				Cost:        &cost,
				Description: fmt.Sprintf("reached %s at minimum total %s %g", v.Name, w, cost),
			})

			return current
		}

		var added []string
		for _, e := range v.Edges() {
			if visited.contains(e.To.Name) {
				continue
			}

			childCost := cost + w.Of(e)
			pending.Push(flightgraph.NewWaypoint(e.To, current, childCost))
			added = append(added, fmt.Sprintf("%s (%g)", e.To.Name, childCost))
		}

		if len(added) > 0 {
			tr.record(Snapshot{
				Processing:  v.Name,
				Frontier:    pending.Waypoints(),
				Visited:     visited.names(),
				Exploring:   []string{v.Name},
				Cost:        &cost,
				Description: fmt.Sprintf("added to queue: %s", strings.Join(added, ", ")),
			})
		}
	}

	tr.record(Snapshot{
		Frontier:    pending.Waypoints(),
		Visited:     visited.names(),
		Description: fmt.Sprintf("frontier exhausted: %s is unreachable from %s", dest.Name, start.Name),
	})

	return nil
}
