package searcher

import (
	"fmt"
	"strings"

	"github.com/mycok/skySearch/flightgraph"
	"github.com/mycok/skySearch/searcher/frontier"
)

// runBreadthFirst finds a fewest-hop path from start to dest, emitting a
// trace snapshot at every decision point. Vertices are marked visited
// the moment they are discovered, which prevents duplicate enqueues
// from parallel paths at the same frontier depth. Among equal-length
// paths, the first one discovered in edge insertion order wins; that
// tie-break is deterministic but carries no optimality meaning.
func runBreadthFirst(start, dest *flightgraph.Vertex, tr *trace) *flightgraph.Waypoint {
	pending := frontier.NewFIFO()
	visited := newVisitSet()

	visited.add(start.Name)
	pending.Push(flightgraph.NewWaypoint(start, nil, 0))

	tr.record(Snapshot{
		Frontier:    pending.Waypoints(),
		Visited:     visited.names(),
		Description: fmt.Sprintf("starting breadth-first search from %s", start.Name),
	})

	for pending.Len() > 0 {
		current, _ := pending.Pop()
		v := current.Vertex()

		tr.record(Snapshot{
			Processing:  v.Name,
			Frontier:    pending.Waypoints(),
			Visited:     visited.names(),
			Exploring:   []string{v.Name},
			Description: fmt.Sprintf("visiting %s", v.Name),
		})

		// Success is reported as soon as the destination is dequeued,
		// not when it is first enqueued.
		if v == dest {
			tr.record(Snapshot{
				Processing:  v.Name,
				Frontier:    pending.Waypoints(),
				Visited:     visited.names(),
				Found:       current,
				Description: fmt.Sprintf("reached %s after %d hops", v.Name, int(current.Cost())),
			})

			return current
		}

		var added []string
		for _, e := range v.Edges() {
			if visited.contains(e.To.Name) {
				continue
			}

			visited.add(e.To.Name)
			pending.Push(flightgraph.NewWaypoint(e.To, current, current.Cost()+1))
			added = append(added, e.To.Name)
		}

		// Emit nothing when no new neighbor was enqueued; it would be
		// empty-progress noise during playback.
		if len(added) > 0 {
			tr.record(Snapshot{
				Processing:  v.Name,
				Frontier:    pending.Waypoints(),
				Visited:     visited.names(),
				Exploring:   []string{v.Name},
				Description: fmt.Sprintf("added unvisited neighbors of %s: %s", v.Name, strings.Join(added, ", ")),
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
