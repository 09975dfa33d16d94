/*
	searcher package implements the two instrumented search variants that
	animate the flight network: breadth-first search (fewest hops) and
	uniform-cost search (minimum total time or price). Both variants run
	synchronously to completion and emit a replayable trace of snapshots,
	one per decision point, alongside the terminal waypoint.
*/

package searcher

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mycok/skySearch/flightgraph"
)

// Mode selects the search variant a searcher runs.
type Mode int

const (
	// BreadthFirst finds a path with the fewest edges, ignoring
	// weights.
	BreadthFirst Mode = iota

	// UniformCost finds a path with the minimum summed edge weight.
	UniformCost
)

// String returns the external tag for the search mode.
func (m Mode) String() string {
	if m == UniformCost {
		return "ucs"
	}

	return "bfs"
}

// ParseMode maps an external mode tag to a search Mode.
func ParseMode(tag string) (Mode, error) {
	switch tag {
	case "bfs":
		return BreadthFirst, nil
	case "ucs":
		return UniformCost, nil
	}

	return 0, fmt.Errorf("unrecognized search mode %q", tag)
}

// Searcher runs instrumented searches over a flight graph. The graph is
// treated as read-only: all mutation during a run is confined to the
// run's own frontier, visited set and newly created waypoints.
type Searcher struct {
	config Config
}

// New creates and returns a searcher for the provided configuration.
func New(config Config) (*Searcher, error) {
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("searcher: config validation failed: %w", err)
	}

	return &Searcher{config: config}, nil
}

// Search runs the configured variant from the start airport to the
// destination airport and returns the full trace plus the terminal
// waypoint. Unknown airport names are rejected before any snapshot is
// produced. An unreachable destination is not an error: the returned
// result carries a terminal failure snapshot and a nil Found waypoint.
func (s *Searcher) Search(startName, destName string) (*Result, error) {
	start, err := s.config.Graph.VertexByName(startName)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	dest, err := s.config.Graph.VertexByName(destName)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	startedAt := s.config.Clock.Now()
	tr := &trace{sink: s.config.Sink}

	var found *flightgraph.Waypoint
	switch s.config.Mode {
	case UniformCost:
		found = runUniformCost(start, dest, s.config.Weight, tr)
	default:
		found = runBreadthFirst(start, dest, tr)
	}

	result := &Result{
		ID:        uuid.New(),
		Mode:      s.config.Mode,
		Weight:    s.config.Weight,
		Steps:     tr.steps,
		Found:     found,
		StartedAt: startedAt,
		Duration:  s.config.Clock.Now().Sub(startedAt),
	}

	s.config.Logger.WithFields(logrus.Fields{
		"run_id":      result.ID,
		"mode":        result.Mode.String(),
		"start":       startName,
		"destination": destName,
		"steps":       len(result.Steps),
		"reachable":   result.Reachable(),
		"duration":    result.Duration,
	}).Info("search run complete")

	return result, nil
}
