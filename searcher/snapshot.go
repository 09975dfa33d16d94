package searcher

import (
	"time"

	"github.com/google/uuid"

	"github.com/mycok/skySearch/flightgraph"
)

// Snapshot is an immutable capture of the algorithm state at a single
// decision point. A full trace of snapshots is what the playback layer
// replays: every frontier and visited sequence is an independent copy
// taken at emission time, so later mutation of the search's working
// state never retroactively changes an already-emitted snapshot.
type Snapshot struct {
	// Processing is the name of the vertex being processed when the
	// snapshot was taken, or "" when no vertex was being processed.
	Processing string

	// Frontier holds the waypoints that were awaiting processing, in
	// processing order.
	Frontier []*flightgraph.Waypoint

	// Visited holds the names of the vertices visited so far, in the
	// order they were visited.
	Visited []string

	// Exploring holds the names of the vertices being explored (at most
	// one in this design).
	Exploring []string

	// Found is the terminal waypoint. It is set only on the terminal
	// success snapshot.
	Found *flightgraph.Waypoint

	// Cost is the accumulated cost at the processed vertex. It is set
	// only by the uniform-cost variant.
	Cost *float64

	// Description is a human-readable account of the step.
	Description string
}

// Sink receives snapshots in emission order while a search runs. It
// allows a caller to observe the trace as it is produced; the complete
// trace is always available on the returned Result regardless.
type Sink interface {
	// Record is invoked once per emitted snapshot.
	Record(s Snapshot)
}

// Result holds the outcome of a single search run: the full replayable
// trace plus the terminal waypoint when the destination was reached.
type Result struct {
	// ID uniquely identifies the search run.
	ID uuid.UUID

	// Mode is the search variant that produced the result.
	Mode Mode

	// Weight is the edge weight selector the run minimized. It is only
	// meaningful for uniform-cost runs.
	Weight flightgraph.Weight

	// Steps is the ordered, fully materialized trace. It supports
	// random access, so callers may pace playback however they like.
	Steps []Snapshot

	// Found is the terminal waypoint, or nil when the destination was
	// unreachable.
	Found *flightgraph.Waypoint

	// StartedAt is the time the run started.
	StartedAt time.Time

	// Duration is the total run time.
	Duration time.Duration
}

// Reachable reports whether the run reached the destination.
func (r *Result) Reachable() bool {
	return r.Found != nil
}

// trace accumulates snapshots for a single run and forwards each one to
// an optional sink.
type trace struct {
	steps []Snapshot
	sink  Sink
}

func (t *trace) record(s Snapshot) {
	t.steps = append(t.steps, s)

	if t.sink != nil {
		t.sink.Record(s)
	}
}
