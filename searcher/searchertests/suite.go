/*
	searchertests package defines a set of re-usable search-trace tests
	that can be executed against any configured search mode. Both search
	variants must satisfy the same trace contract: optimal terminal cost,
	deterministic repeated runs, exactly one terminal snapshot per run
	and a failure trace for unreachable destinations.
*/

package searchertests

import (
	"math"

	check "gopkg.in/check.v1"

	"github.com/mycok/skySearch/flightgraph"
	"github.com/mycok/skySearch/itinerary"
	"github.com/mycok/skySearch/searcher"
)

// BaseSuite defines a set of re-usable search-trace tests that can be
// executed against any configured search mode.
type BaseSuite struct {
	mode   searcher.Mode
	weight flightgraph.Weight
}

// SetMode configures the test-suite to run all tests using the provided
// search mode and weight selector.
func (s *BaseSuite) SetMode(mode searcher.Mode, weight flightgraph.Weight) {
	s.mode = mode
	s.weight = weight
}

// TestReturnsMinimumCostPath verifies the variant's optimality claim
// for every reachable airport pair of every fixture by comparing the
// terminal waypoint cost against a brute-force enumeration of all
// simple paths.
func (s *BaseSuite) TestReturnsMinimumCostPath(c *check.C) {
	for _, g := range s.fixtures(c) {
		runner := s.newSearcher(c, g)

		for _, start := range g.Vertices() {
			for _, dest := range g.Vertices() {
				expected, reachable := s.minCostByEnumeration(start, dest)

				result, err := runner.Search(start.Name, dest.Name)
				c.Assert(err, check.IsNil)

				comment := check.Commentf("%s: %s -> %s", s.mode, start.Name, dest.Name)
				c.Assert(result.Reachable(), check.Equals, reachable, comment)

				if reachable {
					c.Assert(result.Found.Cost(), check.Equals, expected, comment)
				}
			}
		}
	}
}

// TestRepeatedRunsAreIdentical verifies that re-running a search over
// an unmodified graph reproduces the exact same trace and terminal
// waypoint.
func (s *BaseSuite) TestRepeatedRunsAreIdentical(c *check.C) {
	for _, g := range s.fixtures(c) {
		runner := s.newSearcher(c, g)

		for _, dest := range g.Vertices() {
			start := g.Vertices()[0]

			first, err := runner.Search(start.Name, dest.Name)
			c.Assert(err, check.IsNil)
			second, err := runner.Search(start.Name, dest.Name)
			c.Assert(err, check.IsNil)

			comment := check.Commentf("%s: %s -> %s", s.mode, start.Name, dest.Name)
			c.Assert(second.Steps, check.DeepEquals, first.Steps, comment)
			c.Assert(second.Found, check.DeepEquals, first.Found, comment)
		}
	}
}

// TestEmitsExactlyOneTerminalSnapshot verifies that every run ends with
// exactly one terminal snapshot: either a success snapshot carrying the
// found waypoint or a failure snapshot with an empty frontier.
func (s *BaseSuite) TestEmitsExactlyOneTerminalSnapshot(c *check.C) {
	for _, g := range s.fixtures(c) {
		runner := s.newSearcher(c, g)

		for _, start := range g.Vertices() {
			for _, dest := range g.Vertices() {
				result, err := runner.Search(start.Name, dest.Name)
				c.Assert(err, check.IsNil)

				comment := check.Commentf("%s: %s -> %s", s.mode, start.Name, dest.Name)
				c.Assert(len(result.Steps) > 0, check.Equals, true, comment)

				var successSnapshots int
				for _, step := range result.Steps {
					if step.Found != nil {
						successSnapshots++
					}
				}

				last := result.Steps[len(result.Steps)-1]
				if result.Reachable() {
					c.Assert(successSnapshots, check.Equals, 1, comment)
					c.Assert(last.Found, check.Equals, result.Found, comment)
				} else {
					c.Assert(successSnapshots, check.Equals, 0, comment)
					c.Assert(last.Frontier, check.HasLen, 0, comment)
				}
			}
		}
	}
}

// TestMetricsRoundTrip verifies that the itinerary computed for a
// terminal waypoint matches an edge-by-edge walk of its path.
func (s *BaseSuite) TestMetricsRoundTrip(c *check.C) {
	for _, g := range s.fixtures(c) {
		runner := s.newSearcher(c, g)
		start := g.Vertices()[0]

		for _, dest := range g.Vertices() {
			result, err := runner.Search(start.Name, dest.Name)
			c.Assert(err, check.IsNil)

			if !result.Reachable() {
				continue
			}

			it, err := itinerary.FromWaypoint(result.Found)
			c.Assert(err, check.IsNil)

			var wantTime, wantPrice float64
			for i := 0; i < len(it.Path)-1; i++ {
				e, exists := it.Path[i].EdgeTo(it.Path[i+1])
				c.Assert(exists, check.Equals, true)

				wantTime += e.Time
				wantPrice += e.Price
			}

			comment := check.Commentf("%s: %s -> %s", s.mode, start.Name, dest.Name)
			c.Assert(it.ElapsedTime, check.Equals, wantTime, comment)
			c.Assert(it.Price, check.Equals, wantPrice, comment)

			if len(it.Path) >= 2 {
				c.Assert(it.Stops, check.Equals, len(it.Path)-2, comment)
			} else {
				c.Assert(it.Stops, check.Equals, 0, comment)
			}
		}
	}
}

// TestUnreachableDestinationYieldsFailureTrace verifies that a vertex
// with zero edges always produces a failure trace, regardless of start.
func (s *BaseSuite) TestUnreachableDestinationYieldsFailureTrace(c *check.C) {
	g := s.isolatedFixture(c)
	runner := s.newSearcher(c, g)

	for _, start := range g.Vertices() {
		if start.Name == "ISL" {
			continue
		}

		result, err := runner.Search(start.Name, "ISL")
		c.Assert(err, check.IsNil)

		comment := check.Commentf("%s: %s -> ISL", s.mode, start.Name)
		c.Assert(result.Found, check.IsNil, comment)

		last := result.Steps[len(result.Steps)-1]
		c.Assert(last.Found, check.IsNil, comment)
		c.Assert(last.Frontier, check.HasLen, 0, comment)
	}
}

// TestStartEqualsDestination verifies the trivial single-vertex route.
func (s *BaseSuite) TestStartEqualsDestination(c *check.C) {
	g := s.divergenceFixture(c)
	runner := s.newSearcher(c, g)

	result, err := runner.Search("A", "A")
	c.Assert(err, check.IsNil)

	c.Assert(result.Reachable(), check.Equals, true)
	c.Assert(result.Found.Cost(), check.Equals, 0.0)

	path := result.Found.Path()
	c.Assert(path, check.HasLen, 1)
	c.Assert(path[0].Name, check.Equals, "A")

	it, err := itinerary.FromWaypoint(result.Found)
	c.Assert(err, check.IsNil)
	c.Assert(it.ElapsedTime, check.Equals, 0.0)
	c.Assert(it.Price, check.Equals, 0.0)
	c.Assert(it.Stops, check.Equals, 0)
}

// TestSnapshotsAreImmutableCaptures verifies that snapshots captured
// early in a run are not retroactively changed by later search state
// mutation: each visited sequence must be a strict prefix-or-equal
// progression.
func (s *BaseSuite) TestSnapshotsAreImmutableCaptures(c *check.C) {
	g := s.ringFixture(c)
	runner := s.newSearcher(c, g)

	result, err := runner.Search("R0", "R3")
	c.Assert(err, check.IsNil)

	for i := 1; i < len(result.Steps); i++ {
		prev, curr := result.Steps[i-1], result.Steps[i]

		comment := check.Commentf("%s: step %d", s.mode, i)
		c.Assert(len(prev.Visited) <= len(curr.Visited), check.Equals, true, comment)
		c.Assert(curr.Visited[:len(prev.Visited)], check.DeepEquals, prev.Visited, comment)
	}
}

func (s *BaseSuite) newSearcher(c *check.C, g *flightgraph.Graph) *searcher.Searcher {
	runner, err := searcher.New(searcher.Config{
		Graph:  g,
		Mode:   s.mode,
		Weight: s.weight,
	})
	c.Assert(err, check.IsNil)

	return runner
}

func (s *BaseSuite) fixtures(c *check.C) []*flightgraph.Graph {
	return []*flightgraph.Graph{
		s.divergenceFixture(c),
		s.ringFixture(c),
		s.isolatedFixture(c),
	}
}

// divergenceFixture builds the 4-airport network whose fewest-hop,
// cheapest and fastest routes differ, exercising the gap between the
// two variants.
func (s *BaseSuite) divergenceFixture(c *check.C) *flightgraph.Graph {
	g, err := flightgraph.Build(
		[]string{"A", "B", "C", "D"},
		[]flightgraph.Route{
			{From: 0, To: 1, Time: 1, Price: 5}, // A - B
			{From: 1, To: 2, Time: 1, Price: 5}, // B - C
			{From: 0, To: 2, Time: 5, Price: 1}, // A - C
			{From: 2, To: 3, Time: 1, Price: 1}, // C - D
		},
	)
	c.Assert(err, check.IsNil)

	return g
}

// ringFixture builds a 6-airport ring with one chord, so that most
// pairs are connected by two competing routes.
func (s *BaseSuite) ringFixture(c *check.C) *flightgraph.Graph {
	g, err := flightgraph.Build(
		[]string{"R0", "R1", "R2", "R3", "R4", "R5"},
		[]flightgraph.Route{
			{From: 0, To: 1, Time: 1, Price: 9},
			{From: 1, To: 2, Time: 2, Price: 8},
			{From: 2, To: 3, Time: 3, Price: 7},
			{From: 3, To: 4, Time: 4, Price: 6},
			{From: 4, To: 5, Time: 5, Price: 5},
			{From: 5, To: 0, Time: 6, Price: 4},
			{From: 1, To: 4, Time: 1, Price: 1}, // chord
		},
	)
	c.Assert(err, check.IsNil)

	return g
}

// isolatedFixture builds a small connected network plus one airport
// with zero edges.
func (s *BaseSuite) isolatedFixture(c *check.C) *flightgraph.Graph {
	g, err := flightgraph.Build(
		[]string{"A", "B", "C", "ISL"},
		[]flightgraph.Route{
			{From: 0, To: 1, Time: 1, Price: 2},
			{From: 1, To: 2, Time: 3, Price: 4},
		},
	)
	c.Assert(err, check.IsNil)

	return g
}

func (s *BaseSuite) edgeCost(e *flightgraph.Edge) float64 {
	if s.mode == searcher.BreadthFirst {
		return 1
	}

	return s.weight.Of(e)
}

// minCostByEnumeration computes the minimum start -> dest path cost
// under the suite's cost function by enumerating every simple path.
// The fixtures are small enough for the exponential walk to stay cheap.
func (s *BaseSuite) minCostByEnumeration(start, dest *flightgraph.Vertex) (float64, bool) {
	onPath := map[string]bool{start.Name: true}

	return s.enumerate(start, dest, onPath, 0)
}

func (s *BaseSuite) enumerate(v, dest *flightgraph.Vertex, onPath map[string]bool, costSoFar float64) (float64, bool) {
	if v == dest {
		return costSoFar, true
	}

	best, found := math.Inf(1), false
	for _, e := range v.Edges() {
		if onPath[e.To.Name] {
			continue
		}

		onPath[e.To.Name] = true
		if cost, reachable := s.enumerate(e.To, dest, onPath, costSoFar+s.edgeCost(e)); reachable {
			found = true
			if cost < best {
				best = cost
			}
		}
		delete(onPath, e.To.Name)
	}

	return best, found
}
