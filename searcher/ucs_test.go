package searcher_test

import (
	"strings"

	check "gopkg.in/check.v1"

	"github.com/mycok/skySearch/flightgraph"
	"github.com/mycok/skySearch/itinerary"
	"github.com/mycok/skySearch/searcher"
	"github.com/mycok/skySearch/searcher/searchertests"
)

// Initialize and register the uniform-cost suites (one per weight
// selector) to be executed by the check testing package.
var _ = check.Suite(new(uniformCostByPriceTestSuite))
var _ = check.Suite(new(uniformCostByTimeTestSuite))

// uniformCostByPriceTestSuite embeds and runs the BaseSuite test
// methods against the uniform-cost variant minimizing price, plus
// variant-specific trace assertions.
type uniformCostByPriceTestSuite struct {
	searchertests.BaseSuite
}

func (s *uniformCostByPriceTestSuite) SetUpSuite(c *check.C) {
	s.SetMode(searcher.UniformCost, flightgraph.Price)
}

// uniformCostByTimeTestSuite runs the shared suite against the
// uniform-cost variant minimizing flight time.
type uniformCostByTimeTestSuite struct {
	searchertests.BaseSuite
}

func (s *uniformCostByTimeTestSuite) SetUpSuite(c *check.C) {
	s.SetMode(searcher.UniformCost, flightgraph.ElapsedTime)
}

// fixture builds the 4-airport divergence network:
// A - B (time 1, price 5), B - C (time 1, price 5),
// A - C (time 5, price 1), C - D (time 1, price 1).
func (s *uniformCostByPriceTestSuite) fixture(c *check.C) *flightgraph.Graph {
	g, err := flightgraph.Build(
		[]string{"A", "B", "C", "D"},
		[]flightgraph.Route{
			{From: 0, To: 1, Time: 1, Price: 5},
			{From: 1, To: 2, Time: 1, Price: 5},
			{From: 0, To: 2, Time: 5, Price: 1},
			{From: 2, To: 3, Time: 1, Price: 1},
		},
	)
	c.Assert(err, check.IsNil)

	return g
}

func (s *uniformCostByPriceTestSuite) newSearcher(c *check.C, g *flightgraph.Graph, w flightgraph.Weight) *searcher.Searcher {
	runner, err := searcher.New(searcher.Config{
		Graph:  g,
		Mode:   searcher.UniformCost,
		Weight: w,
	})
	c.Assert(err, check.IsNil)

	return runner
}

func (s *uniformCostByPriceTestSuite) TestWeightSelectorChangesTheChosenRoute(c *check.C) {
	g := s.fixture(c)

	// Minimizing price keeps the cheap two-edge route.
	result, err := s.newSearcher(c, g, flightgraph.Price).Search("A", "D")
	c.Assert(err, check.IsNil)
	c.Assert(result.Reachable(), check.Equals, true)

	it, err := itinerary.FromWaypoint(result.Found)
	c.Assert(err, check.IsNil)
	c.Assert(it.PathString, check.Equals, "A → C → D")
	c.Assert(it.Price, check.Equals, 2.0)
	c.Assert(result.Found.Cost(), check.Equals, 2.0)

	// Minimizing time prefers a longer route than the fewest-hop one:
	// A → B → C → D at total time 3 beats A → C → D at total time 6.
	result, err = s.newSearcher(c, g, flightgraph.ElapsedTime).Search("A", "D")
	c.Assert(err, check.IsNil)
	c.Assert(result.Reachable(), check.Equals, true)

	it, err = itinerary.FromWaypoint(result.Found)
	c.Assert(err, check.IsNil)
	c.Assert(it.PathString, check.Equals, "A → B → C → D")
	c.Assert(it.ElapsedTime, check.Equals, 3.0)
	c.Assert(it.Stops, check.Equals, 2)
	c.Assert(result.Found.Cost(), check.Equals, 3.0)
}

func (s *uniformCostByPriceTestSuite) TestInitialSnapshotHasEmptyVisitedSet(c *check.C) {
	runner := s.newSearcher(c, s.fixture(c), flightgraph.Price)

	result, err := runner.Search("A", "D")
	c.Assert(err, check.IsNil)

	initial := result.Steps[0]
	c.Assert(initial.Visited, check.HasLen, 0)
	c.Assert(initial.Frontier, check.HasLen, 1)
	c.Assert(initial.Frontier[0].Cost(), check.Equals, 0.0)
	c.Assert(initial.Description, check.Matches, "starting uniform-cost search.*")
}

func (s *uniformCostByPriceTestSuite) TestVisitingSnapshotsCarryAccumulatedCost(c *check.C) {
	runner := s.newSearcher(c, s.fixture(c), flightgraph.Price)

	result, err := runner.Search("A", "D")
	c.Assert(err, check.IsNil)

	var popped []float64
	for _, step := range result.Steps {
		if strings.HasPrefix(step.Description, "visiting ") {
			c.Assert(step.Cost, check.Not(check.IsNil))
			popped = append(popped, *step.Cost)
		}
	}

	// Pops must occur in non-decreasing cost order.
	for i := 1; i < len(popped); i++ {
		c.Assert(popped[i-1] <= popped[i], check.Equals, true,
			check.Commentf("pop costs decreased: %v", popped))
	}
}

func (s *uniformCostByPriceTestSuite) TestLazyDeletionDiscardsStaleEntriesSilently(c *check.C) {
	// C is enqueued twice: directly from A at price 5 and via B at
	// price 2. The cheap copy is popped first; the stale price-5 copy
	// must be discarded without emitting any snapshot.
	g, err := flightgraph.Build(
		[]string{"A", "B", "C", "D"},
		[]flightgraph.Route{
			{From: 0, To: 1, Time: 1, Price: 1},  // A - B
			{From: 0, To: 2, Time: 1, Price: 5},  // A - C
			{From: 1, To: 2, Time: 1, Price: 1},  // B - C
			{From: 2, To: 3, Time: 1, Price: 10}, // C - D
		},
	)
	c.Assert(err, check.IsNil)

	runner := s.newSearcher(c, g, flightgraph.Price)

	result, err := runner.Search("A", "D")
	c.Assert(err, check.IsNil)
	c.Assert(result.Found.Cost(), check.Equals, 12.0)

	// Expected steps: starting, visit A, add B + C, visit B, add C,
	// visit C, add D, visit D, terminal success. The stale pop of C
	// contributes nothing.
	c.Assert(result.Steps, check.HasLen, 9)

	var visits []string
	for _, step := range result.Steps {
		if strings.HasPrefix(step.Description, "visiting ") {
			visits = append(visits, step.Processing)
		}
	}

	// Each vertex is visited exactly once even though C was popped twice.
	c.Assert(visits, check.DeepEquals, []string{"A", "B", "C", "D"})
}
