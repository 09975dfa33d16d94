package frontier_test

import (
	"testing"

	check "gopkg.in/check.v1"

	"github.com/mycok/skySearch/flightgraph"
	"github.com/mycok/skySearch/searcher/frontier"
)

var _ = check.Suite(new(frontierTestSuite))

// Test registers the [check] library with the go testing library and enables
// the running of the test suite using the go testing library.
func Test(t *testing.T) {
	check.TestingT(t)
}

type frontierTestSuite struct{}

func (s *frontierTestSuite) waypoint(c *check.C, name string, cost float64) *flightgraph.Waypoint {
	g := flightgraph.New()

	v, err := g.AddVertex(name)
	c.Assert(err, check.IsNil)

	return flightgraph.NewWaypoint(v, nil, cost)
}

func (s *frontierTestSuite) TestFIFOPopsInInsertionOrder(c *check.C) {
	f := frontier.NewFIFO()

	for i, name := range []string{"ATL", "BOS", "DEN"} {
		f.Push(s.waypoint(c, name, float64(i)))
	}
	c.Assert(f.Len(), check.Equals, 3)

	var popped []string
	for f.Len() > 0 {
		wp, ok := f.Pop()
		c.Assert(ok, check.Equals, true)
		popped = append(popped, wp.Vertex().Name)
	}

	c.Assert(popped, check.DeepEquals, []string{"ATL", "BOS", "DEN"})

	_, ok := f.Pop()
	c.Assert(ok, check.Equals, false)
}

func (s *frontierTestSuite) TestByCostPopsInAscendingCostOrder(c *check.C) {
	f := frontier.NewByCost()

	costs := []float64{7, 1, 4, 2, 9}
	for i, cost := range costs {
		f.Push(s.waypoint(c, string(rune('A'+i)), cost))
	}

	var popped []float64
	for f.Len() > 0 {
		wp, ok := f.Pop()
		c.Assert(ok, check.Equals, true)
		popped = append(popped, wp.Cost())
	}

	c.Assert(popped, check.DeepEquals, []float64{1, 2, 4, 7, 9})
}

func (s *frontierTestSuite) TestByCostInterleavedPushesKeepAscendingOrder(c *check.C) {
	f := frontier.NewByCost()

	f.Push(s.waypoint(c, "ATL", 5))
	f.Push(s.waypoint(c, "BOS", 3))

	wp, ok := f.Pop()
	c.Assert(ok, check.Equals, true)
	c.Assert(wp.Cost(), check.Equals, 3.0)

	// A cheaper entry pushed after a pop must still be popped first.
	f.Push(s.waypoint(c, "DEN", 1))

	wp, ok = f.Pop()
	c.Assert(ok, check.Equals, true)
	c.Assert(wp.Cost(), check.Equals, 1.0)

	wp, ok = f.Pop()
	c.Assert(ok, check.Equals, true)
	c.Assert(wp.Cost(), check.Equals, 5.0)
}

func (s *frontierTestSuite) TestWaypointsReturnsIndependentCopy(c *check.C) {
	f := frontier.NewFIFO()
	f.Push(s.waypoint(c, "ATL", 0))
	f.Push(s.waypoint(c, "BOS", 1))

	captured := f.Waypoints()
	c.Assert(captured, check.HasLen, 2)

	// Mutating the frontier after capture must not change the copy.
	_, ok := f.Pop()
	c.Assert(ok, check.Equals, true)
	_, ok = f.Pop()
	c.Assert(ok, check.Equals, true)

	c.Assert(captured, check.HasLen, 2)
	c.Assert(captured[0].Vertex().Name, check.Equals, "ATL")
	c.Assert(captured[1].Vertex().Name, check.Equals, "BOS")
}
