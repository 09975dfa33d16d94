package searcher_test

import (
	"errors"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/juju/clock/testclock"
	check "gopkg.in/check.v1"

	"github.com/mycok/skySearch/flightgraph"
	"github.com/mycok/skySearch/searcher"
	"github.com/mycok/skySearch/searcher/mocks"
)

var _ = check.Suite(new(searcherTestSuite))

type searcherTestSuite struct {
	g *flightgraph.Graph
}

func (s *searcherTestSuite) SetUpTest(c *check.C) {
	g, err := flightgraph.Build(
		[]string{"ATL", "BOS", "DEN"},
		[]flightgraph.Route{
			{From: 0, To: 1, Time: 2, Price: 100},
			{From: 1, To: 2, Time: 4, Price: 150},
		},
	)
	c.Assert(err, check.IsNil)

	s.g = g
}

func (s *searcherTestSuite) TestConfigValidation(c *check.C) {
	_, err := searcher.New(searcher.Config{})
	c.Assert(err, check.ErrorMatches, `(?ms).*graph not provided.*`)

	_, err = searcher.New(searcher.Config{Graph: s.g, Mode: searcher.Mode(42)})
	c.Assert(err, check.ErrorMatches, `(?ms).*unrecognized search mode.*`)

	_, err = searcher.New(searcher.Config{Graph: s.g, Weight: flightgraph.Weight(42)})
	c.Assert(err, check.ErrorMatches, `(?ms).*unrecognized weight selector.*`)

	// Clock and logger are optional and default silently.
	_, err = searcher.New(searcher.Config{Graph: s.g})
	c.Assert(err, check.IsNil)
}

func (s *searcherTestSuite) TestSearchRejectsUnknownAirports(c *check.C) {
	runner, err := searcher.New(searcher.Config{Graph: s.g})
	c.Assert(err, check.IsNil)

	_, err = runner.Search("XXX", "DEN")
	c.Assert(errors.Is(err, flightgraph.ErrNotFound), check.Equals, true)

	_, err = runner.Search("ATL", "XXX")
	c.Assert(errors.Is(err, flightgraph.ErrNotFound), check.Equals, true)
}

func (s *searcherTestSuite) TestSnapshotsAreForwardedToSinkInEmissionOrder(c *check.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()

	var forwarded []searcher.Snapshot

	sink := mocks.NewMockSink(ctrl)
	sink.EXPECT().
		Record(gomock.Any()).
		Do(func(snap searcher.Snapshot) {
			forwarded = append(forwarded, snap)
		}).
		AnyTimes()

	runner, err := searcher.New(searcher.Config{
		Graph: s.g,
		Mode:  searcher.BreadthFirst,
		Sink:  sink,
	})
	c.Assert(err, check.IsNil)

	result, err := runner.Search("ATL", "DEN")
	c.Assert(err, check.IsNil)

	c.Assert(forwarded, check.DeepEquals, result.Steps)
}

func (s *searcherTestSuite) TestResultMetadata(c *check.C) {
	startedAt := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	runner, err := searcher.New(searcher.Config{
		Graph: s.g,
		Mode:  searcher.UniformCost,
		Clock: testclock.NewClock(startedAt),
	})
	c.Assert(err, check.IsNil)

	result, err := runner.Search("ATL", "DEN")
	c.Assert(err, check.IsNil)

	c.Assert(result.ID, check.Not(check.Equals), uuid.Nil)
	c.Assert(result.StartedAt.Equal(startedAt), check.Equals, true)
	c.Assert(result.Mode, check.Equals, searcher.UniformCost)
	c.Assert(result.Weight, check.Equals, flightgraph.Price)

	// Two runs must carry distinct run IDs.
	other, err := runner.Search("ATL", "DEN")
	c.Assert(err, check.IsNil)
	c.Assert(other.ID, check.Not(check.Equals), result.ID)
}

func (s *searcherTestSuite) TestParseMode(c *check.C) {
	mode, err := searcher.ParseMode("bfs")
	c.Assert(err, check.IsNil)
	c.Assert(mode, check.Equals, searcher.BreadthFirst)

	mode, err = searcher.ParseMode("ucs")
	c.Assert(err, check.IsNil)
	c.Assert(mode, check.Equals, searcher.UniformCost)

	_, err = searcher.ParseMode("dfs")
	c.Assert(err, check.ErrorMatches, `unrecognized search mode "dfs"`)
}
