package searcher

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/juju/clock"
	"github.com/sirupsen/logrus"

	"github.com/mycok/skySearch/flightgraph"
)

// Config encapsulates the configuration options for creating a new
// searcher.
type Config struct {
	// Graph is the flight network to search.
	Graph *flightgraph.Graph

	// Mode selects the search variant to run.
	Mode Mode

	// Weight selects the edge weight field the uniform-cost variant
	// minimizes. It is ignored by the breadth-first variant.
	Weight flightgraph.Weight

	// Sink, if specified, receives each trace snapshot as it is
	// emitted.
	Sink Sink

	// A clock instance for generating time-related events. If not specified,
	// the default wall-clock will be used instead.
	Clock clock.Clock

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

func (config *Config) validate() error {
	var err error

	if config.Graph == nil {
		err = multierror.Append(err, fmt.Errorf("graph not provided"))
	}

	if config.Mode != BreadthFirst && config.Mode != UniformCost {
		err = multierror.Append(err, fmt.Errorf("unrecognized search mode: %d", config.Mode))
	}

	if config.Weight != flightgraph.Price && config.Weight != flightgraph.ElapsedTime {
		err = multierror.Append(err, fmt.Errorf("unrecognized weight selector: %d", config.Weight))
	}

	if config.Clock == nil {
		config.Clock = clock.WallClock
	}

	if config.Logger == nil {
		config.Logger = logrus.NewEntry(&logrus.Logger{Out: io.Discard})
	}

	return err
}
