/*
	dataset package loads the static flight-network data files consumed
	by the search core: airports.csv, an ordered list of airport names,
	and routes.csv, a list of undirected flight records whose from/to
	columns reference the airport list by position.
*/

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hashicorp/go-multierror"

	"github.com/mycok/skySearch/flightgraph"
)

const (
	// AirportsFile is the expected airport list file name.
	AirportsFile = "airports.csv"

	// RoutesFile is the expected route list file name.
	RoutesFile = "routes.csv"
)

var (
	airportsHeader = []string{"name"}
	routesHeader   = []string{"from", "to", "time", "price"}
)

// Load reads the airport and route files from dir and builds the flight
// graph they describe.
func Load(dir string) (*flightgraph.Graph, error) {
	var names []string
	err := withFile(filepath.Join(dir, AirportsFile), func(r io.Reader) error {
		var err error
		names, err = ReadAirports(r)

		return err
	})
	if err != nil {
		return nil, err
	}

	var routes []flightgraph.Route
	err = withFile(filepath.Join(dir, RoutesFile), func(r io.Reader) error {
		var err error
		routes, err = ReadRoutes(r)

		return err
	})
	if err != nil {
		return nil, err
	}

	g, err := flightgraph.Build(names, routes)
	if err != nil {
		return nil, fmt.Errorf("build flight graph: %w", err)
	}

	return g, nil
}

// withFile opens path, applies the parse function and annotates any
// parse failure with the file name.
func withFile(path string, parse func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open dataset file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := parse(f); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return nil
}

// ReadAirports parses an ordered airport name list from CSV content
// with a single "name" column. Parse failures are accumulated so a
// malformed file reports every bad record at once.
func ReadAirports(r io.Reader) ([]string, error) {
	records, err := readRecords(r, airportsHeader)
	if err != nil {
		return nil, err
	}

	var (
		parseErr error
		names    []string
	)
	for i, record := range records {
		if record[0] == "" {
			parseErr = multierror.Append(parseErr, fmt.Errorf("record %d: empty airport name", i+1))

			continue
		}

		names = append(names, record[0])
	}

	if parseErr != nil {
		return nil, parseErr
	}

	return names, nil
}

// ReadRoutes parses undirected flight records from CSV content with
// "from", "to", "time" and "price" columns. The from/to columns hold
// positional airport indexes. Parse failures are accumulated so a
// malformed file reports every bad record at once.
func ReadRoutes(r io.Reader) ([]flightgraph.Route, error) {
	records, err := readRecords(r, routesHeader)
	if err != nil {
		return nil, err
	}

	var (
		parseErr error
		routes   []flightgraph.Route
	)
	for i, record := range records {
		route, err := parseRoute(record)
		if err != nil {
			parseErr = multierror.Append(parseErr, fmt.Errorf("record %d: %w", i+1, err))

			continue
		}

		routes = append(routes, route)
	}

	if parseErr != nil {
		return nil, parseErr
	}

	return routes, nil
}

func parseRoute(record []string) (flightgraph.Route, error) {
	var route flightgraph.Route

	from, err := strconv.Atoi(record[0])
	if err != nil {
		return route, fmt.Errorf("from index %q is not an integer", record[0])
	}

	to, err := strconv.Atoi(record[1])
	if err != nil {
		return route, fmt.Errorf("to index %q is not an integer", record[1])
	}

	time, err := strconv.ParseFloat(record[2], 64)
	if err != nil {
		return route, fmt.Errorf("time %q is not a number", record[2])
	}

	price, err := strconv.ParseFloat(record[3], 64)
	if err != nil {
		return route, fmt.Errorf("price %q is not a number", record[3])
	}

	route = flightgraph.Route{From: from, To: to, Time: time, Price: price}

	return route, nil
}

// readRecords consumes CSV content, validates the header row and
// returns the remaining records.
func readRecords(r io.Reader, header []string) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(header)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: file is empty", ErrBadHeader)
	}

	for i, column := range header {
		if records[0][i] != column {
			return nil, fmt.Errorf("%w: expected column %d to be %q, got %q", ErrBadHeader, i+1, column, records[0][i])
		}
	}

	return records[1:], nil
}
