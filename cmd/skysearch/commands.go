package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mycok/skySearch/dataset"
	"github.com/mycok/skySearch/flightgraph"
	"github.com/mycok/skySearch/itinerary"
	"github.com/mycok/skySearch/searcher"
	"github.com/mycok/skySearch/tui"
)

const appName = "skysearch"

// rootOptions holds the flags shared by every sub-command.
type rootOptions struct {
	dataDir string
	verbose bool
}

// logger builds the root logger passed into the search core.
func (opts *rootOptions) logger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	if opts.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	host, _ := os.Hostname()

	return logger.WithFields(logrus.Fields{
		"app":  appName,
		"host": host,
	})
}

func newRootCommand() *cobra.Command {
	opts := new(rootOptions)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Animate flight-network searches in the terminal",
		Long: `skysearch loads a small static flight network from CSV files and runs
instrumented graph searches over it: breadth-first search for the
fewest-hop route and uniform-cost search for the cheapest or fastest
route. Every run produces a replayable trace that can be printed or
played back step by step.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(
		&opts.dataDir, "data", "data",
		"Directory containing airports.csv and routes.csv",
	)
	cmd.PersistentFlags().BoolVar(
		&opts.verbose, "verbose", false,
		"Enable debug logging",
	)

	cmd.AddCommand(
		newAirportsCommand(opts),
		newSearchCommand(opts),
		newPlayCommand(opts),
	)

	return cmd
}

func newAirportsCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "airports",
		Short: "List the airports of the loaded flight network",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := dataset.Load(root.dataDir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, v := range g.Vertices() {
				fmt.Fprintf(out, "%3d  %-6s %d connections\n", v.ID, v.Name, len(v.Edges()))
			}

			return nil
		},
	}
}

// searchOptions holds the flags shared by the search and play
// sub-commands.
type searchOptions struct {
	from      string
	to        string
	modeTag   string
	weightTag string
}

func (opts *searchOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&opts.from, "from", "", "Start airport name")
	cmd.Flags().StringVar(&opts.to, "to", "", "Destination airport name")
	cmd.Flags().StringVar(
		&opts.modeTag, "mode", "bfs",
		"Search variant to run: bfs (fewest hops) or ucs (minimum cost)",
	)
	cmd.Flags().StringVar(
		&opts.weightTag, "weight", "price",
		`Edge weight minimized by ucs: "time" or "price"`,
	)

	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
}

// run loads the dataset, executes the configured search and summarizes
// the outcome. The returned summary is nil when the destination is
// unreachable.
func (opts *searchOptions) run(root *rootOptions) (*searcher.Result, *itinerary.Itinerary, error) {
	mode, err := searcher.ParseMode(opts.modeTag)
	if err != nil {
		return nil, nil, err
	}

	g, err := dataset.Load(root.dataDir)
	if err != nil {
		return nil, nil, err
	}

	runner, err := searcher.New(searcher.Config{
		Graph:  g,
		Mode:   mode,
		Weight: flightgraph.ParseWeight(opts.weightTag),
		Logger: root.logger(),
	})
	if err != nil {
		return nil, nil, err
	}

	result, err := runner.Search(opts.from, opts.to)
	if err != nil {
		return nil, nil, err
	}

	if !result.Reachable() {
		return result, nil, nil
	}

	summary, err := itinerary.FromWaypoint(result.Found)
	if err != nil {
		return nil, nil, err
	}

	return result, summary, nil
}

func newSearchCommand(root *rootOptions) *cobra.Command {
	opts := new(searchOptions)
	var showTrace bool

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run a search and print its route summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, summary, err := opts.run(root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if showTrace {
				for i, step := range result.Steps {
					fmt.Fprintf(out, "%3d  %s\n", i+1, step.Description)
				}
				fmt.Fprintln(out)
			}

			if summary == nil {
				fmt.Fprintf(out, "no route from %s to %s\n", opts.from, opts.to)

				return nil
			}

			fmt.Fprintf(out, "route: %s\n", summary.PathString)
			fmt.Fprintf(out, "time:  %g\n", summary.ElapsedTime)
			fmt.Fprintf(out, "price: %g\n", summary.Price)
			fmt.Fprintf(out, "stops: %d\n", summary.Stops)

			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&showTrace, "trace", false, "Print every trace step before the summary")

	return cmd
}

func newPlayCommand(root *rootOptions) *cobra.Command {
	opts := new(searchOptions)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Run a search and replay its trace interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, summary, err := opts.run(root)
			if err != nil {
				return err
			}

			program := tea.NewProgram(tui.New(result, summary), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("playback: %w", err)
			}

			return nil
		},
	}

	opts.register(cmd)

	return cmd
}
