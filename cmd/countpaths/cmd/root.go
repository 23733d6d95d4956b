// Package cmd wires the countpaths cobra command: flag parsing, logger
// setup, and the parse-count-print pipeline.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/aurajamming/hamiltonpaths/configuration"
	"github.com/aurajamming/hamiltonpaths/dp"
	"github.com/aurajamming/hamiltonpaths/grid"
)

// ErrCannotOpenFile wraps a failure to open the grid file named on the
// command line.
var ErrCannotOpenFile = errors.New("countpaths: cannot open grid file")

var (
	repetitions int
	printGrid   bool
	debug       bool
	logFormat   string
	logger      zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "countpaths [GRID_FILE]",
	Short: "Count Hamiltonian-style self-avoiding path systems on a rectangular grid",
	Long: `countpaths reads a grid description (from GRID_FILE, or stdin if
omitted) and counts the path systems satisfying it via a row-by-row
transfer-matrix dynamic program, printing the exact result as a decimal
integer.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

// Execute runs the root command, exiting the process with status 1 on
// any error already logged by run.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().IntVarP(&repetitions, "repetitions", "n", 1,
		"run the count this many times, printing only the final total (for benchmarking)")
	rootCmd.Flags().BoolVarP(&printGrid, "print", "p", false,
		"print the parsed grid's ASCII diagnostic rendering to stderr")
	rootCmd.Flags().BoolVar(&debug, "debug", false,
		"enable configuration invariant assertions and debug-level logging")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "text",
		`log output format: "text" or "json"`)
}

func setupLogger() {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
		configuration.DebugAssertions = true
	}

	var w io.Writer = os.Stderr
	if logFormat != "json" {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	}
	logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func openInput(args []string) (io.Reader, func(), error) {
	if len(args) == 0 {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrCannotOpenFile, args[0], err)
	}
	return f, func() { f.Close() }, nil
}

func run(c *cobra.Command, args []string) error {
	setupLogger()

	r, closeInput, err := openInput(args)
	if err != nil {
		logger.Error().Err(err).Msg("could not open grid input")
		return err
	}
	defer closeInput()

	g, err := grid.Parse(r)
	if err != nil {
		logger.Error().Err(err).Msg("could not parse grid")
		return err
	}
	logger.Debug().Int("rows", g.Rows).Int("cols", g.Cols).
		Bool("have_endpoints", g.HaveEndpoints).Msg("grid parsed")

	if printGrid {
		if err := g.Render(os.Stderr); err != nil {
			logger.Error().Err(err).Msg("could not render grid")
			return err
		}
	}

	if repetitions < 1 {
		repetitions = 1
	}

	count := dp.CountPaths(g)
	for i := 1; i < repetitions; i++ {
		count = dp.CountPaths(g)
	}
	logger.Debug().Int("repetitions", repetitions).Msg("row sweep complete")

	fmt.Println(count.String())
	return nil
}
