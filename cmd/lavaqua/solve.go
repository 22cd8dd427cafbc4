package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lavaqua/internal/registry"
	"github.com/vovakirdan/lavaqua/internal/search"
)

var (
	flagAlgo        string
	flagMaxExplored int
	flagTimeout     time.Duration
	flagBoards      bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <level>",
	Short: "Solve a level",
	Long: `Runs one search strategy on the level and prints the statistics and
the move sequence. Exits with status 2 when no solution is found.

Examples:
  lavaqua solve 01-first-steps
  lavaqua solve 02-orbs --algo "uniform cost search"
  lavaqua solve levels/05-firebreak.yaml --algo hc --boards
  lavaqua solve 04-lava-and-water --max-explored 5000 --timeout 2s`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&flagAlgo, "algo", "", "Strategy ID or alias (default from config)")
	solveCmd.Flags().IntVar(&flagMaxExplored, "max-explored", -1, "Stop after this many expansions (0 = unlimited, default from config)")
	solveCmd.Flags().DurationVar(&flagTimeout, "timeout", -1, "Stop after this long (0 = no deadline, default from config)")
	solveCmd.Flags().BoolVar(&flagBoards, "boards", false, "Print the board after every move")
}

func runSolve(cmd *cobra.Command, args []string) error {
	lvl, err := resolveLevel(args[0])
	if err != nil {
		return err
	}

	name := flagAlgo
	if name == "" {
		name = app.cfg.Search.Algorithm
	}
	strategy, err := registry.Create(name)
	if err != nil {
		return err
	}

	logger := app.logger.With("level", lvl.ID)
	searcher := search.New(strategy, searchOptions(logger)...)

	logger.Info("solving", "algo", strategy.ID())
	res, err := searcher.Run(cmd.Context(), lvl.NewState())
	if err != nil {
		return fmt.Errorf("solving %s: %w", lvl.ID, err)
	}

	r := newReporter(cmd, flagBoards || app.cfg.Report.ShowBoards)
	out := cmd.OutOrStdout()
	fmt.Fprint(out, r.Summary(lvl.Title(), res))
	fmt.Fprintln(out)
	fmt.Fprint(out, r.Path(res))

	if !res.Solved() {
		return errNoSolution
	}
	return nil
}

// searchLimits merges flag overrides into the configured limits.
// Negative flag values mean "not set".
func searchLimits() search.Limits {
	limits := search.Limits{
		MaxExplored: app.cfg.Search.MaxExplored,
		Timeout:     app.cfg.Search.Timeout,
	}
	if flagMaxExplored >= 0 {
		limits.MaxExplored = flagMaxExplored
	}
	if flagTimeout >= 0 {
		limits.Timeout = flagTimeout
	}
	return limits
}

func searchOptions(logger *log.Logger) []search.Option {
	return []search.Option{
		search.WithLimits(searchLimits()),
		search.WithLogger(logger),
		search.WithProgressEvery(app.cfg.Search.ProgressEvery),
	}
}
