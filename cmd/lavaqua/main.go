// lavaqua solves lava and water grid puzzles with classic search strategies.
//
// Usage:
//
//	lavaqua algorithms             - List available search strategies
//	lavaqua levels                 - List levels in the levels directory
//	lavaqua show <level>           - Show a level's board and valid moves
//	lavaqua solve <level>          - Solve a level with one strategy
//	lavaqua compare <level>        - Run several strategies side by side
//	lavaqua replay <level> --moves - Apply a move list and show the result
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.lavaqua, ./configs)
//	--levels <dir>      - Levels directory
//	--log-level <level> - debug, info, warn or error
//	--color <mode>      - auto, always or never
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	// Import strategies to register them
	_ "github.com/vovakirdan/lavaqua/internal/search/algo"
)

var (
	// Global flags
	flagConfig   string
	flagLevels   string
	flagLogLevel string
	flagColor    string
)

// errNoSolution makes the process exit with status 2.
var errNoSolution = errors.New("no solution found")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	os.Exit(exitCode(err))
}

// exitCode maps a command error to the process exit status and reports it.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errNoSolution):
		return 2
	}

	if app != nil && app.logger != nil {
		app.logger.Error(err.Error())
	} else {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return 1
}

var rootCmd = &cobra.Command{
	Use:   "lavaqua",
	Short: "Lava & water puzzle solver",
	Long: `lavaqua loads grid puzzles where lava spreads, water cools it into
walls and the player must collect every orb before reaching the goal,
then solves them with breadth-first, depth-first, uniform-cost or
hill-climbing search.

Available commands:
  algorithms - Show all search strategies
  levels     - Show all levels
  show       - Print a level's board
  solve      - Solve a level
  compare    - Compare strategies on a level
  replay     - Apply moves to a level

Examples:
  lavaqua levels
  lavaqua solve 01-first-steps
  lavaqua solve levels/04-lava-and-water.csv --algo ucs --boards
  lavaqua compare 02-orbs --algo bfs,hc
  lavaqua replay 01-first-steps --moves R,R`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Levels directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "", "Colour output: auto, always, never (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(algorithmsCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(replayCmd)
}
