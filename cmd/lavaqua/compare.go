package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/lavaqua/internal/registry"
	"github.com/vovakirdan/lavaqua/internal/search"
)

var flagCompareAlgos string

var compareCmd = &cobra.Command{
	Use:   "compare <level>",
	Short: "Compare strategies on a level",
	Long: `Runs several strategies concurrently on the same level and prints a
table of their results. Limits from the config and the solve flags apply
to every run. Exits with status 2 when no strategy finds a solution.

Examples:
  lavaqua compare 02-orbs
  lavaqua compare 04-lava-and-water --algo bfs,ucs`,
	Args: cobra.ExactArgs(1),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&flagCompareAlgos, "algo", "", "Comma-separated strategies (default: all)")
	compareCmd.Flags().IntVar(&flagMaxExplored, "max-explored", -1, "Stop each run after this many expansions (0 = unlimited)")
	compareCmd.Flags().DurationVar(&flagTimeout, "timeout", -1, "Stop each run after this long (0 = no deadline)")
}

func runCompare(cmd *cobra.Command, args []string) error {
	lvl, err := resolveLevel(args[0])
	if err != nil {
		return err
	}

	strategies, err := compareStrategies(flagCompareAlgos)
	if err != nil {
		return err
	}

	root := lvl.NewState()
	logger := app.logger.With("level", lvl.ID)
	results := make([]*search.Result, len(strategies))

	g, ctx := errgroup.WithContext(cmd.Context())
	for i, strategy := range strategies {
		g.Go(func() error {
			res, err := search.New(strategy, searchOptions(logger)...).Run(ctx, root)
			if err != nil {
				return fmt.Errorf("%s: %w", strategy.ID(), err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("comparing on %s: %w", lvl.ID, err)
	}

	r := newReporter(cmd, false)
	fmt.Fprint(cmd.OutOrStdout(), r.Compare(lvl.Title(), results))

	for _, res := range results {
		if res.Solved() {
			return nil
		}
	}
	return errNoSolution
}

// compareStrategies resolves a comma-separated list, or every registered
// strategy when the list is empty. Duplicates are dropped.
func compareStrategies(list string) ([]search.Strategy, error) {
	var names []string
	if strings.TrimSpace(list) == "" {
		for _, info := range registry.List() {
			names = append(names, info.ID)
		}
	} else {
		names = strings.Split(list, ",")
	}

	seen := make(map[string]bool)
	var strategies []search.Strategy
	for _, name := range names {
		s, err := registry.Create(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		if seen[s.ID()] {
			continue
		}
		seen[s.ID()] = true
		strategies = append(strategies, s)
	}
	return strategies, nil
}
