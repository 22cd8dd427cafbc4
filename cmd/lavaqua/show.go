package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lavaqua/internal/game"
	"github.com/vovakirdan/lavaqua/internal/report"
)

var showCmd = &cobra.Command{
	Use:   "show <level>",
	Short: "Show a level's board",
	Long: `Prints the level's starting board, the positions of every tracked
element and the moves available from the start.

Examples:
  lavaqua show 03-push
  lavaqua show ./my-level.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	lvl, err := resolveLevel(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	r := newReporter(cmd, false)
	root := lvl.NewState()

	fmt.Fprintf(out, "%s (%s, %dx%d)\n\n", lvl.Title(), lvl.ID, lvl.Width, lvl.Height)
	fmt.Fprint(out, r.Board(root))
	fmt.Fprintln(out)

	player := "-"
	if pos, ok := root.Player(); ok {
		player = pos.String()
	}
	goal := "-"
	if pos, ok := root.Goal(); ok {
		goal = pos.String()
	}

	fmt.Fprintf(out, "  %-9s %s\n", "Player:", player)
	fmt.Fprintf(out, "  %-9s %s\n", "Goal:", goal)
	fmt.Fprintf(out, "  %-9s %s\n", "Orbs:", coords(root.Orbs()))
	fmt.Fprintf(out, "  %-9s %s\n", "Lava:", coords(root.Lava()))
	fmt.Fprintf(out, "  %-9s %s\n", "Water:", coords(root.Aqua()))
	fmt.Fprintf(out, "  %-9s %s\n", "Blocks:", coords(root.Blocks()))
	fmt.Fprintf(out, "  %-9s %s\n", "Numbered:", coords(root.Numbered()))
	fmt.Fprintf(out, "  %-9s %s\n", "Moves:", report.FormatActions(game.AllValidMoves(root)))

	for _, k := range slices.Sorted(maps.Keys(lvl.Metadata)) {
		fmt.Fprintf(out, "  %-9s %s\n", k+":", lvl.Metadata[k])
	}
	return nil
}

func coords(cs []game.Coord) string {
	if len(cs) == 0 {
		return "-"
	}
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
