package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all levels",
	Long: `Shows every level file found under the levels directory.
Files that fail to load are reported as warnings and skipped.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	levels, err := app.loader.LoadAll()
	if err != nil {
		return err
	}

	if len(levels) == 0 {
		fmt.Fprintf(out, "No levels found in %s.\n", app.loader.Root)
		return nil
	}

	fmt.Fprintf(out, "Levels in %s:\n", app.loader.Root)
	fmt.Fprintln(out)

	maxIDLen := 2 // "ID" header
	for _, lvl := range levels {
		maxIDLen = max(maxIDLen, len(lvl.ID))
	}

	fmt.Fprintf(out, "  %-*s  %-7s  %s\n", maxIDLen, "ID", "Size", "Name")
	fmt.Fprintf(out, "  %-*s  %-7s  %s\n", maxIDLen, "--", "----", "----")

	for _, lvl := range levels {
		size := fmt.Sprintf("%dx%d", lvl.Width, lvl.Height)
		fmt.Fprintf(out, "  %-*s  %-7s  %s\n", maxIDLen, lvl.ID, size, lvl.Title())
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'lavaqua solve <id>' to solve a level.")
	return nil
}
