package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lavaqua/internal/registry"
)

var algorithmsCmd = &cobra.Command{
	Use:     "algorithms",
	Aliases: []string{"algos"},
	Short:   "List all available search strategies",
	Long:    `Shows a list of all search strategies registered with the solver.`,
	Args:    cobra.NoArgs,
	RunE:    runAlgorithms,
}

func runAlgorithms(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	strategies := registry.List()

	if len(strategies) == 0 {
		fmt.Fprintln(out, "No strategies available.")
		return nil
	}

	fmt.Fprintln(out, "Available strategies:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, s := range strategies {
		maxIDLen = max(maxIDLen, len(s.ID))
		maxNameLen = max(maxNameLen, len(s.Name))
	}

	// Print header
	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Aliases")
	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", maxIDLen, "--", maxNameLen, "----", "-------")

	// Print strategies
	for _, s := range strategies {
		marker := ""
		if s.ID == defaultAlgorithm() {
			marker = " (default)"
		}
		fmt.Fprintf(out, "  %-*s  %-*s  %s%s\n", maxIDLen, s.ID, maxNameLen, s.Name, strings.Join(s.Aliases, ", "), marker)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'lavaqua solve <level> --algo <id>' to use one.")
	return nil
}

// defaultAlgorithm returns the configured strategy ID.
func defaultAlgorithm() string {
	id, _ := registry.Canonical(app.cfg.Search.Algorithm)
	return id
}
