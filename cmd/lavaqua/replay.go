package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lavaqua/internal/game"
	"github.com/vovakirdan/lavaqua/internal/report"
)

var flagMoves string

var replayCmd = &cobra.Command{
	Use:   "replay <level>",
	Short: "Apply a move list to a level",
	Long: `Plays a comma-separated move list through a play session and prints
the final board. Moves are U, R, D, L (or up, right, down, left); "undo"
steps back one move and "restart" returns to the start. Moves that are
not possible, or that come after the game is over, are ignored.

Examples:
  lavaqua replay 01-first-steps --moves R,R
  lavaqua replay 03-push --moves "R,R,undo,R,D,D,L,L"`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagMoves, "moves", "", "Comma-separated moves: U,R,D,L,undo,restart")
	replayCmd.Flags().BoolVar(&flagBoards, "boards", false, "Print the board after every applied move")
}

func runReplay(cmd *cobra.Command, args []string) error {
	lvl, err := resolveLevel(args[0])
	if err != nil {
		return err
	}

	cmds, err := parseMoves(flagMoves)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	r := newReporter(cmd, false)
	sess := game.NewSession(lvl.NewState())
	ignored := 0

	for _, c := range cmds {
		applied := true
		switch c {
		case "undo":
			applied = sess.Undo()
		case "restart":
			sess.Restart()
		default:
			d, _ := game.ParseDir(c)
			applied = sess.Apply(d)
		}
		if !applied {
			ignored++
			app.logger.Debug("move ignored", "move", c)
			continue
		}
		if flagBoards {
			fmt.Fprintf(out, "%s\n%s\n", c, r.Board(sess.Current))
		}
	}

	status := "in progress"
	switch {
	case sess.Won():
		status = "won"
	case sess.Dead():
		status = "dead"
	}

	fmt.Fprint(out, r.Board(sess.Current))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Moves:   %s\n", report.FormatActions(sess.Moves()))
	fmt.Fprintf(out, "Ignored: %d\n", ignored)
	fmt.Fprintf(out, "Status:  %s\n", status)
	return nil
}

// parseMoves splits and normalizes a move list. Directions are returned as
// their one-letter form.
func parseMoves(list string) ([]string, error) {
	var cmds []string
	for _, raw := range strings.Split(list, ",") {
		tok := strings.ToLower(strings.TrimSpace(raw))
		switch tok {
		case "":
			continue
		case "undo", "restart":
			cmds = append(cmds, tok)
			continue
		}
		d, ok := game.ParseDir(tok)
		if !ok {
			return nil, fmt.Errorf("unknown move %q", raw)
		}
		cmds = append(cmds, d.Letter())
	}
	return cmds, nil
}
