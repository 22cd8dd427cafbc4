package game_test

import (
	"testing"

	"github.com/vovakirdan/lavaqua/internal/game"
)

// board builds a root state from one string per row.
// Symbols: P player, L lava, A water, # wall, B block, G goal, O orb,
// W hazard wall, 0-9 numbered block, '.' or ' ' empty.
func board(t *testing.T, rows ...string) *game.State {
	t.Helper()
	if len(rows) == 0 {
		t.Fatal("board needs at least one row")
	}
	w := len(rows[0])
	cells := make(map[game.Coord]game.Cell)
	for y, row := range rows {
		if len(row) != w {
			t.Fatalf("row %d has width %d, want %d", y, len(row), w)
		}
		for x, ch := range row {
			var cell game.Cell
			switch {
			case ch == 'P':
				cell.Player = true
			case ch == 'L':
				cell.Content = game.ContentLava
			case ch == 'A':
				cell.Content = game.ContentAqua
			case ch == '#':
				cell.Content = game.ContentWall
			case ch == 'B':
				cell.Content = game.ContentBlock
			case ch == 'G':
				cell.Goal = true
			case ch == 'O':
				cell.Orb = true
			case ch == 'W':
				cell.HazardWall = true
			case ch >= '0' && ch <= '9':
				cell.Content = game.ContentNumbered
				cell.Moves = int(ch - '0')
			case ch == '.' || ch == ' ':
				continue
			default:
				t.Fatalf("unknown symbol %q at (%d,%d)", ch, x, y)
			}
			cells[game.C(x, y)] = cell
		}
	}
	return game.NewState(w, len(rows), cells)
}

// mustMove applies a move and fails the test if there is no successor.
func mustMove(t *testing.T, s *game.State, d game.Dir) *game.State {
	t.Helper()
	next, ok := game.Transition(s, d)
	if !ok {
		t.Fatalf("move %v from\n%s\nhad no successor", d, game.RenderGrid(s))
	}
	return next
}
