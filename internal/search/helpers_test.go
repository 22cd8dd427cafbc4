package search_test

import (
	"testing"

	"github.com/vovakirdan/lavaqua/internal/game"
	"github.com/vovakirdan/lavaqua/internal/search"
)

// board builds a root state from one string per row.
// Symbols: P player, L lava, A water, # wall, B block, G goal, O orb,
// W hazard wall, 0-9 numbered block, '.' empty.
func board(t *testing.T, rows ...string) *game.State {
	t.Helper()
	cells := make(map[game.Coord]game.Cell)
	for y, row := range rows {
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
			case ch == '.':
				continue
			default:
				t.Fatalf("unknown symbol %q at (%d,%d)", ch, x, y)
			}
			cells[game.C(x, y)] = cell
		}
	}
	return game.NewState(len(rows[0]), len(rows), cells)
}

// depthCost is a minimal breadth-first strategy for exercising the
// search loop without the algo package.
type depthCost struct{}

func (depthCost) ID() string                   { return "test" }
func (depthCost) Name() string                 { return "Test Strategy" }
func (depthCost) NewFrontier() search.Frontier { return search.NewFIFO() }

func (depthCost) Score(parent *search.Node, _ *game.State) (int, int) {
	if parent == nil {
		return 0, 0
	}
	return parent.Cost + 1, parent.Cost + 1
}
