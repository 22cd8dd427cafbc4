package algo

import (
	"github.com/vovakirdan/lavaqua/internal/game"
	"github.com/vovakirdan/lavaqua/internal/registry"
	"github.com/vovakirdan/lavaqua/internal/search"
)

func init() {
	registry.Register("bfs", func() search.Strategy { return BFS{} }, "breadth first search")
}

// BFS expands states in order of depth. Its first solution uses the fewest
// moves.
type BFS struct{}

func (BFS) ID() string   { return "bfs" }
func (BFS) Name() string { return "Breadth-First Search" }

func (BFS) NewFrontier() search.Frontier { return search.NewFIFO() }

func (BFS) Score(parent *search.Node, _ *game.State) (int, int) {
	if parent == nil {
		return 0, 0
	}
	depth := parent.Cost + 1
	return depth, depth
}
