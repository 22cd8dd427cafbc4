package algo

import (
	"github.com/vovakirdan/lavaqua/internal/game"
	"github.com/vovakirdan/lavaqua/internal/registry"
	"github.com/vovakirdan/lavaqua/internal/search"
)

func init() {
	registry.Register("dfs", func() search.Strategy { return DFS{} }, "depth first search")
}

// DFS follows the most recently generated state first. Every state costs
// zero, so a state is admitted at most once.
type DFS struct{}

func (DFS) ID() string   { return "dfs" }
func (DFS) Name() string { return "Depth-First Search" }

func (DFS) NewFrontier() search.Frontier { return search.NewLIFO() }

func (DFS) Score(*search.Node, *game.State) (int, int) {
	return 0, 0
}
