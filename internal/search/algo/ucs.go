package algo

import (
	"github.com/vovakirdan/lavaqua/internal/game"
	"github.com/vovakirdan/lavaqua/internal/registry"
	"github.com/vovakirdan/lavaqua/internal/search"
)

func init() {
	registry.Register("ucs", func() search.Strategy { return UCS{} }, "uniform cost search")
}

// UCS expands the cheapest state first. A move costs the number of lava
// cells it adds to the board, so the result minimizes lava growth rather
// than move count.
type UCS struct{}

func (UCS) ID() string   { return "ucs" }
func (UCS) Name() string { return "Uniform Cost Search" }

func (UCS) NewFrontier() search.Frontier { return search.NewMinHeap() }

func (UCS) Score(parent *search.Node, child *game.State) (int, int) {
	if parent == nil {
		return 0, 0
	}
	cost := parent.Cost + StepCost(parent.State, child)
	return cost, cost
}

// StepCost is the lava added by the move from prev to next, never negative.
func StepCost(prev, next *game.State) int {
	return max(0, next.LavaCount()-prev.LavaCount())
}
