package algo

import (
	"github.com/vovakirdan/lavaqua/internal/game"
	"github.com/vovakirdan/lavaqua/internal/registry"
	"github.com/vovakirdan/lavaqua/internal/search"
)

func init() {
	registry.Register("hc", func() search.Strategy { return HillClimbing{} }, "hill climbing")
}

// HillClimbing is a greedy best-first search. A state's cost is its
// parent's cost plus its own heuristic value, and the lowest cost is
// expanded first. Solutions are not optimal.
type HillClimbing struct{}

func (HillClimbing) ID() string   { return "hc" }
func (HillClimbing) Name() string { return "Hill Climbing" }

func (HillClimbing) NewFrontier() search.Frontier { return search.NewMinHeap() }

func (HillClimbing) Score(parent *search.Node, child *game.State) (int, int) {
	cost := Heuristic(child)
	if parent != nil {
		cost += parent.Cost
	}
	return cost, cost
}
