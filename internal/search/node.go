// Package search implements uninformed and informed search over the
// implicit state graph of a puzzle. One loop drives every strategy; a
// Strategy only decides frontier order and how costs accumulate.
package search

import "github.com/vovakirdan/lavaqua/internal/game"

// Node is a frontier entry: a state plus the bookkeeping of how the search
// reached it.
type Node struct {
	State    *game.State
	Parent   *Node
	Action   game.Dir
	Cost     int // accumulated cost under the strategy
	Priority int // frontier key for ordered frontiers
	Depth    int

	seq   uint64 // push order, breaks priority ties
	index int    // position in a heap frontier
}

// Steps walks parent links back to the root and returns the path root first.
func (n *Node) Steps() []Step {
	var steps []Step
	for cur := n; cur != nil; cur = cur.Parent {
		steps = append(steps, Step{
			State:     cur.State,
			Action:    cur.Action,
			HasAction: cur.Parent != nil,
		})
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}
