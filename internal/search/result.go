package search

import (
	"time"

	"github.com/vovakirdan/lavaqua/internal/game"
)

// Outcome describes how a search ended.
type Outcome string

const (
	OutcomeSolved    Outcome = "solved"
	OutcomeExhausted Outcome = "exhausted"
	OutcomeLimit     Outcome = "limit"
	OutcomeCanceled  Outcome = "canceled"
)

// Step is one entry of a solution path. The first step is the root and has
// no action.
type Step struct {
	State     *game.State
	Action    game.Dir
	HasAction bool
}

// Result is the outcome of one search run. Statistics are filled in for
// every outcome; Goal and Path only when solved.
type Result struct {
	Algorithm string
	Outcome   Outcome
	Goal      *Node
	Path      []Step
	Cost      int
	Moves     int
	Explored  int
	Generated int
	Elapsed   time.Duration
}

// Solved reports whether a goal state was found.
func (r *Result) Solved() bool {
	return r.Outcome == OutcomeSolved
}

// Actions returns the move sequence of the solution path.
func (r *Result) Actions() []game.Dir {
	if len(r.Path) == 0 {
		return nil
	}
	actions := make([]game.Dir, 0, len(r.Path)-1)
	for _, step := range r.Path {
		if step.HasAction {
			actions = append(actions, step.Action)
		}
	}
	return actions
}

// Final returns the last state on the path, or nil when unsolved.
func (r *Result) Final() *game.State {
	if len(r.Path) == 0 {
		return nil
	}
	return r.Path[len(r.Path)-1].State
}
