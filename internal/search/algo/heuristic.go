package algo

import "github.com/vovakirdan/lavaqua/internal/game"

// Heuristic estimates the remaining walk: Manhattan distance from the
// player through every orb, taken in board order, and on to the goal.
// A dead player scores zero.
//
// The orb order is fixed rather than optimal, so the estimate can exceed
// the true distance.
func Heuristic(s *game.State) int {
	pos, alive := s.Player()
	if !alive {
		return 0
	}

	total := 0
	for _, orb := range s.Orbs() {
		total += pos.Manhattan(orb)
		pos = orb
	}
	if goal, ok := s.Goal(); ok {
		total += pos.Manhattan(goal)
	}
	return total
}
