package game

// Transition applies a move to s and returns the successor state.
//
// The second result is false, and the state nil, when there is no
// successor: d is not a cardinal direction, the player is gone, or the
// destination is outside the grid or blocked (including a failed push).
// s is never modified.
//
// A successful move runs one world tick on a fresh copy of the board:
//  1. Player steps, pushing a movable block one cell further if needed
//  2. An orb on the destination is collected
//  3. Numbered blocks count down and vanish at zero
//  4. Lava spreads, then water spreads
func Transition(s *State, d Dir) (*State, bool) {
	if s == nil || !d.Valid() || !s.hasPlayer {
		return nil, false
	}

	from := s.player
	dest := from.Step(d)
	if !IsValidMove(s, dest, d) {
		return nil, false
	}

	cells := make([]Cell, len(s.cells))
	copy(cells, s.cells)
	w := s.w

	// Push the block; flags on both cells stay where they are.
	if cells[dest.at(w)].Content == ContentBlock {
		beyond := dest.Step(d)
		cells[dest.at(w)].Content = ContentEmpty
		target := &cells[beyond.at(w)]
		target.Content = ContentBlock
		target.Moves = 0
	}

	cells[from.at(w)].Player = false
	entered := &cells[dest.at(w)]
	entered.Player = true
	entered.Orb = false

	decayNumbered(cells)
	spreadLava(cells, w, s.h)
	spreadAqua(cells, w, s.h)

	return newState(w, s.h, cells, s, d, true, s.pathCost+1), true
}

// IsValidMove checks whether the player may step onto dest moving in
// direction d. Walls, numbered blocks and hazard walls stop the player;
// a movable block must be pushable. Lava and water are walkable.
func IsValidMove(s *State, dest Coord, d Dir) bool {
	if !s.InBounds(dest) {
		return false
	}
	target := s.Get(dest)
	if target.HazardWall {
		return false
	}
	switch target.Content {
	case ContentWall, ContentNumbered:
		return false
	case ContentBlock:
		return CanPushBlock(s, dest, d)
	default:
		return true
	}
}

// CanPushBlock checks whether the block at pos can move one cell in d.
// The cell beyond must be in bounds and hold no wall, block, numbered
// block, goal or hazard wall.
func CanPushBlock(s *State, pos Coord, d Dir) bool {
	beyond := pos.Step(d)
	if !s.InBounds(beyond) {
		return false
	}
	target := s.Get(beyond)
	if target.Goal || target.HazardWall {
		return false
	}
	switch target.Content {
	case ContentWall, ContentBlock, ContentNumbered:
		return false
	default:
		return true
	}
}

// AllValidMoves returns the directions the player can move in, in the
// order Up, Right, Down, Left. Empty if the player is gone.
func AllValidMoves(s *State) []Dir {
	if s == nil || !s.hasPlayer {
		return nil
	}
	moves := make([]Dir, 0, len(Dirs))
	for _, d := range Dirs {
		if IsValidMove(s, s.player.Step(d), d) {
			moves = append(moves, d)
		}
	}
	return moves
}

// GoalTest returns true when the player stands on the goal and every
// goal orb has been collected.
func GoalTest(s *State) bool {
	if s == nil || !s.hasPlayer || len(s.orbs) > 0 {
		return false
	}
	return s.Get(s.player).Goal
}

// IsPlayerDead returns true when no cell carries the player.
func IsPlayerDead(s *State) bool {
	return s == nil || !s.hasPlayer
}

// decayNumbered counts every numbered block down by one and removes the
// ones that reach zero. Flags on the cell are kept.
func decayNumbered(cells []Cell) {
	for i := range cells {
		if cells[i].Content != ContentNumbered {
			continue
		}
		cells[i].Moves--
		if cells[i].Moves <= 0 {
			cells[i].Content = ContentEmpty
			cells[i].Moves = 0
		}
	}
}

// claim is a pending change produced by a spread phase.
type claim struct {
	idx  int
	cell Cell
}

// spreadLava grows every lava cell into its four neighbours.
// Sources and targets are read from the board as it was when the phase
// started; all claims are applied afterwards.
//
// Rules per neighbour:
//   - wall, block, numbered block: blocked
//   - lava: blocked, unless the player stands there (the player dies)
//   - hazard wall, goal or orb: content turns to lava, flags survive
//   - plain water: blocked, unless the player stands there
//   - anything else: replaced by plain lava (killing the player)
func spreadLava(cells []Cell, w, h int) {
	var claims []claim
	for i, src := range cells {
		if src.Content != ContentLava {
			continue
		}
		pos := coordAt(i, w)
		for _, d := range Dirs {
			n := pos.Step(d)
			if !n.on(w, h) {
				continue
			}
			idx := n.at(w)
			target := cells[idx]
			switch target.Content {
			case ContentWall, ContentBlock, ContentNumbered:
				continue
			case ContentLava:
				if target.Player {
					claims = append(claims, claim{idx, Cell{Content: ContentLava}})
				}
				continue
			}
			if target.firebreak() {
				target.Content = ContentLava
				claims = append(claims, claim{idx, target})
				continue
			}
			if target.Content == ContentAqua && !target.Player {
				continue
			}
			claims = append(claims, claim{idx, Cell{Content: ContentLava}})
		}
	}
	for _, c := range claims {
		cells[c.idx] = c.cell
	}
}

// spreadAqua grows every water cell into its four neighbours, using the
// same snapshot discipline as spreadLava.
//
// Rules per neighbour:
//   - wall, block, numbered block, water: blocked
//   - hazard wall, goal, orb or player: content turns to water, flags survive
//   - lava: cools into a permanent wall
//   - empty: replaced by plain water
func spreadAqua(cells []Cell, w, h int) {
	var claims []claim
	for i, src := range cells {
		if src.Content != ContentAqua {
			continue
		}
		pos := coordAt(i, w)
		for _, d := range Dirs {
			n := pos.Step(d)
			if !n.on(w, h) {
				continue
			}
			idx := n.at(w)
			target := cells[idx]
			switch target.Content {
			case ContentWall, ContentBlock, ContentNumbered, ContentAqua:
				continue
			}
			if target.firebreak() || target.Player {
				target.Content = ContentAqua
				claims = append(claims, claim{idx, target})
				continue
			}
			if target.Content == ContentLava {
				claims = append(claims, claim{idx, Cell{Content: ContentWall}})
				continue
			}
			claims = append(claims, claim{idx, Cell{Content: ContentAqua}})
		}
	}
	for _, c := range claims {
		cells[c.idx] = c.cell
	}
}
