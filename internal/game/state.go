package game

import (
	"encoding/binary"
	"hash/fnv"
	"slices"
)

// State is an immutable snapshot of the whole board.
// Cells are stored in row-major order: index = y*W + x.
//
// Derived indexes (player, goal, orbs, hazards, blocks) and the canonical
// hash are computed once at construction. Nothing mutates a State after
// that, so states may be shared freely between goroutines.
type State struct {
	w, h  int
	cells []Cell

	parent    *State
	action    Dir
	hasAction bool
	pathCost  int

	hash uint64

	player    Coord
	hasPlayer bool
	goal      Coord
	hasGoal   bool
	orbs      []Coord
	lava      []Coord
	aqua      []Coord
	numbered  []Coord
	blocks    []Coord
}

// NewState creates a root state with the given dimensions.
// Cells not present in the map are empty; cells outside the grid are ignored.
func NewState(w, h int, cells map[Coord]Cell) *State {
	grid := make([]Cell, w*h)
	for c, cell := range cells {
		if c.on(w, h) {
			grid[c.at(w)] = cell
		}
	}
	return newState(w, h, grid, nil, 0, false, 0)
}

// newState takes ownership of cells.
func newState(w, h int, cells []Cell, parent *State, action Dir, hasAction bool, pathCost int) *State {
	s := &State{
		w:         w,
		h:         h,
		cells:     cells,
		parent:    parent,
		action:    action,
		hasAction: hasAction,
		pathCost:  pathCost,
	}
	s.index()
	s.hash = s.computeHash()
	return s
}

// index rebuilds the derived position sets with a single row-major scan.
func (s *State) index() {
	for i, cell := range s.cells {
		if cell.IsZero() {
			continue
		}
		c := coordAt(i, s.w)
		if cell.Player {
			s.player = c
			s.hasPlayer = true
		}
		if cell.Goal {
			s.goal = c
			s.hasGoal = true
		}
		if cell.Orb {
			s.orbs = append(s.orbs, c)
		}
		switch cell.Content {
		case ContentLava:
			s.lava = append(s.lava, c)
		case ContentAqua:
			s.aqua = append(s.aqua, c)
		case ContentNumbered:
			s.numbered = append(s.numbered, c)
		case ContentBlock:
			s.blocks = append(s.blocks, c)
		}
	}
}

// computeHash encodes every non-empty cell in row-major order, which is the
// canonical position order, so equal boards always hash the same.
func (s *State) computeHash() uint64 {
	h := fnv.New64a()
	buf := make([]byte, 0, 64)
	buf = binary.AppendUvarint(buf, uint64(s.w))
	buf = binary.AppendUvarint(buf, uint64(s.h))
	for i, cell := range s.cells {
		if cell.IsZero() {
			continue
		}
		buf = binary.AppendUvarint(buf, uint64(i))
		buf = append(buf, byte(cell.Content), cell.flagBits())
		buf = binary.AppendVarint(buf, int64(cell.Moves))
		if len(buf) > 1024 {
			h.Write(buf)
			buf = buf[:0]
		}
	}
	h.Write(buf)
	return h.Sum64()
}

// Width returns the grid width.
func (s *State) Width() int { return s.w }

// Height returns the grid height.
func (s *State) Height() int { return s.h }

// InBounds returns true if the coordinate is within the grid boundaries.
func (s *State) InBounds(c Coord) bool {
	return c.on(s.w, s.h)
}

// Get returns the cell at the given coordinate.
// Returns an empty cell if out of bounds.
func (s *State) Get(c Coord) Cell {
	if !s.InBounds(c) {
		return Cell{}
	}
	return s.cells[c.at(s.w)]
}

// Parent returns the state this one was derived from, or nil for a root.
func (s *State) Parent() *State { return s.parent }

// Action returns the move that produced this state.
// The second result is false for a root state.
func (s *State) Action() (Dir, bool) { return s.action, s.hasAction }

// PathCost returns the number of moves taken from the root.
func (s *State) PathCost() int { return s.pathCost }

// Hash returns the canonical hash of the board contents.
// Parent, action and path cost do not contribute.
func (s *State) Hash() uint64 { return s.hash }

// Player returns the player position; false if the player is gone.
func (s *State) Player() (Coord, bool) { return s.player, s.hasPlayer }

// Goal returns the goal position; false if the level has no goal.
func (s *State) Goal() (Coord, bool) { return s.goal, s.hasGoal }

// Orbs returns the positions of uncollected goal orbs in row-major order.
func (s *State) Orbs() []Coord { return slices.Clone(s.orbs) }

// Lava returns the lava positions in row-major order.
func (s *State) Lava() []Coord { return slices.Clone(s.lava) }

// Aqua returns the water positions in row-major order.
func (s *State) Aqua() []Coord { return slices.Clone(s.aqua) }

// Numbered returns the numbered block positions in row-major order.
func (s *State) Numbered() []Coord { return slices.Clone(s.numbered) }

// Blocks returns the movable block positions in row-major order.
func (s *State) Blocks() []Coord { return slices.Clone(s.blocks) }

// OrbCount returns the number of uncollected goal orbs.
func (s *State) OrbCount() int { return len(s.orbs) }

// LavaCount returns the number of lava cells.
func (s *State) LavaCount() int { return len(s.lava) }

// Equal reports whether two states have identical boards.
// Parent, action and path cost are ignored.
func (s *State) Equal(other *State) bool {
	if s == other {
		return true
	}
	if other == nil || s.hash != other.hash || s.w != other.w || s.h != other.h {
		return false
	}
	return slices.Equal(s.cells, other.cells)
}

// Path returns the chain of states from the root to s, root first.
func (s *State) Path() []*State {
	var path []*State
	for cur := s; cur != nil; cur = cur.parent {
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path
}

// Root returns the first state of the parent chain.
func (s *State) Root() *State {
	cur := s
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}
