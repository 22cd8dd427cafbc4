package game

// Session tracks a single play-through: the level's root state and the
// state the player is currently looking at. Undo walks the parent chain,
// so no separate history is kept.
type Session struct {
	Root    *State
	Current *State
}

// NewSession starts a play-through at root.
func NewSession(root *State) *Session {
	return &Session{Root: root, Current: root}
}

// Apply moves the player. Returns false, leaving the session unchanged,
// when the move has no successor or the game is already over.
func (s *Session) Apply(d Dir) bool {
	if s.Over() {
		return false
	}
	next, ok := Transition(s.Current, d)
	if !ok {
		return false
	}
	s.Current = next
	return true
}

// Undo steps back to the previous state. Returns false at the root.
func (s *Session) Undo() bool {
	if s.Current.Parent() == nil {
		return false
	}
	s.Current = s.Current.Parent()
	return true
}

// Restart returns to the level's initial state.
func (s *Session) Restart() {
	s.Current = s.Root
}

// Won returns true if the current state satisfies the goal test.
func (s *Session) Won() bool {
	return GoalTest(s.Current)
}

// Dead returns true if the player has been consumed by lava.
func (s *Session) Dead() bool {
	return IsPlayerDead(s.Current)
}

// Over returns true if the game is won or lost.
func (s *Session) Over() bool {
	return s.Won() || s.Dead()
}

// Moves returns the moves taken from the root to the current state.
func (s *Session) Moves() []Dir {
	var moves []Dir
	for _, st := range s.Current.Path() {
		if d, ok := st.Action(); ok {
			moves = append(moves, d)
		}
	}
	return moves
}
