package game

import "fmt"

// Coord is a cell position on the board: X is the column, Y the row,
// with (0,0) in the top-left corner.
type Coord struct {
	X int
	Y int
}

// C builds a Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// coordAt is the inverse of Coord.at for a board w cells wide.
func coordAt(i, w int) Coord {
	return Coord{X: i % w, Y: i / w}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the neighbouring cell in direction d, which may be off the board.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// on reports whether c lies on a w x h board.
func (c Coord) on(w, h int) bool {
	return c.X >= 0 && c.X < w && c.Y >= 0 && c.Y < h
}

// at is the offset of c in row-major cell storage.
func (c Coord) at(w int) int {
	return c.Y*w + c.X
}

// Manhattan counts the orthogonal steps between c and other, ignoring
// whatever stands in between.
func (c Coord) Manhattan(other Coord) int {
	dx := c.X - other.X
	dy := c.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
