// Package game provides the world model and transition engine for the
// lava and water puzzle. This package is UI-agnostic and deterministic:
// every State is an immutable value and every engine function is pure.
package game

import "strings"

// Dir represents a player action: one step in a cardinal direction.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// Dirs lists the cardinal directions in the order moves are enumerated.
var Dirs = [4]Dir{DirUp, DirRight, DirDown, DirLeft}

// Valid reports whether d is one of the four cardinal directions.
func (d Dir) Valid() bool {
	return d <= DirLeft
}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Letter returns the one-letter form used in move lists.
func (d Dir) Letter() string {
	switch d {
	case DirUp:
		return "U"
	case DirRight:
		return "R"
	case DirDown:
		return "D"
	case DirLeft:
		return "L"
	default:
		return "?"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// ParseDir parses a direction name ("up", "U", "Right", ...).
// The second result is false for anything that is not a cardinal direction.
func ParseDir(s string) (Dir, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u", "up":
		return DirUp, true
	case "r", "right":
		return DirRight, true
	case "d", "down":
		return DirDown, true
	case "l", "left":
		return DirLeft, true
	default:
		return 0, false
	}
}

// Content is what occupies a cell, independent of the cell's flags.
type Content uint8

const (
	ContentEmpty Content = iota
	ContentLava
	ContentAqua
	ContentWall
	ContentBlock    // Movable block, pushed by the player
	ContentNumbered // Numbered block, vanishes after Moves ticks
)

// String returns the content name.
func (c Content) String() string {
	switch c {
	case ContentEmpty:
		return "Empty"
	case ContentLava:
		return "Lava"
	case ContentAqua:
		return "Aqua"
	case ContentWall:
		return "Wall"
	case ContentBlock:
		return "Block"
	case ContentNumbered:
		return "Numbered"
	default:
		return "Unknown"
	}
}

// Cell is a single grid cell. The zero value is an empty cell with no flags.
type Cell struct {
	Content Content
	Moves   int // Remaining ticks, valid only for ContentNumbered

	Player     bool
	Goal       bool
	Orb        bool // Goal orb, collected when the player enters the cell
	HazardWall bool // Stops the player and absorbs one hazard hit
}

// IsZero reports whether the cell is empty and carries no flags.
func (c Cell) IsZero() bool {
	return c == Cell{}
}

// firebreak reports whether the cell absorbs a hazard instead of being replaced.
func (c Cell) firebreak() bool {
	return c.HazardWall || c.Goal || c.Orb
}

// flagBits packs the flags for hashing.
func (c Cell) flagBits() byte {
	var b byte
	if c.Player {
		b |= 1
	}
	if c.Goal {
		b |= 2
	}
	if c.Orb {
		b |= 4
	}
	if c.HazardWall {
		b |= 8
	}
	return b
}
