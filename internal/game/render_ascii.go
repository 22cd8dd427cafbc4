package game

import (
	"fmt"
	"strings"
	"unicode"
)

// Char returns the single character used to draw a cell.
// The player is drawn over everything. Flags are drawn upper case on
// otherwise empty cells and lower case under lava or water, so a goal
// covered by lava still shows as 'g'.
func (c Cell) Char() rune {
	if c.Player {
		return 'P'
	}
	switch c.Content {
	case ContentWall:
		return '#'
	case ContentBlock:
		return 'B'
	case ContentNumbered:
		if c.Moves >= 0 && c.Moves <= 9 {
			return rune('0' + c.Moves)
		}
		return '+'
	case ContentLava, ContentAqua:
		if f := c.flagChar(); f != 0 {
			return unicode.ToLower(f)
		}
		if c.Content == ContentLava {
			return 'L'
		}
		return 'A'
	}
	if f := c.flagChar(); f != 0 {
		return f
	}
	return '.'
}

func (c Cell) flagChar() rune {
	switch {
	case c.Goal:
		return 'G'
	case c.Orb:
		return 'O'
	case c.HazardWall:
		return 'W'
	}
	return 0
}

// RenderASCII creates an ASCII representation of the state.
// This is used for debugging, testing (golden outputs), and plain-text
// reports.
//
// Format:
//   - One status line: moves, orbs left, lava cells, player status
//   - The grid, one row per line, see Cell.Char for the symbols
func RenderASCII(s *State) string {
	return StatusLine(s) + "\n" + RenderGrid(s)
}

// StatusLine summarizes a state on one line, without a trailing newline.
func StatusLine(s *State) string {
	status := "alive"
	switch {
	case GoalTest(s):
		status = "won"
	case IsPlayerDead(s):
		status = "dead"
	}
	return fmt.Sprintf("Moves: %d | Orbs: %d | Lava: %d | Player: %s",
		s.pathCost, len(s.orbs), len(s.lava), status)
}

// RenderGrid renders just the grid without the status line.
func RenderGrid(s *State) string {
	var sb strings.Builder
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			sb.WriteRune(s.cells[C(x, y).at(s.w)].Char())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderGridCompact renders the grid as a single line (for comparison in tests).
func RenderGridCompact(s *State) string {
	return strings.ReplaceAll(RenderGrid(s), "\n", "/")
}
