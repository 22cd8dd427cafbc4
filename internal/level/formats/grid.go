// Package formats provides pluggable level file format parsers.
// Every format reduces to a rectangular grid of cell tokens.
package formats

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/lavaqua/internal/game"
)

var (
	ErrEmptyLevel      = errors.New("empty level")
	ErrRowWidth        = errors.New("inconsistent row length")
	ErrDuplicatePlayer = errors.New("more than one player")
	ErrDuplicateGoal   = errors.New("more than one goal")
)

// RowError ties a grid error to a 1-based row number.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Cells    map[game.Coord]game.Cell
	Metadata map[string]string
}

// ParseToken converts one grid token into a cell.
// Unknown tokens are treated as empty.
//
// Tokens:
//
//	P player   L lava   A water   # wall   B movable block
//	G goal     O orb    W hazard wall      123 numbered block
func ParseToken(token string) game.Cell {
	token = strings.TrimSpace(token)
	switch token {
	case "P":
		return game.Cell{Player: true}
	case "L":
		return game.Cell{Content: game.ContentLava}
	case "A":
		return game.Cell{Content: game.ContentAqua}
	case "#":
		return game.Cell{Content: game.ContentWall}
	case "B":
		return game.Cell{Content: game.ContentBlock}
	case "G":
		return game.Cell{Goal: true}
	case "O":
		return game.Cell{Orb: true}
	case "W":
		return game.Cell{HazardWall: true}
	}
	if isDigits(token) {
		moves, err := strconv.Atoi(token)
		if err == nil {
			return game.Cell{Content: game.ContentNumbered, Moves: moves}
		}
	}
	return game.Cell{}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParseGrid builds the cell map for a grid of tokens.
// All rows must have the width of the first non-empty row; at most one
// player and one goal are allowed.
func ParseGrid(rows [][]string) (width, height int, cells map[game.Coord]game.Cell, err error) {
	for _, row := range rows {
		if len(row) > 0 {
			width = len(row)
			break
		}
	}
	if width == 0 {
		return 0, 0, nil, ErrEmptyLevel
	}

	height = len(rows)
	cells = make(map[game.Coord]game.Cell)
	players, goals := 0, 0

	for y, row := range rows {
		if len(row) != width {
			return 0, 0, nil, &RowError{Row: y + 1, Err: fmt.Errorf("%w: %d cells, expected %d", ErrRowWidth, len(row), width)}
		}
		for x, token := range row {
			cell := ParseToken(token)
			if cell.IsZero() {
				continue
			}
			if cell.Player {
				players++
				if players > 1 {
					return 0, 0, nil, &RowError{Row: y + 1, Err: ErrDuplicatePlayer}
				}
			}
			if cell.Goal {
				goals++
				if goals > 1 {
					return 0, 0, nil, &RowError{Row: y + 1, Err: ErrDuplicateGoal}
				}
			}
			cells[game.C(x, y)] = cell
		}
	}

	return width, height, cells, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".csv", ".yaml", ".yml"}
}
