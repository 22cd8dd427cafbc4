package report

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lavaqua/internal/game"
)

// Theme contains all configurable visual styles for reports.
type Theme struct {
	// Board cell styles
	Player     lipgloss.Style
	Lava       lipgloss.Style
	Aqua       lipgloss.Style
	Wall       lipgloss.Style
	Block      lipgloss.Style
	Numbered   lipgloss.Style
	Goal       lipgloss.Style
	Orb        lipgloss.Style
	HazardWall lipgloss.Style
	EmptyCell  lipgloss.Style

	// Text styles
	Title     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Status    lipgloss.Style
	Good      lipgloss.Style
	Bad       lipgloss.Style
	Separator lipgloss.Style
}

// DefaultTheme returns the default visual theme bound to renderer r.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		// Cell colors
		Player:     r.NewStyle().Foreground(lipgloss.Color("226")).Bold(true), // Bright yellow
		Lava:       r.NewStyle().Foreground(lipgloss.Color("196")),            // Red
		Aqua:       r.NewStyle().Foreground(lipgloss.Color("39")),             // Sky blue
		Wall:       r.NewStyle().Foreground(lipgloss.Color("245")),            // Medium gray
		Block:      r.NewStyle().Foreground(lipgloss.Color("180")),            // Tan
		Numbered:   r.NewStyle().Foreground(lipgloss.Color("214")),            // Orange
		Goal:       r.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),  // Lime green
		Orb:        r.NewStyle().Foreground(lipgloss.Color("135")),            // Medium purple
		HazardWall: r.NewStyle().Foreground(lipgloss.Color("88")),             // Dark red
		EmptyCell:  r.NewStyle().Foreground(lipgloss.Color("238")),            // Dark gray

		// Text
		Title:     r.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Label:     r.NewStyle().Foreground(lipgloss.Color("245")),
		Value:     r.NewStyle().Foreground(lipgloss.Color("255")),
		Status:    r.NewStyle().Foreground(lipgloss.Color("250")),
		Good:      r.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		Bad:       r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Separator: r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme(r *lipgloss.Renderer) Theme {
	theme := DefaultTheme(r)
	theme.Player = r.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.Lava = r.NewStyle().Foreground(lipgloss.Color("250")).Reverse(true)
	theme.Aqua = r.NewStyle().Foreground(lipgloss.Color("245")).Underline(true)
	theme.Goal = r.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.Orb = r.NewStyle().Foreground(lipgloss.Color("250"))
	theme.Good = r.NewStyle().Bold(true)
	theme.Bad = r.NewStyle().Reverse(true)
	return theme
}

// ThemeByName returns the named theme bound to r. Unknown names fall back
// to the default theme.
func ThemeByName(name string, r *lipgloss.Renderer) Theme {
	switch name {
	case "mono":
		return MonochromeTheme(r)
	default:
		return DefaultTheme(r)
	}
}

// CellStyle picks the style for a cell, following the same precedence as
// game.Cell.Char. Lava or water over a goal, orb or hazard wall is
// underlined.
func (t Theme) CellStyle(c game.Cell) lipgloss.Style {
	if c.Player {
		return t.Player
	}
	switch c.Content {
	case game.ContentWall:
		return t.Wall
	case game.ContentBlock:
		return t.Block
	case game.ContentNumbered:
		return t.Numbered
	case game.ContentLava:
		return flagged(t.Lava, c)
	case game.ContentAqua:
		return flagged(t.Aqua, c)
	}
	switch {
	case c.Goal:
		return t.Goal
	case c.Orb:
		return t.Orb
	case c.HazardWall:
		return t.HazardWall
	}
	return t.EmptyCell
}

func flagged(style lipgloss.Style, c game.Cell) lipgloss.Style {
	if c.Goal || c.Orb || c.HazardWall {
		return style.Underline(true)
	}
	return style
}
