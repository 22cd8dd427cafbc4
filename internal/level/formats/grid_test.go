package formats_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/lavaqua/internal/game"
	"github.com/vovakirdan/lavaqua/internal/level/formats"
)

func TestParseToken(t *testing.T) {
	tests := []struct {
		token string
		want  game.Cell
	}{
		{"P", game.Cell{Player: true}},
		{" L ", game.Cell{Content: game.ContentLava}},
		{"A", game.Cell{Content: game.ContentAqua}},
		{"#", game.Cell{Content: game.ContentWall}},
		{"B", game.Cell{Content: game.ContentBlock}},
		{"G", game.Cell{Goal: true}},
		{"O", game.Cell{Orb: true}},
		{"W", game.Cell{HazardWall: true}},
		{"7", game.Cell{Content: game.ContentNumbered, Moves: 7}},
		{"15", game.Cell{Content: game.ContentNumbered, Moves: 15}},
		{"", game.Cell{}},
		{" ", game.Cell{}},
		{"?", game.Cell{}},
		{"p", game.Cell{}},
		{"-3", game.Cell{}},
	}

	for _, tc := range tests {
		t.Run(tc.token, func(t *testing.T) {
			if got := formats.ParseToken(tc.token); got != tc.want {
				t.Errorf("ParseToken(%q) = %+v, want %+v", tc.token, got, tc.want)
			}
		})
	}
}

func TestParseGridRowErrors(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want error
		row  int
	}{
		{"ragged", [][]string{{"P", "G"}, {" "}}, formats.ErrRowWidth, 2},
		{"two players", [][]string{{"P", "P"}}, formats.ErrDuplicatePlayer, 1},
		{"two goals", [][]string{{"G", "P"}, {"G", " "}}, formats.ErrDuplicateGoal, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := formats.ParseGrid(tc.rows)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			var re *formats.RowError
			if !errors.As(err, &re) || re.Row != tc.row {
				t.Errorf("expected row %d, got %v", tc.row, err)
			}
		})
	}

	if _, _, _, err := formats.ParseGrid(nil); !errors.Is(err, formats.ErrEmptyLevel) {
		t.Errorf("expected ErrEmptyLevel, got %v", err)
	}
}

func TestParseCSVTrailingBlankLines(t *testing.T) {
	lvl, err := formats.ParseCSV([]byte("P, ,G\n#,1,#\n\n\n"))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if lvl.Width != 3 || lvl.Height != 2 {
		t.Errorf("expected 3x2, got %dx%d", lvl.Width, lvl.Height)
	}
	if len(lvl.Cells) != 5 {
		t.Errorf("expected 5 non-empty cells, got %d", len(lvl.Cells))
	}
}

func TestParseCSVBlankRows(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
		row  int
	}{
		{"between rows", "P, ,G\n\n#,1,#\n", formats.ErrRowWidth, 2},
		{"before first row", "\nP, ,G\n#,1,#\n", formats.ErrRowWidth, 1},
		{"two in a row", "P, ,G\n#,1,#\n\n\n , , \n", formats.ErrRowWidth, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := formats.ParseCSV([]byte(tc.data))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			var re *formats.RowError
			if !errors.As(err, &re) || re.Row != tc.row {
				t.Errorf("expected row %d, got %v", tc.row, err)
			}
		})
	}

	if _, err := formats.ParseCSV([]byte("\n\n")); !errors.Is(err, formats.ErrEmptyLevel) {
		t.Errorf("blank file: expected ErrEmptyLevel, got %v", err)
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`id: demo
name: Demo
rows:
  - ["P", "O"]
  - ["#", "G"]
`)
	lvl, err := formats.ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if lvl.ID != "demo" || lvl.Name != "Demo" {
		t.Errorf("unexpected header %q %q", lvl.ID, lvl.Name)
	}
	if !lvl.Cells[game.C(1, 1)].Goal {
		t.Error("expected goal at (1,1)")
	}

	if _, err := formats.ParseYAML([]byte("rows: [")); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}
