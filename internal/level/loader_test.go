package level_test

import (
	"errors"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"testing"

	"github.com/vovakirdan/lavaqua/internal/game"
	"github.com/vovakirdan/lavaqua/internal/level"
)

// testdataPath returns path to testdata/<name>.
func testdataPath(name string) string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "testdata", name)
}

func TestLoaderLoadAll(t *testing.T) {
	var skipped []string
	loader := level.NewLoader(testdataPath("levels"))
	loader.OnSkip = func(path string, err error) {
		skipped = append(skipped, path)
	}

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	if len(lvls) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(lvls))
	}
	if lvls[0].ID != "alpha" || lvls[1].ID != "beta" {
		t.Errorf("expected [alpha beta], got [%s %s]", lvls[0].ID, lvls[1].ID)
	}
	if len(skipped) != 0 {
		t.Errorf("non-level files should be ignored silently, skipped %v", skipped)
	}
}

func TestLoaderAlphaCells(t *testing.T) {
	loader := level.NewLoader(testdataPath("levels"))

	lvl, err := loader.LoadByID("alpha")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Width != 4 || lvl.Height != 3 {
		t.Fatalf("expected 4x3, got %dx%d", lvl.Width, lvl.Height)
	}
	if lvl.Title() != "alpha" {
		t.Errorf("title should fall back to the ID, got %q", lvl.Title())
	}

	s := lvl.NewState()

	if pos, ok := s.Player(); !ok || pos != game.C(0, 0) {
		t.Errorf("player: got %v (%v)", pos, ok)
	}
	if pos, ok := s.Goal(); !ok || pos != game.C(2, 1) {
		t.Errorf("goal: got %v (%v)", pos, ok)
	}

	tests := []struct {
		name string
		got  []game.Coord
		want []game.Coord
	}{
		{"orbs", s.Orbs(), []game.Coord{game.C(3, 1), game.C(0, 2)}},
		{"lava", s.Lava(), []game.Coord{game.C(1, 0)}},
		{"aqua", s.Aqua(), []game.Coord{game.C(2, 0)}},
		{"numbered", s.Numbered(), []game.Coord{game.C(1, 1)}},
		{"blocks", s.Blocks(), []game.Coord{game.C(0, 1)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !slices.Equal(tc.got, tc.want) {
				t.Errorf("got %v, want %v", tc.got, tc.want)
			}
		})
	}

	if got := s.Get(game.C(1, 1)).Moves; got != 3 {
		t.Errorf("expected numbered block with 3 moves, got %d", got)
	}
	if !s.Get(game.C(3, 2)).HazardWall {
		t.Error("expected hazard wall at (3,2)")
	}
	if !s.Get(game.C(1, 2)).IsZero() {
		t.Error("unknown token should load as an empty cell")
	}
	if got := s.Get(game.C(3, 0)).Content; got != game.ContentWall {
		t.Errorf("expected wall at (3,0), got %v", got)
	}
}

func TestLoaderYAMLLevel(t *testing.T) {
	loader := level.NewLoader(testdataPath("levels"))

	lvl, err := loader.LoadByID("beta")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Name != "Beta Level" || lvl.Title() != "Beta Level" {
		t.Errorf("unexpected name %q", lvl.Name)
	}
	if lvl.Metadata["author"] != "tests" {
		t.Errorf("expected metadata author=tests, got %v", lvl.Metadata)
	}

	cell := lvl.NewState().Get(game.C(1, 1))
	if cell.Content != game.ContentNumbered || cell.Moves != 12 {
		t.Errorf("expected numbered block with 12 moves, got %+v", cell)
	}
}

func TestLoaderBrokenFiles(t *testing.T) {
	loader := level.NewLoader(testdataPath("broken"))

	tests := []struct {
		file    string
		want    error
		wantRow int
	}{
		{"ragged.csv", level.ErrRowWidth, 2},
		{"gap.csv", level.ErrRowWidth, 2},
		{"empty.csv", level.ErrEmptyLevel, 0},
		{"twoplayers.csv", level.ErrDuplicatePlayer, 2},
		{"twogoals.yaml", level.ErrDuplicateGoal, 2},
		{"missing.csv", fs.ErrNotExist, 0},
	}

	for _, tc := range tests {
		t.Run(tc.file, func(t *testing.T) {
			_, err := loader.LoadFile(filepath.Join(loader.Root, tc.file))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}

			var le *level.LoadError
			if !errors.As(err, &le) {
				t.Fatalf("expected *LoadError, got %T", err)
			}
			if le.Row != tc.wantRow {
				t.Errorf("expected row %d, got %d", tc.wantRow, le.Row)
			}
		})
	}
}

func TestLoaderSkipsBrokenFiles(t *testing.T) {
	skipped := map[string]error{}
	loader := level.NewLoader(testdataPath("broken"))
	loader.OnSkip = func(path string, err error) {
		skipped[filepath.Base(path)] = err
	}

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	if len(lvls) != 1 || lvls[0].ID != "good" {
		t.Errorf("expected only the good level, got %d levels", len(lvls))
	}
	for _, name := range []string{"ragged.csv", "gap.csv", "empty.csv", "twoplayers.csv", "twogoals.yaml"} {
		if skipped[name] == nil {
			t.Errorf("expected %s to be reported as skipped", name)
		}
	}
}

func TestLoaderNotFound(t *testing.T) {
	loader := level.NewLoader(testdataPath("levels"))

	_, err := loader.LoadByID("nonexistent")
	if !errors.Is(err, level.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoaderResolve(t *testing.T) {
	loader := level.NewLoader(testdataPath("levels"))

	tests := []struct {
		name string
		arg  string
		want string
	}{
		{"absolute path", filepath.Join(testdataPath("levels"), "alpha.csv"), "alpha"},
		{"relative to root", "beta.yaml", "beta"},
		{"level id", "alpha", "alpha"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lvl, err := loader.Resolve(tc.arg)
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", tc.arg, err)
			}
			if lvl.ID != tc.want {
				t.Errorf("expected %s, got %s", tc.want, lvl.ID)
			}
		})
	}

	if _, err := level.NewLoader("").Resolve("nope.csv"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist without a root, got %v", err)
	}
}

func TestListIDs(t *testing.T) {
	ids, err := level.NewLoader(testdataPath("levels")).ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	if !slices.Equal(ids, []string{"alpha", "beta"}) {
		t.Errorf("unexpected ids %v", ids)
	}
}
