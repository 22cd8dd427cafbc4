// Package level provides level loading for the puzzle.
// This package depends on game but game does not depend on level.
package level

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/lavaqua/internal/game"
	"github.com/vovakirdan/lavaqua/internal/level/formats"
)

// Load failures, matched with errors.Is.
var (
	ErrEmptyLevel      = formats.ErrEmptyLevel
	ErrRowWidth        = formats.ErrRowWidth
	ErrDuplicatePlayer = formats.ErrDuplicatePlayer
	ErrDuplicateGoal   = formats.ErrDuplicateGoal
	ErrUnsupported     = errors.New("unsupported level format")
	ErrNotFound        = errors.New("level not found")
)

// LoadError reports a level that could not be loaded. Row is 1-based and
// zero when the failure is not tied to a row.
type LoadError struct {
	Path string
	Row  int
	Err  error
}

func (e *LoadError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("level %s: row %d: %v", e.Path, e.Row, e.Err)
	}
	return fmt.Sprintf("level %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Cells    map[game.Coord]game.Cell
	Metadata map[string]string
	FilePath string
}

// NewState creates the root state of this level.
func (l *Level) NewState() *game.State {
	return game.NewState(l.Width, l.Height, l.Cells)
}

// Title returns the display name, falling back to the ID.
func (l *Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string

	// OnSkip is called for files LoadAll could not parse. Optional.
	OnSkip func(path string, err error)
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			if l.OnSkip != nil {
				l.OnSkip(path, err)
			}
			return nil
		}

		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, &LoadError{Path: path, Err: err}
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		le := &LoadError{Path: path, Err: err}
		var re *formats.RowError
		if errors.As(err, &re) {
			le.Row = re.Row
			le.Err = re.Err
		}
		return Level{}, le
	}

	id := parsed.ID
	if id == "" {
		id = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return Level{
		ID:       id,
		Name:     parsed.Name,
		Width:    parsed.Width,
		Height:   parsed.Height,
		Cells:    parsed.Cells,
		Metadata: parsed.Metadata,
		FilePath: path,
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Resolve loads a level named on the command line: an existing file path,
// a path relative to Root, or a level ID under Root.
func (l *Loader) Resolve(arg string) (Level, error) {
	if fileExists(arg) {
		return l.LoadFile(arg)
	}
	if l.Root != "" {
		if candidate := filepath.Join(l.Root, arg); fileExists(candidate) {
			return l.LoadFile(candidate)
		}
		if dirExists(l.Root) {
			return l.LoadByID(arg)
		}
	}
	return Level{}, &LoadError{Path: arg, Err: fs.ErrNotExist}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".csv":
		return formats.ParseCSV(data)
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
}
