// Package report renders search results and boards as text, plain or
// styled with lipgloss.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/vovakirdan/lavaqua/internal/game"
	"github.com/vovakirdan/lavaqua/internal/search"
)

// Colour modes accepted by ColorEnabled.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Options configures a Reporter.
type Options struct {
	Color      bool
	ShowBoards bool
	MaxBoards  int // 0 = no cap
}

// Reporter formats results for one output.
type Reporter struct {
	opts     Options
	renderer *lipgloss.Renderer
	theme    Theme
}

// New creates a reporter writing styles for w.
func New(w io.Writer, opts Options) *Reporter {
	r := lipgloss.NewRenderer(w)
	if opts.Color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Reporter{
		opts:     opts,
		renderer: r,
		theme:    DefaultTheme(r),
	}
}

// SetTheme replaces the theme. The theme should come from Renderer.
func (r *Reporter) SetTheme(t Theme) {
	r.theme = t
}

// Renderer returns the renderer the reporter's styles are bound to.
func (r *Reporter) Renderer() *lipgloss.Renderer {
	return r.renderer
}

// ColorEnabled resolves a colour mode for w. Auto enables colour only for
// terminals, and never when NO_COLOR is set.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Board renders a state with its status line.
func (r *Reporter) Board(s *game.State) string {
	if !r.opts.Color {
		return game.RenderASCII(s)
	}

	var sb strings.Builder
	sb.WriteString(r.theme.Status.Render(game.StatusLine(s)))
	sb.WriteString("\n")
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.Get(game.C(x, y))
			sb.WriteString(r.theme.CellStyle(cell).Render(string(cell.Char())))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Summary renders the statistics of one run.
func (r *Reporter) Summary(level string, res *search.Result) string {
	var sb strings.Builder

	row := func(label, value string) {
		sb.WriteString(r.theme.Label.Render(fmt.Sprintf("%-10s", label+":")))
		sb.WriteString(" ")
		sb.WriteString(value)
		sb.WriteString("\n")
	}

	row("Level", r.theme.Title.Render(level))
	row("Algorithm", r.theme.Value.Render(res.Algorithm))
	row("Outcome", r.outcome(res.Outcome))
	if res.Solved() {
		row("Moves", r.theme.Value.Render(humanize.Comma(int64(res.Moves))))
		row("Cost", r.theme.Value.Render(humanize.Comma(int64(res.Cost))))
	}
	row("Explored", r.theme.Value.Render(humanize.Comma(int64(res.Explored))))
	row("Generated", r.theme.Value.Render(humanize.Comma(int64(res.Generated))))
	row("Elapsed", r.theme.Value.Render(formatElapsed(res.Elapsed)))
	if res.Solved() {
		row("Actions", r.theme.Value.Render(FormatActions(res.Actions())))
	}
	return sb.String()
}

// Path renders the solution path. With ShowBoards every state is drawn,
// up to MaxBoards.
func (r *Reporter) Path(res *search.Result) string {
	if !res.Solved() {
		return r.theme.Bad.Render("no solution") + "\n"
	}

	var sb strings.Builder
	sb.WriteString(r.theme.Title.Render(fmt.Sprintf("Path (%d moves)", res.Moves)))
	sb.WriteString("\n")
	sb.WriteString(FormatActions(res.Actions()))
	sb.WriteString("\n")

	if !r.opts.ShowBoards {
		return sb.String()
	}

	for i, step := range res.Path {
		if r.opts.MaxBoards > 0 && i >= r.opts.MaxBoards {
			sb.WriteString(r.theme.Separator.Render(
				fmt.Sprintf("... %s more boards", humanize.Comma(int64(len(res.Path)-i)))))
			sb.WriteString("\n")
			break
		}
		sb.WriteString("\n")
		label := "start"
		if step.HasAction {
			label = fmt.Sprintf("%d. %s", i, step.Action)
		}
		sb.WriteString(r.theme.Label.Render(label))
		sb.WriteString("\n")
		sb.WriteString(r.Board(step.State))
	}
	return sb.String()
}

// Compare renders several runs over the same level as a table.
func (r *Reporter) Compare(level string, results []*search.Result) string {
	rows := make([][]string, 0, len(results))
	for _, res := range results {
		moves, cost := "-", "-"
		if res.Solved() {
			moves = humanize.Comma(int64(res.Moves))
			cost = humanize.Comma(int64(res.Cost))
		}
		rows = append(rows, []string{
			res.Algorithm,
			string(res.Outcome),
			moves,
			cost,
			humanize.Comma(int64(res.Explored)),
			humanize.Comma(int64(res.Generated)),
			formatElapsed(res.Elapsed),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.theme.Separator).
		Headers("ALGORITHM", "OUTCOME", "MOVES", "COST", "EXPLORED", "GENERATED", "ELAPSED").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := r.renderer.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Inherit(r.theme.Title)
			}
			if col == 1 && row >= 0 && row < len(results) {
				if results[row].Solved() {
					return style.Inherit(r.theme.Good)
				}
				return style.Inherit(r.theme.Bad)
			}
			return style
		})

	return r.theme.Title.Render(level) + "\n" + t.String() + "\n"
}

func (r *Reporter) outcome(o search.Outcome) string {
	if o == search.OutcomeSolved {
		return r.theme.Good.Render(string(o))
	}
	return r.theme.Bad.Render(string(o))
}

// FormatActions renders a move sequence as space-separated letters.
func FormatActions(actions []game.Dir) string {
	if len(actions) == 0 {
		return "(none)"
	}
	letters := make([]string, len(actions))
	for i, d := range actions {
		letters[i] = d.Letter()
	}
	return strings.Join(letters, " ")
}

func formatElapsed(d time.Duration) string {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond).String()
	case d >= time.Millisecond:
		return d.Round(10 * time.Microsecond).String()
	default:
		return d.Round(time.Microsecond).String()
	}
}
