package algo_test

import (
	"context"
	"sync"
	"testing"

	"github.com/vovakirdan/lavaqua/internal/game"
	"github.com/vovakirdan/lavaqua/internal/registry"
	"github.com/vovakirdan/lavaqua/internal/search"
	"github.com/vovakirdan/lavaqua/internal/search/algo"
)

// board builds a root state from one string per row.
// Symbols: P player, L lava, A water, # wall, B block, G goal, O orb,
// W hazard wall, 0-9 numbered block, '.' empty.
func board(t *testing.T, rows ...string) *game.State {
	t.Helper()
	cells := make(map[game.Coord]game.Cell)
	for y, row := range rows {
		for x, ch := range row {
			var cell game.Cell
			switch {
			case ch == 'P':
				cell.Player = true
			case ch == 'L':
				cell.Content = game.ContentLava
			case ch == 'A':
				cell.Content = game.ContentAqua
			case ch == '#':
				cell.Content = game.ContentWall
			case ch == 'B':
				cell.Content = game.ContentBlock
			case ch == 'G':
				cell.Goal = true
			case ch == 'O':
				cell.Orb = true
			case ch == 'W':
				cell.HazardWall = true
			case ch >= '0' && ch <= '9':
				cell.Content = game.ContentNumbered
				cell.Moves = int(ch - '0')
			case ch == '.':
				continue
			default:
				t.Fatalf("unknown symbol %q at (%d,%d)", ch, x, y)
			}
			cells[game.C(x, y)] = cell
		}
	}
	return game.NewState(len(rows[0]), len(rows), cells)
}

func run(t *testing.T, strategy search.Strategy, root *game.State) *search.Result {
	t.Helper()
	res, err := search.New(strategy).Run(context.Background(), root)
	if err != nil {
		t.Fatalf("%s: Run failed: %v", strategy.ID(), err)
	}
	return res
}

// checkPath replays the solution through the engine and verifies it wins.
func checkPath(t *testing.T, root *game.State, res *search.Result) {
	t.Helper()
	if !res.Solved() {
		t.Fatalf("%s: expected solved, got %s", res.Algorithm, res.Outcome)
	}
	cur := root
	for i, d := range res.Actions() {
		next, ok := game.Transition(cur, d)
		if !ok {
			t.Fatalf("%s: step %d (%s) has no successor", res.Algorithm, i, d)
		}
		if !next.Equal(res.Path[i+1].State) {
			t.Fatalf("%s: step %d diverges from the recorded path", res.Algorithm, i)
		}
		cur = next
	}
	if !game.GoalTest(cur) {
		t.Errorf("%s: replayed path does not reach the goal:\n%s", res.Algorithm, game.RenderASCII(cur))
	}
	if res.Moves != len(res.Actions()) {
		t.Errorf("%s: moves %d, actions %d", res.Algorithm, res.Moves, len(res.Actions()))
	}
	if res.Explored < 1 || res.Explored > res.Generated {
		t.Errorf("%s: bad counters explored %d generated %d", res.Algorithm, res.Explored, res.Generated)
	}
}

func allStrategies() []search.Strategy {
	return []search.Strategy{algo.BFS{}, algo.DFS{}, algo.UCS{}, algo.HillClimbing{}}
}

func TestLavaCorridorScenario(t *testing.T) {
	root := board(t,
		"L#P.G",
		".....",
		".....",
	)

	for _, s := range allStrategies() {
		t.Run(s.ID(), func(t *testing.T) {
			res := run(t, s, root)
			checkPath(t, root, res)
		})
	}

	res := run(t, algo.BFS{}, root)
	if res.Moves != 2 {
		t.Errorf("bfs: expected 2 moves, got %d", res.Moves)
	}
}

func TestBFSShortestPath(t *testing.T) {
	tests := []struct {
		name  string
		rows  []string
		moves int
	}{
		{"straight", []string{"P..G"}, 3},
		{"orb detours", []string{"P..O", "##.#", "O..G"}, 11},
		{"numbered block", []string{"P1G", "..."}, 4},
		{"push block", []string{"PB..", "##2#", "G..."}, 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			root := board(t, tc.rows...)
			res := run(t, algo.BFS{}, root)
			checkPath(t, root, res)
			if res.Moves != tc.moves {
				t.Errorf("expected %d moves, got %d: %v", tc.moves, res.Moves, res.Actions())
			}
			if res.Cost != res.Moves {
				t.Errorf("bfs cost should equal depth, got %d for %d moves", res.Cost, res.Moves)
			}
		})
	}
}

func TestUCSCostsLavaGrowth(t *testing.T) {
	root := board(t, "P..G")
	res := run(t, algo.UCS{}, root)
	checkPath(t, root, res)
	if res.Cost != 0 {
		t.Errorf("expected cost 0 without lava, got %d", res.Cost)
	}

	root = board(t,
		"L#P.G",
		".....",
		".....",
	)
	res = run(t, algo.UCS{}, root)
	checkPath(t, root, res)

	want := 0
	for i := 1; i < len(res.Path); i++ {
		want += algo.StepCost(res.Path[i-1].State, res.Path[i].State)
	}
	if res.Cost != want {
		t.Errorf("cost %d does not match summed step costs %d", res.Cost, want)
	}
	if res.Cost != 3 {
		t.Errorf("expected lava growth 1+2, got %d", res.Cost)
	}
}

func TestStepCostNeverNegative(t *testing.T) {
	// Pushing the block onto lava removes lava.
	prev := board(t, "PBL")
	next, ok := game.Transition(prev, game.DirRight)
	if !ok {
		t.Fatal("expected push to succeed")
	}
	if got := algo.StepCost(prev, next); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestHeuristic(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want int
	}{
		{"goal only", []string{"P..G"}, 3},
		{"orbs in board order", []string{"..O", "P.G", "O.."}, 10},
		{"no goal", []string{"P.O"}, 2},
		{"no player", []string{"..G"}, 0},
		{"on goal", []string{"G"}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := algo.Heuristic(board(t, tc.rows...)); got != tc.want {
				t.Errorf("expected %d, got %d", tc.want, got)
			}
		})
	}

	dead, ok := game.Transition(board(t, "L.", ".P"), game.DirLeft)
	if !ok || !game.IsPlayerDead(dead) {
		t.Fatal("expected the player to die")
	}
	if got := algo.Heuristic(dead); got != 0 {
		t.Errorf("dead player should score 0, got %d", got)
	}
}

func TestHillClimbingRootCost(t *testing.T) {
	root := board(t, "P..G")
	cost, priority := algo.HillClimbing{}.Score(nil, root)
	if cost != 3 || priority != 3 {
		t.Errorf("expected root cost 3, got %d/%d", cost, priority)
	}
}

func TestUnsolvable(t *testing.T) {
	root := board(t,
		"P.#.",
		"..#G",
	)
	for _, s := range allStrategies() {
		t.Run(s.ID(), func(t *testing.T) {
			res := run(t, s, root)
			if res.Outcome != search.OutcomeExhausted {
				t.Fatalf("expected exhausted, got %s", res.Outcome)
			}
			if res.Explored != 4 {
				t.Errorf("expected 4 reachable states, got %d", res.Explored)
			}
		})
	}
}

func TestLavaCutsOffGoal(t *testing.T) {
	// The lava reaches the only corridor before the player can pass.
	root := board(t,
		"...L",
		"P...",
		"###G",
	)
	res := run(t, algo.BFS{}, root)
	if res.Solved() {
		t.Fatalf("expected no solution, got %v", res.Actions())
	}
}

func TestConcurrentRunsShareRoot(t *testing.T) {
	root := board(t,
		"L....",
		".#.#.",
		"P.O.G",
	)

	want := make(map[string]*search.Result)
	for _, s := range allStrategies() {
		want[s.ID()] = run(t, s, root)
	}

	var wg sync.WaitGroup
	results := make([]*search.Result, 8)
	errs := make([]error, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s := allStrategies()[i%4]
			results[i], errs[i] = search.New(s).Run(context.Background(), root)
		}(i)
	}
	wg.Wait()

	for i, res := range results {
		if errs[i] != nil {
			t.Fatalf("run %d failed: %v", i, errs[i])
		}
		w := want[res.Algorithm]
		if res.Outcome != w.Outcome || res.Moves != w.Moves || res.Explored != w.Explored || res.Generated != w.Generated {
			t.Errorf("%s: concurrent run differs: %+v vs %+v", res.Algorithm, res, w)
		}
	}
}

func TestRegistered(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"bfs", "bfs"},
		{"breadth first search", "bfs"},
		{"DFS", "dfs"},
		{"depth-first search", "dfs"},
		{"uniform_cost_search", "ucs"},
		{"hc", "hc"},
		{"Hill Climbing", "hc"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := registry.Create(tc.name)
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			if s.ID() != tc.id {
				t.Errorf("expected %s, got %s", tc.id, s.ID())
			}
		})
	}
}
