package search

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lavaqua/internal/game"
)

// ErrNilRoot is returned when Run is called without a root state.
var ErrNilRoot = errors.New("search: nil root state")

// Strategy decides frontier order and cost accumulation.
type Strategy interface {
	// ID is the registry identifier, e.g. "bfs".
	ID() string
	// Name is the human readable name.
	Name() string
	NewFrontier() Frontier
	// Score returns the accumulated cost and frontier priority of child
	// reached from parent. parent is nil for the root.
	Score(parent *Node, child *game.State) (cost, priority int)
}

// Limits bounds a search run. Zero values mean unlimited.
type Limits struct {
	MaxExplored int
	Timeout     time.Duration
}

// DefaultProgressEvery is the expansion interval of progress log lines.
const DefaultProgressEvery = 10000

// ctxCheckEvery is how many pops pass between context checks.
const ctxCheckEvery = 64

// Searcher runs a Strategy. A Searcher holds no per-run state, so one value
// may serve concurrent Run calls.
type Searcher struct {
	strategy      Strategy
	limits        Limits
	logger        *log.Logger
	progressEvery int
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithLimits sets the explored-node and wall-clock limits.
func WithLimits(l Limits) Option {
	return func(s *Searcher) { s.limits = l }
}

// WithLogger sets the logger for progress and summary lines.
func WithLogger(l *log.Logger) Option {
	return func(s *Searcher) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithProgressEvery sets how many expansions pass between progress lines.
// Values <= 0 disable progress lines.
func WithProgressEvery(n int) Option {
	return func(s *Searcher) { s.progressEvery = n }
}

// New creates a Searcher for the strategy.
func New(strategy Strategy, opts ...Option) *Searcher {
	s := &Searcher{
		strategy:      strategy,
		logger:        log.New(io.Discard),
		progressEvery: DefaultProgressEvery,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Strategy returns the strategy this searcher runs.
func (s *Searcher) Strategy() Strategy {
	return s.strategy
}

// Run searches from root until a goal is popped, the frontier empties, a
// limit is hit or ctx is done. Cancellation returns the populated result
// together with the context error.
func (s *Searcher) Run(ctx context.Context, root *game.State) (*Result, error) {
	if root == nil {
		return nil, ErrNilRoot
	}

	runCtx := ctx
	if s.limits.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, s.limits.Timeout)
		defer cancel()
	}

	start := time.Now()
	res := &Result{Algorithm: s.strategy.ID()}
	logger := s.logger.With("algo", s.strategy.ID())

	finish := func(outcome Outcome, goal *Node) *Result {
		res.Outcome = outcome
		res.Elapsed = time.Since(start)
		if goal != nil {
			res.Goal = goal
			res.Path = goal.Steps()
			res.Cost = goal.Cost
			res.Moves = goal.Depth
		}
		logger.Info("search finished",
			"outcome", res.Outcome,
			"moves", res.Moves,
			"cost", res.Cost,
			"explored", res.Explored,
			"generated", res.Generated,
			"elapsed", res.Elapsed.Round(time.Microsecond),
		)
		return res
	}

	frontier := s.strategy.NewFrontier()
	expanded := newStateMap[struct{}]()
	best := newStateMap[int]()
	admit := func(n *Node) {
		frontier.Push(n)
		best.Put(n.State, n.Cost)
		res.Generated++
	}

	cost, priority := s.strategy.Score(nil, root)
	admit(&Node{State: root, Cost: cost, Priority: priority})

	for pops := 0; ; pops++ {
		if pops%ctxCheckEvery == 0 {
			if err := runCtx.Err(); err != nil {
				if ctx.Err() != nil {
					return finish(OutcomeCanceled, nil), ctx.Err()
				}
				return finish(OutcomeLimit, nil), nil
			}
		}

		node := frontier.Pop()
		if node == nil {
			return finish(OutcomeExhausted, nil), nil
		}
		if expanded.Has(node.State) {
			continue
		}
		if s.limits.MaxExplored > 0 && res.Explored >= s.limits.MaxExplored {
			return finish(OutcomeLimit, nil), nil
		}

		expanded.Put(node.State, struct{}{})
		res.Explored++

		if s.progressEvery > 0 && res.Explored%s.progressEvery == 0 {
			logger.Debug("searching",
				"explored", res.Explored,
				"generated", res.Generated,
				"frontier", frontier.Len(),
				"depth", node.Depth,
			)
		}

		if game.GoalTest(node.State) {
			return finish(OutcomeSolved, node), nil
		}

		for _, d := range game.AllValidMoves(node.State) {
			child, ok := game.Transition(node.State, d)
			if !ok || expanded.Has(child) {
				continue
			}
			cost, priority := s.strategy.Score(node, child)
			if prev, seen := best.Get(child); seen && cost >= prev {
				continue
			}
			admit(&Node{
				State:    child,
				Parent:   node,
				Action:   d,
				Cost:     cost,
				Priority: priority,
				Depth:    node.Depth + 1,
			})
		}
	}
}
