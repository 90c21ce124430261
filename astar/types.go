package astar

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by the astar package.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to New.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrBadMaxIterations indicates that WithMaxIterations received a value below 1.
	ErrBadMaxIterations = errors.New("astar: MaxIterations must be at least 1")

	// ErrIterationCap reports a search aborted for exceeding its expansion budget.
	ErrIterationCap = errors.New("astar: iteration cap exceeded")

	// ErrUnreachable reports a search that exhausted its open set.
	ErrUnreachable = errors.New("astar: goal unreachable")
)

// Status classifies the outcome of a search.
type Status int

const (
	// Reached means the goal was expanded; Path ends at the goal.
	Reached Status = iota

	// FailedIterationCap means the expansion budget ran out; Path is a partial trace.
	FailedIterationCap

	// FailedUnreachable means the open set was exhausted; Path is nil.
	FailedUnreachable
)

// String returns a stable, lowercase name for the status.
func (s Status) String() string {
	switch s {
	case Reached:
		return "reached"
	case FailedIterationCap:
		return "failed-iteration-cap"
	case FailedUnreachable:
		return "failed-unreachable"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result contains the outcome of a search.
type Result struct {
	Status   Status           // How the search ended
	Path     []gridgraph.Cell // Start to goal, start to last expanded cell, or nil
	Expanded int              // Number of positions expanded
	Cost     int              // g of the last cell in Path (0 when Path is nil)
}

// Found reports whether the goal was reached.
func (r Result) Found() bool { return r.Status == Reached }

// Steps returns the number of moves on a successful path, or 0 otherwise.
func (r Result) Steps() int {
	if r.Status != Reached || len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}

// Last returns the final cell of Path, if any.
func (r Result) Last() (gridgraph.Cell, bool) {
	if len(r.Path) == 0 {
		return gridgraph.Cell{}, false
	}

	return r.Path[len(r.Path)-1], true
}

// Err maps a failed status to its sentinel error, or nil for Reached.
func (r Result) Err() error {
	switch r.Status {
	case Reached:
		return nil
	case FailedIterationCap:
		return fmt.Errorf("%w after %d expansions", ErrIterationCap, r.Expanded)
	default:
		return ErrUnreachable
	}
}

// Step describes one expansion, passed to the WithTrace hook.
type Step struct {
	Index   int            // 1-based expansion number
	Cell    gridgraph.Cell // Position being expanded
	G, H, F int            // Costs of the expanded node
	OpenLen int            // Entries left in the open set after the pop
}

// Options configures a search.
//
//   - MaxIterations: expansion budget; 0 selects floor(rows×cols/2), at least 1.
//   - ReachabilityCheck: fail fast with FailedUnreachable when start and goal
//     lie in different free regions, independently of the budget.
//   - Logger: receives debug records for expansions and outcomes.
//   - Trace: called once per expansion, in order.
type Options struct {
	MaxIterations     int
	ReachabilityCheck bool
	Logger            *slog.Logger
	Trace             func(Step)
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithMaxIterations overrides the expansion budget.
// Must pass n ≥ 1; smaller values panic with ErrBadMaxIterations.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// WithReachabilityCheck enables the free-region pre-check.
func WithReachabilityCheck() Option {
	return func(o *Options) {
		o.ReachabilityCheck = true
	}
}

// WithLogger routes debug output to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTrace registers a per-expansion hook.
func WithTrace(fn func(Step)) Option {
	return func(o *Options) {
		o.Trace = fn
	}
}

// DefaultOptions returns Options with the default budget formula,
// no pre-check, no trace hook and a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 0,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// DefaultMaxIterations is the budget formula floor(rows×cols/2), clamped to 1
// so that a single-cell grid can still expand its start.
func DefaultMaxIterations(g *gridgraph.Grid) int {
	n := g.Rows() * g.Cols() / 2
	if n < 1 {
		return 1
	}

	return n
}

// SquaredEuclidean returns Δrow² + Δcol², the heuristic used by Search.
func SquaredEuclidean(a, b gridgraph.Cell) int {
	dr, dc := a.Row-b.Row, a.Col-b.Col

	return dr*dr + dc*dc
}
