// Package scenario loads search problems (grid, start, goal and budget) from
// YAML documents so layouts can be kept in files instead of code.
//
// Example document:
//
//	name: warehouse
//	grid:
//	  - [0, 0, 0]
//	  - [0, 1, 0]
//	  - [0, 0, 0]
//	start: [0, 0]
//	goal: [2, 2]
//	max_iterations: 0        # 0 = floor(rows×cols/2)
//	reachability_check: false
package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/obstacles"
)

// Sentinel errors for scenario validation.
var (
	// ErrMissingGrid indicates a document without a grid.
	ErrMissingGrid = errors.New("scenario: grid is required")
	// ErrBadCell indicates a start or goal that is not a [row, col] pair.
	ErrBadCell = errors.New("scenario: cell must be a [row, col] pair")
	// ErrBadMaxIterations indicates a negative max_iterations.
	ErrBadMaxIterations = errors.New("scenario: max_iterations must be non-negative")
)

// Scenario is one search problem.
type Scenario struct {
	Name              string  `yaml:"name"`
	Grid              [][]int `yaml:"grid"`
	Start             []int   `yaml:"start"`
	Goal              []int   `yaml:"goal"`
	MaxIterations     int     `yaml:"max_iterations"`
	ReachabilityCheck bool    `yaml:"reachability_check"`
}

// Default returns the built-in warehouse scenario: the 10×10 reference floor
// from (0,0) to (9,9) with the default budget.
func Default() Scenario {
	return Scenario{
		Name:  "warehouse",
		Grid:  obstacles.Warehouse(),
		Start: []int{0, 0},
		Goal:  []int{9, 9},
	}
}

// Load reads and validates the scenario file at path.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Parse decodes and validates a YAML scenario document.
func Parse(data []byte) (Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("scenario: parse: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}

	return s, nil
}

// Validate checks the document shape. Grid rectangularity is left to
// gridgraph.New so that callers see the same errors as the engine reports.
func (s Scenario) Validate() error {
	if len(s.Grid) == 0 {
		return ErrMissingGrid
	}
	if len(s.Start) != 2 {
		return fmt.Errorf("%w: start %v", ErrBadCell, s.Start)
	}
	if len(s.Goal) != 2 {
		return fmt.Errorf("%w: goal %v", ErrBadCell, s.Goal)
	}
	if s.MaxIterations < 0 {
		return fmt.Errorf("%w: got %d", ErrBadMaxIterations, s.MaxIterations)
	}

	return nil
}

// StartCell returns Start as a Cell. Call Validate first.
func (s Scenario) StartCell() gridgraph.Cell { return gridgraph.C(s.Start[0], s.Start[1]) }

// GoalCell returns Goal as a Cell. Call Validate first.
func (s Scenario) GoalCell() gridgraph.Cell { return gridgraph.C(s.Goal[0], s.Goal[1]) }

// Options converts the budget settings into engine options.
func (s Scenario) Options() []astar.Option {
	var opts []astar.Option
	if s.MaxIterations > 0 {
		opts = append(opts, astar.WithMaxIterations(s.MaxIterations))
	}
	if s.ReachabilityCheck {
		opts = append(opts, astar.WithReachabilityCheck())
	}

	return opts
}

// Solve builds the grid and runs the search. extra options are applied after
// the scenario's own, so they take precedence.
func (s Scenario) Solve(extra ...astar.Option) (*gridgraph.Grid, astar.Result, error) {
	if err := s.Validate(); err != nil {
		return nil, astar.Result{}, err
	}
	g, err := gridgraph.New(s.Grid)
	if err != nil {
		return nil, astar.Result{}, err
	}
	e, err := astar.New(g, append(s.Options(), extra...)...)
	if err != nil {
		return nil, astar.Result{}, err
	}
	res, err := e.Search(s.StartCell(), s.GoalCell())
	if err != nil {
		return nil, astar.Result{}, err
	}

	return g, res, nil
}
