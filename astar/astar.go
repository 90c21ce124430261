package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Engine runs searches over one immutable grid.
type Engine struct {
	grid    *gridgraph.Grid
	options Options
}

// New returns an Engine bound to grid and configured by opts.
// Returns ErrNilGrid if grid is nil.
func New(grid *gridgraph.Grid, opts ...Option) (*Engine, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = DefaultMaxIterations(grid)
	}

	return &Engine{grid: grid, options: cfg}, nil
}

// Grid returns the grid the engine searches.
func (e *Engine) Grid() *gridgraph.Grid { return e.grid }

// MaxIterations returns the effective expansion budget.
func (e *Engine) MaxIterations() int { return e.options.MaxIterations }

// Search validates values as a grid and runs a single search on it.
// Malformed grids fail with gridgraph.ErrEmptyGrid or gridgraph.ErrNonRectangular
// before any expansion takes place.
func Search(values [][]int, start, goal gridgraph.Cell, opts ...Option) (Result, error) {
	g, err := gridgraph.New(values)
	if err != nil {
		return Result{}, err
	}
	e, err := New(g, opts...)
	if err != nil {
		return Result{}, err
	}

	return e.Search(start, goal)
}

// Search finds a path from start to goal.
//
// The returned error is non-nil only for invalid arguments (start or goal
// outside the grid); search failures are reported through Result.Status.
//
// Complexity:
//
//   - Time:  O(N log N) for N = nodes queued, bounded by 8×MaxIterations.
//   - Space: O(W×H + N).
func (e *Engine) Search(start, goal gridgraph.Cell) (Result, error) {
	if !e.grid.InBounds(start) {
		return Result{}, fmt.Errorf("%w: start %v", gridgraph.ErrOutOfBounds, start)
	}
	if !e.grid.InBounds(goal) {
		return Result{}, fmt.Errorf("%w: goal %v", gridgraph.ErrOutOfBounds, goal)
	}

	r := newRunner(e.grid, e.options, start, goal)
	res := r.run()
	e.options.Logger.Debug("astar: search finished",
		"start", start.String(),
		"goal", goal.String(),
		"status", res.Status.String(),
		"expanded", res.Expanded,
		"path_len", len(res.Path),
	)

	return res, nil
}

// node is one entry of the search arena. Its costs never change after creation.
type node struct {
	pos     gridgraph.Cell
	parent  int // arena index of the node it was expanded from; -1 for the root
	g, h, f int
}

// runner holds the mutable state for a single search.
type runner struct {
	grid    *gridgraph.Grid
	options Options
	start   gridgraph.Cell
	goal    gridgraph.Cell

	nodes    []node  // arena; index order is creation order
	open     openSet // pending arena indices
	closed   []int   // expanded arena indices, in expansion order
	isClosed []bool  // per-cell flag mirroring closed, for O(1) position checks
	openG    []int   // per-cell lowest g among queued nodes; MaxInt if none
}

func newRunner(grid *gridgraph.Grid, options Options, start, goal gridgraph.Cell) *runner {
	size := grid.Size()
	r := &runner{
		grid:     grid,
		options:  options,
		start:    start,
		goal:     goal,
		nodes:    make([]node, 0, 64),
		closed:   make([]int, 0, 64),
		isClosed: make([]bool, size),
		openG:    make([]int, size),
	}
	r.open.nodes = &r.nodes
	for i := range r.openG {
		r.openG[i] = math.MaxInt
	}

	return r
}

// run executes the main loop and classifies the outcome.
func (r *runner) run() Result {
	if r.start != r.goal && r.grid.Blocked(r.goal) {
		// A blocked goal is never generated as a child.
		return Result{Status: FailedUnreachable}
	}
	if r.options.ReachabilityCheck && !r.reachable() {
		return Result{Status: FailedUnreachable}
	}

	r.push(node{pos: r.start, parent: -1})

	last := -1
	expanded := 0
	for {
		cur, ok := r.pop()
		if !ok {
			return Result{Status: FailedUnreachable, Expanded: expanded}
		}
		if expanded >= r.options.MaxIterations {
			return Result{
				Status:   FailedIterationCap,
				Path:     r.trace(last),
				Expanded: expanded,
				Cost:     r.nodes[last].g,
			}
		}

		expanded++
		last = cur
		r.close(cur)
		r.report(expanded, cur)

		if r.nodes[cur].pos == r.goal {
			return Result{
				Status:   Reached,
				Path:     r.trace(cur),
				Expanded: expanded,
				Cost:     r.nodes[cur].g,
			}
		}
		r.expand(cur)
	}
}

// expand queues every admissible child of the node at arena index cur.
func (r *runner) expand(cur int) {
	parent := r.nodes[cur]
	for _, pos := range r.grid.Neighbors(parent.pos) {
		ci := r.grid.Index(pos)
		if r.isClosed[ci] {
			continue
		}
		g := parent.g + 1
		if r.openG[ci] <= g {
			continue
		}
		h := SquaredEuclidean(pos, r.goal)
		r.push(node{pos: pos, parent: cur, g: g, h: h, f: g + h})
	}
}

// push appends n to the arena and queues it.
func (r *runner) push(n node) {
	idx := len(r.nodes)
	r.nodes = append(r.nodes, n)
	ci := r.grid.Index(n.pos)
	if n.g < r.openG[ci] {
		r.openG[ci] = n.g
	}
	heap.Push(&r.open, idx)
}

// pop removes the lowest-f pending node whose position is not yet expanded.
// Entries superseded by an earlier expansion of the same position are dropped.
func (r *runner) pop() (int, bool) {
	for r.open.Len() > 0 {
		idx := heap.Pop(&r.open).(int)
		if !r.isClosed[r.grid.Index(r.nodes[idx].pos)] {
			return idx, true
		}
	}

	return -1, false
}

func (r *runner) close(idx int) {
	r.closed = append(r.closed, idx)
	r.isClosed[r.grid.Index(r.nodes[idx].pos)] = true
}

// trace rebuilds the path from the root to the node at arena index idx.
func (r *runner) trace(idx int) []gridgraph.Cell {
	var path []gridgraph.Cell
	for at := idx; at >= 0; at = r.nodes[at].parent {
		path = append(path, r.nodes[at].pos)
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// reachable reports whether any cell the start can step into shares a free
// region with the goal. A blocked start is still allowed to move off itself.
func (r *runner) reachable() bool {
	if r.start == r.goal {
		return true
	}
	if r.grid.Free(r.start) {
		return r.grid.Connected(r.start, r.goal)
	}
	for _, n := range r.grid.Neighbors(r.start) {
		if r.grid.Connected(n, r.goal) {
			return true
		}
	}

	return false
}

func (r *runner) report(index, idx int) {
	n := r.nodes[idx]
	if r.options.Trace != nil {
		r.options.Trace(Step{Index: index, Cell: n.pos, G: n.g, H: n.h, F: n.f, OpenLen: r.open.Len()})
	}
	r.options.Logger.Debug("astar: expand",
		"step", index,
		"cell", n.pos.String(),
		"g", n.g,
		"h", n.h,
		"f", n.f,
	)
}
