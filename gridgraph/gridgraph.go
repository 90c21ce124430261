package gridgraph

import "fmt"

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later mutation by the caller has no effect.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs from the first.
// Complexity: O(W×H) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}

	cells := make([][]int, rows)
	obstacles := 0
	for r := 0; r < rows; r++ {
		cells[r] = make([]int, cols)
		copy(cells[r], values[r])
		for _, v := range cells[r] {
			if v != 0 {
				obstacles++
			}
		}
	}

	return &Grid{rows: rows, cols: cols, values: cells, obstacles: obstacles}, nil
}

// MustNew is like New but panics on invalid input. Intended for literals in
// tests and examples.
func MustNew(values [][]int) *Grid {
	g, err := New(values)
	if err != nil {
		panic(err)
	}

	return g
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Size returns the number of cells (rows × cols).
func (g *Grid) Size() int { return g.rows * g.cols }

// Obstacles returns the number of blocked cells.
func (g *Grid) Obstacles() int { return g.obstacles }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Value returns the stored value at c. Out-of-bounds cells report -1.
func (g *Grid) Value(c Cell) int {
	if !g.InBounds(c) {
		return -1
	}

	return g.values[c.Row][c.Col]
}

// Blocked reports whether c is an obstacle. Out-of-bounds cells count as blocked.
func (g *Grid) Blocked(c Cell) bool {
	return !g.InBounds(c) || g.values[c.Row][c.Col] != 0
}

// Free reports whether c is in bounds and not an obstacle.
func (g *Grid) Free(c Cell) bool {
	return !g.Blocked(c)
}

// Values returns a deep copy of the underlying cell states.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.rows)
	for r := range g.values {
		out[r] = make([]int, g.cols)
		copy(out[r], g.values[r])
	}

	return out
}

// Neighbors returns the in-bounds free neighbors of c in Offsets order.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(Offsets))
	for _, d := range Offsets {
		n := c.Add(d)
		if g.Free(n) {
			out = append(out, n)
		}
	}

	return out
}

// Index maps c to its row-major index: Row*Cols + Col.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// CellAt converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) CellAt(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}
