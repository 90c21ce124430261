package gridgraph

import "fmt"

// Cell identifies a grid square by row and column.
// Two cells are equal iff both coordinates match.
type Cell struct {
	Row, Col int
}

// C is shorthand for Cell{Row: row, Col: col}.
func C(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// Add returns the cell displaced by the offset d.
func (c Cell) Add(d Offset) Cell {
	return Cell{Row: c.Row + d.DRow, Col: c.Col + d.DCol}
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Offset is a unit displacement between neighboring cells.
type Offset struct {
	DRow, DCol int
}

// Offsets lists the eight unit moves in expansion order:
// left, right, up, down, then the four diagonals.
// Every move has the same step cost.
var Offsets = [8]Offset{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// IsUnitStep reports whether b is one of the eight neighbors of a.
func IsUnitStep(a, b Cell) bool {
	dr, dc := b.Row-a.Row, b.Col-a.Col
	if dr == 0 && dc == 0 {
		return false
	}

	return dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1
}

// Grid is an immutable rectangular grid of cell states.
// values[r][c] holds the original input value; non-zero means blocked.
type Grid struct {
	rows, cols int
	values     [][]int
	obstacles  int
}
