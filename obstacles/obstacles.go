package obstacles

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for obstacle generation.
var (
	// ErrBadDimensions indicates a non-positive row or column count.
	ErrBadDimensions = errors.New("obstacles: rows and cols must be positive")
	// ErrBadCount indicates a negative obstacle count.
	ErrBadCount = errors.New("obstacles: obstacle count must be non-negative")
	// ErrTooManyObstacles indicates more obstacles than placeable cells.
	ErrTooManyObstacles = errors.New("obstacles: not enough free cells for the requested obstacles")
)

// Blocked is the value written into obstacle cells.
const Blocked = 1

// Generator scatters obstacles using a private random source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NewGeneratorFrom returns a Generator drawing from src.
func NewGeneratorFrom(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// Generate returns a rows×cols grid holding exactly count distinct obstacles.
// Cells listed in keep stay free; keep cells outside the grid are an error.
//
// Returns ErrBadDimensions, ErrBadCount, gridgraph.ErrOutOfBounds or
// ErrTooManyObstacles for invalid requests.
// Complexity: O(rows×cols).
func (g *Generator) Generate(rows, cols, count int, keep ...gridgraph.Cell) ([][]int, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, rows, cols)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCount, count)
	}

	grid := Empty(rows, cols)
	reserved := make(map[gridgraph.Cell]struct{}, len(keep))
	for _, c := range keep {
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			return nil, fmt.Errorf("%w: keep %v", gridgraph.ErrOutOfBounds, c)
		}
		reserved[c] = struct{}{}
	}

	candidates := make([]gridgraph.Cell, 0, rows*cols-len(reserved))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := gridgraph.C(r, c)
			if _, ok := reserved[cell]; !ok {
				candidates = append(candidates, cell)
			}
		}
	}
	if count > len(candidates) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrTooManyObstacles, count, len(candidates))
	}

	// Partial Fisher–Yates: the first count candidates become obstacles.
	for i := 0; i < count; i++ {
		j := i + g.rng.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
		grid[candidates[i].Row][candidates[i].Col] = Blocked
	}

	return grid, nil
}

// Empty returns a rows×cols grid with no obstacles.
func Empty(rows, cols int) [][]int {
	out := make([][]int, rows)
	for r := range out {
		out[r] = make([]int, cols)
	}

	return out
}

// Warehouse returns the 10×10 reference floor: row 7 shelved at columns 6–9
// and one more shelf at (8,6), leaving (0,0) and (9,9) free.
func Warehouse() [][]int {
	grid := Empty(10, 10)
	for c := 6; c <= 9; c++ {
		grid[7][c] = Blocked
	}
	grid[8][6] = Blocked

	return grid
}
