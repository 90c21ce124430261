// Package astar_test provides examples demonstrating how to use the grid search.
// Each example is runnable via "go test -run Example", showing both code and expected output.
package astar_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ExampleSearch routes a vehicle across a 10×10 warehouse floor around a
// block of shelving in the bottom-right corner.
func ExampleSearch() {
	grid := [][]int{
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 1, 1, 1, 1},
		{0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}

	res, err := astar.Search(grid, gridgraph.C(0, 0), gridgraph.C(9, 9))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("status:", res.Status)
	fmt.Println("steps:", res.Steps())
	fmt.Println("path:", res.Path)
	// Output:
	// status: reached
	// steps: 12
	// path: [(0,0) (1,1) (2,2) (3,3) (4,4) (5,5) (6,6) (7,5) (8,5) (9,6) (9,7) (9,8) (9,9)]
}

// ExampleEngine_Search shows a search stopped by its expansion budget.
// The partial trace ends at the last expanded cell.
func ExampleEngine_Search() {
	g, _ := gridgraph.New([][]int{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	})
	e, _ := astar.New(g, astar.WithMaxIterations(2))

	res, _ := e.Search(gridgraph.C(0, 0), gridgraph.C(4, 4))
	fmt.Println(res.Status, res.Path)
	fmt.Println(res.Err())
	// Output:
	// failed-iteration-cap [(0,0) (1,1)]
	// astar: iteration cap exceeded after 2 expansions
}
