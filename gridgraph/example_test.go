// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Components
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Components shows how free regions are separated by obstacles.
// Scenario:
//
//   - 0 = free floor, 1 = shelving
//   - 8-connectivity: diagonal gaps still connect regions
//
// Complexity: O(W·H·8), Memory: O(W·H)
func ExampleGrid_Components() {
	g, _ := gridgraph.New([][]int{
		{0, 1, 0},
		{1, 1, 0},
		{0, 1, 0},
	})

	for i, comp := range g.Components() {
		fmt.Printf("component %d: %v\n", i, comp)
	}

	// Output:
	// component 0: [(0,0)]
	// component 1: [(0,2) (1,2) (2,2)]
	// component 2: [(2,0)]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Clearance
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Clearance finds the fewest obstacles to clear between two cells.
func ExampleGrid_Clearance() {
	g, _ := gridgraph.New([][]int{{0, 1, 1, 0}})

	_, removals, err := g.Clearance(gridgraph.C(0, 0), gridgraph.C(0, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("remove:", removals)

	// Output:
	// remove: [(0,1) (0,2)]
}
