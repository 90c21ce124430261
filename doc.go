// Package gridpath plans single-vehicle routes across static warehouse-style
// grids of binary obstacles.
//
// Under the hood, everything is organized into small subpackages:
//
//	gridgraph/: validated immutable grids, 8-way neighbors, free regions, obstacle clearance
//	astar/:     bounded best-first search with a three-way outcome
//	obstacles/: seeded random layouts and the reference warehouse floor
//	report/:    step counts, removal hints and grid rendering
//	scenario/:  YAML scenario files
//	cmd/:       the gridpath command-line tool
//
// Quick example:
//
//	res, err := astar.Search(grid, gridgraph.C(0, 0), gridgraph.C(9, 9))
//	if err != nil {
//	    log.Fatal(err) // malformed grid or out-of-bounds endpoint
//	}
//	switch res.Status {
//	case astar.Reached:            // res.Path runs start → goal
//	case astar.FailedIterationCap: // res.Path is a partial trace
//	case astar.FailedUnreachable:  // res.Path is nil
//	}
//
//	go get github.com/katalvlaran/gridpath
package gridpath
