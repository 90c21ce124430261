package report

import (
	"fmt"
	"io"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Report summarizes one search for presentation.
type Report struct {
	Start, Goal gridgraph.Cell
	Status      astar.Status
	Steps       int              // moves on the route; 0 unless Status is Reached
	Path        []gridgraph.Cell // route or partial trace
	Expanded    int

	// Hint is the obstacle-removal suggestion for a capped search: the cell
	// one step before the end of the partial trace.
	Hint    gridgraph.Cell
	HasHint bool

	// Clearance lists the fewest obstacles to remove so that a free route
	// from Start to Goal exists. Empty when the search succeeded.
	Clearance []gridgraph.Cell
}

// Build assembles a Report for res, computed on g from start to goal.
func Build(g *gridgraph.Grid, res astar.Result, start, goal gridgraph.Cell) Report {
	rep := Report{
		Start:    start,
		Goal:     goal,
		Status:   res.Status,
		Steps:    res.Steps(),
		Path:     res.Path,
		Expanded: res.Expanded,
	}
	if res.Status == astar.Reached {
		return rep
	}

	if res.Status == astar.FailedIterationCap {
		rep.Hint, rep.HasHint = Hint(res.Path)
	}
	if _, removals, err := g.Clearance(start, goal); err == nil {
		rep.Clearance = removals
	}

	return rep
}

// Hint returns the cell one step before the end of a partial trace, or the
// only cell of a single-cell trace.
func Hint(path []gridgraph.Cell) (gridgraph.Cell, bool) {
	switch len(path) {
	case 0:
		return gridgraph.Cell{}, false
	case 1:
		return path[0], true
	default:
		return path[len(path)-2], true
	}
}

// Write prints rep as plain text lines.
func Write(w io.Writer, rep Report) error {
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	if rep.Status == astar.Reached {
		printf("The number of steps is: %d\n", rep.Steps)
		printf("The vehicle will take the following path: %v\n", rep.Path)

		return err
	}

	printf("Unable to reach delivery point %v from %v (%s after %d expansions)\n",
		rep.Goal, rep.Start, rep.Status, rep.Expanded)
	if len(rep.Path) > 0 {
		printf("Partial path: %v\n", rep.Path)
	}
	if rep.HasHint {
		printf("Please remove obstacle located at point %v\n", rep.Hint)
	}
	if len(rep.Clearance) > 0 {
		printf("Clearing %d obstacle(s) opens a route: %v\n", len(rep.Clearance), rep.Clearance)
	}

	return err
}
