// Package astar implements a bounded best-first (A*) search for a single
// agent on a static grid of binary obstacles, with eight-way movement at a
// uniform step cost.
//
// Overview:
//
//   - Search expands the pending node with the lowest f = g + h, where g is
//     the number of steps taken from the start and h is the squared Euclidean
//     distance to the goal.
//   - Every move (orthogonal or diagonal) costs 1.
//   - A position is expanded at most once. A cheaper route to an already
//     expanded position is ignored, and a child is queued only if it improves
//     on every pending node for the same position.
//   - Expansions are capped (default floor(rows×cols/2)). Exceeding the cap
//     stops the search and yields the partial trace to the last expanded cell.
//
// Known properties:
//
//   - The squared Euclidean heuristic overestimates the true remaining cost
//     for any goal not orthogonally adjacent (one diagonal step already
//     scores h=2 against a cost of 1), so returned paths are not
//     guaranteed to be shortest. In open space the search still moves
//     diagonally toward the goal and finds max(|Δrow|,|Δcol|)+1 cell paths.
//   - The iteration cap is a safety valve, not a completeness guarantee: a
//     reachable goal behind a long detour can be reported as
//     FailedIterationCap. Use WithMaxIterations or WithReachabilityCheck when
//     that distinction matters.
//   - Ties on f are broken by creation order (first queued, first expanded),
//     which makes results deterministic for identical inputs.
//
// Outcomes:
//
//   - Reached:            Path runs from start to goal inclusive.
//   - FailedIterationCap: Path is the partial trace to the last expanded cell.
//   - FailedUnreachable:  Path is nil; no route exists from start.
//
// Error handling (sentinel errors):
//
//   - gridgraph.ErrEmptyGrid / gridgraph.ErrNonRectangular:
//     Returned by Search for malformed raw grids, before any expansion.
//   - gridgraph.ErrOutOfBounds:
//     Returned if start or goal lies outside the grid.
//   - ErrNilGrid:
//     Returned by New for a nil grid.
//   - ErrBadMaxIterations:
//     Raised (via panic) by WithMaxIterations for values below 1.
//   - ErrIterationCap / ErrUnreachable:
//     Not returned by Search; Result.Err maps failed statuses to them.
//
// Thread safety:
//
//   - An Engine holds only its read-only grid and options; each Search call
//     owns its node store, so one Engine may serve concurrent searches.
package astar
