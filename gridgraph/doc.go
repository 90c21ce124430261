// Package gridgraph treats a rectangular 2D grid of integer cell states as an
// implicit 8-connected graph, the input model for grid path searches.
//
// What:
//
//   - Grid wraps a validated, rectangular [][]int. A cell is blocked iff its
//     value is non-zero and free iff it is zero.
//   - Cells are addressed as (Row, Col); row-major indices are available via
//     Index and CellAt.
//   - Neighbors enumerates the in-bounds free cells around a cell using the
//     fixed order of Offsets (orthogonal first, then diagonals).
//   - Components finds the 8-connected regions of free cells, so callers can
//     answer "is goal reachable from start at all?" without searching.
//   - Clearance computes the minimum set of obstacles that would have to be
//     cleared to connect two cells (0-1 BFS: entering a blocked cell costs 1).
//
// Why:
//
//   - Warehouse and game maps: binary obstacle layouts with uniform moves.
//   - Recovery planning: which obstacles to remove when no route exists.
//
// Complexity:
//
//   - New:        O(W×H) time and memory (deep copy).
//   - Components: O(W×H×8), Memory: O(W×H).
//   - Clearance:  O(W×H×8), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a cell argument lies outside the grid.
//
// A Grid is immutable once built and is safe for concurrent readers.
package gridgraph
