// Package grid is the occupancy-grid model shared by every search strategy
// in gridpath.
//
// What:
//
//   - Grid is a square N×N board of CellState values stored row-major.
//     Cells are addressed as Coord{X, Y}; Y is the row, row 0 is the top.
//   - CellState is one of Empty, Obstacle, Start, End, Route, Round.
//   - Offsets fixes the 8-neighbour enumeration order used by all searches:
//     topLeft, topRight, bottomLeft, bottomRight, top, bottom, left, right.
//   - Parse and (*Grid).String convert to and from a compact ASCII layout.
//
// Ownership:
//
//   - The caller owns its canonical Grid and edits obstacles between runs.
//   - Every search takes a private working copy via Clone, so intermediate
//     markings never leak back into the caller's grid.
//
// Complexity:
//
//   - InBounds, At, Set: O(1).
//   - Clone, ClearMarks, Place, String: O(N²).
//
// Errors:
//
//   - ErrBadSize, ErrEmptyGrid, ErrNotSquare: malformed construction input.
//   - ErrOutOfBounds, ErrSameEndpoints, ErrEndpointBlocked: invalid endpoints.
//   - ErrEndpointCell: attempt to toggle an obstacle onto an endpoint.
//   - ErrUnreachable: no path exists under the current obstacles.
package grid
