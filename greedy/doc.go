// Package greedy implements the locally-greedy grid walker that the legacy
// board labelled "A*".
//
// It is not A*: there is no open or closed set and no backtracking. Each step
// scores the 8 neighbours of the current cell, commits to the single best
// one and moves on. When every neighbour is off the board, an obstacle, or
// already on the walked route, the run fails with grid.ErrUnreachable even if
// a detour exists elsewhere. That limitation is intentional; use the dijkstra
// or astar packages for complete searches.
//
// Scoring:
//
//   - G: Euclidean distance from the run's origin (fixed for the whole run,
//     not from the previous step).
//   - H: the selected heuristic.Kind from the neighbour to the goal.
//   - F = G + H. Neighbours are stably sorted by F, then G, so among exact
//     ties the earliest in grid.Offsets order wins.
//
// Result:
//
//   - Steps holds, per step, every surviving neighbour tagged grid.Route
//     (the winner) or grid.Round (examined, not chosen).
//   - Route is the ordered list of winners, ending at the goal.
//
// Complexity: O(N²) steps at most, each O(1) (8 neighbours).
package greedy
