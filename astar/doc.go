// Package astar implements classic A* search on a grid.Grid.
//
// Unlike the greedy walker, A* keeps an open set of every discovered cell and
// a closed set of expanded ones, so it never dead-ends while a route exists.
//
//   - Open set: a lazy binary min-heap (zyedidia/generic/heap) keyed by
//     (f, seq). Improved cells are pushed again; stale entries are skipped
//     when popped.
//   - Closed set: a mapset of expanded cell indices.
//   - Edges, costs and neighbour order match the dijkstra package:
//     1 orthogonal, √2 diagonal, grid.Offsets order.
//
// With heuristic.Euclidean or heuristic.Diagonal the estimate never exceeds
// the true remaining cost and the returned path is optimal. heuristic.Manhattan
// overestimates diagonal moves; it still finds a path whenever one exists,
// usually expanding fewer cells, but the cost may exceed the optimum.
//
// Result.Path holds the interior cells only, exactly like dijkstra.Result.
package astar
