// Package dijkstra computes shortest paths between two cells of a grid.Grid.
//
// Overview:
//
//   - The grid is 8-connected: orthogonal moves cost 1, diagonal moves √2.
//   - Obstacles are snapshotted when the search starts; later edits to the
//     caller's grid are not observed.
//   - Cells are settled in non-decreasing distance order from a binary
//     min-heap frontier with decrease-key (container/heap + heap.Fix).
//   - Ties on distance go to the cell (re)inserted first, so results are
//     deterministic for a fixed input.
//   - Once the goal is settled the predecessor chain is reversed and both
//     endpoints are dropped: Result.Path holds the interior cells only.
//
// Complexity:
//
//   - Time:  O(V log V) with V = N² cells and at most 8 relaxations per cell.
//   - Space: O(V) for the distance, predecessor and visited tables.
//
// Errors:
//
//   - grid.ErrUnreachable (wrapped) when the frontier empties first.
//   - grid.ErrOutOfBounds, grid.ErrSameEndpoints, grid.ErrEndpointBlocked
//     (wrapped) for invalid endpoints.
//   - ErrOptionViolation for an invalid option.
//   - ctx.Err() when the context passed via WithContext is done.
//
// Example:
//
//	res, err := dijkstra.Search(g, start, end)
//	if errors.Is(err, grid.ErrUnreachable) {
//	    // no route under the current obstacles
//	}
//	fmt.Println(res.Path, res.Cost)
package dijkstra
