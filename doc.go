// Package gridpath is a deterministic path-search engine for square
// occupancy grids.
//
// A board is an N×N grid.Grid of empty cells and obstacles with one start
// and one end. Moves are 8-connected: orthogonal steps cost 1, diagonal
// steps √2. Three strategies are available:
//
//	greedy/    the locally-greedy walker the legacy board labelled "A*";
//	           reports every examined neighbour, may dead-end
//	dijkstra/  shortest path with a binary-heap frontier
//	astar/     classic A* with an open and a closed set
//
// Supporting packages:
//
//	grid/       board model, ASCII layouts, demo board, regions, path costs
//	heuristic/  Diagonal, Manhattan and Euclidean estimates
//	pathfind/   one Search entry point over all strategies, with logging
//	server/     HTTP/JSON API (gin) for a rendering front end
//
// Binaries live under cmd/: gridpath (CLI) and gridpathd (HTTP daemon).
//
// Every search works on a snapshot or private copy of the caller's board;
// results are returned, never written back. Use pathfind.Apply to overlay a
// result onto a board.
package gridpath
