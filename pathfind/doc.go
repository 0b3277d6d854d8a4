// Package pathfind is the single entry point for running a search.
//
// Search validates a Request, dispatches to the greedy walker, the Dijkstra
// searcher or A*, times the run and returns an Outcome. Each strategy keeps
// its native payload: the greedy walker reports per-step candidate batches
// (winner and examined cells), Dijkstra and A* report a flat interior path.
// Callers pick the field matching Outcome.Strategy.
//
// Strategy selectors:
//
//	greedy    the locally-greedy walker
//	aStar     legacy alias for greedy (the old UI label)
//	dijkstra  Dijkstra shortest path
//	astar     classic A*
//
// Failures are returned, never panicked: ErrNilGrid, ErrUnknownStrategy,
// the grid validation sentinels, and grid.ErrUnreachable (all matched with
// errors.Is).
//
// A logrus.FieldLogger may be supplied with WithLogger; one debug entry is
// written per search.
package pathfind
