package pathfind

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/greedy"
	"github.com/katalvlaran/gridpath/grid"
)

// Search runs req.Strategy on req.Grid. ctx may be nil.
// The caller's grid is never modified; apply the outcome with Apply.
func Search(ctx context.Context, req Request, opts ...Option) (*Outcome, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if req.Grid == nil {
		return nil, ErrNilGrid
	}

	began := time.Now()
	out := &Outcome{Strategy: req.Strategy}
	var err error
	switch req.Strategy {
	case Greedy:
		out.Greedy, err = greedy.Walk(req.Grid, req.Start, req.End,
			greedy.WithContext(ctx), greedy.WithHeuristic(req.Heuristic))
		if err == nil {
			out.Steps = out.Greedy.Len()
		}
	case Dijkstra:
		out.Dijkstra, err = dijkstra.Search(req.Grid, req.Start, req.End,
			dijkstra.WithContext(ctx))
		if err == nil {
			out.Steps = out.Dijkstra.Len()
		}
	case AStar:
		out.AStar, err = astar.Search(req.Grid, req.Start, req.End,
			astar.WithContext(ctx), astar.WithHeuristic(req.Heuristic))
		if err == nil {
			out.Steps = out.AStar.Len()
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, req.Strategy)
	}
	out.Elapsed = time.Since(began)

	entry := o.Logger.WithFields(logrus.Fields{
		"strategy":  req.Strategy.String(),
		"heuristic": req.Heuristic.String(),
		"start":     req.Start.String(),
		"end":       req.End.String(),
		"elapsed":   out.Elapsed,
		"found":     err == nil,
	})
	if err != nil {
		if !errors.Is(err, grid.ErrUnreachable) {
			entry = entry.WithError(err)
		}
		entry.Debug("search failed")
		return nil, err
	}
	entry.WithField("steps", out.Steps).Debug("search finished")

	return out, nil
}

// Apply writes the outcome onto g: examined cells become grid.Round, then
// route cells become grid.Route. Endpoints and obstacles are left alone.
// Previous marks are cleared first.
func Apply(g *grid.Grid, out *Outcome) {
	g.ClearMarks()
	g.Mark(out.Examined(), grid.Round)
	g.Mark(out.Route(), grid.Route)
}
