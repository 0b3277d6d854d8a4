package greedy

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
)

// walker holds the mutable state of one walk.
type walker struct {
	opts   Options
	work   *grid.Grid // private working copy
	anchor grid.Coord // origin; G is measured from here
	center grid.Coord // current position
	end    grid.Coord
	h      heuristic.Func
}

// Walk runs the greedy walker from start to end on a private copy of g.
//
// Returns:
//
//   - *Result on success.
//   - an error wrapping grid.ErrUnreachable when the walker dead-ends.
//   - grid.ErrNilGrid or invalid-endpoint errors from grid.ValidateEndpoints.
//   - ctx.Err() if the context is cancelled.
//
// g is never modified.
func Walk(g *grid.Grid, start, end grid.Coord, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := grid.ValidateEndpoints(g, start, end); err != nil {
		return nil, fmt.Errorf("greedy: %w", err)
	}

	work := g.Clone()
	work.ClearMarks()
	if err := work.Place(start, end); err != nil {
		return nil, fmt.Errorf("greedy: %w", err)
	}
	w := &walker{
		opts:   o,
		work:   work,
		anchor: start,
		center: start,
		end:    end,
		h:      o.Heuristic.Func(),
	}

	return w.run()
}

// run advances one step at a time. Every non-final step marks a fresh
// cell Route, so the loop ends within N² iterations.
func (w *walker) run() (*Result, error) {
	res := &Result{}
	limit := w.work.Size() * w.work.Size()
	for i := 0; i < limit; i++ {
		if err := w.opts.Ctx.Err(); err != nil {
			return nil, err
		}
		step, ok := w.step()
		if !ok {
			return nil, fmt.Errorf("greedy: %w: stuck at %v after %d steps", grid.ErrUnreachable, w.center, len(res.Steps))
		}
		res.Steps = append(res.Steps, step)
		best, _ := step.Winner()
		winner := best.Cell
		res.Route = append(res.Route, winner)
		if w.opts.OnStep != nil {
			w.opts.OnStep(step)
		}
		if winner == w.end {
			return res, nil
		}
		if err := w.work.Set(winner, grid.Route); err != nil {
			return nil, fmt.Errorf("greedy: %w", err)
		}
		w.center = winner
	}

	return nil, fmt.Errorf("greedy: %w: step limit %d reached", grid.ErrUnreachable, limit)
}

// step scores the neighbours of center. ok is false when none survive.
func (w *walker) step() (Step, bool) {
	cands := make([]Candidate, 0, len(grid.Offsets))
	for _, d := range grid.Offsets {
		c := w.center.Add(d)
		s, in := w.work.At(c)
		if !in || s == grid.Obstacle || s == grid.Route {
			continue
		}
		g := heuristic.Distance(w.anchor, c, heuristic.Euclidean)
		h := w.h(c, w.end)
		cands = append(cands, Candidate{Cell: c, G: g, H: h, F: g + h, Kind: grid.Round})
	}
	if len(cands) == 0 {
		return Step{}, false
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].F != cands[j].F {
			return cands[i].F < cands[j].F
		}
		return cands[i].G < cands[j].G
	})
	cands[0].Kind = grid.Route

	return Step{Center: w.center, Candidates: cands}, true
}
