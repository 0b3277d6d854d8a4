package greedy

import (
	"context"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
)

// Options configures a walk.
type Options struct {
	// Ctx is checked once per step; defaults to context.Background().
	Ctx context.Context
	// Heuristic selects the H metric; defaults to Euclidean.
	Heuristic heuristic.Kind
	// OnStep, if non-nil, receives every completed step in order.
	OnStep func(Step)
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Background context, Euclidean heuristic, no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Heuristic: heuristic.Euclidean,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic selects the H metric.
func WithHeuristic(k heuristic.Kind) Option {
	return func(o *Options) {
		o.Heuristic = k
	}
}

// WithOnStep installs a per-step hook.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// Candidate is one scored neighbour.
type Candidate struct {
	Cell grid.Coord
	G    float64        // Euclidean distance from the origin
	H    float64        // heuristic distance to the goal
	F    float64        // G + H
	Kind grid.CellState // grid.Route for the winner, grid.Round otherwise
}

// Step is one evaluation round around Center. Candidates are sorted
// ascending by score; Candidates[0] is the winner.
type Step struct {
	Center     grid.Coord
	Candidates []Candidate
}

// Winner returns the chosen candidate. ok is false for a Step with no candidates.
func (s Step) Winner() (c Candidate, ok bool) {
	if len(s.Candidates) == 0 {
		return Candidate{}, false
	}

	return s.Candidates[0], true
}

// Result is a successful walk.
type Result struct {
	Steps []Step
	Route []grid.Coord
}

// Len returns the number of steps taken.
func (r *Result) Len() int {
	return len(r.Steps)
}

// Examined returns every Round cell across all steps, in order, without duplicates.
func (r *Result) Examined() []grid.Coord {
	seen := make(map[grid.Coord]bool)
	var out []grid.Coord
	for _, s := range r.Steps {
		if len(s.Candidates) == 0 {
			continue
		}
		for _, c := range s.Candidates[1:] {
			if !seen[c.Cell] {
				seen[c.Cell] = true
				out = append(out, c.Cell)
			}
		}
	}

	return out
}
