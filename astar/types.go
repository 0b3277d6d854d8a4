package astar

import (
	"context"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
)

// Options configures a search.
type Options struct {
	// Ctx is checked before each expansion; defaults to context.Background().
	Ctx context.Context
	// Heuristic selects the estimate; defaults to Euclidean.
	Heuristic heuristic.Kind
	// OnExpand, if non-nil, is called for every expanded cell with its g and f.
	OnExpand func(c grid.Coord, g, f float64)
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

// WithHeuristic selects the estimate used for f = g + h.
func WithHeuristic(k heuristic.Kind) Option {
	return func(o *Options) {
		o.Heuristic = k
	}
}

// WithOnExpand installs a per-expansion hook.
func WithOnExpand(fn func(c grid.Coord, g, f float64)) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// Result is a successful search.
type Result struct {
	Path     []grid.Coord // interior cells, start and end excluded
	Cost     float64
	Expanded int // cells moved to the closed set
}

// Len returns the number of interior steps.
func (r *Result) Len() int {
	return len(r.Path)
}
