package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

// Options configures a search.
//
// Ctx         – checked at every frontier pop; defaults to context.Background().
// MaxDistance – cells farther than this are never settled. Must be ≥ 0.
//
//	Default is +Inf (no cap).
//
// OnSettle    – if non-nil, called for every settled cell with its distance.
type Options struct {
	Ctx         context.Context
	MaxDistance float64
	OnSettle    func(c grid.Coord, dist float64)

	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Background context, no distance cap and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxDistance: math.Inf(1),
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

// WithMaxDistance caps the explored radius. A goal beyond it is unreachable.
// Negative or NaN values surface ErrOptionViolation from Search.
func WithMaxDistance(limit float64) Option {
	return func(o *Options) {
		if limit < 0 || math.IsNaN(limit) {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%v)", ErrOptionViolation, limit)
			return
		}
		o.MaxDistance = limit
	}
}

// WithOnSettle installs a hook called once per settled cell, in settle order.
func WithOnSettle(fn func(c grid.Coord, dist float64)) Option {
	return func(o *Options) {
		o.OnSettle = fn
	}
}

// Result is a successful search.
type Result struct {
	// Path lists the interior cells from start to end, both excluded.
	// It is empty when start and end are adjacent.
	Path []grid.Coord
	// Cost is the total edge weight from start to end.
	Cost float64
	// Settled counts the cells removed from the frontier.
	Settled int
}

// Len returns the number of interior steps.
func (r *Result) Len() int {
	return len(r.Path)
}
