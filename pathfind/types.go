package pathfind

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/greedy"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
)

var (
	// ErrNilGrid is returned when Request.Grid is nil.
	ErrNilGrid = errors.New("pathfind: grid is nil")
	// ErrUnknownStrategy is returned for an unrecognised strategy.
	ErrUnknownStrategy = errors.New("pathfind: unknown strategy")
)

// Strategy selects the search algorithm.
type Strategy int

const (
	Greedy Strategy = iota
	Dijkstra
	AStar
)

// String returns the canonical selector.
func (s Strategy) String() string {
	switch s {
	case Greedy:
		return "greedy"
	case Dijkstra:
		return "dijkstra"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a selector to a Strategy. The legacy value "aStar"
// (exact case) selects the greedy walker; "astar" selects classic A*.
func ParseStrategy(s string) (Strategy, error) {
	if s == "aStar" {
		return Greedy, nil
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "greedy":
		return Greedy, nil
	case "dijkstra":
		return Dijkstra, nil
	case "astar", "a*":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Strategies lists every strategy.
func Strategies() []Strategy {
	return []Strategy{Greedy, Dijkstra, AStar}
}

// Request describes one search.
type Request struct {
	Grid      *grid.Grid
	Start     grid.Coord
	End       grid.Coord
	Strategy  Strategy
	Heuristic heuristic.Kind // ignored by Dijkstra
}

// Outcome is a successful search. Exactly one payload is non-nil.
type Outcome struct {
	Strategy Strategy
	Greedy   *greedy.Result
	Dijkstra *dijkstra.Result
	AStar    *astar.Result
	// Steps is the step count shown to the user: walker steps for Greedy,
	// interior path length for Dijkstra and AStar.
	Steps   int
	Elapsed time.Duration
}

// Route returns the cells to mark grid.Route, in travel order.
// For Greedy this is the walked route, which ends at the goal.
func (o *Outcome) Route() []grid.Coord {
	switch {
	case o.Greedy != nil:
		return o.Greedy.Route
	case o.Dijkstra != nil:
		return o.Dijkstra.Path
	case o.AStar != nil:
		return o.AStar.Path
	default:
		return nil
	}
}

// Examined returns the cells to mark grid.Round. Only the greedy walker
// reports them.
func (o *Outcome) Examined() []grid.Coord {
	if o.Greedy == nil {
		return nil
	}
	return o.Greedy.Examined()
}

// Cost returns the route cost, or 0 for Greedy, which does not track one.
func (o *Outcome) Cost() float64 {
	switch {
	case o.Dijkstra != nil:
		return o.Dijkstra.Cost
	case o.AStar != nil:
		return o.AStar.Cost
	default:
		return 0
	}
}

// Options configures Search.
type Options struct {
	Logger logrus.FieldLogger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a logger that discards everything.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{Logger: l}
}

// WithLogger routes the per-search debug entry to l. A nil l is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
