package heuristic

import (
	"math"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Kind selects a distance metric.
type Kind int

const (
	// Euclidean is the straight-line distance and the default.
	Euclidean Kind = iota
	// Diagonal closes the smaller delta diagonally, then moves straight.
	Diagonal
	// Manhattan is the 4-connected taxicab distance.
	Manhattan
)

// Func estimates the cost from one cell to another.
type Func func(from, to grid.Coord) float64

// ParseKind maps a selector to a Kind. It accepts the legacy values
// "one", "two", "three" and the names "diagonal", "manhattan", "euclidean"
// (case-insensitive). Anything else yields Euclidean.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "one", "diagonal":
		return Diagonal
	case "two", "manhattan":
		return Manhattan
	default:
		return Euclidean
	}
}

// String returns the metric name.
func (k Kind) String() string {
	switch k {
	case Diagonal:
		return "diagonal"
	case Manhattan:
		return "manhattan"
	default:
		return "euclidean"
	}
}

// Selector returns the legacy selector value for k.
func (k Kind) Selector() string {
	switch k {
	case Diagonal:
		return "one"
	case Manhattan:
		return "two"
	default:
		return "three"
	}
}

// Func returns the metric bound to k.
func (k Kind) Func() Func {
	return func(from, to grid.Coord) float64 {
		return Distance(from, to, k)
	}
}

// Distance estimates the cost from candidate to goal under kind.
// Unknown kinds are treated as Euclidean.
func Distance(candidate, goal grid.Coord, kind Kind) float64 {
	dx := math.Abs(float64(goal.X - candidate.X))
	dy := math.Abs(float64(goal.Y - candidate.Y))
	switch kind {
	case Diagonal:
		mn, mx := math.Min(dx, dy), math.Max(dx, dy)
		return mn*math.Sqrt2 + (mx - mn)
	case Manhattan:
		return dx + dy
	default:
		return math.Sqrt(dx*dx + dy*dy)
	}
}

// Kinds lists every supported metric in selector order.
func Kinds() []Kind {
	return []Kind{Diagonal, Manhattan, Euclidean}
}
