package grid

import (
	"fmt"
	"math"
)

// Adjacent reports whether a and b are distinct 8-connected neighbours.
func Adjacent(a, b Coord) bool {
	dx, dy := absInt(a.X-b.X), absInt(a.Y-b.Y)

	return dx <= 1 && dy <= 1 && dx+dy > 0
}

// Diagonal reports whether the step a→b moves along both axes.
func Diagonal(a, b Coord) bool {
	return a.X != b.X && a.Y != b.Y
}

// StepCost returns the edge weight of a single move:
// 1 orthogonal, √2 diagonal. Returns ErrNotAdjacent otherwise.
func StepCost(a, b Coord) (float64, error) {
	if !Adjacent(a, b) {
		return 0, fmt.Errorf("%w: %v→%v", ErrNotAdjacent, a, b)
	}
	if Diagonal(a, b) {
		return math.Sqrt2, nil
	}

	return 1, nil
}

// PathCost sums StepCost over consecutive cells.
// An empty or single-cell path costs 0.
// Returns ErrNotAdjacent at the first gap.
func PathCost(cells []Coord) (float64, error) {
	total := 0.0
	for i := 1; i < len(cells); i++ {
		w, err := StepCost(cells[i-1], cells[i])
		if err != nil {
			return 0, err
		}
		total += w
	}

	return total, nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
