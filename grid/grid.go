package grid

import (
	"fmt"
	"sort"
)

// New returns an empty size×size grid.
// Returns ErrBadSize if size < 1.
func New(size int) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, size)
	}

	return &Grid{size: size, cells: make([]CellState, size*size)}, nil
}

// FromRows builds a grid from rows[y][x]. The input is deep-copied.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNotSquare if any row length differs from the row count.
// Complexity: O(N²) time and memory.
func FromRows(rows [][]CellState) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	n := len(rows)
	for y, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotSquare, y, len(row), n)
		}
	}
	g := &Grid{size: n, cells: make([]CellState, n*n)}
	for y := 0; y < n; y++ {
		copy(g.cells[y*n:(y+1)*n], rows[y])
	}

	return g, nil
}

// FromObstacles returns a size×size grid with the listed cells marked Obstacle.
// Duplicates are harmless. Returns ErrOutOfBounds for any coordinate off the board.
func FromObstacles(size int, obstacles []Coord) (*Grid, error) {
	g, err := New(size)
	if err != nil {
		return nil, err
	}
	for _, c := range obstacles {
		if err = g.Set(c, Obstacle); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Size returns the side length N.
func (g *Grid) Size() int { return g.size }

// InBounds reports whether c lies on the board.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.size && c.Y >= 0 && c.Y < g.size
}

// Index maps c to its row-major index y*N + x. c must be in bounds.
func (g *Grid) Index(c Coord) int {
	return c.Y*g.size + c.X
}

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{X: idx % g.size, Y: idx / g.size}
}

// At returns the state of c. ok is false, and the state Empty, when c is off the board.
func (g *Grid) At(c Coord) (state CellState, ok bool) {
	if !g.InBounds(c) {
		return Empty, false
	}

	return g.cells[g.Index(c)], true
}

// Passable reports whether c is on the board and not an obstacle.
func (g *Grid) Passable(c Coord) bool {
	s, ok := g.At(c)

	return ok && s != Obstacle
}

// Set overwrites the state of c.
// Returns ErrOutOfBounds if c is off the board.
func (g *Grid) Set(c Coord, s CellState) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v on %dx%d grid", ErrOutOfBounds, c, g.size, g.size)
	}
	g.cells[g.Index(c)] = s

	return nil
}

// Clone returns an independent deep copy.
// Complexity: O(N²).
func (g *Grid) Clone() *Grid {
	cells := make([]CellState, len(g.cells))
	copy(cells, g.cells)

	return &Grid{size: g.size, cells: cells}
}

// Place moves the endpoints: any existing Start or End cell becomes Empty,
// then start and end are marked. Endpoints are validated first.
func (g *Grid) Place(start, end Coord) error {
	if err := ValidateEndpoints(g, start, end); err != nil {
		return err
	}
	for i, s := range g.cells {
		if s == Start || s == End {
			g.cells[i] = Empty
		}
	}
	g.cells[g.Index(start)] = Start
	g.cells[g.Index(end)] = End

	return nil
}

// ToggleObstacle flips c between Obstacle and Empty, mirroring a click on the board.
// Route and Round marks are overwritten by a new obstacle.
// Returns ErrEndpointCell for Start/End cells and ErrOutOfBounds off the board.
func (g *Grid) ToggleObstacle(c Coord) (CellState, error) {
	s, ok := g.At(c)
	if !ok {
		return Empty, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	switch s {
	case Start, End:
		return s, fmt.Errorf("%w: %v", ErrEndpointCell, c)
	case Obstacle:
		g.cells[g.Index(c)] = Empty
		return Empty, nil
	default:
		g.cells[g.Index(c)] = Obstacle
		return Obstacle, nil
	}
}

// ClearMarks resets every Route and Round cell to Empty.
func (g *Grid) ClearMarks() {
	for i, s := range g.cells {
		if s == Route || s == Round {
			g.cells[i] = Empty
		}
	}
}

// Mark sets every listed cell to s, skipping obstacles, endpoints
// and coordinates off the board. It returns the number of cells changed.
func (g *Grid) Mark(cells []Coord, s CellState) int {
	n := 0
	for _, c := range cells {
		cur, ok := g.At(c)
		if !ok || cur == Obstacle || cur == Start || cur == End {
			continue
		}
		g.cells[g.Index(c)] = s
		n++
	}

	return n
}

// Obstacles returns every obstacle coordinate ordered by row, then column.
func (g *Grid) Obstacles() []Coord {
	var out []Coord
	for i, s := range g.cells {
		if s == Obstacle {
			out = append(out, g.Coordinate(i))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})

	return out
}

// Find returns the first cell in row-major order holding s.
func (g *Grid) Find(s CellState) (Coord, bool) {
	for i, cur := range g.cells {
		if cur == s {
			return g.Coordinate(i), true
		}
	}

	return Coord{}, false
}

// Equal reports whether both grids have the same size and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}

	return true
}

// ValidateEndpoints checks the search preconditions: a non-nil board, both
// endpoints on it, distinct, and not obstacles.
func ValidateEndpoints(g *Grid, start, end Coord) error {
	if g == nil {
		return ErrNilGrid
	}
	if !g.InBounds(start) {
		return fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !g.InBounds(end) {
		return fmt.Errorf("%w: end %v", ErrOutOfBounds, end)
	}
	if start == end {
		return fmt.Errorf("%w: %v", ErrSameEndpoints, start)
	}
	if !g.Passable(start) {
		return fmt.Errorf("%w: start %v", ErrEndpointBlocked, start)
	}
	if !g.Passable(end) {
		return fmt.Errorf("%w: end %v", ErrEndpointBlocked, end)
	}

	return nil
}
