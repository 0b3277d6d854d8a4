package grid

import (
	"errors"
	"fmt"
)

// DefaultSize is the side length of the legacy board.
const DefaultSize = 25

// Sentinel errors for grid construction, validation and search outcomes.
var (
	// ErrNilGrid indicates a nil *Grid was passed where a board is required.
	ErrNilGrid = errors.New("grid: grid is nil")
	// ErrBadSize indicates a non-positive side length.
	ErrBadSize = errors.New("grid: size must be positive")
	// ErrEmptyGrid indicates the input rows are empty.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNotSquare indicates rows of differing lengths or a non-square board.
	ErrNotSquare = errors.New("grid: rows must form a square board")
	// ErrOutOfBounds indicates a coordinate outside [0, N).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrSameEndpoints indicates start and end are the same cell.
	ErrSameEndpoints = errors.New("grid: start and end must differ")
	// ErrEndpointBlocked indicates start or end sits on an obstacle.
	ErrEndpointBlocked = errors.New("grid: endpoint is an obstacle")
	// ErrEndpointCell indicates an obstacle edit targeted the start or end cell.
	ErrEndpointCell = errors.New("grid: cannot place an obstacle on an endpoint")
	// ErrBadLayout indicates an unparsable ASCII layout.
	ErrBadLayout = errors.New("grid: malformed layout")
	// ErrNotAdjacent indicates two coordinates are not 8-connected neighbours.
	ErrNotAdjacent = errors.New("grid: cells are not adjacent")
	// ErrUnreachable indicates no path exists between start and end.
	ErrUnreachable = errors.New("grid: no path between start and end")
)

// CellState classifies a single cell. Values match the legacy board encoding.
type CellState int

const (
	Empty    CellState = iota // passable, unmarked
	Obstacle                  // impassable for the whole search
	Start                     // search origin
	End                       // search goal
	Route                     // confirmed part of the reported path
	Round                     // examined but not chosen
)

// String returns the lower-case name of the state.
func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Obstacle:
		return "obstacle"
	case Start:
		return "start"
	case End:
		return "end"
	case Route:
		return "route"
	case Round:
		return "round"
	default:
		return fmt.Sprintf("CellState(%d)", int(s))
	}
}

// Coord addresses one cell. X is the column, Y the row.
type Coord struct {
	X, Y int
}

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// String formats the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Offsets lists the 8 neighbour displacements in enumeration order:
// topLeft, topRight, bottomLeft, bottomRight, top, bottom, left, right.
// Search tie-breaks depend on this order; do not reorder.
var Offsets = [8]Coord{
	{X: -1, Y: -1},
	{X: 1, Y: -1},
	{X: -1, Y: 1},
	{X: 1, Y: 1},
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
}

// Grid is a square N×N occupancy board. The zero value is not usable;
// construct with New, FromRows, FromObstacles or Parse.
type Grid struct {
	size  int
	cells []CellState
}
