package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

func TestNew_BadSize(t *testing.T) {
	for _, n := range []int{0, -3} {
		g, err := grid.New(n)
		assert.Nil(t, g)
		assert.ErrorIs(t, err, grid.ErrBadSize)
	}
}

// TestFromRows_Errors verifies that FromRows rejects empty or ragged inputs.
func TestFromRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]grid.CellState
		err  error
	}{
		{"EmptyRows", [][]grid.CellState{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]grid.CellState{{}}, grid.ErrEmptyGrid},
		{"Ragged", [][]grid.CellState{{0, 0}, {0}}, grid.ErrNotSquare},
		{"Rectangular", [][]grid.CellState{{0, 0, 0}, {0, 0, 0}}, grid.ErrNotSquare},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.FromRows(tc.rows)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestFromRows_DeepCopy(t *testing.T) {
	rows := [][]grid.CellState{{grid.Empty, grid.Obstacle}, {grid.Empty, grid.Empty}}
	g, err := grid.FromRows(rows)
	require.NoError(t, err)

	rows[0][1] = grid.Empty
	s, ok := g.At(grid.Coord{X: 1, Y: 0})
	assert.True(t, ok)
	assert.Equal(t, grid.Obstacle, s, "grid must not alias caller rows")
}

func TestFromObstacles(t *testing.T) {
	g, err := grid.FromObstacles(4, []grid.Coord{{X: 1, Y: 2}, {X: 1, Y: 2}, {X: 3, Y: 0}})
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{{X: 3, Y: 0}, {X: 1, Y: 2}}, g.Obstacles())

	_, err = grid.FromObstacles(4, []grid.Coord{{X: 4, Y: 0}})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

//----------------------------------------------------------------------------//
// Access
//----------------------------------------------------------------------------//

func TestInBoundsAndAt(t *testing.T) {
	g, err := grid.New(3)
	require.NoError(t, err)

	for _, c := range []grid.Coord{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 1, Y: 0}} {
		assert.True(t, g.InBounds(c), "InBounds(%v)", c)
	}
	for _, c := range []grid.Coord{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 3}, {X: 2, Y: -1}} {
		assert.False(t, g.InBounds(c), "InBounds(%v)", c)
		_, ok := g.At(c)
		assert.False(t, ok, "At(%v) must report off-board", c)
		assert.False(t, g.Passable(c))
		assert.ErrorIs(t, g.Set(c, grid.Obstacle), grid.ErrOutOfBounds)
	}
}

func TestIndexCoordinate(t *testing.T) {
	g, err := grid.New(5)
	require.NoError(t, err)
	for i := 0; i < 25; i++ {
		assert.Equal(t, i, g.Index(g.Coordinate(i)))
	}
	assert.Equal(t, grid.Coord{X: 3, Y: 1}, g.Coordinate(8))
}

func TestClone_Independent(t *testing.T) {
	g := grid.Demo()
	c := g.Clone()
	require.True(t, g.Equal(c))

	require.NoError(t, c.Set(grid.Coord{X: 0, Y: 0}, grid.Obstacle))
	assert.False(t, g.Equal(c))
	s, _ := g.At(grid.Coord{X: 0, Y: 0})
	assert.Equal(t, grid.Empty, s)
}

//----------------------------------------------------------------------------//
// Editing
//----------------------------------------------------------------------------//

func TestPlace_MovesEndpoints(t *testing.T) {
	g, err := grid.New(4)
	require.NoError(t, err)
	require.NoError(t, g.Place(grid.Coord{X: 0, Y: 0}, grid.Coord{X: 3, Y: 3}))
	require.NoError(t, g.Place(grid.Coord{X: 1, Y: 1}, grid.Coord{X: 2, Y: 2}))

	s, _ := g.At(grid.Coord{X: 0, Y: 0})
	assert.Equal(t, grid.Empty, s)
	s, _ = g.At(grid.Coord{X: 3, Y: 3})
	assert.Equal(t, grid.Empty, s)

	start, ok := g.Find(grid.Start)
	assert.True(t, ok)
	assert.Equal(t, grid.Coord{X: 1, Y: 1}, start)
	end, ok := g.Find(grid.End)
	assert.True(t, ok)
	assert.Equal(t, grid.Coord{X: 2, Y: 2}, end)
}

func TestToggleObstacle(t *testing.T) {
	g, err := grid.New(3)
	require.NoError(t, err)
	require.NoError(t, g.Place(grid.Coord{X: 0, Y: 0}, grid.Coord{X: 2, Y: 2}))

	c := grid.Coord{X: 1, Y: 1}
	s, err := g.ToggleObstacle(c)
	require.NoError(t, err)
	assert.Equal(t, grid.Obstacle, s)
	s, err = g.ToggleObstacle(c)
	require.NoError(t, err)
	assert.Equal(t, grid.Empty, s)

	_, err = g.ToggleObstacle(grid.Coord{X: 0, Y: 0})
	assert.ErrorIs(t, err, grid.ErrEndpointCell)
	_, err = g.ToggleObstacle(grid.Coord{X: 9, Y: 0})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestMarkAndClearMarks(t *testing.T) {
	g, _, _, err := grid.Parse(`
		S.#
		...
		..E`)
	require.NoError(t, err)

	n := g.Mark([]grid.Coord{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}, {X: 7, Y: 7}}, grid.Route)
	assert.Equal(t, 1, n, "only the empty in-bounds cell is marked")
	g.Mark([]grid.Coord{{X: 0, Y: 1}}, grid.Round)
	assert.Equal(t, "S.#\no*.\n..E\n", g.String())

	g.ClearMarks()
	assert.Equal(t, "S.#\n...\n..E\n", g.String())
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

func TestValidateEndpoints(t *testing.T) {
	g, err := grid.FromObstacles(5, []grid.Coord{{X: 2, Y: 2}})
	require.NoError(t, err)

	cases := []struct {
		name       string
		start, end grid.Coord
		err        error
	}{
		{"Valid", grid.Coord{X: 0, Y: 0}, grid.Coord{X: 4, Y: 4}, nil},
		{"StartOff", grid.Coord{X: -1, Y: 0}, grid.Coord{X: 4, Y: 4}, grid.ErrOutOfBounds},
		{"EndOff", grid.Coord{X: 0, Y: 0}, grid.Coord{X: 4, Y: 5}, grid.ErrOutOfBounds},
		{"Same", grid.Coord{X: 1, Y: 1}, grid.Coord{X: 1, Y: 1}, grid.ErrSameEndpoints},
		{"StartBlocked", grid.Coord{X: 2, Y: 2}, grid.Coord{X: 4, Y: 4}, grid.ErrEndpointBlocked},
		{"EndBlocked", grid.Coord{X: 0, Y: 0}, grid.Coord{X: 2, Y: 2}, grid.ErrEndpointBlocked},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := grid.ValidateEndpoints(g, tc.start, tc.end)
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestValidateEndpoints_NilGrid(t *testing.T) {
	err := grid.ValidateEndpoints(nil, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 1, Y: 0})
	assert.ErrorIs(t, err, grid.ErrNilGrid)
}

func TestDemo(t *testing.T) {
	g := grid.Demo()
	assert.Equal(t, grid.DefaultSize, g.Size())
	assert.Len(t, g.Obstacles(), 17)

	start, _ := g.Find(grid.Start)
	end, _ := g.Find(grid.End)
	assert.Equal(t, grid.DemoStart, start)
	assert.Equal(t, grid.DemoEnd, end)
	assert.NoError(t, grid.ValidateEndpoints(g, start, end))
}

func TestCellState_String(t *testing.T) {
	assert.Equal(t, "round", grid.Round.String())
	assert.Equal(t, "CellState(42)", grid.CellState(42).String())
}
