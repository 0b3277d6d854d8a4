package pathfind_test

import (
	"context"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/pathfind"
)

const gapWall = `
.S.....
.......
.......
###.###
.......
.......
.....E.`

const pocket = `
.........
.........
.........
...####..
S.....#.E
...####..
.........
.........
.........`

func request(t *testing.T, layout string, s pathfind.Strategy) pathfind.Request {
	t.Helper()
	g, start, end, err := grid.Parse(layout)
	require.NoError(t, err)

	return pathfind.Request{Grid: g, Start: start, End: end, Strategy: s}
}

func TestParseStrategy(t *testing.T) {
	cases := []struct {
		in   string
		want pathfind.Strategy
	}{
		{"greedy", pathfind.Greedy},
		{"aStar", pathfind.Greedy},
		{"dijkstra", pathfind.Dijkstra},
		{" Dijkstra ", pathfind.Dijkstra},
		{"astar", pathfind.AStar},
		{"ASTAR", pathfind.AStar},
		{"a*", pathfind.AStar},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := pathfind.ParseStrategy(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := pathfind.ParseStrategy("bfs")
	assert.ErrorIs(t, err, pathfind.ErrUnknownStrategy)
}

func TestStrategy_StringRoundTrip(t *testing.T) {
	for _, s := range pathfind.Strategies() {
		got, err := pathfind.ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	assert.Equal(t, "Strategy(7)", pathfind.Strategy(7).String())
}

func TestSearch_Demo(t *testing.T) {
	cases := []struct {
		strategy pathfind.Strategy
		steps    int
	}{
		{pathfind.Greedy, 34},
		{pathfind.Dijkstra, 17},
		{pathfind.AStar, 17},
	}
	for _, tc := range cases {
		t.Run(tc.strategy.String(), func(t *testing.T) {
			req := pathfind.Request{Grid: grid.Demo(), Start: grid.DemoStart, End: grid.DemoEnd, Strategy: tc.strategy}
			out, err := pathfind.Search(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, tc.strategy, out.Strategy)
			assert.Equal(t, tc.steps, out.Steps)
			assert.NotEmpty(t, out.Route())
		})
	}
}

// TestSearch_PayloadShapes: each strategy fills its own payload only.
func TestSearch_PayloadShapes(t *testing.T) {
	out, err := pathfind.Search(context.Background(), request(t, gapWall, pathfind.Greedy))
	require.NoError(t, err)
	require.NotNil(t, out.Greedy)
	assert.Nil(t, out.Dijkstra)
	assert.Nil(t, out.AStar)
	assert.NotEmpty(t, out.Examined())
	assert.Zero(t, out.Cost())

	out, err = pathfind.Search(context.Background(), request(t, gapWall, pathfind.Dijkstra))
	require.NoError(t, err)
	require.NotNil(t, out.Dijkstra)
	assert.Nil(t, out.Greedy)
	assert.Nil(t, out.Examined())
	assert.InDelta(t, 2+4*math.Sqrt2, out.Cost(), 1e-9)

	out, err = pathfind.Search(context.Background(), request(t, gapWall, pathfind.AStar))
	require.NoError(t, err)
	require.NotNil(t, out.AStar)
	assert.InDelta(t, 2+4*math.Sqrt2, out.Cost(), 1e-9)
}

// TestSearch_Pocket: only the complete strategies solve the dead-end board.
func TestSearch_Pocket(t *testing.T) {
	_, err := pathfind.Search(context.Background(), request(t, pocket, pathfind.Greedy))
	assert.ErrorIs(t, err, grid.ErrUnreachable)

	for _, s := range []pathfind.Strategy{pathfind.Dijkstra, pathfind.AStar} {
		out, err := pathfind.Search(context.Background(), request(t, pocket, s))
		require.NoError(t, err, s.String())
		assert.InDelta(t, 4+4*math.Sqrt2, out.Cost(), 1e-9, s.String())
	}
}

func TestSearch_Errors(t *testing.T) {
	_, err := pathfind.Search(context.Background(), pathfind.Request{})
	assert.ErrorIs(t, err, pathfind.ErrNilGrid)

	req := request(t, gapWall, pathfind.Strategy(9))
	_, err = pathfind.Search(context.Background(), req)
	assert.ErrorIs(t, err, pathfind.ErrUnknownStrategy)

	req = request(t, gapWall, pathfind.Dijkstra)
	req.End = req.Start
	_, err = pathfind.Search(context.Background(), req)
	assert.ErrorIs(t, err, grid.ErrSameEndpoints)

	req = request(t, gapWall, pathfind.AStar)
	req.End = grid.Coord{X: 0, Y: 3}
	_, err = pathfind.Search(context.Background(), req)
	assert.ErrorIs(t, err, grid.ErrEndpointBlocked)
}

func TestSearch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, s := range pathfind.Strategies() {
		_, err := pathfind.Search(ctx, request(t, gapWall, s))
		assert.ErrorIs(t, err, context.Canceled, s.String())
	}
}

func TestSearch_HeuristicPassedThrough(t *testing.T) {
	req := pathfind.Request{Grid: grid.Demo(), Start: grid.DemoStart, End: grid.DemoEnd,
		Strategy: pathfind.Greedy, Heuristic: heuristic.Manhattan}
	out, err := pathfind.Search(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 18, out.Steps)
}

func TestSearch_Logging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := pathfind.Search(context.Background(), request(t, gapWall, pathfind.Dijkstra), pathfind.WithLogger(logger))
	require.NoError(t, err)
	require.Len(t, hook.Entries, 1)
	e := hook.LastEntry()
	assert.Equal(t, logrus.DebugLevel, e.Level)
	assert.Equal(t, "search finished", e.Message)
	assert.Equal(t, "dijkstra", e.Data["strategy"])
	assert.Equal(t, "(1,0)", e.Data["start"])
	assert.Equal(t, true, e.Data["found"])
	assert.Equal(t, 5, e.Data["steps"])

	hook.Reset()
	_, err = pathfind.Search(context.Background(), request(t, pocket, pathfind.Greedy), pathfind.WithLogger(logger))
	require.Error(t, err)
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, "search failed", hook.LastEntry().Message)
	assert.Equal(t, false, hook.LastEntry().Data["found"])
}

func TestApply(t *testing.T) {
	req := request(t, gapWall, pathfind.Greedy)
	before := req.Grid.Clone()
	out, err := pathfind.Search(context.Background(), req)
	require.NoError(t, err)
	require.True(t, before.Equal(req.Grid), "Search must not touch the grid")

	pathfind.Apply(req.Grid, out)
	want := "" +
		"oSoo...\n" +
		"o**o...\n" +
		"oo*oo..\n" +
		"###*###\n" +
		"..oo*o.\n" +
		"...o*o.\n" +
		"...ooE.\n"
	assert.Equal(t, want, req.Grid.String())

	// a second Apply replaces the old marks
	out, err = pathfind.Search(context.Background(), pathfind.Request{
		Grid: req.Grid, Start: req.Start, End: req.End, Strategy: pathfind.Dijkstra,
	})
	require.NoError(t, err)
	pathfind.Apply(req.Grid, out)
	assert.Equal(t, 5, len(out.Route()))
	for _, c := range out.Route() {
		s, _ := req.Grid.At(c)
		assert.Equal(t, grid.Route, s)
	}
	_, hasRound := req.Grid.Find(grid.Round)
	assert.False(t, hasRound)
}
