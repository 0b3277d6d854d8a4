package grid

// demoObstacles is the obstacle set the board ships with.
var demoObstacles = []Coord{
	{10, 10},
	{6, 3}, {6, 4}, {6, 5}, {6, 6}, {6, 7},
	{8, 7}, {8, 9}, {8, 11},
	{15, 12}, {15, 16}, {15, 17}, {15, 19},
	{15, 21}, {15, 22}, {15, 23}, {15, 24},
}

// Demo endpoints on the default board.
var (
	DemoStart = Coord{X: 3, Y: 5}
	DemoEnd   = Coord{X: 20, Y: 22}
)

// Demo returns the default 25×25 board with its obstacles and endpoints placed.
func Demo() *Grid {
	g, err := FromObstacles(DefaultSize, demoObstacles)
	if err != nil {
		panic(err) // static layout
	}
	if err = g.Place(DemoStart, DemoEnd); err != nil {
		panic(err)
	}

	return g
}
