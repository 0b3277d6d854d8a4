package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// ExampleParse shows the ASCII layout used by tests and the CLI.
func ExampleParse() {
	g, start, end, err := grid.Parse(`
		S..
		.#.
		..E`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("size:", g.Size(), "start:", start, "end:", end)
	fmt.Println("obstacles:", g.Obstacles())
	// Output:
	// size: 3 start: (0,0) end: (2,2)
	// obstacles: [(1,1)]
}

// ExampleGrid_ToggleObstacle demonstrates click-to-edit semantics.
func ExampleGrid_ToggleObstacle() {
	g, _ := grid.New(3)
	c := grid.Coord{X: 1, Y: 0}
	s, _ := g.ToggleObstacle(c)
	fmt.Println(s)
	s, _ = g.ToggleObstacle(c)
	fmt.Println(s)
	// Output:
	// obstacle
	// empty
}
