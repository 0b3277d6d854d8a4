package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

// BenchmarkSearch_Demo measures a full search on the default board.
func BenchmarkSearch_Demo(b *testing.B) {
	g := grid.Demo()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Search(g, grid.DemoStart, grid.DemoEnd)
	}
}

// BenchmarkSearch_Open100 measures a corner-to-corner search on an empty 100×100 board.
func BenchmarkSearch_Open100(b *testing.B) {
	g, _ := grid.New(100)
	start, end := grid.Coord{X: 0, Y: 0}, grid.Coord{X: 99, Y: 99}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Search(g, start, end)
	}
}
