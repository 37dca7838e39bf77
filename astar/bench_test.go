package astar_test

import (
	"testing"

	"github.com/katalvlaran/lvlmaze/astar"
	"github.com/katalvlaran/lvlmaze/carver"
	"github.com/katalvlaran/lvlmaze/grid"
)

// BenchmarkSearch_CrossMaze measures one entrance→far-corner search on a
// carved 100×100-room maze.
func BenchmarkSearch_CrossMaze(b *testing.B) {
	const side = 100
	g, err := grid.New(side, side)
	if err != nil {
		b.Fatal(err)
	}
	if err = carver.Carve(g, carver.WithSeed(42)); err != nil {
		b.Fatal(err)
	}
	goal := grid.Coord{Row: 2*side - 1, Col: 2*side - 1}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err = astar.Search(g, grid.Entrance, goal); err != nil {
			b.Fatal(err)
		}
	}
}
