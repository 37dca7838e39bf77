package carver_test

import (
	"testing"

	"github.com/katalvlaran/lvlmaze/carver"
	"github.com/katalvlaran/lvlmaze/grid"
)

// BenchmarkCarve_Square measures carving a 100×100-room maze.
func BenchmarkCarve_Square(b *testing.B) {
	const side = 100

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		g, err := grid.New(side, side)
		if err != nil {
			b.Fatal(err)
		}
		if err = carver.Carve(g, carver.WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCarve_Corridor measures the worst backtracking shape: a 1×N
// maze whose explicit stack grows to N frames.
func BenchmarkCarve_Corridor(b *testing.B) {
	const length = 10000

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		g, err := grid.New(1, length)
		if err != nil {
			b.Fatal(err)
		}
		if err = carver.Carve(g, carver.WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}
