package exits

import (
	"github.com/katalvlaran/lvlmaze/grid"
)

// Candidates scans the four boundary edges of a carved grid and
// collects every eligible exit position: a perimeter cell whose
// interior-facing room is Open. Left/right edges are scanned over odd
// (room-aligned) rows, top/bottom edges over odd columns; within each
// sweep the far edge is checked before the near one, so the pool order
// is deterministic for a given grid.
// Complexity: O(W+H).
func Candidates(g *grid.Grid) []grid.Coord {
	if g == nil {
		return nil
	}
	pool := make([]grid.Coord, 0, 2*(g.Width()+g.Height()))

	// Vertical edges: odd rows.
	for r := 1; r < g.Rows()-1; r += 2 {
		right := grid.Coord{Row: r, Col: g.Cols() - 1}
		if g.ExitCandidate(right) {
			pool = append(pool, right)
		}
		left := grid.Coord{Row: r, Col: 0}
		if g.ExitCandidate(left) {
			pool = append(pool, left)
		}
	}

	// Horizontal edges: odd columns.
	for c := 1; c < g.Cols()-1; c += 2 {
		bottom := grid.Coord{Row: g.Rows() - 1, Col: c}
		if g.ExitCandidate(bottom) {
			pool = append(pool, bottom)
		}
		top := grid.Coord{Row: 0, Col: c}
		if g.ExitCandidate(top) {
			pool = append(pool, top)
		}
	}

	return pool
}

// Select draws a uniform random sample without replacement of up to
// want exit positions from the candidate pool and carves each chosen
// boundary cell Open.
//
// When want exceeds the pool size the result is silently capped at the
// pool size — requesting more exits than the perimeter can supply is
// documented, recoverable behavior, observable by comparing len(result)
// with want. An empty pool (pathological degenerate maze) yields an
// empty list and a nil error.
//
// Returns ErrNilGrid for a nil grid and ErrNegativeCount for want < 0.
// Complexity: O(W+H) scan plus O(pool) for the sample permutation.
func Select(g *grid.Grid, want int, opts ...Option) ([]grid.Coord, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if want < 0 {
		return nil, ErrNegativeCount
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	pool := Candidates(g)
	k := want
	if k > len(pool) {
		k = len(pool) // silent cap, see doc comment
	}
	if k == 0 {
		return []grid.Coord{}, nil
	}

	// Sample without replacement: the first k indices of a random
	// permutation of the pool.
	rng := resolveRng(o)
	chosen := make([]grid.Coord, 0, k)
	for _, idx := range rng.Perm(len(pool))[:k] {
		chosen = append(chosen, pool[idx])
	}

	// Carve the chosen boundary cells.
	for _, c := range chosen {
		_ = g.Set(c, grid.Open)
	}

	return chosen, nil
}
