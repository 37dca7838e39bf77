package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvlmaze/grid"
)

// stepOffsets are the four unit moves, tried in a fixed order so that
// equal-cost relaxations happen deterministically.
var stepOffsets = [4]grid.Coord{
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: -1, Col: 0},
}

// Search finds a shortest 4-connected route over Open cells from start
// to goal, inclusive of both endpoints. Movement cost between adjacent
// open cells is uniformly 1; the frontier is ordered by f = g + h with
// the Manhattan distance as h. Because h never overestimates the true
// grid distance, the returned path is shortest in cell count.
//
// Ties among equal-f frontier entries break by coordinate (row-major),
// so output is fully deterministic for a given grid.
//
// Search allocates fresh state per call and only reads the grid, so
// concurrent searches over the same grid are safe as long as nothing
// mutates it.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start and goal must lie inside the matrix (ErrOutOfBounds).
//  3. start and goal cells must be Open (ErrBlockedCell).
//
// Returns ErrNoPath when the frontier empties — or the WithMaxExpansions
// cap is hit — before the goal is reached.
//
// Complexity: O(N log N) time for N open cells, O(N) memory.
func Search(g *grid.Grid, start, goal grid.Coord, opts ...Option) ([]grid.Coord, error) {
	// 1) Validate the grid.
	if g == nil {
		return nil, ErrNilGrid
	}

	// 2) Validate endpoints: in bounds, then open.
	for _, c := range [2]grid.Coord{start, goal} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.Row, c.Col)
		}
		if g.At(c) != grid.Open {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrBlockedCell, c.Row, c.Col)
		}
	}

	// 3) Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 4) Prepare per-call search state. Capacity hints assume the maze
	// case where roughly half the matrix is open.
	hint := (g.Rows() * g.Cols()) / 2
	r := &runner{
		g:       g,
		goal:    goal,
		options: o,
		came:    make(map[grid.Coord]grid.Coord, hint),
		cost:    make(map[grid.Coord]int, hint),
		closed:  make(map[grid.Coord]bool, hint),
	}

	// 5) Seed the frontier with the start cell and run the main loop.
	heap.Init(&r.pq)
	r.cost[start] = 0
	heap.Push(&r.pq, &node{pos: start, g: 0, f: start.Manhattan(goal)})

	if !r.process() {
		return nil, fmt.Errorf("%w: (%d,%d)→(%d,%d)",
			ErrNoPath, start.Row, start.Col, goal.Row, goal.Col)
	}

	// 6) Walk predecessors back to start, then reverse.
	return r.reconstruct(start), nil
}

// runner holds the mutable state of a single search.
type runner struct {
	g       *grid.Grid
	goal    grid.Coord
	options Options
	came    map[grid.Coord]grid.Coord // predecessor on the best known path
	cost    map[grid.Coord]int        // best known g per cell
	closed  map[grid.Coord]bool       // cells whose g is finalized
	pq      frontier
}

// process drains the frontier until the goal pops (true) or the
// frontier empties / the expansion cap is hit (false). Stale heap
// entries from the lazy decrease-key discipline are skipped via the
// closed set.
func (r *runner) process() bool {
	expanded := 0
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*node)
		if r.closed[item.pos] {
			continue // stale entry, a cheaper duplicate was processed
		}
		if item.pos == r.goal {
			return true // early exit: first pop of the goal is optimal
		}
		r.closed[item.pos] = true

		if expanded++; expanded > r.options.MaxExpansions {
			return false
		}
		r.relax(item)
	}

	return false
}

// relax pushes every open 4-neighbor of item that is strictly cheaper
// to reach through item than through any previously seen route.
func (r *runner) relax(item *node) {
	for _, d := range stepOffsets {
		next := grid.Coord{Row: item.pos.Row + d.Row, Col: item.pos.Col + d.Col}
		// Out-of-bounds reads are Wall, so no bounds check is needed.
		if r.g.At(next) != grid.Open {
			continue
		}

		newCost := item.g + 1
		if known, seen := r.cost[next]; seen && newCost >= known {
			continue
		}
		r.cost[next] = newCost
		r.came[next] = item.pos
		heap.Push(&r.pq, &node{
			pos: next,
			g:   newCost,
			f:   newCost + next.Manhattan(r.goal),
		})
	}
}

// reconstruct rebuilds the start→goal path from the predecessor map.
// The start cell is the only reached cell with no predecessor entry.
func (r *runner) reconstruct(start grid.Coord) []grid.Coord {
	path := []grid.Coord{r.goal}
	for cur := r.goal; cur != start; {
		cur = r.came[cur]
		path = append(path, cur)
	}
	// Reverse in place: came links point backwards.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// node is one frontier entry: a cell plus its accumulated cost g and
// priority f = g + heuristic.
type node struct {
	pos  grid.Coord
	g, f int
}

// frontier is a min-heap of *node ordered by f, with ties broken by
// row-major coordinate order. Lazy decrease-key: improved routes push
// duplicates, stale entries are skipped on pop via the closed set.
type frontier []*node

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by f ascending; equal f falls back to coordinate order so
// heap behavior never depends on insertion history.
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].pos.Less(pq[j].pos)
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; x must be of type *node.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*node)) }

// Pop removes and returns the minimum element.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
