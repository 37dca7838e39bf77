package carver

import (
	"math/rand"

	"github.com/katalvlaran/lvlmaze/grid"
)

// roomOffsets are the four room-to-room jumps (two cells apart); the
// passage between two rooms sits at the midpoint of the jump.
var roomOffsets = [4]grid.Coord{
	{Row: 0, Col: 2},  // east
	{Row: 2, Col: 0},  // south
	{Row: 0, Col: -2}, // west
	{Row: -2, Col: 0}, // north
}

// frame is one level of the explicit depth-first stack: a room plus its
// privately shuffled direction order and a cursor into it.
type frame struct {
	room grid.Coord
	dirs [4]grid.Coord
	next int
}

// walker encapsulates mutable carving state.
type walker struct {
	g       *grid.Grid
	rng     *rand.Rand
	visited map[grid.Coord]struct{}
	stack   []frame
}

// Carve opens passages in g until the rooms form a spanning tree:
// randomized depth-first traversal starting at grid.StartRoom, opening
// the passage cell between each newly visited room and its parent, and
// backtracking when a room has no unvisited in-bounds neighbor. The
// entrance cell is forced Open afterwards.
//
// The traversal uses an explicit frame stack rather than call
// recursion, so carving depth is bounded by heap memory (worst case a
// single W×H-long corridor) instead of the goroutine stack.
//
// Postconditions for any valid grid: every room is Open and reachable
// from StartRoom, open interior passages number exactly OpenRooms()-1
// (acyclicity — the formal "perfect maze" property), and the perimeter
// stays Wall except the entrance.
//
// Returns ErrNilGrid for a nil grid and ErrNotBlank if g was carved
// before. Carving itself cannot fail on a fresh grid.
// Complexity: O(W×H) time, O(W×H) memory for the stack and visited set.
func Carve(g *grid.Grid, opts ...Option) error {
	// 1. Validate input grid.
	if g == nil {
		return ErrNilGrid
	}
	if g.At(grid.StartRoom) == grid.Open {
		return ErrNotBlank
	}

	// 2. Apply options and resolve the random source.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	w := &walker{
		g:       g,
		rng:     resolveRng(o),
		visited: make(map[grid.Coord]struct{}, g.Width()*g.Height()),
		stack:   make([]frame, 0, g.Width()*g.Height()),
	}

	// 3. Seed the stack with the start room and walk to exhaustion.
	w.enter(grid.StartRoom)
	w.run()

	// 4. Force the entrance open; it lies outside the carved region,
	// directly left of the start room.
	_ = g.Set(grid.Entrance, grid.Open)

	return nil
}

// enter marks room visited and Open, and pushes a frame with a freshly
// shuffled direction order.
func (w *walker) enter(room grid.Coord) {
	w.visited[room] = struct{}{}
	_ = w.g.Set(room, grid.Open)

	f := frame{room: room, dirs: roomOffsets}
	w.rng.Shuffle(len(f.dirs), func(i, j int) {
		f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
	})
	w.stack = append(w.stack, f)
}

// run drains the stack: the top frame tries its remaining directions in
// order; the first unvisited interior room gets its connecting passage
// opened and becomes the new top; a frame with no directions left pops.
func (w *walker) run() {
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]

		advanced := false
		for top.next < len(top.dirs) {
			d := top.dirs[top.next]
			top.next++

			candidate := grid.Coord{Row: top.room.Row + d.Row, Col: top.room.Col + d.Col}
			if !w.g.Interior(candidate) {
				continue
			}
			if _, seen := w.visited[candidate]; seen {
				continue
			}

			// Open the passage midway between the two rooms, then deepen.
			passage := grid.Coord{Row: top.room.Row + d.Row/2, Col: top.room.Col + d.Col/2}
			_ = w.g.Set(passage, grid.Open)
			w.enter(candidate)
			advanced = true

			break
		}

		if !advanced {
			w.stack = w.stack[:len(w.stack)-1] // backtrack
		}
	}
}
