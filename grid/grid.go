package grid

// Grid is a fixed-size mutable matrix of Wall/Open cells encoding a
// rectangular maze. For a requested maze of W×H rooms the matrix has
// (2H+1) rows and (2W+1) columns: rooms sit at odd/odd coordinates,
// passages between adjacent rooms at exactly-one-odd coordinates, and
// wall junctions at even/even. Every cell starts as Wall.
//
// Ownership discipline: the carver mutates a Grid first, the exit
// selector second, and pathfinding only reads it. Grid itself holds no
// algorithm beyond cell accessors and boundary queries.
type Grid struct {
	width, height int // requested room dimensions
	rows, cols    int // matrix dimensions: 2*height+1, 2*width+1
	cells         [][]State
}

// New allocates an all-Wall grid for a maze of width×height rooms.
// Returns ErrInvalidDimensions (before any allocation) if width or
// height is < 1.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidDimensions
	}
	rows, cols := 2*height+1, 2*width+1
	cells := make([][]State, rows)
	for r := range cells {
		cells[r] = make([]State, cols)
	}

	return &Grid{
		width:  width,
		height: height,
		rows:   rows,
		cols:   cols,
		cells:  cells,
	}, nil
}

// Width returns the requested room count per row.
func (g *Grid) Width() int { return g.width }

// Height returns the requested room count per column.
func (g *Grid) Height() int { return g.height }

// Rows returns the matrix row count (2*Height+1).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the matrix column count (2*Width+1).
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the cell matrix.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Interior reports whether c lies strictly inside the outer wall ring.
func (g *Grid) Interior(c Coord) bool {
	return c.Row > 0 && c.Row < g.rows-1 && c.Col > 0 && c.Col < g.cols-1
}

// OnBoundary reports whether c lies on the outer perimeter.
func (g *Grid) OnBoundary(c Coord) bool {
	return g.InBounds(c) && !g.Interior(c)
}

// At returns the state of cell c. Out-of-bounds coordinates read as
// Wall, so callers may probe neighbors without pre-checking.
func (g *Grid) At(c Coord) State {
	if !g.InBounds(c) {
		return Wall
	}

	return g.cells[c.Row][c.Col]
}

// Set writes the state of cell c. Returns ErrOutOfBounds if c lies
// outside the matrix.
func (g *Grid) Set(c Coord, s State) error {
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	g.cells[c.Row][c.Col] = s

	return nil
}

// IsRoom reports whether c is room-aligned (odd row and odd column).
func (g *Grid) IsRoom(c Coord) bool {
	return g.InBounds(c) && c.Row%2 == 1 && c.Col%2 == 1
}

// InteriorNeighbor returns the unique interior cell one step inward
// from boundary coordinate c, and whether such a cell exists. Corner
// cells and non-boundary coordinates have no interior neighbor.
func (g *Grid) InteriorNeighbor(c Coord) (Coord, bool) {
	if !g.OnBoundary(c) {
		return Coord{}, false
	}
	onVertical := c.Col == 0 || c.Col == g.cols-1
	onHorizontal := c.Row == 0 || c.Row == g.rows-1
	if onVertical && onHorizontal { // corner: inward direction is ambiguous
		return Coord{}, false
	}
	switch {
	case c.Col == 0:
		return Coord{Row: c.Row, Col: 1}, true
	case c.Col == g.cols-1:
		return Coord{Row: c.Row, Col: g.cols - 2}, true
	case c.Row == 0:
		return Coord{Row: 1, Col: c.Col}, true
	default:
		return Coord{Row: g.rows - 2, Col: c.Col}, true
	}
}

// ExitCandidate reports whether boundary coordinate c is eligible to
// become an exit: it must be room-aligned along its edge (odd row on
// the left/right edges, odd column on the top/bottom edges) and its
// interior neighbor room must be Open.
// Complexity: O(1).
func (g *Grid) ExitCandidate(c Coord) bool {
	n, ok := g.InteriorNeighbor(c)
	if !ok {
		return false
	}
	// Room alignment: the inward neighbor must itself be a room cell,
	// not a passage between two rooms.
	if !g.IsRoom(n) {
		return false
	}

	return g.At(n) == Open
}

// OpenRooms counts room cells (odd/odd) currently Open.
// Complexity: O(W×H).
func (g *Grid) OpenRooms() int {
	var n int
	for r := 1; r < g.rows; r += 2 {
		for c := 1; c < g.cols; c += 2 {
			if g.cells[r][c] == Open {
				n++
			}
		}
	}

	return n
}

// OpenPassages counts interior passage cells (exactly one odd
// coordinate, strictly inside the perimeter) currently Open. Boundary
// openings such as the entrance and exits are excluded: a perfect maze
// satisfies OpenPassages() == OpenRooms()-1.
// Complexity: O(W×H).
func (g *Grid) OpenPassages() int {
	var n int
	for r := 1; r < g.rows-1; r++ {
		for c := 1; c < g.cols-1; c++ {
			if (r%2 == 1) == (c%2 == 1) { // room or junction, not a passage
				continue
			}
			if g.cells[r][c] == Open {
				n++
			}
		}
	}

	return n
}

// Clone returns a deep copy of the grid. Useful for handing a frozen
// snapshot to readers while the original keeps being mutated.
// Complexity: O(W×H) time and memory.
func (g *Grid) Clone() *Grid {
	cells := make([][]State, g.rows)
	for r := range cells {
		cells[r] = make([]State, g.cols)
		copy(cells[r], g.cells[r])
	}

	return &Grid{
		width:  g.width,
		height: g.height,
		rows:   g.rows,
		cols:   g.cols,
		cells:  cells,
	}
}
