// Package grid defines core types and sentinel errors for the
// grid subpackage of github.com/katalvlaran/lvlmaze.
package grid

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimensions indicates a requested maze width or height < 1.
	// It is returned before any cell storage is allocated.
	ErrInvalidDimensions = errors.New("grid: width and height must be at least 1")
	// ErrOutOfBounds indicates a coordinate outside the cell matrix.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// State is the binary occupancy of a single cell.
type State uint8

const (
	// Wall blocks movement; every cell starts as Wall.
	Wall State = iota
	// Open allows movement.
	Open
)

// String renders the state for diagnostics ("Wall" / "Open").
func (s State) String() string {
	if s == Open {
		return "Open"
	}

	return "Wall"
}

// Coord addresses a single cell as (Row, Col), row-major from the
// top-left corner of the matrix.
type Coord struct {
	Row, Col int
}

// Manhattan returns the grid (L1) distance to o. It never overestimates
// the true 4-connected walking distance, which makes it an admissible
// A* heuristic over uniform-cost cells.
func (c Coord) Manhattan(o Coord) int {
	dr := c.Row - o.Row
	if dr < 0 {
		dr = -dr
	}
	dc := c.Col - o.Col
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// Less orders coordinates row-major: by Row, then by Col.
// Used as the deterministic tie-breaker in search frontiers.
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}

	return c.Col < o.Col
}

// Fixed coordinates of the maze entrance. The entrance sits on the left
// boundary one step outside the first room; StartRoom is that room.
// Both are invariant across maze sizes because carving always begins in
// the top-left room.
var (
	// Entrance is the fixed start coordinate (row 1, col 0).
	Entrance = Coord{Row: 1, Col: 0}
	// StartRoom is the interior room adjacent to Entrance (row 1, col 1).
	StartRoom = Coord{Row: 1, Col: 1}
)
