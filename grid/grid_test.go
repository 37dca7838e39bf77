// Package grid_test contains unit tests for the grid substrate:
// construction validation, coordinate conventions, boundary queries,
// counting helpers, and deep copying.
package grid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/grid"
)

// ------------------------------------------------------------------------
// 1. Construction and dimensions.
// ------------------------------------------------------------------------

func TestNew_InvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ w, h int }{
		{0, 5}, {5, 0}, {0, 0}, {-1, 3}, {3, -1},
	} {
		_, err := grid.New(tc.w, tc.h)
		require.ErrorIs(t, err, grid.ErrInvalidDimensions, "w=%d h=%d", tc.w, tc.h)
	}
}

func TestNew_MatrixDimensions(t *testing.T) {
	g, err := grid.New(3, 4)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 4, g.Height())
	assert.Equal(t, 2*4+1, g.Rows())
	assert.Equal(t, 2*3+1, g.Cols())
}

func TestNew_AllWall(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			assert.Equal(t, grid.Wall, g.At(grid.Coord{Row: r, Col: c}))
		}
	}
}

// ------------------------------------------------------------------------
// 2. Cell access and bounds.
// ------------------------------------------------------------------------

func TestSetAt_RoundTrip(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	c := grid.Coord{Row: 1, Col: 1}
	require.NoError(t, g.Set(c, grid.Open))
	assert.Equal(t, grid.Open, g.At(c))
}

func TestSet_OutOfBounds(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	err = g.Set(grid.Coord{Row: -1, Col: 0}, grid.Open)
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
	err = g.Set(grid.Coord{Row: 0, Col: g.Cols()}, grid.Open)
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestAt_OutOfBoundsReadsWall(t *testing.T) {
	g, err := grid.New(1, 1)
	require.NoError(t, err)

	// Probing beyond the matrix must be safe and read as Wall.
	assert.Equal(t, grid.Wall, g.At(grid.Coord{Row: -5, Col: 0}))
	assert.Equal(t, grid.Wall, g.At(grid.Coord{Row: 0, Col: 99}))
}

func TestInteriorAndBoundary(t *testing.T) {
	g, err := grid.New(2, 2) // 5×5 matrix
	require.NoError(t, err)

	assert.True(t, g.OnBoundary(grid.Coord{Row: 0, Col: 3}))
	assert.True(t, g.OnBoundary(grid.Coord{Row: 4, Col: 0}))
	assert.False(t, g.OnBoundary(grid.Coord{Row: 2, Col: 2}))
	assert.True(t, g.Interior(grid.Coord{Row: 1, Col: 1}))
	assert.False(t, g.Interior(grid.Coord{Row: 0, Col: 1}))
	// Out of bounds is neither interior nor boundary.
	assert.False(t, g.OnBoundary(grid.Coord{Row: 9, Col: 9}))
	assert.False(t, g.Interior(grid.Coord{Row: 9, Col: 9}))
}

// ------------------------------------------------------------------------
// 3. Coordinate helpers.
// ------------------------------------------------------------------------

func TestCoord_Manhattan(t *testing.T) {
	a := grid.Coord{Row: 1, Col: 0}
	b := grid.Coord{Row: 5, Col: 6}
	assert.Equal(t, 10, a.Manhattan(b))
	assert.Equal(t, 10, b.Manhattan(a))
	assert.Equal(t, 0, a.Manhattan(a))
}

func TestCoord_Less_RowMajor(t *testing.T) {
	assert.True(t, grid.Coord{Row: 1, Col: 9}.Less(grid.Coord{Row: 2, Col: 0}))
	assert.True(t, grid.Coord{Row: 2, Col: 1}.Less(grid.Coord{Row: 2, Col: 3}))
	assert.False(t, grid.Coord{Row: 2, Col: 3}.Less(grid.Coord{Row: 2, Col: 3}))
}

func TestFixedStartCoordinates(t *testing.T) {
	assert.Equal(t, grid.Coord{Row: 1, Col: 0}, grid.Entrance)
	assert.Equal(t, grid.Coord{Row: 1, Col: 1}, grid.StartRoom)
}

// ------------------------------------------------------------------------
// 4. Exit candidacy.
// ------------------------------------------------------------------------

func TestExitCandidate(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	left := grid.Coord{Row: 1, Col: 0}
	assert.False(t, g.ExitCandidate(left), "interior room still walled")

	require.NoError(t, g.Set(grid.StartRoom, grid.Open))
	assert.True(t, g.ExitCandidate(left))
	assert.True(t, g.ExitCandidate(grid.Coord{Row: 0, Col: 1}), "top edge above open room")

	// Corners never qualify: no unique interior-facing room.
	assert.False(t, g.ExitCandidate(grid.Coord{Row: 0, Col: 0}))
	assert.False(t, g.ExitCandidate(grid.Coord{Row: 4, Col: 4}))

	// Even-aligned boundary cells face passages, not rooms.
	require.NoError(t, g.Set(grid.Coord{Row: 2, Col: 1}, grid.Open)) // vertical passage
	assert.False(t, g.ExitCandidate(grid.Coord{Row: 2, Col: 0}))

	// Interior coordinates are never candidates.
	assert.False(t, g.ExitCandidate(grid.StartRoom))
}

// ------------------------------------------------------------------------
// 5. Counters, clone, rendering.
// ------------------------------------------------------------------------

func TestOpenRoomsAndPassages(t *testing.T) {
	g, err := grid.New(2, 1) // rooms (1,1) and (1,3), passage (1,2)
	require.NoError(t, err)

	assert.Zero(t, g.OpenRooms())
	assert.Zero(t, g.OpenPassages())

	require.NoError(t, g.Set(grid.Coord{Row: 1, Col: 1}, grid.Open))
	require.NoError(t, g.Set(grid.Coord{Row: 1, Col: 3}, grid.Open))
	require.NoError(t, g.Set(grid.Coord{Row: 1, Col: 2}, grid.Open))
	// Boundary openings must not count as passages.
	require.NoError(t, g.Set(grid.Entrance, grid.Open))

	assert.Equal(t, 2, g.OpenRooms())
	assert.Equal(t, 1, g.OpenPassages())
}

func TestClone_Independent(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.Set(grid.StartRoom, grid.Open))

	cp := g.Clone()
	require.Equal(t, g.String(), cp.String())

	require.NoError(t, cp.Set(grid.Coord{Row: 3, Col: 3}, grid.Open))
	assert.Equal(t, grid.Wall, g.At(grid.Coord{Row: 3, Col: 3}), "clone writes must not leak back")
}

func TestString_Shape(t *testing.T) {
	g, err := grid.New(1, 1)
	require.NoError(t, err)
	require.NoError(t, g.Set(grid.StartRoom, grid.Open))

	lines := strings.Split(strings.TrimRight(g.String(), "\n"), "\n")
	require.Len(t, lines, g.Rows())
	for _, ln := range lines {
		// Two glyph characters per cell.
		assert.Equal(t, g.Cols(), len([]rune(ln))/2)
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Wall", grid.Wall.String())
	assert.Equal(t, "Open", grid.Open.String())
}
