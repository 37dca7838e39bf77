package maze

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlmaze/astar"
	"github.com/katalvlaran/lvlmaze/carver"
	"github.com/katalvlaran/lvlmaze/exits"
	"github.com/katalvlaran/lvlmaze/grid"
)

// Session owns one maze lifecycle: configure with New, carve and place
// exits with Generate, then query routes with FindAllPaths and the read
// accessors. The grid is mutated only inside Generate; afterwards every
// component (including the caller) treats it as read-only.
//
// Sessions are not safe for concurrent use; the whole pipeline is
// single-threaded by design.
type Session struct {
	width, height int
	requested     int // exit count as configured, before capping
	rng           *rand.Rand

	g     *grid.Grid
	exitL []grid.Coord
}

// New configures a session for a width×height-room maze. Dimensions are
// validated here, before any grid allocation: width or height < 1
// returns grid.ErrInvalidDimensions and the session is unusable.
func New(width, height int, opts ...Option) (*Session, error) {
	if width < 1 || height < 1 {
		return nil, grid.ErrInvalidDimensions
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.NumExits < 0 {
		return nil, ErrNegativeExits
	}

	return &Session{
		width:     width,
		height:    height,
		requested: o.NumExits,
		rng:       resolveRng(o),
	}, nil
}

// Generate allocates the grid, carves the maze, and samples exits.
// Carving and sampling draw from the session's single random stream, so
// a seeded session is reproducible end to end.
//
// A second call returns ErrAlreadyGenerated: carving requires a blank
// grid and the session's stream has advanced, so regenerating in place
// could only corrupt state.
func (s *Session) Generate() (*grid.Grid, error) {
	if s.g != nil {
		return nil, ErrAlreadyGenerated
	}

	g, err := grid.New(s.width, s.height)
	if err != nil {
		return nil, err
	}
	if err = carver.Carve(g, carver.WithRand(s.rng)); err != nil {
		return nil, fmt.Errorf("maze: carving failed: %w", err)
	}
	chosen, err := exits.Select(g, s.requested, exits.WithRand(s.rng))
	if err != nil {
		return nil, fmt.Errorf("maze: exit selection failed: %w", err)
	}

	s.g = g
	s.exitL = chosen

	return g, nil
}

// FindAllPaths runs one independent shortest-path search per exit, in
// exit order, from the fixed entrance. An unreachable exit yields a
// Route with nil Cells rather than an error; any other search failure
// aborts (it would indicate a corrupted grid).
//
// The call is idempotent: no search state survives between calls, so
// repeated invocations over an unmutated grid return identical routes.
func (s *Session) FindAllPaths() ([]Route, error) {
	if s.g == nil {
		return nil, ErrNotGenerated
	}

	routes := make([]Route, 0, len(s.exitL))
	for _, exit := range s.exitL {
		cells, err := astar.Search(s.g, grid.Entrance, exit)
		switch {
		case errors.Is(err, astar.ErrNoPath):
			routes = append(routes, Route{Exit: exit}) // explicit unreachable marker
		case err != nil:
			return nil, fmt.Errorf("maze: search to exit (%d,%d): %w", exit.Row, exit.Col, err)
		default:
			routes = append(routes, Route{Exit: exit, Cells: cells})
		}
	}

	return routes, nil
}

// Width returns the configured room count per row.
func (s *Session) Width() int { return s.width }

// Height returns the configured room count per column.
func (s *Session) Height() int { return s.height }

// Start returns the fixed entrance coordinate (row 1, col 0).
func (s *Session) Start() grid.Coord { return grid.Entrance }

// RequestedExits returns the exit count as configured, before any
// capping; compare with len(Exits()) to detect oversubscription.
func (s *Session) RequestedExits() int { return s.requested }

// Grid returns the finished grid, or nil before Generate. The caller
// must treat it as read-only; Clone it before mutating.
func (s *Session) Grid() *grid.Grid { return s.g }

// Exits returns a copy of the carved exit coordinates, in selection
// order. Empty before Generate.
func (s *Session) Exits() []grid.Coord {
	out := make([]grid.Coord, len(s.exitL))
	copy(out, s.exitL)

	return out
}
