// Package astar defines types, options, and sentinel errors for the
// astar subpackage of github.com/katalvlaran/lvlmaze.
package astar

import (
	"errors"
	"math"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to Search.
	ErrNilGrid = errors.New("astar: grid is nil")
	// ErrOutOfBounds indicates the start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("astar: endpoint out of bounds")
	// ErrBlockedCell indicates the start or goal cell is a Wall.
	ErrBlockedCell = errors.New("astar: endpoint cell is not open")
	// ErrNoPath indicates the frontier emptied before reaching the
	// goal. For maze exits this is expected, recoverable information,
	// not a fault: callers record the exit as unreachable and move on.
	ErrNoPath = errors.New("astar: no path between endpoints")
	// ErrBadMaxExpansions indicates a non-positive expansion cap.
	ErrBadMaxExpansions = errors.New("astar: MaxExpansions must be positive")
)

// Options configures the behavior of Search.
//
// MaxExpansions – cap on closed-set growth; once that many cells have
// been expanded the search gives up with ErrNoPath. Defaults to
// math.MaxInt (no cap). The frontier itself is bounded by the number of
// Open cells, not by the full W×H matrix, so the default is safe for
// any grid that fits in memory.
type Options struct {
	MaxExpansions int
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithMaxExpansions bounds the number of cells the search may expand.
// Must be positive; non-positive values panic with ErrBadMaxExpansions
// (invalid configuration is a programming error, caught early).
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// DefaultOptions returns Options with no expansion cap.
func DefaultOptions() Options {
	return Options{MaxExpansions: math.MaxInt}
}
