// Package maze defines the session types, options, and sentinel errors
// for the maze facade of github.com/katalvlaran/lvlmaze.
package maze

import (
	"errors"
	"math/rand"
	"time"

	"github.com/katalvlaran/lvlmaze/grid"
)

// Sentinel errors for session lifecycle misuse.
var (
	// ErrAlreadyGenerated indicates Generate was called twice on one
	// session. Carving consumes the session's fresh-grid precondition;
	// configure a new session instead of regenerating in place.
	ErrAlreadyGenerated = errors.New("maze: session already generated")
	// ErrNotGenerated indicates FindAllPaths (or a grid accessor that
	// needs a finished maze) was called before Generate.
	ErrNotGenerated = errors.New("maze: session not generated yet")
	// ErrNegativeExits indicates a negative requested exit count.
	ErrNegativeExits = errors.New("maze: requested exit count must be non-negative")
)

// Route is the outcome of pathfinding toward one exit, in exit order.
// Cells is the full start→exit coordinate sequence (inclusive, each
// consecutive pair 4-adjacent); a nil Cells is the explicit
// "unreachable" marker.
type Route struct {
	Exit  grid.Coord
	Cells []grid.Coord
}

// Found reports whether a path to the exit exists.
func (r Route) Found() bool { return r.Cells != nil }

// Len returns the path length in cells, 0 when unreachable.
func (r Route) Len() int { return len(r.Cells) }

// Options holds session configuration.
//
// NumExits – boundary exits to sample (capped at the candidate pool).
// Rng      – random stream shared by carving and exit sampling; nil
// means a time-seeded local source.
type Options struct {
	NumExits int
	Rng      *rand.Rand
}

// Option represents a functional option for configuring New.
type Option func(*Options)

// WithExits sets the number of boundary exits to sample. More exits
// than the perimeter can supply caps silently at generation time;
// compare RequestedExits with len(Exits()) to observe the cap.
func WithExits(n int) Option {
	return func(o *Options) {
		o.NumExits = n
	}
}

// WithSeed creates a fresh deterministic random stream from seed. The
// same (width, height, exits, seed) quadruple reproduces byte-identical
// grid, exit list, and paths.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects a shared random stream. Passing nil has no effect.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rng = r
		}
	}
}

// DefaultOptions returns Options with one exit and no random source
// set; New resolves a nil Rng to a time-seeded stream.
func DefaultOptions() Options {
	return Options{NumExits: 1, Rng: nil}
}

func resolveRng(o Options) *rand.Rand {
	if o.Rng != nil {
		return o.Rng
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
