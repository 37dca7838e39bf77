// Package carver defines types, options, and sentinel errors for the
// carver subpackage of github.com/katalvlaran/lvlmaze.
package carver

import (
	"errors"
	"math/rand"
	"time"
)

// Sentinel errors for carving operations.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to Carve.
	ErrNilGrid = errors.New("carver: grid is nil")
	// ErrNotBlank indicates the grid has already been carved; Carve
	// requires a fresh all-Wall grid because visited state is not
	// re-derivable from a partially opened matrix.
	ErrNotBlank = errors.New("carver: grid already carved")
)

// Options holds configurable parameters for carving.
//
// Rng – random source driving direction shuffles; nil means a
// time-seeded local source (never the process-global one).
type Options struct {
	Rng *rand.Rand
}

// Option represents a functional option for configuring Carve.
type Option func(*Options)

// WithRand injects a shared random source. Passing nil has no effect.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rng = r
		}
	}
}

// WithSeed creates a fresh deterministic random source from seed.
// The same seed over the same grid dimensions reproduces an identical
// maze.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rng = rand.New(rand.NewSource(seed))
	}
}

// DefaultOptions returns Options with no random source set; Carve
// resolves a nil Rng to a time-seeded rand.New so plain calls still
// vary between runs.
func DefaultOptions() Options {
	return Options{Rng: nil}
}

// resolveRng returns the configured source, or a local time-seeded one.
func resolveRng(o Options) *rand.Rand {
	if o.Rng != nil {
		return o.Rng
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
