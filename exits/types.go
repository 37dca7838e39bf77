// Package exits defines types, options, and sentinel errors for the
// exits subpackage of github.com/katalvlaran/lvlmaze.
package exits

import (
	"errors"
	"math/rand"
	"time"
)

// Sentinel errors for exit selection.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to Select.
	ErrNilGrid = errors.New("exits: grid is nil")
	// ErrNegativeCount indicates a negative requested exit count.
	ErrNegativeCount = errors.New("exits: requested exit count must be non-negative")
)

// Options holds configurable parameters for exit sampling.
type Options struct {
	// Rng drives the uniform sample; nil resolves to a time-seeded
	// local source.
	Rng *rand.Rand
}

// Option represents a functional option for configuring Select.
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
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rng = rand.New(rand.NewSource(seed))
	}
}

// DefaultOptions returns Options with no random source set.
func DefaultOptions() Options {
	return Options{Rng: nil}
}

func resolveRng(o Options) *rand.Rand {
	if o.Rng != nil {
		return o.Rng
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
