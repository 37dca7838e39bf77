// Package maze is the facade over grid, carver, exits, and astar: one
// Session per maze, with a strictly forward data flow.
//
// Lifecycle:
//
//	s, err := maze.New(15, 15, maze.WithExits(4), maze.WithSeed(42))
//	g, err := s.Generate()      // carve + place exits, exactly once
//	rs, err := s.FindAllPaths() // one shortest route per exit
//
// Guarantees:
//
//   - Deterministic: a seeded session reproduces byte-identical grid,
//     exit list, and routes across runs.
//   - Every exit's interior room is carved, so on a finished maze all
//     routes are found; Route.Found() exists for the degenerate cases.
//   - Read accessors are idempotent; the grid never mutates after
//     Generate returns.
//
// Errors:
//
//   - grid.ErrInvalidDimensions: width/height < 1, reported by New
//     before any allocation.
//   - ErrNegativeExits:     WithExits(n) with n < 0.
//   - ErrAlreadyGenerated:  Generate called twice on one session.
//   - ErrNotGenerated:      FindAllPaths before Generate.
package maze
