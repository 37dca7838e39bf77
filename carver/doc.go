// Package carver produces a perfect maze by randomized depth-first
// carving over a grid.Grid.
//
// What:
//
//   - Carve(g, opts...) opens rooms and passages until the carved cells
//     form a spanning tree over all rooms (exactly one simple path
//     between any two rooms, no cycles).
//   - Traversal order is randomized per room by shuffling the four
//     room offsets (±2 row, ±2 col) with an injected *rand.Rand.
//   - Backtracking is driven by an explicit frame stack, never call
//     recursion: worst-case carving depth is W×H (one long corridor),
//     far beyond safe goroutine stack growth for large mazes.
//   - After the walk, the fixed entrance (grid.Entrance) is forced Open.
//
// Why:
//
//   - Depth-first carving yields long, winding corridors — the classic
//     maze look — while guaranteeing full connectivity from the start
//     room in a single O(W×H) pass.
//
// Options:
//
//   - WithSeed(s):  deterministic carving for a given seed.
//   - WithRand(r):  share one random stream across components.
//
// Errors:
//
//   - ErrNilGrid:  nil grid.
//   - ErrNotBlank: grid already carved (re-carving would corrupt the
//     spanning-tree invariant; allocate a fresh grid instead).
package carver
