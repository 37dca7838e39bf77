// Package exits chooses boundary positions that open directly into a
// carved maze interior, and carves them.
//
// What:
//
//   - Candidates(g) deterministically scans the perimeter for cells
//     whose interior-facing room is Open.
//   - Select(g, want, opts...) samples min(want, pool) of them
//     uniformly without replacement and sets each Open.
//
// Why:
//
//   - Exit placement is the only step between carving and pathfinding;
//     isolating it keeps the grid's mutation phases strictly ordered.
//
// Options:
//
//   - WithSeed(s) / WithRand(r): deterministic, injectable sampling.
//
// Errors:
//
//   - ErrNilGrid:       nil grid.
//   - ErrNegativeCount: want < 0.
//
// Oversubscription (want > pool) caps silently; an empty pool yields an
// empty exit list, not an error.
package exits
