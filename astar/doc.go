// Package astar implements goal-directed shortest-path search over the
// Open cells of a grid.Grid.
//
// What:
//
//   - Search(g, start, goal, opts...) returns a shortest 4-connected
//     path (inclusive endpoints, no duplicates) or ErrNoPath.
//   - Best-first search with f = g + h: uniform step cost 1, Manhattan
//     distance heuristic (admissible on 4-connected uniform grids, so
//     results are optimal in cell count).
//   - container/heap frontier with lazy decrease-key; ties on f break
//     by row-major coordinate so output never depends on heap
//     insertion order.
//
// Why:
//
//   - The heuristic steers expansion toward the goal, so a maze search
//     typically touches a fraction of the open cells that plain
//     breadth-first search would; the early exit on the goal pop keeps
//     per-exit cost low when many exits are queried independently.
//
// Options:
//
//   - WithMaxExpansions(n): give up (ErrNoPath) after expanding n
//     cells; the frontier is bounded by open-cell count either way.
//
// Errors:
//
//   - ErrNilGrid, ErrOutOfBounds, ErrBlockedCell: invalid input.
//   - ErrNoPath: goal unreachable — expected per-exit information,
//     surfaced as a result rather than a fault.
//
// Complexity:
//
//   - Time:  O(N log N) for N open cells (each cell expanded at most
//     once; each relaxation is one O(log N) heap push).
//   - Space: O(N) for the cost/predecessor/closed maps and frontier.
package astar
