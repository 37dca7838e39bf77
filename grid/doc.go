// Package grid provides the binary occupancy map shared by all maze
// components: carving mutates it, exit selection reads and mutates it,
// pathfinding only reads it.
//
// What:
//
//   - Grid wraps a (2H+1)×(2W+1) matrix of Wall/Open cells for an H×W-room maze.
//   - Coordinate conventions: rooms at odd/odd, passages at mixed parity,
//     wall junctions at even/even; the perimeter is the outer wall ring.
//   - Boundary queries: ExitCandidate identifies perimeter cells whose
//     interior-facing room has been carved Open.
//   - Counting helpers (OpenRooms, OpenPassages) support the spanning-tree
//     check OpenPassages == OpenRooms-1.
//
// Why:
//
//   - A single dumb substrate keeps every algorithm package honest: no
//     component smuggles state through the grid beyond cell occupancy.
//
// Complexity:
//
//   - All cell accessors: O(1).
//   - New / Clone / counters / String: O(W×H).
//
// Errors:
//
//   - ErrInvalidDimensions: requested width or height < 1.
//   - ErrOutOfBounds: Set called outside the matrix.
package grid
