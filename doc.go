// Package lvlmaze generates perfect rectangular mazes and computes
// shortest escape routes from a fixed entrance to randomly sampled
// boundary exits.
//
// 🚀 What is lvlmaze?
//
//	A small, deterministic-by-seed maze toolkit built from four leaf
//	packages plus a session facade:
//		• grid/   — the binary Wall/Open occupancy map and coordinate rules
//		• carver/ — randomized depth-first carving (explicit stack, no recursion)
//		• exits/  — boundary candidate scan + uniform exit sampling
//		• astar/  — per-exit A* shortest-path search with heap frontier
//		• maze/   — Session: configure → Generate → FindAllPaths
//
// ✨ Why choose lvlmaze?
//
//   - Reproducible – inject a seed and get byte-identical mazes, exits and paths
//   - Rock-solid guarantees – carving always yields a spanning tree over rooms
//   - Pure Go core – no cgo; the only extra dependency surface is cmd/mazegen
//   - Explicit errors – sentinel values per package, no panics on bad input
//
// Entry point for most users is the maze package:
//
//	s, _ := maze.New(15, 15, maze.WithExits(4), maze.WithSeed(42))
//	g, _ := s.Generate()
//	routes, _ := s.FindAllPaths()
//	for _, r := range routes {
//	    fmt.Println(r.Exit, len(r.Cells))
//	}
//
// The grid uses the classic (2H+1)×(2W+1) encoding: rooms live at
// odd/odd coordinates, passages between them at mixed parity, wall
// junctions at even/even. The fixed entrance is (row 1, col 0).
package lvlmaze
