// Package gridgraph treats a rectangular grid of cells as an implicit graph.
//
// What:
//
//   - Grid[T] wraps a rectangular [][]T, built by New or parsed from text
//     by Parse with a per-rune cell decoder.
//   - Point is a comparable coordinate, so it can key maps and serve as a
//     search state for package bfs or package walk.
//   - Neighbors(p) lazily yields in-bounds neighbours under Conn4 or Conn8.
//   - Components groups passable cells into connected regions.
//
// Why:
//
//   - Maze and floor-plan puzzles: parse once, then drive a search with
//     Neighbors as the transition function.
//   - Small rasters (displays, keypads) that need bounds-checked access.
//
// Complexity:
//
//   - New / Parse:   O(W×H) time and memory (input is deep-copied).
//   - At / Set:      O(1).
//   - Components:    O(W×H×d), Memory: O(W×H)   (d = 4 or 8).
//
// Options:
//
//   - Options.Conn: Conn4 (4-neighbors, default) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: the Parse decoder rejected a rune.
package gridgraph
