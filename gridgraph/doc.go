// Package gridgraph treats a rectangular grid of characters as a graph of
// cells, so the grid puzzles can share bounds checks and neighbourhoods.
//
// What:
//
//   - GridGraph wraps the rows of a character map (one rune per cell).
//   - Neighbourhoods are precomputed for 4- or 8-connectivity.
//   - Cells can be located by marker rune ('S', '^', '@', ...).
//
// Why:
//
//   - Roll maps: count the rolls around a cell under 8-connectivity.
//   - Beam manifolds: walk rows downwards and inspect splitter columns.
//
// Complexity:
//
//   - NewGridGraph: O(W×H) time and memory (rows are copied).
//   - InBounds, At, Index, Coordinate: O(1).
//   - Neighbors: O(d), d = 4 or 8.
//   - Find, Select, Count: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbours) or Conn8 (8-neighbours).
//   - GridOptions.Fill: when non-zero, ragged rows are padded with Fill
//     instead of being rejected.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths and Fill is zero.
package gridgraph
