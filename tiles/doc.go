// Package tiles finds the largest rectangles with red tiles at two
// opposite corners.
//
// The input lists red tiles, one "x,y" per line. Read in order (and
// wrapping from the last tile back to the first) they form a closed outline:
// every tile shares a row or a column with the next one, and the straight
// runs between them are the outline's edges.
//
// Operations:
//
//   - LargestArea: the largest rectangle spanned by any two red tiles.
//   - TraceOutline: the traced outline with every cell classified as on the
//     outline, inside it, or outside it.
//   - LargestContainedArea: the largest rectangle spanned by two red tiles
//     that lies entirely on or inside the outline.
//
// Outline tracing
//
//	Puzzle coordinates run into the hundreds of thousands, so the outline is
//	traced on a compressed grid: every distinct X (and Y) gets one column
//	(row), and the open gap between two consecutive distinct values gets one
//	more. A gap cell is uniform: no edge starts or ends inside it.
//
//	Edges are drawn cell by cell between consecutive tiles. Cells off the
//	outline are classified by parity ray casting along their row: a ray cast
//	to the left, nudged just below the row, crosses a vertical edge spanning
//	rows [r1, r2) an odd number of times exactly when the cell is inside.
//
//	A 2D prefix sum over outside cells (weighted so empty gaps do not count)
//	answers "is this rectangle fully contained?" in O(1).
//
// Complexity:
//
//   - LargestArea: O(N²).
//   - TraceOutline: O(N·U + U²) for U distinct coordinates.
//   - LargestContainedArea: O(N² + U²).
//
// Errors:
//
//   - ErrEmptyOutline: no tiles to trace.
//   - ErrDiagonalEdge: two consecutive tiles share neither row nor column,
//     so the outline is ambiguous.
package tiles
