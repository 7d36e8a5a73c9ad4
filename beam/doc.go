// Package beam traces a tachyon beam down a manifold of splitters.
//
// The manifold is a grid: the beam enters at 'S' and moves down one row at
// a time. When it reaches a splitter '^' it stops and two beams continue
// from the cells immediately left and right of the splitter (a side that
// falls off the grid is lost). Any other rune lets the beam through.
//
//   - CountSplits: splitters hit. Beams sharing a column merge, so each
//     splitter counts at most once.
//   - CountTimelines: distinct paths of a single particle that takes one
//     side at every splitter; counts on the same column add up.
//
// Complexity: O(W×H) time, O(W) memory for both.
package beam
