// Package circuit wires junction boxes into circuits, closest pairs first.
//
// What & Why
//
//   - Junction boxes are points in 3D space, one "x,y,z" per input line.
//   - Connecting two boxes merges their circuits. Pairs are taken in order of
//     straight-line distance, like the edge order of Kruskal's minimum spanning
//     tree, and a disjoint-set (union-find) keeps track of which circuit every
//     box belongs to.
//
// Modes
//
//   - Connections > 0: exactly the first Connections candidate pairs are
//     connected (pairs already sharing a circuit are used up without effect).
//     TopProduct then multiplies the sizes of the largest circuits.
//   - Connections == 0: pairs are consumed until a single circuit remains.
//     LastProduct multiplies the X coordinates of the pair that closed it.
//
// Order selects ascending (closest first, default) or descending (farthest
// first) pair order; the stop conditions are the same.
//
// Determinism
//
//	Pairs are generated in (i, j) input order and stable sorted by squared
//	distance, so ties break by input order. Squared integer distances avoid
//	floating point comparisons altogether.
//
// Complexity
//
//   - Pairs: O(N² log N) time, O(N²) memory.
//   - Wire:  O(N² log N + N²·α(N)).
package circuit
