// Package ingredients decides which ingredient IDs are fresh.
//
// The inventory file holds a block of closed "start-end" fresh ranges, a
// blank line, then one ingredient ID per line. Lines that do not parse are
// skipped.
//
// Operations:
//
//   - Merge:      sort ranges by start and join overlapping or adjacent ones.
//   - TotalFresh: number of distinct IDs covered by the ranges.
//   - CountFresh: how many listed ingredients fall in any range.
//
// Complexity: Merge is O(R log R); CountFresh is O(R log R + I log R)
// through binary search over the merged ranges.
package ingredients
