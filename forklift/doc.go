// Package forklift counts the paper rolls a forklift can reach on a roll map.
//
// The map is a grid of '@' (roll) and anything else (floor). A roll is
// accessible when fewer than CrowdLimit rolls occupy its eight neighbouring
// cells. Removing accessible rolls may free further rolls.
//
//   - Accessible: rolls reachable right now.
//   - RemoveAll:  rolls removed by repeating the removal until nothing is
//     accessible. The total does not depend on removal order, since removing
//     a roll only lowers its neighbours' counts.
//
// Complexity: O(W×H) time and memory for both; RemoveAll visits each roll at
// most once through a work queue.
package forklift
