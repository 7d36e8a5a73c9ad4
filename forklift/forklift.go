package forklift

import (
	"io"

	"github.com/katalvlaran/advent/gridgraph"
)

// ParseRolls reads a roll map with 8-connectivity. Trailing blank lines are
// ignored; ragged rows are padded with floor.
func ParseRolls(r io.Reader) (*gridgraph.GridGraph, error) {
	return gridgraph.Parse(r, gridgraph.GridOptions{Conn: gridgraph.Conn8, Fill: '.'})
}

// neighbourCounts returns, per row-major index, how many rolls surround
// each roll cell, and the roll flags themselves.
func neighbourCounts(gg *gridgraph.GridGraph) (counts []int, rolls []bool) {
	counts = make([]int, gg.Width*gg.Height)
	rolls = make([]bool, gg.Width*gg.Height)
	for _, c := range gg.Select(func(r rune) bool { return r == Roll }) {
		i := gg.Index(c.X, c.Y)
		rolls[i] = true
		for _, n := range gg.Neighbors(c.X, c.Y) {
			if n.Value == Roll {
				counts[i]++
			}
		}
	}

	return counts, rolls
}

// Accessible returns the number of rolls with fewer than CrowdLimit
// neighbouring rolls.
// Complexity: O(W×H).
func Accessible(gg *gridgraph.GridGraph) int {
	counts, rolls := neighbourCounts(gg)
	n := 0
	for i, isRoll := range rolls {
		if isRoll && counts[i] < CrowdLimit {
			n++
		}
	}

	return n
}

// RemoveAll removes accessible rolls until none is left accessible and
// returns how many were removed. gg is not modified.
//
// Steps:
//  1. Count roll neighbours for every roll.
//  2. Queue every accessible roll.
//  3. Pop a roll, remove it, and decrement its neighbours; a neighbour that
//     drops below CrowdLimit is queued once.
//
// Complexity: O(W×H·d), d = 8.
func RemoveAll(gg *gridgraph.GridGraph) int {
	counts, rolls := neighbourCounts(gg)
	queued := make([]bool, len(rolls))
	queue := make([]int, 0, len(rolls))
	for i, isRoll := range rolls {
		if isRoll && counts[i] < CrowdLimit {
			queued[i] = true
			queue = append(queue, i)
		}
	}

	removed := 0
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		rolls[u] = false
		removed++
		ux, uy := gg.Coordinate(u)
		for _, n := range gg.Neighbors(ux, uy) {
			v := gg.Index(n.X, n.Y)
			if !rolls[v] {
				continue
			}
			counts[v]--
			if counts[v] < CrowdLimit && !queued[v] {
				queued[v] = true
				queue = append(queue, v)
			}
		}
	}

	return removed
}

// Solve parses r and returns RemoveAll, or Accessible when once is set.
// A map without rolls answers 0.
func Solve(r io.Reader, once bool) (int, error) {
	gg, err := ParseRolls(r)
	if err != nil {
		return 0, err
	}
	if once {
		return Accessible(gg), nil
	}

	return RemoveAll(gg), nil
}
