package circuit

import (
	"cmp"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/internal/input"
	"github.com/katalvlaran/advent/internal/numeric"
)

var boxRx = regexp.MustCompile(`^(\d+),(\d+),(\d+)$`)

// ParseBoxes reads one "x,y,z" box per line; other lines are skipped.
func ParseBoxes(r io.Reader) ([]Position, error) {
	var boxes []Position
	err := input.ForLines(r, func(y int, line string) error {
		m := boxRx.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			return nil
		}
		var xyz [3]int
		for i := range xyz {
			v, err := strconv.Atoi(m[i+1])
			if err != nil {
				return fmt.Errorf("circuit: line %d: %w", y+1, err)
			}
			xyz[i] = v
		}
		boxes = append(boxes, Position{X: xyz[0], Y: xyz[1], Z: xyz[2]})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return boxes, nil
}

// Pairs returns every pair of distinct boxes in the given order of squared
// distance. Coincident boxes (distance 0) never form a pair.
// Complexity: O(N² log N).
func Pairs(boxes []Position, order Order) []Pair {
	pairs := make([]Pair, 0, len(boxes)*(len(boxes)-1)/2)
	for i, a := range boxes {
		for j := i + 1; j < len(boxes); j++ {
			b := boxes[j]
			d := a.Distance2(b)
			if d == 0 {
				continue
			}
			pairs = append(pairs, Pair{A: a, B: b, I: i, J: j, Distance2: d})
		}
	}

	// Stable sort keeps (i, j) generation order for equal distances.
	slices.SortStableFunc(pairs, func(p, q Pair) int {
		if order == OrderDescending {
			return cmp.Compare(q.Distance2, p.Distance2)
		}
		return cmp.Compare(p.Distance2, q.Distance2)
	})

	return pairs
}

// Wire connects boxes pair by pair.
//
// Steps:
//  1. Validate opts; drop repeated positions (a box is identified by where it is).
//  2. Build the candidate pairs in opts.Order; keep the first
//     opts.Connections of them when that is positive.
//  3. Union each pair's endpoints; a successful union records the pair as
//     Last. Without a connection limit, stop once one circuit remains.
//  4. Group boxes by root, largest circuit first (ties: first box in input).
//
// Complexity: O(N² log N). Memory: O(N²).
func Wire(boxes []Position, opts Options) (Wiring, error) {
	if err := opts.Validate(); err != nil {
		return Wiring{}, err
	}

	seen := make(map[Position]struct{}, len(boxes))
	unique := make([]Position, 0, len(boxes))
	for _, b := range boxes {
		if _, dup := seen[b]; dup {
			continue
		}
		seen[b] = struct{}{}
		unique = append(unique, b)
	}

	pairs := Pairs(unique, opts.Order)
	if opts.Connections > 0 && opts.Connections < len(pairs) {
		pairs = pairs[:opts.Connections]
	}

	ds := NewDisjointSet(len(unique))
	var last *Pair
	for i := range pairs {
		if opts.Connections == 0 && ds.Sets() <= 1 {
			break
		}
		if ds.Union(pairs[i].I, pairs[i].J) {
			p := pairs[i]
			last = &p
		}
	}

	groups := ds.Groups()
	// Groups are ordered by first member; the stable sort keeps that for ties.
	slices.SortStableFunc(groups, func(a, b []int) int {
		return cmp.Compare(len(b), len(a))
	})
	circuits := make([][]Position, len(groups))
	for gi, g := range groups {
		circuits[gi] = make([]Position, len(g))
		for k, u := range g {
			circuits[gi][k] = unique[u]
		}
	}

	return Wiring{Circuits: circuits, Last: last}, nil
}

// TopProduct multiplies the sizes of the k largest circuits. Fewer than k
// circuits use all of them; k < 1 or no circuits answers 0.
func TopProduct(w Wiring, k int) int {
	if k < 1 || len(w.Circuits) == 0 {
		return 0
	}
	sizes := make([]int, 0, min(k, len(w.Circuits)))
	for _, c := range w.Circuits[:min(k, len(w.Circuits))] {
		sizes = append(sizes, len(c))
	}

	return numeric.Product(sizes)
}

// LastProduct multiplies the X coordinates of the last merging pair, or 0.
func LastProduct(w Wiring) int {
	if w.Last == nil {
		return 0
	}

	return w.Last.A.X * w.Last.B.X
}

// Solve parses r, wires the boxes and answers TopProduct(top) when top is
// positive, LastProduct otherwise.
func Solve(r io.Reader, opts Options, top int) (int, error) {
	boxes, err := ParseBoxes(r)
	if err != nil {
		return 0, err
	}
	w, err := Wire(boxes, opts)
	if err != nil {
		return 0, err
	}
	if top > 0 {
		return TopProduct(w, top), nil
	}

	return LastProduct(w), nil
}
