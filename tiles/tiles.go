package tiles

import (
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/internal/input"
)

var tileRx = regexp.MustCompile(`^(\d+),(\d+)$`)

// ParsePositions reads one "x,y" tile per line; other lines are skipped.
func ParsePositions(r io.Reader) ([]Position, error) {
	var ps []Position
	err := input.ForLines(r, func(y int, line string) error {
		m := tileRx.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			return nil
		}
		px, err := strconv.Atoi(m[1])
		if err != nil {
			return fmt.Errorf("tiles: line %d: %w", y+1, err)
		}
		py, err := strconv.Atoi(m[2])
		if err != nil {
			return fmt.Errorf("tiles: line %d: %w", y+1, err)
		}
		ps = append(ps, Position{X: px, Y: py})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ps, nil
}

// LargestArea returns the largest Area over all pairs of tiles; 0 for fewer
// than two tiles.
// Complexity: O(N²).
func LargestArea(ps []Position) int {
	best := 0
	for i, a := range ps {
		for _, b := range ps[i+1:] {
			best = max(best, Area(a, b))
		}
	}

	return best
}

// LargestContainedArea returns the largest Area over pairs of tiles whose
// rectangle lies on or inside the outline traced through ps.
//
// Error Conditions:
//   - ErrEmptyOutline : ps is empty.
//   - ErrDiagonalEdge : the outline cannot be traced.
func LargestContainedArea(ps []Position) (int, error) {
	o, err := TraceOutline(ps)
	if err != nil {
		return 0, err
	}

	best := 0
	for i, a := range ps {
		for _, b := range ps[i+1:] {
			area := Area(a, b)
			if area > best && o.ContainsRect(a, b) {
				best = area
			}
		}
	}

	return best, nil
}

// Solve parses r and returns LargestContainedArea when contained is set,
// LargestArea otherwise.
func Solve(r io.Reader, contained bool) (int, error) {
	ps, err := ParsePositions(r)
	if err != nil {
		return 0, err
	}
	if contained {
		return LargestContainedArea(ps)
	}

	return LargestArea(ps), nil
}

// distinct returns the sorted distinct values of vs.
func distinct(vs []int) []int {
	out := slices.Clone(vs)
	slices.Sort(out)

	return slices.Compact(out)
}
