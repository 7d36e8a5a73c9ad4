package ingredients

import (
	"io"
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/internal/input"
)

var rangeRx = regexp.MustCompile(`^(\d+)-(\d+)$`)

// Parse reads the ranges block and the ingredient block of r.
func Parse(r io.Reader) (Inventory, error) {
	var (
		inv      Inventory
		checking bool // past the blank separator
	)
	err := input.ForLines(r, func(_ int, line string) error {
		line = strings.TrimSpace(line)
		if line == "" {
			checking = true
			return nil
		}
		if !checking {
			m := rangeRx.FindStringSubmatch(line)
			if m == nil {
				return nil
			}
			start, err1 := strconv.Atoi(m[1])
			end, err2 := strconv.Atoi(m[2])
			if err1 == nil && err2 == nil {
				inv.Fresh = append(inv.Fresh, Range{Start: start, End: end})
			}
			return nil
		}
		if id, err := strconv.Atoi(line); err == nil {
			inv.Ingredients = append(inv.Ingredients, id)
		}
		return nil
	})
	if err != nil {
		return Inventory{}, err
	}

	return inv, nil
}

// Merge returns the disjoint, sorted union of ranges. Overlapping and
// adjacent ranges are joined; empty ranges are dropped. The input slice is
// not modified.
//
// Steps:
//  1. Copy and sort by Start (then End).
//  2. Extend the last merged range while the next one starts at or before
//     its End+1; otherwise open a new merged range.
//
// Complexity: O(R log R).
func Merge(ranges []Range) []Range {
	sorted := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if r.Len() > 0 {
			sorted = append(sorted, r)
		}
	}
	slices.SortFunc(sorted, func(a, b Range) int {
		if a.Start != b.Start {
			return a.Start - b.Start
		}
		return a.End - b.End
	})

	var merged []Range
	for _, r := range sorted {
		if n := len(merged); n > 0 && r.Start <= merged[n-1].End+1 {
			merged[n-1].End = max(merged[n-1].End, r.End)
			continue
		}
		merged = append(merged, r)
	}

	return merged
}

// TotalFresh returns the number of distinct IDs covered by ranges.
func TotalFresh(ranges []Range) int {
	total := 0
	for _, r := range Merge(ranges) {
		total += r.Len()
	}

	return total
}

// CountFresh returns how many of inv.Ingredients fall in a fresh range.
// Duplicated IDs are counted each time they are listed.
func CountFresh(inv Inventory) int {
	merged := Merge(inv.Fresh)
	n := 0
	for _, id := range inv.Ingredients {
		// First merged range ending at or after id.
		i := sort.Search(len(merged), func(i int) bool { return merged[i].End >= id })
		if i < len(merged) && merged[i].Contains(id) {
			n++
		}
	}

	return n
}

// Solve parses r and returns TotalFresh when total is set, CountFresh otherwise.
func Solve(r io.Reader, total bool) (int, error) {
	inv, err := Parse(r)
	if err != nil {
		return 0, err
	}
	if total {
		return TotalFresh(inv.Fresh), nil
	}

	return CountFresh(inv), nil
}
