package products

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/internal/input"
)

var rangeRx = regexp.MustCompile(`(\d+)-(\d+)`)

// ParseRanges reads every comma-separated range of r.
func ParseRanges(r io.Reader) ([]IDRange, error) {
	var ranges []IDRange
	err := input.ForLines(r, func(y int, line string) error {
		for _, token := range strings.Split(line, ",") {
			m := rangeRx.FindStringSubmatch(token)
			if m == nil {
				continue
			}
			first, err := strconv.Atoi(m[1])
			if err != nil {
				return fmt.Errorf("products: line %d: %w", y+1, err)
			}
			last, err := strconv.Atoi(m[2])
			if err != nil {
				return fmt.Errorf("products: line %d: %w", y+1, err)
			}
			ranges = append(ranges, IDRange{First: first, Last: last})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ranges, nil
}

// IsRepeated reports whether id consists of one block repeated at least twice.
func IsRepeated(id string) bool {
	n := len(id)
	for size := 1; size <= n/2; size++ {
		if n%size == 0 && repeats(id, size) {
			return true
		}
	}

	return false
}

// IsDoubled reports whether id consists of one block repeated exactly twice.
func IsDoubled(id string) bool {
	n := len(id)

	return n > 0 && n%2 == 0 && id[:n/2] == id[n/2:]
}

// repeats reports whether id is id[:size] over and over.
func repeats(id string, size int) bool {
	block := id[:size]
	for j := size; j < len(id); j += size {
		if id[j:j+size] != block {
			return false
		}
	}

	return true
}

// SumInvalid adds up every invalid ID in ranges. Ranges with First > Last
// are empty.
func SumInvalid(ranges []IDRange, opts Options) int {
	invalid := IsRepeated
	if opts.Mode == ModeDoubled {
		invalid = IsDoubled
	}

	total := 0
	for _, rg := range ranges {
		for id := rg.First; id <= rg.Last; id++ {
			if invalid(strconv.Itoa(id)) {
				total += id
			}
		}
	}

	return total
}

// Solve parses r and returns the sum of invalid IDs.
func Solve(r io.Reader, opts Options) (int, error) {
	ranges, err := ParseRanges(r)
	if err != nil {
		return 0, err
	}

	return SumInvalid(ranges, opts), nil
}
