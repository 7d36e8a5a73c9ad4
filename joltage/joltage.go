package joltage

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/advent/internal/input"
)

// MaxJoltage returns the largest n-digit number that can be formed from
// bank keeping digit order. A bank shorter than n yields 0.
//
// Error Conditions:
//   - ErrBadBatteryCount : n < 1.
//   - ErrInvalidDigit    : bank holds a non-digit rune.
func MaxJoltage(bank string, n int) (int, error) {
	if n < 1 {
		return 0, ErrBadBatteryCount
	}
	for i := 0; i < len(bank); i++ {
		if bank[i] < '0' || bank[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDigit, bank)
		}
	}
	if len(bank) < n {
		return 0, nil
	}

	jolts, start := 0, 0
	for i := 0; i < n; i++ {
		// Batteries left equal digits needed: the suffix is forced.
		if len(bank)-start == n-i {
			for _, c := range []byte(bank[start:]) {
				jolts = jolts*10 + int(c-'0')
			}
			return jolts, nil
		}

		end := len(bank) - n + i + 1 // exclusive window end
		best := start
		for j := start + 1; j < end; j++ {
			if bank[j] > bank[best] {
				best = j
				if bank[j] == '9' {
					break
				}
			}
		}
		jolts = jolts*10 + int(bank[best]-'0')
		start = best + 1
	}

	return jolts, nil
}

// TotalJoltage sums MaxJoltage over every bank (line) of r. Surrounding
// whitespace is trimmed; blank lines contribute nothing.
func TotalJoltage(r io.Reader, n int) (int, error) {
	if n < 1 {
		return 0, ErrBadBatteryCount
	}
	total := 0
	err := input.ForLines(r, func(y int, line string) error {
		j, err := MaxJoltage(strings.TrimSpace(line), n)
		if err != nil {
			return fmt.Errorf("joltage: line %d: %w", y+1, err)
		}
		total += j
		return nil
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}
