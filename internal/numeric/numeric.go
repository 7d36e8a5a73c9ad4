// Package numeric holds the small generic integer helpers shared by the puzzle packages.
package numeric

import "golang.org/x/exp/constraints"

// Sum returns the sum of values; 0 for an empty slice.
func Sum[T constraints.Integer](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}

	return total
}

// Product returns the product of values; 1 for an empty slice.
func Product[T constraints.Integer](values []T) T {
	result := T(1)
	for _, v := range values {
		result *= v
	}

	return result
}

// Abs returns |x|.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// AbsDiff returns |x - y|.
func AbsDiff[T constraints.Signed](x, y T) T {
	return Abs(x - y)
}
