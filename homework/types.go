package homework

import (
	"errors"

	"github.com/katalvlaran/advent/internal/numeric"
)

var (
	// ErrUnknownOperator indicates an operator row holds something other than '+' or '*'.
	ErrUnknownOperator = errors.New("homework: unknown operator")

	// ErrNoOperators indicates numbers were read but no operator row followed them.
	ErrNoOperators = errors.New("homework: worksheet has no operator row")

	// ErrBadNumber indicates a number row holds a token that is not an integer.
	ErrBadNumber = errors.New("homework: malformed number")
)

// Operator combines the numbers of one problem.
type Operator rune

const (
	// Add sums the numbers.
	Add Operator = '+'
	// Multiply multiplies the numbers.
	Multiply Operator = '*'
)

// ParseOperator maps '+' and '*' to an Operator.
func ParseOperator(r rune) (Operator, error) {
	switch Operator(r) {
	case Add, Multiply:
		return Operator(r), nil
	default:
		return 0, ErrUnknownOperator
	}
}

// Apply combines values with op. A problem without numbers answers 0.
func Apply(op Operator, values []int) int {
	if len(values) == 0 {
		return 0
	}
	if op == Multiply {
		return numeric.Product(values)
	}

	return numeric.Sum(values)
}

// isOperatorRow reports whether line starts (after spaces) with an operator.
func isOperatorRow(line string) bool {
	for _, r := range line {
		switch r {
		case ' ', '\t':
			continue
		case '+', '*':
			return true
		default:
			return false
		}
	}

	return false
}
