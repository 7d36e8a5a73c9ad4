package homework_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/advent/homework"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "123 328  51 64 \n" +
	" 45 64  387 23 \n" +
	"  6 98  215 314\n" +
	"*   +   *   +  \n"

//----------------------------------------------------------------------------//
// SolveRows
//----------------------------------------------------------------------------//

// TestSolveRows_Sample checks the row reading of the sample.
func TestSolveRows_Sample(t *testing.T) {
	n, err := homework.SolveRows(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, 4277556, n)
}

// TestSolveRows_MultipleSheets sums independent worksheets.
func TestSolveRows_MultipleSheets(t *testing.T) {
	n, err := homework.SolveRows(strings.NewReader("2 3\n4 5\n* +\n\n10\n1\n+\n"))
	require.NoError(t, err)
	assert.Equal(t, 8+8+11, n)
}

// TestSolveRows_Errors covers a missing operator row and bad tokens.
func TestSolveRows_Errors(t *testing.T) {
	_, err := homework.SolveRows(strings.NewReader("1 2\n3 4\n"))
	assert.ErrorIs(t, err, homework.ErrNoOperators)

	_, err = homework.SolveRows(strings.NewReader("1 x\n+ +\n"))
	assert.ErrorIs(t, err, homework.ErrBadNumber)

	_, err = homework.SolveRows(strings.NewReader("1 2\n+ -\n"))
	assert.ErrorIs(t, err, homework.ErrUnknownOperator)
}

//----------------------------------------------------------------------------//
// SolveTransposed
//----------------------------------------------------------------------------//

// TestSolveTransposed_Sample checks the column reading of the sample.
func TestSolveTransposed_Sample(t *testing.T) {
	n, err := homework.SolveTransposed(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, 3263827, n)
}

// TestSolveTransposed_TrimmedLines pads rows whose trailing spaces were stripped.
func TestSolveTransposed_TrimmedLines(t *testing.T) {
	trimmed := "123 328  51 64\n" +
		" 45 64  387 23\n" +
		"  6 98  215 314\n" +
		"*   +   *   +\n"
	n, err := homework.SolveTransposed(strings.NewReader(trimmed))
	require.NoError(t, err)
	assert.Equal(t, 3263827, n)
}

// TestSolveTransposed_Errors covers a stray letter and a missing operator row.
func TestSolveTransposed_Errors(t *testing.T) {
	_, err := homework.SolveTransposed(strings.NewReader("1a\n+ \n"))
	assert.ErrorIs(t, err, homework.ErrBadNumber)

	_, err = homework.SolveTransposed(strings.NewReader("12\n"))
	assert.ErrorIs(t, err, homework.ErrNoOperators)

	_, err = homework.SolveTransposed(strings.NewReader("12 3\n+  /\n"))
	assert.ErrorIs(t, err, homework.ErrUnknownOperator)
}

//----------------------------------------------------------------------------//
// Operators
//----------------------------------------------------------------------------//

// TestApply covers both operators and the empty problem.
func TestApply(t *testing.T) {
	assert.Equal(t, 33210, homework.Apply(homework.Multiply, []int{123, 45, 6}))
	assert.Equal(t, 490, homework.Apply(homework.Add, []int{328, 64, 98}))
	assert.Zero(t, homework.Apply(homework.Multiply, nil))

	_, err := homework.ParseOperator('-')
	assert.ErrorIs(t, err, homework.ErrUnknownOperator)
}

// TestSolve_Dispatch verifies the transpose switch.
func TestSolve_Dispatch(t *testing.T) {
	rows, err := homework.Solve(strings.NewReader(sample), false)
	require.NoError(t, err)
	cols, err := homework.Solve(strings.NewReader(sample), true)
	require.NoError(t, err)
	assert.NotEqual(t, rows, cols)
}
