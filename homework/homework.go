package homework

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/advent/gridgraph"
	"github.com/katalvlaran/advent/internal/input"
)

// worksheets splits lines into blocks of number rows, each block returned
// together with the operator row that closes it.
func worksheets(lines []string) (blocks [][]string, ops []string, err error) {
	var rows []string
	for _, line := range lines {
		if isOperatorRow(line) {
			blocks = append(blocks, rows)
			ops = append(ops, line)
			rows = nil
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) > 0 {
		return nil, nil, ErrNoOperators
	}

	return blocks, ops, nil
}

// SolveRows reads whitespace-separated columns and returns the grand total.
func SolveRows(r io.Reader) (int, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return 0, err
	}
	blocks, ops, err := worksheets(lines)
	if err != nil {
		return 0, err
	}

	total := 0
	for b, rows := range blocks {
		var columns [][]int
		for _, row := range rows {
			for i, field := range strings.Fields(row) {
				v, err := strconv.Atoi(field)
				if err != nil {
					return 0, fmt.Errorf("%w: %q", ErrBadNumber, field)
				}
				for len(columns) <= i {
					columns = append(columns, nil)
				}
				columns[i] = append(columns[i], v)
			}
		}
		for i, field := range strings.Fields(ops[b]) {
			op, err := ParseOperator([]rune(field)[0])
			if err != nil || len(field) != 1 {
				return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, field)
			}
			if i < len(columns) {
				total += Apply(op, columns[i])
			}
		}
	}

	return total, nil
}

// SolveTransposed reads every character column as one number and returns
// the grand total. Rows are padded with spaces to the widest row.
//
// Steps:
//  1. Lay the block and its operator row out as a space-padded grid.
//  2. Every operator opens a problem that runs up to the next operator.
//  3. Each column of a problem with at least one digit contributes the
//     number formed by its digits from top to bottom.
func SolveTransposed(r io.Reader) (int, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return 0, err
	}
	blocks, ops, err := worksheets(lines)
	if err != nil {
		return 0, err
	}

	total := 0
	for b, rows := range blocks {
		sheet := append(slices.Clone(rows), ops[b])
		gg, err := gridgraph.NewGridGraph(sheet, gridgraph.GridOptions{Fill: ' '})
		if err != nil {
			return 0, err
		}
		opRow := gg.Height - 1

		var starts []int
		for x := 0; x < gg.Width; x++ {
			if gg.At(x, opRow) != ' ' && gg.At(x, opRow) != '\t' {
				starts = append(starts, x)
			}
		}
		for i, x0 := range starts {
			op, err := ParseOperator(gg.At(x0, opRow))
			if err != nil {
				return 0, fmt.Errorf("%w: %q", err, gg.At(x0, opRow))
			}
			x1 := gg.Width
			if i+1 < len(starts) {
				x1 = starts[i+1]
			}
			var values []int
			for x := x0; x < x1; x++ {
				v, ok, err := columnNumber(gg, x, opRow)
				if err != nil {
					return 0, err
				}
				if ok {
					values = append(values, v)
				}
			}
			total += Apply(op, values)
		}
	}

	return total, nil
}

// columnNumber reads the digits of column x above row limit.
func columnNumber(gg *gridgraph.GridGraph, x, limit int) (int, bool, error) {
	v, digits := 0, 0
	for y := 0; y < limit; y++ {
		c := gg.At(x, y)
		switch {
		case unicode.IsSpace(c):
			continue
		case c >= '0' && c <= '9':
			v = v*10 + int(c-'0')
			digits++
		default:
			return 0, false, fmt.Errorf("%w: %q in column %d", ErrBadNumber, c, x+1)
		}
	}

	return v, digits > 0, nil
}

// Solve dispatches to SolveTransposed when transpose is set, SolveRows otherwise.
func Solve(r io.Reader, transpose bool) (int, error) {
	if transpose {
		return SolveTransposed(r)
	}

	return SolveRows(r)
}
