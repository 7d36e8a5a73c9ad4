package tiles

import (
	"errors"

	"github.com/katalvlaran/advent/internal/numeric"
)

var (
	// ErrEmptyOutline indicates there are no tiles to trace.
	ErrEmptyOutline = errors.New("tiles: outline has no tiles")

	// ErrDiagonalEdge indicates consecutive tiles that share neither a row
	// nor a column.
	ErrDiagonalEdge = errors.New("tiles: consecutive tiles must share a row or column")
)

// Position is a tile location.
type Position struct {
	X, Y int
}

// Area returns the number of tiles in the rectangle with corners a and b.
func Area(a, b Position) int {
	return (numeric.AbsDiff(a.X, b.X) + 1) * (numeric.AbsDiff(a.Y, b.Y) + 1)
}

// CellState classifies a cell against an outline.
type CellState uint8

const (
	// Outside cells are neither on nor inside the outline.
	Outside CellState = iota
	// Inside cells are enclosed by the outline.
	Inside
	// Boundary cells are on the outline itself.
	Boundary
)

// String returns a one-letter picture of the state.
func (s CellState) String() string {
	switch s {
	case Inside:
		return "X"
	case Boundary:
		return "#"
	default:
		return "."
	}
}
