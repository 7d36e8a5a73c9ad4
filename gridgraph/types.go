// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph package of github.com/katalvlaran/advent.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell represents a single grid cell with its coordinates and stored rune.
type Cell struct {
	X, Y  int  // Coordinates within the grid
	Value rune // Original grid rune at (X, Y)
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Fill pads short rows when non-zero; zero rejects ragged input.
	Fill rune
}

// DefaultGridOptions returns a GridOptions with default settings:
// Conn=Conn4, ragged rows rejected.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn: Conn4,
		Fill: 0,
	}
}

// GridGraph treats a 2D character grid as a graph. It is immutable once built.
// Width and Height define dimensions; Cells[y][x] holds the original rune.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height   int
	Cells           [][]rune
	Conn            Connectivity
	neighborOffsets [][2]int
}
