package gridgraph

import (
	"io"
	"unicode/utf8"

	"github.com/katalvlaran/advent/internal/input"
)

// NewGridGraph constructs a GridGraph from non-empty rows of text.
// It copies the input into rune rows so later edits of rows have no effect.
// Returns ErrEmptyGrid if there are no rows or the first row is empty,
// ErrNonRectangular if any row length differs and opts.Fill is zero.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(rows []string, opts GridOptions) (*GridGraph, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	w := 0
	for _, row := range rows {
		w = max(w, utf8.RuneCountInString(row))
	}
	if w == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]rune, len(rows))
	for y, row := range rows {
		rs := []rune(row)
		if len(rs) != w {
			if opts.Fill == 0 {
				return nil, ErrNonRectangular
			}
			for len(rs) < w {
				rs = append(rs, opts.Fill)
			}
		}
		cells[y] = rs
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          len(cells),
		Cells:           cells,
		Conn:            opts.Conn,
		neighborOffsets: offsets,
	}, nil
}

// Parse reads rows from r, drops trailing blank lines and builds a GridGraph.
func Parse(r io.Reader, opts GridOptions) (*GridGraph, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}

	return NewGridGraph(input.TrimTrailingBlank(lines), opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// At returns the rune at (x,y), or 0 when (x,y) is out of bounds.
func (gg *GridGraph) At(x, y int) rune {
	if !gg.InBounds(x, y) {
		return 0
	}

	return gg.Cells[y][x]
}

// Neighbors returns the in-bounds neighbours of (x,y) in offset order.
// Complexity: O(d).
func (gg *GridGraph) Neighbors(x, y int) []Cell {
	out := make([]Cell, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if !gg.InBounds(nx, ny) {
			continue
		}
		out = append(out, Cell{X: nx, Y: ny, Value: gg.Cells[ny][nx]})
	}

	return out
}

// Find returns the first cell holding v in row-major order.
func (gg *GridGraph) Find(v rune) (Cell, bool) {
	for y, row := range gg.Cells {
		for x, r := range row {
			if r == v {
				return Cell{X: x, Y: y, Value: r}, true
			}
		}
	}

	return Cell{}, false
}

// Select returns every cell whose rune satisfies match, in row-major order.
func (gg *GridGraph) Select(match func(rune) bool) []Cell {
	var out []Cell
	for y, row := range gg.Cells {
		for x, r := range row {
			if match(r) {
				out = append(out, Cell{X: x, Y: y, Value: r})
			}
		}
	}

	return out
}

// Count returns the number of cells holding v.
func (gg *GridGraph) Count(v rune) int {
	n := 0
	for _, row := range gg.Cells {
		for _, r := range row {
			if r == v {
				n++
			}
		}
	}

	return n
}

// Index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
