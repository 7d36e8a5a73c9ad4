package tiles

import (
	"fmt"
	"slices"
	"strings"
)

// Outline is a traced outline on a compressed grid.
//
// Column c of the compressed grid is the real column xs[c/2] when c is even
// and the open gap (xs[c/2], xs[c/2+1]) when c is odd; rows likewise over ys.
type Outline struct {
	xs, ys []int
	cells  [][]CellState // [row][col]
	wx, wy []int         // real width of each column, height of each row
	// outside[r][c] counts weighted outside cells in rows < r, cols < c.
	outside [][]int
}

// TraceOutline connects the tiles of ps in order (wrapping around) and
// classifies every compressed cell.
//
// Steps:
//  1. Compress the distinct X and Y values.
//  2. Draw each edge between consecutive tiles cell by cell; vertical edges
//     also flip the crossing flag of rows [r1, r2).
//  3. Sweep every row left to right toggling parity on crossings; cells off
//     the outline with odd parity are Inside.
//  4. Build a prefix sum of outside cells that cover at least one real cell.
//
// Complexity: O(N·U + U²) time, O(U²) memory for U distinct coordinates.
func TraceOutline(ps []Position) (*Outline, error) {
	if len(ps) == 0 {
		return nil, ErrEmptyOutline
	}

	xs := make([]int, len(ps))
	ys := make([]int, len(ps))
	for i, p := range ps {
		xs[i], ys[i] = p.X, p.Y
	}
	o := &Outline{xs: distinct(xs), ys: distinct(ys)}
	w, h := 2*len(o.xs)-1, 2*len(o.ys)-1

	o.wx = spans(o.xs)
	o.wy = spans(o.ys)
	o.cells = make([][]CellState, h)
	crossing := make([][]bool, h)
	for r := range o.cells {
		o.cells[r] = make([]CellState, w)
		crossing[r] = make([]bool, w)
	}

	// 2. Draw edges.
	for i, a := range ps {
		b := ps[(i+1)%len(ps)]
		ca, ra, _ := o.locate(a)
		cb, rb, _ := o.locate(b)
		switch {
		case a.X == b.X:
			r1, r2 := min(ra, rb), max(ra, rb)
			for r := r1; r <= r2; r++ {
				o.cells[r][ca] = Boundary
			}
			for r := r1; r < r2; r++ {
				crossing[r][ca] = !crossing[r][ca]
			}
		case a.Y == b.Y:
			for c := min(ca, cb); c <= max(ca, cb); c++ {
				o.cells[ra][c] = Boundary
			}
		default:
			return nil, fmt.Errorf("%w: %v then %v", ErrDiagonalEdge, a, b)
		}
	}

	// 3. Parity sweep.
	for r := range o.cells {
		inside := false
		for c := range o.cells[r] {
			if crossing[r][c] {
				inside = !inside
			}
			if o.cells[r][c] != Boundary && inside {
				o.cells[r][c] = Inside
			}
		}
	}

	// 4. Prefix sums of weighted outside cells.
	o.outside = make([][]int, h+1)
	for r := range o.outside {
		o.outside[r] = make([]int, w+1)
	}
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			bad := 0
			if o.cells[r][c] == Outside && o.wx[c] > 0 && o.wy[r] > 0 {
				bad = 1
			}
			o.outside[r+1][c+1] = o.outside[r][c+1] + o.outside[r+1][c] - o.outside[r][c] + bad
		}
	}

	return o, nil
}

// spans returns the real size of every compressed index over the sorted
// distinct values vs: 1 for a value, the number of integers strictly between
// neighbours for a gap.
func spans(vs []int) []int {
	out := make([]int, 2*len(vs)-1)
	for i := range vs {
		out[2*i] = 1
		if i+1 < len(vs) {
			out[2*i+1] = vs[i+1] - vs[i] - 1
		}
	}

	return out
}

// index maps a real coordinate to its compressed index over vs.
// ok is false beyond the extremes.
func index(vs []int, v int) (int, bool) {
	i, found := slices.BinarySearch(vs, v)
	if found {
		return 2 * i, true
	}
	if i == 0 || i == len(vs) {
		return 0, false
	}

	return 2*i - 1, true
}

// locate returns the compressed column and row holding p.
func (o *Outline) locate(p Position) (c, r int, ok bool) {
	c, okc := index(o.xs, p.X)
	r, okr := index(o.ys, p.Y)

	return c, r, okc && okr
}

// State returns the classification of tile p.
func (o *Outline) State(p Position) CellState {
	c, r, ok := o.locate(p)
	if !ok {
		return Outside
	}

	return o.cells[r][c]
}

// OnBoundary reports whether p lies on the outline itself.
func (o *Outline) OnBoundary(p Position) bool {
	return o.State(p) == Boundary
}

// Contains reports whether p lies on or inside the outline.
func (o *Outline) Contains(p Position) bool {
	return o.State(p) != Outside
}

// ContainsRect reports whether every tile of the rectangle with corners a
// and b lies on or inside the outline.
// Complexity: O(log U).
func (o *Outline) ContainsRect(a, b Position) bool {
	c1, r1, ok1 := o.locate(Position{X: min(a.X, b.X), Y: min(a.Y, b.Y)})
	c2, r2, ok2 := o.locate(Position{X: max(a.X, b.X), Y: max(a.Y, b.Y)})
	if !ok1 || !ok2 {
		return false
	}
	bad := o.outside[r2+1][c2+1] - o.outside[r1][c2+1] - o.outside[r2+1][c1] + o.outside[r1][c1]

	return bad == 0
}

// Perimeter returns the number of tiles on the outline.
func (o *Outline) Perimeter() int {
	return o.weigh(func(s CellState) bool { return s == Boundary })
}

// Area returns the number of tiles on or inside the outline.
func (o *Outline) Area() int {
	return o.weigh(func(s CellState) bool { return s != Outside })
}

// weigh sums the real size of the cells whose state satisfies keep.
func (o *Outline) weigh(keep func(CellState) bool) int {
	total := 0
	for r, row := range o.cells {
		for c, s := range row {
			if keep(s) {
				total += o.wx[c] * o.wy[r]
			}
		}
	}

	return total
}

// String draws the compressed grid, one row per line.
func (o *Outline) String() string {
	var sb strings.Builder
	for _, row := range o.cells {
		for _, s := range row {
			sb.WriteString(s.String())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
