package beam

import (
	"io"

	"github.com/katalvlaran/advent/gridgraph"
	"github.com/katalvlaran/advent/internal/numeric"
)

// ParseManifold reads a manifold grid and checks it has a start marker.
func ParseManifold(r io.Reader) (*gridgraph.GridGraph, error) {
	gg, err := gridgraph.Parse(r, gridgraph.GridOptions{Conn: gridgraph.Conn4, Fill: '.'})
	if err != nil {
		return nil, err
	}
	if _, ok := gg.Find(Start); !ok {
		return nil, ErrNoStart
	}

	return gg, nil
}

// propagate walks the rows below the start marker carrying a per-column
// weight. onSplit is called once per occupied splitter.
func propagate(gg *gridgraph.GridGraph, onSplit func()) ([]int, error) {
	s, ok := gg.Find(Start)
	if !ok {
		return nil, ErrNoStart
	}
	weights := make([]int, gg.Width)
	weights[s.X] = 1

	for y := s.Y + 1; y < gg.Height; y++ {
		next := make([]int, gg.Width)
		for x, w := range weights {
			if w == 0 {
				continue
			}
			if gg.At(x, y) != Splitter {
				next[x] += w
				continue
			}
			onSplit()
			if gg.InBounds(x-1, y) {
				next[x-1] += w
			}
			if gg.InBounds(x+1, y) {
				next[x+1] += w
			}
		}
		weights = next
	}

	return weights, nil
}

// CountSplits returns how many splitters a beam reaches.
func CountSplits(gg *gridgraph.GridGraph) (int, error) {
	splits := 0
	if _, err := propagate(gg, func() { splits++ }); err != nil {
		return 0, err
	}

	return splits, nil
}

// CountTimelines returns the number of distinct single-particle paths.
func CountTimelines(gg *gridgraph.GridGraph) (int, error) {
	weights, err := propagate(gg, func() {})
	if err != nil {
		return 0, err
	}

	return numeric.Sum(weights), nil
}

// Solve parses r and returns CountTimelines when timelines is set,
// CountSplits otherwise.
func Solve(r io.Reader, timelines bool) (int, error) {
	gg, err := ParseManifold(r)
	if err != nil {
		return 0, err
	}
	if timelines {
		return CountTimelines(gg)
	}

	return CountSplits(gg)
}
