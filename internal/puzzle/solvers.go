package puzzle

import (
	"io"

	"github.com/katalvlaran/advent/beam"
	"github.com/katalvlaran/advent/circuit"
	"github.com/katalvlaran/advent/dial"
	"github.com/katalvlaran/advent/forklift"
	"github.com/katalvlaran/advent/homework"
	"github.com/katalvlaran/advent/ingredients"
	"github.com/katalvlaran/advent/joltage"
	"github.com/katalvlaran/advent/products"
	"github.com/katalvlaran/advent/tiles"
)

func init() {
	mustRegister(Entry{
		Name:    "dial",
		Summary: "count the times a rotating dial points at 0",
		Solve: func(r io.Reader, p Params) (int, error) {
			return dial.Solve(r, dial.Options{Start: p.Start, MaxValue: p.MaxValue, AnyClick: p.AnyClick})
		},
	})
	mustRegister(Entry{
		Name:    "products",
		Summary: "sum the invalid product IDs in a list of ranges",
		Solve: func(r io.Reader, p Params) (int, error) {
			opts := products.DefaultOptions()
			if p.Doubled {
				opts.Mode = products.ModeDoubled
			}
			return products.Solve(r, opts)
		},
	})
	mustRegister(Entry{
		Name:    "joltage",
		Summary: "sum the largest joltage of every battery bank",
		Solve: func(r io.Reader, p Params) (int, error) {
			return joltage.TotalJoltage(r, p.Batteries)
		},
	})
	mustRegister(Entry{
		Name:    "forklift",
		Summary: "count the paper rolls a forklift can reach",
		Solve: func(r io.Reader, p Params) (int, error) {
			return forklift.Solve(r, p.Once)
		},
	})
	mustRegister(Entry{
		Name:    "ingredients",
		Summary: "count fresh ingredients against merged ID ranges",
		Solve: func(r io.Reader, p Params) (int, error) {
			return ingredients.Solve(r, p.Total)
		},
	})
	mustRegister(Entry{
		Name:    "homework",
		Summary: "total the answers of a column-wise math worksheet",
		Solve: func(r io.Reader, p Params) (int, error) {
			return homework.Solve(r, p.Transposed)
		},
	})
	mustRegister(Entry{
		Name:    "beam",
		Summary: "count beam splits or timelines in a manifold",
		Solve: func(r io.Reader, p Params) (int, error) {
			return beam.Solve(r, p.Timelines)
		},
	})
	mustRegister(Entry{
		Name:    "circuit",
		Summary: "wire junction boxes by distance and measure the circuits",
		Solve: func(r io.Reader, p Params) (int, error) {
			return circuit.Solve(r, p.circuitOptions(), p.Top)
		},
	})
	mustRegister(Entry{
		Name:    "tiles",
		Summary: "find the largest rectangle between two red tiles",
		Solve: func(r io.Reader, p Params) (int, error) {
			return tiles.Solve(r, p.Contained)
		},
	})
}
