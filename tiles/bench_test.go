package tiles

import "testing"

// ring returns a closed outline with a zig-zag top edge of n teeth.
func ring(n int) []Position {
	y := func(i int) int { return (i % 2) * 500 }
	ps := []Position{{X: 0, Y: y(0)}}
	for i := 0; i < n; i++ {
		x := (i + 1) * 1000
		ps = append(ps, Position{X: x, Y: y(i)}, Position{X: x, Y: y(i + 1)})
	}

	return append(ps, Position{X: n * 1000, Y: 100_000}, Position{X: 0, Y: 100_000})
}

func BenchmarkLargestContainedArea(b *testing.B) {
	ps := ring(250)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := LargestContainedArea(ps); err != nil {
			b.Fatal(err)
		}
	}
}
