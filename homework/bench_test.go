package homework_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/advent/homework"
)

// BenchmarkSolveTransposed measures a sheet of 1000 copies of the sample problems.
func BenchmarkSolveTransposed(b *testing.B) {
	rows := []string{"123 328  51 64 ", " 45 64  387 23 ", "  6 98  215 314", "*   +   *   +  "}
	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(strings.TrimRight(strings.Repeat(row+" ", 1000), " "))
		sb.WriteByte('\n')
	}
	sheet := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = homework.SolveTransposed(strings.NewReader(sheet))
	}
}
