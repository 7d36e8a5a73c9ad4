package joltage_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/advent/joltage"
)

// BenchmarkMaxJoltage12 measures twelve-battery selection on a 100-digit bank.
func BenchmarkMaxJoltage12(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	bank := make([]byte, 100)
	for i := range bank {
		bank[i] = byte('1' + r.Intn(9))
	}
	s := string(bank)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = joltage.MaxJoltage(s, 12)
	}
}
