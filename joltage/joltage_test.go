package joltage_test

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/advent/joltage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `987654321111111
811111111111119
234234234234278
818181911112111
`

// bruteJoltage tries every subsequence of length n.
func bruteJoltage(bank string, n int) int {
	best := 0
	var walk func(start int, acc string)
	walk = func(start int, acc string) {
		if len(acc) == n {
			v, _ := strconv.Atoi(acc)
			best = max(best, v)
			return
		}
		for j := start; j < len(bank); j++ {
			walk(j+1, acc+bank[j:j+1])
		}
	}
	walk(0, "")

	return best
}

// TestMaxJoltage_Sample checks the per-bank answers for 2 and 12 batteries.
func TestMaxJoltage_Sample(t *testing.T) {
	banks := strings.Fields(sample)
	want2 := []int{98, 89, 78, 92}
	want12 := []int{987654321111, 811111111119, 434234234278, 888911112111}
	for i, bank := range banks {
		got, err := joltage.MaxJoltage(bank, 2)
		require.NoError(t, err)
		assert.Equal(t, want2[i], got, bank)

		got, err = joltage.MaxJoltage(bank, 12)
		require.NoError(t, err)
		assert.Equal(t, want12[i], got, bank)
	}
}

// TestTotalJoltage_Sample checks the summed answers.
func TestTotalJoltage_Sample(t *testing.T) {
	total, err := joltage.TotalJoltage(strings.NewReader(sample), joltage.DefaultBatteries)
	require.NoError(t, err)
	assert.Equal(t, 357, total)

	total, err = joltage.TotalJoltage(strings.NewReader(sample+"\n"), 12)
	require.NoError(t, err)
	assert.Equal(t, 3121910778619, total)
}

// TestMaxJoltage_SingleBattery returns the largest digit.
func TestMaxJoltage_SingleBattery(t *testing.T) {
	for bank, want := range map[string]int{"12345": 5, "91111": 9, "0000": 0, "7": 7, "30412": 4} {
		got, err := joltage.MaxJoltage(bank, 1)
		require.NoError(t, err)
		assert.Equal(t, want, got, bank)
	}
}

// TestMaxJoltage_Edges covers short banks, exact length and zeros.
func TestMaxJoltage_Edges(t *testing.T) {
	cases := []struct {
		bank string
		n    int
		want int
	}{
		{"", 2, 0},
		{"9", 2, 0},
		{"42", 2, 42},
		{"1002", 2, 12},
		{"0009", 3, 9},
		{"9000", 2, 90},
	}
	for _, tc := range cases {
		got, err := joltage.MaxJoltage(tc.bank, tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s n=%d", tc.bank, tc.n)
	}
}

// TestMaxJoltage_Errors verifies the sentinel errors.
func TestMaxJoltage_Errors(t *testing.T) {
	_, err := joltage.MaxJoltage("12a4", 2)
	assert.ErrorIs(t, err, joltage.ErrInvalidDigit)

	_, err = joltage.MaxJoltage("1234", 0)
	assert.ErrorIs(t, err, joltage.ErrBadBatteryCount)

	_, err = joltage.TotalJoltage(strings.NewReader("123\nx\n"), 2)
	assert.ErrorIs(t, err, joltage.ErrInvalidDigit)
	assert.Contains(t, err.Error(), "line 2")
}

// TestMaxJoltage_MatchesBruteForce compares the greedy choice with exhaustive search.
func TestMaxJoltage_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 300; i++ {
		b := make([]byte, 1+r.Intn(10))
		for j := range b {
			b[j] = byte('0' + r.Intn(10))
		}
		bank := string(b)
		n := 1 + r.Intn(len(bank))
		got, err := joltage.MaxJoltage(bank, n)
		require.NoError(t, err)
		if !assert.Equal(t, bruteJoltage(bank, n), got, "bank=%s n=%d", bank, n) {
			return
		}
	}
}
