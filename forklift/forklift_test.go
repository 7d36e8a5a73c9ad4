package forklift_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/advent/forklift"
	"github.com/katalvlaran/advent/gridgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `..@@.@@@@.
@@@.@.@.@@
@@@@@.@.@@
@.@@@@..@.
@@.@@@@.@@
.@@@@@@@.@
.@.@.@.@@@
@.@@@.@@@@
.@@@@@@@@.
@.@.@@@.@.
`

// TestAccessible_Sample counts the rolls reachable before any removal.
func TestAccessible_Sample(t *testing.T) {
	gg, err := forklift.ParseRolls(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, 13, forklift.Accessible(gg))
}

// TestRemoveAll_Sample counts every roll removed by repeated passes.
func TestRemoveAll_Sample(t *testing.T) {
	gg, err := forklift.ParseRolls(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, 43, forklift.RemoveAll(gg))
	assert.Equal(t, 13, forklift.Accessible(gg), "RemoveAll must not modify the grid")
}

// TestRemoveAll_SolidBlock verifies a 3×3 block is peeled corner first:
// corners have 3 neighbours, then edges fall, then the centre.
func TestRemoveAll_SolidBlock(t *testing.T) {
	gg, err := forklift.ParseRolls(strings.NewReader("@@@\n@@@\n@@@\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, forklift.Accessible(gg))
	assert.Equal(t, 9, forklift.RemoveAll(gg))
}

// TestRemoveAll_StableCore keeps rolls that never become accessible.
func TestRemoveAll_StableCore(t *testing.T) {
	// A 5×5 block: once the corners go, every border roll still has 4
	// neighbours, so removal stops.
	gg, err := forklift.ParseRolls(strings.NewReader(strings.Repeat("@@@@@\n", 5)))
	require.NoError(t, err)
	assert.Equal(t, 4, forklift.Accessible(gg))
	assert.Equal(t, 4, forklift.RemoveAll(gg))
}

// TestSolve_Modes checks the once switch and an empty floor.
func TestSolve_Modes(t *testing.T) {
	n, err := forklift.Solve(strings.NewReader(sample), true)
	require.NoError(t, err)
	assert.Equal(t, 13, n)

	n, err = forklift.Solve(strings.NewReader(sample), false)
	require.NoError(t, err)
	assert.Equal(t, 43, n)

	n, err = forklift.Solve(strings.NewReader("...\n...\n"), false)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = forklift.Solve(strings.NewReader(""), false)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}
