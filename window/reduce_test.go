package window_test

import (
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/nbhood/pad"
	"github.com/katalvlaran/nbhood/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReduce_SlidingSum verifies a 1-D sum reduction over a rolled view
// against hand-computed sliding sums.
func TestReduce_SlidingSum(t *testing.T) {
	g := seqGrid(t, 5) // 1..5

	v, err := window.Roll(g, []int{3})
	require.NoError(t, err)

	out, err := window.Reduce(v, 1, floats.Sum)
	require.NoError(t, err)

	assert.Equal(t, []int{3}, out.Shape())
	assert.Equal(t, []float64{6, 9, 12}, out.Raw())
}

// TestReduce_MaxDifference verifies a non-separable statistic — the
// largest height difference inside each neighbourhood — over a padded
// edge-replicating view.
func TestReduce_MaxDifference(t *testing.T) {
	g := seqGrid(t, 3, 3) // 1..9

	v, err := window.PadAndRoll(g, []int{3, 3}, pad.Options{Mode: pad.Edge})
	require.NoError(t, err)

	maxDiff := func(w []float64) float64 { return floats.Max(w) - floats.Min(w) }
	out, err := window.Reduce(v, 2, maxDiff)
	require.NoError(t, err)

	require.Equal(t, []int{3, 3}, out.Shape())

	// Centre window holds all of 1..9; its spread is 8.
	got, err := out.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 8.0, got)

	// Corner window replicates the border: values {1,2,4,5}; spread 4.
	got, err = out.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got)
}

// TestReduce_BatchAxes verifies reduction keeps every leading axis.
func TestReduce_BatchAxes(t *testing.T) {
	g := seqGrid(t, 2, 3, 4)

	v, err := window.Roll(g, []int{2, 2})
	require.NoError(t, err)

	out, err := window.Reduce(v, 2, floats.Sum)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 2, 3}, out.Shape())

	// First window of the second batch slice: 13+14+17+18.
	got, err := out.At(1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 62.0, got)
}

// TestReduce_Errors verifies the window-axis count validation.
func TestReduce_Errors(t *testing.T) {
	g := seqGrid(t, 5)

	v, err := window.Roll(g, []int{3})
	require.NoError(t, err)

	_, err = window.Reduce(v, 0, floats.Sum)
	assert.ErrorIs(t, err, window.ErrWindowRank)

	_, err = window.Reduce(v, 2, floats.Sum)
	assert.ErrorIs(t, err, window.ErrWindowRank, "reducing every axis must error")
}
