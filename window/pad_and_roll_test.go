package window_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nbhood/pad"
	"github.com/katalvlaran/nbhood/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPadAndRoll_ShapePreservation verifies the orchestrator's guarantee:
// the view's leading axes equal the original, unpadded grid's shape — one
// window per original cell.
func TestPadAndRoll_ShapePreservation(t *testing.T) {
	g := seqGrid(t, 4, 5)

	opts := pad.Options{Mode: pad.Constant, Value: math.NaN()}
	v, err := window.PadAndRoll(g, []int{3, 3}, opts)
	require.NoError(t, err)

	assert.Equal(t, []int{4, 5, 3, 3}, v.Shape())
}

// TestPadAndRoll_BatchAxes verifies leading batch axes are neither padded
// nor windowed.
func TestPadAndRoll_BatchAxes(t *testing.T) {
	g := seqGrid(t, 2, 4, 5)

	v, err := window.PadAndRoll(g, []int{3, 3}, pad.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []int{2, 4, 5, 3, 3}, v.Shape())
}

// TestPadAndRoll_WindowCentring verifies that each window is centred on
// its original cell: the window's middle member is the cell itself, and a
// border window carries pad fill on its out-of-range side.
func TestPadAndRoll_WindowCentring(t *testing.T) {
	g := seqGrid(t, 4, 5)

	opts := pad.Options{Mode: pad.Constant, Value: math.NaN()}
	v, err := window.PadAndRoll(g, []int{3, 3}, opts)
	require.NoError(t, err)

	// Interior cell (1, 1): middle of its window is the cell value.
	want, err := g.At(1, 1)
	require.NoError(t, err)
	got, err := v.At(1, 1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, want, got, "window middle must be the original cell")

	// Corner cell (0, 0): top-left window member is pad fill.
	got, err = v.At(0, 0, 0, 0)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got), "corner window must include the NaN fill")

	got, err = v.At(0, 0, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got, "corner window middle must be the corner cell")
}

// TestPadAndRoll_DoesNotMutateInput verifies a writable pad-and-roll view
// mutates the internal padded copy, not the caller's grid.
func TestPadAndRoll_DoesNotMutateInput(t *testing.T) {
	g := seqGrid(t, 3, 3)

	v, err := window.PadAndRoll(g, []int{3, 3}, pad.DefaultOptions(), window.Writable())
	require.NoError(t, err)

	require.NoError(t, v.Set(99, 1, 1, 1, 1))

	got, err := g.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got, "the caller's grid must stay intact")
}

// TestPadAndRoll_PropagatesPadErrors verifies that a malformed pad policy
// surfaces unchanged.
func TestPadAndRoll_PropagatesPadErrors(t *testing.T) {
	g := seqGrid(t, 4, 5)

	_, err := window.PadAndRoll(g, []int{3, 3}, pad.Options{Mode: pad.Mode(-1)})
	assert.ErrorIs(t, err, pad.ErrUnsupportedMode)
}

// TestPadAndRoll_EvenExtent verifies the permissive even-window behavior:
// extent/2 pad on both sides, nominal centre toward the leading edge, and
// still one window per original cell.
func TestPadAndRoll_EvenExtent(t *testing.T) {
	g := seqGrid(t, 4)

	v, err := window.PadAndRoll(g, []int{2}, pad.DefaultOptions())
	require.NoError(t, err)

	// 4 cells + 2*(2/2) pad - 2 + 1 = 5 positions: one per cell plus the
	// asymmetry of an uncentred window.
	assert.Equal(t, []int{5, 2}, v.Shape())
}
