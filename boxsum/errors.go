package boxsum

import "errors"

// Sentinel errors for summed-area operations.
var (
	// ErrNeedTwoAxes indicates a grid of rank < 2; box sums run over the
	// last two axes.
	ErrNeedTwoAxes = errors.New("boxsum: grid must have at least two axes")
	// ErrBadBoxSize indicates a box extent < 1.
	ErrBadBoxSize = errors.New("boxsum: box extents must be positive")
	// ErrBoxTooLarge indicates box extents that leave no valid output cell
	// on the (possibly padded) spatial axes.
	ErrBoxTooLarge = errors.New("boxsum: box exceeds grid spatial extents")
	// ErrCumulativePad indicates a pad policy supplied together with
	// AlreadyCumulative; a pre-accumulated table cannot be padded.
	ErrCumulativePad = errors.New("boxsum: cannot pad an already-cumulative table")
)
