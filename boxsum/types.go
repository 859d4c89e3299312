// Package boxsum defines the box geometry and options for summed-area
// neighbourhood totals.
package boxsum

import "github.com/katalvlaran/nbhood/pad"

// Box is the neighbourhood extent along the last two axes, rows then
// columns. Extents must be positive; odd extents centre the box on its
// nominal cell, even extents are permitted but sit off-centre (and, when
// padding is requested, grow the output by one row/column — see BoxSum).
type Box struct {
	Rows, Cols int
}

// Square returns a Box with the same extent on both axes.
func Square(n int) Box {
	return Box{Rows: n, Cols: n}
}

// area returns the number of cells the box covers.
func (b Box) area() int { return b.Rows * b.Cols }

// valid reports whether both extents are positive.
func (b Box) valid() bool { return b.Rows >= 1 && b.Cols >= 1 }

// Options configures BoxSum.
//
// Fields:
//   - AlreadyCumulative — treat the input as a summed-area table produced
//     by Accumulate (or equivalent) and skip the accumulation pass. Lets
//     callers reuse one table across many box sizes.
//   - Pad — when non-nil, box-pad the input first with this policy, so the
//     result's last two axes match the unpadded input's (odd extents).
//     Mutually exclusive with AlreadyCumulative.
//
// Example:
//
//	opts := boxsum.DefaultOptions()
//	p := pad.DefaultOptions() // constant 0
//	opts.Pad = &p
//	totals, err := boxsum.BoxSum(g, boxsum.Square(3), opts)
type Options struct {
	AlreadyCumulative bool
	Pad               *pad.Options
}

// DefaultOptions returns Options with no padding and a fresh accumulation.
func DefaultOptions() Options {
	return Options{}
}
