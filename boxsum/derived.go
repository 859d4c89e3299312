package boxsum

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/nbhood/grid"
	"github.com/katalvlaran/nbhood/pad"
)

// BoxMean computes the neighbourhood mean over a box.Rows × box.Cols
// window: BoxSum scaled by the box area. Cells whose window includes pad
// fill average over the fill values too; use BoxCount to normalize by the
// number of valid neighbours instead.
//
// Complexity: as BoxSum plus O(output cells).
func BoxMean(g *grid.Grid, box Box, opts Options) (*grid.Grid, error) {
	out, err := BoxSum(g, box, opts)
	if err != nil {
		return nil, err
	}
	floats.Scale(1/float64(box.area()), out.Raw())

	return out, nil
}

// BoxCount counts the non-NaN cells inside each box.Rows × box.Cols
// window, via a 0/1 indicator grid run through BoxSum. NaN cells, and
// constant-NaN pad fill, contribute zero; replicated or reflected pad
// cells count whenever the cell they mirror is valid.
//
// With padOpts non-nil the input is box-padded first and the result's
// last two axes match g's (odd extents); with nil padOpts the output
// shrinks like an unpadded BoxSum.
//
// Complexity: as BoxSum plus O(cells) for the indicator.
func BoxCount(g *grid.Grid, box Box, padOpts *pad.Options) (*grid.Grid, error) {
	src := g
	var err error
	if padOpts != nil {
		if src, err = PadForBoxSum(g, box, *padOpts); err != nil {
			return nil, err
		}
	}

	indicator := src.Clone()
	data := indicator.Raw()
	for i, v := range data {
		if math.IsNaN(v) {
			data[i] = 0
		} else {
			data[i] = 1
		}
	}

	return BoxSum(indicator, box, DefaultOptions())
}
