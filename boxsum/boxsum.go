package boxsum

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/nbhood/grid"
	"github.com/katalvlaran/nbhood/pad"
)

// PadForBoxSum pads the last two axes of g to the shape BoxSum's recovery
// needs for full-size output: box extent/2+1 cells before and extent/2
// after, per axis. The extra leading cell absorbs the inclusive indexing
// of the summed-area table. Leading (batch) axes are untouched.
//
// Complexity: O(prod(padded shape)) time and memory.
func PadForBoxSum(g *grid.Grid, box Box, padOpts pad.Options) (*grid.Grid, error) {
	if g.Rank() < 2 {
		return nil, fmt.Errorf("boxsum: rank %d: %w", g.Rank(), ErrNeedTwoAxes)
	}
	if !box.valid() {
		return nil, fmt.Errorf("boxsum: box %+v: %w", box, ErrBadBoxSize)
	}
	widths := []pad.Width{
		{Before: box.Rows/2 + 1, After: box.Rows / 2},
		{Before: box.Cols/2 + 1, After: box.Cols / 2},
	}

	return pad.Pad(g, widths, padOpts)
}

// Accumulate returns g's summed-area table: each cell holds the sum of
// all cells at equal-or-lower row and column index within its batch
// slice. The input is not modified. Accumulation is a single
// left-to-right pass per axis — rows are added into their successors,
// then each row is prefix-summed — so the whole table costs O(cells).
//
// Complexity: O(cells) time and memory.
func Accumulate(g *grid.Grid) (*grid.Grid, error) {
	if g.Rank() < 2 {
		return nil, fmt.Errorf("boxsum: rank %d: %w", g.Rank(), ErrNeedTwoAxes)
	}
	out := g.Clone()
	shape := out.Shape()
	rows := shape[len(shape)-2]
	cols := shape[len(shape)-1]
	data := out.Raw()

	for base := 0; base < len(data); base += rows * cols {
		slice := data[base : base+rows*cols]
		// Down the rows: each row accumulates its predecessor.
		for r := 1; r < rows; r++ {
			floats.Add(slice[r*cols:(r+1)*cols], slice[(r-1)*cols:r*cols])
		}
		// Along the columns: in-place prefix sum per row.
		for r := 0; r < rows; r++ {
			row := slice[r*cols : (r+1)*cols]
			floats.CumSum(row, row)
		}
	}

	return out, nil
}

// BoxSum computes the neighbourhood total over a box.Rows × box.Cols
// window for every valid position on the last two axes of g, applied
// independently per batch slice.
//
// With opts.Pad set, g is box-padded first and the result's last two axes
// match g's exactly for odd box extents (an even extent grows the output
// by one along its axis, mirroring the asymmetric pad). Without padding,
// the output's spatial axes shrink to extent-box per axis, and the caller
// is expected to have pre-padded via PadForBoxSum when full-size output
// is wanted.
//
// With opts.AlreadyCumulative, g is used as a summed-area table as-is and
// only the O(1)-per-cell recovery runs.
//
// Recovery, per batch slice with table T and box (i, j):
//
//	result[r][c] = T[r+i][c+j] - T[r][c+j] + T[r][c] - T[r+i][c]
//
// Complexity: O(cells) time (O(output cells) when AlreadyCumulative),
// O(cells) memory.
func BoxSum(g *grid.Grid, box Box, opts Options) (*grid.Grid, error) {
	if g.Rank() < 2 {
		return nil, fmt.Errorf("boxsum: rank %d: %w", g.Rank(), ErrNeedTwoAxes)
	}
	if !box.valid() {
		return nil, fmt.Errorf("boxsum: box %+v: %w", box, ErrBadBoxSize)
	}
	if opts.AlreadyCumulative && opts.Pad != nil {
		return nil, ErrCumulativePad
	}

	table := g
	var err error
	if opts.Pad != nil {
		if table, err = PadForBoxSum(g, box, *opts.Pad); err != nil {
			return nil, err
		}
	}
	if !opts.AlreadyCumulative {
		if table, err = Accumulate(table); err != nil {
			return nil, err
		}
	}

	shape := table.Shape()
	rank := len(shape)
	rows := shape[rank-2]
	cols := shape[rank-1]
	i, j := box.Rows, box.Cols
	m, n := rows-i, cols-j
	if m < 1 || n < 1 {
		return nil, fmt.Errorf("boxsum: box %+v over %dx%d table: %w", box, rows, cols, ErrBoxTooLarge)
	}

	outShape := append(shape[:rank-2:rank-2], m, n)
	out, err := grid.New(outShape...)
	if err != nil {
		return nil, err
	}

	src := table.Raw()
	dst := out.Raw()
	batches := len(src) / (rows * cols)
	for b := 0; b < batches; b++ {
		slice := src[b*rows*cols : (b+1)*rows*cols]
		res := dst[b*m*n : (b+1)*m*n]
		for r := 0; r < m; r++ {
			top := slice[r*cols : (r+1)*cols]
			bot := slice[(r+i)*cols : (r+i+1)*cols]
			row := res[r*n : (r+1)*n]
			// row = bot[j:] - top[j:] + top[:n] - bot[:n]
			floats.SubTo(row, bot[j:j+n], top[j:j+n])
			floats.Add(row, top[:n])
			floats.Sub(row, bot[:n])
		}
	}

	return out, nil
}
