package pad

import (
	"fmt"

	"github.com/katalvlaran/nbhood/grid"
)

// Pad returns a new Grid whose last len(widths) axes are grown by the
// given borders, filled according to opts. Leading axes keep their extent
// and their contents pass through verbatim. The input Grid is not retained.
//
// Stage 1 (Validate): mode known, widths sane for the grid's trailing axes.
// Stage 2 (Prepare): build per-axis source-coordinate tables.
// Stage 3 (Execute): walk the padded grid once, resolving each cell to a
// source cell or, in Constant mode, to the fill value.
//
// Complexity: O(prod(padded shape) × rank) time, O(prod(padded shape)) memory.
func Pad(g *grid.Grid, widths []Width, opts Options) (*grid.Grid, error) {
	if opts.Mode != Constant && opts.Mode != Edge && opts.Mode != Reflect {
		return nil, fmt.Errorf("pad: mode %d: %w", opts.Mode, ErrUnsupportedMode)
	}
	rank := g.Rank()
	if len(widths) == 0 || len(widths) > rank {
		return nil, fmt.Errorf("pad: %d width entries for rank %d: %w", len(widths), rank, ErrBadWidth)
	}

	shape := g.Shape()
	lead := rank - len(widths)

	// Per-axis lookup: source[out coordinate] = in coordinate, or -1 for a
	// Constant fill cell. Unpadded leading axes map one-to-one.
	source := make([][]int, rank)
	outShape := make([]int, rank)
	for ax := 0; ax < rank; ax++ {
		w := Width{}
		if ax >= lead {
			w = widths[ax-lead]
		}
		tab, err := axisTable(shape[ax], w, opts.Mode)
		if err != nil {
			return nil, err
		}
		source[ax] = tab
		outShape[ax] = shape[ax] + w.Before + w.After
	}

	out, err := grid.New(outShape...)
	if err != nil {
		return nil, err
	}

	src := g.Raw()
	srcStride := g.Strides()
	dst := out.Raw()

	idx := make([]int, rank)
	for i := range dst {
		off, inRange := 0, true
		for ax, c := range idx {
			s := source[ax][c]
			if s < 0 {
				inRange = false
				break
			}
			off += s * srcStride[ax]
		}
		if inRange {
			dst[i] = src[off]
		} else {
			dst[i] = opts.Value
		}
		for ax := rank - 1; ax >= 0; ax-- {
			idx[ax]++
			if idx[ax] < outShape[ax] {
				break
			}
			idx[ax] = 0
		}
	}

	return out, nil
}

// axisTable maps each padded-axis coordinate to its source coordinate.
// A -1 entry marks a Constant fill cell.
func axisTable(n int, w Width, mode Mode) ([]int, error) {
	if w.Before < 0 || w.After < 0 {
		return nil, fmt.Errorf("pad: width %+v: %w", w, ErrBadWidth)
	}
	if mode == Reflect && (w.Before > n-1 || w.After > n-1) {
		return nil, fmt.Errorf("pad: reflect width %+v exceeds axis extent %d minus one: %w", w, n, ErrBadWidth)
	}
	tab := make([]int, w.Before+n+w.After)
	for c := range tab {
		s := c - w.Before
		if s >= 0 && s < n {
			tab[c] = s
			continue
		}
		switch mode {
		case Constant:
			tab[c] = -1
		case Edge:
			if s < 0 {
				tab[c] = 0
			} else {
				tab[c] = n - 1
			}
		case Reflect:
			if s < 0 {
				tab[c] = -s
			} else {
				tab[c] = 2*(n-1) - s
			}
		}
	}

	return tab, nil
}
