package window

import (
	"github.com/katalvlaran/nbhood/grid"
	"github.com/katalvlaran/nbhood/pad"
)

// PadAndRoll pads the last len(win) axes of g by extent/2 on each side
// using padOpts, then rolls the padded copy with win.
//
// Guarantee, for odd extents: the view's leading axes match g's shape
// exactly — one window per original cell, border cells included; their
// windows contain the pad fill. Collapsing the trailing window axes
// therefore reproduces g's shape.
//
// Unlike Roll, the view is backed by a padded copy owned by the view, not
// by g itself, so a Writable view mutates the copy and leaves g intact.
//
// An even extent pads extent/2 on both sides all the same, which leaves
// the nominal centre one cell toward the window's leading edge and one
// extra position along that axis; callers wanting centred windows should
// supply odd extents.
//
// Complexity: O(prod(padded shape) × rank) time and O(prod(padded shape))
// memory for the pad, O(rank) for the roll.
func PadAndRoll(g *grid.Grid, win []int, padOpts pad.Options, opts ...Option) (*grid.View, error) {
	if err := validateWindow(g.Rank(), win); err != nil {
		return nil, err
	}

	widths := make([]pad.Width, len(win))
	for i, w := range win {
		widths[i] = pad.Symmetric(w / 2)
	}
	padded, err := pad.Pad(g, widths, padOpts)
	if err != nil {
		return nil, err
	}

	return Roll(padded, win, opts...)
}
