package window

import (
	"fmt"

	"github.com/katalvlaran/nbhood/grid"
)

// Option configures Roll and PadAndRoll.
type Option func(*config)

type config struct {
	writable bool
}

// Writable makes the returned view writable: writes through it mutate the
// backing grid, and overlapping windows share cells, so a write at one
// position is visible at every aliased position. The engine does not
// synchronize writable views; at most one mutator at a time is the
// caller's responsibility.
func Writable() Option {
	return func(c *config) { c.writable = true }
}

// Roll creates a rolling-window view over the last len(win) axes of g.
//
// The view's shape is g.Shape()[:rank-k], then per windowed axis
// extent-win+1, then win itself; its window-axis strides equal the
// corresponding spatial-axis strides, so every neighbourhood aliases the
// backing storage and nothing is copied.
//
// The view borrows g's storage for its whole lifetime; g must outlive it.
//
// Complexity: O(rank) time, metadata-only memory.
func Roll(g *grid.Grid, win []int, opts ...Option) (*grid.View, error) {
	cfg := config{}
	for _, o := range opts {
		o(&cfg)
	}
	if err := validateWindow(g.Rank(), win); err != nil {
		return nil, err
	}

	shape := g.Shape()
	stride := g.Strides()
	rank := len(shape)
	k := len(win)
	lead := rank - k

	viewShape := make([]int, 0, rank+k)
	viewStride := make([]int, 0, rank+k)
	viewShape = append(viewShape, shape[:lead]...)
	viewStride = append(viewStride, stride[:lead]...)
	for i, w := range win {
		d := shape[lead+i] - w + 1
		if d < 1 {
			return nil, fmt.Errorf("window: extent %d over axis of %d: %w", w, shape[lead+i], ErrWindowTooLarge)
		}
		viewShape = append(viewShape, d)
		viewStride = append(viewStride, stride[lead+i])
	}
	// Window axes revisit the spatial axes: same strides, window extents.
	viewShape = append(viewShape, win...)
	viewStride = append(viewStride, stride[lead:]...)

	return grid.NewView(g, viewShape, viewStride, cfg.writable)
}

// validateWindow checks the window rank and extents against a grid rank.
func validateWindow(rank int, win []int) error {
	if len(win) == 0 || len(win) > rank {
		return fmt.Errorf("window: %d extents for rank %d: %w", len(win), rank, ErrWindowRank)
	}
	for _, w := range win {
		if w < 1 {
			return fmt.Errorf("window: extent %d: %w", w, ErrBadWindow)
		}
	}

	return nil
}
