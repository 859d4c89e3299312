package window

import (
	"fmt"

	"github.com/katalvlaran/nbhood/grid"
)

// ReduceFunc collapses one neighbourhood to a single value. The slice
// holds the window's cells in row-major order and is reused between
// calls; implementations must not retain it.
type ReduceFunc func(window []float64) float64

// Reduce collapses the trailing windowAxes axes of a rolled view with fn,
// producing a Grid shaped like the view's leading axes. This is the
// general path for non-separable neighbourhood statistics; summation-based
// statistics should use package boxsum instead, which avoids visiting
// every window member.
//
// Returns ErrWindowRank unless 0 < windowAxes < v.Rank().
//
// Complexity: O(positions × window area) time, O(window area) scratch.
func Reduce(v *grid.View, windowAxes int, fn ReduceFunc) (*grid.Grid, error) {
	rank := v.Rank()
	if windowAxes < 1 || windowAxes >= rank {
		return nil, fmt.Errorf("window: Reduce over %d of %d axes: %w", windowAxes, rank, ErrWindowRank)
	}

	shape := v.Shape()
	lead := shape[:rank-windowAxes]
	out, err := grid.New(lead...)
	if err != nil {
		return nil, err
	}

	area := 1
	for _, w := range shape[rank-windowAxes:] {
		area *= w
	}
	buf := make([]float64, area)

	dst := out.Raw()
	idx := make([]int, len(lead))
	for i := range dst {
		sub, err := v.Subspace(idx...)
		if err != nil {
			return nil, err
		}
		if err = sub.CopyTo(buf); err != nil {
			return nil, err
		}
		dst[i] = fn(buf)
		for ax := len(lead) - 1; ax >= 0; ax-- {
			idx[ax]++
			if idx[ax] < lead[ax] {
				break
			}
			idx[ax] = 0
		}
	}

	return out, nil
}
