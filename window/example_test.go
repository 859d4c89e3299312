package window_test

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/nbhood/grid"
	"github.com/katalvlaran/nbhood/pad"
	"github.com/katalvlaran/nbhood/window"
)

// ExampleRoll rolls a length-3 window over a 1-D grid: five cells give
// three valid positions, each a zero-copy view of the backing data.
func ExampleRoll() {
	g, _ := grid.FromSlice([]float64{1, 2, 3, 4, 5}, 5)

	v, _ := window.Roll(g, []int{3})
	fmt.Println(v.Shape())

	first, _ := v.Subspace(0)
	fmt.Println(first.Materialize().Raw())
	// Output:
	// [3 3]
	// [1 2 3]
}

// ExamplePadAndRoll pads a 2×2 grid so every original cell gets a full
// 3×3 neighbourhood; the corner window shows the constant fill.
func ExamplePadAndRoll() {
	g, _ := grid.FromSlice([]float64{1, 2, 3, 4}, 2, 2)

	v, _ := window.PadAndRoll(g, []int{3, 3}, pad.DefaultOptions())
	fmt.Println(v.Shape())

	corner, _ := v.Subspace(0, 0)
	fmt.Println(corner.Materialize().Raw())
	// Output:
	// [2 2 3 3]
	// [0 0 0 0 1 2 0 3 4]
}

// ExampleReduce computes a sliding maximum, a statistic that no
// summed-area table can express.
func ExampleReduce() {
	g, _ := grid.FromSlice([]float64{3, 1, 4, 1, 5}, 5)

	v, _ := window.Roll(g, []int{3})
	out, _ := window.Reduce(v, 1, floats.Max)
	fmt.Println(out.Raw())
	// Output:
	// [4 4 5]
}
