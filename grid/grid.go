package grid

import (
	"fmt"
)

// Grid is a row-major N-dimensional array of float64 values.
// shape holds the extent of each axis, stride the flat-index step per axis,
// and data the backing storage of length prod(shape).
// A Grid owns its storage; constructors copy caller slices.
type Grid struct {
	shape  []int
	stride []int
	data   []float64
}

// New creates a zero-filled Grid with the given axis extents.
// Returns ErrShape if no extents are given or any extent is < 1.
// Complexity: O(prod(shape)) time and memory.
func New(shape ...int) (*Grid, error) {
	n, err := checkShape(shape)
	if err != nil {
		return nil, err
	}

	return &Grid{
		shape:  cloneInts(shape),
		stride: rowMajorStrides(shape),
		data:   make([]float64, n),
	}, nil
}

// FromSlice creates a Grid with the given extents, copying data row-major.
// Returns ErrShape on bad extents, ErrLength if len(data) != prod(shape).
// Complexity: O(prod(shape)) time and memory.
func FromSlice(data []float64, shape ...int) (*Grid, error) {
	n, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, fmt.Errorf("grid: FromSlice: have %d values for shape %v: %w", len(data), shape, ErrLength)
	}
	buf := make([]float64, n)
	copy(buf, data)

	return &Grid{shape: cloneInts(shape), stride: rowMajorStrides(shape), data: buf}, nil
}

// Full creates a Grid with every cell set to value.
// Complexity: O(prod(shape)) time and memory.
func Full(value float64, shape ...int) (*Grid, error) {
	g, err := New(shape...)
	if err != nil {
		return nil, err
	}
	g.Fill(value)

	return g, nil
}

// Rank returns the number of axes.
func (g *Grid) Rank() int { return len(g.shape) }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.data) }

// Shape returns a copy of the axis extents.
func (g *Grid) Shape() []int { return cloneInts(g.shape) }

// Dim returns the extent of axis i. Panics if i is out of range,
// consistent with slice indexing (programmer error, not input error).
func (g *Grid) Dim(i int) int { return g.shape[i] }

// Strides returns a copy of the per-axis flat-index steps.
func (g *Grid) Strides() []int { return cloneInts(g.stride) }

// Raw returns the live backing slice in row-major order.
// Mutations through Raw are visible to every View over this Grid.
// Hot paths (padding, accumulation) operate on Raw directly.
func (g *Grid) Raw() []float64 { return g.data }

// At returns the value at the given index.
// Returns ErrIndex if the index rank or any coordinate is invalid.
// Complexity: O(rank).
func (g *Grid) At(idx ...int) (float64, error) {
	off, err := flatOffset(g.shape, g.stride, idx)
	if err != nil {
		return 0, err
	}

	return g.data[off], nil
}

// Set assigns value at the given index.
// Returns ErrIndex if the index rank or any coordinate is invalid.
// Complexity: O(rank).
func (g *Grid) Set(value float64, idx ...int) error {
	off, err := flatOffset(g.shape, g.stride, idx)
	if err != nil {
		return err
	}
	g.data[off] = value

	return nil
}

// Fill sets every cell to value.
func (g *Grid) Fill(value float64) {
	for i := range g.data {
		g.data[i] = value
	}
}

// Clone returns a deep copy of the Grid.
// Complexity: O(prod(shape)) time and memory.
func (g *Grid) Clone() *Grid {
	buf := make([]float64, len(g.data))
	copy(buf, g.data)

	return &Grid{shape: cloneInts(g.shape), stride: cloneInts(g.stride), data: buf}
}

// checkShape validates axis extents and returns the total cell count.
func checkShape(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, fmt.Errorf("grid: empty shape: %w", ErrShape)
	}
	n := 1
	for _, d := range shape {
		if d < 1 {
			return 0, fmt.Errorf("grid: shape %v: %w", shape, ErrShape)
		}
		n *= d
	}

	return n, nil
}

// rowMajorStrides computes flat-index steps for a row-major layout:
// the last axis is contiguous, each earlier axis strides over the
// product of all later extents.
func rowMajorStrides(shape []int) []int {
	stride := make([]int, len(shape))
	step := 1
	for i := len(shape) - 1; i >= 0; i-- {
		stride[i] = step
		step *= shape[i]
	}

	return stride
}

// flatOffset resolves an N-dimensional index against shape/stride metadata.
func flatOffset(shape, stride, idx []int) (int, error) {
	if len(idx) != len(shape) {
		return 0, fmt.Errorf("grid: index rank %d for shape %v: %w", len(idx), shape, ErrIndex)
	}
	off := 0
	for i, c := range idx {
		if c < 0 || c >= shape[i] {
			return 0, fmt.Errorf("grid: index %v for shape %v: %w", idx, shape, ErrIndex)
		}
		off += c * stride[i]
	}

	return off, nil
}

func cloneInts(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)

	return out
}
