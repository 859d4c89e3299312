package grid

import (
	"fmt"
)

// View is a non-owning, strided window onto a Grid's storage.
// It carries its own shape/stride metadata but shares the backing slice:
// no cell data is copied, and strides may repeat axes so that one backing
// cell appears at many view positions (overlapping neighbourhoods).
//
// A View is read-only unless created writable. Writes through a writable
// view mutate the backing Grid in place, and aliased positions observe
// each other's writes. Concurrent mutation is caller-synchronized; the
// engine never guards a writable view.
type View struct {
	shape    []int
	stride   []int
	data     []float64
	writable bool
}

// NewView layers shape/stride metadata over g's storage without copying.
// Strides must be non-negative and the highest addressable offset,
// sum((shape[i]-1)*stride[i]), must lie inside g's backing slice.
// Returns ErrShape when the metadata cannot be satisfied by g.
// Complexity: O(rank); no allocation beyond the metadata copies.
func NewView(g *Grid, shape, stride []int, writable bool) (*View, error) {
	if _, err := checkShape(shape); err != nil {
		return nil, err
	}
	if len(stride) != len(shape) {
		return nil, fmt.Errorf("grid: NewView: %d strides for %d axes: %w", len(stride), len(shape), ErrShape)
	}
	last := 0
	for i, d := range shape {
		if stride[i] < 0 {
			return nil, fmt.Errorf("grid: NewView: negative stride %d on axis %d: %w", stride[i], i, ErrShape)
		}
		last += (d - 1) * stride[i]
	}
	if last >= len(g.data) {
		return nil, fmt.Errorf("grid: NewView: view addresses offset %d beyond backing length %d: %w", last, len(g.data), ErrShape)
	}

	return &View{
		shape:    cloneInts(shape),
		stride:   cloneInts(stride),
		data:     g.data,
		writable: writable,
	}, nil
}

// Rank returns the number of view axes.
func (v *View) Rank() int { return len(v.shape) }

// Len returns the number of view positions (product of the view shape).
// Aliased positions are counted once per position, not once per backing cell.
func (v *View) Len() int {
	n := 1
	for _, d := range v.shape {
		n *= d
	}

	return n
}

// Shape returns a copy of the view's axis extents.
func (v *View) Shape() []int { return cloneInts(v.shape) }

// Strides returns a copy of the view's per-axis flat-index steps.
func (v *View) Strides() []int { return cloneInts(v.stride) }

// Writable reports whether Set is permitted on this view.
func (v *View) Writable() bool { return v.writable }

// At returns the value at the given view index.
// Returns ErrIndex on a rank mismatch or out-of-range coordinate.
// Complexity: O(rank).
func (v *View) At(idx ...int) (float64, error) {
	off, err := flatOffset(v.shape, v.stride, idx)
	if err != nil {
		return 0, err
	}

	return v.data[off], nil
}

// Set writes value at the given view index.
// Returns ErrReadOnly unless the view was created writable, ErrIndex on a
// bad index. The write lands in the backing Grid and is visible at every
// aliased view position.
func (v *View) Set(value float64, idx ...int) error {
	if !v.writable {
		return ErrReadOnly
	}
	off, err := flatOffset(v.shape, v.stride, idx)
	if err != nil {
		return err
	}
	v.data[off] = value

	return nil
}

// Subspace returns a view of the trailing axes at the given leading
// offsets, sharing storage and writability with v. With len(offs) = j,
// the result has rank Rank()-j. Returns ErrIndex on bad offsets,
// ErrShape if all axes would be consumed.
// Complexity: O(rank).
func (v *View) Subspace(offs ...int) (*View, error) {
	if len(offs) >= len(v.shape) {
		return nil, fmt.Errorf("grid: Subspace: %d offsets consume all %d axes: %w", len(offs), len(v.shape), ErrShape)
	}
	base := 0
	for i, c := range offs {
		if c < 0 || c >= v.shape[i] {
			return nil, fmt.Errorf("grid: Subspace: offset %v for shape %v: %w", offs, v.shape, ErrIndex)
		}
		base += c * v.stride[i]
	}

	return &View{
		shape:    cloneInts(v.shape[len(offs):]),
		stride:   cloneInts(v.stride[len(offs):]),
		data:     v.data[base:],
		writable: v.writable,
	}, nil
}

// Materialize copies the view's contents into a new owning Grid in
// row-major order. The result no longer aliases the backing storage.
// Complexity: O(Len()) time and memory.
func (v *View) Materialize() *Grid {
	out := make([]float64, v.Len())
	v.copyInto(out)

	return &Grid{shape: cloneInts(v.shape), stride: rowMajorStrides(v.shape), data: out}
}

// CopyTo copies the view's contents row-major into dst.
// Returns ErrLength unless len(dst) == Len().
// Complexity: O(Len()).
func (v *View) CopyTo(dst []float64) error {
	if len(dst) != v.Len() {
		return fmt.Errorf("grid: CopyTo: dst length %d for view of %d cells: %w", len(dst), v.Len(), ErrLength)
	}
	v.copyInto(dst)

	return nil
}

// copyInto walks the view in row-major order with an incremental offset
// odometer: advance the last axis by its stride, and on each wrap rewind
// that axis and carry into the previous one.
func (v *View) copyInto(dst []float64) {
	rank := len(v.shape)
	idx := make([]int, rank)
	off := 0
	for i := range dst {
		dst[i] = v.data[off]
		for ax := rank - 1; ax >= 0; ax-- {
			idx[ax]++
			off += v.stride[ax]
			if idx[ax] < v.shape[ax] {
				break
			}
			idx[ax] = 0
			off -= v.shape[ax] * v.stride[ax]
		}
	}
}
