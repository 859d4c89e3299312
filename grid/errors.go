package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrShape indicates a non-positive axis extent or a rank mismatch.
	ErrShape = errors.New("grid: axis extents must be positive")
	// ErrLength indicates a backing slice whose length does not match the shape.
	ErrLength = errors.New("grid: data length does not match shape")
	// ErrIndex indicates an index outside the valid range or of the wrong rank.
	ErrIndex = errors.New("grid: index out of range")
	// ErrReadOnly indicates a write attempted through a read-only view.
	ErrReadOnly = errors.New("grid: view is read-only")
)
