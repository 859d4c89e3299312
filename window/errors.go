package window

import "errors"

// Sentinel errors for rolling-window operations.
var (
	// ErrWindowRank indicates an empty window shape or more window extents
	// than the grid has axes.
	ErrWindowRank = errors.New("window: window rank must be between 1 and the grid rank")
	// ErrBadWindow indicates a window extent < 1.
	ErrBadWindow = errors.New("window: window extents must be positive")
	// ErrWindowTooLarge indicates a window extent exceeding the grid axis it
	// rolls over, which would leave no valid window position.
	ErrWindowTooLarge = errors.New("window: window extent exceeds grid axis")
)
