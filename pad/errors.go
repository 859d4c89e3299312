package pad

import "errors"

// Sentinel errors for padding operations.
var (
	// ErrUnsupportedMode indicates an Options.Mode outside the known set.
	ErrUnsupportedMode = errors.New("pad: unsupported fill mode")
	// ErrBadWidth indicates a negative, empty, over-ranked, or (for Reflect)
	// over-wide border specification.
	ErrBadWidth = errors.New("pad: invalid border width")
)
