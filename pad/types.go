// Package pad defines fill modes, per-axis widths, and options for
// border padding of grids.
package pad

// Mode selects how border cells are filled.
type Mode int

const (
	// Constant fills the border with Options.Value (NaN is a valid choice).
	Constant Mode = iota
	// Edge replicates the nearest in-range cell along each padded axis.
	Edge
	// Reflect mirrors the interior about the edge cell; the edge cell
	// itself is not repeated. A Reflect border on an axis of extent n is
	// limited to n-1 cells per side.
	Reflect
)

// Width is the border size along one axis: Before cells are prepended,
// After cells appended.
type Width struct {
	Before, After int
}

// Symmetric returns a Width with the same border on both sides.
func Symmetric(n int) Width {
	return Width{Before: n, After: n}
}

// Options configures the fill behavior of Pad.
//
// Fields:
//   - Mode  — Constant, Edge, or Reflect.
//   - Value — the fill value for Constant mode; ignored otherwise.
//
// Example:
//
//	opts := pad.DefaultOptions() // Constant 0
//	opts.Value = math.NaN()      // pad with NaN instead
type Options struct {
	Mode  Mode
	Value float64
}

// DefaultOptions returns Options filling with the constant 0.
func DefaultOptions() Options {
	return Options{Mode: Constant, Value: 0}
}
