// Package pad adds constant-size borders to the trailing axes of a Grid.
//
// What:
//
//   - Pad grows the last len(widths) axes of a Grid by a per-axis
//     Before/After border; leading (batch) axes are never padded.
//   - Three fill modes: Constant (a fixed value, NaN included), Edge
//     (replicate the nearest in-range cell), Reflect (mirror about the
//     edge cell, which itself is not repeated).
//
// Why:
//
//   - Rolling-window views shrink the spatial axes by extent-1; padding
//     first keeps one window per original cell, including cells whose
//     neighbourhood spills over the border.
//   - Summed-area tables need a specific asymmetric border to recover
//     exact window sums at the edges (see package boxsum).
//
// Complexity:
//
//   - Pad: O(prod(padded shape) × rank) time, O(prod(padded shape)) memory.
//
// Errors:
//
//   - ErrUnsupportedMode: the Options carry an unknown fill mode.
//   - ErrBadWidth: a negative border, no axes, more width entries than grid
//     axes, or a Reflect border wider than the axis allows.
package pad
