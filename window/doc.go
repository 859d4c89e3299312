// Package window builds zero-copy rolling-window views over grids.
//
// What:
//
//   - Roll turns the last k axes of a Grid into overlapping neighbourhoods:
//     the result is a View with k extra trailing axes of the window extents,
//     while the windowed axes shrink to extent-window+1. No cell is copied;
//     the window axes alias the spatial axes through repeated strides.
//   - PadAndRoll first pads the windowed axes by extent/2 on each side, so
//     the view has exactly one window per original cell, border included.
//   - Reduce collapses the trailing window axes of such a view with a
//     caller-supplied function, for statistics that are not separable sums
//     (a max-height-difference check, a percentile, ...).
//
// Why:
//
//   - Materializing every w×h neighbourhood of a large grid multiplies
//     memory by the window area; a strided view costs O(1) extra memory.
//
// Complexity:
//
//   - Roll: O(rank) — metadata only.
//   - PadAndRoll: O(prod(padded shape)) for the pad copy, then Roll.
//   - Reduce: O(positions × window area).
//
// Errors:
//
//   - ErrWindowRank: more window extents than grid axes, or none.
//   - ErrBadWindow: a window extent < 1.
//   - ErrWindowTooLarge: a window extent exceeding its grid axis.
//
// Windows with even extents are permitted but have no exact centre cell;
// PadAndRoll then places the nominal centre one cell toward the leading
// edge of the window rather than symmetrizing. Callers wanting centred
// neighbourhoods should supply odd extents.
package window
