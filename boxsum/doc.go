// Package boxsum computes exact neighbourhood sums over the last two axes
// of a grid in O(1) per cell, using a summed-area table.
//
// What:
//
//   - Accumulate builds the table: one prefix-sum pass down the rows, one
//     along the columns, per batch slice.
//   - BoxSum recovers every window sum from four table cells by
//     inclusion–exclusion, optionally box-padding first so the output
//     keeps the input's spatial shape.
//   - PadForBoxSum applies the specific asymmetric border the recovery
//     needs: extent/2+1 cells before, extent/2 after, per windowed axis.
//   - BoxMean and BoxCount derive mean and valid-neighbour counts from the
//     same machinery.
//
// How the recovery works, on a table accumulated top-to-bottom and
// left-to-right:
//
//	| 1 (C) | 2 | 2     | 2 (D) |
//	| 1     | 3 | 4     | 4     |
//	| 2     | 4 | 5 (X) | 6     |
//	| 2 (A) | 4 | 6     | 7 (B) |
//
// The 3×3 neighbourhood sum at the central point X is B - A - D + C:
// the bottom-right corner minus the two flanking rectangles, adding back
// the doubly-subtracted top-left block. The extra leading pad row/column
// exists because each table cell is inclusive of its own position.
//
// Why:
//
//   - A naive window sum costs O(window area) per cell; the table costs
//     O(cells) once and O(1) per cell after, independent of box size.
//
// Complexity:
//
//   - Accumulate: O(cells) time, O(cells) memory for the table copy.
//   - BoxSum recovery: O(output cells) time.
//
// Errors:
//
//   - ErrNeedTwoAxes: the grid has rank < 2.
//   - ErrBadBoxSize: a box extent < 1.
//   - ErrBoxTooLarge: the box exceeds the (possibly padded) spatial axes.
//   - ErrCumulativePad: a pad policy combined with AlreadyCumulative;
//     padding an accumulated table would corrupt the prefix property.
package boxsum
