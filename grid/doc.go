// Package grid provides the core array types for neighbourhood statistics:
// an owning N-dimensional Grid and a non-owning strided View.
//
// What:
//
//   - Grid is a row-major float64 array of arbitrary rank, backed by a flat
//     slice, with explicit shape and stride metadata.
//   - View layers alternative shape/stride metadata over a Grid's storage
//     without copying. Strides may repeat axes, which is how rolling-window
//     views alias each cell into many overlapping neighbourhoods.
//   - Views are read-only unless explicitly created writable; writes through
//     a writable view mutate the backing Grid in place.
//
// Why:
//
//   - Windowed statistics over large grids must not materialize every
//     overlapping window; a strided view keeps enumeration O(1) in memory.
//   - Separating the owning Grid from the borrowing View keeps the aliasing
//     hazard visible in the type system rather than implicit.
//
// Complexity:
//
//   - New/FromSlice/Clone: O(len) time and memory.
//   - At/Set: O(rank) index arithmetic, no allocation.
//   - View construction: O(rank); Materialize: O(len of view).
//
// Errors:
//
//   - ErrShape: non-positive axis extent, or rank/extent mismatch.
//   - ErrLength: backing slice length does not match the shape.
//   - ErrIndex: an index is out of bounds or of the wrong rank.
//   - ErrReadOnly: write attempted through a read-only View.
package grid
