// Package nbhood computes neighbourhood statistics over dense numeric
// grids — per-cell aggregates over a sliding rectangular window, without
// materializing the overlapping windows and without paying O(window-area)
// per output cell.
//
// 🚀 What is nbhood?
//
//	A small, focused library that brings together:
//		• grid/   — N-dimensional row-major Grid & no-copy strided View
//		• pad/    — border padding (constant / edge / reflect fills)
//		• window/ — zero-copy rolling-window views & pad-and-roll
//		• boxsum/ — summed-area tables: O(1) window sums after one pass
//
// ✨ Why choose nbhood?
//
//   - Zero-copy windows – neighbourhoods are strided views, never copies
//   - Exact edge handling – box-pad keeps window sums correct at borders
//   - Batch-aware – leading axes (time, ensemble member) pass through untouched
//   - Pure Go – no cgo, deterministic, safe for concurrent callers
//
// The engine knows nothing about units, projections, calendars or file
// formats: it operates on indexable float64 grids and integer window
// extents, and leaves domain semantics to its callers.
//
// Quick ASCII example, a 3×3 window centred on O:
//
//	X X X
//	X O X
//	X X X
//
// Collapsing each window with a sum (boxsum) or any reduction (window)
// yields one value per original grid cell.
//
//	go get github.com/katalvlaran/nbhood
package nbhood
