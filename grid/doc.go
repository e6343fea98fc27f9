// SPDX-License-Identifier: MIT

// Package grid provides the dense two-dimensional storage shared by every
// stage of the path lattice: integer grids for edge and path strengths,
// boolean grids for path maps and eligibility, and EdgeMap, the pair of
// boolean grids that records region boundaries.
//
// What:
//
//   - Int and Bool store W×H cells in one flat buffer.
//   - Cells are addressed as (x, y) with x the column and y the row.
//   - The buffer is x-major: offset = x*H + y. Every grid in the module uses
//     the same layout so that transposition bugs cannot hide behind mixed
//     index orders.
//   - EdgeMap holds Ver (boundary between columns x-1 and x at row y) and
//     Hor (boundary between rows y-1 and y at column x).
//
// Why:
//
//   - Path strength dynamic programming touches every cell several times;
//     a single contiguous buffer keeps those passes cache friendly.
//   - Checked accessors (At/Set) return sentinel errors for callers, while
//     the unchecked Get/Put pair serves the hot loops inside the module.
//
// Complexity:
//
//   - NewInt/NewBool/Clone/Transpose: O(W·H) time and memory.
//   - At/Set/Get/Put: O(1).
//
// Errors:
//
//   - ErrBadShape: non-positive width or height, or empty input.
//   - ErrNonRectangular: jagged [][]int input.
//   - ErrOutOfRange: checked accessor outside the grid.
//   - ErrDimensionMismatch: EdgeMap operands of different shapes.
package grid
