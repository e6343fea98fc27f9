// Package order defines the total orders that make the path lattice
// deterministic, plus a small ordered set keyed by those orders.
//
//   - GridLocation (x, y) orders by ascending y, then ascending x. The
//     region filler's frontiers pop locations in this order.
//   - SeedCandidate (column, coarse row, strength) orders by descending
//     strength, then ascending coarse row, then ascending column. Greedy
//     seed selection visits candidates in this order.
//
// Comparators are plain functions of immutable fields, kept apart from the
// element types so the same value can live in sets with different orders.
//
// Set is backed by a B-tree (github.com/google/btree): Add, Remove, Has and
// PopMin are O(log n).
package order
