// Package region labels the regions enclosed by an EdgeMap.
//
// 🚀 What is a region?
//
//	A maximal set of cells reachable from one another through 4-adjacent
//	steps that do not cross a boundary of the EdgeMap.
//
// ✨ Key features:
//   - deterministic flood fill driven by two ordered frontiers
//     (row-major order of GridLocation), so labels are reproducible
//   - region ids are dense: 0 … Count()-1, numbered in order of each
//     region's first cell in the global frontier
//   - per-region sizes, average colours and size statistics
//
// ⚙️ Usage:
//
//	f, err := region.FromEdgeMap(em)
//	if err != nil { ... }
//	f.Compute()
//	labels, _ := f.Labels()
//	n, _ := f.Count()
//
// Complexity: O(W·H·log W) for Compute; each cell enters each frontier a
// bounded number of times and the frontiers hold about one row of cells.
package region
