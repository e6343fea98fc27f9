// Package pathfinder finds strongest vertical paths through a grid of
// edge strengths and selects a spaced-out set of them as region
// boundaries.
//
// 🚀 What is a strongest path?
//
//	A vertical path visits exactly one cell per row and moves at most one
//	column between adjacent rows. Its strength is the sum of the edge
//	strengths it visits. The strongest path through (x,y) is the best
//	upward path ending at (x,y) joined with the best downward path leaving
//	it, so two dynamic programming passes give the strongest path through
//	every cell at once.
//
// ✨ Key features:
//   - upward / downward DP with fixed tie-breaking (straight moves win)
//   - local maxima on coarse scanlines (every G-th row) as seed candidates
//   - greedy seed selection, strongest first, with horizontal spacing (gap)
//   - backtracking along stored predecessors, optionally stopping at the
//     first existing boundary
//   - conversion of the path map into an EdgeMap, plain or transposed
//
// ⚙️ Usage:
//
//	f, err := pathfinder.New(strengths, pathfinder.DefaultOptions())
//	if err != nil { ... }
//	f.ComputePathStrengths()
//	seeds, err := f.SelectPaths(100)
//	em, _ := grid.NewEdgeMap(strengths.Width(), strengths.Height())
//	err = f.UpdateEdgeMap(em)
//
// Performance:
//
//   - ComputePathStrengths: O(W·H) time, O(W·H) memory.
//   - SelectPaths: O(S log S + P·H) for S candidates and P accepted paths.
//
// A Finder is not safe for concurrent use; distinct Finders share nothing.
package pathfinder
