// Package lattice combines a vertical and a horizontal strongest-path
// search over the same image into a single boundary lattice.
//
// 🚀 What does it do?
//
//	The vertical engine runs pathfinder over the strength grid as given
//	and produces boundaries running top to bottom. The horizontal engine
//	runs over the transposed grid; its boundaries run left to right once
//	transposed back. Together they cut the image into roughly rectangular
//	cells whose sides follow strong edges.
//
// ✨ Key features:
//   - two independent pathfinder.Finder instances sharing one Options
//   - optional parallel computation of both engines (identical results)
//   - seed coordinates reported in original image coordinates
//   - merged EdgeMap ready for region.Filler
//   - manual seeding of single vertical or horizontal paths
//
// ⚙️ Usage:
//
//	l, err := lattice.New(strengths,
//	    lattice.WithFinderOptions(pathfinder.Options{CoarseGridSize: 20, Gap: 40, StopBacktrackEarly: true}),
//	    lattice.WithParallel(true),
//	)
//	if err != nil { ... }
//	l.ComputePathStrengths()
//	seeds, err := l.SelectPaths(500)
//	em, err := l.EdgeMap()
//
// Errors:
//   - ErrNilGrid: a nil strength grid.
//   - ErrDimensionMismatch: NewFromPair grids that are not transposes in shape.
//   - ErrOptionViolation: an invalid Option.
//   - pathfinder errors (ErrNotInitialized, ErrOutOfRange, ...) pass through
//     wrapped, so errors.Is works on both.
package lattice
