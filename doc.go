// Package pathlattice partitions images into superpixels whose borders
// follow the strongest vertical and horizontal paths through an edge
// strength map.
//
// 🚀 What is a path lattice?
//
//	A strongest vertical path visits one pixel per row, moves at most one
//	column between rows and maximises the summed edge strength. Choosing a
//	spaced-out set of such paths, and the same for horizontal paths on the
//	transposed image, yields a lattice of boundaries. The cells it encloses
//	are the superpixels.
//
// ✨ Why this approach?
//
//   - Deterministic – fixed tie-breaking and ordered frontiers make every
//     run reproducible, labels included
//   - Linear – both DP passes and the region fill are O(W·H), up to a
//     logarithmic frontier factor
//   - Tunable – the coarse grid size and gap trade region count against
//     boundary adherence
//
// Packages, leaf first:
//
//	grid/       : dense x-major Int/Bool grids and the EdgeMap pair
//	order/      : location and seed orders, B-tree backed ordered Set
//	pathfinder/ : DP path strengths, seed selection, backtracking
//	lattice/    : vertical + transposed engines, merged EdgeMap
//	region/     : deterministic flood fill, sizes, mean colours, stats
//	edgefilter/ : grayscale and box-difference edge strengths
//	render/     : CSV labels, path overlays, colourings, PNG output
//	superpixel/ : the whole pipeline for one image
//	cmd/pathlattice: segment / batch command line
//
// Quick ASCII example (| vertical path, - horizontal path):
//
//	. . | . .
//	- - + - -
//	. . | . .
//
// splits a 5×3 image into four regions.
//
//	go install github.com/katalvlaran/pathlattice/cmd/pathlattice@latest
package pathlattice
