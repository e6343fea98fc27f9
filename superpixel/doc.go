// Package superpixel runs the whole segmentation pipeline on one image:
// grayscale, box-difference edge strengths for both orientations, the
// vertical/horizontal path lattice, and the region fill.
//
// The coarse grid size and gap can be given directly or derived from a
// target number of superpixels with ParamsFor:
//
//	G   = int(0.5 + sqrt(W·H / n)), at least 1
//	gap = 2·G
//
// Result.PathTime covers path strength computation and seed selection
// only; Result.RegionTime covers edge merging and labelling.
package superpixel
