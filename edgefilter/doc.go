// Package edgefilter turns an image into the non-negative edge strength
// grids consumed by pathfinder and lattice.
//
// Pipeline:
//
//  1. Grayscale converts any image.Image to 8-bit luma using truncated
//     weights int(0.299·R) + int(0.587·G) + int(0.114·B).
//  2. Filter.Strengths compares, for every pixel (x,y), the integer mean of
//     the r pixels left of it, [x-r, x), with the mean of the r pixels
//     starting at it, [x, x+r). The absolute difference is the strength of
//     a vertical boundary immediately left of (x,y). Pixels whose windows
//     leave the image get 0.
//  3. Filter.Pair runs the same filter on the transposed image, giving the
//     strengths of horizontal boundaries in transposed coordinates, which
//     is the shape lattice.NewFromPair expects.
//
// Complexity: O(W·H) per call using running row sums; independent of r.
package edgefilter
