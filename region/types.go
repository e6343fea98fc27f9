package region

import "errors"

// Unassigned marks a cell that has not been labelled yet.
const Unassigned = -1

// Sentinel errors for region operations.
var (
	// ErrBadShape indicates a non-positive width or height.
	ErrBadShape = errors.New("region: width and height must be positive")

	// ErrDimensionMismatch indicates an EdgeMap or image whose size differs
	// from the Filler's.
	ErrDimensionMismatch = errors.New("region: dimension mismatch")

	// ErrNotComputed indicates an accessor called before Compute.
	ErrNotComputed = errors.New("region: labels not computed")

	// ErrOutOfRange indicates a coordinate outside the grid.
	ErrOutOfRange = errors.New("region: coordinate out of range")
)

// Summary describes the distribution of region sizes, in cells.
// StdDevSize is the sample standard deviation and is 0 for a single region.
type Summary struct {
	Regions    int
	MeanSize   float64
	StdDevSize float64
	MinSize    int
	MaxSize    int
}
