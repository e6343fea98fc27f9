package pathfinder

import (
	"errors"
	"fmt"
)

// Sentinel errors. Match with errors.Is.
var (
	// ErrConfiguration indicates invalid Options or arguments.
	ErrConfiguration = errors.New("pathfinder: invalid configuration")

	// ErrNilGrid indicates a nil strength grid was supplied.
	ErrNilGrid = errors.New("pathfinder: strength grid is nil")

	// ErrNegativeStrength indicates an edge strength below zero.
	ErrNegativeStrength = errors.New("pathfinder: edge strengths must be non-negative")

	// ErrNotInitialized indicates selection, backtracking or edge export
	// before ComputePathStrengths.
	ErrNotInitialized = errors.New("pathfinder: path strengths not computed")

	// ErrOutOfRange indicates a seed window or row outside the grid.
	ErrOutOfRange = errors.New("pathfinder: coordinate out of range")

	// ErrDimensionMismatch indicates an EdgeMap of the wrong shape.
	ErrDimensionMismatch = errors.New("pathfinder: edge map dimension mismatch")
)

// Options configures a Finder.
//
// Fields:
//   - CoarseGridSize (G): only rows y = j*G, j ≥ 1, host seed candidates.
//     Must be > 0.
//   - Gap: accepting a path through (x, j*G) removes candidates with
//     columns in [x-Gap, x+Gap) on that coarse row. Must be ≥ 0.
//   - StopBacktrackEarly: stop walking a path as soon as it runs into a
//     cell that already lies on a path.
type Options struct {
	CoarseGridSize     int
	Gap                int
	StopBacktrackEarly bool
}

// DefaultOptions returns Gap=20, CoarseGridSize=2*Gap and early stopping.
func DefaultOptions() Options {
	return Options{
		CoarseGridSize:     40,
		Gap:                20,
		StopBacktrackEarly: true,
	}
}

// Validate reports ErrConfiguration for G <= 0 or Gap < 0.
func (o Options) Validate() error {
	if o.CoarseGridSize <= 0 {
		return fmt.Errorf("CoarseGridSize=%d: %w", o.CoarseGridSize, ErrConfiguration)
	}
	if o.Gap < 0 {
		return fmt.Errorf("Gap=%d: %w", o.Gap, ErrConfiguration)
	}

	return nil
}
