// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "grid: ". Wrap with gridErrorf at the
// detection site; callers match with errors.Is.
var (
	// ErrBadShape is returned when a requested shape is not strictly positive.
	ErrBadShape = errors.New("grid: width and height must be > 0")

	// ErrNonRectangular indicates nested input slices of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrOutOfRange indicates a coordinate outside [0,W)×[0,H).
	ErrOutOfRange = errors.New("grid: coordinate out of range")

	// ErrDimensionMismatch indicates operands with incompatible shapes.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")
)

// gridErrorf attaches the method name and coordinates to a sentinel.
func gridErrorf(method string, x, y int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", method, x, y, err)
}
