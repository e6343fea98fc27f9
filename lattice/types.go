package lattice

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathlattice/pathfinder"
)

// Sentinel errors for lattice construction.
var (
	// ErrNilGrid is returned when a strength grid is nil.
	ErrNilGrid = errors.New("lattice: strength grid is nil")

	// ErrDimensionMismatch is returned when the horizontal grid is not
	// shaped as the transpose of the vertical one.
	ErrDimensionMismatch = errors.New("lattice: grid dimensions do not match")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("lattice: invalid option supplied")
)

// Option configures a Lattice via functional arguments. Invalid options
// are recorded and surfaced as ErrOptionViolation by the constructor.
type Option func(*Options)

// Options holds the parameters shared by both engines.
type Options struct {
	// Finder is passed unchanged to the vertical and horizontal engines.
	Finder pathfinder.Options

	// Parallel runs the two engines concurrently during computation and
	// selection. Results do not depend on it.
	Parallel bool

	err error
}

// DefaultOptions returns pathfinder.DefaultOptions and sequential execution.
func DefaultOptions() Options {
	return Options{Finder: pathfinder.DefaultOptions()}
}

// WithFinderOptions sets the engine parameters.
func WithFinderOptions(fo pathfinder.Options) Option {
	return func(o *Options) {
		if err := fo.Validate(); err != nil {
			o.err = fmt.Errorf("%w: %w", ErrOptionViolation, err)
			return
		}
		o.Finder = fo
	}
}

// WithParallel toggles concurrent execution of the two engines.
func WithParallel(on bool) Option {
	return func(o *Options) {
		o.Parallel = on
	}
}

func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}
