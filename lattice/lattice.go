package lattice

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/pathlattice/grid"
	"github.com/katalvlaran/pathlattice/order"
	"github.com/katalvlaran/pathlattice/pathfinder"
)

// Lattice owns the vertical engine (grid as given) and the horizontal
// engine (transposed grid). The engines share no state.
type Lattice struct {
	width, height int
	opts          Options

	vertical   *pathfinder.Finder
	horizontal *pathfinder.Finder
}

// New builds a Lattice whose horizontal engine runs on the transpose of
// strengths.
func New(strengths *grid.Int, opts ...Option) (*Lattice, error) {
	if strengths == nil {
		return nil, ErrNilGrid
	}

	return NewFromPair(strengths, strengths.Transpose(), opts...)
}

// NewFromPair builds a Lattice from two separately computed grids:
// vertical is W×H in image coordinates, horizontalT is H×W and holds the
// strengths of horizontal boundaries in transposed coordinates.
//
// Errors: ErrNilGrid, ErrDimensionMismatch, ErrOptionViolation, or a
// wrapped pathfinder error (for example ErrNegativeStrength).
func NewFromPair(vertical, horizontalT *grid.Int, opts ...Option) (*Lattice, error) {
	if vertical == nil || horizontalT == nil {
		return nil, ErrNilGrid
	}
	if horizontalT.Width() != vertical.Height() || horizontalT.Height() != vertical.Width() {
		return nil, fmt.Errorf("NewFromPair: vertical %dx%d, horizontal %dx%d: %w",
			vertical.Width(), vertical.Height(), horizontalT.Width(), horizontalT.Height(), ErrDimensionMismatch)
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	v, err := pathfinder.New(vertical, o.Finder)
	if err != nil {
		return nil, fmt.Errorf("vertical engine: %w", err)
	}
	h, err := pathfinder.New(horizontalT, o.Finder)
	if err != nil {
		return nil, fmt.Errorf("horizontal engine: %w", err)
	}

	return &Lattice{
		width:      vertical.Width(),
		height:     vertical.Height(),
		opts:       o,
		vertical:   v,
		horizontal: h,
	}, nil
}

// Width returns the image width.
func (l *Lattice) Width() int { return l.width }

// Height returns the image height.
func (l *Lattice) Height() int { return l.height }

// Options returns the effective configuration.
func (l *Lattice) Options() Options { return l.opts }

// Vertical exposes the engine over the grid as given.
func (l *Lattice) Vertical() *pathfinder.Finder { return l.vertical }

// Horizontal exposes the engine over the transposed grid. Its coordinates
// are transposed.
func (l *Lattice) Horizontal() *pathfinder.Finder { return l.horizontal }

// both runs fn on the vertical then the horizontal engine, concurrently
// when Parallel is set. The vertical error wins when both fail.
func (l *Lattice) both(fn func(f *pathfinder.Finder) error) error {
	if !l.opts.Parallel {
		if err := fn(l.vertical); err != nil {
			return err
		}
		return fn(l.horizontal)
	}

	var (
		wg         sync.WaitGroup
		errV, errH error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		errV = fn(l.vertical)
	}()
	go func() {
		defer wg.Done()
		errH = fn(l.horizontal)
	}()
	wg.Wait()
	if errV != nil {
		return errV
	}

	return errH
}

// ComputePathStrengths runs the DP passes of both engines and resets any
// previous selection.
func (l *Lattice) ComputePathStrengths() {
	_ = l.both(func(f *pathfinder.Finder) error {
		f.ComputePathStrengths()
		return nil
	})
}

// MakeBestPaths selects every seed both engines allow.
func (l *Lattice) MakeBestPaths() ([]order.GridLocation, error) {
	return l.SelectPaths(math.MaxInt)
}

// SelectPaths accepts up to n seeds per orientation and returns their
// locations in image coordinates: vertical seeds first, in acceptance
// order, then horizontal ones.
//
// A vertical seed (column c, coarse row j) lies at (c, j*G); a horizontal
// seed found at (c, j) in transposed coordinates lies at (j*G, c).
func (l *Lattice) SelectPaths(n int) ([]order.GridLocation, error) {
	var vSeeds, hSeeds []order.SeedCandidate
	err := l.both(func(f *pathfinder.Finder) error {
		seeds, err := f.SelectPaths(n)
		if f == l.vertical {
			vSeeds = seeds
		} else {
			hSeeds = seeds
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	g := l.opts.Finder.CoarseGridSize
	out := make([]order.GridLocation, 0, len(vSeeds)+len(hSeeds))
	for _, s := range vSeeds {
		out = append(out, order.GridLocation{X: s.Column, Y: s.CoarseRow * g})
	}
	for _, s := range hSeeds {
		out = append(out, order.GridLocation{X: s.CoarseRow * g, Y: s.Column})
	}

	return out, nil
}

// MakeVerticalPath traces the strongest vertical path through (x,y).
func (l *Lattice) MakeVerticalPath(x, y int) error {
	return l.vertical.Backtrack(x, y)
}

// MakeVerticalPathRange traces the strongest vertical path through the
// strongest cell of row y in columns [xMin,xMax).
func (l *Lattice) MakeVerticalPathRange(xMin, xMax, y int) error {
	return l.vertical.BacktrackRange(xMin, xMax, y)
}

// MakeHorizontalPath traces the strongest horizontal path through (x,y).
func (l *Lattice) MakeHorizontalPath(x, y int) error {
	return l.horizontal.Backtrack(y, x)
}

// MakeHorizontalPathRange traces the strongest horizontal path through
// the strongest cell of column x in rows [yMin,yMax).
func (l *Lattice) MakeHorizontalPathRange(x, yMin, yMax int) error {
	return l.horizontal.BacktrackRange(yMin, yMax, x)
}

// EdgeMap returns the boundaries of both orientations merged in image
// coordinates.
func (l *Lattice) EdgeMap() (*grid.EdgeMap, error) {
	em, err := grid.NewEdgeMap(l.width, l.height)
	if err != nil {
		return nil, err
	}
	if err = l.vertical.UpdateEdgeMap(em); err != nil {
		return nil, fmt.Errorf("vertical engine: %w", err)
	}
	if err = l.horizontal.UpdateEdgeMapTransposed(em); err != nil {
		return nil, fmt.Errorf("horizontal engine: %w", err)
	}

	return em, nil
}

// VerticalPaths returns the cells on vertical paths.
func (l *Lattice) VerticalPaths() *grid.Bool { return l.vertical.PathMap() }

// HorizontalPaths returns the cells on horizontal paths in image
// coordinates.
func (l *Lattice) HorizontalPaths() *grid.Bool { return l.horizontal.PathMapTransposed() }

// Edges returns the cells lying on any path.
func (l *Lattice) Edges() *grid.Bool {
	out := l.vertical.PathMap()
	_ = out.Or(l.horizontal.PathMapTransposed())

	return out
}
