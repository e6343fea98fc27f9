package pathfinder

import (
	"fmt"

	"github.com/katalvlaran/pathlattice/grid"
)

// Finder owns every grid of one orientation: the immutable edge strengths
// and the path strength, predecessor, path and eligibility state derived
// from them.
type Finder struct {
	opts Options

	width, height int
	// coarseHeight counts scanlines y = j*G that fit in the grid, row 0
	// included even though it never hosts a seed.
	coarseHeight int

	edges *grid.Int

	up, down, combined *grid.Int
	// predUp(x,y) is the column at row y-1 on the best upward path through
	// (x,y); predDown(x,y) the column at row y+1 on the best downward one.
	predUp, predDown *grid.Int

	pathMap *grid.Bool
	// eligible(x,j) is true while (x, j*G) is a local maximum of combined
	// along its row that no accepted path has suppressed yet.
	eligible *grid.Bool

	computed bool
}

// New builds a Finder over a private copy of strengths.
//
// Errors:
//   - ErrNilGrid when strengths is nil.
//   - ErrConfiguration when opts fail Validate.
//   - ErrNegativeStrength when any strength is below zero.
func New(strengths *grid.Int, opts Options) (*Finder, error) {
	if strengths == nil {
		return nil, ErrNilGrid
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if strengths.Min() < 0 {
		return nil, ErrNegativeStrength
	}

	w, h := strengths.Width(), strengths.Height()
	f := &Finder{
		opts:         opts,
		width:        w,
		height:       h,
		coarseHeight: (h-1)/opts.CoarseGridSize + 1,
		edges:        strengths.Clone(),
	}
	// Shapes are already known to be positive, so allocation cannot fail.
	f.up, _ = grid.NewInt(w, h)
	f.down, _ = grid.NewInt(w, h)
	f.combined, _ = grid.NewInt(w, h)
	f.predUp, _ = grid.NewInt(w, h)
	f.predDown, _ = grid.NewInt(w, h)
	f.pathMap, _ = grid.NewBool(w, h)
	f.eligible, _ = grid.NewBool(w, f.coarseHeight)

	return f, nil
}

// Options returns the configuration the Finder was built with.
func (f *Finder) Options() Options { return f.opts }

// Width returns the number of columns.
func (f *Finder) Width() int { return f.width }

// Height returns the number of rows.
func (f *Finder) Height() int { return f.height }

// CoarseHeight returns the number of coarse scanlines, ⌈(H−1)/G⌉ + 1.
func (f *Finder) CoarseHeight() int { return f.coarseHeight }

// Computed reports whether ComputePathStrengths has run.
func (f *Finder) Computed() bool { return f.computed }

// EdgeStrengths returns a copy of the input grid.
func (f *Finder) EdgeStrengths() *grid.Int { return f.edges.Clone() }

// UpStrengths returns a copy of the upward path strengths.
func (f *Finder) UpStrengths() (*grid.Int, error) { return f.snapshot(f.up) }

// DownStrengths returns a copy of the downward path strengths.
func (f *Finder) DownStrengths() (*grid.Int, error) { return f.snapshot(f.down) }

// PathStrengths returns a copy of up+down, the strength of the best path
// through each cell.
func (f *Finder) PathStrengths() (*grid.Int, error) { return f.snapshot(f.combined) }

// UpPredecessors returns a copy of the upward predecessor columns.
func (f *Finder) UpPredecessors() (*grid.Int, error) { return f.snapshot(f.predUp) }

// DownPredecessors returns a copy of the downward predecessor columns.
func (f *Finder) DownPredecessors() (*grid.Int, error) { return f.snapshot(f.predDown) }

func (f *Finder) snapshot(g *grid.Int) (*grid.Int, error) {
	if !f.computed {
		return nil, ErrNotInitialized
	}

	return g.Clone(), nil
}

// PathMap returns a copy of the cells marked as lying on a path.
func (f *Finder) PathMap() *grid.Bool { return f.pathMap.Clone() }

// PathMapTransposed returns the transpose of PathMap.
func (f *Finder) PathMapTransposed() *grid.Bool { return f.pathMap.Transpose() }

// OnPath reports whether (x,y) lies on a selected path.
func (f *Finder) OnPath(x, y int) (bool, error) {
	v, err := f.pathMap.At(x, y)
	if err != nil {
		return false, fmt.Errorf("OnPath: %w", ErrOutOfRange)
	}

	return v, nil
}

// IsEligible reports whether column x of coarse row j still hosts a seed
// candidate.
func (f *Finder) IsEligible(x, j int) (bool, error) {
	v, err := f.eligible.At(x, j)
	if err != nil {
		return false, fmt.Errorf("IsEligible(%d,%d): %w", x, j, ErrOutOfRange)
	}

	return v, nil
}

// NumMaxima returns how many seed candidates remain eligible.
func (f *Finder) NumMaxima() int { return f.eligible.Count() }
