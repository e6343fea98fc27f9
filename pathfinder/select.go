package pathfinder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathlattice/order"
)

// MakeBestPaths selects every seed the spacing heuristic allows.
func (f *Finder) MakeBestPaths() ([]order.SeedCandidate, error) {
	return f.SelectPaths(math.MaxInt)
}

// SelectPaths greedily accepts up to maxCount seeds and backtracks a path
// from each one.
//
// Behavior:
//  1. Collect every eligible (column, coarse row) as a SeedCandidate whose
//     strength is combined(column, coarseRow*G).
//  2. Visit candidates in order.CompareSeeds order. A candidate whose
//     eligibility was revoked by an earlier path is skipped; otherwise it
//     is accepted and its path is traced with BacktrackRange.
//
// Returns the accepted candidates in acceptance order.
//
// Errors:
//   - ErrNotInitialized before ComputePathStrengths.
//   - ErrConfiguration when maxCount < 0.
func (f *Finder) SelectPaths(maxCount int) ([]order.SeedCandidate, error) {
	if !f.computed {
		return nil, ErrNotInitialized
	}
	if maxCount < 0 {
		return nil, fmt.Errorf("SelectPaths(%d): %w", maxCount, ErrConfiguration)
	}

	candidates := order.NewSet(order.CompareSeeds)
	for j := 1; j < f.coarseHeight; j++ {
		y := j * f.opts.CoarseGridSize
		for x := 0; x < f.width; x++ {
			if f.eligible.Get(x, j) {
				candidates.Add(order.SeedCandidate{Column: x, CoarseRow: j, Strength: f.combined.Get(x, y)})
			}
		}
	}

	chosen := make([]order.SeedCandidate, 0)
	candidates.Ascend(func(c order.SeedCandidate) bool {
		if !f.eligible.Get(c.Column, c.CoarseRow) {
			return true
		}
		if len(chosen) >= maxCount {
			return false
		}
		chosen = append(chosen, c)
		f.backtrack(c.Column, c.Column+1, c.CoarseRow*f.opts.CoarseGridSize)
		return true
	})

	return chosen, nil
}

// Backtrack traces the strongest path through (x,y).
func (f *Finder) Backtrack(x, y int) error {
	return f.BacktrackRange(x, x+1, y)
}

// BacktrackRange traces the strongest path through the strongest cell of
// row y with column in [xMin, xMax). The first cell of maximal strength
// wins.
//
// Errors:
//   - ErrNotInitialized before ComputePathStrengths.
//   - ErrOutOfRange when the window is empty or leaves [0,W), or y is
//     outside [0,H).
func (f *Finder) BacktrackRange(xMin, xMax, y int) error {
	if !f.computed {
		return ErrNotInitialized
	}
	if xMin < 0 || xMax > f.width || xMin >= xMax || y < 0 || y >= f.height {
		return fmt.Errorf("BacktrackRange(%d,%d,%d): %w", xMin, xMax, y, ErrOutOfRange)
	}
	f.backtrack(xMin, xMax, y)

	return nil
}

func (f *Finder) backtrack(xMin, xMax, y int) {
	best, seed := -1, -1
	for x := xMin; x < xMax; x++ {
		if v := f.combined.Get(x, y); v > best {
			best, seed = v, x
		}
	}
	f.extend(seed, y)
	f.walkUp(seed, y)
	f.walkDown(seed, y)
}

// walkUp follows predUp from row y to row 0.
func (f *Finder) walkUp(x, y int) {
	prev := x
	for ; y > 0; y-- {
		next := f.predUp.Get(prev, y)
		if !f.extend(next, y-1) && f.opts.StopBacktrackEarly {
			break
		}
		prev = next
	}
}

// walkDown follows predDown from row y to row H-1.
func (f *Finder) walkDown(x, y int) {
	prev := x
	for ; y < f.height-1; y++ {
		next := f.predDown.Get(prev, y)
		if !f.extend(next, y+1) && f.opts.StopBacktrackEarly {
			break
		}
		prev = next
	}
}

// extend marks (x,y) as lying on a path and reports whether it was newly
// marked. Marking a cell on a coarse row suppresses nearby candidates.
func (f *Finder) extend(x, y int) bool {
	if f.pathMap.Get(x, y) {
		return false
	}
	f.pathMap.Put(x, y, true)
	if y%f.opts.CoarseGridSize == 0 {
		f.suppress(x, y/f.opts.CoarseGridSize)
	}

	return true
}

// suppress revokes eligibility for columns [x-gap, x+gap) of coarse row j,
// clamped to the grid.
func (f *Finder) suppress(x, j int) {
	lo := max(0, x-f.opts.Gap)
	hi := min(f.width, x+f.opts.Gap)
	for i := lo; i < hi; i++ {
		f.eligible.Put(i, j, false)
	}
}
