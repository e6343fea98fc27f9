package pathfinder

import "github.com/katalvlaran/pathlattice/grid"

// UpdateEdgeMap ORs this Finder's boundaries into em (same shape as the
// Finder's grid).
//
// Every path cell (x,y) is a boundary left of (x,y). Where the path steps
// diagonally to (x±1, y+1), the horizontal boundary between the two rows is
// added too, so diagonal steps still close regions.
func (f *Finder) UpdateEdgeMap(em *grid.EdgeMap) error {
	if !f.computed {
		return ErrNotInitialized
	}
	if !em.Valid() || em.Width() != f.width || em.Height() != f.height {
		return ErrDimensionMismatch
	}
	f.contribute(em, false)

	return nil
}

// UpdateEdgeMapTransposed is UpdateEdgeMap for a Finder that ran on the
// transposed grid: em has the original (untransposed) shape, H×W from the
// Finder's point of view, and receives the boundaries transposed back.
func (f *Finder) UpdateEdgeMapTransposed(em *grid.EdgeMap) error {
	if !f.computed {
		return ErrNotInitialized
	}
	if !em.Valid() || em.Width() != f.height || em.Height() != f.width {
		return ErrDimensionMismatch
	}
	f.contribute(em, true)

	return nil
}

// contribute writes boundaries in Finder coordinates; when transposed,
// each write lands at the swapped coordinate of the swapped layer.
func (f *Finder) contribute(em *grid.EdgeMap, transposed bool) {
	ver, hor := em.Ver, em.Hor
	mark := func(g *grid.Bool, x, y int) { g.Put(x, y, true) }
	if transposed {
		ver, hor = em.Hor, em.Ver
		mark = func(g *grid.Bool, x, y int) { g.Put(y, x, true) }
	}

	for x := 0; x < f.width; x++ {
		for y := 0; y < f.height; y++ {
			if !f.pathMap.Get(x, y) {
				continue
			}
			mark(ver, x, y)
			if y == f.height-1 {
				continue
			}
			if x > 0 && f.pathMap.Get(x-1, y+1) {
				mark(hor, x-1, y+1)
			}
			if x < f.width-1 && f.pathMap.Get(x+1, y+1) {
				mark(hor, x, y+1)
			}
		}
	}
}
