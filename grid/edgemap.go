// SPDX-License-Identifier: MIT

package grid

// EdgeMap records region boundaries between 4-adjacent cells.
//
//   - Ver(x,y) is true iff a boundary lies immediately left of (x,y),
//     i.e. between (x-1,y) and (x,y).
//   - Hor(x,y) is true iff a boundary lies immediately above (x,y),
//     i.e. between (x,y-1) and (x,y).
//
// Ver(0,y) and Hor(x,0) describe the image border and are never consulted
// by the region filler.
type EdgeMap struct {
	Ver *Bool
	Hor *Bool
}

// NewEdgeMap returns a w×h EdgeMap with no boundaries.
func NewEdgeMap(w, h int) (*EdgeMap, error) {
	ver, err := NewBool(w, h)
	if err != nil {
		return nil, err
	}
	hor, _ := NewBool(w, h)

	return &EdgeMap{Ver: ver, Hor: hor}, nil
}

// Width returns the number of columns.
func (em *EdgeMap) Width() int { return em.Ver.w }

// Height returns the number of rows.
func (em *EdgeMap) Height() int { return em.Ver.h }

// Valid reports whether both layers exist and share one shape.
func (em *EdgeMap) Valid() bool {
	return em != nil && em.Ver != nil && em.Hor != nil &&
		em.Ver.w == em.Hor.w && em.Ver.h == em.Hor.h
}

// Or merges every boundary of o into em. Shapes must match.
func (em *EdgeMap) Or(o *EdgeMap) error {
	if !em.Valid() || !o.Valid() || em.Width() != o.Width() || em.Height() != o.Height() {
		return ErrDimensionMismatch
	}
	_ = em.Ver.Or(o.Ver)
	_ = em.Hor.Or(o.Hor)

	return nil
}

// Transposed returns the same boundaries expressed in transposed
// coordinates: a vertical boundary of the transposed grid is a horizontal
// boundary of the original and vice versa.
func (em *EdgeMap) Transposed() *EdgeMap {
	return &EdgeMap{Ver: em.Hor.Transpose(), Hor: em.Ver.Transpose()}
}

// Between reports whether a boundary separates the 4-adjacent cells
// (ax,ay) and (bx,by). Non-adjacent pairs report false.
func (em *EdgeMap) Between(ax, ay, bx, by int) bool {
	switch {
	case ay == by && bx == ax+1:
		return em.Ver.Get(bx, by)
	case ay == by && ax == bx+1:
		return em.Ver.Get(ax, ay)
	case ax == bx && by == ay+1:
		return em.Hor.Get(bx, by)
	case ax == bx && ay == by+1:
		return em.Hor.Get(ax, ay)
	}

	return false
}
