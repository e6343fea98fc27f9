package region

import (
	"fmt"

	"github.com/katalvlaran/pathlattice/grid"
	"github.com/katalvlaran/pathlattice/order"
)

// neighborSteps lists the 4-neighbours in visiting order: up, down, left, right.
var neighborSteps = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Filler turns an EdgeMap into a region label grid.
type Filler struct {
	width, height int
	edges         *grid.EdgeMap

	labels   *grid.Int
	count    int
	computed bool
}

// New builds a Filler for a w×h grid bounded by a copy of em.
func New(w, h int, em *grid.EdgeMap) (*Filler, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrBadShape
	}
	if !em.Valid() || em.Width() != w || em.Height() != h {
		return nil, fmt.Errorf("New(%d,%d): %w", w, h, ErrDimensionMismatch)
	}
	labels, err := grid.NewInt(w, h)
	if err != nil {
		return nil, err
	}

	return &Filler{
		width:  w,
		height: h,
		edges:  &grid.EdgeMap{Ver: em.Ver.Clone(), Hor: em.Hor.Clone()},
		labels: labels,
	}, nil
}

// FromEdgeMap builds a Filler sized after em.
func FromEdgeMap(em *grid.EdgeMap) (*Filler, error) {
	if !em.Valid() {
		return nil, ErrDimensionMismatch
	}

	return New(em.Width(), em.Height(), em)
}

// Width returns the number of columns.
func (f *Filler) Width() int { return f.width }

// Height returns the number of rows.
func (f *Filler) Height() int { return f.height }

// Compute labels every cell. Calling it again recomputes from scratch.
//
// Algorithm:
//  1. The global frontier starts as {(0,0)}. Its smallest location seeds a
//     new region with the next id.
//  2. A local fill pops the smallest pending location of the region,
//     labels it and drops it from the global frontier. Each unlabelled
//     neighbour joins the local frontier if no boundary separates them
//     (leaving the global one), or the global frontier otherwise.
//  3. Repeat until the global frontier is empty.
//
// A location is removed from the global frontier as soon as it is
// labelled, so no cell is ever relabelled and the result is a partition.
func (f *Filler) Compute() {
	f.labels.Fill(Unassigned)
	f.count = 0

	global := order.NewSet(order.CompareLocations)
	local := order.NewSet(order.CompareLocations)
	global.Add(order.GridLocation{})

	for global.Len() > 0 {
		seed, _ := global.PopMin()
		if f.labels.Get(seed.X, seed.Y) != Unassigned {
			continue
		}
		f.fill(seed, f.count, local, global)
		f.count++
	}
	f.computed = true
}

func (f *Filler) fill(seed order.GridLocation, id int, local, global *order.Set[order.GridLocation]) {
	local.Clear()
	local.Add(seed)
	for local.Len() > 0 {
		p, _ := local.PopMin()
		global.Remove(p)
		f.labels.Put(p.X, p.Y, id)

		for _, d := range neighborSteps {
			q := order.GridLocation{X: p.X + d[0], Y: p.Y + d[1]}
			if !f.labels.InBounds(q.X, q.Y) || f.labels.Get(q.X, q.Y) != Unassigned {
				continue
			}
			if f.edges.Between(p.X, p.Y, q.X, q.Y) {
				global.Add(q)
				continue
			}
			local.Add(q)
			global.Remove(q)
		}
	}
}

// Computed reports whether Compute has run.
func (f *Filler) Computed() bool { return f.computed }

// Labels returns a copy of the label grid.
func (f *Filler) Labels() (*grid.Int, error) {
	if !f.computed {
		return nil, ErrNotComputed
	}

	return f.labels.Clone(), nil
}

// Label returns the region id of (x,y).
func (f *Filler) Label(x, y int) (int, error) {
	if !f.computed {
		return Unassigned, ErrNotComputed
	}
	v, err := f.labels.At(x, y)
	if err != nil {
		return Unassigned, fmt.Errorf("Label(%d,%d): %w", x, y, ErrOutOfRange)
	}

	return v, nil
}

// Count returns the number of regions.
func (f *Filler) Count() (int, error) {
	if !f.computed {
		return 0, ErrNotComputed
	}

	return f.count, nil
}

// Sizes returns the number of cells of each region, indexed by id.
func (f *Filler) Sizes() ([]int, error) {
	if !f.computed {
		return nil, ErrNotComputed
	}
	sizes := make([]int, f.count)
	for x := 0; x < f.width; x++ {
		for y := 0; y < f.height; y++ {
			sizes[f.labels.Get(x, y)]++
		}
	}

	return sizes, nil
}

// Members returns the cells of region id in row-major order.
func (f *Filler) Members(id int) ([]order.GridLocation, error) {
	if !f.computed {
		return nil, ErrNotComputed
	}
	if id < 0 || id >= f.count {
		return nil, fmt.Errorf("Members(%d): %w", id, ErrOutOfRange)
	}
	var out []order.GridLocation
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			if f.labels.Get(x, y) == id {
				out = append(out, order.GridLocation{X: x, Y: y})
			}
		}
	}

	return out, nil
}
