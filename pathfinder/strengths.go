package pathfinder

import "github.com/katalvlaran/pathlattice/grid"

// ComputePathStrengths runs both DP passes, combines them and marks the
// local maxima of every coarse scanline. The path map and eligibility
// grid are reset first, so calling it again starts a fresh selection run.
//
// Algorithm Outline:
//  1. up(x,0) = e(x,0); up(x,y) = max_k up(k,y-1) + e(x,y), k ∈ {x-1,x,x+1}.
//  2. down(x,H-1) = 0; for y = H-2 … 1:
//     down(x,y) = down(k*,y+1) + e(k*,y+1) where k* maximises down(k,y+1).
//     down(x,0) is never computed and stays 0.
//  3. combined = up + down.
//  4. mark local maxima of combined on rows j*G, j ≥ 1.
//
// Complexity: O(W·H) time, no allocation.
func (f *Finder) ComputePathStrengths() {
	f.pathMap.Clear()
	f.eligible.Clear()
	f.computeUp()
	f.computeDown()
	f.computeCombined()
	f.computeMaxima()
	f.computed = true
}

// bestNeighbor picks the predecessor column for column x among
// {x-1, x, x+1} ∩ [0,W) on the given row of g.
//
// Ties:
//   - interior columns prefer the straight move k == x;
//   - the leftmost column scans k = 0,1 with a strict comparison, so a tie
//     keeps k = 0;
//   - the rightmost column scans k = W-2, W-1 with a non-strict
//     comparison, so a tie moves on to k = W-1.
//
// Both boundary rules therefore also favour the straight move.
func bestNeighbor(g *grid.Int, x, row, width int) int {
	if width == 1 {
		return 0
	}
	best, arg := -1, -1
	switch x {
	case 0:
		for k := 0; k <= 1; k++ {
			if v := g.Get(k, row); best < v {
				best, arg = v, k
			}
		}
	case width - 1:
		for k := width - 2; k <= width-1; k++ {
			if v := g.Get(k, row); best <= v {
				best, arg = v, k
			}
		}
	default:
		for k := x - 1; k <= x+1; k++ {
			if v := g.Get(k, row); best < v || (best == v && k == x) {
				best, arg = v, k
			}
		}
	}

	return arg
}

func (f *Finder) computeUp() {
	for x := 0; x < f.width; x++ {
		f.up.Put(x, 0, f.edges.Get(x, 0))
		f.predUp.Put(x, 0, 0)
	}
	for y := 1; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			k := bestNeighbor(f.up, x, y-1, f.width)
			f.predUp.Put(x, y, k)
			f.up.Put(x, y, f.up.Get(k, y-1)+f.edges.Get(x, y))
		}
	}
}

// computeDown excludes each start cell from its own downward path: the
// strength added at row y is that of the chosen neighbour at row y+1.
// down(x,0) keeps its zero default; predDown(x,0) is still chosen from
// row 1 so that a path seeded by hand on row 0 walks down in unit steps.
func (f *Finder) computeDown() {
	for x := 0; x < f.width; x++ {
		for y := 0; y < f.height; y++ {
			f.down.Put(x, y, 0)
			f.predDown.Put(x, y, 0)
		}
	}
	for y := f.height - 2; y > 0; y-- {
		for x := 0; x < f.width; x++ {
			k := bestNeighbor(f.down, x, y+1, f.width)
			f.predDown.Put(x, y, k)
			f.down.Put(x, y, f.down.Get(k, y+1)+f.edges.Get(k, y+1))
		}
	}
	if f.height > 1 {
		for x := 0; x < f.width; x++ {
			f.predDown.Put(x, 0, bestNeighbor(f.down, x, 1, f.width))
		}
	}
}

func (f *Finder) computeCombined() {
	for x := 0; x < f.width; x++ {
		for y := 0; y < f.height; y++ {
			f.combined.Put(x, y, f.up.Get(x, y)+f.down.Get(x, y))
		}
	}
}

// computeMaxima marks, on every coarse row j ≥ 1, the columns whose
// combined strength is a local maximum along the row:
//
//   - leftmost:  c(0) ≥ c(1)
//   - interior:  c(x) > c(x-1) and c(x) ≥ c(x+1)
//   - rightmost: c(W-1) > c(W-2)
//
// Within a plateau of equal strengths only its leftmost cell qualifies.
// A single-column grid has no neighbours and its column always qualifies.
func (f *Finder) computeMaxima() {
	w := f.width
	for j := 1; j < f.coarseHeight; j++ {
		y := j * f.opts.CoarseGridSize
		if w == 1 {
			f.eligible.Put(0, j, true)
			continue
		}
		c := func(x int) int { return f.combined.Get(x, y) }
		if c(0) >= c(1) {
			f.eligible.Put(0, j, true)
		}
		for x := 1; x < w-1; x++ {
			if c(x) > c(x-1) && c(x) >= c(x+1) {
				f.eligible.Put(x, j, true)
			}
		}
		if c(w-1) > c(w-2) {
			f.eligible.Put(w-1, j, true)
		}
	}
}
