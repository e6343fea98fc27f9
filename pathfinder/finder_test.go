package pathfinder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlattice/grid"
	"github.com/katalvlaran/pathlattice/order"
	"github.com/katalvlaran/pathlattice/pathfinder"
)

// mustRows builds a strength grid from rows[y][x].
func mustRows(t testing.TB, rows [][]int) *grid.Int {
	t.Helper()
	g, err := grid.FromRows(rows)
	require.NoError(t, err)
	return g
}

// randomGrid returns a deterministic w×h grid with values in [0,maxV).
func randomGrid(t testing.TB, rng *rand.Rand, w, h, maxV int) *grid.Int {
	t.Helper()
	g, err := grid.NewInt(w, h)
	require.NoError(t, err)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			g.Put(x, y, rng.Intn(maxV))
		}
	}
	return g
}

// TestScenarioA_DPAndSelection reproduces the 3×2 reference case:
// row0=[2,9,2], row1=[2,2,9], G=1, gap=1, early stop, two paths.
func TestScenarioA_DPAndSelection(t *testing.T) {
	strengths := mustRows(t, [][]int{
		{2, 9, 2},
		{2, 2, 9},
	})
	f, err := pathfinder.New(strengths, pathfinder.Options{CoarseGridSize: 1, Gap: 1, StopBacktrackEarly: true})
	require.NoError(t, err)
	f.ComputePathStrengths()

	up, err := f.UpStrengths()
	require.NoError(t, err)
	assert.Equal(t, [][]int{{2, 9, 2}, {11, 11, 18}}, up.Rows())

	down, _ := f.DownStrengths()
	assert.Equal(t, [][]int{{0, 0, 0}, {0, 0, 0}}, down.Rows(), "H=2 never runs the downward loop")

	assert.Equal(t, 2, f.NumMaxima(), "columns 0 and 2 of row 1 are maxima")

	seeds, err := f.SelectPaths(2)
	require.NoError(t, err)
	assert.Equal(t, []order.SeedCandidate{
		{Column: 2, CoarseRow: 1, Strength: 18},
		{Column: 0, CoarseRow: 1, Strength: 11},
	}, seeds)

	assert.Equal(t, [][]bool{
		{false, true, false},
		{true, false, true},
	}, f.PathMap().Rows())
}

// TestScenarioA_EdgeDerivation checks the EdgeMap produced by the
// reference path map, including diagonal steps.
func TestScenarioA_EdgeDerivation(t *testing.T) {
	f, err := pathfinder.New(mustRows(t, [][]int{{2, 9, 2}, {2, 2, 9}}),
		pathfinder.Options{CoarseGridSize: 1, Gap: 1, StopBacktrackEarly: true})
	require.NoError(t, err)
	f.ComputePathStrengths()
	_, err = f.SelectPaths(2)
	require.NoError(t, err)

	em, _ := grid.NewEdgeMap(3, 2)
	require.NoError(t, f.UpdateEdgeMap(em))
	assert.Equal(t, [][]bool{
		{false, true, false},
		{true, false, true},
	}, em.Ver.Rows())
	assert.Equal(t, [][]bool{
		{false, false, false},
		{true, true, false},
	}, em.Hor.Rows(), "both diagonal steps from (1,0) close a horizontal edge")
}

// TestTieBreak_StraightMovesWin verifies predecessor ties on a flat row.
func TestTieBreak_StraightMovesWin(t *testing.T) {
	f, err := pathfinder.New(mustRows(t, [][]int{
		{5, 5, 5},
		{0, 0, 0},
	}), pathfinder.Options{CoarseGridSize: 1})
	require.NoError(t, err)
	f.ComputePathStrengths()

	pred, err := f.UpPredecessors()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, pred.Rows()[1])
}

// TestMaxima_PlateauKeepsLeftmost checks the asymmetric comparison on a
// run of equal strengths.
func TestMaxima_PlateauKeepsLeftmost(t *testing.T) {
	f, err := pathfinder.New(mustRows(t, [][]int{
		{0, 0, 0, 0},
		{1, 5, 5, 1},
	}), pathfinder.Options{CoarseGridSize: 1})
	require.NoError(t, err)
	f.ComputePathStrengths()

	for x, want := range []bool{false, true, false, false} {
		got, err := f.IsEligible(x, 1)
		require.NoError(t, err)
		assert.Equal(t, want, got, "column %d", x)
	}
}

// TestSelectPaths_GapSuppression shows that accepted seeds revoke nearby
// candidates on the same coarse row.
func TestSelectPaths_GapSuppression(t *testing.T) {
	strengths := mustRows(t, [][]int{
		{0, 0, 0, 0, 0, 0},
		{0, 9, 0, 8, 0, 7},
	})
	cases := []struct {
		gap  int
		want []int
	}{
		{gap: 2, want: []int{1, 3, 5}},
		{gap: 3, want: []int{1, 5}},
		{gap: 0, want: []int{1, 3, 5}},
	}
	for _, tc := range cases {
		f, err := pathfinder.New(strengths, pathfinder.Options{CoarseGridSize: 1, Gap: tc.gap, StopBacktrackEarly: true})
		require.NoError(t, err)
		f.ComputePathStrengths()
		seeds, err := f.MakeBestPaths()
		require.NoError(t, err)

		cols := make([]int, 0, len(seeds))
		for _, s := range seeds {
			cols = append(cols, s.Column)
		}
		assert.Equal(t, tc.want, cols, "gap=%d", tc.gap)
	}
}

// TestSelectPaths_Budget limits the number of accepted seeds and lets a
// later call continue the same selection run.
func TestSelectPaths_Budget(t *testing.T) {
	f, err := pathfinder.New(mustRows(t, [][]int{
		{0, 0, 0, 0, 0, 0},
		{0, 9, 0, 8, 0, 7},
	}), pathfinder.Options{CoarseGridSize: 1, Gap: 2})
	require.NoError(t, err)
	f.ComputePathStrengths()

	none, err := f.SelectPaths(0)
	require.NoError(t, err)
	assert.Empty(t, none)

	first, err := f.SelectPaths(1)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, first[0].Column)

	rest, err := f.SelectPaths(10)
	require.NoError(t, err)
	require.Len(t, rest, 2)
	assert.Equal(t, 3, rest[0].Column)
	assert.Equal(t, 5, rest[1].Column)
}

// TestBacktrack_StopEarly contrasts early stopping with full walks when a
// second path runs into a cell first reached by a downward walk.
//
// Grid (rows):
//
//	0 0 0
//	0 0 3
//	0 2 0
//	0 1 0
//
// Path A from (0,1) marks (0,0) (0,1) (1,2) (1,3). Path B from (2,3) steps
// up onto (1,2); continuing from there follows predUp to (2,1) and (2,0).
func TestBacktrack_StopEarly(t *testing.T) {
	strengths := mustRows(t, [][]int{
		{0, 0, 0},
		{0, 0, 3},
		{0, 2, 0},
		{0, 1, 0},
	})
	for _, tc := range []struct {
		stop  bool
		marks int
	}{
		{stop: true, marks: 5},
		{stop: false, marks: 7},
	} {
		f, err := pathfinder.New(strengths, pathfinder.Options{CoarseGridSize: 10, StopBacktrackEarly: tc.stop})
		require.NoError(t, err)
		f.ComputePathStrengths()

		require.NoError(t, f.Backtrack(0, 1))
		assert.Equal(t, [][]bool{
			{true, false, false},
			{true, false, false},
			{false, true, false},
			{false, true, false},
		}, f.PathMap().Rows())

		require.NoError(t, f.Backtrack(2, 3))
		pm := f.PathMap()
		assert.Equal(t, tc.marks, pm.Count(), "stop=%v", tc.stop)
		assert.Equal(t, !tc.stop, pm.Get(2, 1), "stop=%v", tc.stop)
		assert.Equal(t, !tc.stop, pm.Get(2, 0), "stop=%v", tc.stop)
	}
}

// TestBacktrackRange_PicksFirstStrongest verifies window seeding.
func TestBacktrackRange_PicksFirstStrongest(t *testing.T) {
	f, err := pathfinder.New(mustRows(t, [][]int{
		{0, 0, 0, 0},
		{0, 4, 4, 0},
	}), pathfinder.Options{CoarseGridSize: 5})
	require.NoError(t, err)
	f.ComputePathStrengths()

	require.NoError(t, f.BacktrackRange(0, 4, 1))
	on, err := f.OnPath(1, 1)
	require.NoError(t, err)
	assert.True(t, on)
	on, _ = f.OnPath(2, 1)
	assert.False(t, on)
}

// TestSingleColumn covers W=1, where every coarse row is a maximum.
func TestSingleColumn(t *testing.T) {
	f, err := pathfinder.New(mustRows(t, [][]int{{1}, {2}, {3}, {4}, {5}}),
		pathfinder.Options{CoarseGridSize: 2, Gap: 1, StopBacktrackEarly: true})
	require.NoError(t, err)
	assert.Equal(t, 3, f.CoarseHeight())
	f.ComputePathStrengths()

	combined, _ := f.PathStrengths()
	assert.Equal(t, [][]int{{1}, {15}, {15}, {15}, {15}}, combined.Rows())

	seeds, err := f.MakeBestPaths()
	require.NoError(t, err)
	assert.Equal(t, []order.SeedCandidate{{Column: 0, CoarseRow: 1, Strength: 15}}, seeds)
	assert.Equal(t, 5, f.PathMap().Count())
}

// TestInvariants_RandomGrids checks the DP invariants, predecessor steps,
// path-map monotonicity and gap suppression on random inputs.
func TestInvariants_RandomGrids(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 20; iter++ {
		w, h := 2+rng.Intn(12), 2+rng.Intn(12)
		strengths := randomGrid(t, rng, w, h, 50)
		opts := pathfinder.Options{CoarseGridSize: 1 + rng.Intn(3), Gap: rng.Intn(4), StopBacktrackEarly: rng.Intn(2) == 0}
		f, err := pathfinder.New(strengths, opts)
		require.NoError(t, err)
		f.ComputePathStrengths()

		up, _ := f.UpStrengths()
		down, _ := f.DownStrengths()
		combined, _ := f.PathStrengths()
		predUp, _ := f.UpPredecessors()
		predDown, _ := f.DownPredecessors()
		for x := 0; x < w; x++ {
			assert.Equal(t, strengths.Get(x, 0), up.Get(x, 0))
			assert.Zero(t, down.Get(x, 0))
			assert.Zero(t, down.Get(x, h-1))
			for y := 0; y < h; y++ {
				assert.Equal(t, up.Get(x, y)+down.Get(x, y), combined.Get(x, y))
				if y > 0 {
					assert.LessOrEqual(t, abs(predUp.Get(x, y)-x), 1)
				}
				if y < h-1 {
					assert.LessOrEqual(t, abs(predDown.Get(x, y)-x), 1)
				}
			}
		}

		prev := f.PathMap()
		var accepted []order.SeedCandidate
		for {
			seeds, err := f.SelectPaths(1)
			require.NoError(t, err)
			if len(seeds) == 0 {
				break
			}
			accepted = append(accepted, seeds...)
			cur := f.PathMap()
			for x := 0; x < w; x++ {
				for y := 0; y < h; y++ {
					if prev.Get(x, y) {
						assert.True(t, cur.Get(x, y), "path cell (%d,%d) was cleared", x, y)
					}
				}
			}
			prev = cur
		}

		for i, a := range accepted {
			for _, b := range accepted[i+1:] {
				if a.CoarseRow != b.CoarseRow {
					continue
				}
				inside := b.Column >= a.Column-opts.Gap && b.Column < a.Column+opts.Gap
				assert.False(t, inside, "seed %v selected inside the gap of %v", b, a)
			}
		}
	}
}

// TestTransposedEdgeMap verifies that the transposed export equals the
// plain export transposed.
func TestTransposedEdgeMap(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	strengths := randomGrid(t, rng, 9, 6, 30)
	f, err := pathfinder.New(strengths, pathfinder.Options{CoarseGridSize: 2, Gap: 2, StopBacktrackEarly: true})
	require.NoError(t, err)
	f.ComputePathStrengths()
	_, err = f.MakeBestPaths()
	require.NoError(t, err)

	plain, _ := grid.NewEdgeMap(9, 6)
	require.NoError(t, f.UpdateEdgeMap(plain))
	back, _ := grid.NewEdgeMap(6, 9)
	require.NoError(t, f.UpdateEdgeMapTransposed(back))

	want := plain.Transposed()
	assert.Equal(t, want.Ver.Rows(), back.Ver.Rows())
	assert.Equal(t, want.Hor.Rows(), back.Hor.Rows())
	assert.Equal(t, f.PathMapTransposed().Rows(), f.PathMap().Transpose().Rows())
}

// TestErrors covers configuration, initialisation and range failures.
func TestErrors(t *testing.T) {
	strengths := mustRows(t, [][]int{{1, 2}, {3, 4}})

	_, err := pathfinder.New(nil, pathfinder.DefaultOptions())
	assert.ErrorIs(t, err, pathfinder.ErrNilGrid)
	_, err = pathfinder.New(strengths, pathfinder.Options{CoarseGridSize: 0})
	assert.ErrorIs(t, err, pathfinder.ErrConfiguration)
	_, err = pathfinder.New(strengths, pathfinder.Options{CoarseGridSize: 1, Gap: -1})
	assert.ErrorIs(t, err, pathfinder.ErrConfiguration)
	_, err = pathfinder.New(mustRows(t, [][]int{{1, -2}}), pathfinder.DefaultOptions())
	assert.ErrorIs(t, err, pathfinder.ErrNegativeStrength)

	f, err := pathfinder.New(strengths, pathfinder.Options{CoarseGridSize: 1, Gap: 1})
	require.NoError(t, err)
	_, err = f.SelectPaths(1)
	assert.ErrorIs(t, err, pathfinder.ErrNotInitialized)
	assert.ErrorIs(t, f.Backtrack(0, 0), pathfinder.ErrNotInitialized)
	_, err = f.PathStrengths()
	assert.ErrorIs(t, err, pathfinder.ErrNotInitialized)
	em, _ := grid.NewEdgeMap(2, 2)
	assert.ErrorIs(t, f.UpdateEdgeMap(em), pathfinder.ErrNotInitialized)

	f.ComputePathStrengths()
	_, err = f.SelectPaths(-1)
	assert.ErrorIs(t, err, pathfinder.ErrConfiguration)
	assert.ErrorIs(t, f.Backtrack(2, 0), pathfinder.ErrOutOfRange)
	assert.ErrorIs(t, f.BacktrackRange(1, 1, 0), pathfinder.ErrOutOfRange)
	assert.ErrorIs(t, f.BacktrackRange(-1, 1, 0), pathfinder.ErrOutOfRange)
	assert.ErrorIs(t, f.Backtrack(0, 2), pathfinder.ErrOutOfRange)
	_, err = f.IsEligible(0, 5)
	assert.ErrorIs(t, err, pathfinder.ErrOutOfRange)
	_, err = f.OnPath(-1, 0)
	assert.ErrorIs(t, err, pathfinder.ErrOutOfRange)

	wrong, _ := grid.NewEdgeMap(3, 2)
	assert.ErrorIs(t, f.UpdateEdgeMap(wrong), pathfinder.ErrDimensionMismatch)
	assert.ErrorIs(t, f.UpdateEdgeMapTransposed(wrong), pathfinder.ErrDimensionMismatch)
}

// TestInputIsCopied ensures later mutation of the caller's grid has no effect.
func TestInputIsCopied(t *testing.T) {
	strengths := mustRows(t, [][]int{{1, 2}, {3, 4}})
	f, err := pathfinder.New(strengths, pathfinder.Options{CoarseGridSize: 1})
	require.NoError(t, err)
	strengths.Put(0, 0, 100)
	assert.Equal(t, 1, f.EdgeStrengths().Get(0, 0))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
