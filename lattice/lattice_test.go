package lattice_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlattice/grid"
	"github.com/katalvlaran/pathlattice/lattice"
	"github.com/katalvlaran/pathlattice/order"
	"github.com/katalvlaran/pathlattice/pathfinder"
	"github.com/katalvlaran/pathlattice/region"
)

var tiny = pathfinder.Options{CoarseGridSize: 1, Gap: 1, StopBacktrackEarly: true}

func scenarioGrid(t testing.TB) *grid.Int {
	t.Helper()
	g, err := grid.FromRows([][]int{
		{2, 9, 2},
		{2, 2, 9},
	})
	require.NoError(t, err)
	return g
}

func randomGrid(t testing.TB, rng *rand.Rand, w, h int) *grid.Int {
	t.Helper()
	g, err := grid.NewInt(w, h)
	require.NoError(t, err)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			g.Put(x, y, rng.Intn(64))
		}
	}
	return g
}

// TestSelectPaths_SeedMapping checks both orientations on the 3×2 grid.
// The horizontal engine sees rows [2 2] [9 2] [2 9] and accepts a single
// seed at column 1 of coarse row 2, i.e. image location (2,1).
func TestSelectPaths_SeedMapping(t *testing.T) {
	l, err := lattice.New(scenarioGrid(t), lattice.WithFinderOptions(tiny))
	require.NoError(t, err)
	l.ComputePathStrengths()

	seeds, err := l.SelectPaths(2)
	require.NoError(t, err)
	assert.Equal(t, []order.GridLocation{{X: 2, Y: 1}, {X: 0, Y: 1}, {X: 2, Y: 1}}, seeds)

	assert.Equal(t, [][]bool{{false, true, false}, {true, false, true}}, l.VerticalPaths().Rows())
	assert.Equal(t, [][]bool{{true, true, false}, {false, false, true}}, l.HorizontalPaths().Rows())
	assert.Equal(t, [][]bool{{true, true, false}, {true, false, true}}, l.Edges().Rows())
}

// TestEdgeMap_MergedAndFilled merges both contributions and labels them.
func TestEdgeMap_MergedAndFilled(t *testing.T) {
	l, err := lattice.New(scenarioGrid(t), lattice.WithFinderOptions(tiny))
	require.NoError(t, err)
	l.ComputePathStrengths()
	_, err = l.SelectPaths(2)
	require.NoError(t, err)

	em, err := l.EdgeMap()
	require.NoError(t, err)
	assert.Equal(t, [][]bool{{false, true, true}, {true, false, true}}, em.Ver.Rows())
	assert.Equal(t, [][]bool{{true, true, false}, {true, true, true}}, em.Hor.Rows())

	f, err := region.FromEdgeMap(em)
	require.NoError(t, err)
	f.Compute()
	labels, _ := f.Labels()
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 3, 4}}, labels.Rows())
}

// TestParallelMatchesSequential: concurrency must not change any output.
func TestParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	strengths := randomGrid(t, rng, 40, 30)
	fo := pathfinder.Options{CoarseGridSize: 5, Gap: 4, StopBacktrackEarly: true}

	run := func(parallel bool) ([]order.GridLocation, *grid.EdgeMap) {
		l, err := lattice.New(strengths, lattice.WithFinderOptions(fo), lattice.WithParallel(parallel))
		require.NoError(t, err)
		assert.Equal(t, parallel, l.Options().Parallel)
		l.ComputePathStrengths()
		seeds, err := l.MakeBestPaths()
		require.NoError(t, err)
		em, err := l.EdgeMap()
		require.NoError(t, err)
		return seeds, em
	}

	seqSeeds, seqEM := run(false)
	parSeeds, parEM := run(true)
	assert.Equal(t, seqSeeds, parSeeds)
	assert.Equal(t, seqEM.Ver.Rows(), parEM.Ver.Rows())
	assert.Equal(t, seqEM.Hor.Rows(), parEM.Hor.Rows())
}

// TestRoundTrip_Partition feeds merged EdgeMaps of random grids to the
// region filler: every cell gets exactly one label in [0,n) and
// neighbours without a boundary share a label.
func TestRoundTrip_Partition(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for iter := 0; iter < 15; iter++ {
		w, h := 1+rng.Intn(25), 1+rng.Intn(25)
		fo := pathfinder.Options{CoarseGridSize: 1 + rng.Intn(4), Gap: rng.Intn(6), StopBacktrackEarly: rng.Intn(2) == 0}
		l, err := lattice.New(randomGrid(t, rng, w, h), lattice.WithFinderOptions(fo))
		require.NoError(t, err)
		l.ComputePathStrengths()
		_, err = l.SelectPaths(rng.Intn(20))
		require.NoError(t, err)

		em, err := l.EdgeMap()
		require.NoError(t, err)
		f, err := region.FromEdgeMap(em)
		require.NoError(t, err)
		f.Compute()
		n, _ := f.Count()
		labels, _ := f.Labels()

		for x := 0; x < w; x++ {
			for y := 0; y < h; y++ {
				id := labels.Get(x, y)
				require.GreaterOrEqual(t, id, 0)
				require.Less(t, id, n)
				if x+1 < w && !em.Between(x, y, x+1, y) {
					assert.Equal(t, id, labels.Get(x+1, y))
				}
				if y+1 < h && !em.Between(x, y, x, y+1) {
					assert.Equal(t, id, labels.Get(x, y+1))
				}
			}
		}
		sizes, _ := f.Sizes()
		total := 0
		for _, s := range sizes {
			assert.Positive(t, s)
			total += s
		}
		assert.Equal(t, w*h, total)
	}
}

// TestManualPaths seeds one path of each orientation by hand.
func TestManualPaths(t *testing.T) {
	strengths, err := grid.FromRows([][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{5, 5, 5, 5},
		{0, 0, 0, 0},
	})
	require.NoError(t, err)
	l, err := lattice.New(strengths, lattice.WithFinderOptions(pathfinder.Options{CoarseGridSize: 2, Gap: 1}))
	require.NoError(t, err)
	assert.Equal(t, 4, l.Width())
	assert.Equal(t, 4, l.Height())

	assert.ErrorIs(t, l.MakeHorizontalPath(0, 2), pathfinder.ErrNotInitialized)
	l.ComputePathStrengths()

	require.NoError(t, l.MakeHorizontalPathRange(0, 0, 4))
	assert.Equal(t, []bool{true, true, true, true}, l.HorizontalPaths().Rows()[2])

	require.NoError(t, l.MakeVerticalPath(1, 3))
	vp := l.VerticalPaths()
	assert.Equal(t, 4, vp.Count())
	assert.True(t, vp.Get(1, 3))

	require.NoError(t, l.MakeVerticalPathRange(3, 4, 0))
	require.NoError(t, l.MakeHorizontalPath(2, 0))
	assert.ErrorIs(t, l.MakeVerticalPathRange(2, 2, 0), pathfinder.ErrOutOfRange)
	assert.ErrorIs(t, l.MakeHorizontalPathRange(0, 0, 5), pathfinder.ErrOutOfRange)
}

func TestErrors(t *testing.T) {
	_, err := lattice.New(nil)
	assert.ErrorIs(t, err, lattice.ErrNilGrid)

	v, _ := grid.NewInt(3, 2)
	bad, _ := grid.NewInt(3, 2)
	_, err = lattice.NewFromPair(v, bad)
	assert.ErrorIs(t, err, lattice.ErrDimensionMismatch)
	_, err = lattice.NewFromPair(v, nil)
	assert.ErrorIs(t, err, lattice.ErrNilGrid)

	_, err = lattice.New(v, lattice.WithFinderOptions(pathfinder.Options{CoarseGridSize: 0}))
	assert.ErrorIs(t, err, lattice.ErrOptionViolation)
	assert.ErrorIs(t, err, pathfinder.ErrConfiguration)

	neg, _ := grid.FromRows([][]int{{1, -1}})
	_, err = lattice.New(neg)
	assert.ErrorIs(t, err, pathfinder.ErrNegativeStrength)

	l, err := lattice.New(v)
	require.NoError(t, err)
	_, err = l.SelectPaths(1)
	assert.ErrorIs(t, err, pathfinder.ErrNotInitialized)
	_, err = l.EdgeMap()
	assert.ErrorIs(t, err, pathfinder.ErrNotInitialized)
}

// TestNewFromPair uses a horizontal grid unrelated to the vertical one.
func TestNewFromPair(t *testing.T) {
	v, _ := grid.FromRows([][]int{{0, 7, 0}, {0, 7, 0}})
	h, _ := grid.FromRows([][]int{{0, 0}, {0, 0}, {0, 0}})
	l, err := lattice.NewFromPair(v, h, lattice.WithFinderOptions(tiny))
	require.NoError(t, err)
	assert.Equal(t, 3, l.Vertical().Width())
	assert.Equal(t, 2, l.Horizontal().Width())

	l.ComputePathStrengths()
	require.NoError(t, l.MakeVerticalPath(1, 1))
	assert.Equal(t, [][]bool{{false, true, false}, {false, true, false}}, l.VerticalPaths().Rows())
	assert.Zero(t, l.HorizontalPaths().Count())
}
