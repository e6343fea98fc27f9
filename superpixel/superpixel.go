package superpixel

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/katalvlaran/pathlattice/edgefilter"
	"github.com/katalvlaran/pathlattice/grid"
	"github.com/katalvlaran/pathlattice/lattice"
	"github.com/katalvlaran/pathlattice/order"
	"github.com/katalvlaran/pathlattice/pathfinder"
	"github.com/katalvlaran/pathlattice/region"
)

// ErrConfiguration indicates invalid Options.
var ErrConfiguration = errors.New("superpixel: invalid configuration")

// DefaultNumPaths is the per-orientation seed budget used by default.
const DefaultNumPaths = 50000

// Options configures Segment.
//
// When Superpixels > 0, CoarseGridSize and Gap are ignored and derived
// from the image size with ParamsFor. NumPaths == 0 means no limit.
type Options struct {
	Radius             int
	Superpixels        int
	CoarseGridSize     int
	Gap                int
	StopBacktrackEarly bool
	NumPaths           int
	Parallel           bool
}

// DefaultOptions returns radius 3, the pathfinder default grid, early
// stopping and DefaultNumPaths.
func DefaultOptions() Options {
	fo := pathfinder.DefaultOptions()

	return Options{
		Radius:             3,
		CoarseGridSize:     fo.CoarseGridSize,
		Gap:                fo.Gap,
		StopBacktrackEarly: fo.StopBacktrackEarly,
		NumPaths:           DefaultNumPaths,
	}
}

// Validate checks the fields that do not depend on the image.
func (o Options) Validate() error {
	switch {
	case o.Radius <= 0:
		return fmt.Errorf("Radius=%d: %w", o.Radius, ErrConfiguration)
	case o.Superpixels < 0:
		return fmt.Errorf("Superpixels=%d: %w", o.Superpixels, ErrConfiguration)
	case o.NumPaths < 0:
		return fmt.Errorf("NumPaths=%d: %w", o.NumPaths, ErrConfiguration)
	}

	return nil
}

// ParamsFor derives the coarse grid size and gap that aim at n
// superpixels on a w×h image.
func ParamsFor(w, h, n int) (coarseGridSize, gap int, err error) {
	if w <= 0 || h <= 0 || n <= 0 {
		return 0, 0, fmt.Errorf("ParamsFor(%d,%d,%d): %w", w, h, n, ErrConfiguration)
	}
	coarseGridSize = int(0.5 + math.Sqrt(float64(w*h)/float64(n)))
	coarseGridSize = max(coarseGridSize, 1)

	return coarseGridSize, 2 * coarseGridSize, nil
}

// Result holds everything Segment produced.
type Result struct {
	Width, Height  int
	CoarseGridSize int
	Gap            int

	// Seeds are the accepted seed locations, vertical ones first.
	Seeds []order.GridLocation
	// Vertical and Horizontal are the path cells of each orientation.
	Vertical   *grid.Bool
	Horizontal *grid.Bool
	Edges      *grid.EdgeMap

	Labels  *grid.Int
	Regions int
	Stats   region.Summary

	PathTime   time.Duration
	RegionTime time.Duration

	filler *region.Filler
}

// Averages returns the mean colour of each region of img, which must be
// the segmented image or one of the same size.
func (r *Result) Averages(img image.Image) ([]color.RGBA, error) {
	return r.filler.Averages(img)
}

// Segment partitions img into superpixels.
func Segment(img image.Image, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	gray, err := edgefilter.Grayscale(img)
	if err != nil {
		return nil, err
	}
	w, h := gray.Bounds().Dx(), gray.Bounds().Dy()

	g, gap := opts.CoarseGridSize, opts.Gap
	if opts.Superpixels > 0 {
		if g, gap, err = ParamsFor(w, h, opts.Superpixels); err != nil {
			return nil, err
		}
	}

	filter, err := edgefilter.NewFilter(opts.Radius)
	if err != nil {
		return nil, err
	}
	vertical, horizontalT, err := filter.Pair(gray)
	if err != nil {
		return nil, err
	}

	lat, err := lattice.NewFromPair(vertical, horizontalT,
		lattice.WithFinderOptions(pathfinder.Options{
			CoarseGridSize:     g,
			Gap:                gap,
			StopBacktrackEarly: opts.StopBacktrackEarly,
		}),
		lattice.WithParallel(opts.Parallel),
	)
	if err != nil {
		return nil, err
	}

	numPaths := opts.NumPaths
	if numPaths == 0 {
		numPaths = math.MaxInt
	}
	start := time.Now()
	lat.ComputePathStrengths()
	seeds, err := lat.SelectPaths(numPaths)
	if err != nil {
		return nil, err
	}
	pathTime := time.Since(start)

	start = time.Now()
	em, err := lat.EdgeMap()
	if err != nil {
		return nil, err
	}
	filler, err := region.FromEdgeMap(em)
	if err != nil {
		return nil, err
	}
	filler.Compute()
	regionTime := time.Since(start)

	labels, _ := filler.Labels()
	stats, _ := filler.Stats()

	return &Result{
		Width:          w,
		Height:         h,
		CoarseGridSize: g,
		Gap:            gap,
		Seeds:          seeds,
		Vertical:       lat.VerticalPaths(),
		Horizontal:     lat.HorizontalPaths(),
		Edges:          em,
		Labels:         labels,
		Regions:        stats.Regions,
		Stats:          stats,
		PathTime:       pathTime,
		RegionTime:     regionTime,
		filler:         filler,
	}, nil
}
