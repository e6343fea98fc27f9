package edgefilter

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/katalvlaran/pathlattice/grid"
)

// Sentinel errors.
var (
	// ErrConfiguration indicates a non-positive radius.
	ErrConfiguration = errors.New("edgefilter: radius must be positive")

	// ErrNilImage indicates a nil or empty image.
	ErrNilImage = errors.New("edgefilter: image is nil or empty")
)

// Luma weights, applied per channel and truncated before summing.
const (
	weightR = 0.299
	weightG = 0.587
	weightB = 0.114
)

// Grayscale returns the luma of img as an *image.Gray whose bounds start
// at the origin.
func Grayscale(img image.Image) (*image.Gray, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrNilImage
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	gray := image.NewGray(rgba.Bounds())
	for y := 0; y < b.Dy(); y++ {
		src := rgba.Pix[y*rgba.Stride:]
		dst := gray.Pix[y*gray.Stride:]
		for x := 0; x < b.Dx(); x++ {
			r, g, bl := src[4*x], src[4*x+1], src[4*x+2]
			dst[x] = uint8(int(float64(r)*weightR) + int(float64(g)*weightG) + int(float64(bl)*weightB))
		}
	}

	return gray, nil
}

// TransposeGray returns t with t(y,x) == g(x,y), bounds at the origin.
func TransposeGray(g *image.Gray) *image.Gray {
	b := g.Bounds()
	t := image.NewGray(image.Rect(0, 0, b.Dy(), b.Dx()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			t.Pix[x*t.Stride+y] = g.Pix[g.PixOffset(b.Min.X+x, b.Min.Y+y)]
		}
	}

	return t
}

// Filter is a symmetric box-difference filter of a fixed radius.
type Filter struct {
	radius int
}

// NewFilter returns a Filter of the given radius (> 0).
func NewFilter(radius int) (*Filter, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("NewFilter(%d): %w", radius, ErrConfiguration)
	}

	return &Filter{radius: radius}, nil
}

// Radius returns the window length on each side.
func (f *Filter) Radius() int { return f.radius }

// Strengths computes vertical boundary strengths of gray as a W×H grid.
func (f *Filter) Strengths(gray *image.Gray) (*grid.Int, error) {
	if gray == nil || gray.Bounds().Empty() {
		return nil, ErrNilImage
	}
	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()
	out, err := grid.NewInt(w, h)
	if err != nil {
		return nil, err
	}

	r := f.radius
	prefix := make([]int, w+1)
	for y := 0; y < h; y++ {
		row := gray.Pix[gray.PixOffset(b.Min.X, b.Min.Y+y):]
		for x := 0; x < w; x++ {
			prefix[x+1] = prefix[x] + int(row[x])
		}
		for x := r; x+r <= w; x++ {
			left := (prefix[x] - prefix[x-r]) / r
			right := (prefix[x+r] - prefix[x]) / r
			d := right - left
			if d < 0 {
				d = -d
			}
			out.Put(x, y, d)
		}
	}

	return out, nil
}

// Pair returns the vertical strengths of gray (W×H) and the strengths of
// its transpose (H×W).
func (f *Filter) Pair(gray *image.Gray) (vertical, horizontalT *grid.Int, err error) {
	if vertical, err = f.Strengths(gray); err != nil {
		return nil, nil, err
	}
	if horizontalT, err = f.Strengths(TransposeGray(gray)); err != nil {
		return nil, nil, err
	}

	return vertical, horizontalT, nil
}
