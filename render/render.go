package render

import (
	"encoding/csv"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math/rand"
	"os"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	"github.com/katalvlaran/pathlattice/grid"
	"github.com/katalvlaran/pathlattice/order"
)

// Sentinel errors.
var (
	// ErrDimensionMismatch indicates grids or images of different sizes.
	ErrDimensionMismatch = errors.New("render: dimension mismatch")

	// ErrPalette indicates a label with no colour in the palette.
	ErrPalette = errors.New("render: label outside palette")

	// ErrBadCSV indicates malformed label CSV input.
	ErrBadCSV = errors.New("render: malformed label csv")
)

// Overlay colours.
var (
	VerticalColor   = color.RGBA{R: 255, G: 255, A: 255}
	HorizontalColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	SeedColor       = color.RGBA{R: 255, A: 255}
)

const (
	pathThickness = 2
	pathOffset    = pathThickness / 2
)

// WriteCSV writes labels row by row.
func WriteCSV(w io.Writer, labels *grid.Int) error {
	cw := csv.NewWriter(w)
	record := make([]string, labels.Width())
	for y := 0; y < labels.Height(); y++ {
		for x := range record {
			record[x] = strconv.Itoa(labels.Get(x, y))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadCSV parses the output of WriteCSV.
func ReadCSV(r io.Reader) (*grid.Int, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadCSV, err)
	}
	rows := make([][]int, len(records))
	for y, rec := range records {
		rows[y] = make([]int, len(rec))
		for x, field := range rec {
			if rows[y][x], err = strconv.Atoi(field); err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", y, x, ErrBadCSV)
			}
		}
	}
	g, err := grid.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadCSV, err)
	}

	return g, nil
}

// SaveCSV writes labels to path.
func SaveCSV(path string, labels *grid.Int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = WriteCSV(f, labels); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// DrawPaths paints path cells onto dst. Either map may be nil. Each cell
// is widened to two pixels across the path, clamped to the image.
func DrawPaths(dst draw.Image, vertical, horizontal *grid.Bool) error {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	for _, m := range []*grid.Bool{vertical, horizontal} {
		if m != nil && (m.Width() != w || m.Height() != h) {
			return fmt.Errorf("DrawPaths: path map %dx%d, image %dx%d: %w", m.Width(), m.Height(), w, h, ErrDimensionMismatch)
		}
	}

	for x := 0; vertical != nil && x < w; x++ {
		for y := 0; y < h; y++ {
			if !vertical.Get(x, y) {
				continue
			}
			for k := 0; k < pathThickness; k++ {
				px := clamp(x+k-pathOffset, 0, w-1)
				dst.Set(b.Min.X+px, b.Min.Y+y, VerticalColor)
			}
		}
	}
	for x := 0; horizontal != nil && x < w; x++ {
		for y := 0; y < h; y++ {
			if !horizontal.Get(x, y) {
				continue
			}
			for k := 0; k < pathThickness; k++ {
				py := clamp(y+k-pathOffset, 0, h-1)
				dst.Set(b.Min.X+x, b.Min.Y+py, HorizontalColor)
			}
		}
	}

	return nil
}

// DrawCrosses marks every location with a red cross whose strokes are
// length long and width wide.
func DrawCrosses(dst draw.Image, locs []order.GridLocation, length, width int) {
	b := dst.Bounds()
	red := image.NewUniform(SeedColor)
	for _, l := range locs {
		x, y := b.Min.X+l.X, b.Min.Y+l.Y
		for _, r := range []image.Rectangle{
			image.Rect(x-length/2, y-width/2, x+length/2, y+width/2),
			image.Rect(x-width/2, y-length/2, x+width/2, y+length/2),
		} {
			draw.Draw(dst, r.Intersect(b), red, image.Point{}, draw.Src)
		}
	}
}

// StrengthImage scales g linearly so that its maximum becomes 255.
// An all-zero grid gives a black image.
func StrengthImage(g *grid.Int) *image.Gray {
	w, h := g.Width(), g.Height()
	out := image.NewGray(image.Rect(0, 0, w, h))
	peak := 0
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			peak = max(peak, g.Get(x, y))
		}
	}
	if peak == 0 {
		return out
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			out.Pix[y*out.Stride+x] = uint8(g.Get(x, y) * 255 / peak)
		}
	}

	return out
}

// RandomColors returns n distinct-looking colours drawn from a seeded
// generator, so the same seed always yields the same palette.
func RandomColors(n int, seed int64) []color.RGBA {
	rng := rand.New(rand.NewSource(seed))
	out := make([]color.RGBA, n)
	for i := range out {
		c := colorful.Hsv(rng.Float64()*360, 0.45+rng.Float64()*0.55, 0.55+rng.Float64()*0.45)
		r, g, b := c.RGB255()
		out[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}

	return out
}

// Colorize paints every cell with the palette entry of its label.
func Colorize(labels *grid.Int, palette []color.RGBA) (*image.RGBA, error) {
	w, h := labels.Width(), labels.Height()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			id := labels.Get(x, y)
			if id < 0 || id >= len(palette) {
				return nil, fmt.Errorf("Colorize: label %d at (%d,%d): %w", id, x, y, ErrPalette)
			}
			out.SetRGBA(x, y, palette[id])
		}
	}

	return out, nil
}

// SavePNG encodes img as PNG at path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = png.Encode(f, img); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
