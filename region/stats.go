package region

import (
	"fmt"
	"image"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Averages returns the mean colour of every region of img, indexed by id.
// Channels are averaged as 8-bit integers with truncating division; the
// alpha channel is always opaque. img must have the Filler's size; its
// bounds origin may be anywhere.
func (f *Filler) Averages(img image.Image) ([]color.RGBA, error) {
	if !f.computed {
		return nil, ErrNotComputed
	}
	b := img.Bounds()
	if b.Dx() != f.width || b.Dy() != f.height {
		return nil, fmt.Errorf("Averages: image %dx%d: %w", b.Dx(), b.Dy(), ErrDimensionMismatch)
	}

	sums := make([][3]int, f.count)
	counts := make([]int, f.count)
	for x := 0; x < f.width; x++ {
		for y := 0; y < f.height; y++ {
			id := f.labels.Get(x, y)
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			sums[id][0] += int(r >> 8)
			sums[id][1] += int(g >> 8)
			sums[id][2] += int(bl >> 8)
			counts[id]++
		}
	}

	out := make([]color.RGBA, f.count)
	for id, s := range sums {
		n := counts[id]
		out[id] = color.RGBA{R: uint8(s[0] / n), G: uint8(s[1] / n), B: uint8(s[2] / n), A: 0xff}
	}

	return out, nil
}

// Stats summarises region sizes.
func (f *Filler) Stats() (Summary, error) {
	sizes, err := f.Sizes()
	if err != nil {
		return Summary{}, err
	}
	xs := make([]float64, len(sizes))
	for i, s := range sizes {
		xs[i] = float64(s)
	}

	mean, std := stat.MeanStdDev(xs, nil)
	if len(xs) < 2 {
		std = 0
	}

	return Summary{
		Regions:    len(sizes),
		MeanSize:   mean,
		StdDevSize: std,
		MinSize:    int(floats.Min(xs)),
		MaxSize:    int(floats.Max(xs)),
	}, nil
}
