package cli

import (
	"fmt"
	"image"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"

	"github.com/katalvlaran/pathlattice/edgefilter"
	"github.com/katalvlaran/pathlattice/render"
	"github.com/katalvlaran/pathlattice/superpixel"
)

type segmentFlags struct {
	pipeline pipelineFlags

	csvOut       string
	overlayOut   string
	averageOut   string
	randomOut    string
	strengthsOut string
	markSeeds    bool
	paletteSeed  int64
}

func newSegmentCommand(a *app) *cobra.Command {
	f := &segmentFlags{}
	cmd := &cobra.Command{
		Use:   "segment IMAGE",
		Short: "Segment a single image",
		Long: `Segment one image and write any of the requested outputs.

Examples:
  pathlattice segment photo.jpg --csv photo.csv
  pathlattice segment photo.jpg -s 800 --overlay paths.png --seeds
  pathlattice segment photo.jpg --average mean.png --random regions.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSegment(cmd, a, f, args[0])
		},
	}

	f.pipeline.register(cmd)
	cmd.Flags().StringVar(&f.csvOut, "csv", "", "Write region labels as CSV")
	cmd.Flags().StringVar(&f.overlayOut, "overlay", "", "Write the image with paths drawn on it (PNG)")
	cmd.Flags().BoolVar(&f.markSeeds, "seeds", false, "Mark accepted seeds on the overlay")
	cmd.Flags().StringVar(&f.averageOut, "average", "", "Write regions filled with their mean colour (PNG)")
	cmd.Flags().StringVar(&f.randomOut, "random", "", "Write regions filled with random colours (PNG)")
	cmd.Flags().StringVar(&f.strengthsOut, "strengths", "", "Write the vertical edge strengths as a grey image (PNG)")
	cmd.Flags().Int64Var(&f.paletteSeed, "palette-seed", 1, "Seed for --random colours")

	return cmd
}

func runSegment(cmd *cobra.Command, a *app, f *segmentFlags, path string) error {
	img, err := loadImage(path)
	if err != nil {
		return err
	}
	a.log.Debug("image loaded", "path", path, "bounds", img.Bounds())

	res, err := superpixel.Segment(img, f.pipeline.options())
	if err != nil {
		return fmt.Errorf("segment %s: %w", path, err)
	}
	a.log.Info("segmented",
		"path", path,
		"regions", res.Regions,
		"seeds", len(res.Seeds),
		"grid", res.CoarseGridSize,
		"gap", res.Gap,
		"path_time", res.PathTime,
		"region_time", res.RegionTime,
	)

	if f.csvOut != "" {
		if err = render.SaveCSV(f.csvOut, res.Labels); err != nil {
			return err
		}
	}
	if f.overlayOut != "" {
		if err = writeOverlay(f, img, res); err != nil {
			return err
		}
	}
	if f.averageOut != "" || f.randomOut != "" {
		if err = writeColourings(f, img, res); err != nil {
			return err
		}
	}
	if f.strengthsOut != "" {
		if err = writeStrengths(f, img); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %dx%d, %d regions, mean size %.1f (sd %.1f)\n",
		path, res.Width, res.Height, res.Regions, res.Stats.MeanSize, res.Stats.StdDevSize)

	return nil
}

func writeOverlay(f *segmentFlags, img image.Image, res *superpixel.Result) error {
	canvas := image.NewRGBA(image.Rect(0, 0, res.Width, res.Height))
	draw.Draw(canvas, canvas.Bounds(), img, img.Bounds().Min, draw.Src)
	if err := render.DrawPaths(canvas, res.Vertical, res.Horizontal); err != nil {
		return err
	}
	if f.markSeeds {
		render.DrawCrosses(canvas, res.Seeds, 10, 2)
	}

	return render.SavePNG(f.overlayOut, canvas)
}

func writeColourings(f *segmentFlags, img image.Image, res *superpixel.Result) error {
	if f.randomOut != "" {
		out, err := render.Colorize(res.Labels, render.RandomColors(res.Regions, f.paletteSeed))
		if err != nil {
			return err
		}
		if err = render.SavePNG(f.randomOut, out); err != nil {
			return err
		}
	}
	if f.averageOut == "" {
		return nil
	}

	means, err := res.Averages(img)
	if err != nil {
		return err
	}
	out, err := render.Colorize(res.Labels, means)
	if err != nil {
		return err
	}

	return render.SavePNG(f.averageOut, out)
}

func writeStrengths(f *segmentFlags, img image.Image) error {
	gray, err := edgefilter.Grayscale(img)
	if err != nil {
		return err
	}
	filter, err := edgefilter.NewFilter(f.pipeline.radius)
	if err != nil {
		return err
	}
	strengths, err := filter.Strengths(gray)
	if err != nil {
		return err
	}

	return render.SavePNG(f.strengthsOut, render.StrengthImage(strengths))
}
