package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlattice/render"
	"github.com/katalvlaran/pathlattice/superpixel"
)

const runtimeFile = "runtime.txt"

type batchFlags struct {
	pipeline pipelineFlags
	prefix   string
}

func newBatchCommand(a *app) *cobra.Command {
	f := &batchFlags{}
	cmd := &cobra.Command{
		Use:   "batch IN_DIR OUT_DIR [PREFIX]",
		Short: "Segment every image of a folder into CSV label files",
		Long: `Segment every image in IN_DIR and write <prefix><name>.csv into OUT_DIR,
creating it if needed. <prefix>runtime.txt receives the mean path
computation time per image, in seconds.

Examples:
  pathlattice batch images/ out/ -r 3 -s 400
  pathlattice batch images/ out/ run1_`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 3 {
				f.prefix = args[2]
			}
			return runBatch(a, f, args[0], args[1])
		},
	}

	f.pipeline.register(cmd)
	cmd.Flags().StringVarP(&f.prefix, "prefix", "p", "", "Prefix for every output file name")

	return cmd
}

func runBatch(a *app, f *batchFlags, inDir, outDir string) error {
	entries, err := os.ReadDir(inDir)
	if err != nil {
		return fmt.Errorf("read input folder: %w", err)
	}
	if err = os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output folder: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && isImage(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	opts := f.pipeline.options()
	var (
		total time.Duration
		done  int
	)
	for _, name := range names {
		elapsed, err := segmentToCSV(filepath.Join(inDir, name), csvPath(outDir, f.prefix, name), opts)
		if err != nil {
			a.log.Error("skipping image", "file", name, "err", err)
			continue
		}
		a.log.Debug("processed", "file", name, "path_time", elapsed)
		total += elapsed
		done++
	}

	if done == 0 {
		a.log.Warn("no images processed", "dir", inDir)
		return nil
	}
	mean := total.Seconds() / float64(done)
	a.log.Info("batch finished", "images", done, "skipped", len(names)-done, "mean_seconds", mean)

	runtimePath := filepath.Join(outDir, f.prefix+runtimeFile)

	return os.WriteFile(runtimePath, []byte(strconv.FormatFloat(mean, 'f', -1, 64)), 0o644)
}

func segmentToCSV(imagePath, outPath string, opts superpixel.Options) (time.Duration, error) {
	img, err := loadImage(imagePath)
	if err != nil {
		return 0, err
	}
	res, err := superpixel.Segment(img, opts)
	if err != nil {
		return 0, err
	}
	if err = render.SaveCSV(outPath, res.Labels); err != nil {
		return 0, err
	}

	return res.PathTime, nil
}

// csvPath maps in/photo.jpg to out/<prefix>photo.csv.
func csvPath(outDir, prefix, name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))

	return filepath.Join(outDir, prefix+base+".csv")
}
