// Package cli implements the pathlattice command tree.
package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlattice/superpixel"
)

// pipelineFlags are shared by every command that runs the pipeline.
type pipelineFlags struct {
	radius      int
	superpixels int
	numPaths    int
	noEarlyStop bool
	parallel    bool
}

func (p *pipelineFlags) register(cmd *cobra.Command) {
	d := superpixel.DefaultOptions()
	cmd.Flags().IntVarP(&p.radius, "radius", "r", d.Radius, "Edge filter radius in pixels")
	cmd.Flags().IntVarP(&p.superpixels, "superpixels", "s", 400, "Target number of superpixels")
	cmd.Flags().IntVar(&p.numPaths, "num-paths", d.NumPaths, "Seed budget per orientation (0 = unlimited)")
	cmd.Flags().BoolVar(&p.noEarlyStop, "full-paths", false, "Keep tracing a path after it meets an existing one")
	cmd.Flags().BoolVar(&p.parallel, "parallel", false, "Compute both orientations concurrently")
}

func (p *pipelineFlags) options() superpixel.Options {
	o := superpixel.DefaultOptions()
	o.Radius = p.radius
	o.Superpixels = p.superpixels
	o.NumPaths = p.numPaths
	o.StopBacktrackEarly = !p.noEarlyStop
	o.Parallel = p.parallel

	return o
}

// app carries state shared by subcommands once flags are parsed.
type app struct {
	log *slog.Logger
}

// NewRootCommand builds the command tree. Logs go to the command's error
// stream.
func NewRootCommand() *cobra.Command {
	var verbose bool
	a := &app{log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:          "pathlattice",
		Short:        "Superpixels from strongest boundary paths",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newSegmentCommand(a), newBatchCommand(a))

	return root
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}
