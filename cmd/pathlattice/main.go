// Command pathlattice segments images into superpixels bounded by
// strongest vertical and horizontal paths.
//
// Usage:
//
//	pathlattice segment IMAGE [flags]
//	pathlattice batch IN_DIR OUT_DIR [PREFIX] [flags]
package main

import (
	"os"

	"github.com/katalvlaran/pathlattice/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
