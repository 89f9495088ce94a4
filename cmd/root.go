package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/blang/semver"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
	envFile string
)

// toolVersion is version parsed once; validate compares manifests against it.
var toolVersion = semver.MustParse(version)

var rootCmd = &cobra.Command{
	Use:   "pixelsort",
	Short: "Glitch images by sorting spans of pixels",
	Long: `pixelsort — sorts runs of pixels along columns and rows, the
"ASDF Pixel Sort" glitch effect.

A span starts at a pixel that passes the threshold of the chosen mode
(black, brightness or white) and ends before the first pixel that fails
it. Columns are sorted first, then rows.

Defaults can be set in a .env file or the environment
(PIXELSORT_PRESET, PIXELSORT_MODE, PIXELSORT_THRESHOLD, PIXELSORT_DIRECTION,
PIXELSORT_WORKERS, PIXELSORT_FORMAT, PIXELSORT_QUALITY); flags win.`,
	Version:       version,
	SilenceUsage:  true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "read defaults from this file (default .env if present)")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"pixelsort %s (%s/%s, %s)\n",
		toolVersion, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[pixelsort] "+format+"\n", args...)
	}
}
