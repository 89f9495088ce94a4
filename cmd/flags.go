package cmd

import (
	"github.com/spf13/cobra"

	"github.com/AnyUserName/pixelsort/internal/config"
)

// sortFlags are the options shared by sort and batch.
type sortFlags struct {
	preset    string
	mode      string
	threshold string
	direction string
	workers   int
	format    string
	quality   int
}

func (f *sortFlags) register(cmd *cobra.Command, workersUsage string) {
	fl := cmd.Flags()
	fl.StringVarP(&f.preset, "preset", "p", "", "named preset (list them with: pixelsort presets)")
	fl.StringVarP(&f.mode, "mode", "m", "", "threshold mode: black, brightness or white")
	fl.StringVarP(&f.threshold, "threshold", "t", "", "mode threshold: 0-255 for brightness, a color for black/white")
	fl.StringVarP(&f.direction, "direction", "d", "", "axes to sort: both, column or row")
	fl.IntVarP(&f.workers, "workers", "w", 0, workersUsage)
	fl.StringVarP(&f.format, "format", "f", "", "output format: png, bmp, tiff or jpeg")
	fl.IntVarP(&f.quality, "quality", "q", 0, "JPEG quality 1-100 (0 = default)")
}

// load merges the env file, the environment and the flags that were set
// explicitly on the command line.
func (f *sortFlags) load(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return config.Config{}, err
	}
	fl := cmd.Flags()
	if fl.Changed("preset") {
		cfg.Preset = f.preset
	}
	if fl.Changed("mode") {
		cfg.Mode = f.mode
	}
	if fl.Changed("threshold") {
		cfg.Threshold = f.threshold
	}
	if fl.Changed("direction") {
		cfg.Direction = f.direction
	}
	if fl.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fl.Changed("format") {
		cfg.Format = f.format
	}
	if fl.Changed("quality") {
		cfg.Quality = f.quality
	}
	return cfg, nil
}
