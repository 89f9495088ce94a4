package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/pixelsort/internal/encoder"
	"github.com/AnyUserName/pixelsort/internal/pipeline"
	"github.com/AnyUserName/pixelsort/pkg/pixelsort"
)

var (
	sortOut   string
	sortFlagV sortFlags
)

var sortCmd = &cobra.Command{
	Use:   "sort <input>",
	Short: "Pixel-sort a single image",
	Long: `Decodes one image, sorts its spans and writes the result.

The output format follows --format, else the extension of --out, else the
source format when it can be written, else PNG. Without --out the result is
written next to the input as <name>.sorted.<ext>.`,
	Args: cobra.ExactArgs(1),
	RunE: runSort,
}

func init() {
	sortCmd.Flags().StringVarP(&sortOut, "out", "o", "", "output file")
	sortFlagV.register(sortCmd, "goroutines per axis (0 = NumCPU, 1 = sequential)")
	rootCmd.AddCommand(sortCmd)
}

func runSort(cmd *cobra.Command, args []string) error {
	input := args[0]
	start := time.Now()

	cfg, err := sortFlagV.load(cmd)
	if err != nil {
		return err
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	opts, err := cfg.SortOptions(workers)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	img, err := pipeline.Decode(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", input, err)
	}

	registry := encoder.NewRegistry()
	enc, err := outputEncoder(registry, cfg.Format, sortOut, pipeline.FormatOf(input))
	if err != nil {
		return err
	}
	out := sortOut
	if out == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		out = base + ".sorted." + enc.Extensions()[0]
	}

	logVerbose("input:  %s (%dx%d)", input, img.W, img.H)
	logVerbose("output: %s (%s)", out, enc.Format())
	logVerbose("preset: %s, mode %s, direction %s, workers %d",
		cfg.PresetName(), opts.Mode, opts.Direction, opts.Workers)

	stats := pixelsort.SortWithOptions(img, opts)

	encoded, err := enc.Encode(img, cfg.Quality)
	if err != nil {
		return fmt.Errorf("encode %s: %w", enc.Format(), err)
	}
	if err := os.WriteFile(out, encoded, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	fmt.Printf("  %s → %s\n", input, out)
	fmt.Printf("  %d lines, %d spans, %d of %d pixels moved  (%s, %s)\n",
		stats.Lines, stats.Spans, stats.MovedPixels, img.W*img.H,
		formatBytes(int64(len(encoded))), time.Since(start).Round(time.Millisecond))
	if !enc.Lossless() {
		logVerbose("warning: %s is lossy; sorted spans will blur", enc.Format())
	}
	return nil
}

// outputEncoder picks the encoder for the sort command.
func outputEncoder(r *encoder.Registry, format, out, sourceFormat string) (encoder.Encoder, error) {
	if format != "" {
		enc := r.Get(format)
		if enc == nil {
			return nil, fmt.Errorf("unsupported output format %q (available: %s)",
				format, strings.Join(r.Available(), ", "))
		}
		return enc, nil
	}
	if out != "" {
		return r.ForPath(out)
	}
	return r.Resolve("", sourceFormat), nil
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
