package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/pixelsort/internal/manifest"
	"github.com/AnyUserName/pixelsort/internal/pipeline"
)

var (
	batchOutDir string
	batchFlagV  sortFlags
)

var batchCmd = &cobra.Command{
	Use:   "batch <input_dir>",
	Short: "Pixel-sort every image in a directory and write a manifest",
	Long: `Scans the input directory for images (png, jpg, jpeg, gif, webp, bmp,
tif, tiff), sorts each one and writes it to the output directory, keeping
the directory layout.

Output filenames are content-addressed: <key>.<hash>.<ext>
A pixelsort.manifest.json next to them records every image.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchOutDir, "out", "o", "./pixelsort_out", "output directory")
	batchFlagV.register(batchCmd, "images sorted in parallel (0 = NumCPU)")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	start := time.Now()

	absInput, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	absOutput, err := filepath.Abs(batchOutDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	cfg, err := batchFlagV.load(cmd)
	if err != nil {
		return err
	}
	// Images already run in parallel, each one sorts sequentially.
	opts, err := cfg.SortOptions(1)
	if err != nil {
		return err
	}

	logVerbose("input:   %s", absInput)
	logVerbose("output:  %s", absOutput)
	logVerbose("preset:  %s (mode %s, direction %s)", cfg.PresetName(), opts.Mode, opts.Direction)

	if err := os.MkdirAll(absOutput, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	p := pipeline.New(pipeline.Config{
		InputDir:  absInput,
		OutputDir: absOutput,
		Preset:    cfg.PresetName(),
		Options:   opts,
		Format:    cfg.Format,
		Quality:   cfg.Quality,
		Workers:   cfg.Workers,
		Generator: toolVersion.String(),
		Verbose:   verbose,
	})

	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	manifestPath := filepath.Join(absOutput, manifest.FileName)
	if err := manifest.WriteJSON(m, manifestPath); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	printBatchReport(m, manifestPath, time.Since(start))
	return nil
}

func printBatchReport(m *manifest.Manifest, manifestPath string, elapsed time.Duration) {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════╗")
	fmt.Println("║             pixelsort batch complete             ║")
	fmt.Println("╚══════════════════════════════════════════════════╝")
	fmt.Println()

	s := m.Stats
	fmt.Printf("  Images:      %d\n", s.TotalImages)
	fmt.Printf("  Mode:        %s(%s), %s\n", m.Options.Mode, m.Options.Threshold, m.Options.Direction)
	fmt.Printf("  Spans:       %d\n", s.TotalSpans)
	fmt.Printf("  Moved:       %s\n", percentOf(s.MovedPixels, s.TotalPixels))
	fmt.Printf("  Input size:  %s\n", formatBytes(s.TotalInputBytes))
	fmt.Printf("  Output size: %s\n", formatBytes(s.TotalOutputBytes))
	if s.Unchanged > 0 {
		fmt.Printf("  Unchanged:   %d images (no span to sort)\n", s.Unchanged)
	}
	fmt.Printf("  Time:        %s\n", elapsed.Round(time.Millisecond))
	if m.BuildInfo != nil {
		fmt.Printf("  Workers:     %d\n", m.BuildInfo.Workers)
	}
	fmt.Println()

	// Top 10 most disturbed images.
	if len(m.Images) > 0 {
		type moved struct {
			key    string
			moved  int
			pixels int
		}
		var items []moved
		for key, img := range m.Images {
			items = append(items, moved{key, img.Spans.MovedPixels, img.Source.Width * img.Source.Height})
		}
		sort.Slice(items, func(i, j int) bool {
			if items[i].moved != items[j].moved {
				return items[i].moved > items[j].moved
			}
			return items[i].key < items[j].key
		})
		n := min(len(items), 10)
		fmt.Printf("  Top %d most sorted:\n", n)
		for _, it := range items[:n] {
			fmt.Printf("    %-40s %s\n", truncKey(it.key, 40), percentOf(int64(it.moved), int64(it.pixels)))
		}
		fmt.Println()
	}

	fmt.Printf("  Formats:     %s\n", strings.Join(outputFormats(m), ", "))
	fmt.Printf("  Manifest:    %s\n", manifestPath)
	fmt.Println()
}

func percentOf(n, total int64) string {
	if total == 0 {
		return fmt.Sprintf("%d px", n)
	}
	return fmt.Sprintf("%d px (%.1f%%)", n, float64(n)/float64(total)*100)
}

// outputFormats lists the formats written, in a stable order.
func outputFormats(m *manifest.Manifest) []string {
	set := map[string]bool{}
	for _, img := range m.Images {
		set[img.Output.Format] = true
	}
	out := make([]string, 0, len(set))
	for f := range set {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func truncKey(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return "..." + s[len(s)-max+3:]
}
