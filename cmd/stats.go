package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/pixelsort/internal/manifest"
)

var statsCmd = &cobra.Command{
	Use:   "stats <out_dir_or_manifest>",
	Short: "Display statistics for a batch output directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, args []string) error {
	path, err := manifestPath(args[0])
	if err != nil {
		return err
	}
	m, err := manifest.ReadJSON(path)
	if err != nil {
		return err
	}
	printStats(m)
	return nil
}

// manifestPath accepts either a manifest file or the directory holding one.
func manifestPath(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return filepath.Join(path, manifest.FileName), nil
	}
	return path, nil
}

func printStats(m *manifest.Manifest) {
	fmt.Println()
	fmt.Printf("  Manifest version: %d\n", m.Version)
	fmt.Printf("  Generated:        %s by pixelsort %s\n", m.GeneratedAt, m.Generator)
	fmt.Printf("  Preset:           %s\n", m.Preset)
	fmt.Printf("  Mode:             %s(%s)\n", m.Options.Mode, m.Options.Threshold)
	fmt.Printf("  Direction:        %s\n", m.Options.Direction)
	if m.BuildInfo != nil {
		fmt.Printf("  Workers:          %d images × %d sort goroutines\n",
			m.BuildInfo.Workers, m.BuildInfo.SortWorkers)
	}
	fmt.Println()

	s := m.Stats
	fmt.Printf("  Total images:     %d\n", s.TotalImages)
	fmt.Printf("  Total pixels:     %d\n", s.TotalPixels)
	fmt.Printf("  Spans sorted:     %d\n", s.TotalSpans)
	fmt.Printf("  Pixels moved:     %s\n", percentOf(s.MovedPixels, s.TotalPixels))
	fmt.Printf("  Input size:       %s\n", formatBytes(s.TotalInputBytes))
	fmt.Printf("  Output size:      %s\n", formatBytes(s.TotalOutputBytes))
	if s.TotalInputBytes > 0 {
		ratio := float64(s.TotalOutputBytes) / float64(s.TotalInputBytes) * 100
		fmt.Printf("  Size ratio:       %.1f%% of original\n", ratio)
	}
	fmt.Println()

	// Per-format breakdown.
	type formatStat struct {
		count int
		bytes int64
	}
	formatStats := map[string]formatStat{}
	for _, img := range m.Images {
		fs := formatStats[img.Output.Format]
		fs.count++
		fs.bytes += img.Output.Size
		formatStats[img.Output.Format] = fs
	}
	fmt.Println("  Format breakdown:")
	for _, f := range outputFormats(m) {
		fs := formatStats[f]
		fmt.Printf("    %-6s  %4d files  %s\n", f, fs.count, formatBytes(fs.bytes))
	}
	fmt.Println()

	// Span length: sorted pixels per span.
	if s.TotalSpans > 0 {
		var sorted int64
		for _, img := range m.Images {
			sorted += int64(img.Spans.SortedPixels)
		}
		fmt.Printf("  Mean span:        %.1f px\n", float64(sorted)/float64(s.TotalSpans))
		fmt.Println()
	}

	var warnings []string
	for key, img := range m.Images {
		if img.Spans.MovedPixels == 0 {
			warnings = append(warnings, fmt.Sprintf("image %q: no pixel moved (threshold too strict?)", key))
		}
		if img.Output.Path == "" {
			warnings = append(warnings, fmt.Sprintf("image %q: no output path", key))
		}
	}
	if len(warnings) > 0 {
		sort.Strings(warnings)
		fmt.Printf("  Warnings (%d):\n", len(warnings))
		for _, w := range warnings {
			fmt.Printf("    ⚠ %s\n", w)
		}
		fmt.Println()
	}
}
