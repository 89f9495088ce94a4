package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/blang/semver"
	"github.com/spf13/cobra"

	"github.com/AnyUserName/pixelsort/internal/encoder"
	"github.com/AnyUserName/pixelsort/internal/hasher"
	"github.com/AnyUserName/pixelsort/internal/manifest"
	"github.com/AnyUserName/pixelsort/internal/pipeline"
)

var validatePixels bool

var validateCmd = &cobra.Command{
	Use:   "validate <out_dir_or_manifest>",
	Short: "Validate a pixelsort manifest and check the files it references",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validatePixels, "pixels", false, "decode lossless outputs and compare pixel hashes")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	path, err := manifestPath(args[0])
	if err != nil {
		return err
	}
	m, err := manifest.ReadJSON(path)
	if err != nil {
		return err
	}

	logVerbose("validating %d images against %s", len(m.Images), path)
	errs := validateManifest(m, filepath.Dir(path), validatePixels)

	if len(errs) == 0 {
		fmt.Println("  ✓ Manifest is valid")
		fmt.Printf("  ✓ %d images, all outputs present and unmodified\n", len(m.Images))
		return nil
	}

	fmt.Printf("  ✗ Manifest has %d error(s):\n", len(errs))
	for _, e := range errs {
		fmt.Printf("    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errs))
}

// validateManifest checks m against the files under baseDir. Errors are
// returned sorted so the output is stable.
func validateManifest(m *manifest.Manifest, baseDir string, checkPixels bool) []string {
	var errs []string

	if m.Version != manifest.SupportedManifestVersion {
		errs = append(errs, fmt.Sprintf("unsupported manifest version: %d", m.Version))
	}
	if gen, err := semver.Parse(m.Generator); err != nil {
		errs = append(errs, fmt.Sprintf("invalid generator version %q: %v", m.Generator, err))
	} else if gen.Major != toolVersion.Major {
		errs = append(errs, fmt.Sprintf("manifest written by pixelsort %s, incompatible with %s", gen, toolVersion))
	}
	if _, err := m.SortOptions(); err != nil {
		errs = append(errs, fmt.Sprintf("options: %v", err))
	}

	registry := encoder.NewRegistry()
	seenPaths := map[string]string{}
	for key, img := range m.Images {
		if img.Source.Width <= 0 || img.Source.Height <= 0 {
			errs = append(errs, fmt.Sprintf("image %q: invalid dimensions %dx%d",
				key, img.Source.Width, img.Source.Height))
		}
		if img.Output.Hash == "" {
			errs = append(errs, fmt.Sprintf("image %q: missing output hash", key))
		}
		if img.Output.Path == "" {
			errs = append(errs, fmt.Sprintf("image %q: missing output path", key))
			continue
		}
		if other, ok := seenPaths[img.Output.Path]; ok {
			errs = append(errs, fmt.Sprintf("image %q: output path %q also used by %q", key, img.Output.Path, other))
		}
		seenPaths[img.Output.Path] = key

		fullPath := filepath.Join(baseDir, filepath.FromSlash(img.Output.Path))
		info, err := os.Stat(fullPath)
		if err != nil {
			errs = append(errs, fmt.Sprintf("image %q: file not found: %s", key, img.Output.Path))
			continue
		}
		if info.Size() != img.Output.Size {
			errs = append(errs, fmt.Sprintf("image %q: size mismatch: manifest=%d, disk=%d",
				key, img.Output.Size, info.Size()))
		}
		h, err := hasher.FileHash(fullPath, 0)
		if err != nil {
			errs = append(errs, fmt.Sprintf("image %q: hash %s: %v", key, img.Output.Path, err))
			continue
		}
		if img.Output.Hash != "" && h != img.Output.Hash {
			errs = append(errs, fmt.Sprintf("image %q: hash mismatch: manifest=%s, disk=%s", key, img.Output.Hash, h))
		}

		enc := registry.Get(img.Output.Format)
		if !checkPixels || enc == nil || !enc.Lossless() {
			continue
		}
		data, err := os.ReadFile(fullPath)
		if err != nil {
			errs = append(errs, fmt.Sprintf("image %q: read output: %v", key, err))
			continue
		}
		decoded, err := pipeline.Decode(data)
		if err != nil {
			errs = append(errs, fmt.Sprintf("image %q: decode output: %v", key, err))
			continue
		}
		if h := hasher.PixelHash(decoded, 0); h != img.Output.PixelHash {
			errs = append(errs, fmt.Sprintf("image %q: pixel hash mismatch: manifest=%s, decoded=%s",
				key, img.Output.PixelHash, h))
		}
	}

	if m.Stats.TotalImages != len(m.Images) {
		errs = append(errs, fmt.Sprintf("stats.total_images mismatch: %d != %d", m.Stats.TotalImages, len(m.Images)))
	}

	sort.Strings(errs)
	return errs
}
