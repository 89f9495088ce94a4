package pipeline

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Source is an image file found under the input directory.
type Source struct {
	AbsPath string
	RelPath string // slash-separated, relative to the input directory
	Key     string // RelPath without extension
	Format  string // normalized: png, jpeg, gif, webp, bmp, tiff
	Size    int64
}

// formats maps recognized extensions to decoder format names.
var formats = map[string]string{
	".png":  "png",
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".gif":  "gif",
	".webp": "webp",
	".bmp":  "bmp",
	".tif":  "tiff",
	".tiff": "tiff",
}

// FormatOf returns the normalized format for a file name, or "".
func FormatOf(name string) string {
	return formats[strings.ToLower(filepath.Ext(name))]
}

// ScanImages walks inputDir and returns every image source, sorted by
// key. Hidden directories and files are skipped, as is anything below
// skipDir (typically the output directory when it is nested in the input).
func ScanImages(inputDir, skipDir string) ([]Source, error) {
	var sources []Source

	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != inputDir && (strings.HasPrefix(name, ".") || path == skipDir) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}
		format := FormatOf(name)
		if format == "" {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(inputDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		sources = append(sources, Source{
			AbsPath: path,
			RelPath: rel,
			Key:     strings.TrimSuffix(rel, filepath.Ext(rel)),
			Format:  format,
			Size:    info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(sources, func(i, j int) bool { return sources[i].RelPath < sources[j].RelPath })

	// a.png and a.jpg would share a key; later ones keep their extension.
	seen := make(map[string]bool, len(sources))
	for i := range sources {
		if seen[sources[i].Key] {
			sources[i].Key = sources[i].RelPath
		}
		seen[sources[i].Key] = true
	}
	return sources, nil
}
