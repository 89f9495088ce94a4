package manifest

import "github.com/AnyUserName/pixelsort/pkg/pixelsort"

// FileName is the manifest written next to the sorted images.
const FileName = "pixelsort.manifest.json"

// Manifest is the top-level output of a batch run.
type Manifest struct {
	Version     int              `json:"version"`
	GeneratedAt string           `json:"generated_at"`
	Generator   string           `json:"generator"` // tool version (semver)
	Preset      string           `json:"preset"`
	Options     OptionsInfo      `json:"options"`
	BuildInfo   *BuildInfo       `json:"build_info,omitempty"`
	Images      map[string]Image `json:"images"`
	Stats       Stats            `json:"stats"`
}

// OptionsInfo records the sort options in text form.
type OptionsInfo struct {
	Mode      string `json:"mode"`      // "black", "brightness", "white"
	Threshold string `json:"threshold"` // "60", "#0bdc00"
	Direction string `json:"direction"` // "both", "column", "row"
}

// BuildInfo captures run-time parameters for diagnostics.
type BuildInfo struct {
	Workers     int `json:"workers"`      // images processed concurrently
	SortWorkers int `json:"sort_workers"` // goroutines per axis phase
}

// Image describes one source image and its sorted output.
type Image struct {
	Source SourceInfo      `json:"source"`
	Output OutputInfo      `json:"output"`
	Spans  pixelsort.Stats `json:"spans"`
}

// SourceInfo holds metadata about the input file.
type SourceInfo struct {
	Path   string `json:"path"` // relative to the input directory
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
	Size   int64  `json:"size"`
	Hash   string `json:"hash"` // xxhash64 of the file, 16 hex chars
}

// OutputInfo is the sorted file written for an image.
type OutputInfo struct {
	Format    string `json:"format"`
	Size      int64  `json:"size"`       // bytes on disk
	Hash      string `json:"hash"`       // xxhash64 of the file, 16 hex chars
	PixelHash string `json:"pixel_hash"` // xxhash64 of the sorted pixels
	Path      string `json:"path"`       // relative to the manifest
}

// Stats aggregates run metrics.
type Stats struct {
	TotalImages      int   `json:"total_images"`
	TotalInputBytes  int64 `json:"total_input_bytes"`
	TotalOutputBytes int64 `json:"total_output_bytes"`
	TotalPixels      int64 `json:"total_pixels"`
	TotalSpans       int64 `json:"total_spans"`
	MovedPixels      int64 `json:"moved_pixels"`
	Unchanged        int   `json:"unchanged"` // images where no pixel moved
}

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1
