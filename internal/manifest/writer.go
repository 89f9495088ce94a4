package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/AnyUserName/pixelsort/pkg/pixelsort"
)

// New creates an empty manifest with defaults.
func New(generator, presetName string, opts pixelsort.Options) *Manifest {
	return &Manifest{
		Version:     SupportedManifestVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Generator:   generator,
		Preset:      presetName,
		Options: OptionsInfo{
			Mode:      opts.Mode.Kind.String(),
			Threshold: opts.Mode.Threshold(),
			Direction: opts.Direction.String(),
		},
		Images: make(map[string]Image),
	}
}

// SortOptions parses the recorded options back into pixelsort options.
func (m *Manifest) SortOptions() (pixelsort.Options, error) {
	mode, err := pixelsort.ParseMode(m.Options.Mode, m.Options.Threshold)
	if err != nil {
		return pixelsort.Options{}, err
	}
	dir, err := pixelsort.ParseDirection(m.Options.Direction)
	if err != nil {
		return pixelsort.Options{}, err
	}
	return pixelsort.Options{Mode: mode, Direction: dir}, nil
}

// ComputeStats recalculates aggregate statistics from images.
func (m *Manifest) ComputeStats() {
	var s Stats
	s.TotalImages = len(m.Images)
	for _, img := range m.Images {
		s.TotalInputBytes += img.Source.Size
		s.TotalOutputBytes += img.Output.Size
		s.TotalPixels += int64(img.Source.Width) * int64(img.Source.Height)
		s.TotalSpans += int64(img.Spans.Spans)
		s.MovedPixels += int64(img.Spans.MovedPixels)
		if img.Spans.MovedPixels == 0 {
			s.Unchanged++
		}
	}
	m.Stats = s
}

// WriteJSON serializes the manifest to a JSON file with stable ordering.
func WriteJSON(m *Manifest, path string) error {
	m.ComputeStats()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

// ReadJSON loads a manifest file.
func ReadJSON(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}
