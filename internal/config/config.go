// Package config loads run defaults from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/AnyUserName/pixelsort/internal/preset"
	"github.com/AnyUserName/pixelsort/pkg/pixelsort"
)

// DefaultEnvFile is read when no --env-file is given. It is optional.
const DefaultEnvFile = ".env"

// Environment variables understood by Load.
const (
	EnvPreset    = "PIXELSORT_PRESET"
	EnvMode      = "PIXELSORT_MODE"
	EnvThreshold = "PIXELSORT_THRESHOLD"
	EnvDirection = "PIXELSORT_DIRECTION"
	EnvWorkers   = "PIXELSORT_WORKERS"
	EnvFormat    = "PIXELSORT_FORMAT"
	EnvQuality   = "PIXELSORT_QUALITY"
)

// Config is the merged result of the env file, the environment and
// command-line overrides. Empty strings and zero ints mean "not set".
type Config struct {
	Preset    string
	Mode      string
	Threshold string
	Direction string
	Workers   int
	Format    string
	Quality   int
}

// Load reads path (or DefaultEnvFile when path is empty) and overlays the
// process environment, which wins over the file. A missing default file
// is not an error; a missing explicit file is.
func Load(path string) (Config, error) {
	file := map[string]string{}
	name := path
	if name == "" {
		name = DefaultEnvFile
	}
	vals, err := godotenv.Read(name)
	switch {
	case err == nil:
		file = vals
	case path == "" && errors.Is(err, fs.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("env file %s: %w", name, err)
	}

	get := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return strings.TrimSpace(v)
		}
		return strings.TrimSpace(file[key])
	}

	cfg := Config{
		Preset:    get(EnvPreset),
		Mode:      get(EnvMode),
		Threshold: get(EnvThreshold),
		Direction: get(EnvDirection),
		Format:    get(EnvFormat),
	}
	if cfg.Workers, err = atoi(EnvWorkers, get(EnvWorkers)); err != nil {
		return Config{}, err
	}
	if cfg.Quality, err = atoi(EnvQuality, get(EnvQuality)); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func atoi(key, s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s: must not be negative, got %d", key, n)
	}
	return n, nil
}

// PresetName returns the selected preset, or preset.DefaultName.
func (c Config) PresetName() string {
	if c.Preset == "" {
		return preset.DefaultName
	}
	return c.Preset
}

// SortOptions starts from the selected preset and applies the mode,
// threshold and direction overrides. A threshold without a mode keeps
// the preset's mode kind.
func (c Config) SortOptions(workers int) (pixelsort.Options, error) {
	p, ok := preset.Lookup(c.PresetName())
	if !ok {
		return pixelsort.Options{}, fmt.Errorf("unknown preset %q (available: %s)",
			c.Preset, strings.Join(preset.Names(), ", "))
	}
	opts := p.Options(workers)

	if c.Mode != "" || c.Threshold != "" {
		name := c.Mode
		if name == "" {
			name = p.Mode.Kind.String()
		}
		m, err := pixelsort.ParseMode(name, c.Threshold)
		if err != nil {
			return pixelsort.Options{}, err
		}
		opts.Mode = m
	}
	if c.Direction != "" {
		d, err := pixelsort.ParseDirection(c.Direction)
		if err != nil {
			return pixelsort.Options{}, err
		}
		opts.Direction = d
	}
	return opts, nil
}
