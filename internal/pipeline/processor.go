package pipeline

import (
	"bytes"
	"fmt"
	_ "image/gif"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/AnyUserName/pixelsort/internal/encoder"
	"github.com/AnyUserName/pixelsort/internal/hasher"
	"github.com/AnyUserName/pixelsort/internal/manifest"
	"github.com/AnyUserName/pixelsort/pkg/pixelsort"
)

type processResult struct {
	key   string
	image manifest.Image
	err   error
}

// Decode reads and decodes an image file, applying EXIF orientation so
// spans follow the picture as it is displayed.
func Decode(data []byte) (*pixelsort.RGBImage, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	return pixelsort.FromImage(img), nil
}

// processImage handles a single source: read, hash, decode, sort,
// encode, write.
func processImage(src Source, cfg Config, registry *encoder.Registry) processResult {
	result := processResult{key: src.Key}

	data, err := os.ReadFile(src.AbsPath)
	if err != nil {
		result.err = fmt.Errorf("read %s: %w", src.RelPath, err)
		return result
	}

	img, err := Decode(data)
	if err != nil {
		result.err = fmt.Errorf("decode %s: %w", src.RelPath, err)
		return result
	}

	stats := pixelsort.SortWithOptions(img, cfg.Options)

	enc := registry.Resolve(cfg.Format, src.Format)
	out, err := enc.Encode(img, cfg.Quality)
	if err != nil {
		result.err = fmt.Errorf("encode %s as %s: %w", src.RelPath, enc.Format(), err)
		return result
	}
	outHash := hasher.ContentHash(out, 0)

	// key.hash.ext, next to the key's subdirectory
	keyDir := filepath.Dir(src.Key)
	fileName := fmt.Sprintf("%s.%s.%s", filepath.Base(src.Key), outHash[:hasher.NameLen], enc.Extensions()[0])
	relPath := filepath.ToSlash(filepath.Join(keyDir, fileName))
	outPath := filepath.Join(cfg.OutputDir, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		result.err = fmt.Errorf("create %s: %w", keyDir, err)
		return result
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		result.err = fmt.Errorf("write %s: %w", relPath, err)
		return result
	}

	result.image = manifest.Image{
		Source: manifest.SourceInfo{
			Path:   src.RelPath,
			Width:  img.W,
			Height: img.H,
			Format: src.Format,
			Size:   int64(len(data)),
			Hash:   hasher.ContentHash(data, 0),
		},
		Output: manifest.OutputInfo{
			Format:    enc.Format(),
			Size:      int64(len(out)),
			Hash:      outHash,
			PixelHash: hasher.PixelHash(img, 0),
			Path:      relPath,
		},
		Spans: stats,
	}
	return result
}
