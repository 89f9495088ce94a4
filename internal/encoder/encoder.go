package encoder

import (
	"image"
)

// Encoder writes an image in one output format.
type Encoder interface {
	// Format returns the format name (e.g. "png", "jpeg", "bmp", "tiff").
	Format() string

	// Encode converts the image to bytes. Lossy encoders use quality
	// (1-100); lossless ones ignore it.
	Encode(img image.Image, quality int) ([]byte, error)

	// Extensions lists the file extensions without dot, preferred first.
	Extensions() []string

	// Lossless reports whether decoding the output gives back the exact
	// pixels that were encoded.
	Lossless() bool
}
