package encoder

import (
	"bytes"
	"image"
	"image/jpeg"
)

// DefaultJPEGQuality is used when no quality is requested.
const DefaultJPEGQuality = 92

// JPEGEncoder encodes images to JPEG using Go's standard library.
// Sorted spans survive JPEG poorly; prefer a lossless format.
type JPEGEncoder struct{}

func (e *JPEGEncoder) Format() string       { return "jpeg" }
func (e *JPEGEncoder) Extensions() []string { return []string{"jpg", "jpeg"} }
func (e *JPEGEncoder) Lossless() bool       { return false }

func (e *JPEGEncoder) Encode(img image.Image, quality int) ([]byte, error) {
	if quality <= 0 || quality > 100 {
		quality = DefaultJPEGQuality
	}

	var buf bytes.Buffer
	buf.Grow(256 * 1024)

	err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
