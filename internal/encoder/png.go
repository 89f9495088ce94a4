package encoder

import (
	"bytes"
	"image"
	"image/png"
)

// PNGEncoder encodes images to PNG using Go's standard library.
// It is the fallback output format.
type PNGEncoder struct{}

func (e *PNGEncoder) Format() string       { return "png" }
func (e *PNGEncoder) Extensions() []string { return []string{"png"} }
func (e *PNGEncoder) Lossless() bool       { return true }

func (e *PNGEncoder) Encode(img image.Image, _ int) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(512 * 1024)

	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
