package encoder

import (
	"bytes"
	"image"

	"golang.org/x/image/bmp"
)

// BMPEncoder writes uncompressed 24-bit BMP files via golang.org/x/image.
type BMPEncoder struct{}

func (e *BMPEncoder) Format() string       { return "bmp" }
func (e *BMPEncoder) Extensions() []string { return []string{"bmp"} }
func (e *BMPEncoder) Lossless() bool       { return true }

func (e *BMPEncoder) Encode(img image.Image, _ int) ([]byte, error) {
	b := img.Bounds()
	var buf bytes.Buffer
	buf.Grow(54 + 3*b.Dx()*b.Dy())
	if err := bmp.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
