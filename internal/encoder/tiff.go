package encoder

import (
	"bytes"
	"image"

	"golang.org/x/image/tiff"
)

// TIFFEncoder writes deflate-compressed TIFF files via golang.org/x/image.
type TIFFEncoder struct{}

func (e *TIFFEncoder) Format() string       { return "tiff" }
func (e *TIFFEncoder) Extensions() []string { return []string{"tiff", "tif"} }
func (e *TIFFEncoder) Lossless() bool       { return true }

func (e *TIFFEncoder) Encode(img image.Image, _ int) ([]byte, error) {
	var buf bytes.Buffer
	err := tiff.Encode(&buf, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
