package encoder

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/AnyUserName/pixelsort/pkg/pixelsort"
)

func testImage() *pixelsort.RGBImage {
	img := pixelsort.NewRGBImage(5, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			img.SetPixel(x, y, pixelsort.New(uint8(x*50), uint8(y*80), uint8(x*y*10)))
		}
	}
	return img
}

func TestLosslessRoundTrip(t *testing.T) {
	r := NewRegistry()
	src := testImage()
	for _, f := range r.Available() {
		enc := r.Get(f)
		if !enc.Lossless() {
			continue
		}
		t.Run(f, func(t *testing.T) {
			data, err := enc.Encode(src, 0)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			dec, format, err := image.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if format != f {
				t.Errorf("decoded format: got %q, want %q", format, f)
			}
			got := pixelsort.FromImage(dec)
			if !bytes.Equal(got.Pix, src.Pix) {
				t.Error("pixels changed in round trip")
			}
		})
	}
}

func TestJPEGEncodes(t *testing.T) {
	enc := NewRegistry().Get("jpg")
	if enc == nil || enc.Format() != "jpeg" {
		t.Fatalf("jpg extension should map to jpeg, got %v", enc)
	}
	data, err := enc.Encode(testImage(), 50)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode config: %v", err)
	}
	if cfg.Width != 5 || cfg.Height != 3 {
		t.Errorf("size: got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestResolve(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		requested, source, want string
	}{
		{"", "png", "png"},
		{"", "jpeg", "jpeg"},
		{"", "tif", "tiff"},
		{"", "webp", "png"},
		{"", "gif", "png"},
		{"bmp", "jpeg", "bmp"},
		{"BMP", "jpeg", "bmp"},
		{"avif", "jpeg", "jpeg"},
		{"avif", "webp", "png"},
	}
	for _, tt := range tests {
		if got := r.Resolve(tt.requested, tt.source).Format(); got != tt.want {
			t.Errorf("Resolve(%q, %q) = %q, want %q", tt.requested, tt.source, got, tt.want)
		}
	}
}

func TestForPath(t *testing.T) {
	r := NewRegistry()
	for path, want := range map[string]string{
		"out.png":      "png",
		"a/b/out.JPG":  "jpeg",
		"out.tif":      "tiff",
		"sorted.bmp":   "bmp",
		"x.final.jpeg": "jpeg",
	} {
		enc, err := r.ForPath(path)
		if err != nil {
			t.Errorf("ForPath(%q): %v", path, err)
			continue
		}
		if enc.Format() != want {
			t.Errorf("ForPath(%q) = %q, want %q", path, enc.Format(), want)
		}
	}
	for _, path := range []string{"noext", "out.webp"} {
		if _, err := r.ForPath(path); err == nil {
			t.Errorf("ForPath(%q): expected error", path)
		}
	}
}

func TestRegistryString(t *testing.T) {
	r := NewRegistry()
	if got := r.String(); got != "encoders: png, bmp, tiff, jpeg" {
		t.Errorf("String: got %q", got)
	}
	empty := &Registry{encoders: map[string]Encoder{}, byExt: map[string]Encoder{}}
	if got := empty.String(); got != "no encoders available" {
		t.Errorf("empty String: got %q", got)
	}
}

func TestPNGIsOpaque(t *testing.T) {
	data, err := (&PNGEncoder{}).Encode(testImage(), 0)
	if err != nil {
		t.Fatal(err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if img.ColorModel() != color.RGBAModel {
		t.Errorf("opaque source should encode as 24-bit RGB, got model %T", img.ColorModel())
	}
}
