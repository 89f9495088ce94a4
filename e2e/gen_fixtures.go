//go:build ignore

// gen_fixtures writes deterministic images for the batch smoke test.
// Usage: go run gen_fixtures.go <output_dir>
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_fixtures <output_dir>")
		os.Exit(1)
	}
	dir := os.Args[1]
	if err := os.MkdirAll(filepath.Join(dir, "bars"), 0o755); err != nil {
		fail(err)
	}

	// Diagonal gradient: every column and row holds long spans.
	writeJPEG(filepath.Join(dir, "gradient.jpg"), gradient(320, 180))

	// Vertical bars with dark separators: spans break at each separator.
	for i := 1; i <= 3; i++ {
		writePNG(filepath.Join(dir, "bars", fmt.Sprintf("bars-%d.png", i)), bars(160, 120, 8*i))
	}

	// Seeded noise, so reruns give the same bytes.
	writeBMP(filepath.Join(dir, "noise.bmp"), noise(96, 96, 42))

	// Nothing above the default brightness threshold: left unchanged.
	writePNG(filepath.Join(dir, "night.png"), flat(64, 64, color.NRGBA{R: 12, G: 20, B: 40, A: 255}))

	fmt.Fprintf(os.Stderr, "[gen_fixtures] created 6 fixtures in %s\n", dir)
}

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(255 - x*255/w),
				G: uint8((x + y) * 255 / (w + h)),
				B: uint8(y * 255 / h),
				A: 255,
			})
		}
	}
	return img
}

func bars(w, h, period int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{R: uint8(x * 7), G: uint8(255 - y*2), B: uint8(x ^ y), A: 255}
			if x%period == 0 {
				c = color.NRGBA{A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func noise(w, h int, seed int64) *image.NRGBA {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	rng.Read(img.Pix)
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return img
}

func flat(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func writePNG(path string, img image.Image) {
	write(path, func(f *os.File) error { return png.Encode(f, img) })
}

func writeJPEG(path string, img image.Image) {
	write(path, func(f *os.File) error { return jpeg.Encode(f, img, &jpeg.Options{Quality: 90}) })
}

func writeBMP(path string, img image.Image) {
	write(path, func(f *os.File) error { return bmp.Encode(f, img) })
}

func write(path string, encode func(*os.File) error) {
	f, err := os.Create(path)
	if err != nil {
		fail(err)
	}
	defer f.Close()
	if err := encode(f); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "[gen_fixtures] %v\n", err)
	os.Exit(1)
}
