package pixelsort

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Buffer is a mutable grid of color samples addressed by (x, y) with
// 0 <= x < Width() and 0 <= y < Height().
type Buffer interface {
	Width() int
	Height() int
	Pixel(x, y int) Color
	SetPixel(x, y int, c Color)
}

// RGBImage is an opaque image with three bytes per pixel, stored row by row.
// It implements both Buffer and image.Image.
type RGBImage struct {
	Pix    []uint8
	Stride int
	W, H   int
}

// NewRGBImage returns a black image of the given size.
func NewRGBImage(w, h int) *RGBImage {
	w, h = max(w, 0), max(h, 0)
	return &RGBImage{
		Pix:    make([]uint8, 3*w*h),
		Stride: 3 * w,
		W:      w,
		H:      h,
	}
}

// FromImage copies img into a new RGBImage anchored at (0, 0). Alpha is
// discarded, leaving the straight (non-premultiplied) color.
func FromImage(img image.Image) *RGBImage {
	src := imaging.Clone(img)
	b := src.Bounds()
	out := NewRGBImage(b.Dx(), b.Dy())
	for y := 0; y < out.H; y++ {
		si := y * src.Stride
		di := y * out.Stride
		for x := 0; x < out.W; x++ {
			copy(out.Pix[di:di+3], src.Pix[si:si+3])
			si += 4
			di += 3
		}
	}
	return out
}

func (m *RGBImage) Width() int  { return m.W }
func (m *RGBImage) Height() int { return m.H }

func (m *RGBImage) PixOffset(x, y int) int {
	return y*m.Stride + x*3
}

func (m *RGBImage) Pixel(x, y int) Color {
	i := m.PixOffset(x, y)
	s := m.Pix[i : i+3 : i+3]
	return New(s[0], s[1], s[2])
}

func (m *RGBImage) SetPixel(x, y int, c Color) {
	i := m.PixOffset(x, y)
	s := m.Pix[i : i+3 : i+3]
	s[0] = c.R
	s[1] = c.G
	s[2] = c.B
}

func (m *RGBImage) ColorModel() color.Model { return color.NRGBAModel }

func (m *RGBImage) Bounds() image.Rectangle { return image.Rect(0, 0, m.W, m.H) }

// Opaque lets encoders skip the alpha channel.
func (m *RGBImage) Opaque() bool { return true }

func (m *RGBImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(m.Bounds())) {
		return color.NRGBA{}
	}
	c := m.Pixel(x, y)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// NRGBA converts m to an opaque *image.NRGBA.
func (m *RGBImage) NRGBA() *image.NRGBA {
	out := image.NewNRGBA(m.Bounds())
	for y := 0; y < m.H; y++ {
		si := y * m.Stride
		di := y * out.Stride
		for x := 0; x < m.W; x++ {
			copy(out.Pix[di:di+3], m.Pix[si:si+3])
			out.Pix[di+3] = 0xff
			si += 3
			di += 4
		}
	}
	return out
}

// Clone returns a deep copy of m.
func (m *RGBImage) Clone() *RGBImage {
	out := &RGBImage{Pix: make([]uint8, len(m.Pix)), Stride: m.Stride, W: m.W, H: m.H}
	copy(out.Pix, m.Pix)
	return out
}
