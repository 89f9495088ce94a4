package pixelsort

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// Color is an 8-bit RGBA sample. Colors are ordered as if packed
// big-endian into a signed 32-bit integer as (alpha, red, green, blue),
// which matches the color representation of Processing.
type Color struct {
	R, G, B, A uint8
}

// New returns an opaque color.
func New(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// FromRaw unpacks a signed ARGB integer. It is the inverse of Raw.
func FromRaw(v int32) Color {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	return Color{R: b[1], G: b[2], B: b[3], A: b[0]}
}

// WithAlpha returns a copy of c with the alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Raw packs c as a signed ARGB integer, e.g. New(11, 220, 0).Raw() == -16000000.
func (c Color) Raw() int32 {
	return int32(uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B))
}

// Compare returns -1, 0 or +1 depending on whether c sorts before, equal
// to or after o.
func (c Color) Compare(o Color) int {
	return cmp.Compare(c.Raw(), o.Raw())
}

// Brightness is the largest of the three color channels.
func (c Color) Brightness() uint8 {
	return max(c.R, c.G, c.B)
}

// Gray is the truncated mean of the three color channels.
func (c Color) Gray() uint8 {
	return uint8((uint16(c.R) + uint16(c.G) + uint16(c.B)) / 3)
}

// RGBA implements color.Color. The channels are not premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	r *= uint32(c.A)
	r /= 0xff
	g = uint32(c.G)
	g |= g << 8
	g *= uint32(c.A)
	g /= 0xff
	b = uint32(c.B)
	b |= b << 8
	b *= uint32(c.A)
	b /= 0xff
	a = uint32(c.A)
	a |= a << 8
	return
}

// Hex renders c as #rrggbb, or #rrggbbaa when it is not opaque.
func (c Color) Hex() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c Color) String() string {
	return fmt.Sprintf("Color(%d, %d, %d, a=%d)", c.R, c.G, c.B, c.A)
}

// ParseColor reads a color in one of these forms:
//
//	#rgb, #rrggbb, #rrggbbaa
//	r,g,b or r,g,b,a (decimal channels)
//	-16000000 (packed signed ARGB)
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, fmt.Errorf("empty color")
	}

	if s[0] == '#' {
		return parseHex(s[1:])
	}

	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		if len(parts) != 3 && len(parts) != 4 {
			return Color{}, fmt.Errorf("color %q: want 3 or 4 channels, got %d", s, len(parts))
		}
		var ch [4]uint8
		ch[3] = 0xff
		for i, p := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return Color{}, fmt.Errorf("color %q: channel %d: %w", s, i, err)
			}
			ch[i] = uint8(v)
		}
		return Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
	}

	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return Color{}, fmt.Errorf("unsupported color format: %s", s)
	}
	return FromRaw(int32(v)), nil
}

func parseHex(h string) (Color, error) {
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("invalid hex color length: #%s", h)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color #%s: %w", h, err)
	}
	if len(h) == 6 {
		return New(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
