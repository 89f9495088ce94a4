package pixelsort

import (
	"testing"
)

func TestNewIsOpaque(t *testing.T) {
	c := New(0, 127, 255)
	want := Color{R: 0, G: 127, B: 255, A: 255}
	if c != want {
		t.Fatalf("New: got %v, want %v", c, want)
	}
	if (Color{}).WithAlpha(255) != New(0, 0, 0) {
		t.Error("zero color with alpha 255 should equal New(0,0,0)")
	}
}

func TestWithAlpha(t *testing.T) {
	got := New(128, 32, 64).WithAlpha(96)
	want := Color{R: 128, G: 32, B: 64, A: 96}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRaw(t *testing.T) {
	tests := []struct {
		c   Color
		raw int32
	}{
		{New(11, 220, 0), -16000000},
		{New(57, 162, 192), -13000000},
		{New(0, 0, 0), -16777216},
		{New(255, 255, 255), -1},
		{Color{}, 0},
		{Color{R: 255, G: 255, B: 255, A: 127}, 0x7fffffff},
	}
	for _, tt := range tests {
		if got := tt.c.Raw(); got != tt.raw {
			t.Errorf("%v.Raw() = %d, want %d", tt.c, got, tt.raw)
		}
		if got := FromRaw(tt.raw); got != tt.c {
			t.Errorf("FromRaw(%d) = %v, want %v", tt.raw, got, tt.c)
		}
	}
}

func TestRawRoundTripAllBytes(t *testing.T) {
	// Every byte value in every channel position.
	for v := 0; v < 256; v++ {
		b := uint8(v)
		for _, c := range []Color{
			{R: b, G: 1, B: 2, A: 3},
			{R: 4, G: b, B: 5, A: 6},
			{R: 7, G: 8, B: b, A: 9},
			{R: 10, G: 11, B: 12, A: b},
		} {
			if got := FromRaw(c.Raw()); got != c {
				t.Fatalf("round trip of %v gave %v", c, got)
			}
		}
	}
}

func TestCompare(t *testing.T) {
	c1 := New(11, 220, 0)
	c2 := New(57, 162, 192)
	if c1.Compare(c2) != -1 {
		t.Errorf("%v should sort before %v", c1, c2)
	}
	if c2.Compare(c1) != 1 {
		t.Errorf("%v should sort after %v", c2, c1)
	}
	if c1.Compare(New(11, 220, 0)) != 0 {
		t.Error("equal colors should compare equal")
	}

	// Red outranks green outranks blue for opaque colors.
	if New(1, 0, 0).Compare(New(0, 255, 255)) != 1 {
		t.Error("red should be the primary key")
	}
	if New(0, 1, 0).Compare(New(0, 0, 255)) != 1 {
		t.Error("green should outrank blue")
	}

	// Alpha is the most significant byte of a signed integer.
	if New(0, 0, 0).WithAlpha(0).Compare(New(255, 255, 255).WithAlpha(127)) != -1 {
		t.Error("alpha should dominate the order")
	}
	if New(0, 0, 0).Compare(New(0, 0, 0).WithAlpha(0)) != -1 {
		t.Error("opaque colors are negative when packed and sort first")
	}
}

func TestBrightness(t *testing.T) {
	if got := New(11, 220, 0).Brightness(); got != 220 {
		t.Errorf("brightness: got %d, want 220", got)
	}
	if got := New(0, 0, 0).Brightness(); got != 0 {
		t.Errorf("brightness: got %d, want 0", got)
	}
	if got := New(3, 2, 9).Brightness(); got != 9 {
		t.Errorf("brightness: got %d, want 9", got)
	}
}

func TestGray(t *testing.T) {
	if got := New(255, 255, 255).Gray(); got != 255 {
		t.Errorf("gray: got %d, want 255", got)
	}
	if got := New(1, 1, 0).Gray(); got != 0 {
		t.Errorf("gray should truncate: got %d", got)
	}
	if got := New(10, 20, 31).Gray(); got != 20 {
		t.Errorf("gray: got %d, want 20", got)
	}
}

func TestRGBAMatchesNRGBA(t *testing.T) {
	c := Color{R: 200, G: 100, B: 50, A: 128}
	r, g, b, a := c.RGBA()
	if a != 128*0x101 {
		t.Errorf("alpha: got %d", a)
	}
	if r > a || g > a || b > a {
		t.Errorf("premultiplied channels exceed alpha: %d %d %d > %d", r, g, b, a)
	}
	r, _, _, _ = New(255, 0, 0).RGBA()
	if r != 0xffff {
		t.Errorf("opaque red: got %#x", r)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#0bdc00", New(11, 220, 0), false},
		{"#fff", New(255, 255, 255), false},
		{"#39a2c080", Color{R: 57, G: 162, B: 192, A: 128}, false},
		{"11,220,0", New(11, 220, 0), false},
		{" 57, 162, 192 ", New(57, 162, 192), false},
		{"1,2,3,4", Color{R: 1, G: 2, B: 3, A: 4}, false},
		{"-16000000", New(11, 220, 0), false},
		{"-13000000", New(57, 162, 192), false},
		{"", Color{}, true},
		{"#12", Color{}, true},
		{"#zzzzzz", Color{}, true},
		{"1,2", Color{}, true},
		{"1,2,300", Color{}, true},
		{"teal", Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHex(t *testing.T) {
	if got := New(11, 220, 0).Hex(); got != "#0bdc00" {
		t.Errorf("hex: got %q", got)
	}
	if got := New(1, 2, 3).WithAlpha(4).Hex(); got != "#01020304" {
		t.Errorf("hex with alpha: got %q", got)
	}
}
