package pixelsort

import (
	"fmt"
	"strconv"
	"strings"
)

// Default thresholds used by BlackMode, BrightnessMode and WhiteMode.
var (
	DefaultBlack = Color{R: 11, G: 220, B: 0, A: 0xff}
	DefaultWhite = Color{R: 57, G: 162, B: 192, A: 0xff}
)

// DefaultBrightness is the threshold of BrightnessMode.
const DefaultBrightness uint8 = 60

// ModeKind selects the threshold test used to detect spans.
type ModeKind uint8

const (
	_ ModeKind = iota
	ModeBlack
	ModeBrightness
	ModeWhite
)

// Valid reports whether k is one of the defined kinds.
func (k ModeKind) Valid() bool {
	return k >= ModeBlack && k <= ModeWhite
}

func (k ModeKind) String() string {
	switch k {
	case ModeBlack:
		return "black"
	case ModeBrightness:
		return "brightness"
	case ModeWhite:
		return "white"
	default:
		return "unknown"
	}
}

// Mode is a threshold test together with its parameter. Color is used by
// the black and white modes, Level by the brightness mode.
//
// The zero Mode, or any Mode with an undefined Kind, is not a valid mode;
// SortWithOptions replaces it with BrightnessMode().
type Mode struct {
	Kind  ModeKind
	Color Color
	Level uint8
}

// Black spans start at the first pixel >= threshold and run while pixels
// stay above it.
func Black(threshold Color) Mode {
	return Mode{Kind: ModeBlack, Color: threshold}
}

// Brightness spans start at the first pixel whose brightness is >= level
// and run while brightness stays above it.
func Brightness(level uint8) Mode {
	return Mode{Kind: ModeBrightness, Level: level}
}

// White spans start at the first pixel <= threshold and run while pixels
// stay below it.
func White(threshold Color) Mode {
	return Mode{Kind: ModeWhite, Color: threshold}
}

func BlackMode() Mode      { return Black(DefaultBlack) }
func BrightnessMode() Mode { return Brightness(DefaultBrightness) }
func WhiteMode() Mode      { return White(DefaultWhite) }

// opens reports whether c can start a span.
func (m Mode) opens(c Color) bool {
	switch m.Kind {
	case ModeBlack:
		return c.Compare(m.Color) >= 0
	case ModeWhite:
		return c.Compare(m.Color) <= 0
	default:
		return c.Brightness() >= m.Level
	}
}

// closes reports whether c ends a span that started before it.
func (m Mode) closes(c Color) bool {
	switch m.Kind {
	case ModeBlack:
		return c.Compare(m.Color) <= 0
	case ModeWhite:
		return c.Compare(m.Color) >= 0
	default:
		return c.Brightness() <= m.Level
	}
}

// Threshold renders the mode parameter in a form ParseMode accepts.
func (m Mode) Threshold() string {
	if m.Kind == ModeBrightness {
		return strconv.Itoa(int(m.Level))
	}
	return m.Color.Hex()
}

func (m Mode) String() string {
	return fmt.Sprintf("%s(%s)", m.Kind, m.Threshold())
}

// ParseMode builds a mode from its name and an optional threshold. An
// empty threshold selects the mode's default.
func ParseMode(name, threshold string) (Mode, error) {
	threshold = strings.TrimSpace(threshold)
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "brightness", "bright":
		if threshold == "" {
			return BrightnessMode(), nil
		}
		v, err := strconv.ParseUint(threshold, 10, 8)
		if err != nil {
			return Mode{}, fmt.Errorf("brightness threshold must be 0-255: %w", err)
		}
		return Brightness(uint8(v)), nil
	case "black":
		if threshold == "" {
			return BlackMode(), nil
		}
		c, err := ParseColor(threshold)
		if err != nil {
			return Mode{}, fmt.Errorf("black threshold: %w", err)
		}
		return Black(c), nil
	case "white":
		if threshold == "" {
			return WhiteMode(), nil
		}
		c, err := ParseColor(threshold)
		if err != nil {
			return Mode{}, fmt.Errorf("white threshold: %w", err)
		}
		return White(c), nil
	default:
		return Mode{}, fmt.Errorf("unknown mode %q (want black, brightness or white)", name)
	}
}

// Direction selects which axis passes run.
type Direction uint8

const (
	Both Direction = iota
	Column
	Row
)

func (d Direction) HasColumn() bool { return d == Both || d == Column }
func (d Direction) HasRow() bool    { return d == Both || d == Row }

func (d Direction) String() string {
	switch d {
	case Both:
		return "both"
	case Column:
		return "column"
	case Row:
		return "row"
	default:
		return "unknown"
	}
}

// ParseDirection accepts both, column(s) and row(s). Empty means Both.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both":
		return Both, nil
	case "column", "columns", "col", "vertical":
		return Column, nil
	case "row", "rows", "horizontal":
		return Row, nil
	default:
		return Both, fmt.Errorf("unknown direction %q (want both, column or row)", s)
	}
}

// Options configures a sort call.
type Options struct {
	Mode      Mode
	Direction Direction

	// Workers bounds the goroutines used per axis phase. Values <= 1
	// sort sequentially.
	Workers int
}

// DefaultOptions sorts both axes with BrightnessMode.
func DefaultOptions() Options {
	return Options{Mode: BrightnessMode(), Direction: Both}
}
