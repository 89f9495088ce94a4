package preset

import (
	"sort"

	"github.com/AnyUserName/pixelsort/pkg/pixelsort"
)

// DefaultName is the preset used when none is requested.
const DefaultName = "default"

// Preset is a named sort configuration.
type Preset struct {
	Name        string
	Description string
	Mode        pixelsort.Mode
	Direction   pixelsort.Direction
}

// Options returns the sort options of the preset.
func (p Preset) Options(workers int) pixelsort.Options {
	return pixelsort.Options{Mode: p.Mode, Direction: p.Direction, Workers: workers}
}

// Built-in presets.
var presets = map[string]Preset{
	"default": {
		Name:        "default",
		Description: "brightness 60, columns then rows",
		Mode:        pixelsort.BrightnessMode(),
		Direction:   pixelsort.Both,
	},
	"black": {
		Name:        "black",
		Description: "black threshold #0bdc00, columns then rows",
		Mode:        pixelsort.BlackMode(),
		Direction:   pixelsort.Both,
	},
	"white": {
		Name:        "white",
		Description: "white threshold #39a2c0, columns then rows",
		Mode:        pixelsort.WhiteMode(),
		Direction:   pixelsort.Both,
	},
	"columns": {
		Name:        "columns",
		Description: "brightness 60, vertical streaks only",
		Mode:        pixelsort.BrightnessMode(),
		Direction:   pixelsort.Column,
	},
	"rows": {
		Name:        "rows",
		Description: "brightness 60, horizontal streaks only",
		Mode:        pixelsort.BrightnessMode(),
		Direction:   pixelsort.Row,
	},
	"glow": {
		Name:        "glow",
		Description: "brightness 160, sorts highlights only",
		Mode:        pixelsort.Brightness(160),
		Direction:   pixelsort.Both,
	},
	"shadows": {
		Name:        "shadows",
		Description: "white threshold #404040, sorts dark regions",
		Mode:        pixelsort.White(pixelsort.New(64, 64, 64)),
		Direction:   pixelsort.Both,
	},
}

// Lookup returns the named preset. Unknown names report false so callers
// can list the available ones.
func Lookup(name string) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// Names returns all preset names, sorted.
func Names() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
