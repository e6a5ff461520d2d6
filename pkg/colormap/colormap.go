// Package colormap assigns distinct colors to plot series and figure
// elements.
//
// Colors are chosen in CIE L*a*b* under the default illuminant and
// rendered to sRGB. Series colors cycle through a fixed set of eight; figure
// colors spread around a hue circle with a van der Corput sequence and never
// repeat.
package colormap

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/nixprime/jhome/pkg/colorspace"
)

// Colormap maps normalized values [0, 1] or element indices to colors.
type Colormap interface {
	At(t float64) color.Color
	AtIndex(i int) color.Color
}

var byName = map[string]Colormap{
	"series": Series,
	"fill":   FigFill,
	"line":   FigLine,
}

// ByName returns the colormap registered as "series", "fill" or "line".
func ByName(name string) (Colormap, bool) {
	cm, ok := byName[name]
	return cm, ok
}

// Names returns the registered colormap names, sorted.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Colors returns the first n colors of cm as #rrggbb strings. n == 0 yields
// an empty slice.
func Colors(cm Colormap, n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("color count %d: %w", n, colorspace.ErrOutOfRange)
	}
	out := make([]string, n)
	for i := range out {
		out[i] = Hex(cm.AtIndex(i))
	}
	return out, nil
}

// ColorAt returns the color cm assigns to the normalized value t as
// #rrggbb. t must lie in [0, 1].
func ColorAt(cm Colormap, t float64) (string, error) {
	if math.IsNaN(t) || t < 0 || t > 1 {
		return "", fmt.Errorf("position %v: %w", t, colorspace.ErrOutOfRange)
	}
	return Hex(cm.At(t)), nil
}

func labColor(l, a, b float64) colorspace.SRGB {
	return colorspace.LAB{L: l, A: a, B: b}.ToSRGB()
}

// Hex renders c as #rrggbb.
func Hex(c color.Color) string {
	if s, ok := c.(colorspace.SRGB); ok {
		return s.Hex()
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
