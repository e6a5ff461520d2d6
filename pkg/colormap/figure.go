package colormap

import (
	"image/color"
	"math"

	"github.com/nixprime/jhome/pkg/colorspace"
)

const (
	figFillL  = 75.0
	figLineL  = 55.0
	figRadius = 40.0
	figTheta0 = -0.5 * math.Pi
	figBase   = 3
)

// FigureColormap places colors of fixed lightness on a circle of radius 40
// around the neutral axis of the a*b* plane.
type FigureColormap struct {
	Lightness float64
}

var (
	// FigFill is used for background fills.
	FigFill = FigureColormap{Lightness: figFillL}
	// FigLine is used for lines.
	FigLine = FigureColormap{Lightness: figLineL}
)

// At returns the color at fraction t of the way around the hue circle,
// starting from the same angle as index 0.
func (m FigureColormap) At(t float64) color.Color {
	return m.atAngle(figTheta0 + 2*math.Pi*t)
}

// AtIndex returns the color of element i. Successive indices are spread
// around the hue circle by the base-3 van der Corput sequence, so any prefix
// of indices is well separated.
func (m FigureColormap) AtIndex(i int) color.Color {
	return m.atAngle(figTheta0 + 2*math.Pi*VanDerCorput(i, figBase))
}

func (m FigureColormap) atAngle(theta float64) colorspace.SRGB {
	a := figRadius * math.Cos(theta)
	b := figRadius * math.Sin(theta)
	return labColor(m.Lightness, a, b)
}

// FigFillColor returns the fill color of the (i+1)th figure element.
func FigFillColor(i int) string {
	return Hex(FigFill.AtIndex(i))
}

// FigLineColor returns the color of the (i+1)th line in a figure.
func FigLineColor(i int) string {
	return Hex(FigLine.AtIndex(i))
}

// FigFillColors returns n figure fill colors.
func FigFillColors(n int) ([]string, error) {
	return Colors(FigFill, n)
}

// FigLineColors returns n figure line colors.
func FigLineColors(n int) ([]string, error) {
	return Colors(FigLine, n)
}
