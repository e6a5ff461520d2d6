package colormap

import (
	"image/color"

	"github.com/nixprime/jhome/pkg/colorspace"
)

// Lightness cycle for series colors.
var seriesL = [8]float64{20, 60, 30, 70, 40, 80, 50, 90}

// Chroma pairs for series colors. Grey (0, 0) is left out on purpose.
var seriesAB = [8][2]float64{
	{15, -75}, // blue
	{40, 65},  // orange
	{65, -55}, // purple
	{-55, 45}, // green
	{80, 60},  // red
	{70, -30}, // pink
	{15, 35},  // brown
	{-20, 90}, // yellow
}

// SeriesColormap is the qualitative cycle of eight series colors.
type SeriesColormap struct{}

// Series is the series colormap.
var Series = SeriesColormap{}

// At returns the series color for position t (0-1).
func (SeriesColormap) At(t float64) color.Color {
	idx := int(t * float64(len(seriesL)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(seriesL) {
		idx = len(seriesL) - 1
	}
	return seriesColor(idx)
}

// AtIndex returns the color of series i. Colors repeat every 8 indices.
func (SeriesColormap) AtIndex(i int) color.Color {
	return seriesColor(i)
}

func seriesColor(i int) colorspace.SRGB {
	k := i % len(seriesL)
	if k < 0 {
		k += len(seriesL)
	}
	return labColor(seriesL[k], seriesAB[k][0], seriesAB[k][1])
}

// SeriesColor returns the color of the (i+1)th series as #rrggbb.
func SeriesColor(i int) string {
	return seriesColor(i).Hex()
}

// SeriesColors returns n series colors. It is meant for at most 8
// concurrently visible series.
func SeriesColors(n int) ([]string, error) {
	return Colors(Series, n)
}
