package termpalette

import (
	"fmt"

	"github.com/nixprime/jhome/pkg/colorspace"
)

// Closest returns the extended palette code (16-255) nearest to c by
// L*a*b* distance. Codes 0-15 are never candidates. Ties go to the lowest
// code.
func Closest(c colorspace.SRGB) int {
	return ClosestLAB(c.ToLAB())
}

// ClosestLAB is Closest for a color already in L*a*b* under the default
// illuminant.
func ClosestLAB(lab colorspace.LAB) int {
	return FirstExtended + nearest(lab, extendedLAB[:])
}

// nearest returns the index of the first entry of table at minimum distance
// from lab. table must not be empty.
func nearest(lab colorspace.LAB, table []colorspace.LAB) int {
	best := 0
	bestDist := colorspace.Distance(lab, table[0])
	for i := 1; i < len(table); i++ {
		if d := colorspace.Distance(lab, table[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// ClosestHex parses a #rrggbb token and returns the nearest code together
// with that code's color as #rrggbb.
func ClosestHex(s string) (code int, matched string, err error) {
	c, err := colorspace.ParseHex(s)
	if err != nil {
		return 0, "", fmt.Errorf("closest terminal color: %w", err)
	}
	code = Closest(c)
	return code, entries[code].Hex(), nil
}
