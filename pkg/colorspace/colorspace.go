// Package colorspace converts colors between sRGB, CIE XYZ, CIE xyY and
// CIE L*a*b*.
//
// All types are plain values. Out-of-gamut intermediate values are kept as
// they are; clamping happens only when a color is serialized to 8-bit or hex
// form.
package colorspace

import (
	"errors"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrInvalidFormat is returned for malformed #rrggbb tokens.
	ErrInvalidFormat = errors.New("invalid color format")

	// ErrDomain is returned when an xyY color has chromaticity y == 0.
	ErrDomain = errors.New("chromaticity y must be nonzero")

	// ErrOutOfRange is returned for palette codes outside 0-255 and for
	// negative color counts.
	ErrOutOfRange = errors.New("value out of range")
)

// XYZ is a CIE 1931 tristimulus value.
type XYZ struct {
	X, Y, Z float64
}

// XYY is a CIE xyY color: chromaticity (X, Y) plus luminance LumY.
type XYY struct {
	X, Y float64
	LumY float64
}

// LAB is a CIE 1976 L*a*b* color.
type LAB struct {
	L, A, B float64
}

// sRGB <-> linear XYZ matrices (D65).
var (
	toXYZ = [3][3]float64{
		{0.4124, 0.3576, 0.1805},
		{0.2126, 0.7152, 0.0722},
		{0.0193, 0.1192, 0.9505},
	}
	fromXYZ = [3][3]float64{
		{3.2406, -1.5372, -0.4986},
		{-0.9689, 1.8758, 0.0415},
		{0.0557, -0.2040, 1.0570},
	}
)

// ToXYZ converts an xyY color to XYZ.
func (c XYY) ToXYZ() (XYZ, error) {
	if c.Y == 0 {
		return XYZ{}, ErrDomain
	}
	return XYZ{
		X: c.LumY * c.X / c.Y,
		Y: c.LumY,
		Z: c.LumY * (1 - c.X - c.Y) / c.Y,
	}, nil
}

// ToSRGB converts c to gamma-encoded sRGB. The linear values are clamped to
// [0, 1] before encoding, so the result is always in gamut.
func (c XYZ) ToSRGB() SRGB {
	m := fromXYZ
	rl := m[0][0]*c.X + m[0][1]*c.Y + m[0][2]*c.Z
	gl := m[1][0]*c.X + m[1][1]*c.Y + m[1][2]*c.Z
	bl := m[2][0]*c.X + m[2][1]*c.Y + m[2][2]*c.Z
	return SRGB{
		R: LinearToSRGB(rl),
		G: LinearToSRGB(gl),
		B: LinearToSRGB(bl),
	}
}

// ToLAB converts c to L*a*b* relative to DefaultIlluminant.
func (c XYZ) ToLAB() LAB {
	return c.ToLABWith(DefaultIlluminant)
}

// ToLABWith converts c to L*a*b* relative to the given white point.
// L* is in [0, 100] for in-gamut colors.
func (c XYZ) ToLABWith(white XYZ) LAB {
	l, a, b := colorful.XyzToLabWhiteRef(c.X, c.Y, c.Z, white.ref())
	return LAB{L: l * 100, A: a * 100, B: b * 100}
}

// ToXYZ converts c to XYZ relative to DefaultIlluminant.
func (c LAB) ToXYZ() XYZ {
	return c.ToXYZWith(DefaultIlluminant)
}

// ToXYZWith converts c to XYZ relative to the given white point.
func (c LAB) ToXYZWith(white XYZ) XYZ {
	x, y, z := colorful.LabToXyzWhiteRef(c.L/100, c.A/100, c.B/100, white.ref())
	return XYZ{X: x, Y: y, Z: z}
}

// ToSRGB converts c to sRGB relative to DefaultIlluminant.
func (c LAB) ToSRGB() SRGB {
	return c.ToXYZ().ToSRGB()
}

// Distance returns the Euclidean distance between two L*a*b* colors.
func Distance(a, b LAB) float64 {
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// LABToHex renders a L*a*b* color, taken relative to white, as #rrggbb.
func LABToHex(c LAB, white XYZ) string {
	return c.ToXYZWith(white).ToSRGB().Hex()
}

// ref returns c in the white reference form go-colorful expects.
func (c XYZ) ref() [3]float64 {
	return [3]float64{c.X, c.Y, c.Z}
}
