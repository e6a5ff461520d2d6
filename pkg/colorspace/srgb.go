package colorspace

import (
	"encoding/hex"
	"fmt"
	"math"
	"regexp"

	"github.com/lucasb-eyer/go-colorful"
)

// SRGB is a gamma-encoded sRGB color. Components are nominally in [0, 1]
// but are not clamped on construction.
//
// SRGB implements color.Color using the same 8-bit quantization as Hex.
type SRGB struct {
	R, G, B float64
}

// SRGBToLinear removes the sRGB transfer curve from one component.
func SRGBToLinear(c float64) float64 {
	r, _, _ := colorful.Color{R: c}.LinearRgb()
	return r
}

// LinearToSRGB applies the sRGB transfer curve to one linear component.
// Input outside [0, 1] is clamped first.
func LinearToSRGB(c float64) float64 {
	return colorful.LinearRgb(clamp(c, 0, 1), 0, 0).R
}

// Linear returns the linear-light components of c.
func (c SRGB) Linear() (r, g, b float64) {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.LinearRgb()
}

// ToXYZ converts c to CIE XYZ.
func (c SRGB) ToXYZ() XYZ {
	r, g, b := c.Linear()
	m := toXYZ
	return XYZ{
		X: m[0][0]*r + m[0][1]*g + m[0][2]*b,
		Y: m[1][0]*r + m[1][1]*g + m[1][2]*b,
		Z: m[2][0]*r + m[2][1]*g + m[2][2]*b,
	}
}

// ToLAB converts c to L*a*b* relative to DefaultIlluminant.
func (c SRGB) ToLAB() LAB {
	return c.ToXYZ().ToLAB()
}

// RGB8 quantizes c to 8 bits per channel. Each channel is rounded to the
// nearest integer and then clamped to [0, 255].
func (c SRGB) RGB8() (r, g, b uint8) {
	return to8(c.R), to8(c.G), to8(c.B)
}

// RGBA implements color.Color.
func (c SRGB) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB8()
	r = uint32(r8) * 0x101
	g = uint32(g8) * 0x101
	b = uint32(b8) * 0x101
	return r, g, b, 0xffff
}

// Hex renders c as a lowercase #rrggbb string.
func (c SRGB) Hex() string {
	r, g, b := c.RGB8()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func (c SRGB) String() string {
	return c.Hex()
}

// FromRGB8 builds an SRGB color from 8-bit channels.
func FromRGB8(r, g, b uint8) SRGB {
	return SRGB{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
}

// ParseHex parses a #rrggbb token. Hex digits may be upper or lower case.
func ParseHex(s string) (SRGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return SRGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	buf, err := hex.DecodeString(s[1:])
	if err != nil {
		return SRGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return FromRGB8(buf[0], buf[1], buf[2]), nil
}

var hexToken = regexp.MustCompile(`#[0-9a-fA-F]{6}`)

// FindHex returns every #rrggbb token in s, in order of appearance.
// Tokens are returned as written. A longer run such as #1234567 yields
// its first seven characters.
func FindHex(s string) []string {
	return hexToken.FindAllString(s, -1)
}

func to8(c float64) uint8 {
	v := math.Round(c * 255)
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
