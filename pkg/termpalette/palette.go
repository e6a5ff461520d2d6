// Package termpalette holds the 256-color xterm palette and maps arbitrary
// colors to their nearest extended palette entry.
package termpalette

import (
	"fmt"

	"github.com/nixprime/jhome/pkg/colorspace"
)

const (
	// Size is the number of palette codes.
	Size = 256
	// FirstExtended is the first code of the color cube.
	FirstExtended = 16
	// FirstGray is the first code of the grayscale ramp.
	FirstGray = 232
)

// Entry is one palette code with its sRGB value. Only the 16 basic colors
// have a Name.
type Entry struct {
	Code int
	RGB  colorspace.SRGB
	Name string
}

// Hex returns the entry's color as #rrggbb.
func (e Entry) Hex() string {
	return e.RGB.Hex()
}

func (e Entry) String() string {
	return fmt.Sprintf("%d (%s)", e.Code, e.Hex())
}

// Basic ANSI colors as xterm draws them by default.
var basic = [16]struct {
	rgb  [3]uint8
	name string
}{
	{[3]uint8{0x00, 0x00, 0x00}, "black"},
	{[3]uint8{0x80, 0x00, 0x00}, "maroon"},
	{[3]uint8{0x00, 0x80, 0x00}, "green"},
	{[3]uint8{0x80, 0x80, 0x00}, "olive"},
	{[3]uint8{0x00, 0x00, 0x80}, "navy"},
	{[3]uint8{0x80, 0x00, 0x80}, "purple"},
	{[3]uint8{0x00, 0x80, 0x80}, "teal"},
	{[3]uint8{0xc0, 0xc0, 0xc0}, "silver"},
	{[3]uint8{0x80, 0x80, 0x80}, "grey"},
	{[3]uint8{0xff, 0x00, 0x00}, "red"},
	{[3]uint8{0x00, 0xff, 0x00}, "lime"},
	{[3]uint8{0xff, 0xff, 0x00}, "yellow"},
	{[3]uint8{0x00, 0x00, 0xff}, "blue"},
	{[3]uint8{0xff, 0x00, 0xff}, "fuchsia"},
	{[3]uint8{0x00, 0xff, 0xff}, "aqua"},
	{[3]uint8{0xff, 0xff, 0xff}, "white"},
}

// cubeSteps are the channel levels of the 6x6x6 color cube.
var cubeSteps = [6]uint8{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

var (
	entries = buildEntries()

	// extendedLAB[i] is the L*a*b* value of code FirstExtended+i under the
	// default illuminant.
	extendedLAB = buildLAB(entries)
)

func buildEntries() [Size]Entry {
	var t [Size]Entry
	for code, b := range basic {
		t[code] = Entry{
			Code: code,
			RGB:  colorspace.FromRGB8(b.rgb[0], b.rgb[1], b.rgb[2]),
			Name: b.name,
		}
	}
	// Color cube: code = 16 + 36*r + 6*g + b.
	for i := 0; i < 216; i++ {
		r := cubeSteps[i/36]
		g := cubeSteps[(i/6)%6]
		b := cubeSteps[i%6]
		code := FirstExtended + i
		t[code] = Entry{Code: code, RGB: colorspace.FromRGB8(r, g, b)}
	}
	// Grayscale ramp: 0x08, 0x12, ..., 0xee.
	for i := 0; i < Size-FirstGray; i++ {
		v := uint8(0x08 + 10*i)
		code := FirstGray + i
		t[code] = Entry{Code: code, RGB: colorspace.FromRGB8(v, v, v)}
	}
	return t
}

func buildLAB(t [Size]Entry) [Size - FirstExtended]colorspace.LAB {
	var lab [Size - FirstExtended]colorspace.LAB
	for code := FirstExtended; code < Size; code++ {
		lab[code-FirstExtended] = t[code].RGB.ToLAB()
	}
	return lab
}

func checkCode(code int) error {
	if code < 0 || code >= Size {
		return fmt.Errorf("palette code %d: %w", code, colorspace.ErrOutOfRange)
	}
	return nil
}

// Lookup returns the palette entry for code.
func Lookup(code int) (Entry, error) {
	if err := checkCode(code); err != nil {
		return Entry{}, err
	}
	return entries[code], nil
}

// RGB returns the sRGB value of code.
func RGB(code int) (colorspace.SRGB, error) {
	e, err := Lookup(code)
	if err != nil {
		return colorspace.SRGB{}, err
	}
	return e.RGB, nil
}

// LAB returns the cached L*a*b* value of an extended code (16-255).
func LAB(code int) (colorspace.LAB, error) {
	if code < FirstExtended || code >= Size {
		return colorspace.LAB{}, fmt.Errorf("extended palette code %d: %w", code, colorspace.ErrOutOfRange)
	}
	return extendedLAB[code-FirstExtended], nil
}

// Entries returns a copy of the full palette in code order.
func Entries() []Entry {
	out := make([]Entry, Size)
	copy(out, entries[:])
	return out
}
