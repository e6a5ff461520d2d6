// Package service provides the color operations behind the HTTP API and the
// command line tools.
package service

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/nixprime/jhome/internal/cache"
	"github.com/nixprime/jhome/internal/render"
	"github.com/nixprime/jhome/pkg/colormap"
	"github.com/nixprime/jhome/pkg/colorspace"
	"github.com/nixprime/jhome/pkg/termpalette"
)

// ErrUnknownFamily is returned for color family names other than those
// registered in package colormap.
var ErrUnknownFamily = errors.New("unknown color family")

// ColorServiceConfig contains color service configuration.
type ColorServiceConfig struct {
	Cache    *cache.Manager
	Renderer *render.SwatchRenderer
	// Illuminant is the white point for L*a*b* values reported by Palette.
	// Matching always uses the default illuminant.
	Illuminant colorspace.XYZ
}

// ColorService answers nearest-color and color sequence requests.
type ColorService struct {
	cache      *cache.Manager
	renderer   *render.SwatchRenderer
	illuminant colorspace.XYZ
}

// Match is the result of a nearest terminal color lookup.
type Match struct {
	Hex     string `json:"hex"`
	Code    int    `json:"code"`
	Matched string `json:"matched"`
}

// PaletteEntry is a palette code as reported by the API.
type PaletteEntry struct {
	Code int             `json:"code"`
	Hex  string          `json:"hex"`
	Name string          `json:"name,omitempty"`
	LAB  *colorspace.LAB `json:"lab,omitempty"`
}

// NewColorService creates a new color service.
func NewColorService(cfg ColorServiceConfig) *ColorService {
	illuminant := cfg.Illuminant
	if illuminant == (colorspace.XYZ{}) {
		illuminant = colorspace.DefaultIlluminant
	}
	return &ColorService{
		cache:      cfg.Cache,
		renderer:   cfg.Renderer,
		illuminant: illuminant,
	}
}

// Closest maps a #rrggbb token to the nearest extended palette code.
func (s *ColorService) Closest(hex string) (Match, error) {
	key := cache.ClosestKey(hex)
	if s.cache != nil {
		if code, ok := s.cache.GetClosest(key); ok {
			return s.match(hex, code), nil
		}
	}

	code, _, err := termpalette.ClosestHex(hex)
	if err != nil {
		return Match{}, err
	}
	if s.cache != nil {
		s.cache.SetClosest(key, code)
	}
	return s.match(hex, code), nil
}

func (s *ColorService) match(hex string, code int) Match {
	e, _ := termpalette.Lookup(code)
	return Match{Hex: hex, Code: code, Matched: e.Hex()}
}

// ClosestAll matches every #rrggbb token found in text, in order.
func (s *ColorService) ClosestAll(text string) []Match {
	tokens := colorspace.FindHex(text)
	matches := make([]Match, 0, len(tokens))
	for _, tok := range tokens {
		// FindHex only yields well-formed tokens.
		m, err := s.Closest(tok)
		if err != nil {
			continue
		}
		matches = append(matches, m)
	}
	return matches
}

// Colors returns the first n colors of a family as #rrggbb strings.
func (s *ColorService) Colors(family string, n int) ([]string, error) {
	cm, ok := colormap.ByName(family)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, family)
	}
	return colormap.Colors(cm, n)
}

// ColorAt returns the color a family assigns to the normalized value t in
// [0, 1].
func (s *ColorService) ColorAt(family string, t float64) (string, error) {
	cm, ok := colormap.ByName(family)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFamily, family)
	}
	return colormap.ColorAt(cm, t)
}

// Swatch returns a PNG strip of the first n colors of a family.
func (s *ColorService) Swatch(family string, n int) ([]byte, error) {
	cm, ok := colormap.ByName(family)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, family)
	}
	if n < 1 {
		return nil, fmt.Errorf("swatch of %d colors: %w", n, colorspace.ErrOutOfRange)
	}
	if s.renderer == nil {
		return nil, errors.New("swatch renderer not configured")
	}

	rc := s.renderer.Config()
	key := cache.SwatchKey(family, n, rc.SwatchWidth, rc.SwatchHeight)
	if s.cache != nil {
		if data, ok := s.cache.GetSwatch(key); ok {
			return data, nil
		}
	}

	colors := make([]color.Color, n)
	for i := range colors {
		colors[i] = cm.AtIndex(i)
	}
	data, err := s.renderer.RenderStrip(colors)
	if err != nil {
		return nil, fmt.Errorf("render %s swatch: %w", family, err)
	}

	if s.cache != nil {
		// Oversized strips are simply not cached.
		s.cache.SetSwatch(key, data)
	}
	return data, nil
}

// Palette returns all 256 palette entries. Extended entries carry their
// L*a*b* value under the configured illuminant.
func (s *ColorService) Palette() []PaletteEntry {
	all := termpalette.Entries()
	out := make([]PaletteEntry, len(all))
	for i, e := range all {
		out[i] = s.paletteEntry(e)
	}
	return out
}

// PaletteEntry returns a single palette entry.
func (s *ColorService) PaletteEntry(code int) (PaletteEntry, error) {
	e, err := termpalette.Lookup(code)
	if err != nil {
		return PaletteEntry{}, err
	}
	return s.paletteEntry(e), nil
}

func (s *ColorService) paletteEntry(e termpalette.Entry) PaletteEntry {
	pe := PaletteEntry{Code: e.Code, Hex: e.Hex(), Name: e.Name}
	if e.Code >= termpalette.FirstExtended {
		lab := e.RGB.ToXYZ().ToLABWith(s.illuminant)
		pe.LAB = &lab
	}
	return pe
}

// Stats returns cache statistics.
func (s *ColorService) Stats() map[string]interface{} {
	if s.cache == nil {
		return map[string]interface{}{}
	}
	return s.cache.Stats()
}
