// Package render provides swatch rendering using fogleman/gg.
package render

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"sync"

	"github.com/fogleman/gg"
)

// Config contains renderer configuration.
type Config struct {
	// SwatchWidth and SwatchHeight are the pixel size of one color cell.
	SwatchWidth  int
	SwatchHeight int
}

// SwatchRenderer renders color strips as PNG images.
type SwatchRenderer struct {
	config     Config
	bufferPool sync.Pool
}

// NewSwatchRenderer creates a new swatch renderer.
func NewSwatchRenderer(cfg Config) *SwatchRenderer {
	if cfg.SwatchWidth <= 0 {
		cfg.SwatchWidth = 64
	}
	if cfg.SwatchHeight <= 0 {
		cfg.SwatchHeight = 48
	}
	return &SwatchRenderer{
		config: cfg,
		bufferPool: sync.Pool{
			New: func() interface{} {
				return bytes.NewBuffer(make([]byte, 0, 4*1024))
			},
		},
	}
}

// Config returns the renderer configuration.
func (r *SwatchRenderer) Config() Config {
	return r.config
}

// RenderStrip renders one cell per color, left to right.
func (r *SwatchRenderer) RenderStrip(colors []color.Color) ([]byte, error) {
	if len(colors) == 0 {
		return nil, errors.New("render: no colors")
	}

	w := float64(r.config.SwatchWidth)
	h := float64(r.config.SwatchHeight)
	dc := gg.NewContext(r.config.SwatchWidth*len(colors), r.config.SwatchHeight)

	for i, c := range colors {
		dc.SetColor(c)
		dc.DrawRectangle(float64(i)*w, 0, w, h)
		dc.Fill()
	}

	return r.encodeContext(dc)
}

func (r *SwatchRenderer) encodeContext(dc *gg.Context) ([]byte, error) {
	buf := r.bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		r.bufferPool.Put(buf)
	}()

	// Use fast PNG encoder
	encoder := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := encoder.Encode(buf, dc.Image()); err != nil {
		return nil, err
	}

	// Copy buffer contents (buffer will be reused)
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}
