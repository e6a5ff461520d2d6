// Command jcolor prints distinct colors for plot series, figure fills and
// figure lines.
//
// Usage:
//
//	jcolor [-swatches dir] [-color auto|always|never] N
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/term"

	"github.com/nixprime/jhome/internal/render"
	"github.com/nixprime/jhome/pkg/colormap"
)

type section struct {
	title string
	file  string
	cm    colormap.Colormap
}

var sections = []section{
	{"Graph colors:", "series_colors.png", colormap.Series},
	{"Figure background colors:", "fig_fill_colors.png", colormap.FigFill},
	{"Figure line colors:", "fig_line_colors.png", colormap.FigLine},
}

func main() {
	swatchDir := flag.String("swatches", "", "Also write one PNG swatch strip per color family into this directory")
	colorMode := flag.String("color", "auto", "Print a color preview: auto, always or never")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("Syntax: jcolor (number of colors)")
		os.Exit(1)
	}
	n, err := strconv.Atoi(flag.Arg(0))
	if err != nil || n < 1 {
		fmt.Println("Invalid number of colors:", flag.Arg(0))
		os.Exit(1)
	}

	var preview bool
	switch *colorMode {
	case "always":
		preview = true
	case "never":
	case "auto":
		preview = term.IsTerminal(int(os.Stdout.Fd()))
	default:
		fmt.Fprintf(os.Stderr, "jcolor: invalid -color value %q\n", *colorMode)
		os.Exit(2)
	}

	if err := printColors(os.Stdout, n, preview); err != nil {
		fmt.Fprintln(os.Stderr, "jcolor:", err)
		os.Exit(1)
	}
	if *swatchDir != "" {
		if err := writeSwatches(*swatchDir, n); err != nil {
			fmt.Fprintln(os.Stderr, "jcolor:", err)
			os.Exit(1)
		}
	}
}

func printColors(w io.Writer, n int, preview bool) error {
	for _, s := range sections {
		if _, err := fmt.Fprintln(w, s.title); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			c := s.cm.AtIndex(i)
			line := colormap.Hex(c)
			if preview {
				r, g, b, _ := c.RGBA()
				line += fmt.Sprintf(" \x1b[48;2;%d;%d;%dm    \x1b[0m", r>>8, g>>8, b>>8)
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSwatches(dir string, n int) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	r := render.NewSwatchRenderer(render.Config{})
	for _, s := range sections {
		colors := make([]color.Color, n)
		for i := range colors {
			colors[i] = s.cm.AtIndex(i)
		}
		data, err := r.RenderStrip(colors)
		if err != nil {
			return fmt.Errorf("render %s: %w", s.file, err)
		}
		if err := os.WriteFile(filepath.Join(dir, s.file), data, 0644); err != nil {
			return err
		}
	}
	return nil
}
