package main

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPrintColors(t *testing.T) {
	var out bytes.Buffer
	if err := printColors(&out, 2, false); err != nil {
		t.Fatalf("printColors: %v", err)
	}
	want := strings.Join([]string{
		"Graph colors:",
		"#0034a2",
		"#e3710e",
		"Figure background colors:",
		"#84bcff",
		"#ff9f94",
		"Figure line colors:",
		"#4887c7",
		"#c36a62",
	}, "\n") + "\n"
	if out.String() != want {
		t.Fatalf("output mismatch:\ngot:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestPrintColorsPreview(t *testing.T) {
	var out bytes.Buffer
	if err := printColors(&out, 1, true); err != nil {
		t.Fatalf("printColors: %v", err)
	}
	if !strings.Contains(out.String(), "#0034a2 \x1b[48;2;0;52;162m") {
		t.Fatalf("missing preview in %q", out.String())
	}
}

func TestPrintColorsPreviewMatchesHex(t *testing.T) {
	var out bytes.Buffer
	if err := printColors(&out, 12, true); err != nil {
		t.Fatalf("printColors: %v", err)
	}
	lines := 0
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if strings.HasSuffix(line, ":") {
			continue
		}
		var r, g, b uint8
		if _, err := fmt.Sscanf(line[:7], "#%02x%02x%02x", &r, &g, &b); err != nil {
			t.Fatalf("parse %q: %v", line, err)
		}
		want := fmt.Sprintf("%s \x1b[48;2;%d;%d;%dm    \x1b[0m", line[:7], r, g, b)
		if line != want {
			t.Errorf("preview line %q, want %q", line, want)
		}
		lines++
	}
	if lines != 3*12 {
		t.Fatalf("got %d color lines, want %d", lines, 3*12)
	}
}

func TestWriteSwatches(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	if err := writeSwatches(dir, 8); err != nil {
		t.Fatalf("writeSwatches: %v", err)
	}
	for _, s := range sections {
		f, err := os.Open(filepath.Join(dir, s.file))
		if err != nil {
			t.Fatalf("open %s: %v", s.file, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", s.file, err)
		}
		if img.Bounds().Dx() != 8*64 {
			t.Errorf("%s: width %d", s.file, img.Bounds().Dx())
		}
	}
}
