// Command closest finds #rrggbb colors in its input and prints the nearest
// xterm 256-color palette code for each.
//
// Usage:
//
//	closest [-color auto|always|never] [file ...]
//
// With no files, or with "-", standard input is read.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/nixprime/jhome/pkg/colorspace"
	"github.com/nixprime/jhome/pkg/termpalette"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("closest: ")

	colorMode := flag.String("color", "auto", "Print a color preview: auto, always or never")
	flag.Parse()

	preview, err := wantPreview(*colorMode, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	files := flag.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, name := range files {
		if err := processFile(name, out, preview); err != nil {
			out.Flush()
			log.Fatal(err)
		}
	}
}

func wantPreview(mode string, f *os.File) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		return term.IsTerminal(int(f.Fd())), nil
	}
	return false, fmt.Errorf("invalid -color value %q", mode)
}

func processFile(name string, w io.Writer, preview bool) error {
	if name == "-" {
		return process(os.Stdin, w, preview)
	}
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return process(f, w, preview)
}

// process prints one line per hex token, in input order.
func process(r io.Reader, w io.Writer, preview bool) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		for _, tok := range colorspace.FindHex(scanner.Text()) {
			code, matched, err := termpalette.ClosestHex(tok)
			if err != nil {
				return err
			}
			if preview {
				_, err = fmt.Fprintf(w, "%s => %d (%s) \x1b[48;5;%dm    \x1b[0m\n", tok, code, matched, code)
			} else {
				_, err = fmt.Fprintf(w, "%s => %d (%s)\n", tok, code, matched)
			}
			if err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}
