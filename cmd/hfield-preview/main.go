// Command hfield-preview renders a heightfield source into a small grayscale
// preview PNG.
//
// Usage:
//
//	hfield-preview -min 0 -max 100 terrain.png preview.png
//	hfield-preview -width 513 -height 513 -max 480 -size 256 terrain.raw preview.png
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/nfnt/resize"

	heightfield "github.com/tphakala/go-heightfield"
)

const defaultPreviewSize = 512

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	width := flag.Int("width", 0, "Grid width for RAW sources (ignored for images)")
	height := flag.Int("height", 0, "Grid height for RAW sources (ignored for images)")
	minH := flag.Float64("min", 0, "Minimum height of the normalization range")
	maxH := flag.Float64("max", 1, "Maximum height of the normalization range")
	size := flag.Uint("size", defaultPreviewSize, "Maximum preview edge length in pixels")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.{png,raw} preview.png\n\n", os.Args[0])
		flag.PrintDefaults()
		return fmt.Errorf("expected an input and an output file")
	}

	hf, err := heightfield.Load(args[0], *width, *height, *minH, *maxH)
	if err != nil {
		return err
	}

	img := resize.Thumbnail(*size, *size, hf.GrayImage(*minH, *maxH), resize.MitchellNetravali)

	out, err := os.Create(args[1])
	if err != nil {
		return fmt.Errorf("failed to create preview file: %w", err)
	}
	if err := png.Encode(out, img); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to encode preview: %w", err)
	}
	return out.Close()
}
