// Command hfield-pack converts a heightfield source into a PNG using the
// 24-bit packed height encoding. Packed images preserve the full height
// precision of 16-bit RAW sources, unlike plain grayscale exports, and load
// back through the image loader without loss beyond the 24-bit lattice.
//
// Usage:
//
//	hfield-pack -width 513 -height 513 -min -20 -max 480 terrain.raw terrain.png
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	heightfield "github.com/tphakala/go-heightfield"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	width := flag.Int("width", 0, "Grid width for RAW sources (ignored for images)")
	height := flag.Int("height", 0, "Grid height for RAW sources (ignored for images)")
	minH := flag.Float64("min", 0, "Minimum height of the encoding range")
	maxH := flag.Float64("max", 1, "Maximum height of the encoding range")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.{png,raw} packed.png\n\n", os.Args[0])
		flag.PrintDefaults()
		return fmt.Errorf("expected an input and an output file")
	}

	hf, err := heightfield.Load(args[0], *width, *height, *minH, *maxH)
	if err != nil {
		return err
	}

	out, err := os.Create(args[1])
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := png.Encode(out, hf.PackedImage(*minH, *maxH)); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to encode packed image: %w", err)
	}
	return out.Close()
}
