// Command hfield-info prints the dimensions and elevation statistics of a
// heightfield source.
//
// Usage:
//
//	hfield-info -min 0 -max 100 terrain.png
//	hfield-info -width 513 -height 513 -min -20 -max 480 terrain.raw
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

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
	minH := flag.Float64("min", 0, "Minimum height of the output range")
	maxH := flag.Float64("max", 1, "Maximum height of the output range")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] heightfield.{png,raw}\n\n", os.Args[0])
		flag.PrintDefaults()
		return fmt.Errorf("expected exactly one input file")
	}

	hf, err := heightfield.Load(args[0], *width, *height, *minH, *maxH)
	if err != nil {
		return err
	}

	elevations := hf.Elevations()
	fmt.Printf("source:   %s\n", args[0])
	fmt.Printf("grid:     %d x %d (%d samples)\n",
		hf.ColumnCount(), hf.RowCount(), len(elevations))
	fmt.Printf("min:      %.4f\n", floats.Min(elevations))
	fmt.Printf("max:      %.4f\n", floats.Max(elevations))
	fmt.Printf("mean:     %.4f\n", stat.Mean(elevations, nil))
	fmt.Printf("stddev:   %.4f\n", stat.StdDev(elevations, nil))

	return nil
}
