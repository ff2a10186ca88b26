// Package grid implements the dense row-major elevation grid backing a
// heightfield, together with continuous-coordinate bilinear sampling over it.
//
// A Grid owns a single contiguous buffer of cols*rows elements with a top-left
// origin; element (x, y) lives at index x + y*cols. The buffer is allocated
// once at construction and never resized. Grids do not alias each other, and a
// fully populated Grid is safe for concurrent read-only access.
package grid

import (
	"errors"
	"math"

	"github.com/tphakala/go-heightfield/internal/gridops"
)

// ErrInvalidDimensions indicates a grid was requested with fewer than one
// column or row.
var ErrInvalidDimensions = errors.New("grid: columns and rows must be at least 1")

// Grid is a dense row-major elevation grid with fixed dimensions.
type Grid[F gridops.Float] struct {
	cols int
	rows int
	data []F
}

// New allocates a zeroed Grid with the given dimensions.
// Returns ErrInvalidDimensions unless cols >= 1 and rows >= 1.
func New[F gridops.Float](cols, rows int) (*Grid[F], error) {
	if cols < 1 || rows < 1 {
		return nil, ErrInvalidDimensions
	}
	return &Grid[F]{
		cols: cols,
		rows: rows,
		data: make([]F, cols*rows),
	}, nil
}

// Cols returns the number of columns.
func (g *Grid[F]) Cols() int { return g.cols }

// Rows returns the number of rows.
func (g *Grid[F]) Rows() int { return g.rows }

// Data returns the underlying buffer. Its length is always Cols()*Rows().
// Callers populating a grid must write every element before the first read.
func (g *Grid[F]) Data() []F { return g.data }

// Index maps grid coordinates to the row-major buffer index.
func (g *Grid[F]) Index(x, y int) int { return x + y*g.cols }

// At returns the element at integer coordinates (x, y).
func (g *Grid[F]) At(x, y int) F { return g.data[x+y*g.cols] }

// Set stores v at integer coordinates (x, y).
func (g *Grid[F]) Set(x, y int, v F) { g.data[x+y*g.cols] = v }

// Sample returns the bilinearly interpolated elevation at continuous grid
// coordinates (col, row). Coordinates are clamped to
// [0, Cols()-1] x [0, Rows()-1]; there is no wraparound and no extrapolation.
//
// At integer coordinates the stored element is returned exactly. On the right
// and bottom edges, where one of the forward neighbors falls outside the
// grid, interpolation degrades to linear along the remaining axis, and at the
// far corner to the stored corner value.
func (g *Grid[F]) Sample(col, row float64) F {
	col = clamp(col, 0, float64(g.cols-1))
	row = clamp(row, 0, float64(g.rows-1))

	x1 := int(math.Floor(col))
	y1 := int(math.Floor(row))
	x2 := x1 + 1
	y2 := y1 + 1

	xFrac := F(col - float64(x1))
	yFrac := F(row - float64(y1))

	switch {
	case x2 >= g.cols && y2 >= g.rows:
		return g.At(x1, y1)
	case x2 >= g.cols:
		return g.At(x1, y1)*(1-yFrac) + g.At(x1, y2)*yFrac
	case y2 >= g.rows:
		return g.At(x1, y1)*(1-xFrac) + g.At(x2, y1)*xFrac
	default:
		return g.At(x1, y1)*(1-xFrac)*(1-yFrac) +
			g.At(x1, y2)*(1-xFrac)*yFrac +
			g.At(x2, y2)*xFrac*yFrac +
			g.At(x2, y1)*xFrac*(1-yFrac)
	}
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
