package heightfield

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/tphakala/go-heightfield/internal/grid"
	"github.com/tphakala/go-heightfield/internal/gridops"
)

// Resample builds a new Field of the given dimensions by bilinearly sampling
// this field over a uniform lattice spanning its full extent. Corner samples
// coincide with the source corners; a single-column or single-row target
// collapses to the source's first column or row.
//
// Rows are computed concurrently. Sampling is read-only, so the source field
// is never mutated.
func (f *Field) Resample(columns, rows int) (*Field, error) {
	g, err := resampleGrid(f.g, columns, rows)
	if err != nil {
		return nil, err
	}
	return &Field{field[float64]{g}}, nil
}

// Resample is the Field32 counterpart of Field.Resample.
func (f *Field32) Resample(columns, rows int) (*Field32, error) {
	g, err := resampleGrid(f.g, columns, rows)
	if err != nil {
		return nil, err
	}
	return &Field32{field[float32]{g}}, nil
}

// resampleGrid samples src over a columns x rows lattice, one goroutine per
// output row, bounded at NumCPU.
func resampleGrid[F gridops.Float](src *grid.Grid[F], columns, rows int) (*grid.Grid[F], error) {
	dst, err := grid.New[F](columns, rows)
	if err != nil {
		return nil, err
	}

	stepX := latticeStep(src.Cols(), columns)
	stepY := latticeStep(src.Rows(), rows)

	sem := semaphore.NewWeighted(int64(runtime.NumCPU()))
	var wg sync.WaitGroup

	for y := range rows {
		_ = sem.Acquire(context.Background(), 1)
		wg.Add(1)
		go func(y int) {
			defer wg.Done()
			defer sem.Release(1)

			srcRow := float64(y) * stepY
			for x := range columns {
				dst.Set(x, y, src.Sample(float64(x)*stepX, srcRow))
			}
		}(y)
	}

	wg.Wait()
	return dst, nil
}

// latticeStep returns the source-coordinate distance between adjacent target
// samples so that target index n-1 lands exactly on source index m-1.
func latticeStep(srcCount, dstCount int) float64 {
	if dstCount <= 1 {
		return 0
	}
	return float64(srcCount-1) / float64(dstCount-1)
}
