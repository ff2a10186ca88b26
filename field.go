package heightfield

import (
	"github.com/tphakala/go-heightfield/internal/grid"
	"github.com/tphakala/go-heightfield/internal/gridops"
)

// field is the shared implementation behind Field and Field32.
type field[F gridops.Float] struct {
	g *grid.Grid[F]
}

// ColumnCount returns the number of columns in the field.
func (f *field[F]) ColumnCount() int { return f.g.Cols() }

// RowCount returns the number of rows in the field.
func (f *field[F]) RowCount() int { return f.g.Rows() }

// Elevations returns the field's raw elevation buffer: row-major with a
// top-left origin, element (x, y) at index x + y*ColumnCount(), length always
// ColumnCount()*RowCount(). The buffer is owned by the field; callers must
// not hold it past the field's lifetime.
func (f *field[F]) Elevations() []F { return f.g.Data() }

// Height returns the bilinearly interpolated elevation at continuous grid
// coordinates (column, row). Coordinates are clamped to the field bounds; at
// integer coordinates the stored elevation is returned exactly. Height never
// mutates the field, so concurrent queries are safe once the field is built.
func (f *field[F]) Height(column, row float64) F {
	return f.g.Sample(column, row)
}

// Stats summarizes the elevations of a field.
type Stats struct {
	Min  float64
	Max  float64
	Mean float64
}

// Stats computes the minimum, maximum and mean elevation over the whole
// buffer. The mean uses the SIMD summation kernel.
func (f *field[F]) Stats() Stats {
	data := f.g.Data()
	ops := gridops.For[F]()

	lo, hi := data[0], data[0]
	for _, v := range data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return Stats{
		Min:  float64(lo),
		Max:  float64(hi),
		Mean: float64(ops.Sum(data)) / float64(len(data)),
	}
}

// Rescale remaps every elevation linearly so that the field's current
// [min, max] range becomes [newMin, newMax]. A flat field maps entirely to
// newMin. Returns ErrInvalidHeightRange if newMax is less than newMin.
func (f *field[F]) Rescale(newMin, newMax float64) error {
	if newMax < newMin {
		return ErrInvalidHeightRange
	}

	data := f.g.Data()
	st := f.Stats()
	if st.Max == st.Min {
		for i := range data {
			data[i] = F(newMin)
		}
		return nil
	}

	// v' = newMin + (v - min) * factor, applied as a SIMD scale followed by
	// a constant shift.
	factor := (newMax - newMin) / (st.Max - st.Min)
	offset := F(newMin - st.Min*factor)

	ops := gridops.For[F]()
	ops.Scale(data, data, F(factor))
	for i := range data {
		data[i] += offset
	}
	return nil
}

// Field is a float64-backed heightfield: a dense row-major elevation grid
// with continuous bilinear sampling. Fields are created by the Loader or by
// New and are never resized afterwards.
type Field struct {
	field[float64]
}

// Field32 is the float32-native counterpart of Field. Use it when elevations
// feed GPU vertex buffers or when memory bandwidth matters more than float64
// precision.
type Field32 struct {
	field[float32]
}

// New allocates a zeroed Field with the given dimensions. The caller is
// responsible for populating every element before the first Height query.
func New(columns, rows int) (*Field, error) {
	g, err := grid.New[float64](columns, rows)
	if err != nil {
		return nil, err
	}
	return &Field{field[float64]{g}}, nil
}

// New32 allocates a zeroed Field32 with the given dimensions.
func New32(columns, rows int) (*Field32, error) {
	g, err := grid.New[float32](columns, rows)
	if err != nil {
		return nil, err
	}
	return &Field32{field[float32]{g}}, nil
}
