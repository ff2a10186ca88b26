package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestGrid builds a grid with data laid out row-major from vals.
func newTestGrid(t *testing.T, cols, rows int, vals []float64) *Grid[float64] {
	t.Helper()
	g, err := New[float64](cols, rows)
	require.NoError(t, err)
	require.Len(t, vals, cols*rows)
	copy(g.Data(), vals)
	return g
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		wantErr    bool
	}{
		{"1x1", 1, 1, false},
		{"4x3", 4, 3, false},
		{"ZeroCols", 0, 3, true},
		{"ZeroRows", 3, 0, true},
		{"Negative", -1, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New[float64](tt.cols, tt.rows)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDimensions)
				assert.Nil(t, g)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.cols, g.Cols())
			assert.Equal(t, tt.rows, g.Rows())
			assert.Len(t, g.Data(), tt.cols*tt.rows)
		})
	}
}

func TestIndexAtSet(t *testing.T) {
	g, err := New[float64](3, 2)
	require.NoError(t, err)

	assert.Equal(t, 0, g.Index(0, 0))
	assert.Equal(t, 2, g.Index(2, 0))
	assert.Equal(t, 3, g.Index(0, 1))
	assert.Equal(t, 5, g.Index(2, 1))

	g.Set(2, 1, 42)
	assert.Equal(t, 42.0, g.At(2, 1))
	assert.Equal(t, 42.0, g.Data()[5])
}

// TestSample_IntegerCoordinates verifies the stored element is returned
// exactly at every in-bounds integer coordinate.
func TestSample_IntegerCoordinates(t *testing.T) {
	g := newTestGrid(t, 3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})

	for y := range 3 {
		for x := range 3 {
			assert.Equal(t, g.At(x, y), g.Sample(float64(x), float64(y)),
				"at (%d,%d)", x, y)
		}
	}
}

// TestSample_Clamping verifies coordinates outside the grid behave exactly
// like the nearest in-bounds coordinate.
func TestSample_Clamping(t *testing.T) {
	g := newTestGrid(t, 2, 2, []float64{
		1, 2,
		3, 4,
	})

	tests := []struct {
		name     string
		col, row float64
		want     float64
	}{
		{"NegativeBoth", -5, -3, 1},
		{"NegativeCol", -0.1, 1, 3},
		{"BeyondCol", 7, 0, 2},
		{"BeyondRow", 0, 9.5, 3},
		{"BeyondBoth", 100, 100, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Sample(tt.col, tt.row))
		})
	}
}

// TestSample_EdgePolicy pins down the boundary behavior: the far corner
// returns the stored value, the right edge interpolates along rows only and
// the bottom edge along columns only.
func TestSample_EdgePolicy(t *testing.T) {
	g := newTestGrid(t, 2, 2, []float64{
		10, 20,
		30, 40,
	})

	// Far corner: x2 and y2 both out of range, no interpolation.
	assert.Equal(t, 40.0, g.Sample(1, 1))

	// Right edge: only y interpolates, between (1,0)=20 and (1,1)=40.
	assert.InDelta(t, 25.0, g.Sample(1, 0.25), 1e-12)
	assert.InDelta(t, 30.0, g.Sample(1, 0.5), 1e-12)

	// Bottom edge: only x interpolates, between (0,1)=30 and (1,1)=40.
	assert.InDelta(t, 32.5, g.Sample(0.25, 1), 1e-12)
	assert.InDelta(t, 35.0, g.Sample(0.5, 1), 1e-12)
}

func TestSample_Bilinear(t *testing.T) {
	g := newTestGrid(t, 2, 2, []float64{
		0, 10,
		20, 40,
	})

	// Center: plain average of the four corners.
	assert.InDelta(t, 17.5, g.Sample(0.5, 0.5), 1e-12)

	// Weights (1-xf)(1-yf), (1-xf)yf, xf*yf, xf(1-yf) at xf=0.25, yf=0.75:
	// 0.1875*0 + 0.5625*20 + 0.1875*40 + 0.0625*10 = 19.375
	assert.InDelta(t, 19.375, g.Sample(0.25, 0.75), 1e-12)
}

// TestSample_SingleCell ensures a 1x1 grid degenerates to its only value for
// any query.
func TestSample_SingleCell(t *testing.T) {
	g := newTestGrid(t, 1, 1, []float64{5})
	assert.Equal(t, 5.0, g.Sample(0, 0))
	assert.Equal(t, 5.0, g.Sample(-2, 0.7))
	assert.Equal(t, 5.0, g.Sample(3, 3))
}

func TestSample_Float32(t *testing.T) {
	g, err := New[float32](2, 2)
	require.NoError(t, err)
	copy(g.Data(), []float32{0, 10, 20, 40})

	assert.InDelta(t, 17.5, float64(g.Sample(0.5, 0.5)), 1e-6)
	assert.Equal(t, float32(40), g.Sample(1, 1))
}

func BenchmarkSample(b *testing.B) {
	g, err := New[float64](512, 512)
	if err != nil {
		b.Fatal(err)
	}
	data := g.Data()
	for i := range data {
		data[i] = float64(i % 257)
	}

	b.ResetTimer()
	var sink float64
	for i := 0; b.Loop(); i++ {
		sink += g.Sample(float64(i%511)+0.37, float64(i%509)+0.81)
	}
	_ = sink
}
