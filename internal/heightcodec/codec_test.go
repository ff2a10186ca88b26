package heightcodec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-heightfield/internal/testutil"
)

// TestNormalizedPacked_KnownValues checks the packed formula against hand
// computed points of the 24-bit encoding.
func TestNormalizedPacked_KnownValues(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    float64
	}{
		{"Zero", 0, 0, 0, 0},
		{"BlueOnly", 0, 0, 1, 1.0 / 16777216.0},
		{"GreenOnly", 0, 1, 0, 1.0 / 65536.0},
		{"RedOnly", 1, 0, 0, 256.0 / 65536.0},
		{"Max", 255, 255, 255, (256.0*255 + 255 + 255.0/256.0) / 65536.0},
		{"MidRed", 128, 0, 0, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizedPacked(tt.r, tt.g, tt.b)
			assert.InDelta(t, tt.want, got, testutil.DefaultTolerance)
		})
	}
}

// TestNormalizedPacked_GrayscaleApproximation verifies that with r=g=b=x the
// packed formula differs from the plain grayscale value x/255 by no more than
// ~0.4% relative error, for every possible byte value.
func TestNormalizedPacked_GrayscaleApproximation(t *testing.T) {
	for x := 1; x <= 255; x++ {
		gray := float64(x) / 255.0
		packed := NormalizedPacked(uint8(x), uint8(x), uint8(x))
		testutil.AssertRelativeError(t, gray, packed, testutil.GrayscaleTolerance,
			"grayscale byte %d", x)
	}
}

func TestNormalized8(t *testing.T) {
	assert.Equal(t, 0.0, Normalized8(0))
	assert.Equal(t, 1.0, Normalized8(255))
	assert.InDelta(t, 128.0/255.0, Normalized8(128), testutil.DefaultTolerance)
}

func TestNormalized16(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi byte
		want   float64
	}{
		{"Zero", 0x00, 0x00, 0},
		{"Max", 0xFF, 0xFF, 1},
		{"LowByteOnly", 0xFF, 0x00, 255.0 / 65535.0},
		{"HighByteOnly", 0x00, 0x01, 256.0 / 65535.0},
		{"Mixed", 0x34, 0x12, 0x1234 / 65535.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Normalized16(tt.lo, tt.hi), testutil.DefaultTolerance)
		})
	}
}

// TestRawNormalization_Range verifies that every valid input byte normalizes
// into [0, 1], so rescaled values always land inside [minHeight, maxHeight].
func TestRawNormalization_Range(t *testing.T) {
	for b := 0; b <= 255; b++ {
		n := Normalized8(byte(b))
		require.GreaterOrEqual(t, n, 0.0)
		require.LessOrEqual(t, n, 1.0)
	}
	for _, v := range []uint16{0, 1, 255, 256, 32768, 65534, 65535} {
		n := Normalized16(byte(v), byte(v>>8))
		require.GreaterOrEqual(t, n, 0.0)
		require.LessOrEqual(t, n, 1.0)
	}
}

func TestRescale(t *testing.T) {
	assert.Equal(t, -20.0, Rescale(0, -20, 480))
	assert.Equal(t, 480.0, Rescale(1, -20, 480))
	assert.InDelta(t, 230.0, Rescale(0.5, -20, 480), testutil.DefaultTolerance)

	// Degenerate range collapses to the single height.
	assert.Equal(t, 7.0, Rescale(0.3, 7, 7))
}

func TestNormalize_InvertsRescale(t *testing.T) {
	for _, n := range []float64{0, 0.25, 0.5, 0.99, 1} {
		h := Rescale(n, -50, 125)
		assert.InDelta(t, n, Normalize(h, -50, 125), testutil.DefaultTolerance)
	}

	// Flat range maps everything to 0 rather than dividing by zero.
	assert.Equal(t, 0.0, Normalize(7, 7, 7))
}

// TestPack_RoundTrip verifies Pack is the exact inverse of NormalizedPacked on
// the 24-bit lattice.
func TestPack_RoundTrip(t *testing.T) {
	cases := []struct{ r, g, b uint8 }{
		{0, 0, 0},
		{0, 0, 1},
		{0, 1, 0},
		{1, 0, 0},
		{128, 0, 0},
		{12, 34, 56},
		{255, 255, 255},
	}

	for _, c := range cases {
		n := NormalizedPacked(c.r, c.g, c.b)
		r, g, b := Pack(n)
		assert.Equal(t, c.r, r)
		assert.Equal(t, c.g, g)
		assert.Equal(t, c.b, b)
	}
}

// TestPack_Quantization verifies arbitrary normalized values survive a
// pack/unpack cycle within one lattice step.
func TestPack_Quantization(t *testing.T) {
	for _, n := range []float64{0, 1e-9, 0.1, 1.0 / 3.0, 0.5, 0.75, 0.9999, 1} {
		r, g, b := Pack(n)
		got := NormalizedPacked(r, g, b)
		assert.InDelta(t, n, got, testutil.PackedTolerance, "n=%v", n)
	}
}

func TestPack_ClampsOutOfRange(t *testing.T) {
	r, g, b := Pack(-0.5)
	assert.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b})

	r, g, b = Pack(math.Nextafter(1, 2) * 2)
	n := NormalizedPacked(r, g, b)
	assert.InDelta(t, 1.0, n, testutil.PackedTolerance)
}
