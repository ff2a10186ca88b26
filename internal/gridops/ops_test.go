package gridops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor_ReturnsMatchingOps(t *testing.T) {
	assert.NotNil(t, For[float32]())
	assert.NotNil(t, For[float64]())
}

func TestSum_MatchesScalarReference(t *testing.T) {
	data := make([]float64, 1023)
	var want float64
	for i := range data {
		data[i] = float64(i%13) - 6
		want += data[i]
	}

	got := For[float64]().Sum(data)
	assert.InDelta(t, want, got, 1e-9)
}

func TestScale_MatchesScalarReference(t *testing.T) {
	data := make([]float32, 257)
	want := make([]float32, len(data))
	for i := range data {
		data[i] = float32(i) * 0.25
		want[i] = data[i] * 3
	}

	dst := make([]float32, len(data))
	For[float32]().Scale(dst, data, 3)
	assert.Equal(t, want, dst)
}

func TestScale_InPlace(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	For[float64]().Scale(data, data, 0.5)
	assert.Equal(t, []float64{0.5, 1, 1.5, 2}, data)
}
