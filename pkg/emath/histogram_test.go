package emath

import(
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHistogram(t *testing.T) {
	h := NewHistogram([]float64{0, 0.5, 1, 1, 2, math.NaN()}, 2)

	require.Equal(t, 2, h.NumBins())
	assert.Equal(t, []float64{0, 1, 2}, h.Edges)
	assert.Equal(t, []int{2, 3}, h.Counts)
	assert.InDeltaSlice(t, []float64{0.4, 0.6}, h.Density, 1e-12)
	assert.Equal(t, []float64{0.5, 1.5}, h.Centers())
	assert.Equal(t, []float64{0, 1}, h.NormalizedCenters())
}

func TestHistogramDensityIntegratesToOne(t *testing.T) {
	vals := make([]float64, 1000)
	for i := range vals {
		vals[i] = math.Sin(float64(i)) * 3
	}

	h := NewHistogram(vals, 150)
	require.Equal(t, 150, h.NumBins())

	total := 0.0
	for i, d := range h.Density {
		total += d * (h.Edges[i+1] - h.Edges[i])
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestHistogramConstantData(t *testing.T) {
	h := NewHistogram([]float64{3, 3, 3}, 1)
	assert.Equal(t, []float64{2.5, 3.5}, h.Edges)
	assert.Equal(t, []int{3}, h.Counts)
	assert.Equal(t, []float64{0}, h.NormalizedCenters())
}

func TestAutoBins(t *testing.T) {
	ramp := make([]float64, 100)
	for i := range ramp {
		ramp[i] = float64(i)
	}
	assert.Equal(t, 8, AutoBins(ramp))
	assert.Equal(t, 1, AutoBins([]float64{2, 2, 2}))
	assert.Equal(t, 1, AutoBins(nil))

	h := NewHistogram(ramp, 0)
	assert.Equal(t, 8, h.NumBins())
}
