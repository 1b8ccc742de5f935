package emath

import(
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	fg, _ := NewFloatGridFrom(5, 1, []float64{3, 1, 5, 2, 4})

	d := Describe(fg)
	assert.Equal(t, 5, d.NObs)
	assert.Equal(t, 1.0, d.Min)
	assert.Equal(t, 5.0, d.Max)
	assert.InDelta(t, 3.0, d.Mean, 1e-12)
	assert.InDelta(t, 2.5, d.Variance, 1e-12)
	assert.InDelta(t, 0.0, d.Skewness, 1e-12)
}

func TestDescribeSkewSign(t *testing.T) {
	right, _ := NewFloatGridFrom(4, 1, []float64{1, 1, 2, 10})
	left, _ := NewFloatGridFrom(4, 1, []float64{-10, -2, -1, -1})

	assert.Greater(t, Describe(right).Skewness, 0.0)
	assert.Less(t, Describe(left).Skewness, 0.0)
}

func TestDescribeSkewIsBiasedMoment(t *testing.T) {
	fg, _ := NewFloatGridFrom(3, 1, []float64{1, 2, 10})

	// m2 = 146/9, m3 = 1190/27, g1 = m3 / m2^1.5
	want := (1190.0/27) / math.Pow(146.0/9, 1.5)
	d := Describe(fg)
	assert.InDelta(t, want, d.Skewness, 1e-12)
	assert.InDelta(t, 0.6746, d.Skewness, 1e-4)
}

func TestDescribeConstantSkewIsNaN(t *testing.T) {
	fg, _ := NewFloatGridFrom(3, 1, []float64{4, 4, 4})
	d := Describe(fg)
	assert.Equal(t, 0.0, d.Variance)
	assert.True(t, math.IsNaN(d.Skewness))
}

func TestDescribeNaNPropagates(t *testing.T) {
	for _, vals := range [][]float64{
		{math.NaN(), 1, 2},
		{1, math.NaN(), 2},
		{1, 2, math.NaN()},
	} {
		fg, _ := NewFloatGridFrom(3, 1, vals)
		d := Describe(fg)
		assert.Equal(t, 3, d.NObs)
		for name, v := range map[string]float64{"min": d.Min, "max": d.Max, "mean": d.Mean, "variance": d.Variance, "skew": d.Skewness} {
			assert.True(t, math.IsNaN(v), "%s of %v", name, vals)
		}
	}
}

func TestDescribeRGBFlattensChannels(t *testing.T) {
	rg := NewRGBGrid(2, 1)
	rg.Set(0, 0, 0, 0.5, 1)
	rg.Set(1, 0, 1, 0.5, 0)

	d := Describe(rg)
	assert.Equal(t, 6, d.NObs)
	assert.InDelta(t, 0.5, d.Mean, 1e-12)
}

func TestDescriptionString(t *testing.T) {
	d := Description{NObs: 4, Min: 1, Max: 2, Mean: 1.5, Variance: 0.25, Skewness: 0}
	s := d.String()
	assert.Contains(t, s, "No. of Obs. : 4\n")
	assert.Contains(t, s, "Min. Value : 1\n")
	assert.Contains(t, s, "Max. Value : 2\n")
	assert.Contains(t, s, "Variance : 0.25\n")
}
