package emath

import(
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFloatGridFrom(t *testing.T) {
	fg, err := NewFloatGridFrom(3, 2, []float64{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, 3, fg.Dx())
	assert.Equal(t, 2, fg.Dy())
	assert.Equal(t, 1, fg.Channels())
	assert.Equal(t, 5.0, fg.Get(2, 1))
	assert.Equal(t, 3.0, fg.Get(0, 1))

	_, err = NewFloatGridFrom(3, 3, []float64{0, 1})
	assert.Error(t, err)
	_, err = NewFloatGridFrom(0, 3, nil)
	assert.Error(t, err)
}

func TestFlattenIsACopy(t *testing.T) {
	fg := NewFloatGrid(2, 2)
	flat := fg.Flatten()
	flat[0] = 42
	assert.Equal(t, 0.0, fg.Get(0, 0))

	cp := fg.Copy()
	cp.Set(1, 1, 7)
	assert.Equal(t, 0.0, fg.Get(1, 1))
	assert.False(t, fg.Equal(cp))
}

func TestEqualTreatsNaNAsEqual(t *testing.T) {
	a, _ := NewFloatGridFrom(2, 1, []float64{math.NaN(), 1})
	b, _ := NewFloatGridFrom(2, 1, []float64{math.NaN(), 1})
	assert.True(t, a.Equal(b))
}

func TestMinMaxIgnoresNaN(t *testing.T) {
	min, max := MinMax([]float64{math.NaN(), 3, -1, 8, math.NaN()})
	assert.Equal(t, -1.0, min)
	assert.Equal(t, 8.0, max)

	min, max = MinMax([]float64{math.NaN()})
	assert.True(t, math.IsNaN(min))
	assert.True(t, math.IsNaN(max))
}

func TestFiniteRangeSkipsInf(t *testing.T) {
	min, max := FiniteRange([]float64{math.Inf(-1), 2, math.NaN(), 5, math.Inf(1)})
	assert.Equal(t, 2.0, min)
	assert.Equal(t, 5.0, max)
}

func TestPercentile(t *testing.T) {
	hundred := make([]float64, 101)
	for i := range hundred {
		hundred[i] = float64(i)
	}

	tests := []struct {
		name string
		vals []float64
		p    float64
		want float64
	}{
		{"median of even count interpolates", []float64{4, 1, 3, 2}, 50, 2.5},
		{"lowest", []float64{4, 1, 3, 2}, 0, 1},
		{"highest", []float64{4, 1, 3, 2}, 100, 4},
		{"nan ignored", []float64{math.NaN(), 3, 1, 2}, 50, 2},
		{"2nd percentile", hundred, 2, 2},
		{"98th percentile", hundred, 98, 98},
		{"between ranks", []float64{0, 10}, 25, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Percentile(tt.vals, tt.p), 1e-12)
		})
	}

	assert.True(t, math.IsNaN(Percentile([]float64{math.NaN()}, 50)))
}

func TestGridPercentileDoesNotReorder(t *testing.T) {
	fg, _ := NewFloatGridFrom(2, 2, []float64{9, 1, 5, 3})
	assert.Equal(t, 4.0, fg.Percentile(50))
	assert.Equal(t, []float64{9, 1, 5, 3}, fg.Flatten())
}

func TestMap(t *testing.T) {
	fg, _ := NewFloatGridFrom(2, 1, []float64{1, 4})
	sq := fg.Map(math.Sqrt)
	assert.Equal(t, []float64{1, 2}, sq.Flatten())
	assert.Equal(t, []float64{1, 4}, fg.Flatten())
}
