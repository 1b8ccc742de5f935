package imgplot

import(
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abworrall/imgplot/pkg/emath"
	"github.com/abworrall/imgplot/pkg/errs"
	"github.com/abworrall/imgplot/pkg/fft"
)

func TestFFTPlot(t *testing.T) {
	data := ramp()

	windowed, err := fft.ApplyWindow(data, "hann")
	require.NoError(t, err)

	tests := []struct {
		fo   FFTOptions
		want *emath.FloatGrid
	}{
		{DefaultFFTOptions(),                    fft.Log(fft.Shift(fft.Magnitude(data)))},
		{FFTOptions{Log: true},                  fft.Log(fft.Magnitude(data))},
		{FFTOptions{Shift: true},                fft.Shift(fft.Magnitude(data))},
		{FFTOptions{Window: "hann", Shift: true, Log: true}, fft.Log(fft.Shift(fft.Magnitude(windowed)))},
	}
	for _, tc := range tests {
		p, err := FFTPlot(data, tc.fo, DefaultOptions())
		require.NoError(t, err, "%+v", tc.fo)
		assert.True(t, tc.want.Equal(p.Layer.Data.(*emath.FloatGrid)), "%+v", tc.fo)
	}
}

func TestFFTPlotErrors(t *testing.T) {
	_, err := FFTPlot(rgbImage(), DefaultFFTOptions(), DefaultOptions())
	assert.True(t, errors.Is(err, errs.ErrValue))

	_, err = FFTPlot(ramp(), FFTOptions{Window: "square"}, DefaultOptions())
	assert.True(t, errors.Is(err, errs.ErrValue))

	_, err = FFTPlot(nil, DefaultFFTOptions(), DefaultOptions())
	assert.True(t, errors.Is(err, errs.ErrType))
}
