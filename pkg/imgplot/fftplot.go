package imgplot

import(
	"github.com/rs/zerolog/log"

	"github.com/abworrall/imgplot/pkg/emath"
	"github.com/abworrall/imgplot/pkg/errs"
	"github.com/abworrall/imgplot/pkg/fft"
)

// FFTOptions picks what FFTPlot does to the spectrum before drawing it.
type FFTOptions struct {
	Window string // "" for none, else one of fft.WindowNames()
	Shift  bool   // zero frequency in the middle
	Log    bool   // natural log of the magnitude
}

func DefaultFFTOptions() FFTOptions {
	return FFTOptions{Shift: true, Log: true}
}

// FFTPlot draws the magnitude of the 2-D Fourier transform of data.
func FFTPlot(data emath.Array, fo FFTOptions, opts Options) (*Plot, error) {
	if err := checkArray("fftplot", data); err != nil {
		return nil, err
	}
	fg, isGrid := data.(*emath.FloatGrid)
	if !isGrid || data.Channels() != 1 {
		return nil, errs.Valuef("fftplot needs a single channel 2-D grid, got %d channels", data.Channels())
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if fo.Window != "" {
		windowed, err := fft.ApplyWindow(fg, fo.Window)
		if err != nil {
			return nil, err
		}
		fg = windowed
	}

	spectrum := fft.Magnitude(fg)
	if fo.Shift {
		spectrum = fft.Shift(spectrum)
	}
	if fo.Log {
		spectrum = fft.Log(spectrum)
	}
	log.Debug().Str("window", fo.Window).Bool("shift", fo.Shift).Bool("log", fo.Log).Msg("spectrum")

	return ImgPlot(spectrum, opts)
}
