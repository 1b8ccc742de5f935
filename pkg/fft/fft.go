// Package fft computes 2-D discrete Fourier transforms of float grids, with
// the window and shift helpers needed to display a spectrum.
package fft

import(
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"

	"github.com/abworrall/imgplot/pkg/emath"
	"github.com/abworrall/imgplot/pkg/errs"
)

// Windows fill a 1-D sequence in place, symmetric, zero or near zero at
// both ends.
var Windows = map[string]func([]float64) []float64{
	"hann":     window.Hann,
	"hamming":  window.Hamming,
	"blackman": window.Blackman,
	"bartlett": window.Triangular,
}

func WindowNames() []string {
	names := []string{}
	for n := range Windows {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func window1D(name string, n int) ([]float64, error) {
	wf, exists := Windows[name]
	if !exists {
		return nil, errs.Valuef("unknown window %q, wanted one of %v", name, WindowNames())
	}
	seq := make([]float64, n)
	for i := range seq { seq[i] = 1 }
	if n < 2 {
		return seq, nil
	}
	return wf(seq), nil
}

// Window2D is the radially symmetric window for a w x h grid. The 1-D window
// is built at the longer edge's length n, and each pixel samples it (linear
// interpolation, zero past the ends) at its distance from the centre, with
// both axes stretched to n.
func Window2D(name string, w, h int) (*emath.FloatGrid, error) {
	n := w
	if h > n { n = h }
	win, err := window1D(name, n)
	if err != nil {
		return nil, err
	}

	centre := float64(n)/2 - 0.5
	out := emath.NewFloatGrid(w, h)
	for y:=0; y<h; y++ {
		dy := float64(y) * float64(n) / float64(h) - centre
		for x:=0; x<w; x++ {
			dx := float64(x) * float64(n) / float64(w) - centre
			out.Set(x, y, sampleAt(win, math.Hypot(dx, dy) + centre))
		}
	}
	return out, nil
}

func sampleAt(vals []float64, pos float64) float64 {
	at := func(i int) float64 {
		if i < 0 || i >= len(vals) { return 0 }
		return vals[i]
	}
	i := int(math.Floor(pos))
	frac := pos - float64(i)
	return at(i)*(1-frac) + at(i+1)*frac
}

// ApplyWindow returns a copy of fg multiplied by the named window.
func ApplyWindow(fg *emath.FloatGrid, name string) (*emath.FloatGrid, error) {
	win, err := Window2D(name, fg.Dx(), fg.Dy())
	if err != nil {
		return nil, err
	}
	out := fg.NewFromThis()
	for y:=0; y<fg.Dy(); y++ {
		for x:=0; x<fg.Dx(); x++ {
			out.Set(x, y, fg.Get(x, y) * win.Get(x, y))
		}
	}
	return out, nil
}

// Transform2D returns the unnormalised forward DFT of fg, row major.
func Transform2D(fg *emath.FloatGrid) []complex128 {
	w, h := fg.Dx(), fg.Dy()
	coeffs := make([]complex128, w*h)
	for i, v := range fg.Flatten() {
		coeffs[i] = complex(v, 0)
	}

	rowFFT := fourier.NewCmplxFFT(w)
	row := make([]complex128, w)
	for y:=0; y<h; y++ {
		rowFFT.Coefficients(row, coeffs[y*w : (y+1)*w])
		copy(coeffs[y*w:(y+1)*w], row)
	}

	colFFT := fourier.NewCmplxFFT(h)
	col, colOut := make([]complex128, h), make([]complex128, h)
	for x:=0; x<w; x++ {
		for y:=0; y<h; y++ { col[y] = coeffs[y*w+x] }
		colFFT.Coefficients(colOut, col)
		for y:=0; y<h; y++ { coeffs[y*w+x] = colOut[y] }
	}

	return coeffs
}

// Magnitude is |DFT(fg)|.
func Magnitude(fg *emath.FloatGrid) *emath.FloatGrid {
	out := fg.NewFromThis()
	coeffs := Transform2D(fg)
	w := fg.Dx()
	for i, c := range coeffs {
		out.Set(i % w, i / w, cmplx.Abs(c))
	}
	return out
}

// Shift moves the zero frequency term to the centre, rolling each axis by
// half its length (rounded down).
func Shift(fg *emath.FloatGrid) *emath.FloatGrid {
	w, h := fg.Dx(), fg.Dy()
	out := fg.NewFromThis()
	for y:=0; y<h; y++ {
		for x:=0; x<w; x++ {
			out.Set((x + w/2) % w, (y + h/2) % h, fg.Get(x, y))
		}
	}
	return out
}

// Log is the natural log of every value; zeros become -Inf.
func Log(fg *emath.FloatGrid) *emath.FloatGrid {
	return fg.Map(math.Log)
}
