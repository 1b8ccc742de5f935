package filters

import(
	"math"

	"github.com/abworrall/imgplot/pkg/emath"
)

// Axis picks the direction of a one dimensional pass.
type Axis int

const(
	AxisX Axis = iota // along rows
	AxisY             // down columns
)

// correlate1D slides weights along one axis. The kernel centre is at
// len(weights)/2, so even length kernels lean one pixel towards lower indices.
func correlate1D(in *emath.FloatGrid, weights []float64, axis Axis, mode Mode, cval float64) *emath.FloatGrid {
	out := in.NewFromThis()
	w, h := in.Dx(), in.Dy()
	centre := len(weights) / 2

	for y:=0; y<h; y++ {
		for x:=0; x<w; x++ {
			sum := 0.0
			for j, wt := range weights {
				off := j - centre
				var v float64
				if axis == AxisX {
					if xx, ok := mode.index(x+off, w); ok {
						v = in.Get(xx, y)
					} else {
						v = cval
					}
				} else {
					if yy, ok := mode.index(y+off, h); ok {
						v = in.Get(x, yy)
					} else {
						v = cval
					}
				}
				sum += wt * v
			}
			out.Set(x, y, sum)
		}
	}
	return out
}

// separable applies weights along x, then along y.
func separable(in *emath.FloatGrid, wx, wy []float64, mode Mode, cval float64) *emath.FloatGrid {
	return correlate1D(correlate1D(in, wx, AxisX, mode, cval), wy, AxisY, mode, cval)
}

// gaussianKernel is the sampled gaussian of the given derivative order
// (0, 1 or 2), radius int(truncate*sigma + 0.5), normalised on its order 0
// samples. It is returned ready for correlation.
func gaussianKernel(sigma float64, order int, truncate float64) []float64 {
	radius := int(truncate*sigma + 0.5)
	s2 := sigma * sigma

	phi := make([]float64, 2*radius+1)
	sum := 0.0
	for i := range phi {
		x := float64(i - radius)
		phi[i] = math.Exp(-0.5 * x * x / s2)
		sum += phi[i]
	}
	for i := range phi {
		phi[i] /= sum
	}

	k := make([]float64, len(phi))
	for i := range phi {
		x := float64(i - radius)
		switch order {
		case 0:  k[i] = phi[i]
		case 1:  k[i] = x / s2 * phi[i]  // mirrored -x/s2, as correlation flips the convolution kernel
		default: k[i] = (x*x/(s2*s2) - 1/s2) * phi[i]
		}
	}
	return k
}

// gaussianOrders smooths along both axes, with the given derivative order on each.
func gaussianOrders(in *emath.FloatGrid, sigma float64, orderX, orderY int, p Params) *emath.FloatGrid {
	return separable(in, gaussianKernel(sigma, orderX, p.truncate()), gaussianKernel(sigma, orderY, p.truncate()), p.Mode, p.Cval)
}

func gaussian(in *emath.FloatGrid, p Params) (*emath.FloatGrid, error) {
	if err := p.needSigma(p.Sigma, "sigma"); err != nil {
		return nil, err
	}
	return gaussianOrders(in, p.Sigma, 0, 0, p), nil
}

func gaussianLaplace(in *emath.FloatGrid, p Params) (*emath.FloatGrid, error) {
	if err := p.needSigma(p.Sigma, "sigma"); err != nil {
		return nil, err
	}
	dxx := gaussianOrders(in, p.Sigma, 2, 0, p)
	dyy := gaussianOrders(in, p.Sigma, 0, 2, p)
	return add(dxx, dyy, 1), nil
}

func gaussianGradientMagnitude(in *emath.FloatGrid, p Params) (*emath.FloatGrid, error) {
	if err := p.needSigma(p.Sigma, "sigma"); err != nil {
		return nil, err
	}
	dx := gaussianOrders(in, p.Sigma, 1, 0, p)
	dy := gaussianOrders(in, p.Sigma, 0, 1, p)
	out := in.NewFromThis()
	for y:=0; y<in.Dy(); y++ {
		for x:=0; x<in.Dx(); x++ {
			out.Set(x, y, math.Hypot(dx.Get(x, y), dy.Get(x, y)))
		}
	}
	return out, nil
}

// Band pass: blur at LowSigma minus blur at HighSigma (default 1.6 * LowSigma).
func diffOfGaussians(in *emath.FloatGrid, p Params) (*emath.FloatGrid, error) {
	if err := p.needSigma(p.LowSigma, "low sigma"); err != nil {
		return nil, err
	}
	high := p.HighSigma
	if high == 0 {
		high = 1.6 * p.LowSigma
	}
	if err := p.needSigma(high, "high sigma"); err != nil {
		return nil, err
	}
	low := gaussianOrders(in, p.LowSigma, 0, 0, p)
	return add(low, gaussianOrders(in, high, 0, 0, p), -1), nil
}

// Derivative along the axis, smoothing across it: sobel uses [1 2 1], prewitt [1 1 1].
func edgeFilter(smooth []float64) func(*emath.FloatGrid, Params) (*emath.FloatGrid, error) {
	return func(in *emath.FloatGrid, p Params) (*emath.FloatGrid, error) {
		deriv := []float64{-1, 0, 1}
		if p.Axis == AxisY {
			return separable(in, smooth, deriv, p.Mode, p.Cval), nil
		}
		return separable(in, deriv, smooth, p.Mode, p.Cval), nil
	}
}

func laplace(in *emath.FloatGrid, p Params) (*emath.FloatGrid, error) {
	d2 := []float64{1, -2, 1}
	return add(correlate1D(in, d2, AxisX, p.Mode, p.Cval), correlate1D(in, d2, AxisY, p.Mode, p.Cval), 1), nil
}

func uniform(in *emath.FloatGrid, p Params) (*emath.FloatGrid, error) {
	size, err := p.size()
	if err != nil {
		return nil, err
	}
	weights := make([]float64, size)
	for i := range weights {
		weights[i] = 1.0 / float64(size)
	}
	return separable(in, weights, weights, p.Mode, p.Cval), nil
}

// add returns a + k*b.
func add(a, b *emath.FloatGrid, k float64) *emath.FloatGrid {
	out := a.NewFromThis()
	for y:=0; y<a.Dy(); y++ {
		for x:=0; x<a.Dx(); x++ {
			out.Set(x, y, a.Get(x, y) + k*b.Get(x, y))
		}
	}
	return out
}
