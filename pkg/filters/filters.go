// Package filters implements the image filters the filter plot can show:
// gaussian and rank filters, edge detectors and band passes, with
// selectable edge handling. Unless a filter says otherwise, edges reflect.
package filters

import(
	"errors"
	"fmt"
	"sort"

	"github.com/abworrall/imgplot/pkg/emath"
	"github.com/abworrall/imgplot/pkg/errs"
)

var ErrNotImplemented = errors.New("filter not implemented")

// Params carries the arguments of every named filter; each filter reads the
// fields it needs. Zero values pick the defaults.
type Params struct {
	Size       int     // window edge of rank and uniform filters, default 3
	Sigma      float64 // gaussian, gaussian_laplace, gaussian_gradient_magnitude
	LowSigma   float64 // diff_of_gaussians
	HighSigma  float64 // diff_of_gaussians, default 1.6 * LowSigma
	Truncate   float64 // gaussian kernels reach Truncate*sigma, default 4
	Percentile float64 // percentile, in [0,100]; negative counts back from 100
	Rank       int     // rank; negative counts back from the top
	Axis       Axis    // sobel, prewitt
	Mode       Mode    // edge handling
	Cval       float64 // fill value for Constant
}

func (p Params)size() (int, error) {
	if p.Size == 0 {
		return 3, nil
	} else if p.Size < 0 {
		return 0, errs.Valuef("filter size must be positive, got %d", p.Size)
	}
	return p.Size, nil
}

func (p Params)truncate() float64 {
	if p.Truncate <= 0 {
		return 4.0
	}
	return p.Truncate
}

func (p Params)needSigma(sigma float64, what string) error {
	if !(sigma > 0) {
		return errs.Valuef("%s must be positive, got %v", what, sigma)
	}
	return nil
}

// A Filter turns a grid into a new grid of the same size.
type Filter interface {
	Name() string
	Apply(in *emath.FloatGrid) (*emath.FloatGrid, error)
}

// Func adapts a plain function into a Filter.
type Func func(in *emath.FloatGrid) (*emath.FloatGrid, error)

func (f Func)Name() string                                        { return "custom" }
func (f Func)Apply(in *emath.FloatGrid) (*emath.FloatGrid, error) { return f(in) }

type impl struct {
	apply       func(*emath.FloatGrid, Params) (*emath.FloatGrid, error)
	defaultMode Mode
}

var registry = map[string]impl{
	"gaussian":                    {gaussian, Reflect},
	"median":                      {median, Reflect},
	"max":                         {maximum, Reflect},
	"min":                         {minimum, Reflect},
	"uniform":                     {uniform, Reflect},
	"percentile":                  {percentile, Reflect},
	"rank":                        {ranked, Reflect},
	"sobel":                       {edgeFilter([]float64{1, 2, 1}), Reflect},
	"prewitt":                     {edgeFilter([]float64{1, 1, 1}), Reflect},
	"laplace":                     {laplace, Reflect},
	"gaussian_laplace":            {gaussianLaplace, Reflect},
	"gaussian_gradient_magnitude": {gaussianGradientMagnitude, Reflect},
	"diff_of_gaussians":           {diffOfGaussians, Nearest},
}

func Names() []string {
	names := []string{}
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

type named struct {
	name   string
	params Params
}

// Named is the filter registered under name. Unknown names only fail when
// applied, with ErrNotImplemented.
func Named(name string, p Params) Filter { return named{name, p} }

func (n named)Name() string { return n.name }

func (n named)Apply(in *emath.FloatGrid) (*emath.FloatGrid, error) {
	f, exists := registry[n.name]
	if !exists {
		return nil, fmt.Errorf("%w: %q, wanted one of %v", ErrNotImplemented, n.name, Names())
	}
	if in == nil || in.Len() == 0 {
		return nil, errs.Valuef("filter %s needs a non-empty grid", n.name)
	}

	p := n.params
	if p.Mode == "" {
		p.Mode = f.defaultMode
	} else if !p.Mode.valid() {
		return nil, errs.Valuef("filter %s: unknown boundary mode %q", n.name, string(p.Mode))
	}

	return f.apply(in, p)
}
