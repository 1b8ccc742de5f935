package imgplot

import(
	"github.com/abworrall/imgplot/pkg/colormap"
	"github.com/abworrall/imgplot/pkg/figure"
	"github.com/abworrall/imgplot/pkg/errs"
)

// Options controls how ImgPlot and ImgHist draw. Start from DefaultOptions().
type Options struct {
	Ax          *figure.Axes       `yaml:"-"`         // draw here instead of on a new figure
	Cmap        string             `yaml:"cmap,omitempty"`
	Colormap    colormap.Colormap  `yaml:"-"`         // wins over Cmap
	Gray        bool               `yaml:"gray"`

	Vmin        *float64           `yaml:"vmin,omitempty"`
	Vmax        *float64           `yaml:"vmax,omitempty"`
	Robust      bool               `yaml:"robust"`
	Perc        [2]float64         `yaml:"perc,flow"`

	Dx          float64            `yaml:"dx,omitempty"`     // size of a pixel; 0 means no scale bar
	Units       string             `yaml:"units,omitempty"`
	Dimension   string             `yaml:"dimension,omitempty"`

	Describe    bool               `yaml:"describe"`
	Cbar        bool               `yaml:"cbar"`
	Orientation string             `yaml:"orientation"`
	CbarLabel   string             `yaml:"cbar_label,omitempty"`
	CbarTicks   []float64          `yaml:"cbar_ticks,omitempty,flow"`
	ShowTicks   bool               `yaml:"showticks"`
	Despine     bool               `yaml:"despine"`

	// ImgHist only
	Bins        *int               `yaml:"bins,omitempty"`   // nil means pick automatically
	Height      float64            `yaml:"height"`
	Aspect      float64            `yaml:"aspect"`
}

func DefaultOptions() Options {
	return Options{
		Perc:        [2]float64{2, 98},
		Describe:    true,
		Cbar:        true,
		Orientation: "v",
		Despine:     true,
		Height:      5,
		Aspect:      1.75,
	}
}

// Validate range-checks the options, without touching any figure.
func (o Options)Validate() error {
	if _, err := figure.ParseOrientation(o.Orientation); err != nil {
		return err
	}

	if o.Robust {
		if o.Perc[0] < 0 || o.Perc[1] > 100 {
			return errs.Valuef("'perc' must be within [0,100], got %v", o.Perc)
		} else if !(o.Perc[0] < o.Perc[1]) {
			return errs.Valuef("'perc' must be ordered (min, max), got %v", o.Perc)
		}
	}

	if o.Vmin != nil && o.Vmax != nil && *o.Vmin > *o.Vmax {
		return errs.Valuef("'vmin' (%v) must not exceed 'vmax' (%v)", *o.Vmin, *o.Vmax)
	}

	if o.Bins != nil && *o.Bins <= 0 {
		return errs.Valuef("'bins' must be a positive integer, got %d", *o.Bins)
	}

	if o.Dx < 0 {
		return errs.Valuef("'dx' must be positive, got %v", o.Dx)
	} else if o.Dx > 0 {
		if _, err := figure.NewScaleBar(o.Dx, o.Units, o.Dimension); err != nil {
			return err
		}
	}

	if o.Colormap == nil && o.Cmap != "" {
		if _, err := colormap.Get(o.Cmap); err != nil {
			return err
		}
	}

	return nil
}

func (o Options)validateHist() error {
	if !(o.Height > 1) {
		return errs.Valuef("'height' must be greater than 1, got %v", o.Height)
	}
	if !(o.Aspect > 0) {
		return errs.Valuef("'aspect' must be positive, got %v", o.Aspect)
	}
	return o.Validate()
}

func (o Options)orientation() figure.Orientation {
	orient, _ := figure.ParseOrientation(o.Orientation)
	return orient
}
