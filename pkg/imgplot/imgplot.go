// Package imgplot draws 2-D arrays as images with sensible defaults: robust
// colour limits, colorbars, scale bars and summary statistics, optionally
// alongside a histogram of the values.
package imgplot

import(
	"github.com/rs/zerolog/log"

	"github.com/abworrall/imgplot/pkg/emath"
	"github.com/abworrall/imgplot/pkg/figure"
	"github.com/abworrall/imgplot/pkg/errs"
)

// Plot is what ImgPlot drew.
type Plot struct {
	Figure  *figure.Figure
	Ax      *figure.Axes        // the image axes
	Cax     *figure.Axes        // the colorbar axes, nil when there is no colorbar
	Layer   *figure.ImageLayer  // holds the data as drawn, after any gray conversion
	Summary *emath.Description  // set when Options.Describe
}

// checkArray rejects nil input, including a nil grid pointer wrapped in
// the interface.
func checkArray(who string, data emath.Array) error {
	isNil := false
	switch v := data.(type) {
	case nil:              isNil = true
	case *emath.FloatGrid: isNil = v == nil
	case *emath.RGBGrid:   isNil = v == nil
	}
	if isNil {
		return errs.Typef("%s needs an array, got nil", who)
	}
	return nil
}

// ImgPlot draws data as an image. Three channel data is drawn as RGB, and
// never gets a colorbar or robust limits; with Gray it is first converted to
// luminance and drawn through a colormap like any other grid.
func ImgPlot(data emath.Array, opts Options) (*Plot, error) {
	if err := checkArray("imgplot", data); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if rgb, isRGB := data.(*emath.RGBGrid); isRGB {
		if opts.Cbar || opts.Robust {
			log.Debug().Bool("cbar", opts.Cbar).Bool("robust", opts.Robust).Msg("RGB input, turning off colorbar and robust limits")
		}
		opts.Cbar = false
		opts.Robust = false
		if opts.Gray {
			data = rgb.ToGray()
		}
	}

	if opts.Gray && opts.Cmap == "" && opts.Colormap == nil {
		opts.Cmap = "gray"
	}

	p, err := setupImage(data, opts)
	if err != nil {
		return nil, err
	}

	if opts.Describe {
		d := emath.Describe(data)
		p.Summary = &d
	}

	return p, nil
}
