package imgplot

import(
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/abworrall/imgplot/pkg/emath"
	"github.com/abworrall/imgplot/pkg/figure"
)

// HistPlot is an image with the histogram of its values alongside.
type HistPlot struct {
	Plot
	HistAx *figure.Axes
	Hist   emath.Histogram
}

// ImgHist draws the image on the left (or top, for horizontal) and a density
// histogram of the values on the right (or below). The histogram is of the
// data as drawn (after any gray conversion), and each bar is painted in the
// colour its bin centre gets from the image's colormap.
func ImgHist(data emath.Array, opts Options) (*HistPlot, error) {
	if err := checkArray("imghist", data); err != nil {
		return nil, err
	}
	if err := opts.validateHist(); err != nil {
		return nil, err
	}

	bins := 0
	if opts.Bins != nil {
		bins = *opts.Bins
	}

	var f *figure.Figure
	var cells []figure.Rect
	var err error
	orient := opts.orientation()
	if orient == figure.Vertical {
		f = figure.New(opts.Height*opts.Aspect, opts.Height)
		cells, err = f.GridSpec(1, 2, []float64{opts.Height - 1, 1}, nil)
	} else {
		f = figure.New(opts.Height, opts.Height*opts.Aspect)
		cells, err = f.GridSpec(2, 1, nil, []float64{opts.Height - 1, 1})
	}
	if err != nil {
		return nil, fmt.Errorf("imghist layout: %w", err)
	}

	imgOpts := opts
	imgOpts.Ax = f.AddAxes(cells[0])
	p, err := ImgPlot(data, imgOpts)
	if err != nil {
		return nil, err
	}

	hp := &HistPlot{Plot: *p}
	hp.HistAx = f.AddAxes(cells[1])

	// Bars run along the colorbar: sideways next to a vertical one
	barDir := figure.Horizontal
	if orient == figure.Horizontal {
		barDir = figure.Vertical
	}
	hp.Hist = hp.HistAx.Hist(p.Layer.Data.Flatten(), bins, barDir)
	if p.Ax.Colorbar != nil {
		hp.HistAx.ShareValueAxis(p.Ax.Colorbar)
	}

	if !opts.ShowTicks {
		hp.HistAx.SetTicksVisible(false)
	}
	hp.HistAx.SetFrameOn(false)

	cm := p.Layer.Cmap
	for i, c := range hp.Hist.NormalizedCenters() {
		hp.HistAx.Bars[i].Color = cm.At(c)
	}

	log.Debug().Int("bins", hp.Hist.NumBins()).Str("cmap", cm.Name()).Msg("histogram drawn")
	return hp, nil
}
