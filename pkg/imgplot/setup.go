package imgplot

import(
	"github.com/rs/zerolog/log"

	"github.com/abworrall/imgplot/pkg/colormap"
	"github.com/abworrall/imgplot/pkg/emath"
	"github.com/abworrall/imgplot/pkg/figure"
)

// setupImage does the drawing for ImgPlot, on options already validated.
func setupImage(data emath.Array, opts Options) (*Plot, error) {
	cm, err := colormap.Resolve(opts.Cmap, opts.Colormap)
	if err != nil {
		return nil, err
	}

	vmin, vmax := opts.Vmin, opts.Vmax
	minRobust, maxRobust := false, false
	if opts.Robust {
		vals := data.Flatten()
		if vmin == nil {
			lo := emath.Percentile(vals, opts.Perc[0])
			vmin, minRobust = &lo, true
		}
		if vmax == nil {
			hi := emath.Percentile(vals, opts.Perc[1])
			vmax, maxRobust = &hi, true
		}
		log.Debug().Floats64("perc", opts.Perc[:]).Float64("vmin", *vmin).Float64("vmax", *vmax).Msg("robust limits")
	}

	p := &Plot{}
	if opts.Ax != nil {
		p.Ax = opts.Ax
		p.Figure = opts.Ax.Figure
	} else {
		p.Figure = figure.NewDefault()
		p.Ax = p.Figure.AddSubplot()
	}

	p.Layer = p.Ax.Imshow(data, cm, vmin, vmax)

	if opts.Dx > 0 {
		sb, err := figure.NewScaleBar(opts.Dx, opts.Units, opts.Dimension)
		if err != nil {
			return nil, err
		}
		p.Ax.ScaleBar = sb
	}

	if opts.Cbar {
		cb := figure.AppendColorbar(p.Ax, p.Layer, opts.orientation(), figure.ExtendFor(minRobust, maxRobust))
		if opts.Despine {
			cb.Outline = false
		}
		if opts.CbarTicks != nil {
			cb.SetTicks(opts.CbarTicks)
		}
		if opts.CbarLabel != "" {
			cb.SetLabel(opts.CbarLabel)
		}
		p.Cax = cb.Ax
	}

	if !opts.ShowTicks {
		p.Ax.SetTicksVisible(false)
	}

	if opts.Despine {
		if err := figure.Despine(p.Ax, figure.All); err != nil {
			return nil, err
		}
	}

	log.Debug().Str("cmap", cm.Name()).Stringer("axes", p.Ax).Msg("image set up")
	return p, nil
}
