package imgplot

import(
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/abworrall/imgplot/pkg/emath"
	"github.com/abworrall/imgplot/pkg/errs"
	"github.com/abworrall/imgplot/pkg/figure"
)

// GridOptions lays several images out on one figure. The per-image lists
// are either empty, and every image takes the shared Options, or hold one
// entry per image drawn (after Slices).
type GridOptions struct {
	ColWrap   int          // images per row, 0 means 3
	Slices    []int        // draw only these images, in this order
	Height    float64      // of each cell in inches, 0 means 3
	Aspect    float64      // cell width over height, 0 means 1

	Cmap      []string     // "" keeps the shared colormap
	Robust    []bool
	Perc      [][2]float64
	Dx        []float64    // 0 means no scale bar on that image
	Units     []string     // "" keeps the shared units
	Dimension []string     // "" keeps the shared dimension
	Cbar      []bool
	CbarLabel []string
}

func DefaultGridOptions() GridOptions {
	return GridOptions{ColWrap: 3, Height: 3, Aspect: 1}
}

// Grid is what ImageGrid, RGBPlot and FilterGrid drew: one Plot per image,
// row major. Cells past the last image stay empty.
type Grid struct {
	Figure *figure.Figure
	Rows   int
	Cols   int
	Data   []emath.Array
	Plots  []*Plot
}

// Images wraps grids up for ImageGrid.
func Images(grids ...*emath.FloatGrid) []emath.Array {
	out := []emath.Array{}
	for _, g := range grids {
		out = append(out, g)
	}
	return out
}

func cellSize(height, aspect float64) (float64, float64, error) {
	if height == 0 { height = 3 }
	if aspect == 0 { aspect = 1 }
	if !(height > 0) {
		return 0, 0, errs.Valuef("'height' must be positive, got %v", height)
	} else if !(aspect > 0) {
		return 0, 0, errs.Valuef("'aspect' must be positive, got %v", aspect)
	}
	return height, aspect, nil
}

// wrap fits n cells into rows of at most colWrap.
func wrap(n, colWrap int) (int, int) {
	cols := colWrap
	if cols > n {
		cols = n
	}
	return (n + cols - 1) / cols, cols
}

// newGrid makes the figure and one axes per cell, for n cells.
func newGrid(rows, cols, n int, height, aspect float64) (*Grid, []*figure.Axes, error) {
	f := figure.New(float64(cols)*height*aspect, float64(rows)*height)
	cells, err := f.GridSpec(rows, cols, nil, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("grid layout: %w", err)
	}
	axes := []*figure.Axes{}
	for i:=0; i<n; i++ {
		axes = append(axes, f.AddAxes(cells[i]))
	}
	return &Grid{Figure: f, Rows: rows, Cols: cols}, axes, nil
}

// perImage builds the options for each image, checking the list lengths.
func (g GridOptions)perImage(opts Options, n int) ([]Options, error) {
	lens := map[string]int{
		"cmap": len(g.Cmap), "robust": len(g.Robust), "perc": len(g.Perc), "dx": len(g.Dx),
		"units": len(g.Units), "dimension": len(g.Dimension), "cbar": len(g.Cbar), "cbar_label": len(g.CbarLabel),
	}
	for name, l := range lens {
		if l != 0 && l != n {
			return nil, errs.Valuef("'%s' has %d entries, for %d images", name, l, n)
		}
	}

	all := []Options{}
	for i:=0; i<n; i++ {
		o := opts
		if len(g.Cmap) > 0 && g.Cmap[i] != ""           { o.Cmap, o.Colormap = g.Cmap[i], nil }
		if len(g.Robust) > 0                            { o.Robust = g.Robust[i] }
		if len(g.Perc) > 0                              { o.Perc = g.Perc[i] }
		if len(g.Dx) > 0                                { o.Dx = g.Dx[i] }
		if len(g.Units) > 0 && g.Units[i] != ""         { o.Units = g.Units[i] }
		if len(g.Dimension) > 0 && g.Dimension[i] != "" { o.Dimension = g.Dimension[i] }
		if len(g.Cbar) > 0                              { o.Cbar = g.Cbar[i] }
		if len(g.CbarLabel) > 0                         { o.CbarLabel = g.CbarLabel[i] }

		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("image %d: %w", i, err)
		}
		all = append(all, o)
	}
	return all, nil
}

// ImageGrid draws each image in its own cell, wrapping onto a new row every
// ColWrap images. The figure is Cols*Height*Aspect by Rows*Height inches.
func ImageGrid(images []emath.Array, opts Options, gopts GridOptions) (*Grid, error) {
	if len(images) == 0 {
		return nil, errs.Typef("imagegrid needs at least one image")
	}
	for i, img := range images {
		if err := checkArray(fmt.Sprintf("imagegrid image %d", i), img); err != nil {
			return nil, err
		}
	}

	if len(gopts.Slices) > 0 {
		picked := []emath.Array{}
		for _, s := range gopts.Slices {
			if s < 0 || s >= len(images) {
				return nil, errs.Valuef("slice %d out of range for %d images", s, len(images))
			}
			picked = append(picked, images[s])
		}
		images = picked
	}

	colWrap := gopts.ColWrap
	if colWrap == 0 {
		colWrap = 3
	} else if colWrap < 0 {
		return nil, errs.Valuef("'col_wrap' must be positive, got %d", colWrap)
	}
	height, aspect, err := cellSize(gopts.Height, gopts.Aspect)
	if err != nil {
		return nil, err
	}

	all, err := gopts.perImage(opts, len(images))
	if err != nil {
		return nil, err
	}

	rows, cols := wrap(len(images), colWrap)
	g, axes, err := newGrid(rows, cols, len(images), height, aspect)
	if err != nil {
		return nil, err
	}
	g.Data = images

	for i, img := range images {
		all[i].Ax = axes[i]
		p, err := ImgPlot(img, all[i])
		if err != nil {
			return nil, fmt.Errorf("image %d: %w", i, err)
		}
		g.Plots = append(g.Plots, p)
	}

	log.Debug().Int("rows", rows).Int("cols", cols).Int("images", len(images)).Msg("image grid")
	return g, nil
}

var rgbCmaps = []string{"Reds", "Greens", "Blues"}

// RGBPlot draws the red, green and blue channels of an RGB image side by
// side, each through its own colormap (Reds, Greens and Blues unless
// GridOptions.Cmap says otherwise).
func RGBPlot(data emath.Array, opts Options, gopts GridOptions) (*Grid, error) {
	if err := checkArray("rgbplot", data); err != nil {
		return nil, err
	}
	rgb, isRGB := data.(*emath.RGBGrid)
	if !isRGB {
		return nil, errs.Valuef("rgbplot needs three channel data, got %d channels", data.Channels())
	}

	if len(gopts.Cmap) == 0 {
		if len(gopts.Slices) == 0 {
			gopts.Cmap = rgbCmaps
		} else {
			for _, s := range gopts.Slices {
				if s >= 0 && s < len(rgbCmaps) {
					gopts.Cmap = append(gopts.Cmap, rgbCmaps[s])
				}
			}
		}
	}

	chans := rgb.Split()
	return ImageGrid(Images(chans...), opts, gopts)
}
