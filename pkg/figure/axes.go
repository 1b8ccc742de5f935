package figure

import(
	"fmt"
	"image/color"
	"math"

	"github.com/abworrall/imgplot/pkg/colormap"
	"github.com/abworrall/imgplot/pkg/emath"
	"github.com/abworrall/imgplot/pkg/errs"
)

type Orientation int

const(
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation)String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ParseOrientation accepts "v"/"vertical" and "h"/"horizontal". Empty means vertical.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "", "v", "vertical":   return Vertical, nil
	case "h", "horizontal":     return Horizontal, nil
	}
	return Vertical, errs.Valuef("'orientation' must be either : 'horizontal' or 'h' / 'vertical' or 'v', got %q", s)
}

// Axes is one panel of a figure.
type Axes struct {
	Figure    *Figure
	Rect      Rect
	Title     string

	Images    []*ImageLayer
	Bars      []*Bar
	BarDir    Orientation  // Vertical bars grow upwards along y; Horizontal bars grow rightwards
	ValueLim  [2]float64   // extent of the bar value axis (the axis the bins are laid along)

	ScaleBar  *ScaleBar
	Colorbar  *Colorbar    // the colorbar describing this axes' image
	cbarOf    *Colorbar    // set when this axes *is* a colorbar

	Spines    map[Side]bool
	ShowTicks bool
	Frame     bool
}

func newAxes(f *Figure, r Rect) *Axes {
	return &Axes{
		Figure:    f,
		Rect:      r,
		Spines:    map[Side]bool{Top: true, Bottom: true, Left: true, Right: true},
		ShowTicks: true,
		Frame:     true,
	}
}

func (ax *Axes)String() string {
	kind := "axes"
	switch {
	case ax.cbarOf != nil:  kind = "colorbar"
	case len(ax.Images) > 0: kind = "image"
	case len(ax.Bars) > 0:   kind = "bars"
	}
	return fmt.Sprintf("Axes(%s %s)", kind, ax.Rect)
}

func (ax *Axes)IsColorbar() bool { return ax.cbarOf != nil }

// ColorbarOwner returns the colorbar this axes draws, if it is a colorbar axes.
func (ax *Axes)ColorbarOwner() *Colorbar { return ax.cbarOf }

func (ax *Axes)SetTicksVisible(b bool) { ax.ShowTicks = b }
func (ax *Axes)SetFrameOn(b bool)      { ax.Frame = b }

// VisibleSpines lists the sides still drawn, in a fixed order.
func (ax *Axes)VisibleSpines() []Side {
	out := []Side{}
	for _, s := range allSides {
		if ax.Spines[s] {
			out = append(out, s)
		}
	}
	return out
}

// An ImageLayer is array data drawn through a colormap; RGB arrays are drawn as is.
type ImageLayer struct {
	Data   emath.Array
	Cmap   colormap.Colormap
	Vmin   float64
	Vmax   float64
}

// Imshow adds an image. Unset limits default to the data's finite min and max.
func (ax *Axes)Imshow(data emath.Array, cm colormap.Colormap, vmin, vmax *float64) *ImageLayer {
	if cm == nil {
		cm = colormap.Default()
	}
	l := &ImageLayer{Data: data, Cmap: cm}

	min, max := emath.FiniteRange(data.Flatten())
	l.Vmin, l.Vmax = min, max
	if vmin != nil { l.Vmin = *vmin }
	if vmax != nil { l.Vmax = *vmax }

	ax.Images = append(ax.Images, l)
	return l
}

// Norm maps a data value onto [0,1] (values outside the limits fall outside it).
func (l *ImageLayer)Norm(v float64) float64 {
	if l.Vmax == l.Vmin {
		return 0
	}
	return (v - l.Vmin) / (l.Vmax - l.Vmin)
}

// A Bar is one histogram patch. Lo/Hi are along the value axis.
type Bar struct {
	Lo, Hi  float64
	Height  float64
	Color   color.Color
}

// Hist adds a density histogram, bars in a flat blue until recoloured.
func (ax *Axes)Hist(vals []float64, bins int, dir Orientation) emath.Histogram {
	h := emath.NewHistogram(vals, bins)
	ax.BarDir = dir
	ax.Bars = make([]*Bar, h.NumBins())
	for i := range ax.Bars {
		ax.Bars[i] = &Bar{Lo: h.Edges[i], Hi: h.Edges[i+1], Height: h.Density[i], Color: color.NRGBA{0x1f, 0x77, 0xb4, 0xff}}
	}
	ax.ValueLim = [2]float64{h.Edges[0], h.Edges[len(h.Edges)-1]}
	return h
}

// ShareValueAxis makes the bars' value axis follow a colorbar's limits, so
// the bins line up with the colours they are painted in.
func (ax *Axes)ShareValueAxis(cb *Colorbar) {
	if cb == nil || cb.Layer == nil {
		return
	}
	lo, hi := cb.Layer.Vmin, cb.Layer.Vmax
	if math.IsNaN(lo) || math.IsNaN(hi) || lo == hi {
		return
	}
	ax.ValueLim = [2]float64{lo, hi}
}

// maxBarHeight is the extent of the bar height axis.
func (ax *Axes)maxBarHeight() float64 {
	max := 0.0
	for _, b := range ax.Bars {
		if b.Height > max { max = b.Height }
	}
	return max
}
