// Package figure is a small figure/axes model: a figure holds axes placed in
// figure-fraction coordinates, each axes holds images, bars, a colorbar or a
// scale bar, and the whole thing renders to a raster with gg.
//
// Coordinates are fractions of the figure, with the origin top-left (image
// convention, not matplotlib's bottom-left).
package figure

import(
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
)

const(
	DefaultWidth  = 6.4 // inches
	DefaultHeight = 4.8
	DefaultDPI    = 100.0
)

// The subplot margins and spacing, as fractions of the figure
var(
	MarginLeft   = 0.125
	MarginRight  = 0.9
	MarginTop    = 0.12
	MarginBottom = 0.89
	WSpace       = 0.2 // fraction of the average axes width
	HSpace       = 0.2 // fraction of the average axes height
)

// Rect is in figure fractions, origin top-left.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect)String() string { return fmt.Sprintf("[%.3f,%.3f %.3fx%.3f]", r.X, r.Y, r.W, r.H) }

type Figure struct {
	Width      float64 // inches
	Height     float64 // inches
	DPI        float64
	Background color.Color

	Axes     []*Axes  // in the order they were added
}

func New(width, height float64) *Figure {
	return &Figure{
		Width:      width,
		Height:     height,
		DPI:        DefaultDPI,
		Background: color.White,
		Axes:       []*Axes{},
	}
}

func NewDefault() *Figure { return New(DefaultWidth, DefaultHeight) }

func (f *Figure)String() string {
	return fmt.Sprintf("Figure(%gx%g in, %d axes)", f.Width, f.Height, len(f.Axes))
}

func (f *Figure)Size() (float64, float64) { return f.Width, f.Height }

// Pixels is the size of the rendered raster.
func (f *Figure)Pixels() (int, int) {
	return int(math.Round(f.Width * f.DPI)), int(math.Round(f.Height * f.DPI))
}

func (f *Figure)AddAxes(r Rect) *Axes {
	ax := newAxes(f, r)
	f.Axes = append(f.Axes, ax)
	return ax
}

// AddSubplot adds one axes filling the default subplot area.
func (f *Figure)AddSubplot() *Axes {
	return f.AddAxes(Rect{X: MarginLeft, Y: MarginTop, W: MarginRight-MarginLeft, H: MarginBottom-MarginTop})
}

// GridSpec splits the subplot area into rows x cols cells, row major. Nil
// ratios mean equal sizes.
func (f *Figure)GridSpec(rows, cols int, widthRatios, heightRatios []float64) ([]Rect, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("gridspec needs at least one row and column, got %dx%d", rows, cols)
	}
	widths, err := splitSpan(MarginRight-MarginLeft, cols, WSpace, widthRatios)
	if err != nil {
		return nil, fmt.Errorf("gridspec widths: %w", err)
	}
	heights, err := splitSpan(MarginBottom-MarginTop, rows, HSpace, heightRatios)
	if err != nil {
		return nil, fmt.Errorf("gridspec heights: %w", err)
	}

	cells := []Rect{}
	y := MarginTop
	for r:=0; r<rows; r++ {
		x := MarginLeft
		for c:=0; c<cols; c++ {
			cells = append(cells, Rect{X: x, Y: y, W: widths.sizes[c], H: heights.sizes[r]})
			x += widths.sizes[c] + widths.sep
		}
		y += heights.sizes[r] + heights.sep
	}
	return cells, nil
}

type span struct {
	sizes []float64
	sep   float64
}

// splitSpan divides total into n cells with gaps of space * (average cell size).
func splitSpan(total float64, n int, space float64, ratios []float64) (span, error) {
	if ratios == nil {
		ratios = make([]float64, n)
		for i := range ratios { ratios[i] = 1 }
	}
	if len(ratios) != n {
		return span{}, fmt.Errorf("want %d ratios, got %d", n, len(ratios))
	}
	sum := 0.0
	for _, r := range ratios {
		if r <= 0 {
			return span{}, fmt.Errorf("ratios must be positive, got %v", ratios)
		}
		sum += r
	}

	cell := total / (float64(n) + space*float64(n-1))
	s := span{sizes: make([]float64, n), sep: space * cell}
	for i, r := range ratios {
		s.sizes[i] = cell * float64(n) * r / sum
	}
	return s, nil
}

// EncodePNG renders the figure and writes it as a PNG.
func (f *Figure)EncodePNG(w io.Writer) error {
	return png.Encode(w, f.Render())
}

func (f *Figure)SavePNG(filename string) error {
	if writer, err := os.Create(filename); err != nil {
		return fmt.Errorf("open+w '%s': %w", filename, err)
	} else {
		defer writer.Close()
		return f.EncodePNG(writer)
	}
}

// Image is a convenience for callers that want the raster.
func (f *Figure)Image() image.Image { return f.Render() }
