// Package colormap maps normalized scalars onto colors, and keeps the
// process-wide table of named colormaps.
package colormap

import(
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// A Colormap maps a normalized value in [0,1] to a color. Values outside
// the range clamp to the ends; NaN maps to transparent.
type Colormap interface {
	At(t float64) color.Color
	Name() string
}

var transparent = color.NRGBA{}

// Linear interpolates between evenly spaced anchor colors, in CIE-Lab so
// the ramps stay perceptually smooth.
type Linear struct {
	name  string
	stops []colorful.Color
}

func NewLinear(name string, hexes ...string) *Linear {
	return &Linear{name: name, stops: mustParse(hexes)}
}

func (l *Linear)Name() string { return l.name }

func (l *Linear)At(t float64) color.Color {
	if math.IsNaN(t) {
		return transparent
	}
	t = clamp(t)
	if len(l.stops) == 1 {
		return toNRGBA(l.stops[0])
	}

	idx := t * float64(len(l.stops)-1)
	lower := int(idx)
	if lower >= len(l.stops)-1 {
		return toNRGBA(l.stops[len(l.stops)-1])
	} else if idx == float64(lower) {
		return toNRGBA(l.stops[lower])
	}
	return toNRGBA(l.stops[lower].BlendLab(l.stops[lower+1], idx-float64(lower)))
}

// Listed is a discrete palette; [0,1] is split into len(colors) equal slots.
type Listed struct {
	name   string
	colors []colorful.Color
}

func NewListed(name string, hexes ...string) *Listed {
	return &Listed{name: name, colors: mustParse(hexes)}
}

func (l *Listed)Name() string { return l.name }
func (l *Listed)Len() int     { return len(l.colors) }

func (l *Listed)At(t float64) color.Color {
	if math.IsNaN(t) {
		return transparent
	}
	i := int(clamp(t) * float64(len(l.colors)))
	if i >= len(l.colors) { i = len(l.colors)-1 }
	return toNRGBA(l.colors[i])
}

type reversed struct {
	Colormap
}

// Reverse runs a colormap backwards. Its name gets an "_r" suffix.
func Reverse(cm Colormap) Colormap { return reversed{cm} }

func (r reversed)At(t float64) color.Color { return r.Colormap.At(1.0 - t) }
func (r reversed)Name() string             { return r.Colormap.Name() + "_r" }

func clamp(t float64) float64 {
	if t < 0 { return 0 }
	if t > 1 { return 1 }
	return t
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{r, g, b, 0xff}
}

func mustParse(hexes []string) []colorful.Color {
	if len(hexes) == 0 {
		panic("colormap: no colors")
	}
	out := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(fmt.Sprintf("colormap: bad color %q: %v", h, err))
		}
		out[i] = c
	}
	return out
}
