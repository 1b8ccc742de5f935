package figure

import "math"

type Extend int

const(
	ExtendNeither Extend = iota
	ExtendMin
	ExtendMax
	ExtendBoth
)

func (e Extend)String() string {
	return [...]string{"neither", "min", "max", "both"}[e]
}

// ExtendFor says which ends of a colorbar get a pointed cap, given which
// limits were clipped.
func ExtendFor(lowClipped, highClipped bool) Extend {
	switch {
	case lowClipped && highClipped: return ExtendBoth
	case lowClipped:                return ExtendMin
	case highClipped:               return ExtendMax
	}
	return ExtendNeither
}

type Colorbar struct {
	Ax          *Axes
	Parent      *Axes
	Layer       *ImageLayer
	Orientation Orientation
	Extend      Extend
	Ticks       []float64
	Label       string
	Outline     bool
}

// Colorbar strips are 1/20 of the image extent, with half that again as padding.
const(
	cbarFraction = 1.0 / 20.0
	cbarPad      = 0.5
)

// AppendColorbar carves a colorbar strip off the parent axes, to the right
// (vertical) or below (horizontal). The parent is first shrunk to the
// image's aspect ratio, so the strip is exactly as long as the image.
func AppendColorbar(parent *Axes, layer *ImageLayer, o Orientation, extend Extend) *Colorbar {
	f := parent.Figure
	wIn, hIn := parent.Rect.W * f.Width, parent.Rect.H * f.Height

	aspect := wIn / hIn
	if layer != nil && layer.Data.Dy() > 0 {
		aspect = float64(layer.Data.Dx()) / float64(layer.Data.Dy())
	}
	strip := cbarFraction * (1.0 + cbarPad)

	var imgW, imgH, size float64
	if o == Vertical {
		imgH = math.Min(hIn, wIn / (aspect + strip))
		imgW = aspect * imgH
		size = cbarFraction * imgH
	} else {
		imgW = math.Min(wIn, hIn / (1.0/aspect + strip))
		imgH = imgW / aspect
		size = cbarFraction * imgW
	}
	pad := cbarPad * size

	// Center the image + strip group inside the original rect
	groupW, groupH := imgW, imgH
	if o == Vertical {
		groupW += pad + size
	} else {
		groupH += pad + size
	}
	x0 := parent.Rect.X + (wIn - groupW) / 2.0 / f.Width
	y0 := parent.Rect.Y + (hIn - groupH) / 2.0 / f.Height

	parent.Rect = Rect{X: x0, Y: y0, W: imgW / f.Width, H: imgH / f.Height}

	var r Rect
	if o == Vertical {
		r = Rect{X: x0 + (imgW + pad) / f.Width, Y: y0, W: size / f.Width, H: imgH / f.Height}
	} else {
		r = Rect{X: x0, Y: y0 + (imgH + pad) / f.Height, W: imgW / f.Width, H: size / f.Height}
	}

	cb := &Colorbar{
		Parent:      parent,
		Layer:       layer,
		Orientation: o,
		Extend:      extend,
		Outline:     true,
	}
	cb.Ax = f.AddAxes(r)
	cb.Ax.cbarOf = cb
	cb.Ax.ShowTicks = true
	parent.Colorbar = cb

	if layer != nil {
		cb.Ticks = NiceTicks(layer.Vmin, layer.Vmax, 3)
	}

	return cb
}

func (cb *Colorbar)SetTicks(ticks []float64) { cb.Ticks = append([]float64{}, ticks...) }
func (cb *Colorbar)SetLabel(label string)    { cb.Label = label }
