package figure

import(
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// A box is a region of the raster, in pixels.
type box struct {
	x, y, w, h float64
}

var(
	spineColor = color.Black
	textColor  = color.Black
)

// Render draws the figure, axes in the order they were added.
func (f *Figure)Render() *image.RGBA {
	w, h := f.Pixels()
	dc := gg.NewContext(w, h)
	dc.SetFontFace(basicfont.Face7x13)

	if f.Background != nil {
		dc.SetColor(f.Background)
		dc.Clear()
	}

	for _, ax := range f.Axes {
		ax.draw(dc)
	}

	return dc.Image().(*image.RGBA)
}

func (ax *Axes)pixelBox() box {
	fw, fh := ax.Figure.Pixels()
	return box{
		x: ax.Rect.X * float64(fw),
		y: ax.Rect.Y * float64(fh),
		w: ax.Rect.W * float64(fw),
		h: ax.Rect.H * float64(fh),
	}
}

// ImageBox is where the axes' first image lands on the raster, keeping
// square pixels.
func (ax *Axes)ImageBox() image.Rectangle {
	b := ax.pixelBox()
	if len(ax.Images) > 0 {
		b = fitBox(b, ax.Images[0].Data.Dx(), ax.Images[0].Data.Dy())
	}
	return image.Rect(int(math.Round(b.x)), int(math.Round(b.y)), int(math.Round(b.x+b.w)), int(math.Round(b.y+b.h)))
}

func (ax *Axes)draw(dc *gg.Context) {
	b := ax.pixelBox()

	if ax.cbarOf != nil {
		ax.cbarOf.draw(dc, b)
		return
	}

	frame := b
	for _, l := range ax.Images {
		frame = l.draw(dc, b)
	}

	if len(ax.Bars) > 0 {
		ax.drawBars(dc, b)
	}

	if ax.ScaleBar != nil && len(ax.Images) > 0 {
		ax.ScaleBar.draw(dc, frame, ax.Images[0].Data.Dx())
	}

	if ax.Frame {
		drawSpines(dc, frame, ax.Spines)
	}

	if ax.Title != "" {
		dc.SetColor(textColor)
		dc.DrawStringAnchored(ax.Title, frame.x+frame.w/2, frame.y-4, 0.5, 0)
	}

	if ax.ShowTicks {
		if len(ax.Images) > 0 {
			drawImageTicks(dc, frame, ax.Images[0].Data.Dx(), ax.Images[0].Data.Dy())
		} else if len(ax.Bars) > 0 {
			ax.drawBarTicks(dc, b)
		}
	}
}

func fitBox(b box, dx, dy int) box {
	if dx <= 0 || dy <= 0 || b.w <= 0 || b.h <= 0 {
		return b
	}
	aspect := float64(dx) / float64(dy)
	out := b
	if b.w / b.h > aspect {
		out.w = b.h * aspect
	} else {
		out.h = b.w / aspect
	}
	out.x = b.x + (b.w - out.w) / 2
	out.y = b.y + (b.h - out.h) / 2
	return out
}

// Raster maps the layer's data through its colormap, one pixel per element.
// Three channel data is drawn directly, clipped to [0,1].
func (l *ImageLayer)Raster() *image.NRGBA {
	dx, dy := l.Data.Dx(), l.Data.Dy()
	img := image.NewNRGBA(image.Rect(0, 0, dx, dy))
	vals := l.Data.Flatten()

	if l.Data.Channels() == 3 {
		to8 := func(v float64) uint8 {
			if math.IsNaN(v) || v < 0 { return 0 }
			if v > 1                 { return 255 }
			return uint8(v*255 + 0.5)
		}
		for i:=0; i<dx*dy; i++ {
			img.SetNRGBA(i % dx, i / dx, color.NRGBA{to8(vals[3*i]), to8(vals[3*i+1]), to8(vals[3*i+2]), 0xff})
		}
		return img
	}

	for i, v := range vals {
		img.Set(i % dx, i / dx, l.Cmap.At(l.Norm(v)))
	}
	return img
}

func (l *ImageLayer)draw(dc *gg.Context, b box) box {
	fit := fitBox(b, l.Data.Dx(), l.Data.Dy())
	w, h := int(math.Round(fit.w)), int(math.Round(fit.h))
	if w < 1 || h < 1 {
		return fit
	}
	scaled := imaging.Resize(l.Raster(), w, h, imaging.NearestNeighbor)
	dc.DrawImage(scaled, int(math.Round(fit.x)), int(math.Round(fit.y)))
	return fit
}

func drawSpines(dc *gg.Context, b box, spines map[Side]bool) {
	dc.SetColor(spineColor)
	dc.SetLineWidth(1)
	if spines[Top]    { dc.DrawLine(b.x, b.y, b.x+b.w, b.y) }
	if spines[Bottom] { dc.DrawLine(b.x, b.y+b.h, b.x+b.w, b.y+b.h) }
	if spines[Left]   { dc.DrawLine(b.x, b.y, b.x, b.y+b.h) }
	if spines[Right]  { dc.DrawLine(b.x+b.w, b.y, b.x+b.w, b.y+b.h) }
	dc.Stroke()
}

// Image ticks count pixels from the top-left corner.
func drawImageTicks(dc *gg.Context, b box, dx, dy int) {
	dc.SetColor(textColor)
	dc.SetLineWidth(1)
	for _, v := range NiceTicks(0, float64(dx-1), 5) {
		px := b.x + (v+0.5) * b.w / float64(dx)
		dc.DrawLine(px, b.y+b.h, px, b.y+b.h+4)
		dc.Stroke()
		dc.DrawStringAnchored(FormatTick(v), px, b.y+b.h+6, 0.5, 1)
	}
	for _, v := range NiceTicks(0, float64(dy-1), 5) {
		py := b.y + (v+0.5) * b.h / float64(dy)
		dc.DrawLine(b.x-4, py, b.x, py)
		dc.Stroke()
		dc.DrawStringAnchored(FormatTick(v), b.x-6, py, 1, 0.5)
	}
}

// valueToPixel places a value along the bar value axis.
func (ax *Axes)valueToPixel(v float64, b box) float64 {
	lo, hi := ax.ValueLim[0], ax.ValueLim[1]
	t := 0.0
	if hi != lo {
		t = (v - lo) / (hi - lo)
	}
	if ax.BarDir == Vertical {
		return b.x + t*b.w
	}
	return b.y + (1-t)*b.h  // high values at the top, like a vertical colorbar
}

func (ax *Axes)drawBars(dc *gg.Context, b box) {
	top := ax.maxBarHeight() * 1.05
	if top <= 0 {
		return
	}

	dc.Push()
	dc.DrawRectangle(b.x, b.y, b.w, b.h)
	dc.Clip()

	for _, bar := range ax.Bars {
		lo, hi := ax.valueToPixel(bar.Lo, b), ax.valueToPixel(bar.Hi, b)
		frac := bar.Height / top
		if ax.BarDir == Vertical {
			hgt := frac * b.h
			dc.DrawRectangle(lo, b.y+b.h-hgt, hi-lo, hgt)
		} else {
			dc.DrawRectangle(b.x, hi, frac*b.w, lo-hi)
		}
		dc.SetColor(bar.Color)
		dc.Fill()
	}

	dc.ResetClip()
	dc.Pop()
}

func (ax *Axes)drawBarTicks(dc *gg.Context, b box) {
	dc.SetColor(textColor)
	for _, v := range NiceTicks(ax.ValueLim[0], ax.ValueLim[1], 4) {
		p := ax.valueToPixel(v, b)
		if ax.BarDir == Vertical {
			dc.DrawStringAnchored(FormatTick(v), p, b.y+b.h+6, 0.5, 1)
		} else {
			dc.DrawStringAnchored(FormatTick(v), b.x-6, p, 1, 0.5)
		}
	}
}

func (cb *Colorbar)draw(dc *gg.Context, b box) {
	w, h := int(math.Round(b.w)), int(math.Round(b.h))
	if w < 1 || h < 1 || cb.Layer == nil {
		return
	}

	strip := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y:=0; y<h; y++ {
		for x:=0; x<w; x++ {
			var t float64
			if cb.Orientation == Vertical {
				t = 1.0 - (float64(y)+0.5) / float64(h)
			} else {
				t = (float64(x)+0.5) / float64(w)
			}
			strip.Set(x, y, cb.Layer.Cmap.At(t))
		}
	}
	dc.DrawImage(strip, int(math.Round(b.x)), int(math.Round(b.y)))

	cb.drawExtensions(dc, b)

	if cb.Outline {
		dc.SetColor(spineColor)
		dc.SetLineWidth(1)
		dc.DrawRectangle(b.x, b.y, b.w, b.h)
		dc.Stroke()
	}

	dc.SetColor(textColor)
	labelOffset := 0.0
	for _, v := range cb.Ticks {
		t := cb.Layer.Norm(v)
		if t < -1e-9 || t > 1+1e-9 {
			continue
		}
		s := FormatTick(v)
		sw, _ := dc.MeasureString(s)
		if cb.Orientation == Vertical {
			dc.DrawStringAnchored(s, b.x+b.w+4, b.y+(1-t)*b.h, 0, 0.5)
			labelOffset = math.Max(labelOffset, sw)
		} else {
			dc.DrawStringAnchored(s, b.x+t*b.w, b.y+b.h+4, 0.5, 1)
			labelOffset = 13
		}
	}

	if cb.Label != "" {
		if cb.Orientation == Vertical {
			lx, ly := b.x+b.w+4+labelOffset+10, b.y+b.h/2
			dc.Push()
			dc.RotateAbout(gg.Radians(90), lx, ly)
			dc.DrawStringAnchored(cb.Label, lx, ly, 0.5, 0.5)
			dc.Pop()
		} else {
			dc.DrawStringAnchored(cb.Label, b.x+b.w/2, b.y+b.h+8+labelOffset, 0.5, 1)
		}
	}
}

// Pointed caps past the ends of the strip, in the end colours.
func (cb *Colorbar)drawExtensions(dc *gg.Context, b box) {
	drawCap := func(atMax bool) {
		if cb.Orientation == Vertical {
			depth := 0.05 * b.h
			if atMax {
				dc.MoveTo(b.x, b.y); dc.LineTo(b.x+b.w, b.y); dc.LineTo(b.x+b.w/2, b.y-depth)
			} else {
				dc.MoveTo(b.x, b.y+b.h); dc.LineTo(b.x+b.w, b.y+b.h); dc.LineTo(b.x+b.w/2, b.y+b.h+depth)
			}
		} else {
			depth := 0.05 * b.w
			if atMax {
				dc.MoveTo(b.x+b.w, b.y); dc.LineTo(b.x+b.w, b.y+b.h); dc.LineTo(b.x+b.w+depth, b.y+b.h/2)
			} else {
				dc.MoveTo(b.x, b.y); dc.LineTo(b.x, b.y+b.h); dc.LineTo(b.x-depth, b.y+b.h/2)
			}
		}
		dc.ClosePath()
		if atMax {
			dc.SetColor(cb.Layer.Cmap.At(1))
		} else {
			dc.SetColor(cb.Layer.Cmap.At(0))
		}
		dc.Fill()
	}

	if cb.Extend == ExtendMin || cb.Extend == ExtendBoth { drawCap(false) }
	if cb.Extend == ExtendMax || cb.Extend == ExtendBoth { drawCap(true) }
}

func (sb *ScaleBar)draw(dc *gg.Context, img box, widthPixels int) {
	lenPx, label := sb.Length(widthPixels)
	barW := lenPx * img.w / float64(widthPixels)
	barH := math.Max(2, img.h * 0.01)

	tw, th := dc.MeasureString(label)
	boxW := math.Max(barW, tw) + 8
	boxH := barH + th + 10
	bx := img.x + img.w - boxW - 6
	by := img.y + img.h - boxH - 6

	dc.SetRGBA(1, 1, 1, 0.5)
	dc.DrawRectangle(bx, by, boxW, boxH)
	dc.Fill()

	dc.SetColor(color.Black)
	dc.DrawRectangle(bx + (boxW-barW)/2, by+4, barW, barH)
	dc.Fill()
	dc.DrawStringAnchored(label, bx+boxW/2, by+4+barH+3, 0.5, 1)
}
