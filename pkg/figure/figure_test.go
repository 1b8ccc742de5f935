package figure

import(
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abworrall/imgplot/pkg/colormap"
	"github.com/abworrall/imgplot/pkg/emath"
)

func TestPixels(t *testing.T) {
	w, h := NewDefault().Pixels()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestGridSpec(t *testing.T) {
	f := New(8.75, 5)
	cells, err := f.GridSpec(1, 2, []float64{4, 1}, nil)
	require.NoError(t, err)
	require.Len(t, cells, 2)

	assert.InDelta(t, MarginLeft, cells[0].X, 1e-9)
	assert.InDelta(t, MarginRight, cells[1].X+cells[1].W, 1e-9)
	assert.InDelta(t, 4.0, cells[0].W/cells[1].W, 1e-9)
	assert.Greater(t, cells[1].X, cells[0].X+cells[0].W, "cells do not overlap")
	assert.Equal(t, cells[0].Y, cells[1].Y)
	assert.InDelta(t, MarginBottom-MarginTop, cells[0].H, 1e-9)

	cells, err = f.GridSpec(2, 1, nil, []float64{4, 1})
	require.NoError(t, err)
	assert.InDelta(t, MarginBottom, cells[1].Y+cells[1].H, 1e-9)
	assert.InDelta(t, 4.0, cells[0].H/cells[1].H, 1e-9)
}

func TestGridSpecErrors(t *testing.T) {
	f := NewDefault()
	_, err := f.GridSpec(0, 1, nil, nil)
	assert.Error(t, err)
	_, err = f.GridSpec(1, 2, []float64{1}, nil)
	assert.Error(t, err)
	_, err = f.GridSpec(1, 2, []float64{1, -1}, nil)
	assert.Error(t, err)
}

func ramp(w, h int) *emath.FloatGrid {
	g := emath.NewFloatGrid(w, h)
	for y:=0; y<h; y++ {
		for x:=0; x<w; x++ {
			g.Set(x, y, float64(x + y*w))
		}
	}
	return g
}

func TestImshowDefaults(t *testing.T) {
	ax := NewDefault().AddSubplot()
	l := ax.Imshow(ramp(4, 3), nil, nil, nil)
	assert.Equal(t, colormap.DefaultName, l.Cmap.Name())
	assert.Equal(t, 0.0, l.Vmin)
	assert.Equal(t, 11.0, l.Vmax)

	lo := 2.0
	l = ax.Imshow(ramp(4, 3), colormap.Registry["gray"], &lo, nil)
	assert.Equal(t, 2.0, l.Vmin)
	assert.Equal(t, 11.0, l.Vmax)
	assert.InDelta(t, 0.5, l.Norm(6.5), 1e-12)
}

func TestAppendColorbarVertical(t *testing.T) {
	f := NewDefault()
	ax := f.AddSubplot()
	orig := ax.Rect
	l := ax.Imshow(ramp(100, 50), nil, nil, nil)
	cb := AppendColorbar(ax, l, Vertical, ExtendNeither)

	require.Len(t, f.Axes, 2)
	assert.Same(t, cb, ax.Colorbar)
	assert.Same(t, cb, cb.Ax.ColorbarOwner())
	assert.True(t, cb.Ax.IsColorbar())
	assert.True(t, cb.Outline)

	// The image keeps its aspect
	assert.InDelta(t, 2.0, (ax.Rect.W*f.Width)/(ax.Rect.H*f.Height), 1e-9)

	// The strip sits to the right, as tall as the image, 1/20 as wide
	assert.Greater(t, cb.Ax.Rect.X, ax.Rect.X+ax.Rect.W)
	assert.InDelta(t, ax.Rect.H, cb.Ax.Rect.H, 1e-9)
	assert.InDelta(t, ax.Rect.H*f.Height/20, cb.Ax.Rect.W*f.Width, 1e-9)

	// Everything still fits the original rect
	assert.GreaterOrEqual(t, ax.Rect.X, orig.X-1e-9)
	assert.LessOrEqual(t, cb.Ax.Rect.X+cb.Ax.Rect.W, orig.X+orig.W+1e-9)

	assert.Equal(t, []float64{0, 2000, 4000}, cb.Ticks)
}

func TestAppendColorbarHorizontal(t *testing.T) {
	f := NewDefault()
	ax := f.AddSubplot()
	l := ax.Imshow(ramp(10, 10), nil, nil, nil)
	cb := AppendColorbar(ax, l, Horizontal, ExtendBoth)

	assert.Greater(t, cb.Ax.Rect.Y, ax.Rect.Y+ax.Rect.H)
	assert.InDelta(t, ax.Rect.W, cb.Ax.Rect.W, 1e-9)
	assert.Equal(t, ExtendBoth, cb.Extend)
}

func TestExtendFor(t *testing.T) {
	assert.Equal(t, ExtendNeither, ExtendFor(false, false))
	assert.Equal(t, ExtendMin, ExtendFor(true, false))
	assert.Equal(t, ExtendMax, ExtendFor(false, true))
	assert.Equal(t, ExtendBoth, ExtendFor(true, true))
	assert.Equal(t, "both", ExtendBoth.String())
}

func TestHistAndShareValueAxis(t *testing.T) {
	f := NewDefault()
	ax := f.AddSubplot()
	h := ax.Hist([]float64{0, 0.5, 1, 1, 2}, 2, Horizontal)
	require.Len(t, ax.Bars, 2)
	assert.Equal(t, [2]float64{0, 2}, ax.ValueLim)
	assert.Equal(t, h.Density[1], ax.Bars[1].Height)
	assert.Equal(t, Horizontal, ax.BarDir)

	img := f.AddSubplot()
	lo, hi := -1.0, 3.0
	l := img.Imshow(ramp(3, 3), nil, &lo, &hi)
	ax.ShareValueAxis(AppendColorbar(img, l, Vertical, ExtendNeither))
	assert.Equal(t, [2]float64{-1, 3}, ax.ValueLim)

	ax.ShareValueAxis(nil)
	assert.Equal(t, [2]float64{-1, 3}, ax.ValueLim)
}

func TestRasterRGBClips(t *testing.T) {
	rgb := emath.NewRGBGrid(2, 1)
	rgb.Set(0, 0, 2, -1, 0.5)
	rgb.Set(1, 0, 0, 1, 0)

	l := &ImageLayer{Data: rgb, Cmap: colormap.Default()}
	img := l.Raster()
	assert.Equal(t, uint8(255), img.NRGBAAt(0, 0).R)
	assert.Equal(t, uint8(0), img.NRGBAAt(0, 0).G)
	assert.Equal(t, uint8(128), img.NRGBAAt(0, 0).B)
	assert.Equal(t, uint8(255), img.NRGBAAt(1, 0).G)
}

func TestRender(t *testing.T) {
	f := New(2, 1.5)
	ax := f.AddSubplot()
	lo, hi := 0.0, 1.0
	l := ax.Imshow(emath.NewFloatGrid(10, 10), colormap.Registry["gray"], &lo, &hi)
	cb := AppendColorbar(ax, l, Vertical, ExtendMax)
	cb.SetLabel("nm")
	sb, err := NewScaleBar(1, "um", "si")
	require.NoError(t, err)
	ax.ScaleBar = sb

	img := f.Render()
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())

	corner := img.RGBAAt(0, 0)
	assert.Equal(t, uint8(255), corner.R, "background is white")

	// Sample just inside the top-left of the image, clear of the scale bar
	r := ax.ImageBox()
	px := img.RGBAAt(r.Min.X+r.Dx()/4, r.Min.Y+r.Dy()/4)
	assert.Less(t, px.R, uint8(16), "zeros through gray are black")
}

func TestSavePNG(t *testing.T) {
	f := New(1, 1)
	ax := f.AddSubplot()
	ax.Hist([]float64{1, 2, 2, 3, 3, 3}, 3, Vertical)

	var buf bytes.Buffer
	require.NoError(t, f.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())

	filename := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, f.SavePNG(filename))
	_, err = os.Stat(filename)
	assert.NoError(t, err)

	assert.Error(t, f.SavePNG(filepath.Join(t.TempDir(), "no", "such", "dir.png")))
}
