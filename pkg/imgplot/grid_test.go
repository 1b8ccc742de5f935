package imgplot

import(
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abworrall/imgplot/pkg/emath"
	"github.com/abworrall/imgplot/pkg/errs"
)

func fourImages() []emath.Array {
	return Images(ramp(), ramp().Map(func(v float64) float64 { return -v }), ramp(), ramp())
}

func TestImageGridShape(t *testing.T) {
	tests := []struct {
		images     []emath.Array
		gopts      GridOptions
		rows, cols int
		w, h       float64
	}{
		{Images(ramp()),                         DefaultGridOptions(),                     1, 1, 3, 3},
		{Images(ramp()),                         GridOptions{ColWrap: 3},                  1, 1, 3, 3},
		{Images(ramp(), ramp(), ramp()),         DefaultGridOptions(),                     1, 3, 9, 3},
		{Images(ramp(), ramp(), ramp()),         GridOptions{ColWrap: 2},                  2, 2, 6, 6},
		{fourImages(),                           DefaultGridOptions(),                     2, 3, 9, 6},
		{fourImages(),                           GridOptions{Slices: []int{1, 2}},         1, 2, 6, 3},
		{fourImages(),                           GridOptions{Height: 2, Aspect: 1.5},      2, 3, 9, 4},
	}
	for i, tc := range tests {
		g, err := ImageGrid(tc.images, DefaultOptions(), tc.gopts)
		require.NoError(t, err, "case %d", i)
		assert.Equal(t, tc.rows, g.Rows, "case %d", i)
		assert.Equal(t, tc.cols, g.Cols, "case %d", i)
		assert.Equal(t, tc.w, g.Figure.Width, "case %d", i)
		assert.Equal(t, tc.h, g.Figure.Height, "case %d", i)
		assert.Len(t, g.Plots, len(g.Data), "case %d", i)
	}
}

func TestImageGridSlices(t *testing.T) {
	images := fourImages()
	g, err := ImageGrid(images, DefaultOptions(), GridOptions{Slices: []int{0, 1}})
	require.NoError(t, err)
	require.Len(t, g.Plots, 2)
	assert.Same(t, images[0], g.Plots[0].Layer.Data)
	assert.Same(t, images[1], g.Plots[1].Layer.Data)
	assert.Equal(t, -99.0, g.Plots[1].Layer.Vmin)

	// one image axes and one colorbar axes per image, each on the grid figure
	assert.Len(t, g.Figure.Axes, 4)
	for _, p := range g.Plots {
		assert.Same(t, g.Figure, p.Figure)
	}
}

func TestImageGridPerImageOptions(t *testing.T) {
	images := Images(ramp(), ramp(), ramp())

	g, err := ImageGrid(images, DefaultOptions(), GridOptions{Cmap: []string{"acton", "", "ice"}})
	require.NoError(t, err)
	assert.Equal(t, "acton", g.Plots[0].Layer.Cmap.Name())
	assert.Equal(t, "viridis", g.Plots[1].Layer.Cmap.Name())
	assert.Equal(t, "ice", g.Plots[2].Layer.Cmap.Name())

	g, err = ImageGrid(images, DefaultOptions(), GridOptions{
		Robust: []bool{true, false, true},
		Perc:   [][2]float64{{2, 98}, {1, 99}, {10, 90}},
	})
	require.NoError(t, err)
	assert.InDelta(t, 1.98, g.Plots[0].Layer.Vmin, 1e-9)
	assert.Equal(t, 0.0, g.Plots[1].Layer.Vmin)
	assert.InDelta(t, 9.9, g.Plots[2].Layer.Vmin, 1e-9)

	o := DefaultOptions()
	o.Units, o.Dimension = "m", "si"
	g, err = ImageGrid(images, o, GridOptions{Dx: []float64{1, 0, 3}, Units: []string{"", "", "nm"}})
	require.NoError(t, err)
	require.NotNil(t, g.Plots[0].Ax.ScaleBar)
	assert.Equal(t, "m", g.Plots[0].Ax.ScaleBar.Units)
	assert.Nil(t, g.Plots[1].Ax.ScaleBar)
	assert.Equal(t, "nm", g.Plots[2].Ax.ScaleBar.Units)

	g, err = ImageGrid(images, DefaultOptions(), GridOptions{
		Cbar:      []bool{true, true, false},
		CbarLabel: []string{"", "A", "B"},
	})
	require.NoError(t, err)
	assert.NotNil(t, g.Plots[0].Cax)
	assert.Equal(t, "A", g.Plots[1].Ax.Colorbar.Label)
	assert.Nil(t, g.Plots[2].Cax)
}

func TestImageGridErrors(t *testing.T) {
	_, err := ImageGrid(nil, DefaultOptions(), DefaultGridOptions())
	assert.True(t, errors.Is(err, errs.ErrType))

	_, err = ImageGrid([]emath.Array{ramp(), (*emath.FloatGrid)(nil)}, DefaultOptions(), DefaultGridOptions())
	assert.True(t, errors.Is(err, errs.ErrType))

	images := Images(ramp(), ramp(), ramp())
	for _, gopts := range []GridOptions{
		{Slices: []int{0, 3}},
		{Slices: []int{-1}},
		{ColWrap: -1},
		{Height: -2},
		{Aspect: -1},
		{Cmap: []string{"acton", "ice"}},
		{Cmap: []string{"acton", "ice", "nope"}},
		{Dx: []float64{1, 1, 1}},
		{Robust: []bool{true, true, true}, Perc: [][2]float64{{2, 98}, {98, 2}, {2, 98}}},
	} {
		_, err := ImageGrid(images, DefaultOptions(), gopts)
		assert.True(t, errors.Is(err, errs.ErrValue), "%+v", gopts)
	}
}

func TestRGBPlot(t *testing.T) {
	rgb := rgbImage()
	g, err := RGBPlot(rgb, DefaultOptions(), DefaultGridOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, g.Rows)
	assert.Equal(t, 3, g.Cols)

	for c, name := range []string{"Reds", "Greens", "Blues"} {
		p := g.Plots[c]
		assert.Equal(t, name, p.Layer.Cmap.Name())
		assert.True(t, rgb.Channel(c).Equal(p.Layer.Data.(*emath.FloatGrid)), "channel %d", c)
		assert.NotNil(t, p.Cax, "channels get colorbars")
	}

	g, err = RGBPlot(rgb, DefaultOptions(), GridOptions{Cmap: []string{"inferno", "viridis", "ice"}})
	require.NoError(t, err)
	assert.Equal(t, "ice", g.Plots[2].Layer.Cmap.Name())

	g, err = RGBPlot(rgb, DefaultOptions(), GridOptions{Slices: []int{2, 0}})
	require.NoError(t, err)
	assert.Equal(t, "Blues", g.Plots[0].Layer.Cmap.Name())
	assert.Equal(t, "Reds", g.Plots[1].Layer.Cmap.Name())
}

func TestRGBPlotErrors(t *testing.T) {
	_, err := RGBPlot(ramp(), DefaultOptions(), DefaultGridOptions())
	assert.True(t, errors.Is(err, errs.ErrValue))

	_, err = RGBPlot(nil, DefaultOptions(), DefaultGridOptions())
	assert.True(t, errors.Is(err, errs.ErrType))

	_, err = RGBPlot((*emath.RGBGrid)(nil), DefaultOptions(), DefaultGridOptions())
	assert.True(t, errors.Is(err, errs.ErrType))
}

func TestImageGridSavePNG(t *testing.T) {
	g, err := ImageGrid(fourImages(), DefaultOptions(), GridOptions{Height: 1})
	require.NoError(t, err)
	assert.NoError(t, g.Figure.SavePNG(filepath.Join(t.TempDir(), "grid.png")))
}
