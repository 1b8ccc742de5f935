package imgplot

import(
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abworrall/imgplot/pkg/errs"
)

func intPtr(i int) *int             { return &i }
func floatPtr(f float64) *float64   { return &f }

func TestDefaultOptionsValidate(t *testing.T) {
	o := DefaultOptions()
	assert.NoError(t, o.Validate())
	assert.NoError(t, o.validateHist())
	assert.Equal(t, [2]float64{2, 98}, o.Perc)
	assert.True(t, o.Describe)
	assert.True(t, o.Cbar)
	assert.True(t, o.Despine)
	assert.False(t, o.ShowTicks)
	assert.Nil(t, o.Bins)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(o *Options)
		err    error
	}{
		{"ordered perc",          func(o *Options) { o.Robust, o.Perc = true, [2]float64{1, 99} },   nil},
		{"unordered perc",        func(o *Options) { o.Robust, o.Perc = true, [2]float64{98, 2} },   errs.ErrValue},
		{"equal perc",            func(o *Options) { o.Robust, o.Perc = true, [2]float64{50, 50} },  errs.ErrValue},
		{"perc out of range",     func(o *Options) { o.Robust, o.Perc = true, [2]float64{-1, 101} }, errs.ErrValue},
		{"perc unused",           func(o *Options) { o.Robust, o.Perc = false, [2]float64{98, 2} },  nil},
		{"v",                     func(o *Options) { o.Orientation = "v" },                          nil},
		{"vertical",              func(o *Options) { o.Orientation = "vertical" },                   nil},
		{"h",                     func(o *Options) { o.Orientation = "h" },                          nil},
		{"horizontal",            func(o *Options) { o.Orientation = "horizontal" },                 nil},
		{"bad orientation",       func(o *Options) { o.Orientation = "up" },                         errs.ErrValue},
		{"bins 150",              func(o *Options) { o.Bins = intPtr(150) },                         nil},
		{"bins 0",                func(o *Options) { o.Bins = intPtr(0) },                           errs.ErrValue},
		{"bins -5",               func(o *Options) { o.Bins = intPtr(-5) },                          errs.ErrValue},
		{"dx without units",      func(o *Options) { o.Dx = 15 },                                    errs.ErrValue},
		{"dx with units",         func(o *Options) { o.Dx, o.Units = 15, "nm" },                     nil},
		{"negative dx",           func(o *Options) { o.Dx, o.Units = -1, "nm" },                     errs.ErrValue},
		{"bad dimension",         func(o *Options) { o.Dx, o.Units, o.Dimension = 1, "nm", "time" }, errs.ErrValue},
		{"bad cmap",              func(o *Options) { o.Cmap = "not-a-cmap" },                        errs.ErrValue},
		{"qualitative cmap",      func(o *Options) { o.Cmap = "deep" },                              nil},
		{"vmin above vmax",       func(o *Options) { o.Vmin, o.Vmax = floatPtr(2), floatPtr(1) },    errs.ErrValue},
	}

	for _, tc := range tests {
		o := DefaultOptions()
		tc.modify(&o)
		err := o.Validate()
		if tc.err == nil {
			assert.NoError(t, err, tc.name)
		} else {
			assert.True(t, errors.Is(err, tc.err), "%s: %v", tc.name, err)
		}
	}
}

func TestValidateHist(t *testing.T) {
	o := DefaultOptions()
	o.Height = 1
	assert.True(t, errors.Is(o.validateHist(), errs.ErrValue))

	o = DefaultOptions()
	o.Aspect = 0
	assert.True(t, errors.Is(o.validateHist(), errs.ErrValue))
}
