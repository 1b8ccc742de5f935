package figure

import(
	"fmt"
	"math"
	"sort"

	"github.com/abworrall/imgplot/pkg/errs"
)

// Dimensions maps the short dimension names onto the unit systems a scale
// bar can be drawn in.
var Dimensions = map[string]string{
	"si":            "si-length",
	"si-reciprocal": "si-length-reciprocal",
	"imperial":      "imperial-length",
	"angle":         "angle",
	"pixel":         "pixel-length",
}

type unit struct {
	name   string
	factor float64 // size of one of these, in the system's base unit
}

// Units per system, ascending by size. Names are ASCII so the bitmap font can draw them.
var unitSystems = map[string][]unit{
	"si-length": {
		{"fm", 1e-15}, {"pm", 1e-12}, {"nm", 1e-9}, {"um", 1e-6},
		{"mm", 1e-3}, {"cm", 1e-2}, {"m", 1}, {"km", 1e3},
	},
	"si-length-reciprocal": {
		{"1/km", 1e-3}, {"1/m", 1}, {"1/cm", 1e2}, {"1/mm", 1e3},
		{"1/um", 1e6}, {"1/nm", 1e9}, {"1/pm", 1e12},
	},
	"imperial-length": {
		{"in", 1}, {"ft", 12}, {"yd", 36}, {"mi", 63360},
	},
	"angle": {
		{"''", 1.0 / 3600}, {"'", 1.0 / 60}, {"deg", 1},
	},
	"pixel-length": {
		{"px", 1}, {"kpx", 1e3}, {"Mpx", 1e6},
	},
}

// Extra spellings people type for units
var unitAliases = map[string]string{
	"µm": "um", "μm": "um", "micron": "um",
	"°": "deg", "degree": "deg", "arcmin": "'", "arcsec": "''",
	"inch": "in", "foot": "ft", "feet": "ft", "mile": "mi",
	"1/µm": "1/um", "1/μm": "1/um",
}

// Lengths a scale bar is allowed to show, before the unit prefix.
var preferredValues = []float64{1, 2, 2.5, 5, 10, 15, 20, 25, 50, 75, 100, 125, 150, 200, 250, 500, 750}

// ScaleBar annotates an image with a bar of known physical length.
type ScaleBar struct {
	Dx        float64 // size of one pixel, in Units
	Units     string
	Dimension string  // one of the keys of Dimensions; "" means "si"
	Fraction  float64 // target bar length as a fraction of the image width

	system    string
	unit      unit
}

func NewScaleBar(dx float64, units, dimension string) (*ScaleBar, error) {
	if !(dx > 0) {
		return nil, errs.Valuef("scalebar 'dx' must be positive, got %v", dx)
	}
	if units == "" {
		return nil, errs.Valuef("'units' must be specified when 'dx' (scalebar) is used")
	}
	if dimension == "" {
		dimension = "si"
	}
	system, exists := Dimensions[dimension]
	if !exists {
		return nil, errs.Valuef("unsupported dimension %q. Supported dimensions are : %v", dimension, DimensionNames())
	}

	u, err := lookupUnit(system, units)
	if err != nil {
		return nil, err
	}

	return &ScaleBar{Dx: dx, Units: units, Dimension: dimension, Fraction: 0.2, system: system, unit: u}, nil
}

func lookupUnit(system, name string) (unit, error) {
	if alias, exists := unitAliases[name]; exists {
		name = alias
	}
	for _, u := range unitSystems[system] {
		if u.name == name {
			return u, nil
		}
	}
	return unit{}, errs.Valuef("unit %q is not a %s unit", name, system)
}

func DimensionNames() []string {
	names := []string{}
	for k := range Dimensions {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Length picks a bar for an image `widthPixels` wide. It returns the bar
// length in image pixels, and the label to print under it.
func (sb *ScaleBar)Length(widthPixels int) (float64, string) {
	target := sb.Fraction * float64(widthPixels) * sb.Dx * sb.unit.factor // in base units
	units := unitSystems[sb.system]

	// The largest unit that still shows a value >= 1
	display := units[0]
	for _, u := range units {
		if u.factor <= target*(1+1e-9) {
			display = u
		}
	}
	value := target / display.factor

	nice := value
	for _, p := range preferredValues {
		if p <= value*(1+1e-9) {
			nice = p
		}
	}

	pixels := nice * display.factor / (sb.Dx * sb.unit.factor)
	return pixels, fmt.Sprintf("%s %s", FormatTick(roundSig(nice)), display.name)
}

func roundSig(v float64) float64 {
	if v == 0 {
		return 0
	}
	mag := math.Pow(10, math.Floor(math.Log10(math.Abs(v)))-3)
	return math.Round(v/mag) * mag
}
