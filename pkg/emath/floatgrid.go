package emath

import(
	"fmt"
	"math"
	"sort"
)

// An Array is image data: either a single channel grid of floats, or an
// RGB grid with three channels per pixel.
type Array interface {
	Dx() int
	Dy() int
	Channels() int
	Flatten() []float64 // row major, channels interleaved; always a fresh copy
}

// A FloatGrid is a grid of floats, with some operations. Values are
// stored row major, so (x,y) lives at values[y*stride + x].
type FloatGrid struct {
	stride int
	values []float64
}

func NewFloatGrid(w, h int) *FloatGrid {
	return &FloatGrid{
		stride: w,
		values: make([]float64, w*h),
	}
}

// NewFloatGridFrom wraps the row-major values; they are not copied.
func NewFloatGridFrom(w, h int, values []float64) (*FloatGrid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", w, h)
	} else if len(values) != w*h {
		return nil, fmt.Errorf("grid %dx%d needs %d values, got %d", w, h, w*h, len(values))
	}
	return &FloatGrid{stride: w, values: values}, nil
}

func (g1 *FloatGrid)NewFromThis() *FloatGrid { return NewFloatGrid(g1.Dx(), g1.Dy()) }
func (fg *FloatGrid)Set(x, y int, v float64) { fg.values[fg.stride*y + x] = v }
func (fg *FloatGrid)Get(x, y int) float64    { return fg.values[fg.stride*y + x] }
func (fg *FloatGrid)Dx() int                 { return fg.stride }
func (fg *FloatGrid)Dy() int                 { if fg.stride == 0 { return 0 }; return len(fg.values) / fg.stride }
func (fg *FloatGrid)Channels() int           { return 1 }
func (fg *FloatGrid)Len() int                { return len(fg.values) }

func (fg *FloatGrid)Flatten() []float64 {
	out := make([]float64, len(fg.values))
	copy(out, fg.values)
	return out
}

func (g1 *FloatGrid)Copy() *FloatGrid {
	g2 := FloatGrid{stride: g1.stride, values:make([]float64, len(g1.values))}
	copy(g2.values, g1.values)
	return &g2
}

// Equal is exact, except that NaN matches NaN.
func (g1 *FloatGrid)Equal(g2 *FloatGrid) bool {
	if g1.Dx() != g2.Dx() || g1.Dy() != g2.Dy() {
		return false
	}
	for i:=0; i<len(g1.values); i++ {
		a, b := g1.values[i], g2.values[i]
		if a != b && !(math.IsNaN(a) && math.IsNaN(b)) {
			return false
		}
	}
	return true
}

// Map returns a new grid with f applied to every value.
func (g1 *FloatGrid)Map(f func(float64) float64) *FloatGrid {
	g2 := g1.NewFromThis()
	for i, v := range g1.values {
		g2.values[i] = f(v)
	}
	return g2
}

// MinMax ignores NaNs. An all-NaN grid yields NaN, NaN.
func (fg *FloatGrid)MinMax() (float64, float64) {
	return MinMax(fg.values)
}

// Percentile is the NaN-ignoring percentile, p in [0,100], using linear
// interpolation between the closest ranks (numpy's default method).
func (fg *FloatGrid)Percentile(p float64) float64 {
	return Percentile(fg.values, p)
}

func (fg *FloatGrid)Stats() string {
	min, max := fg.MinMax()
	return fmt.Sprintf("fg[%dx%d, vals{%f,%f}]", fg.Dx(), fg.Dy(), min, max)
}

// Finite returns a copy of vals without NaNs or infinities.
func Finite(vals []float64) []float64 {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}

func MinMax(vals []float64) (float64, float64) {
	min, max := math.NaN(), math.NaN()
	for _, v := range vals {
		if math.IsNaN(v) { continue }
		if math.IsNaN(min) || v < min { min = v }
		if math.IsNaN(max) || v > max { max = v }
	}
	return min, max
}

// FiniteRange is MinMax that also skips infinities, the way image limits
// are picked.
func FiniteRange(vals []float64) (float64, float64) {
	return MinMax(Finite(vals))
}

func Percentile(vals []float64, p float64) float64 {
	sorted := Finite(vals)
	if len(sorted) == 0 {
		return math.NaN()
	}
	sort.Float64s(sorted)
	return percentileSorted(sorted, p)
}

func percentileSorted(sorted []float64, p float64) float64 {
	if p <= 0   { return sorted[0] }
	if p >= 100 { return sorted[len(sorted)-1] }

	pos := p / 100.0 * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	return sorted[lo] + (sorted[hi] - sorted[lo]) * (pos - float64(lo))
}
