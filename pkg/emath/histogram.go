package emath

import(
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// A Histogram of float values. Bin i spans [Edges[i], Edges[i+1]); the
// last bin also includes its upper edge.
type Histogram struct {
	Edges   []float64
	Counts  []int
	Density []float64 // Counts normalized so the bars integrate to 1.0
}

func (h Histogram)NumBins() int { return len(h.Counts) }

// Centers returns the midpoint of each bin.
func (h Histogram)Centers() []float64 {
	c := make([]float64, len(h.Counts))
	for i := range c {
		c[i] = (h.Edges[i] + h.Edges[i+1]) / 2.0
	}
	return c
}

// NormalizedCenters min-max scales the bin centers onto [0,1]. When all
// centers coincide (a single bin), everything maps to 0.
func (h Histogram)NormalizedCenters() []float64 {
	c := h.Centers()
	min, max := MinMax(c)
	for i := range c {
		if max > min {
			c[i] = (c[i] - min) / (max - min)
		} else {
			c[i] = 0
		}
	}
	return c
}

// NewHistogram bins the finite values into `bins` equal width bins
// spanning the data range. A zero-width range is widened by 0.5 each side.
// bins <= 0 means pick the count with AutoBins.
func NewHistogram(vals []float64, bins int) Histogram {
	finite := Finite(vals)
	if bins <= 0 {
		bins = AutoBins(finite)
	}

	lo, hi := MinMax(finite)
	if math.IsNaN(lo) {
		lo, hi = 0, 1
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	h := Histogram{
		Edges:   make([]float64, bins+1),
		Counts:  make([]int, bins),
		Density: make([]float64, bins),
	}
	floats.Span(h.Edges, lo, hi)
	width := (hi - lo) / float64(bins)

	for _, v := range finite {
		i := int((v - lo) / (hi - lo) * float64(bins))
		if i >= bins { i = bins-1 }
		if i < 0     { i = 0 }
		h.Counts[i]++
	}

	if len(finite) > 0 {
		for i, n := range h.Counts {
			h.Density[i] = float64(n) / (float64(len(finite)) * width)
		}
	}

	return h
}

// AutoBins picks a bin count the way numpy's "auto" estimator does: the
// smaller of the Sturges and Freedman-Diaconis bin widths, falling back to
// Sturges when the interquartile range is zero.
func AutoBins(vals []float64) int {
	finite := Finite(vals)
	if len(finite) == 0 {
		return 1
	}
	sort.Float64s(finite)

	n := float64(len(finite))
	ptp := finite[len(finite)-1] - finite[0]
	if ptp == 0 {
		return 1
	}

	sturges := ptp / (math.Log2(n) + 1.0)
	iqr := percentileSorted(finite, 75) - percentileSorted(finite, 25)
	fd := 2.0 * iqr * math.Pow(n, -1.0/3.0)

	width := sturges
	if fd > 0 && fd < sturges {
		width = fd
	}

	return int(math.Ceil(ptp / width))
}
