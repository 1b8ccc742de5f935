package emath

import(
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// A Description is a brief statistical summary of an array's values.
type Description struct {
	NObs     int
	Min      float64
	Max      float64
	Mean     float64
	Variance float64 // unbiased, n-1 denominator
	Skewness float64 // biased (population) g1 = m3 / m2^1.5
}

// Describe summarizes every value in the array, all channels flattened.
// A single NaN makes every statistic NaN, count aside.
func Describe(a Array) Description {
	vals := a.Flatten()
	d := Description{NObs: len(vals)}
	if len(vals) == 0 {
		return d
	}

	if floats.HasNaN(vals) {
		nan := math.NaN()
		d.Min, d.Max, d.Mean, d.Variance, d.Skewness = nan, nan, nan, nan, nan
		return d
	}

	d.Min, d.Max = floats.Min(vals), floats.Max(vals)
	d.Mean, d.Variance = stat.MeanVariance(vals, nil)
	d.Skewness = skewness(vals, d.Mean)

	return d
}

// skewness is NaN for constant data, where m2 is zero.
func skewness(vals []float64, mean float64) float64 {
	m2 := stat.MomentAbout(2, vals, mean, nil)
	if m2 == 0 {
		return math.NaN()
	}
	return stat.MomentAbout(3, vals, mean, nil) / math.Pow(m2, 1.5)
}

func (d Description)String() string {
	str := fmt.Sprintf("No. of Obs. : %d\n", d.NObs)
	str += fmt.Sprintf("Min. Value : %v\n", d.Min)
	str += fmt.Sprintf("Max. Value : %v\n", d.Max)
	str += fmt.Sprintf("Mean : %v\n", d.Mean)
	str += fmt.Sprintf("Variance : %v\n", d.Variance)
	str += fmt.Sprintf("Skewness : %v\n", d.Skewness)
	return str
}
