package figure

import(
	"math"
	"strconv"
)

var niceSteps = []float64{1, 2, 2.5, 5, 10}

// NiceTicks returns round-numbered ticks inside [lo,hi]: the finest step
// that leaves at most maxIntervals+1 ticks, and at least two.
func NiceTicks(lo, hi float64, maxIntervals int) []float64 {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi || maxIntervals < 1 {
		return []float64{lo}
	}

	raw := (hi - lo) / float64(maxIntervals)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))

	var fallback []float64
	for _, m := range []float64{mag / 10, mag, mag * 10} {
		for _, s := range niceSteps {
			ticks := ticksAt(lo, hi, s*m)
			if fallback == nil && s*m >= raw*(1-1e-9) {
				fallback = ticks
			}
			if len(ticks) >= 2 && len(ticks) <= maxIntervals+1 {
				return ticks
			}
		}
	}
	return fallback
}

func ticksAt(lo, hi, step float64) []float64 {
	ticks := []float64{}
	for v := math.Ceil(lo/step - 1e-9) * step; v <= hi + step*1e-9; v += step {
		// Snap away accumulated float error, so labels print cleanly
		ticks = append(ticks, math.Round(v/step) * step)
	}
	return ticks
}

// FormatTick prints a tick value compactly.
func FormatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}
