package filters

import(
	"sort"

	"github.com/abworrall/imgplot/pkg/emath"
	"github.com/abworrall/imgplot/pkg/errs"
)

// rankFilter replaces each pixel by the rank'th smallest value in the
// size x size window around it (window offsets -size/2 .. size-1-size/2).
func rankFilter(in *emath.FloatGrid, size, rank int, mode Mode, cval float64) *emath.FloatGrid {
	out := in.NewFromThis()
	w, h := in.Dx(), in.Dy()
	lo := -(size / 2)
	window := make([]float64, 0, size*size)

	for y:=0; y<h; y++ {
		for x:=0; x<w; x++ {
			window = window[:0]
			for dy:=lo; dy<lo+size; dy++ {
				yy, yok := mode.index(y+dy, h)
				for dx:=lo; dx<lo+size; dx++ {
					xx, xok := mode.index(x+dx, w)
					if yok && xok {
						window = append(window, in.Get(xx, yy))
					} else {
						window = append(window, cval)
					}
				}
			}
			sort.Float64s(window)
			out.Set(x, y, window[rank])
		}
	}
	return out
}

// rankOf checks a rank against a window of n values; negative ranks count
// from the top.
func rankOf(rank, n int) (int, error) {
	if rank < 0 {
		rank += n
	}
	if rank < 0 || rank >= n {
		return 0, errs.Valuef("rank not within filter footprint size of %d", n)
	}
	return rank, nil
}

func percentileRank(percentile float64, n int) (int, error) {
	if percentile < 0 {
		percentile += 100
	}
	if percentile < 0 || percentile > 100 {
		return 0, errs.Valuef("invalid percentile %v", percentile)
	}
	if percentile == 100 {
		return n - 1, nil
	}
	return int(float64(n) * percentile / 100.0), nil
}

func rankBy(pick func(p Params, n int) (int, error)) func(*emath.FloatGrid, Params) (*emath.FloatGrid, error) {
	return func(in *emath.FloatGrid, p Params) (*emath.FloatGrid, error) {
		size, err := p.size()
		if err != nil {
			return nil, err
		}
		rank, err := pick(p, size*size)
		if err != nil {
			return nil, err
		}
		return rankFilter(in, size, rank, p.Mode, p.Cval), nil
	}
}

var(
	minimum    = rankBy(func(p Params, n int) (int, error) { return 0, nil })
	maximum    = rankBy(func(p Params, n int) (int, error) { return n - 1, nil })
	median     = rankBy(func(p Params, n int) (int, error) { return n / 2, nil })
	percentile = rankBy(func(p Params, n int) (int, error) { return percentileRank(p.Percentile, n) })
	ranked     = rankBy(func(p Params, n int) (int, error) { return rankOf(p.Rank, n) })
)
