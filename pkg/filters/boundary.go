package filters

import "github.com/abworrall/imgplot/pkg/errs"

// Mode says how a filter sees pixels past the edge of the grid.
type Mode string

const(
	Reflect  Mode = "reflect"  // d c b a | a b c d | d c b a
	Nearest  Mode = "nearest"  // a a a a | a b c d | d d d d
	Mirror   Mode = "mirror"   // d c b | a b c d | c b a
	Wrap     Mode = "wrap"     // a b c d | a b c d | a b c d
	Constant Mode = "constant" // k k k k | a b c d | k k k k
)

func (m Mode)valid() bool {
	switch m {
	case Reflect, Nearest, Mirror, Wrap, Constant: return true
	}
	return false
}

func ParseMode(s string) (Mode, error) {
	if m := Mode(s); m.valid() {
		return m, nil
	}
	return "", errs.Valuef("boundary mode must be one of reflect, nearest, mirror, wrap, constant; got %q", s)
}

// index maps a possibly out of range coordinate onto [0,n). It returns
// false when the pixel lies outside and the mode is Constant.
func (m Mode)index(i, n int) (int, bool) {
	if i >= 0 && i < n {
		return i, true
	}

	switch m {
	case Constant:
		return 0, false

	case Nearest:
		if i < 0 {
			return 0, true
		}
		return n-1, true

	case Wrap:
		return mod(i, n), true

	case Mirror:
		if n == 1 {
			return 0, true
		}
		period := 2*n - 2
		i = mod(i, period)
		if i >= n {
			i = period - i
		}
		return i, true

	default: // Reflect
		period := 2 * n
		i = mod(i, period)
		if i >= n {
			i = period - 1 - i
		}
		return i, true
	}
}

func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
