package figure

import "github.com/abworrall/imgplot/pkg/errs"

type Side string

const(
	All    Side = "all"
	Top    Side = "top"
	Bottom Side = "bottom"
	Left   Side = "left"
	Right  Side = "right"
)

var allSides = []Side{Top, Bottom, Left, Right}

// Despine hides the border lines on the given sides of an axes. No sides
// means all of them.
func Despine(ax *Axes, sides ...Side) error {
	if ax == nil {
		return errs.Valuef("despine needs an axes")
	}
	if len(sides) == 0 {
		sides = []Side{All}
	}

	// Check everything before touching anything
	for _, s := range sides {
		if !validSide(s) {
			return errs.Valuef("'which' must be one of all, top, bottom, right, left; got %q", string(s))
		}
	}

	for _, s := range sides {
		if s == All {
			for _, each := range allSides {
				ax.Spines[each] = false
			}
		} else {
			ax.Spines[s] = false
		}
	}
	return nil
}

// ParseSides converts loosely typed input (a string, or a list of strings)
// into sides. Anything else is a type error; unknown names are value errors.
func ParseSides(which interface{}) ([]Side, error) {
	var names []string

	switch v := which.(type) {
	case string:
		names = []string{v}
	case Side:
		names = []string{string(v)}
	case []string:
		names = v
	case []Side:
		for _, s := range v {
			names = append(names, string(s))
		}
	case []interface{}:
		for _, elem := range v {
			s, ok := elem.(string)
			if !ok {
				return nil, errs.Typef("'which' list entries must be strings, got %T", elem)
			}
			names = append(names, s)
		}
	default:
		return nil, errs.Typef("'which' must be a string or list of strings, got %T", which)
	}

	sides := []Side{}
	for _, n := range names {
		if !validSide(Side(n)) {
			return nil, errs.Valuef("'which' must be one of all, top, bottom, right, left; got %q", n)
		}
		sides = append(sides, Side(n))
	}
	return sides, nil
}

func validSide(s Side) bool {
	switch s {
	case All, Top, Bottom, Left, Right: return true
	}
	return false
}
