package filters

import(
	"math"
	"sort"

	"github.com/abworrall/imgplot/pkg/errs"
)

// paramSetters take loosely typed values, as they come from a sweep over
// one parameter or a config file.
var paramSetters = map[string]func(p *Params, v interface{}) error{
	"size":       func(p *Params, v interface{}) (err error) { p.Size, err = intParam("size", v); return },
	"rank":       func(p *Params, v interface{}) (err error) { p.Rank, err = intParam("rank", v); return },
	"sigma":      func(p *Params, v interface{}) (err error) { p.Sigma, err = floatParam("sigma", v); return },
	"low_sigma":  func(p *Params, v interface{}) (err error) { p.LowSigma, err = floatParam("low_sigma", v); return },
	"high_sigma": func(p *Params, v interface{}) (err error) { p.HighSigma, err = floatParam("high_sigma", v); return },
	"truncate":   func(p *Params, v interface{}) (err error) { p.Truncate, err = floatParam("truncate", v); return },
	"percentile": func(p *Params, v interface{}) (err error) { p.Percentile, err = floatParam("percentile", v); return },
	"cval":       func(p *Params, v interface{}) (err error) { p.Cval, err = floatParam("cval", v); return },
	"mode":       setMode,
	"axis":       setAxis,
}

func ParamNames() []string {
	names := []string{}
	for n := range paramSetters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// With returns a copy of p with the named parameter set. Unknown names and
// out of range values are value errors; values of the wrong kind are type
// errors.
func (p Params)With(name string, v interface{}) (Params, error) {
	set, exists := paramSetters[name]
	if !exists {
		return p, errs.Valuef("no filter parameter named %q, wanted one of %v", name, ParamNames())
	}
	err := set(&p, v)
	return p, err
}

func intParam(name string, v interface{}) (int, error) {
	switch n := v.(type) {
	case int:     return n, nil
	case int64:   return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, errs.Valuef("'%s' must be a whole number, got %v", name, n)
		}
		return int(n), nil
	}
	return 0, errs.Typef("'%s' must be an integer, got %T", name, v)
}

func floatParam(name string, v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64: return n, nil
	case int:     return float64(n), nil
	case int64:   return float64(n), nil
	}
	return 0, errs.Typef("'%s' must be a number, got %T", name, v)
}

func setMode(p *Params, v interface{}) error {
	switch m := v.(type) {
	case Mode:
		if !m.valid() {
			return errs.Valuef("unknown boundary mode %q", string(m))
		}
		p.Mode = m
		return nil
	case string:
		mode, err := ParseMode(m)
		p.Mode = mode
		return err
	}
	return errs.Typef("'mode' must be a string, got %T", v)
}

func setAxis(p *Params, v interface{}) error {
	switch a := v.(type) {
	case Axis:
		p.Axis = a
	case string:
		switch a {
		case "x": p.Axis = AxisX
		case "y": p.Axis = AxisY
		default:  return errs.Valuef("'axis' must be x or y, got %q", a)
		}
	case int:
		if a != 0 && a != 1 {
			return errs.Valuef("'axis' must be 0 (x) or 1 (y), got %d", a)
		}
		p.Axis = Axis(a)
	default:
		return errs.Typef("'axis' must be x, y, 0 or 1, got %T", v)
	}
	return nil
}
