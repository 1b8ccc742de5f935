package imgplot

import(
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"

	"github.com/abworrall/imgplot/pkg/colormap"
	"github.com/abworrall/imgplot/pkg/errs"
)

// LoadOptions reads a YAML option file on top of the defaults. Keys are the
// yaml names of the Options fields.
func LoadOptions(filename string) (Options, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return Options{}, fmt.Errorf("read options '%s': %w", filename, err)
	}
	return newOptionsFromYaml(b)
}

func newOptionsFromYaml(b []byte) (Options, error) {
	m := map[string]interface{}{}
	if err := yaml.Unmarshal(b, &m); err != nil {
		return Options{}, fmt.Errorf("parse options yaml: %w", err)
	}
	return OptionsFromMap(m)
}

func (o Options)AsYaml() string {
	b, err := yaml.Marshal(o)
	if err != nil {
		log.Error().Err(err).Msg("can't marshal options yaml")
		return ""
	}
	return string(b)
}

// OptionsFromMap builds options from loosely typed values, as found in
// config files: a value of the wrong kind is a type error, a value out of
// range is a value error. Missing keys keep their defaults.
func OptionsFromMap(m map[string]interface{}) (Options, error) {
	o := DefaultOptions()

	keys := []string{}
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		set, exists := optionSetters[k]
		if !exists {
			return Options{}, errs.Valuef("unknown option '%s'", k)
		}
		if err := set(&o, k, m[k]); err != nil {
			return Options{}, err
		}
	}

	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}

type optionSetter func(o *Options, key string, v interface{}) error

var optionSetters = map[string]optionSetter{
	"cmap": func(o *Options, key string, v interface{}) error {
		switch c := v.(type) {
		case nil:               o.Cmap, o.Colormap = "", nil
		case string:            o.Cmap = c
		case colormap.Colormap: o.Colormap = c
		default:
			return errs.Typef("'%s' must be a colormap name or Colormap, got %T", key, v)
		}
		return nil
	},

	"gray":      boolOption(func(o *Options) *bool { return &o.Gray }),
	"robust":    boolOption(func(o *Options) *bool { return &o.Robust }),
	"describe":  boolOption(func(o *Options) *bool { return &o.Describe }),
	"cbar":      boolOption(func(o *Options) *bool { return &o.Cbar }),
	"showticks": boolOption(func(o *Options) *bool { return &o.ShowTicks }),
	"despine":   boolOption(func(o *Options) *bool { return &o.Despine }),

	"orientation": stringOption(func(o *Options) *string { return &o.Orientation }),
	"cbar_label":  stringOption(func(o *Options) *string { return &o.CbarLabel }),
	"units":       stringOption(func(o *Options) *string { return &o.Units }),
	"dimension":   stringOption(func(o *Options) *string { return &o.Dimension }),

	"dx":     floatOption(func(o *Options) *float64 { return &o.Dx }),
	"height": floatOption(func(o *Options) *float64 { return &o.Height }),
	"aspect": floatOption(func(o *Options) *float64 { return &o.Aspect }),

	"vmin": optionalFloatOption(func(o *Options) **float64 { return &o.Vmin }),
	"vmax": optionalFloatOption(func(o *Options) **float64 { return &o.Vmax }),

	"perc": func(o *Options, key string, v interface{}) error {
		vals, err := asFloatList(key, v)
		if err != nil {
			return err
		} else if len(vals) != 2 {
			return errs.Valuef("'%s' must have exactly two values, got %d", key, len(vals))
		}
		o.Perc = [2]float64{vals[0], vals[1]}
		return nil
	},

	"cbar_ticks": func(o *Options, key string, v interface{}) error {
		if v == nil {
			o.CbarTicks = nil
			return nil
		}
		vals, err := asFloatList(key, v)
		o.CbarTicks = vals
		return err
	},

	"bins": func(o *Options, key string, v interface{}) error {
		switch b := v.(type) {
		case nil:
			o.Bins = nil
		case string:
			if b != "auto" {
				return errs.Typef("'%s' must be a positive integer or \"auto\", got %q", key, b)
			}
			o.Bins = nil
		case int:
			o.Bins = &b
		case int64:
			n := int(b)
			o.Bins = &n
		default:
			return errs.Typef("'%s' must be a positive integer, got %T", key, v)
		}
		return nil
	},
}

func boolOption(field func(*Options) *bool) optionSetter {
	return func(o *Options, key string, v interface{}) error {
		b, ok := v.(bool)
		if !ok {
			return errs.Typef("'%s' must be either true or false, got %T", key, v)
		}
		*field(o) = b
		return nil
	}
}

func stringOption(field func(*Options) *string) optionSetter {
	return func(o *Options, key string, v interface{}) error {
		s, ok := v.(string)
		if !ok {
			return errs.Typef("'%s' must be a string, got %T", key, v)
		}
		*field(o) = s
		return nil
	}
}

func floatOption(field func(*Options) *float64) optionSetter {
	return func(o *Options, key string, v interface{}) error {
		f, err := asFloat(key, v)
		if err != nil {
			return err
		}
		*field(o) = f
		return nil
	}
}

// nil clears the option
func optionalFloatOption(field func(*Options) **float64) optionSetter {
	return func(o *Options, key string, v interface{}) error {
		if v == nil {
			*field(o) = nil
			return nil
		}
		f, err := asFloat(key, v)
		if err != nil {
			return err
		}
		*field(o) = &f
		return nil
	}
}

func asFloat(key string, v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64: return n, nil
	case float32: return float64(n), nil
	case int:     return float64(n), nil
	case int64:   return float64(n), nil
	case uint64:  return float64(n), nil
	}
	return 0, errs.Typef("'%s' must be a number, got %T", key, v)
}

func asFloatList(key string, v interface{}) ([]float64, error) {
	switch l := v.(type) {
	case []float64:
		return append([]float64{}, l...), nil
	case [2]float64:
		return []float64{l[0], l[1]}, nil
	case []interface{}:
		out := make([]float64, len(l))
		for i, elem := range l {
			f, err := asFloat(key, elem)
			if err != nil {
				return nil, err
			}
			out[i] = f
		}
		return out, nil
	}
	return nil, errs.Typef("'%s' must be a list of numbers, got %T", key, v)
}
