package imgplot

import(
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/abworrall/imgplot/pkg/emath"
	"github.com/abworrall/imgplot/pkg/errs"
	"github.com/abworrall/imgplot/pkg/filters"
)

// A Sweep varies one filter parameter (see filters.ParamNames) across the
// rows or the columns of a FilterGrid.
type Sweep struct {
	Param  string
	Values []interface{}
}

func (s Sweep)active() bool { return s.Param != "" }

func (s Sweep)check(which string) error {
	if s.Param == "" && len(s.Values) > 0 {
		return errs.Valuef("%s values given without a parameter to sweep", which)
	} else if s.Param != "" && len(s.Values) == 0 {
		return errs.Valuef("%s sweeps '%s' over no values", which, s.Param)
	}
	return nil
}

type FilterGridOptions struct {
	Row     Sweep
	Col     Sweep
	ColWrap int     // wraps a column-only sweep; 0 means a single row
	Height  float64 // of each cell in inches, 0 means 3
	Aspect  float64 // cell width over height, 0 means 1
}

// FilterGridPlot is a Grid of filtered images, with the parameters each
// cell was filtered with.
type FilterGridPlot struct {
	Grid
	Input  *emath.FloatGrid
	Params []filters.Params
}

// FilterGrid applies the named filter once per cell, with base parameters
// overridden by the row and column sweeps, and draws each result through
// ImgPlot. Each cell is titled with its swept values.
func FilterGrid(data *emath.FloatGrid, name string, base filters.Params, fo FilterGridOptions, opts Options) (*FilterGridPlot, error) {
	if data == nil {
		return nil, errs.Typef("filtergrid needs a grid, got nil")
	}
	if name == "" {
		return nil, errs.Typef("filtergrid needs a filter name")
	}
	if err := fo.Row.check("row"); err != nil {
		return nil, err
	} else if err := fo.Col.check("col"); err != nil {
		return nil, err
	}
	if fo.Row.active() && fo.Row.Param == fo.Col.Param {
		return nil, errs.Valuef("row and col both sweep '%s'", fo.Row.Param)
	}
	if fo.ColWrap < 0 {
		return nil, errs.Valuef("'col_wrap' must be positive, got %d", fo.ColWrap)
	} else if fo.ColWrap > 0 && fo.Row.active() {
		return nil, errs.Valuef("'col_wrap' cannot be used with a row sweep")
	}
	height, aspect, err := cellSize(fo.Height, fo.Aspect)
	if err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	rowVals, colVals := fo.Row.Values, fo.Col.Values
	if !fo.Row.active() { rowVals = []interface{}{nil} }
	if !fo.Col.active() { colVals = []interface{}{nil} }

	params, titles := []filters.Params{}, []string{}
	for _, rv := range rowVals {
		for _, cv := range colVals {
			p, title := base, []string{}
			for _, s := range []struct{ sweep Sweep; val interface{} }{{fo.Row, rv}, {fo.Col, cv}} {
				if !s.sweep.active() {
					continue
				}
				if p, err = p.With(s.sweep.Param, s.val); err != nil {
					return nil, err
				}
				title = append(title, fmt.Sprintf("%s: %v", s.sweep.Param, s.val))
			}
			params = append(params, p)
			titles = append(titles, strings.Join(title, ", "))
		}
	}

	rows, cols := len(rowVals), len(colVals)
	if fo.ColWrap > 0 {
		rows, cols = wrap(len(colVals), fo.ColWrap)
	}
	g, axes, err := newGrid(rows, cols, len(params), height, aspect)
	if err != nil {
		return nil, err
	}

	fg := &FilterGridPlot{Grid: *g, Input: data, Params: params}
	for i, p := range params {
		o := opts
		o.Ax = axes[i]
		plot, err := FilterPlot(data, filters.Named(name, p), o)
		if err != nil {
			return nil, err
		}
		axes[i].Title = titles[i]
		fg.Plots = append(fg.Plots, plot)
		fg.Data = append(fg.Data, plot.Layer.Data)
	}

	log.Debug().Str("filter", name).Int("rows", rows).Int("cols", cols).Msg("filter grid")
	return fg, nil
}
