package imgplot

import(
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/abworrall/imgplot/pkg/emath"
	"github.com/abworrall/imgplot/pkg/errs"
	"github.com/abworrall/imgplot/pkg/filters"
)

// FilterPlot applies filt to data and draws the result with ImgPlot.
func FilterPlot(data *emath.FloatGrid, filt filters.Filter, opts Options) (*Plot, error) {
	if data == nil {
		return nil, errs.Typef("filterplot needs a grid, got nil")
	}
	if filt == nil {
		return nil, errs.Typef("filterplot needs a filter name or function, got nil")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	out, err := filt.Apply(data)
	if err != nil {
		return nil, fmt.Errorf("filter %s: %w", filt.Name(), err)
	}
	log.Debug().Str("filter", filt.Name()).Str("stats", out.Stats()).Msg("filtered")

	return ImgPlot(out, opts)
}
