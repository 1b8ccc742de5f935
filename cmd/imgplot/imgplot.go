package main

import(
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/abworrall/imgplot/pkg/colormap"
	"github.com/abworrall/imgplot/pkg/emath"
	"github.com/abworrall/imgplot/pkg/fft"
	"github.com/abworrall/imgplot/pkg/figure"
	"github.com/abworrall/imgplot/pkg/filters"
	"github.com/abworrall/imgplot/pkg/imgplot"
	"github.com/abworrall/imgplot/pkg/sampledata"
)

var(
	fVerbosity int
	fConfig string
	fOutput string
	fMode string
	fSkipRows int

	fCmap string
	fGray bool
	fRobust bool
	fPerc string
	fVmin, fVmax float64
	fDx float64
	fUnits string
	fDimension string
	fCbar bool
	fOrientation string
	fCbarLabel string
	fShowTicks bool
	fDespine string
	fBins int
	fHeight float64
	fAspect float64

	fFilter string
	fSize int
	fSigma float64
	fPercentile float64
	fRank int
	fEdges string
	fRow string
	fCol string
	fColWrap int

	fWindow string
	fShift bool
	fLog bool
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "how verbose to get")
	flag.StringVar(&fConfig, "config", "", "YAML file of plot options; flags override it")
	flag.StringVar(&fOutput, "o", "imgplot.png", "output PNG")
	flag.StringVar(&fMode, "mode", "img", "what to draw: img, hist, filter, filtergrid, fft, rgb")
	flag.IntVar(&fSkipRows, "skiprows", 0, "header lines to skip in .txt input")

	flag.StringVar(&fCmap, "cmap", "", "colormap: "+strings.Join(colormap.Names(), ", "))
	flag.BoolVar(&fGray, "gray", false, "convert RGB input to luminance, and default to the gray colormap")
	flag.BoolVar(&fRobust, "robust", false, "colour limits from percentiles, not the extremes")
	flag.StringVar(&fPerc, "perc", "2,98", "percentiles for -robust, as lo,hi")
	flag.Float64Var(&fVmin, "vmin", 0, "lower colour limit")
	flag.Float64Var(&fVmax, "vmax", 0, "upper colour limit")
	flag.Float64Var(&fDx, "dx", 0, "pixel size, for a scale bar (needs -units)")
	flag.StringVar(&fUnits, "units", "", "units of -dx")
	flag.StringVar(&fDimension, "dimension", "", "scale bar dimension: "+strings.Join(figure.DimensionNames(), ", "))
	flag.BoolVar(&fCbar, "cbar", true, "draw a colorbar")
	flag.StringVar(&fOrientation, "orientation", "v", "colorbar orientation, v or h")
	flag.StringVar(&fCbarLabel, "cbarlabel", "", "colorbar label")
	flag.BoolVar(&fShowTicks, "showticks", false, "keep the axis ticks")
	flag.StringVar(&fDespine, "despine", "all", "comma separated sides to hide the frame on, or '' for none")
	flag.IntVar(&fBins, "bins", 0, "histogram bins for -mode=hist (0 picks automatically)")
	flag.Float64Var(&fHeight, "height", 5, "figure height for -mode=hist, inches")
	flag.Float64Var(&fAspect, "aspect", 1.75, "figure aspect for -mode=hist")

	flag.StringVar(&fFilter, "filter", "gaussian", "filter for -mode=filter: "+strings.Join(filters.Names(), ", "))
	flag.IntVar(&fSize, "size", 0, "filter window size")
	flag.Float64Var(&fSigma, "sigma", 1, "gaussian filter sigma (low sigma for diff_of_gaussians)")
	flag.Float64Var(&fPercentile, "percentile", 50, "percentile for the percentile filter")
	flag.IntVar(&fRank, "rank", 0, "rank for the rank filter")
	flag.StringVar(&fEdges, "edges", "", "filter edge handling: reflect, nearest, mirror, wrap, constant")
	flag.StringVar(&fRow, "row", "", "-mode=filtergrid row sweep, as param=v1,v2,...")
	flag.StringVar(&fCol, "col", "", "-mode=filtergrid column sweep, as param=v1,v2,...")
	flag.IntVar(&fColWrap, "colwrap", 0, "-mode=filtergrid: wrap a column sweep after this many cells")

	flag.StringVar(&fWindow, "window", "", "window for -mode=fft: "+strings.Join(fft.WindowNames(), ", "))
	flag.BoolVar(&fShift, "shift", true, "centre the zero frequency in -mode=fft")
	flag.BoolVar(&fLog, "log", true, "log scale the spectrum in -mode=fft")
}

func setupLogging() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if fVerbosity > 0 {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	log.Info().Msg("imgplot starting")
}

// options starts from the config file (or the defaults), then applies any
// flags given on the command line.
func options() (imgplot.Options, []figure.Side, error) {
	opts := imgplot.DefaultOptions()
	if fConfig != "" {
		var err error
		if opts, err = imgplot.LoadOptions(fConfig); err != nil {
			return opts, nil, err
		}
	}

	var sides []figure.Side
	var err error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "cmap":        opts.Cmap = fCmap
		case "gray":        opts.Gray = fGray
		case "robust":      opts.Robust = fRobust
		case "vmin":        opts.Vmin = &fVmin
		case "vmax":        opts.Vmax = &fVmax
		case "dx":          opts.Dx = fDx
		case "units":       opts.Units = fUnits
		case "dimension":   opts.Dimension = fDimension
		case "cbar":        opts.Cbar = fCbar
		case "orientation": opts.Orientation = fOrientation
		case "cbarlabel":   opts.CbarLabel = fCbarLabel
		case "showticks":   opts.ShowTicks = fShowTicks
		case "height":      opts.Height = fHeight
		case "aspect":      opts.Aspect = fAspect
		case "bins":
			if fBins != 0 {
				opts.Bins = &fBins
			}
		case "perc":
			if perr := parsePerc(fPerc, &opts); perr != nil {
				err = perr
			}
		case "despine":
			opts.Despine = fDespine == "all"
			if fDespine != "" && fDespine != "all" {
				sides, err = figure.ParseSides(strings.Split(fDespine, ","))
			}
		}
	})
	return opts, sides, err
}

func parsePerc(s string, opts *imgplot.Options) error {
	bits := strings.Split(s, ",")
	if len(bits) != 2 {
		return fmt.Errorf("-perc wants lo,hi, got '%s'", s)
	}
	for i, b := range bits {
		v, err := strconv.ParseFloat(strings.TrimSpace(b), 64)
		if err != nil {
			return fmt.Errorf("-perc '%s': %w", s, err)
		}
		opts.Perc[i] = v
	}
	return nil
}

func filterParams() (filters.Params, error) {
	p := filters.Params{
		Size:       fSize,
		Sigma:      fSigma,
		LowSigma:   fSigma,
		Percentile: fPercentile,
		Rank:       fRank,
	}
	if fEdges != "" {
		mode, err := filters.ParseMode(fEdges)
		if err != nil {
			return p, err
		}
		p.Mode = mode
	}
	return p, nil
}

// parseSweep reads "sigma=1,2,3". Values that parse as numbers are numbers.
func parseSweep(s string) (imgplot.Sweep, error) {
	if s == "" {
		return imgplot.Sweep{}, nil
	}
	bits := strings.SplitN(s, "=", 2)
	if len(bits) != 2 || bits[0] == "" || bits[1] == "" {
		return imgplot.Sweep{}, fmt.Errorf("sweep wants param=v1,v2,..., got '%s'", s)
	}
	sw := imgplot.Sweep{Param: bits[0]}
	for _, v := range strings.Split(bits[1], ",") {
		v = strings.TrimSpace(v)
		if i, err := strconv.Atoi(v); err == nil {
			sw.Values = append(sw.Values, i)
		} else if f, err := strconv.ParseFloat(v, 64); err == nil {
			sw.Values = append(sw.Values, f)
		} else {
			sw.Values = append(sw.Values, v)
		}
	}
	return sw, nil
}

func asGray(data emath.Array) *emath.FloatGrid {
	if fg, isGrid := data.(*emath.FloatGrid); isGrid {
		return fg
	}
	return data.(*emath.RGBGrid).ToGray()
}

// drawGrid handles the modes that draw several images on one figure.
func drawGrid(data emath.Array, opts imgplot.Options) (*imgplot.Grid, error) {
	switch fMode {
	case "rgb":
		return imgplot.RGBPlot(data, opts, imgplot.DefaultGridOptions())

	case "filtergrid":
		params, err := filterParams()
		if err != nil {
			return nil, err
		}
		fo := imgplot.FilterGridOptions{ColWrap: fColWrap}
		if fo.Row, err = parseSweep(fRow); err != nil {
			return nil, err
		}
		if fo.Col, err = parseSweep(fCol); err != nil {
			return nil, err
		}
		fg, err := imgplot.FilterGrid(asGray(data), fFilter, params, fo, opts)
		if err != nil {
			return nil, err
		}
		return &fg.Grid, nil
	}
	return nil, fmt.Errorf("no grid mode named '%s'", fMode)
}

func draw(data emath.Array, opts imgplot.Options) (*imgplot.Plot, error) {
	switch fMode {
	case "img":
		return imgplot.ImgPlot(data, opts)

	case "hist":
		hp, err := imgplot.ImgHist(data, opts)
		if err != nil {
			return nil, err
		}
		return &hp.Plot, nil

	case "filter":
		params, err := filterParams()
		if err != nil {
			return nil, err
		}
		return imgplot.FilterPlot(asGray(data), filters.Named(fFilter, params), opts)

	case "fft":
		fo := imgplot.FFTOptions{Window: fWindow, Shift: fShift, Log: fLog}
		return imgplot.FFTPlot(data, fo, opts)
	}

	return nil, fmt.Errorf("no mode named '%s'", fMode)
}

func main() {
	flag.Parse()
	setupLogging()

	if flag.NArg() != 1 {
		log.Fatal().Msgf("usage: imgplot [flags] <%s | file.txt | file.hdr | image>", strings.Join(sampledata.Names(), " | "))
	}

	data, err := loadInput(flag.Arg(0), fSkipRows)
	if err != nil {
		log.Fatal().Err(err).Msg("load")
	}

	opts, sides, err := options()
	if err != nil {
		log.Fatal().Err(err).Msg("options")
	}
	if fVerbosity > 0 {
		log.Debug().Msgf("Final configuration:-\n\n%s", opts.AsYaml())
	}

	if fMode == "rgb" || fMode == "filtergrid" {
		g, err := drawGrid(data, opts)
		if err != nil {
			log.Fatal().Err(err).Str("mode", fMode).Msg("plot")
		}
		if err := g.Figure.SavePNG(fOutput); err != nil {
			log.Fatal().Err(err).Msg("write")
		}
		log.Info().Str("file", fOutput).Int("rows", g.Rows).Int("cols", g.Cols).Msg("wrote grid")
		return
	}

	p, err := draw(data, opts)
	if err != nil {
		log.Fatal().Err(err).Str("mode", fMode).Msg("plot")
	}

	if len(sides) > 0 {
		if err := figure.Despine(p.Ax, sides...); err != nil {
			log.Fatal().Err(err).Msg("despine")
		}
	}

	if err := p.Figure.SavePNG(fOutput); err != nil {
		log.Fatal().Err(err).Msg("write")
	}
	log.Info().Str("file", fOutput).Msg("wrote plot")

	if p.Summary != nil {
		fmt.Print(p.Summary.String())
	}
}
