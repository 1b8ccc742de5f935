// Package sampledata provides the example images used in docs and tests.
package sampledata

import(
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/abworrall/imgplot/pkg/emath"
	"github.com/abworrall/imgplot/pkg/errs"
)

// An AFM height map of a polymer film, in metres. The first line is a header.
//go:embed data/PolymerImage.txt
var polymerText []byte

const(
	PolymerScale   = 1e9 // metres to nanometres
	OutlierValue   = 80.0
)

var loaders = map[string]func() (*emath.FloatGrid, error){
	"polymer":          loadPolymer,
	"polymer outliers": loadPolymerOutliers,
}

// Names lists the sample images LoadImage knows about.
func Names() []string {
	names := []string{}
	for n := range loaders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// LoadImage returns a fresh copy of a named sample image.
func LoadImage(name string) (*emath.FloatGrid, error) {
	loader, exists := loaders[name]
	if !exists {
		return nil, errs.Valuef("no sample image named %q, wanted one of %v", name, Names())
	}
	fg, err := loader()
	if err != nil {
		return nil, fmt.Errorf("load sample %q: %w", name, err)
	}
	log.Debug().Str("name", name).Int("dx", fg.Dx()).Int("dy", fg.Dy()).Msg("loaded sample image")
	return fg, nil
}

func loadPolymer() (*emath.FloatGrid, error) {
	fg, err := LoadText(bytes.NewReader(polymerText), 1)
	if err != nil {
		return nil, err
	}
	return fg.Map(func(v float64) float64 { return v * PolymerScale }), nil
}

// The polymer image with one very bright pixel, to show off robust scaling.
func loadPolymerOutliers() (*emath.FloatGrid, error) {
	fg, err := loadPolymer()
	if err != nil {
		return nil, err
	}
	fg.Set(0, 0, OutlierValue)
	return fg, nil
}

// LoadText parses a grid of whitespace-delimited numbers, one image row per
// line. The first skipRows lines are ignored, as are blank lines. Every row
// must have the same number of columns.
func LoadText(r io.Reader, skipRows int) (*emath.FloatGrid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	values := []float64{}
	width := -1
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if lineNum <= skipRows {
			continue
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if width < 0 {
			width = len(fields)
		} else if len(fields) != width {
			return nil, errs.Valuef("line %d has %d columns, expected %d", lineNum, len(fields), width)
		}
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, errs.Valuef("line %d: could not parse %q", lineNum, f)
			}
			values = append(values, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read text grid: %w", err)
	}
	if width < 0 {
		return nil, errs.Valuef("no data rows found")
	}

	return emath.NewFloatGridFrom(width, len(values)/width, values)
}
