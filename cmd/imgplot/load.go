package main

import(
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/codec/rgbe"
	"golang.org/x/image/tiff"

	"github.com/abworrall/imgplot/pkg/emath"
	"github.com/abworrall/imgplot/pkg/sampledata"
)

// loadInput reads a sample name, a text grid, a Radiance .hdr file, or any
// image file imaging can decode.
func loadInput(name string, skipRows int) (emath.Array, error) {
	for _, sample := range sampledata.Names() {
		if name == sample {
			return sampledata.LoadImage(name)
		}
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".dat":
		return loadText(name, skipRows)
	case ".hdr":
		return loadHDR(name)
	case ".tif", ".tiff":
		return loadTIFF(name)
	}

	img, err := imaging.Open(name)
	if err != nil {
		return nil, fmt.Errorf("image loading '%s': %w", name, err)
	}
	return imageToArray(img), nil
}

func loadText(filename string, skipRows int) (emath.Array, error) {
	reader, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open+r txt '%s': %w", filename, err)
	}
	defer reader.Close()

	fg, err := sampledata.LoadText(reader, skipRows)
	if err != nil {
		return nil, fmt.Errorf("txt loading '%s': %w", filename, err)
	}
	return fg, nil
}

func loadHDR(filename string) (emath.Array, error) {
	reader, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open+r hdr '%s': %w", filename, err)
	}
	defer reader.Close()

	img, err := rgbe.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("hdr loading '%s': %w", filename, err)
	}
	hdrImg, ok := img.(hdr.Image)
	if !ok {
		return nil, fmt.Errorf("hdr loading '%s': decoded a %T, not an HDR image", filename, img)
	}
	return emath.NewRGBGridFromHDR(hdrImg), nil
}

// TIFFs may be 16 bit; x/image decodes them without losing the low byte.
func loadTIFF(filename string) (emath.Array, error) {
	reader, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open+r img '%s': %w", filename, err)
	}
	defer reader.Close()

	img, err := tiff.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("tiff loading '%s': %w", filename, err)
	}
	return imageToArray(img), nil
}

// Gray images become one channel grids in [0,1]; everything else is RGB.
func imageToArray(img image.Image) emath.Array {
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		b := img.Bounds()
		fg := emath.NewFloatGrid(b.Dx(), b.Dy())
		for y:=b.Min.Y; y<b.Max.Y; y++ {
			for x:=b.Min.X; x<b.Max.X; x++ {
				g := color.Gray16Model.Convert(img.At(x, y)).(color.Gray16)
				fg.Set(x-b.Min.X, y-b.Min.Y, float64(g.Y) / 0xFFFF)
			}
		}
		return fg
	}
	return emath.NewRGBGridFromImage(img)
}
