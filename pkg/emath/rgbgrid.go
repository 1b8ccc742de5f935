package emath

import(
	"fmt"
	"image"

	"github.com/mdouchement/hdr"
)

// Luminance weights for RGB -> gray, as used by scikit-image's rgb2gray
// (ITU-R BT.709 primaries).
const(
	LumR = 0.2125
	LumG = 0.7154
	LumB = 0.0721
)

// An RGBGrid is a three channel grid of floats, nominally in [0,1]. Values
// are stored row major with the channels interleaved.
type RGBGrid struct {
	stride int
	values []float64
}

func NewRGBGrid(w, h int) *RGBGrid {
	return &RGBGrid{
		stride: w,
		values: make([]float64, 3*w*h),
	}
}

func (rg *RGBGrid)Dx() int       { return rg.stride }
func (rg *RGBGrid)Dy() int       { if rg.stride == 0 { return 0 }; return len(rg.values) / (3*rg.stride) }
func (rg *RGBGrid)Channels() int { return 3 }

func (rg *RGBGrid)Set(x, y int, r, g, b float64) {
	i := 3*(rg.stride*y + x)
	rg.values[i], rg.values[i+1], rg.values[i+2] = r, g, b
}

func (rg *RGBGrid)Get(x, y int) (float64, float64, float64) {
	i := 3*(rg.stride*y + x)
	return rg.values[i], rg.values[i+1], rg.values[i+2]
}

func (rg *RGBGrid)Flatten() []float64 {
	out := make([]float64, len(rg.values))
	copy(out, rg.values)
	return out
}

// ToGray returns a single channel copy, weighting the channels by luminance.
func (rg *RGBGrid)ToGray() *FloatGrid {
	fg := NewFloatGrid(rg.Dx(), rg.Dy())
	for y:=0; y<rg.Dy(); y++ {
		for x:=0; x<rg.Dx(); x++ {
			r, g, b := rg.Get(x, y)
			fg.Set(x, y, LumR*r + LumG*g + LumB*b)
		}
	}
	return fg
}

// Channel copies out one of the three channels (0 red, 1 green, 2 blue).
func (rg *RGBGrid)Channel(c int) *FloatGrid {
	fg := NewFloatGrid(rg.Dx(), rg.Dy())
	for i := range fg.values {
		fg.values[i] = rg.values[3*i + c]
	}
	return fg
}

// Split is the three channels as separate grids, red first.
func (rg *RGBGrid)Split() []*FloatGrid {
	return []*FloatGrid{rg.Channel(0), rg.Channel(1), rg.Channel(2)}
}

func (rg *RGBGrid)String() string {
	return fmt.Sprintf("rgb[%dx%d]", rg.Dx(), rg.Dy())
}

// NewRGBGridFromImage maps each channel from [0, 0xFFFF] to [0.0, 1.0].
func NewRGBGridFromImage(img image.Image) *RGBGrid {
	b := img.Bounds()
	rg := NewRGBGrid(b.Dx(), b.Dy())
	for y:=0; y<b.Dy(); y++ {
		for x:=0; x<b.Dx(); x++ {
			r, g, bl, _ := img.At(x + b.Min.X, y + b.Min.Y).RGBA()
			rg.Set(x, y, float64(r) / float64(0xFFFF), float64(g) / float64(0xFFFF), float64(bl) / float64(0xFFFF))
		}
	}
	return rg
}

// NewRGBGridFromHDR keeps the raw HDR channel values, which may exceed 1.0.
func NewRGBGridFromHDR(img hdr.Image) *RGBGrid {
	b := img.Bounds()
	rg := NewRGBGrid(b.Dx(), b.Dy())
	for y:=0; y<b.Dy(); y++ {
		for x:=0; x<b.Dx(); x++ {
			r, g, bl, _ := img.HDRAt(x + b.Min.X, y + b.Min.Y).HDRRGBA()
			rg.Set(x, y, r, g, bl)
		}
	}
	return rg
}
