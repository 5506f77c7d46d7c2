package bgstrip

import (
	"fmt"
	"image"
	"math"

	"github.com/wbrown/bgstrip/imageutil"
	"gonum.org/v1/gonum/stat"
)

// DefaultBorderWidth is the width in pixels of the strip sampled along
// each edge.
const DefaultBorderWidth = 10

// EstimateBorderColor returns the mean colour of every pixel within
// borderWidth of an edge of img. The top and bottom strips span the
// full width; the left and right strips cover only the rows between
// them so no pixel is counted twice.
//
// ErrUndeterminedColor is returned if the image is smaller than twice
// the border width in either dimension.
func EstimateBorderColor(img image.Image, borderWidth int) (imageutil.RGB, error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if borderWidth < 1 || width < 2*borderWidth || height < 2*borderWidth {
		return imageutil.RGB{}, fmt.Errorf("%w: %dx%d image with %dpx border",
			ErrUndeterminedColor, width, height, borderWidth)
	}

	n := 2*borderWidth*width + 2*borderWidth*(height-2*borderWidth)
	rs := make([]float64, 0, n)
	gs := make([]float64, 0, n)
	bs := make([]float64, 0, n)
	sample := func(x, y int) {
		c := imageutil.RGBFromColor(img.At(b.Min.X+x, b.Min.Y+y))
		rs = append(rs, float64(c.R))
		gs = append(gs, float64(c.G))
		bs = append(bs, float64(c.B))
	}

	// Top and bottom
	for x := 0; x < width; x++ {
		for y := 0; y < borderWidth; y++ {
			sample(x, y)
		}
		for y := height - borderWidth; y < height; y++ {
			sample(x, y)
		}
	}
	// Left and right, excluding corners already covered
	for y := borderWidth; y < height-borderWidth; y++ {
		for x := 0; x < borderWidth; x++ {
			sample(x, y)
		}
		for x := width - borderWidth; x < width; x++ {
			sample(x, y)
		}
	}

	return imageutil.RGB{
		R: roundChannel(stat.Mean(rs, nil)),
		G: roundChannel(stat.Mean(gs, nil)),
		B: roundChannel(stat.Mean(bs, nil)),
	}, nil
}

func roundChannel(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}
