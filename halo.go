package bgstrip

import (
	"image"

	"github.com/wbrown/bgstrip/imageutil"
)

// DefaultHaloThreshold is the RGB distance below which an edge pixel
// is considered to still carry the background colour.
const DefaultHaloThreshold = 60.0

// HaloRatio returns the fraction of the inner boundary of the opaque
// region of img whose colour lies within threshold of bg.
//
// The inner boundary is every opaque pixel that a one step erosion
// would remove: a pixel with at least one transparent 4-neighbour.
// Pixels beyond the canvas count as opaque, so a fully opaque image
// has no boundary. The ratio is 0 when there is no boundary.
func HaloRatio(img image.Image, bg imageutil.RGB, threshold float64) float64 {
	if img == nil || img.Bounds().Empty() {
		return 0
	}
	n := imageutil.ToNRGBA(img)
	alpha := imageutil.AlphaPlane(n)
	width, height := alpha.Width(), alpha.Height()

	opaque := func(x, y int) bool {
		if x < 0 || y < 0 || x >= width || y >= height {
			return true
		}
		return alpha.GetGray(x, y) != 0
	}

	limit := threshold * threshold
	var boundary, halo int
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !opaque(x, y) {
				continue
			}
			if opaque(x-1, y) && opaque(x+1, y) && opaque(x, y-1) && opaque(x, y+1) {
				continue
			}
			boundary++
			p := n.Pix[y*n.Stride+x*4:]
			c := imageutil.RGB{R: p[0], G: p[1], B: p[2]}
			if float64(c.DistanceSq(bg)) < limit {
				halo++
			}
		}
	}

	if boundary == 0 {
		return 0
	}
	return float64(halo) / float64(boundary)
}
