package bgstrip

import (
	"image"
	"log"

	"github.com/wbrown/bgstrip/imageutil"
)

// Connectivity is the pixel connectivity used when labelling holes.
// It is fixed so that hole counts are comparable across a sweep.
const Connectivity = 4

// Metrics are the structural measurements taken from a candidate.
type Metrics struct {
	// Opaque is the number of pixels with non-zero alpha.
	Opaque int
	// Holes is the number of connected regions of fully transparent
	// pixels, including any background left inside the trimmed canvas.
	Holes int
}

// Measure computes the metrics of img.
func Measure(img image.Image) Metrics {
	if img == nil {
		return Metrics{}
	}
	alpha := imageutil.AlphaPlane(imageutil.ToNRGBA(img))
	return Metrics{
		Opaque: imageutil.CountNonZero(alpha),
		Holes:  countComponents(transparencyMask(alpha), alpha.Width(), alpha.Height()),
	}
}

// MeasureFile decodes the image at path and measures it. A decode
// failure is logged and yields zero metrics.
func MeasureFile(path string, logger *log.Logger) Metrics {
	img, err := imageutil.LoadNRGBA(path)
	if err != nil {
		if logger != nil {
			logger.Printf("    Error counting holes in %s: %v", path, err)
		}
		return Metrics{}
	}
	return Measure(img)
}

// CountHoles returns the number of 4-connected regions of pixels whose
// alpha is exactly zero.
func CountHoles(img image.Image) int {
	return Measure(img).Holes
}

// transparencyMask flags every pixel of the alpha plane that is zero.
func transparencyMask(alpha *imageutil.GrayImage) []bool {
	width, height := alpha.Width(), alpha.Height()
	mask := make([]bool, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			mask[y*width+x] = alpha.GetGray(x, y) == 0
		}
	}
	return mask
}

// countComponents labels the true pixels of mask by flood fill and
// returns the number of 4-connected components.
func countComponents(mask []bool, width, height int) int {
	seen := make([]bool, len(mask))
	var stack []int
	count := 0
	visit := func(j int) {
		if mask[j] && !seen[j] {
			seen[j] = true
			stack = append(stack, j)
		}
	}

	for start, set := range mask {
		if !set || seen[start] {
			continue
		}
		count++
		seen[start] = true
		stack = append(stack[:0], start)

		for len(stack) > 0 {
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			x, y := i%width, i/width

			if x > 0 {
				visit(i - 1)
			}
			if x < width-1 {
				visit(i + 1)
			}
			if y > 0 {
				visit(i - width)
			}
			if y < height-1 {
				visit(i + width)
			}
		}
	}
	return count
}
