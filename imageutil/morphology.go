package imageutil

import (
	"image"

	"github.com/disintegration/imaging"
)

// StructuringElement is a binary kernel for morphological operations.
// Offsets are relative to the centre pixel.
type StructuringElement struct {
	Offsets []image.Point
	Radius  int
}

// DiskElement returns the disk of the given radius: every offset
// (dx, dy) with dx*dx+dy*dy <= radius*radius. This is ImageMagick's
// Disk:radius kernel for integer radii.
func DiskElement(radius int) *StructuringElement {
	se := &StructuringElement{Radius: radius}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				se.Offsets = append(se.Offsets, image.Point{X: dx, Y: dy})
			}
		}
	}
	return se
}

// Bytes renders the element as a (2r+1)x(2r+1) row-major byte kernel
// with 1 for members, the layout OpenCV expects.
func (se *StructuringElement) Bytes() []byte {
	size := 2*se.Radius + 1
	b := make([]byte, size*size)
	for _, o := range se.Offsets {
		b[(o.Y+se.Radius)*size+o.X+se.Radius] = 1
	}
	return b
}

// Erode applies grayscale erosion: each output pixel is the minimum of
// the input over the element. Border pixels are handled by replicating
// edge values.
func Erode(img *GrayImage, se *StructuringElement) *GrayImage {
	width, height := img.Width(), img.Height()
	dst := NewGrayImage(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(255)
			for _, o := range se.Offsets {
				sx := clampInt(x+o.X, 0, width-1)
				sy := clampInt(y+o.Y, 0, height-1)
				if s := img.Gray.Pix[sy*img.Stride+sx]; s < v {
					v = s
					if v == 0 {
						break
					}
				}
			}
			dst.Gray.Pix[y*dst.Stride+x] = v
		}
	}

	return dst
}

// GaussianBlurGray blurs a plane with a Gaussian of the given sigma.
// A non-positive sigma returns a copy.
func GaussianBlurGray(img *GrayImage, sigma float64) *GrayImage {
	if sigma <= 0 {
		return img.Clone()
	}
	blurred := imaging.Blur(img.Gray, sigma)

	width, height := img.Width(), img.Height()
	dst := NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dst.Gray.Pix[y*dst.Stride+x] = blurred.Pix[y*blurred.Stride+x*4]
		}
	}
	return dst
}

// clampInt clamps an integer to the given range.
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
