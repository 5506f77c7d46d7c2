// Package imageutil provides the pure Go pixel operations used by the
// background keying pipeline: colour distance, alpha planes, binary
// morphology, trimming and resizing.
package imageutil

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// ToColor converts RGB to an opaque color.NRGBA.
func (rgb RGB) ToColor() color.NRGBA {
	return color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// String formats the colour the way ImageMagick accepts it on the
// command line, e.g. rgb(0,255,0).
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", rgb.R, rgb.G, rgb.B)
}

// Distance returns the Euclidean distance between two colours in RGB
// space. The maximum, between black and white, is 255*sqrt(3).
func (rgb RGB) Distance(other RGB) float64 {
	return math.Sqrt(float64(rgb.DistanceSq(other)))
}

// DistanceSq returns the squared Euclidean distance, for comparisons
// that don't need the square root.
func (rgb RGB) DistanceSq(other RGB) int {
	dr := int(rgb.R) - int(other.R)
	dg := int(rgb.G) - int(other.G)
	db := int(rgb.B) - int(other.B)
	return dr*dr + dg*dg + db*db
}

// RGBFromColor converts a color.Color to RGB, dropping alpha. The
// colour is un-premultiplied first so translucent pixels keep their
// hue.
func RGBFromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// ToNRGBA returns img as a non-premultiplied image at the origin with
// tightly packed rows. An *image.NRGBA already in that layout is
// returned as is, anything else is copied.
func ToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Bounds().Min == (image.Point{}) && n.Stride == 4*n.Bounds().Dx() {
		return n
	}
	return imaging.Clone(img)
}

// Clone creates a deep copy of an NRGBA image at the origin. Rows are
// copied by stride, so sub-images are safe to clone.
func Clone(img *image.NRGBA) *image.NRGBA {
	return imaging.Clone(img)
}

// GrayImage wraps image.Gray for single-channel planes such as alpha
// masks.
type GrayImage struct {
	*image.Gray
}

// NewGrayImage creates a new GrayImage with the specified dimensions.
func NewGrayImage(width, height int) *GrayImage {
	return &GrayImage{
		Gray: image.NewGray(image.Rect(0, 0, width, height)),
	}
}

// Width returns the image width.
func (img *GrayImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *GrayImage) Height() int {
	return img.Bounds().Dy()
}

// GetGray returns the value at (x, y).
func (img *GrayImage) GetGray(x, y int) uint8 {
	return img.Gray.Pix[y*img.Stride+x]
}

// SetGrayValue sets the value at (x, y).
func (img *GrayImage) SetGrayValue(x, y int, v uint8) {
	img.Gray.Pix[y*img.Stride+x] = v
}

// Clone creates a deep copy of the image.
func (img *GrayImage) Clone() *GrayImage {
	width, height := img.Width(), img.Height()
	clone := NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		copy(clone.Gray.Pix[y*clone.Stride:y*clone.Stride+width], img.Gray.Pix[y*img.Stride:])
	}
	return clone
}
