package imageutil

import (
	"image"
	"image/color"
)

// CreateSolidImage creates a solid opaque image of one colour.
func CreateSolidImage(width, height int, c RGB) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	FillRect(img, img.Bounds(), c)
	return img
}

// FillRect paints an opaque rectangle, clipped to the image.
func FillRect(img *image.NRGBA, r image.Rectangle, c RGB) {
	r = r.Intersect(img.Bounds())
	nc := c.ToColor()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, nc)
		}
	}
}

// CreateFramedImage creates an image filled with background and an
// opaque foreground rectangle inset by margin on every side.
func CreateFramedImage(width, height, margin int, background, foreground RGB) *image.NRGBA {
	img := CreateSolidImage(width, height, background)
	FillRect(img, image.Rect(margin, margin, width-margin, height-margin), foreground)
	return img
}

// CreateCheckerboardImage creates a checkerboard pattern for edge testing.
func CreateCheckerboardImage(width, height, squareSize int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/squareSize)+(y/squareSize))%2 == 0 {
				img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{A: 255})
			}
		}
	}
	return img
}

// CreateAlphaImage creates an image whose colour is c everywhere and
// whose alpha is 255 inside opaque and 0 elsewhere.
func CreateAlphaImage(width, height int, c RGB, opaque ...image.Rectangle) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B})
		}
	}
	for _, r := range opaque {
		FillRect(img, r, c)
	}
	return img
}

// CalculateMaxDiff calculates the maximum channel difference between
// two images, alpha included. Images of different size return 256.
func CalculateMaxDiff(img1, img2 *image.NRGBA) int {
	if img1.Bounds().Size() != img2.Bounds().Size() {
		return 256
	}

	maxDiff := 0
	for i := range img1.Pix {
		d := abs(int(img1.Pix[i]) - int(img2.Pix[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
