package imageutil

import "image"

// AlphaPlane copies the alpha channel of img into a GrayImage.
func AlphaPlane(img *image.NRGBA) *GrayImage {
	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	plane := NewGrayImage(width, height)

	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < width; x++ {
			plane.Gray.Pix[y*plane.Stride+x] = row[x*4+3]
		}
	}
	return plane
}

// WithAlpha returns a copy of img whose alpha channel is replaced by
// plane. Colour channels are left untouched, so pixels keyed to zero
// alpha still carry their original colour.
func WithAlpha(img *image.NRGBA, plane *GrayImage) *image.NRGBA {
	dst := Clone(img)
	width, height := plane.Width(), plane.Height()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dst.Pix[y*dst.Stride+x*4+3] = plane.Gray.Pix[y*plane.Stride+x]
		}
	}
	return dst
}

// KeyMask builds the alpha plane left after keying out every pixel
// whose colour lies within maxDist of key. Matching is global, not a
// flood fill, so enclosed pockets of the key colour are removed too.
// Pixels that were already fully transparent stay transparent.
func KeyMask(img *image.NRGBA, key RGB, maxDist float64) *GrayImage {
	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	mask := NewGrayImage(width, height)
	limit := maxDist * maxDist

	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < width; x++ {
			p := row[x*4 : x*4+4]
			if p[3] == 0 {
				continue
			}
			c := RGB{R: p[0], G: p[1], B: p[2]}
			if float64(c.DistanceSq(key)) <= limit {
				continue
			}
			mask.SetGrayValue(x, y, p[3])
		}
	}
	return mask
}

// MinPlane returns the pixelwise minimum of two planes of equal size.
func MinPlane(a, b *GrayImage) *GrayImage {
	dst := NewGrayImage(a.Width(), a.Height())
	for i, v := range a.Gray.Pix {
		if w := b.Gray.Pix[i]; w < v {
			v = w
		}
		dst.Gray.Pix[i] = v
	}
	return dst
}

// CountNonZero counts the pixels of a plane that are not zero.
func CountNonZero(plane *GrayImage) int {
	n := 0
	for _, v := range plane.Gray.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}
