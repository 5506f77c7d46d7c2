package bgstrip

import (
	"context"
	"fmt"
	"image"

	"github.com/wbrown/bgstrip/imageutil"
	"gocv.io/x/gocv"
)

// GocvKeyer is a Keyer that runs the erosion and blur stages through
// OpenCV. It produces the same candidates as PipelineKeyer up to
// rounding in the blur.
type GocvKeyer struct {
	ErodeRadius int
	BlurSigma   float64
}

// NewGocvKeyer returns a GocvKeyer with the default erosion radius and
// blur.
func NewGocvKeyer() *GocvKeyer {
	return &GocvKeyer{
		ErodeRadius: DefaultErodeRadius,
		BlurSigma:   DefaultBlurSigma,
	}
}

// Key implements Keyer.
func (k *GocvKeyer) Key(ctx context.Context, src image.Image, bg imageutil.RGB, tolerance float64) (*image.NRGBA, error) {
	img := imageutil.ToNRGBA(src)
	keyed := imageutil.KeyMask(img, bg, KeyDistance(tolerance))
	if keyed.Width() == 0 || keyed.Height() == 0 {
		return image.NewNRGBA(image.Rectangle{}), nil
	}

	alpha, err := gocv.NewMatFromBytes(keyed.Height(), keyed.Width(), gocv.MatTypeCV8U, keyed.Pix)
	if err != nil {
		return nil, fmt.Errorf("could not wrap alpha plane: %w", err)
	}
	defer alpha.Close()

	if k.ErodeRadius > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		se := imageutil.DiskElement(k.ErodeRadius)
		size := 2*se.Radius + 1
		kernel, err := gocv.NewMatFromBytes(size, size, gocv.MatTypeCV8U, se.Bytes())
		if err != nil {
			return nil, fmt.Errorf("could not build erosion kernel: %w", err)
		}
		defer kernel.Close()

		eroded := gocv.NewMat()
		defer eroded.Close()
		gocv.Erode(alpha, &eroded, kernel)
		eroded.CopyTo(&alpha)
	}

	if k.BlurSigma > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		blurred := gocv.NewMat()
		defer blurred.Close()
		gocv.GaussianBlur(alpha, &blurred, image.Point{}, k.BlurSigma, k.BlurSigma, gocv.BorderReplicate)

		softened := gocv.NewMat()
		defer softened.Close()
		gocv.Min(alpha, blurred, &softened)
		softened.CopyTo(&alpha)
	}

	plane := imageutil.NewGrayImage(keyed.Width(), keyed.Height())
	copy(plane.Pix, alpha.ToBytes())

	return imageutil.Trim(imageutil.WithAlpha(img, plane)), nil
}
