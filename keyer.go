package bgstrip

import (
	"context"
	"image"

	"github.com/wbrown/bgstrip/imageutil"
)

const (
	// DefaultErodeRadius is the radius of the disk used to erode the
	// alpha channel after keying.
	DefaultErodeRadius = 2

	// DefaultBlurSigma is the sigma of the Gaussian that softens the
	// eroded alpha edge.
	DefaultBlurSigma = 1.0
)

// Keyer turns a source image into one candidate: every pixel within
// tolerance of bg is made transparent, the alpha edge is eroded and
// softened, and the canvas is trimmed to the remaining opaque content.
//
// Tolerance is a percentage of the full channel range, so a pixel is
// keyed when its Euclidean RGB distance to bg is at most
// tolerance/100*255.
type Keyer interface {
	Key(ctx context.Context, src image.Image, bg imageutil.RGB, tolerance float64) (*image.NRGBA, error)
}

// KeyDistance converts a tolerance percentage into the RGB distance
// below which a pixel counts as background.
func KeyDistance(tolerance float64) float64 {
	return tolerance / 100 * 255
}

// PipelineKeyer is the pure Go Keyer.
type PipelineKeyer struct {
	ErodeRadius int
	BlurSigma   float64
}

// NewPipelineKeyer returns a PipelineKeyer with the default erosion
// radius and blur.
func NewPipelineKeyer() *PipelineKeyer {
	return &PipelineKeyer{
		ErodeRadius: DefaultErodeRadius,
		BlurSigma:   DefaultBlurSigma,
	}
}

// Key implements Keyer.
func (k *PipelineKeyer) Key(ctx context.Context, src image.Image, bg imageutil.RGB, tolerance float64) (*image.NRGBA, error) {
	img := imageutil.ToNRGBA(src)

	alpha := imageutil.KeyMask(img, bg, KeyDistance(tolerance))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if k.ErodeRadius > 0 {
		alpha = imageutil.Erode(alpha, imageutil.DiskElement(k.ErodeRadius))
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	// The blur only softens the edge inwards: keyed pixels keep zero
	// alpha so background colour never bleeds back around the subject.
	if k.BlurSigma > 0 {
		alpha = imageutil.MinPlane(alpha, imageutil.GaussianBlurGray(alpha, k.BlurSigma))
	}

	return imageutil.Trim(imageutil.WithAlpha(img, alpha)), nil
}
