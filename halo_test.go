package bgstrip

import (
	"image"
	"math"
	"testing"

	"github.com/wbrown/bgstrip/imageutil"
)

func TestHaloRatioNoBoundary(t *testing.T) {
	img := imageutil.CreateSolidImage(10, 10, green)
	if got := HaloRatio(img, green, DefaultHaloThreshold); got != 0 {
		t.Errorf("Fully opaque image has no boundary, got %f", got)
	}

	empty := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	if got := HaloRatio(empty, green, DefaultHaloThreshold); got != 0 {
		t.Errorf("Fully transparent image has no boundary, got %f", got)
	}

	if got := HaloRatio(nil, green, DefaultHaloThreshold); got != 0 {
		t.Errorf("Nil image should give 0, got %f", got)
	}
}

func TestHaloRatioCleanAndDirty(t *testing.T) {
	block := image.Rect(5, 5, 15, 15)

	clean := imageutil.CreateAlphaImage(20, 20, red, block)
	if got := HaloRatio(clean, green, DefaultHaloThreshold); got != 0 {
		t.Errorf("Red edge on green background should be clean, got %f", got)
	}

	dirty := imageutil.CreateAlphaImage(20, 20, green, block)
	if got := HaloRatio(dirty, green, DefaultHaloThreshold); got != 1 {
		t.Errorf("Green edge should be all halo, got %f", got)
	}
}

func TestHaloRatioPartial(t *testing.T) {
	// The 10x10 block has a boundary ring of 36 pixels; its top row
	// of 10 carries the background colour.
	img := imageutil.CreateAlphaImage(20, 20, red, image.Rect(5, 5, 15, 15))
	imageutil.FillRect(img, image.Rect(5, 5, 15, 6), green)

	got := HaloRatio(img, green, DefaultHaloThreshold)
	if want := 10.0 / 36.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %f, got %f", want, got)
	}
}

func TestHaloRatioThresholdIsStrict(t *testing.T) {
	block := image.Rect(2, 2, 8, 8)

	// Exactly 60 away does not count
	at := imageutil.CreateAlphaImage(10, 10, imageutil.RGB{G: 195}, block)
	if got := HaloRatio(at, green, 60); got != 0 {
		t.Errorf("Distance equal to threshold should not be halo, got %f", got)
	}

	under := imageutil.CreateAlphaImage(10, 10, imageutil.RGB{G: 196}, block)
	if got := HaloRatio(under, green, 60); got != 1 {
		t.Errorf("Distance under threshold should be halo, got %f", got)
	}
}

func TestHaloRatioCanvasEdge(t *testing.T) {
	// Opaque pixels on the canvas edge are only boundary if they touch
	// a transparent pixel.
	img := imageutil.CreateSolidImage(10, 10, green)
	imageutil.FillRect(img, image.Rect(0, 0, 10, 1), red)
	clearRect(img, image.Rect(4, 4, 6, 6))

	// Boundary is the 8 pixels around the 2x2 hole, all green.
	if got := HaloRatio(img, green, DefaultHaloThreshold); got != 1 {
		t.Errorf("Expected only the hole rim to count, got %f", got)
	}
}
