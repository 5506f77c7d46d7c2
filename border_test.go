package bgstrip

import (
	"errors"
	"image"
	"testing"

	"github.com/wbrown/bgstrip/imageutil"
)

var (
	green = imageutil.RGB{R: 0, G: 255, B: 0}
	red   = imageutil.RGB{R: 255, G: 0, B: 0}
)

func TestEstimateBorderColorUniform(t *testing.T) {
	img := imageutil.CreateFramedImage(100, 80, DefaultBorderWidth, green, red)

	got, err := EstimateBorderColor(img, DefaultBorderWidth)
	if err != nil {
		t.Fatalf("EstimateBorderColor failed: %v", err)
	}
	if got != green {
		t.Errorf("Expected %s, got %s", green, got)
	}
}

func TestEstimateBorderColorIgnoresInterior(t *testing.T) {
	// The interior starts one pixel inside the sampled strip.
	img := imageutil.CreateFramedImage(60, 60, 11, green, red)
	got, err := EstimateBorderColor(img, 10)
	if err != nil {
		t.Fatalf("EstimateBorderColor failed: %v", err)
	}
	if got != green {
		t.Errorf("Interior leaked into estimate: %s", got)
	}
}

func TestEstimateBorderColorRounds(t *testing.T) {
	// 20x20 with a 10px border samples every pixel exactly once.
	img := imageutil.CreateSolidImage(20, 20, imageutil.RGB{R: 1, G: 10, B: 0})
	imageutil.FillRect(img, image.Rect(10, 0, 20, 20), imageutil.RGB{R: 2, G: 11, B: 1})

	got, err := EstimateBorderColor(img, 10)
	if err != nil {
		t.Fatalf("EstimateBorderColor failed: %v", err)
	}
	want := imageutil.RGB{R: 2, G: 11, B: 1}
	if got != want {
		t.Errorf("Expected half-way means to round up to %s, got %s", want, got)
	}
}

func TestEstimateBorderColorOffsetBounds(t *testing.T) {
	img := imageutil.CreateSolidImage(40, 40, green)
	sub := img.SubImage(image.Rect(5, 5, 35, 35))
	got, err := EstimateBorderColor(sub, 5)
	if err != nil {
		t.Fatalf("EstimateBorderColor failed: %v", err)
	}
	if got != green {
		t.Errorf("Expected %s, got %s", green, got)
	}
}

func TestEstimateBorderColorTooSmall(t *testing.T) {
	cases := []struct {
		w, h, border int
	}{
		{19, 40, 10},
		{40, 19, 10},
		{0, 0, 10},
		{40, 40, 0},
	}
	for _, tc := range cases {
		img := image.NewNRGBA(image.Rect(0, 0, tc.w, tc.h))
		_, err := EstimateBorderColor(img, tc.border)
		if !errors.Is(err, ErrUndeterminedColor) {
			t.Errorf("%dx%d border %d: expected ErrUndeterminedColor, got %v", tc.w, tc.h, tc.border, err)
		}
	}
}
