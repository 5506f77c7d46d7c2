package bgstrip

import (
	"bytes"
	"image"
	"image/color"
	"log"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wbrown/bgstrip/imageutil"
)

func clearRect(img *image.NRGBA, r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, color.NRGBA{})
		}
	}
}

func TestMeasureOpaque(t *testing.T) {
	img := imageutil.CreateSolidImage(12, 8, red)
	m := Measure(img)
	if m.Opaque != 96 || m.Holes != 0 {
		t.Errorf("Expected 96 opaque and no holes, got %+v", m)
	}
}

func TestMeasureFullyTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 5, 5))
	m := Measure(img)
	if m.Opaque != 0 || m.Holes != 1 {
		t.Errorf("Expected one hole and nothing opaque, got %+v", m)
	}
}

func TestCountHolesSeparatePockets(t *testing.T) {
	img := imageutil.CreateSolidImage(20, 20, red)
	clearRect(img, image.Rect(2, 2, 5, 5))
	clearRect(img, image.Rect(10, 10, 14, 12))
	clearRect(img, image.Rect(15, 0, 20, 3)) // touches the edge

	if got := CountHoles(img); got != 3 {
		t.Errorf("Expected 3 holes, got %d", got)
	}
	if m := Measure(img); m.Opaque != 400-9-8-15 {
		t.Errorf("Expected %d opaque, got %d", 400-9-8-15, m.Opaque)
	}
}

func TestCountHolesFourConnected(t *testing.T) {
	img := imageutil.CreateSolidImage(10, 10, red)
	// Diagonal neighbours are separate holes
	clearRect(img, image.Rect(4, 4, 5, 5))
	clearRect(img, image.Rect(5, 5, 6, 6))
	if got := CountHoles(img); got != 2 {
		t.Errorf("Expected diagonal pixels to be 2 holes, got %d", got)
	}

	// Joining them along an edge makes one
	clearRect(img, image.Rect(5, 4, 6, 5))
	if got := CountHoles(img); got != 1 {
		t.Errorf("Expected 1 hole, got %d", got)
	}
}

func TestCountHolesIgnoresPartialAlpha(t *testing.T) {
	img := imageutil.CreateSolidImage(6, 6, red)
	img.SetNRGBA(3, 3, color.NRGBA{R: 255, A: 1})
	if got := CountHoles(img); got != 0 {
		t.Errorf("Only zero alpha counts as a hole, got %d", got)
	}
}

func TestMeasureNil(t *testing.T) {
	if m := Measure(nil); m != (Metrics{}) {
		t.Errorf("Expected zero metrics, got %+v", m)
	}
}

func TestMeasureFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "holes.png")
	img := imageutil.CreateSolidImage(10, 10, red)
	clearRect(img, image.Rect(3, 3, 6, 6))
	if err := imageutil.SavePNG(img, path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	if m := MeasureFile(path, nil); m.Holes != 1 || m.Opaque != 91 {
		t.Errorf("Expected 1 hole and 91 opaque, got %+v", m)
	}

	var buf bytes.Buffer
	m := MeasureFile(filepath.Join(dir, "missing.png"), log.New(&buf, "", 0))
	if m != (Metrics{}) {
		t.Errorf("Expected zero metrics for a missing file, got %+v", m)
	}
	if !strings.Contains(buf.String(), "Error counting holes") {
		t.Errorf("Expected the failure to be logged, got %q", buf.String())
	}
}
