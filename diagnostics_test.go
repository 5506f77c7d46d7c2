package bgstrip

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestCandidateName(t *testing.T) {
	if got := CandidateName(15, "photo"); got != "fuzz_15_photo.png" {
		t.Errorf("Unexpected name %q", got)
	}
	if got := CandidateName(12.5, "photo"); got != "fuzz_12.5_photo.png" {
		t.Errorf("Unexpected name %q", got)
	}
}

func TestRemoverDiagnostics(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "keep")
	r := NewRemover(WithDiagnostics(dir), WithTolerances(10, 20, 30))

	res, err := r.RemoveBackground(context.Background(), createPocketImage(), "subject")
	if err != nil {
		t.Fatalf("RemoveBackground failed: %v", err)
	}

	for _, c := range res.Candidates {
		want := filepath.Join(dir, CandidateName(c.Tolerance, "subject"))
		if c.Path != want {
			t.Errorf("Fuzz %g%%: expected path %s, got %q", c.Tolerance, want, c.Path)
		}
		if m := MeasureFile(c.Path, nil); m.Holes != c.Holes {
			t.Errorf("Fuzz %g%%: saved file has %d holes, candidate %d", c.Tolerance, m.Holes, c.Holes)
		}
	}
	for _, name := range []string{"subject_sweep.png", "subject_sheet.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Expected %s: %v", name, err)
		}
	}
}

func TestSweepChart(t *testing.T) {
	cands := sweep(10, 3, 15, 3, 20, 1)

	var buf bytes.Buffer
	if err := SweepChart(cands, cands[2], "subject", &buf); err != nil {
		t.Fatalf("SweepChart failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Chart is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != chartWidth || b.Dy() != chartHeight {
		t.Errorf("Unexpected chart size %v", b)
	}

	if err := SweepChart(cands[:1], cands[0], "short", &buf); !errors.Is(err, errShortSweep) {
		t.Errorf("Expected errShortSweep, got %v", err)
	}
}

func TestContactSheet(t *testing.T) {
	r := NewRemover(WithTolerances(10, 30))
	res, err := r.RemoveBackground(context.Background(), createPocketImage(), "subject")
	if err != nil {
		t.Fatalf("RemoveBackground failed: %v", err)
	}

	sheet, err := ContactSheet(res.Candidates, res.Selected)
	if err != nil {
		t.Fatalf("ContactSheet failed: %v", err)
	}
	wantW := 2*(sheetCell+sheetPad) + sheetPad
	wantH := sheetCell + sheetLabel + 2*sheetPad
	if b := sheet.Bounds(); b.Dx() != wantW || b.Dy() != wantH {
		t.Errorf("Expected %dx%d, got %v", wantW, wantH, b)
	}
	// The centre of the first thumbnail shows the red subject
	c := sheet.NRGBAAt(sheetPad+sheetCell/2-10, sheetPad+sheetCell/2+20)
	if c.R < 200 || c.G > 50 {
		t.Errorf("Expected the subject in the first cell, got %v", c)
	}

	if _, err := ContactSheet(nil, Candidate{}); !errors.Is(err, ErrNoSelection) {
		t.Errorf("Expected ErrNoSelection for an empty sheet, got %v", err)
	}
}
