package bgstrip

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/wbrown/bgstrip/imageutil"
)

// CandidateName returns the diagnostics file name of the candidate
// for stem at tolerance tol.
func CandidateName(tol float64, stem string) string {
	return "fuzz_" + strconv.FormatFloat(tol, 'g', -1, 64) + "_" + stem + ".png"
}

// saveCandidates writes every candidate to the diagnostics directory
// and records where it went. Write failures are logged; the candidate
// stays in the set without a Path.
func (r *Remover) saveCandidates(cands []Candidate, stem string) []Candidate {
	if err := os.MkdirAll(r.DiagnosticsDir, 0o755); err != nil {
		r.logger.Printf("  Cannot create %s: %v", r.DiagnosticsDir, err)
		return cands
	}
	out := make([]Candidate, len(cands))
	for i, c := range cands {
		path := filepath.Join(r.DiagnosticsDir, CandidateName(c.Tolerance, stem))
		if err := WriteCandidate(c, path); err != nil {
			r.logger.Printf("  %v", err)
		} else {
			c.Path = path
		}
		out[i] = c
	}
	return out
}

// saveSweep writes the sweep chart and contact sheet for one image.
// Failures are logged and never affect the selection.
func (r *Remover) saveSweep(res *Result, stem string) {
	if err := r.writeChart(res, stem); err != nil {
		r.logger.Printf("  Sweep chart: %v", err)
	}
	sheet, err := ContactSheet(res.Candidates, res.Selected)
	if err != nil {
		r.logger.Printf("  Contact sheet: %v", err)
		return
	}
	path := filepath.Join(r.DiagnosticsDir, stem+"_sheet.png")
	if err := imageutil.SavePNG(sheet, path); err != nil {
		r.logger.Printf("  Contact sheet: %v", err)
	}
}

func (r *Remover) writeChart(res *Result, stem string) error {
	path := filepath.Join(r.DiagnosticsDir, stem+"_sweep.png")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := SweepChart(res.Candidates, res.Selected, stem, f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
