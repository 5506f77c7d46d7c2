// Package bgstrip removes a near-uniform background colour from an
// image and crops the result to its opaque content.
//
// The background colour is estimated from the image border. The image
// is then keyed at a sweep of colour tolerances, every candidate is
// scored by its opaque pixel count and the number of transparent holes
// it contains, and a selection heuristic picks the tolerance that best
// trades residual colour fringe (halo) against background leaking
// through the subject.
package bgstrip

import (
	"errors"
	"image"
	"sort"
)

var (
	// ErrUndeterminedColor is returned when the border of an image
	// cannot be sampled, usually because the image is too small.
	ErrUndeterminedColor = errors.New("could not determine background color")

	// ErrNoSelection is returned when no tolerance produced a usable
	// candidate.
	ErrNoSelection = errors.New("failed to find a good result")

	// ErrEmptyCandidate is returned when a candidate with no opaque
	// content is about to be used.
	ErrEmptyCandidate = errors.New("candidate has no opaque content")
)

// Candidate is the result of keying one image at one tolerance.
// Candidates are created once by the Generator and never modified.
type Candidate struct {
	Tolerance float64
	Width     int
	Height    int
	// Image holds the keyed and trimmed pixels.
	Image *image.NRGBA
	// Path is where the candidate was written, if diagnostics are
	// being retained. Empty otherwise.
	Path   string
	Opaque int
	Holes  int
}

// Valid reports whether the candidate has any area. Degenerate
// candidates are never selected.
func (c Candidate) Valid() bool {
	return c.Width > 0 && c.Height > 0
}

// SortCandidates returns the valid candidates ordered by ascending
// tolerance. When two candidates share a tolerance only the first is
// kept, so tolerances in the result are strictly increasing.
func SortCandidates(cands []Candidate) []Candidate {
	sorted := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		if c.Valid() {
			sorted = append(sorted, c)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Tolerance < sorted[j].Tolerance
	})

	out := sorted[:0]
	for i, c := range sorted {
		if i > 0 && c.Tolerance == out[len(out)-1].Tolerance {
			continue
		}
		out = append(out, c)
	}
	return out
}
