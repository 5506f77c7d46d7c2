package bgstrip

import (
	"context"
	"fmt"
	"image"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/wbrown/bgstrip/imageutil"
)

// Remover holds the configuration for background removal. A Remover
// keeps no per-image state, so one value can process any number of
// images in sequence.
type Remover struct {
	Tolerances    []float64
	BorderWidth   int
	HaloThreshold float64
	Suffix        string
	Timeout       time.Duration
	Thresholds    Thresholds
	Keyer         Keyer
	// DiagnosticsDir, if set, receives every candidate, the sweep chart
	// and a contact sheet for each processed image.
	DiagnosticsDir string

	logger *log.Logger
}

// Option is a functional option for configuring a Remover.
type Option func(*Remover)

// NewRemover creates a Remover with the given options.
// Default values: Tolerances=10..50 step 5, BorderWidth=10,
// HaloThreshold=60, Suffix="-nobg", Timeout=30s, the pure Go keyer and
// DefaultThresholds. Log output is discarded unless WithLogger is given.
func NewRemover(opts ...Option) *Remover {
	r := &Remover{
		Tolerances:    append([]float64(nil), DefaultTolerances...),
		BorderWidth:   DefaultBorderWidth,
		HaloThreshold: DefaultHaloThreshold,
		Suffix:        DefaultSuffix,
		Timeout:       DefaultTimeout,
		Thresholds:    DefaultThresholds(),
		Keyer:         NewPipelineKeyer(),
		logger:        log.New(io.Discard, "", 0),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// WithTolerances sets the tolerance sweep, in percent.
func WithTolerances(tols ...float64) Option {
	return func(r *Remover) {
		r.Tolerances = append([]float64(nil), tols...)
	}
}

// WithBorderWidth sets the width of the border sampled for the
// background colour.
func WithBorderWidth(width int) Option {
	return func(r *Remover) {
		r.BorderWidth = width
	}
}

// WithKeyer sets the keying implementation.
func WithKeyer(k Keyer) Option {
	return func(r *Remover) {
		r.Keyer = k
	}
}

// WithThresholds sets the selection cut-offs.
func WithThresholds(t Thresholds) Option {
	return func(r *Remover) {
		r.Thresholds = t
	}
}

// WithHaloThreshold sets the colour distance under which an edge pixel
// counts as halo.
func WithHaloThreshold(threshold float64) Option {
	return func(r *Remover) {
		r.HaloThreshold = threshold
	}
}

// WithSuffix sets the suffix added to the output file stem.
func WithSuffix(suffix string) Option {
	return func(r *Remover) {
		r.Suffix = suffix
	}
}

// WithTimeout sets the time limit for a single candidate (0 = none).
func WithTimeout(d time.Duration) Option {
	return func(r *Remover) {
		r.Timeout = d
	}
}

// WithLogger sets the logger that receives progress lines.
func WithLogger(l *log.Logger) Option {
	return func(r *Remover) {
		if l == nil {
			l = log.New(io.Discard, "", 0)
		}
		r.logger = l
	}
}

// WithDiagnostics retains candidates and sweep artifacts under dir.
func WithDiagnostics(dir string) Option {
	return func(r *Remover) {
		r.DiagnosticsDir = dir
	}
}

// Result describes the outcome for one image.
type Result struct {
	Background imageutil.RGB
	// Candidates are the valid candidates in ascending tolerance.
	Candidates []Candidate
	Selected   Candidate
	Events     []Event
	// Output is the path the selection was written to. It is empty for
	// results from RemoveBackground.
	Output string
}

// RemoveBackground estimates the background of img, sweeps the
// configured tolerances and selects one candidate. Nothing is written
// to disk except diagnostics, which are named after name.
func (r *Remover) RemoveBackground(ctx context.Context, img image.Image, name string) (*Result, error) {
	bg, err := EstimateBorderColor(img, r.BorderWidth)
	if err != nil {
		return nil, err
	}
	r.logger.Printf("  Background color: %s", bg)

	gen := &Generator{
		Keyer:      r.Keyer,
		Tolerances: r.Tolerances,
		Timeout:    r.Timeout,
		Logger:     r.logger,
	}
	cands, err := gen.Generate(ctx, img, bg)
	if err != nil {
		return nil, fmt.Errorf("generating candidates: %w", err)
	}
	cands = SortCandidates(cands)

	res := &Result{Background: bg}
	if r.DiagnosticsDir != "" {
		cands = r.saveCandidates(cands, name)
	}
	res.Candidates = cands

	halo := func(c Candidate) float64 {
		if c.Image == nil {
			return 0
		}
		return HaloRatio(c.Image, bg, r.HaloThreshold)
	}
	selected, events, ok := NewSelector(r.Thresholds).Select(cands, halo)
	res.Events = events
	for _, ev := range events {
		r.logger.Printf("  %s", ev)
	}
	if !ok {
		return res, ErrNoSelection
	}
	res.Selected = selected

	if r.DiagnosticsDir != "" {
		r.saveSweep(res, name)
	}
	return res, nil
}

// Process removes the background of the image at path and writes the
// selection next to it as <stem><Suffix>.png. Errors are prefixed with
// path.
func (r *Remover) Process(ctx context.Context, path string) (*Result, error) {
	r.logger.Printf("Processing %s", path)

	img, err := imageutil.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrUndeterminedColor, err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	res, err := r.RemoveBackground(ctx, img, stem)
	if err != nil {
		return res, fmt.Errorf("%s: %w", path, err)
	}

	out := OutputPath(path, r.Suffix)
	if err := WriteCandidate(res.Selected, out); err != nil {
		return res, fmt.Errorf("%s: %w", path, err)
	}
	res.Output = out
	r.logger.Printf("  Saved: %s", out)
	return res, nil
}
