package bgstrip

import (
	"context"
	"image"
	"io"
	"log"
	"time"

	"github.com/wbrown/bgstrip/imageutil"
)

// DefaultTolerances is the default sweep, in percent.
var DefaultTolerances = []float64{10, 15, 20, 25, 30, 35, 40, 45, 50}

// DefaultTimeout bounds a single keyer invocation.
const DefaultTimeout = 30 * time.Second

// Generator produces and measures one candidate per tolerance.
type Generator struct {
	Keyer      Keyer
	Tolerances []float64
	// Timeout bounds each keyer call. Zero means no limit beyond the
	// caller's context.
	Timeout time.Duration
	Logger  *log.Logger
}

// Generate keys src at every tolerance in order. A tolerance whose
// keyer call fails or times out is logged and left out; the sweep
// carries on with the rest. Generate only returns an error if ctx
// itself is done, along with the candidates produced so far.
func (g *Generator) Generate(ctx context.Context, src image.Image, bg imageutil.RGB) ([]Candidate, error) {
	logger := g.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	cands := make([]Candidate, 0, len(g.Tolerances))
	for _, tol := range g.Tolerances {
		if err := ctx.Err(); err != nil {
			return cands, err
		}

		img, err := g.key(ctx, src, bg, tol)
		if err == nil && img == nil {
			err = ErrEmptyCandidate
		}
		if err != nil {
			if ctx.Err() != nil {
				return cands, ctx.Err()
			}
			logger.Printf("    Fuzz %g%% failed: %v", tol, err)
			continue
		}

		m := Measure(img)
		c := Candidate{
			Tolerance: tol,
			Width:     img.Bounds().Dx(),
			Height:    img.Bounds().Dy(),
			Image:     img,
			Opaque:    m.Opaque,
			Holes:     m.Holes,
		}
		logger.Printf("    Fuzz %g%%: %dx%d, opaque=%d, holes=%d", tol, c.Width, c.Height, c.Opaque, c.Holes)
		cands = append(cands, c)
	}
	return cands, nil
}

func (g *Generator) key(ctx context.Context, src image.Image, bg imageutil.RGB, tol float64) (*image.NRGBA, error) {
	if g.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.Timeout)
		defer cancel()
	}
	return g.Keyer.Key(ctx, src, bg, tol)
}
