package bgstrip

import "fmt"

// Thresholds are the policy constants of the selection heuristic.
// They were tuned by hand on sample images and are not derived from
// anything, so all of them are configurable.
type Thresholds struct {
	// Step surge: jump between adjacent tolerances.
	StepRatio float64 `json:"step_ratio"`
	StepDiff  int     `json:"step_diff"`

	// Baseline surge: growth relative to the first candidate.
	BaselineRatio float64 `json:"baseline_ratio"`
	BaselineDiff  int     `json:"baseline_diff"`

	// Minimum surge: growth relative to the fewest holes seen so far,
	// armed from MinimumFrom tolerance onwards.
	MinimumRatio float64 `json:"minimum_ratio"`
	MinimumDiff  int     `json:"minimum_diff"`
	MinimumFrom  float64 `json:"minimum_from"`

	// HaloLimit is the halo ratio above which a surge is tolerated.
	HaloLimit float64 `json:"halo_limit"`

	// A step surge above either catastrophic limit always stops the
	// scan.
	CatastrophicRatio float64 `json:"catastrophic_ratio"`
	CatastrophicDiff  int     `json:"catastrophic_diff"`
}

// DefaultThresholds returns the cut-offs the heuristic was tuned with.
func DefaultThresholds() Thresholds {
	return Thresholds{
		StepRatio:         1.8,
		StepDiff:          50,
		BaselineRatio:     1.4,
		BaselineDiff:      10,
		MinimumRatio:      1.05,
		MinimumDiff:       5,
		MinimumFrom:       30,
		HaloLimit:         0.01,
		CatastrophicRatio: 5.0,
		CatastrophicDiff:  200,
	}
}

// Validate rejects negative or NaN cut-offs.
func (t Thresholds) Validate() error {
	ratios := []struct {
		name string
		v    float64
	}{
		{"step_ratio", t.StepRatio},
		{"baseline_ratio", t.BaselineRatio},
		{"minimum_ratio", t.MinimumRatio},
		{"minimum_from", t.MinimumFrom},
		{"halo_limit", t.HaloLimit},
		{"catastrophic_ratio", t.CatastrophicRatio},
	}
	for _, r := range ratios {
		if !(r.v >= 0) {
			return fmt.Errorf("%s must be a non-negative number, got %g", r.name, r.v)
		}
	}
	diffs := []struct {
		name string
		v    int
	}{
		{"step_diff", t.StepDiff},
		{"baseline_diff", t.BaselineDiff},
		{"minimum_diff", t.MinimumDiff},
		{"catastrophic_diff", t.CatastrophicDiff},
	}
	for _, d := range diffs {
		if d.v < 0 {
			return fmt.Errorf("%s must not be negative, got %d", d.name, d.v)
		}
	}
	return nil
}

// HaloFunc returns the halo ratio of a candidate. It is only called
// when a surge needs to be judged.
type HaloFunc func(Candidate) float64

// Selector picks one candidate from a tolerance sweep.
type Selector struct {
	Thresholds Thresholds
}

// NewSelector returns a Selector using t.
func NewSelector(t Thresholds) *Selector {
	return &Selector{Thresholds: t}
}

type selectionState struct {
	selected      Candidate
	baselineHoles int
	minHoles      int
}

// Select scans the valid candidates in ascending tolerance and returns
// the chosen one together with the decision trail. ok is false if
// there were no valid candidates.
//
// Each step compares a candidate with its predecessor. If no surge
// signal fires the candidate becomes the selection. If one does, the
// halo of the predecessor decides: a visible halo means the surge is
// worth tolerating, unless it is catastrophic; a clean edge means the
// predecessor is selected and the scan stops.
func (s *Selector) Select(cands []Candidate, halo HaloFunc) (selected Candidate, events []Event, ok bool) {
	sorted := SortCandidates(cands)
	if len(sorted) == 0 {
		return Candidate{}, []Event{{Kind: EventEmpty}}, false
	}

	first := sorted[0]
	st := selectionState{
		selected:      first,
		baselineHoles: first.Holes,
		minHoles:      first.Holes,
	}
	events = append(events, Event{Kind: EventBaseline, Tolerance: first.Tolerance, Holes: first.Holes})

	halos := make(map[int]float64)
	haloOf := func(i int) float64 {
		if h, ok := halos[i]; ok {
			return h
		}
		var h float64
		if halo != nil {
			h = halo(sorted[i])
		}
		halos[i] = h
		return h
	}

	for i := 1; i < len(sorted); i++ {
		prev, curr := sorted[i-1], sorted[i]
		st.minHoles = min(st.minHoles, curr.Holes)

		ev := Event{
			Tolerance:     curr.Tolerance,
			PrevTolerance: prev.Tolerance,
			Holes:         curr.Holes,
			PrevHoles:     prev.Holes,
			Ratio:         holeRatio(curr.Holes, prev.Holes),
			Diff:          curr.Holes - prev.Holes,
			Signals:       s.signals(st, prev, curr),
		}

		switch {
		case ev.Signals == 0:
			ev.Kind = EventAccept
			st.selected = curr
		case s.catastrophic(ev.Ratio, ev.Diff):
			ev.Kind = EventCatastrophic
			st.selected = prev
		default:
			ev.Halo = haloOf(i - 1)
			ev.HaloChecked = true
			if ev.Halo > s.Thresholds.HaloLimit {
				ev.Kind = EventTolerate
				st.selected = curr
			} else {
				ev.Kind = EventReject
				st.selected = prev
			}
		}
		events = append(events, ev)

		if ev.Kind == EventCatastrophic || ev.Kind == EventReject {
			break
		}
	}

	events = append(events, Event{
		Kind:      EventFinal,
		Tolerance: st.selected.Tolerance,
		Holes:     st.selected.Holes,
	})
	return st.selected, events, true
}

// signals evaluates the three surge detectors for one step.
func (s *Selector) signals(st selectionState, prev, curr Candidate) Signal {
	t := s.Thresholds
	var sig Signal

	if surge(curr.Holes, prev.Holes, t.StepRatio, t.StepDiff) {
		sig |= SignalStep
	}
	if surge(curr.Holes, st.baselineHoles, t.BaselineRatio, t.BaselineDiff) {
		sig |= SignalBaseline
	}
	if curr.Tolerance >= t.MinimumFrom && surge(curr.Holes, st.minHoles, t.MinimumRatio, t.MinimumDiff) {
		sig |= SignalMinimum
	}
	return sig
}

func (s *Selector) catastrophic(ratio float64, diff int) bool {
	return ratio > s.Thresholds.CatastrophicRatio || diff > s.Thresholds.CatastrophicDiff
}

// surge reports whether holes grew past both the ratio and the
// absolute difference limits relative to ref.
func surge(holes, ref int, ratio float64, diff int) bool {
	return holeRatio(holes, ref) > ratio && holes-ref >= diff
}

func holeRatio(holes, ref int) float64 {
	return float64(holes) / float64(max(ref, 1))
}
