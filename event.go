package bgstrip

import (
	"fmt"
	"strings"
)

// EventKind identifies a step in the selection trail.
type EventKind int

const (
	// EventBaseline records the first candidate of the sweep.
	EventBaseline EventKind = iota
	// EventAccept records a step with no surge; the tolerance advanced.
	EventAccept
	// EventTolerate records a surge accepted because the previous
	// candidate still had a halo.
	EventTolerate
	// EventReject records a surge that stopped the scan.
	EventReject
	// EventCatastrophic records a surge too large to ever pursue.
	EventCatastrophic
	// EventFinal records the selected candidate.
	EventFinal
	// EventEmpty records that there was nothing to select from.
	EventEmpty
)

var eventKindNames = [...]string{
	EventBaseline:     "baseline",
	EventAccept:       "accept",
	EventTolerate:     "tolerate",
	EventReject:       "reject",
	EventCatastrophic: "catastrophic",
	EventFinal:        "final",
	EventEmpty:        "empty",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
	return eventKindNames[k]
}

// Signal is a set of surge detectors that fired on one step.
type Signal uint8

const (
	// SignalStep fires on an abrupt jump from the previous candidate.
	SignalStep Signal = 1 << iota
	// SignalBaseline fires on slow growth from the first candidate.
	SignalBaseline
	// SignalMinimum fires on regression from the fewest holes seen,
	// once the sweep is in the high tolerance range.
	SignalMinimum
)

// Has reports whether every signal in o is set in s.
func (s Signal) Has(o Signal) bool {
	return s&o == o
}

func (s Signal) String() string {
	if s == 0 {
		return "none"
	}
	var names []string
	if s.Has(SignalStep) {
		names = append(names, "step")
	}
	if s.Has(SignalBaseline) {
		names = append(names, "baseline")
	}
	if s.Has(SignalMinimum) {
		names = append(names, "minimum")
	}
	return strings.Join(names, "+")
}

// Event is one entry in the decision trail of Selector.Select.
type Event struct {
	Kind          EventKind
	Tolerance     float64
	PrevTolerance float64
	Holes         int
	PrevHoles     int
	// Ratio and Diff compare Holes against PrevHoles.
	Ratio   float64
	Diff    int
	Signals Signal
	// Halo is the halo ratio of the previous candidate. It is only
	// meaningful when HaloChecked is set.
	Halo        float64
	HaloChecked bool
}

func (e Event) String() string {
	switch e.Kind {
	case EventBaseline:
		return fmt.Sprintf("Baseline holes at fuzz %g%%: %d", e.Tolerance, e.Holes)
	case EventAccept:
		return fmt.Sprintf("Fuzz %g%% accepted (%d -> %d holes)", e.Tolerance, e.PrevHoles, e.Holes)
	case EventTolerate:
		return fmt.Sprintf("Hole count surge at fuzz %g%% (%d -> %d, %s); halo %.3f at %g%%, continuing",
			e.Tolerance, e.PrevHoles, e.Holes, e.Signals, e.Halo, e.PrevTolerance)
	case EventReject:
		return fmt.Sprintf("Hole count surge at fuzz %g%% (%d -> %d, %s); edges clean, stopping (Ratio: %.2f, Diff: %d)",
			e.Tolerance, e.PrevHoles, e.Holes, e.Signals, e.Ratio, e.Diff)
	case EventCatastrophic:
		return fmt.Sprintf("Catastrophic surge at fuzz %g%% (%d -> %d, Ratio: %.2f, Diff: %d), stopping",
			e.Tolerance, e.PrevHoles, e.Holes, e.Ratio, e.Diff)
	case EventFinal:
		return fmt.Sprintf("Final selection: Fuzz %g%%", e.Tolerance)
	case EventEmpty:
		return "No valid candidates"
	}
	return e.Kind.String()
}
