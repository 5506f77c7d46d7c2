package bgstrip

import (
	"strings"
	"testing"
)

func TestSortCandidates(t *testing.T) {
	cands := []Candidate{
		{Tolerance: 30, Width: 1, Height: 1, Holes: 3},
		{Tolerance: 10, Width: 1, Height: 1, Holes: 1},
		{Tolerance: 20, Width: 0, Height: 1},
		{Tolerance: 30, Width: 1, Height: 1, Holes: 4},
		{Tolerance: 15, Width: 1, Height: 1, Holes: 2},
	}

	sorted := SortCandidates(cands)
	want := []float64{10, 15, 30}
	if len(sorted) != len(want) {
		t.Fatalf("Expected %d candidates, got %d", len(want), len(sorted))
	}
	for i, c := range sorted {
		if c.Tolerance != want[i] {
			t.Errorf("Position %d: expected tolerance %g, got %g", i, want[i], c.Tolerance)
		}
		if i > 0 && c.Tolerance <= sorted[i-1].Tolerance {
			t.Errorf("Tolerances not strictly increasing at %d", i)
		}
	}
	// The first of two equal tolerances wins
	if sorted[2].Holes != 3 {
		t.Errorf("Expected the first 30%% candidate to be kept, got holes=%d", sorted[2].Holes)
	}
	// Input is untouched
	if cands[0].Tolerance != 30 || len(cands) != 5 {
		t.Error("SortCandidates modified its input")
	}
}

func TestCandidateValid(t *testing.T) {
	if (Candidate{Width: 0, Height: 3}).Valid() {
		t.Error("Zero width candidate should be invalid")
	}
	if (Candidate{Width: 3, Height: 0}).Valid() {
		t.Error("Zero height candidate should be invalid")
	}
	if !(Candidate{Width: 1, Height: 1}).Valid() {
		t.Error("1x1 candidate should be valid")
	}
}

func TestEventStrings(t *testing.T) {
	if s := (SignalStep | SignalMinimum).String(); s != "step+minimum" {
		t.Errorf("Unexpected signal string %q", s)
	}
	if s := Signal(0).String(); s != "none" {
		t.Errorf("Unexpected empty signal string %q", s)
	}

	final := Event{Kind: EventFinal, Tolerance: 35}
	if s := final.String(); s != "Final selection: Fuzz 35%" {
		t.Errorf("Unexpected final event %q", s)
	}
	base := Event{Kind: EventBaseline, Tolerance: 10, Holes: 4}
	if s := base.String(); s != "Baseline holes at fuzz 10%: 4" {
		t.Errorf("Unexpected baseline event %q", s)
	}
	rej := Event{Kind: EventReject, Tolerance: 20, PrevHoles: 10, Holes: 21, Signals: SignalBaseline, Ratio: 2.1, Diff: 11}
	if s := rej.String(); !strings.Contains(s, "baseline") || !strings.Contains(s, "stopping") {
		t.Errorf("Reject event should name the signal and stop, got %q", s)
	}
	if s := EventKind(42).String(); s != "EventKind(42)" {
		t.Errorf("Unexpected unknown kind %q", s)
	}
}
