package bgstrip

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	chartWidth  = 1024
	chartHeight = 576
)

// errShortSweep is returned when a sweep has too few points to plot.
var errShortSweep = errors.New("not enough candidates to chart")

// markerLine returns a vertical line at x spanning [0, top].
func markerLine(x, top float64, c drawing.Color) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name:    fmt.Sprintf("selected %g%%", x),
		XValues: []float64{x, x},
		YValues: []float64{0, top},
		Style: chart.Style{
			StrokeColor:     c,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	}
}

// SweepChart renders holes against tolerance for cands as a PNG to w.
// The selected tolerance is marked with a dashed line and every point
// is labelled with its hole count.
func SweepChart(cands []Candidate, selected Candidate, title string, w io.Writer) error {
	sorted := SortCandidates(cands)
	if len(sorted) < 2 {
		return errShortSweep
	}

	var xvalues, yvalues []float64
	var annotations []chart.Value2
	var ticks []chart.Tick
	maxHoles := 1.0
	for _, c := range sorted {
		holes := float64(c.Holes)
		xvalues = append(xvalues, c.Tolerance)
		yvalues = append(yvalues, holes)
		annotations = append(annotations, chart.Value2{
			Label:  fmt.Sprintf("%d", c.Holes),
			XValue: c.Tolerance,
			YValue: holes,
		})
		ticks = append(ticks, chart.Tick{Value: c.Tolerance, Label: fmt.Sprintf("%g%%", c.Tolerance)})
		maxHoles = max(maxHoles, holes)
	}
	top := maxHoles * 1.1

	holesSeries := chart.ContinuousSeries{
		Name:    "holes",
		XValues: xvalues,
		YValues: yvalues,
		Style: chart.Style{
			StrokeColor: chart.ColorBlue,
			DotColor:    chart.ColorBlue,
			DotWidth:    3,
		},
	}

	graph := chart.Chart{
		Title:  title,
		Width:  chartWidth,
		Height: chartHeight,
		XAxis: chart.XAxis{
			Name: "Tolerance",
			Range: &chart.ContinuousRange{
				Min: xvalues[0],
				Max: xvalues[len(xvalues)-1],
			},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: "Holes",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: top,
			},
		},
		Series: []chart.Series{
			holesSeries,
			markerLine(selected.Tolerance, top, chart.ColorRed),
			chart.AnnotationSeries{
				Annotations: annotations,
			},
		},
	}
	return graph.Render(chart.PNG, w)
}
