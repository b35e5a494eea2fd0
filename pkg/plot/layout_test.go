package plot_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/charts/pkg/plot"
)

type sample struct {
	Label string
	Value float64
}

func rawColumns(values ...float64) []plot.Column[sample] {
	// Columns as a constant divisor of 1 produces them: relative == raw.
	columns := make([]plot.Column[sample], len(values))
	for i, v := range values {
		columns[i] = plot.Column[sample]{Input: sample{Value: v}, Value: v, RelativeValue: v}
	}
	return columns
}

func TestPlotColumns_CountAndOrderMatchInput(t *testing.T) {
	series := rawColumns(3, 1, 4, 1, 5)
	points := plot.PlotColumns(series, plot.Geometry{ColumnHeight: 10, ColumnWidth: 2})

	if len(points) != len(series) {
		t.Fatalf("expected %d points, got %d", len(series), len(points))
	}
	for i, pt := range points {
		if pt.Value != series[i].Value {
			t.Fatalf("point %d out of order: value %.1f, want %.1f", i, pt.Value, series[i].Value)
		}
	}
}

func TestPlotColumns_GeometryWithoutCeiling(t *testing.T) {
	series := rawColumns(10, 20)
	geom := plot.Geometry{ColumnHeight: 100, ColumnWidth: 10, ColumnSpacing: 2, DomainMax: 0}
	points := plot.PlotColumns(series, geom)

	if points[0].X1 != 0 || points[1].X1 != 12 {
		t.Fatalf("expected x1 of 0 and 12, got %.1f and %.1f", points[0].X1, points[1].X1)
	}
	if points[0].X2 != 12 || points[1].X2 != 24 {
		t.Fatalf("expected x2 of 12 and 24, got %.1f and %.1f", points[0].X2, points[1].X2)
	}
	// Heights stay proportional to the relative values.
	if points[1].DisplayHeight != 2*points[0].DisplayHeight {
		t.Fatalf("expected height ratio 2, got %.1f and %.1f",
			points[0].DisplayHeight, points[1].DisplayHeight)
	}
	for i, pt := range points {
		if pt.DisplayWidth != 10 {
			t.Fatalf("point %d: expected width 10, got %.1f", i, pt.DisplayWidth)
		}
		if pt.OffsetLeft != 1 {
			t.Fatalf("point %d: expected offset 1, got %.1f", i, pt.OffsetLeft)
		}
		if pt.Y2 != 100 {
			t.Fatalf("point %d: expected y2 100, got %.1f", i, pt.Y2)
		}
		if pt.Y1 != 100-pt.DisplayHeight {
			t.Fatalf("point %d: y1 %.1f does not complement height %.1f", i, pt.Y1, pt.DisplayHeight)
		}
	}
}

func TestPlotColumns_CeilingAtMaxLeavesHeightsUnchanged(t *testing.T) {
	series := rawColumns(10, 20)
	base := plot.Geometry{ColumnHeight: 100, ColumnWidth: 10, ColumnSpacing: 2}

	noCeiling := plot.PlotColumns(series, base)
	base.DomainMax = 20 // equals the series maximum, so the correction is 1
	withCeiling := plot.PlotColumns(series, base)

	if diff := cmp.Diff(noCeiling, withCeiling); diff != "" {
		t.Fatalf("ceiling at max changed geometry (-none +ceiling):\n%s", diff)
	}
}

func TestPlotColumns_MaxValueFillsColumnHeight(t *testing.T) {
	// Relative values as MaxValueDivisor produces them: value / max.
	series := []plot.Column[sample]{
		{Value: 5, RelativeValue: 0.25},
		{Value: 20, RelativeValue: 1},
	}
	geom := plot.Geometry{ColumnHeight: 100, ColumnWidth: 10, DomainMax: 20}
	points := plot.PlotColumns(series, geom)

	if points[1].DisplayHeight != geom.ColumnHeight {
		t.Fatalf("expected max column to fill height %.1f, got %.1f",
			geom.ColumnHeight, points[1].DisplayHeight)
	}
	if points[1].Y1 != 0 {
		t.Fatalf("expected max column y1 0, got %.1f", points[1].Y1)
	}
}

func TestPlotColumns_ValuesAboveCeilingOverflow(t *testing.T) {
	series := []plot.Column[sample]{
		{Value: 40, RelativeValue: 1},
	}
	geom := plot.Geometry{ColumnHeight: 100, ColumnWidth: 10, DomainMax: 20}
	points := plot.PlotColumns(series, geom)

	// correction = 40/20 = 2: the column overflows past the nominal height.
	if points[0].DisplayHeight != 200 {
		t.Fatalf("expected overflow height 200, got %.1f", points[0].DisplayHeight)
	}
	if points[0].Y1 != -100 {
		t.Fatalf("expected y1 -100, got %.1f", points[0].Y1)
	}
}

func TestPlotColumns_EmptySeries(t *testing.T) {
	points := plot.PlotColumns[sample](nil, plot.Geometry{ColumnHeight: 100, ColumnWidth: 10})
	if len(points) != 0 {
		t.Fatalf("expected no points for empty series, got %d", len(points))
	}
}

func TestPlotColumns_Idempotent(t *testing.T) {
	series := rawColumns(1, 2, 3)
	geom := plot.Geometry{ColumnHeight: 50, ColumnWidth: 4, ColumnSpacing: 1, DomainMax: 3}

	first := plot.PlotColumns(series, geom)
	second := plot.PlotColumns(series, geom)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated layout diverged (-first +second):\n%s", diff)
	}
}

func TestPlotColumns_AllZeroValuesWithCeiling(t *testing.T) {
	series := rawColumns(0, 0, 0)
	geom := plot.Geometry{ColumnHeight: 100, ColumnWidth: 10, DomainMax: 50}
	points := plot.PlotColumns(series, geom)

	for i, pt := range points {
		if pt.DisplayHeight != 0 {
			t.Fatalf("point %d: expected zero height, got %.1f", i, pt.DisplayHeight)
		}
	}
}
