package plot_test

import (
	"fmt"

	"github.com/go-drift/charts/pkg/charttest"
	"github.com/go-drift/charts/pkg/plot"
)

// This example shows the layout algorithm in isolation: columns in, pixel
// geometry out.
func ExamplePlotColumns() {
	series := []plot.Column[string]{
		{Input: "mon", Value: 10, RelativeValue: 0.5},
		{Input: "tue", Value: 20, RelativeValue: 1},
	}
	points := plot.PlotColumns(series, plot.Geometry{
		ColumnHeight:  100,
		ColumnWidth:   10,
		ColumnSpacing: 2,
	})

	for _, pt := range points {
		fmt.Printf("%s x1=%.0f height=%.0f\n", pt.Input, pt.X1, pt.DisplayHeight)
	}

	// Output:
	// mon x1=0 height=50
	// tue x1=12 height=100
}

// This example wires a full plot: a data source, a rendering surface, and
// the selection signal that maps a click back to the record it landed on.
func ExampleBarPlot() {
	type reading struct {
		Station string
		Level   float64
	}

	source := charttest.NewFakeSource([]reading{
		{Station: "north", Level: 4},
		{Station: "south", Level: 9},
	})
	surface := charttest.NewFakeSurface()

	p := plot.NewBarPlot[reading](source, surface,
		plot.WithValueSelector[reading](func(r reading) float64 { return r.Level }),
		plot.WithDivisorOperator[reading](plot.MaxValueDivisor[reading]()),
	)
	defer p.Dispose()

	p.OnSelect().AddListener(func(sel plot.Selection[reading]) {
		if sel.Point == nil {
			fmt.Println("no column hit")
			return
		}
		fmt.Println("selected", sel.Point.Input.Station)
	})

	p.Render()
	p.HandleTap(charttest.Tap(surface.Nodes[1]))

	// Output:
	// selected south
}
