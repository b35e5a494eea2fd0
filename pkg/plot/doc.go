// Package plot implements the reactive core of a data-driven bar plot.
//
// A BarPlot subscribes to a DataSource, derives a normalized column per
// input record, lays the columns out as pixel-space points, hands rectangle
// descriptors to a rendering Surface, and maps pointer events on the
// rendered output back to the originating column.
//
// The pipeline runs in two halves. The push half reacts to upstream
// emissions: every records or divisor emission replaces the cached column
// sequence wholesale and raises the invalidation notifier. The pull half
// runs on demand: Render recomputes geometry from the cached columns and
// the current configuration, emits one RectSpec per column, and retains the
// surface's node handles index-aligned with the points that produced them.
// That alignment is what HandleTap relies on to recover a column from a
// clicked node without any per-node metadata.
//
// Example:
//
//	source := mydata.NewSource()
//	p := plot.NewBarPlot[Sample](source, surface,
//	    plot.WithValueSelector[Sample](func(s Sample) float64 { return s.Bytes }),
//	    plot.WithDivisorOperator[Sample](plot.MaxValueDivisor[Sample]()),
//	)
//	p.OnInvalidate().AddListener(scheduleFrame)
//	p.OnSelect().AddListener(func(sel plot.Selection[Sample]) {
//	    if sel.Point != nil {
//	        highlight(sel.Point.Input)
//	    }
//	})
package plot
