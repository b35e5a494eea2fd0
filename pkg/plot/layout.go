package plot

// ColumnPoint is a Column augmented with pixel-space geometry for one
// rendering pass. Points are computed fresh on every pass and handed off as
// read-only snapshots; nothing downstream may mutate them.
type ColumnPoint[T any] struct {
	Column[T]

	DisplayHeight float64
	DisplayWidth  float64
	OffsetLeft    float64
	X1            float64
	X2            float64
	Y1            float64
	Y2            float64
}

// Bounds returns the rectangle the point's column occupies, including the
// spacing inset on the left.
func (p ColumnPoint[T]) Bounds() (x, y, width, height float64) {
	return p.X1 + p.OffsetLeft, p.Y1, p.DisplayWidth, p.DisplayHeight
}

// PlotColumns converts a column sequence plus a configuration snapshot into
// an ordered sequence of geometric points. It is a pure function of its
// arguments: deterministic, order-preserving, and free of hidden state, so
// repeated calls with unchanged inputs yield identical output.
//
// When DomainMax is positive, every relative value is scaled by
// maxValue/DomainMax so that DomainMax maps to full column height; values
// above the ceiling overflow past the nominal height rather than clamp.
// DomainMax <= 0 disables the correction. An empty series yields an empty
// result, which callers must treat as nothing-to-render, not an error.
func PlotColumns[T any](series []Column[T], geom Geometry) []ColumnPoint[T] {
	if len(series) == 0 {
		return nil
	}

	correction := 1.0
	if geom.DomainMax > 0 {
		maxValue := series[0].Value
		for _, col := range series[1:] {
			if col.Value > maxValue {
				maxValue = col.Value
			}
		}
		// A series whose values are all zero has nothing to scale; leave
		// the correction at identity rather than collapse every column.
		if maxValue != 0 {
			correction = maxValue / geom.DomainMax
		}
	}

	stride := geom.ColumnWidth + geom.ColumnSpacing
	points := make([]ColumnPoint[T], len(series))
	for i, col := range series {
		displayHeight := col.RelativeValue * correction * geom.ColumnHeight
		x1 := stride * float64(i)
		points[i] = ColumnPoint[T]{
			Column:        col,
			DisplayHeight: displayHeight,
			DisplayWidth:  geom.ColumnWidth,
			OffsetLeft:    geom.ColumnSpacing / 2,
			X1:            x1,
			X2:            x1 + stride,
			Y1:            geom.ColumnHeight - displayHeight,
			Y2:            geom.ColumnHeight,
		}
	}
	return points
}
