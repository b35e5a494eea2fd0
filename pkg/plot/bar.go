package plot

import (
	"github.com/go-drift/charts/pkg/errors"
	"github.com/go-drift/charts/pkg/observe"
)

// BarPlot turns a changing record stream into positioned column geometry
// and maps pointer interactions on the rendered output back to the
// originating record. See the package documentation for the pipeline shape.
//
// A BarPlot is private to one owner: its configuration, cached columns, and
// rendered-node registry are never shared between instances. It is not safe
// for concurrent use; drive it from a single goroutine the way a frame loop
// drives a widget.
type BarPlot[T any] struct {
	columnHeight  configField
	columnSpacing configField
	columnWidth   configField
	domainMax     configField

	series  *seriesTransform[T]
	surface Surface
	keyFor  KeyFunc[T]

	// Registry of node handles from the last render pass, index-aligned
	// with the points that produced them.
	nodes  []Node
	points []ColumnPoint[T]

	invalidate *observe.Notifier
	selection  *observe.Signal[Selection[T]]
	disposed   bool
}

// Option configures a BarPlot at construction.
type Option[T any] func(*options[T])

type options[T any] struct {
	store     StateContainer
	selector  ValueSelector[T]
	divisorOp DivisorOperator[T]
	keyFor    KeyFunc[T]
	delegate  any
	handler   errors.Handler
}

// WithStateContainer makes store authoritative for every configuration
// field. Without it, configuration lives in plot-private storage.
func WithStateContainer[T any](store StateContainer) Option[T] {
	return func(o *options[T]) { o.store = store }
}

// WithValueSelector supplies the selector that extracts the plotted scalar
// from each record.
func WithValueSelector[T any](selector ValueSelector[T]) Option[T] {
	return func(o *options[T]) { o.selector = selector }
}

// WithDivisorOperator supplies the operator that derives the divisor stream
// from the record stream.
func WithDivisorOperator[T any](op DivisorOperator[T]) Option[T] {
	return func(o *options[T]) { o.divisorOp = op }
}

// WithKeyFunc supplies the diffing key derivation for rectangle descriptors.
func WithKeyFunc[T any](keyFor KeyFunc[T]) Option[T] {
	return func(o *options[T]) { o.keyFor = keyFor }
}

// WithDelegate attaches the object probed for optional capabilities
// (ColumnValuer, ColumnDivisor) when no explicit selector or divisor
// operator is supplied. A more specific plot variant passes itself here.
func WithDelegate[T any](delegate any) Option[T] {
	return func(o *options[T]) { o.delegate = delegate }
}

// WithErrorHandler routes upstream stream errors to handler instead of the
// default log handler.
func WithErrorHandler[T any](handler errors.Handler) Option[T] {
	return func(o *options[T]) { o.handler = handler }
}

// NewBarPlot creates a plot over source, rendering through surface.
//
// Missing strategies resolve silently: an absent value selector falls back
// to the delegate's ColumnValue capability and then to a selector returning
// 0; an absent divisor operator falls back to the delegate's ColumnDivisor
// capability and then to a constant divisor of 1. Neither fallback ever
// raises an error.
//
// If source already exposes a record stream, the plot subscribes before
// returning; it also resubscribes whenever the source replaces its stream.
func NewBarPlot[T any](source DataSource[T], surface Surface, opts ...Option[T]) *BarPlot[T] {
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}

	selector := o.selector
	if selector == nil {
		if valuer, ok := o.delegate.(ColumnValuer[T]); ok {
			selector = valuer.ColumnValue
		} else {
			selector = func(T) float64 { return 0 }
		}
	}
	divisorOp := o.divisorOp
	if divisorOp == nil {
		if divider, ok := o.delegate.(ColumnDivisor[T]); ok {
			divisorOp = divider.ColumnDivisor
		} else {
			divisorOp = ConstantDivisor[T](1)
		}
	}
	keyFor := o.keyFor
	if keyFor == nil {
		keyFor = func(input T) any { return input }
	}
	handler := o.handler
	if handler == nil {
		handler = errors.NewLogHandler()
	}

	p := &BarPlot[T]{
		columnHeight:  newConfigField(o.store, keyColumnHeight, DefaultColumnHeight),
		columnSpacing: newConfigField(o.store, keyColumnSpacing, DefaultColumnSpacing),
		columnWidth:   newConfigField(o.store, keyColumnWidth, DefaultColumnWidth),
		domainMax:     newConfigField(o.store, keyDomainMax, DefaultDomainMax),
		surface:       surface,
		keyFor:        keyFor,
		invalidate:    observe.NewNotifier(),
		selection:     observe.NewSignal[Selection[T]](),
	}
	p.series = newSeriesTransform(source, selector, divisorOp, p.invalidate, func(err error) {
		handler.HandleError(errors.New("plot.SeriesTransform", errors.KindSource, err))
	})
	return p
}

// ColumnHeight returns the configured column height.
func (p *BarPlot[T]) ColumnHeight() float64 { return p.columnHeight.read() }

// SetColumnHeight stores the column height and raises invalidation.
func (p *BarPlot[T]) SetColumnHeight(v float64) { p.setField(p.columnHeight, v) }

// ColumnSpacing returns the configured spacing between columns.
func (p *BarPlot[T]) ColumnSpacing() float64 { return p.columnSpacing.read() }

// SetColumnSpacing stores the column spacing and raises invalidation.
func (p *BarPlot[T]) SetColumnSpacing(v float64) { p.setField(p.columnSpacing, v) }

// ColumnWidth returns the configured column width.
func (p *BarPlot[T]) ColumnWidth() float64 { return p.columnWidth.read() }

// SetColumnWidth stores the column width and raises invalidation.
func (p *BarPlot[T]) SetColumnWidth(v float64) { p.setField(p.columnWidth, v) }

// DomainMax returns the configured domain ceiling. Zero means no ceiling.
func (p *BarPlot[T]) DomainMax() float64 { return p.domainMax.read() }

// SetDomainMax stores the domain ceiling and raises invalidation.
func (p *BarPlot[T]) SetDomainMax(v float64) { p.setField(p.domainMax, v) }

// setField writes through the field's backing store and always notifies,
// even when the value is unchanged. No dirty-checking, no validation.
func (p *BarPlot[T]) setField(field configField, v float64) {
	field.write(v)
	p.invalidate.Notify()
}

// Geometry snapshots the current configuration for one layout pass.
func (p *BarPlot[T]) Geometry() Geometry {
	return Geometry{
		ColumnHeight:  p.columnHeight.read(),
		ColumnSpacing: p.columnSpacing.read(),
		ColumnWidth:   p.columnWidth.read(),
		DomainMax:     p.domainMax.read(),
	}
}

// Columns returns the cached column sequence. The slice is a read-only
// snapshot; it is replaced, never mutated, on upstream emissions.
func (p *BarPlot[T]) Columns() []Column[T] {
	return p.series.columns
}

// Plot lays out the cached columns with the current configuration. Pull
// based: nothing is cached across passes, so calling it twice without
// intervening changes yields identical output.
func (p *BarPlot[T]) Plot() []ColumnPoint[T] {
	return PlotColumns(p.series.columns, p.Geometry())
}

// Render runs one full pass: layout, descriptor emission, surface
// materialization. The returned points, the emitted descriptors, and the
// retained node registry are index-aligned; the registry fully replaces the
// one from the previous pass.
//
// An empty series renders nothing: no descriptors are emitted and the
// registry becomes empty.
func (p *BarPlot[T]) Render() []ColumnPoint[T] {
	points := p.Plot()
	specs := make([]RectSpec, len(points))
	for i, pt := range points {
		x, y, w, h := pt.Bounds()
		specs[i] = RectSpec{Key: p.keyFor(pt.Input), X: x, Y: y, Width: w, Height: h}
	}

	var nodes []Node
	if p.surface != nil {
		nodes = p.surface.Render(specs)
	}
	p.nodes = nodes
	p.points = points
	return points
}

// OnInvalidate returns the notifier raised whenever the plot needs to be
// re-rendered: configuration writes, record emissions, divisor emissions.
func (p *BarPlot[T]) OnInvalidate() *observe.Notifier {
	return p.invalidate
}

// OnSelect returns the signal carrying the result of every handled pointer
// event, matched or not.
func (p *BarPlot[T]) OnSelect() *observe.Signal[Selection[T]] {
	return p.selection
}

// Dispose unsubscribes from the upstream streams and discards cached state.
// Idempotent, and safe to call on a plot that never subscribed.
func (p *BarPlot[T]) Dispose() {
	if p.disposed {
		return
	}
	p.disposed = true
	p.series.dispose()
	p.nodes = nil
	p.points = nil
}
