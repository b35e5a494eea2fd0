package plot

import (
	"math"

	"github.com/go-drift/charts/pkg/observe"
)

// Column is one derived record of the series transform: the original input,
// the scalar the value selector picked from it, and that scalar normalized
// by the current divisor. Columns are replaced wholesale on every upstream
// emission, never mutated in place.
type Column[T any] struct {
	Input         T
	Value         float64
	RelativeValue float64
}

// ValueSelector extracts the plotted scalar from one input record.
type ValueSelector[T any] func(input T) float64

// DivisorOperator derives a divisor stream from the full record stream and
// the active value selector. The divisor may vary over time; every emission
// triggers a recompute of all relative values.
type DivisorOperator[T any] func(records *observe.Observable[[]T], selector ValueSelector[T]) *observe.Observable[float64]

// DataSource is the upstream collaborator that owns the record stream.
// Records may return nil when no stream exists yet; RecordsReplaced fires at
// most once per actual replacement, carrying the new stream. The plot only
// ever reads from the stream.
type DataSource[T any] interface {
	Records() *observe.Observable[[]T]
	RecordsReplaced() *observe.Signal[*observe.Observable[[]T]]
}

// ErrorReporter is an optional DataSource capability. Failures internal to
// the upstream stream are outside the plot's contract; when the source
// exposes them, the plot forwards each one to its error handler instead of
// swallowing it.
type ErrorReporter interface {
	Errors() *observe.Signal[error]
}

// ColumnValuer is the optional delegate capability backing the default
// value selector.
type ColumnValuer[T any] interface {
	ColumnValue(input T) float64
}

// ColumnDivisor is the optional delegate capability backing the default
// divisor operator.
type ColumnDivisor[T any] interface {
	ColumnDivisor(records *observe.Observable[[]T], selector ValueSelector[T]) *observe.Observable[float64]
}

// ConstantDivisor returns a divisor operator that ignores the records and
// always yields value. ConstantDivisor(1) is the safe fallback: relative
// values equal raw values.
func ConstantDivisor[T any](value float64) DivisorOperator[T] {
	return func(_ *observe.Observable[[]T], _ ValueSelector[T]) *observe.Observable[float64] {
		return observe.NewObservable(value)
	}
}

// MaxValueDivisor returns a divisor operator that tracks the maximum
// selected value across the current records, so relative values land in
// [0, 1] and the tallest column reaches full height.
func MaxValueDivisor[T any]() DivisorOperator[T] {
	return func(records *observe.Observable[[]T], selector ValueSelector[T]) *observe.Observable[float64] {
		maxOf := func(rs []T) float64 {
			result := 0.0
			for _, r := range rs {
				if v := selector(r); v > result {
					result = v
				}
			}
			return result
		}
		divisor := observe.NewObservable(maxOf(records.Value()))
		records.AddListener(func(rs []T) {
			divisor.Set(maxOf(rs))
		})
		return divisor
	}
}

// SumDivisor returns a divisor operator that tracks the sum of selected
// values, so relative values express each record's share of the total.
func SumDivisor[T any]() DivisorOperator[T] {
	return func(records *observe.Observable[[]T], selector ValueSelector[T]) *observe.Observable[float64] {
		sumOf := func(rs []T) float64 {
			total := 0.0
			for _, r := range rs {
				total += selector(r)
			}
			return total
		}
		divisor := observe.NewObservable(sumOf(records.Value()))
		records.AddListener(func(rs []T) {
			divisor.Set(sumOf(rs))
		})
		return divisor
	}
}

// seriesTransform owns the plot's single subscription to the record stream
// and the divisor stream derived from it, and caches the resulting column
// sequence.
type seriesTransform[T any] struct {
	source     DataSource[T]
	selector   ValueSelector[T]
	divisorOp  DivisorOperator[T]
	invalidate *observe.Notifier

	records []T
	divisor float64
	columns []Column[T]

	unsubRecords  func()
	unsubDivisor  func()
	unsubReplaced func()
	unsubErrors   func()
	disposed      bool
}

func newSeriesTransform[T any](
	source DataSource[T],
	selector ValueSelector[T],
	divisorOp DivisorOperator[T],
	invalidate *observe.Notifier,
	onError func(error),
) *seriesTransform[T] {
	t := &seriesTransform[T]{
		source:     source,
		selector:   selector,
		divisorOp:  divisorOp,
		invalidate: invalidate,
		divisor:    1,
	}
	if source == nil {
		return t
	}
	if stream := source.Records(); stream != nil {
		t.attach(stream)
	}
	if replaced := source.RecordsReplaced(); replaced != nil {
		t.unsubReplaced = replaced.AddListener(func(stream *observe.Observable[[]T]) {
			t.attach(stream)
		})
	}
	if reporter, ok := source.(ErrorReporter); ok && onError != nil {
		if errs := reporter.Errors(); errs != nil {
			t.unsubErrors = errs.AddListener(onError)
		}
	}
	return t
}

// attach replaces the active subscription with one on stream. The previous
// subscription is torn down first so two are never live concurrently.
func (t *seriesTransform[T]) attach(stream *observe.Observable[[]T]) {
	t.detach()
	if t.disposed || stream == nil {
		return
	}

	divisorStream := t.divisorOp(stream, t.selector)

	// Streams hold a current value, so seed the cache synchronously before
	// listening for future emissions.
	t.records = stream.Value()
	t.divisor = divisorStream.Value()
	t.recompute()

	t.unsubRecords = stream.AddListener(func(rs []T) {
		t.records = rs
		t.recompute()
	})
	t.unsubDivisor = divisorStream.AddListener(func(d float64) {
		t.divisor = d
		t.recompute()
	})
}

// detach cancels the active record and divisor subscriptions, if any.
func (t *seriesTransform[T]) detach() {
	if t.unsubRecords != nil {
		t.unsubRecords()
		t.unsubRecords = nil
	}
	if t.unsubDivisor != nil {
		t.unsubDivisor()
		t.unsubDivisor = nil
	}
}

// recompute rebuilds the cached column sequence from the latest records and
// divisor, then raises invalidation. A divisor of zero or a non-finite
// divisor leaves relative values equal to raw values.
func (t *seriesTransform[T]) recompute() {
	columns := make([]Column[T], len(t.records))
	usable := t.divisor != 0 && !math.IsNaN(t.divisor) && !math.IsInf(t.divisor, 0)
	for i, input := range t.records {
		value := t.selector(input)
		relative := value
		if usable {
			relative = value / t.divisor
		}
		columns[i] = Column[T]{Input: input, Value: value, RelativeValue: relative}
	}
	t.columns = columns
	t.invalidate.Notify()
}

// dispose tears down every subscription and drops cached state. Safe to call
// repeatedly, and safe when nothing was ever subscribed.
func (t *seriesTransform[T]) dispose() {
	if t.disposed {
		return
	}
	t.disposed = true
	t.detach()
	if t.unsubReplaced != nil {
		t.unsubReplaced()
		t.unsubReplaced = nil
	}
	if t.unsubErrors != nil {
		t.unsubErrors()
		t.unsubErrors = nil
	}
	t.records = nil
	t.columns = nil
}
