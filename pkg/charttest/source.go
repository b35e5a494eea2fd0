package charttest

import "github.com/go-drift/charts/pkg/observe"

// FakeSource is a scriptable DataSource. The zero stream state is allowed:
// a source created with NewEmptySource has no record stream until Replace
// installs one, exercising the late-stream path of the plot.
type FakeSource[T any] struct {
	records  *observe.Observable[[]T]
	replaced *observe.Signal[*observe.Observable[[]T]]
	errs     *observe.Signal[error]
}

// NewFakeSource creates a source whose stream currently holds records.
func NewFakeSource[T any](records []T) *FakeSource[T] {
	s := NewEmptySource[T]()
	s.records = observe.NewObservable(records)
	return s
}

// NewEmptySource creates a source with no record stream yet.
func NewEmptySource[T any]() *FakeSource[T] {
	return &FakeSource[T]{
		replaced: observe.NewSignal[*observe.Observable[[]T]](),
		errs:     observe.NewSignal[error](),
	}
}

// Records returns the current record stream, or nil before the first
// Replace on an empty source.
func (s *FakeSource[T]) Records() *observe.Observable[[]T] {
	return s.records
}

// RecordsReplaced returns the stream-replacement signal.
func (s *FakeSource[T]) RecordsReplaced() *observe.Signal[*observe.Observable[[]T]] {
	return s.replaced
}

// Errors returns the upstream error signal.
func (s *FakeSource[T]) Errors() *observe.Signal[error] {
	return s.errs
}

// Emit pushes records into the current stream.
func (s *FakeSource[T]) Emit(records []T) {
	s.records.Set(records)
}

// Replace installs a brand-new stream holding records and announces the
// replacement, as an upstream provider does when its data set is swapped
// rather than updated.
func (s *FakeSource[T]) Replace(records []T) *observe.Observable[[]T] {
	stream := observe.NewObservable(records)
	s.records = stream
	s.replaced.Emit(stream)
	return stream
}

// Fail reports an upstream error.
func (s *FakeSource[T]) Fail(err error) {
	s.errs.Emit(err)
}
