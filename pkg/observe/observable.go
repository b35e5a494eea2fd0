// Package observe provides the reactive primitives the plot core subscribes
// to: value-carrying observables, payload-less notifiers, and typed event
// signals.
//
// Observable holds a current value and notifies listeners on change:
//
//	records := observe.NewObservable([]Sample{})
//	unsub := records.AddListener(func(rs []Sample) { ... })
//	records.Set(latest) // triggers all listeners
//	unsub()
//
// All types are safe for concurrent use. Listeners run synchronously on the
// goroutine that calls Set, Notify, or Emit, in no guaranteed order relative
// to each other; a single listener always observes emissions in delivery
// order.
package observe

import "sync"

// Observable holds a value and notifies listeners when it changes.
type Observable[T any] struct {
	mu             sync.RWMutex
	value          T
	equals         func(a, b T) bool
	listeners      map[int]func(T)
	nextListenerID int
}

// NewObservable creates an observable with an initial value.
// Every Set triggers listeners, even when the value is unchanged.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{
		value:     initial,
		listeners: make(map[int]func(T)),
	}
}

// NewObservableWithEquality creates an observable that skips notification
// when the equality function reports the new value equal to the current one.
func NewObservableWithEquality[T any](initial T, equals func(a, b T) bool) *Observable[T] {
	obs := NewObservable(initial)
	obs.equals = equals
	return obs
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value
}

// Set updates the value and notifies listeners.
func (o *Observable[T]) Set(value T) {
	o.mu.Lock()
	if o.equals != nil && o.equals(o.value, value) {
		o.mu.Unlock()
		return
	}
	o.value = value
	listeners := o.snapshotLocked()
	o.mu.Unlock()

	for _, fn := range listeners {
		fn(value)
	}
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (o *Observable[T]) AddListener(fn func(T)) func() {
	o.mu.Lock()
	id := o.nextListenerID
	o.nextListenerID++
	o.listeners[id] = fn
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		delete(o.listeners, id)
		o.mu.Unlock()
	}
}

func (o *Observable[T]) snapshotLocked() []func(T) {
	listeners := make([]func(T), 0, len(o.listeners))
	for _, fn := range o.listeners {
		listeners = append(listeners, fn)
	}
	return listeners
}
