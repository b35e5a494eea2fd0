package observe

import "sync"

// Notifier broadcasts payload-less events. Unlike Observable, it holds no
// value; listeners fire once per Notify call.
type Notifier struct {
	mu             sync.Mutex
	listeners      map[int]func()
	nextListenerID int
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{listeners: make(map[int]func())}
}

// AddListener adds a callback that fires on every Notify.
// Returns an unsubscribe function.
func (n *Notifier) AddListener(fn func()) func() {
	n.mu.Lock()
	id := n.nextListenerID
	n.nextListenerID++
	n.listeners[id] = fn
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.listeners, id)
		n.mu.Unlock()
	}
}

// Notify fires all registered listeners.
func (n *Notifier) Notify() {
	n.mu.Lock()
	listeners := make([]func(), 0, len(n.listeners))
	for _, fn := range n.listeners {
		listeners = append(listeners, fn)
	}
	n.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// Signal broadcasts events carrying a payload. It is the typed counterpart
// of Notifier for consumers that need the event data, not just the fact that
// something happened.
type Signal[T any] struct {
	mu             sync.Mutex
	listeners      map[int]func(T)
	nextListenerID int
}

// NewSignal creates an empty signal.
func NewSignal[T any]() *Signal[T] {
	return &Signal[T]{listeners: make(map[int]func(T))}
}

// AddListener adds a callback that fires on every Emit.
// Returns an unsubscribe function.
func (s *Signal[T]) AddListener(fn func(T)) func() {
	s.mu.Lock()
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Emit fires all registered listeners with the given value.
func (s *Signal[T]) Emit(value T) {
	s.mu.Lock()
	listeners := make([]func(T), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(value)
	}
}
