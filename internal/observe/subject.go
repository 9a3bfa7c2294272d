// Package observe provides a replay-latest subject: a registry of listener
// callbacks plus the last published value. New listeners receive the
// retained value immediately; history is not buffered.
package observe

import "sync"

// Subject retains the latest value of type T and delivers it to listeners.
// Listeners run synchronously on the publishing goroutine, in subscription
// order.
type Subject[T any] struct {
	mu        sync.Mutex
	value     T
	nextID    uint64
	listeners []listener[T]
}

type listener[T any] struct {
	id uint64
	fn func(T)
}

// NewSubject returns a Subject holding initial.
func NewSubject[T any](initial T) *Subject[T] {
	return &Subject[T]{value: initial}
}

// Value returns the retained value.
func (s *Subject[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Subscribe registers fn and calls it once with the retained value before
// returning. The returned function removes fn; calling it more than once is
// harmless.
func (s *Subject[T]) Subscribe(fn func(T)) (cancel func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener[T]{id: id, fn: fn})
	current := s.value
	s.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

// Publish retains v and calls every listener with it. The listener set is
// captured before delivery, so listeners may subscribe or cancel from within
// a callback.
func (s *Subject[T]) Publish(v T) {
	s.mu.Lock()
	s.value = v
	ls := make([]listener[T], len(s.listeners))
	copy(ls, s.listeners)
	s.mu.Unlock()

	for _, l := range ls {
		l.fn(v)
	}
}

// Len returns the number of registered listeners.
func (s *Subject[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}

func (s *Subject[T]) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.listeners {
		if l.id == id {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}
