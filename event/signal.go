package event

// Signal is an explicit subscriber list for one notification type.
// Subscribers are registered during wiring and invoked synchronously,
// in registration order, on the emitter's own goroutine. There is no
// unsubscribe: the simulation wires its listeners once at startup and
// tears the whole graph down together.
type Signal[T any] struct {
	subscribers []func(T)
}

// Subscribe appends a listener. Not safe for concurrent use with Emit;
// all wiring and emission happens on the driver goroutine.
func (s *Signal[T]) Subscribe(fn func(T)) {
	if fn == nil {
		return
	}
	s.subscribers = append(s.subscribers, fn)
}

// Emit delivers the payload to every subscriber in registration order.
func (s *Signal[T]) Emit(payload T) {
	for _, fn := range s.subscribers {
		fn(payload)
	}
}

// Len returns the subscriber count.
func (s *Signal[T]) Len() int {
	return len(s.subscribers)
}
