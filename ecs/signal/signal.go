// Package signal provides synchronous multicast notifications whose
// subscriptions can be owned by an entity and closed with it.
package signal

// Signal is a multicast notification. Listeners are called synchronously in
// connection order.
type Signal[T any] struct {
	slots []*slot[T]
}

type slot[T any] struct {
	fn     func(T)
	closed bool
}

// Subscription is the handle returned by Connect. Closing it detaches the
// listener; closing twice is a no-op.
type Subscription struct {
	close func()
}

// Close detaches the listener.
func (s *Subscription) Close() {
	if s == nil || s.close == nil {
		return
	}
	s.close()
	s.close = nil
}

// Connect registers fn and returns its subscription.
func (s *Signal[T]) Connect(fn func(T)) *Subscription {
	if s == nil || fn == nil {
		return &Subscription{}
	}
	sl := &slot[T]{fn: fn}
	s.slots = append(s.slots, sl)
	return &Subscription{close: func() {
		sl.closed = true
		s.compact()
	}}
}

// Emit calls every connected listener with v. Listeners connected during
// Emit are not called for this emission.
func (s *Signal[T]) Emit(v T) {
	if s == nil || len(s.slots) == 0 {
		return
	}
	snapshot := make([]*slot[T], len(s.slots))
	copy(snapshot, s.slots)
	for _, sl := range snapshot {
		if sl.closed {
			continue
		}
		sl.fn(v)
	}
}

// Len returns the number of connected listeners.
func (s *Signal[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.slots)
}

// Reset detaches every listener.
func (s *Signal[T]) Reset() {
	if s == nil {
		return
	}
	for _, sl := range s.slots {
		sl.closed = true
	}
	s.slots = nil
}

func (s *Signal[T]) compact() {
	kept := s.slots[:0]
	for _, sl := range s.slots {
		if !sl.closed {
			kept = append(kept, sl)
		}
	}
	for i := len(kept); i < len(s.slots); i++ {
		s.slots[i] = nil
	}
	s.slots = kept
}
