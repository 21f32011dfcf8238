// Package observe provides a value that subscribers can watch.
package observe

import "sync"

// Observable holds a value and delivers every change to its subscribers.
// A slow subscriber only ever sees the latest value: intermediate values
// it did not receive in time are dropped.
type Observable[T any] struct {
	subs  map[int]chan T
	value T
	next  int
	mu    sync.Mutex
}

// New creates an observable holding initial.
func New[T any](initial T) *Observable[T] {
	return &Observable[T]{
		value: initial,
		subs:  make(map[int]chan T),
	}
}

// Get returns the current value.
func (o *Observable[T]) Get() T {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.value
}

// Set replaces the value and notifies the subscribers.
func (o *Observable[T]) Set(value T) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.value = value

	for _, ch := range o.subs {
		deliver(ch, value)
	}
}

// Update replaces the value with fn applied to it, atomically.
func (o *Observable[T]) Update(fn func(T) T) T {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.value = fn(o.value)

	for _, ch := range o.subs {
		deliver(ch, o.value)
	}

	return o.value
}

// Subscribe returns a channel that immediately receives the current value and
// then every change. The returned function unsubscribes and closes the channel.
func (o *Observable[T]) Subscribe() (<-chan T, func()) {
	o.mu.Lock()
	defer o.mu.Unlock()

	id := o.next
	o.next++

	ch := make(chan T, 1)
	ch <- o.value
	o.subs[id] = ch

	var once sync.Once

	return ch, func() {
		once.Do(func() {
			o.mu.Lock()
			defer o.mu.Unlock()

			delete(o.subs, id)
			close(ch)
		})
	}
}

// deliver replaces whatever the subscriber has not read yet. Callers hold the lock,
// so nothing else sends on ch in between.
func deliver[T any](ch chan T, value T) {
	select {
	case <-ch:
	default:
	}

	ch <- value
}
