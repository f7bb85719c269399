// Package circularbuffer keeps the last N values pushed into it.
// It is not safe for concurrent use.
package circularbuffer

type CircularBuffer[T any] struct {
	values   []T
	position int
	full     bool
}

func New[T any](size int) *CircularBuffer[T] {
	if size < 1 {
		size = 1
	}

	return &CircularBuffer[T]{
		values: make([]T, size),
	}
}

// Push stores element, overwriting the oldest value once the buffer is full
func (cb *CircularBuffer[T]) Push(element T) {
	cb.values[cb.position] = element
	cb.position++

	if cb.position >= len(cb.values) {
		cb.position = 0
		cb.full = true
	}
}

// Len returns how many values are held, at most the buffer size
func (cb *CircularBuffer[T]) Len() int {
	if cb.full {
		return len(cb.values)
	}
	return cb.position
}

// Each iterates over all elements in the buffer in the order they were inserted
func (cb *CircularBuffer[T]) Each(fn func(T)) {
	i := 0
	if cb.full {
		i = cb.position
	}

	for n := 0; n < cb.Len(); n++ {
		fn(cb.values[i])

		i++
		if i >= len(cb.values) {
			i = 0
		}
	}
}

// Slice copies the held values, oldest first
func (cb *CircularBuffer[T]) Slice() []T {
	out := make([]T, 0, cb.Len())
	cb.Each(func(v T) {
		out = append(out, v)
	})
	return out
}
