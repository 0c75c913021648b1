// Package spsc provides a bounded, lock-free queue for exactly one
// producer and one consumer goroutine.
package spsc

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Queue is a fixed-capacity single-producer single-consumer ring. Push and
// Pop never block; a full queue rejects the push and an empty queue returns
// no item. The capacity is rounded up to a power of two so that positions
// can be masked instead of taken modulo.
type Queue[T any] struct {
	// head is only written by the producer, tail only by the consumer;
	// the shared copies are what the other side reads. Padding keeps the
	// hot fields on separate cache lines.
	head uint32

	_ cpu.CacheLinePad

	tail uint32

	_ cpu.CacheLinePad

	headShared atomic.Uint32

	_ cpu.CacheLinePad

	tailShared atomic.Uint32

	_ cpu.CacheLinePad

	closed atomic.Bool

	_ cpu.CacheLinePad

	capacity uint32
	capMask  uint32

	buffer []T
}

func New[T any](capacity uint32) *Queue[T] {
	capacity = roundToPowerOf2(capacity)

	return &Queue[T]{
		capacity: capacity,
		capMask:  capacity - 1,

		buffer: make([]T, capacity),
	}
}

// Push adds an item. It reports false when the queue is full.
func (q *Queue[T]) Push(item T) bool {
	head := q.head
	tail := q.tailShared.Load()

	if head-tail >= q.capacity {
		return false
	}

	q.buffer[head&q.capMask] = item

	q.head = head + 1
	q.headShared.Store(head + 1)

	return true
}

// Pop removes the oldest item. It reports false when the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T

	head := q.headShared.Load()
	tail := q.tail

	if head == tail {
		return zero, false
	}

	item := q.buffer[tail&q.capMask]
	q.buffer[tail&q.capMask] = zero

	q.tail = tail + 1
	q.tailShared.Store(tail + 1)

	return item, true
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() uint32 {
	head := q.headShared.Load()
	tail := q.tailShared.Load()

	if head < tail {
		return head + q.capacity - tail
	}

	return head - tail
}

// Close marks the queue as closed. The producer calls it after its last
// Push; the consumer drains remaining items and checks Closed once Pop
// comes up empty.
func (q *Queue[T]) Close() {
	q.closed.Store(true)
}

func (q *Queue[T]) Closed() bool {
	return q.closed.Load()
}

func roundToPowerOf2(value uint32) uint32 {
	value--
	value |= value >> 1
	value |= value >> 2
	value |= value >> 4
	value |= value >> 8
	value |= value >> 16
	value++

	return value
}
