// Package jring implements a growable circular buffer that backs an
// ordered, reference-counted collection of dynamically typed values.
//
// Elements are addressed by virtual index: index i lives in physical slot
// (start + i) mod capacity, and the live range may wrap around the physical
// end of the storage. Insertion and deletion shift whichever side of the
// target index holds fewer elements, so operations near either end are
// cheap. The storage doubles when full and halves when occupancy drops
// below one eighth of the capacity.
//
// The buffer is the sole owner of every element reference it stores:
// inserting a value transfers ownership into the buffer and removing,
// overwriting or clearing releases it through the configured hooks. A
// buffer instance must be accessed by a single owner; there is no internal
// synchronization.
package jring

import "errors"

// MinCapacity is the smallest non-zero storage capacity. The first
// insertion into an empty buffer allocates this many slots, and shrinking
// never goes below it.
const MinCapacity = 8

var (
	// ErrIndexOutOfRange is returned when an index argument falls outside
	// the valid virtual-index window for the requested operation.
	ErrIndexOutOfRange = errors.New("ring buffer: index out of range")

	errCapacityTooSmall = errors.New("ring buffer: capacity is smaller than element count")
)

// Hooks connects a [RingBuffer] to the reference-counting scheme of its
// element type. Both hooks are optional.
type Hooks[T any] struct {
	// Release drops the one reference the buffer owns for an element.
	// Called when an element is deleted, overwritten or cleared.
	Release func(T)

	// Retain takes an additional reference to an element and returns the
	// handle to store. Used only by [RingBuffer.AppendRingBuffer], which
	// borrows from the source buffer and must own what it appends so that
	// a rollback can release it without disturbing the source. When nil,
	// the handle is stored as is.
	Retain func(T) T
}

// RingBuffer is a circularly addressed, growable array of owning element
// references. The zero state holds no storage; the first insertion
// allocates [MinCapacity] slots.
type RingBuffer[T any] struct {
	alloc Allocator[T]
	hooks Hooks[T]

	slots []T
	start int
	count int
}

// NewRingBuffer returns an empty buffer. No storage is allocated until the
// first insertion. A nil allocator selects [HeapAllocator].
func NewRingBuffer[T any](alloc Allocator[T], hooks Hooks[T]) *RingBuffer[T] {
	if alloc == nil {
		alloc = HeapAllocator[T]{}
	}

	return &RingBuffer[T]{
		alloc: alloc,
		hooks: hooks,
	}
}

// Len returns the number of live elements.
func (rb *RingBuffer[T]) Len() int {
	return rb.count
}

// Cap returns the number of allocated slots.
func (rb *RingBuffer[T]) Cap() int {
	return len(rb.slots)
}

// slot maps virtual index i to its physical slot.
func (rb *RingBuffer[T]) slot(i int) int {
	return newCursor(rb.start, i, len(rb.slots)).pos
}

func (rb *RingBuffer[T]) release(item T) {
	if rb.hooks.Release != nil {
		rb.hooks.Release(item)
	}
}

func (rb *RingBuffer[T]) retain(item T) T {
	if rb.hooks.Retain != nil {
		return rb.hooks.Retain(item)
	}

	return item
}

// Get returns the element at virtual index i. The returned handle is a
// borrow owned by the buffer; it stays valid only until the next mutation.
func (rb *RingBuffer[T]) Get(i int) (T, bool) {
	if i < 0 || i >= rb.count {
		var zero T
		return zero, false
	}

	return rb.slots[rb.slot(i)], true
}

// Set replaces the element at virtual index i, releasing the previous
// occupant and taking ownership of value. The buffer is left unchanged on
// failure.
func (rb *RingBuffer[T]) Set(i int, value T) error {
	if i < 0 || i >= rb.count {
		return ErrIndexOutOfRange
	}

	pos := rb.slot(i)
	rb.release(rb.slots[pos])
	rb.slots[pos] = value

	return nil
}

// Insert places value at virtual index i, 0 <= i <= Len, taking ownership
// of it. Whichever side of i holds fewer elements is shifted by one slot.
// On failure (out-of-range index or allocation failure while growing) the
// buffer is left unchanged and ownership stays with the caller.
func (rb *RingBuffer[T]) Insert(i int, value T) error {
	if i < 0 || i > rb.count {
		return ErrIndexOutOfRange
	}

	if rb.count == len(rb.slots) {
		if err := rb.resize(len(rb.slots) * 2); err != nil {
			return err
		}
	}

	switch {
	case i == rb.count:
		rb.slots[rb.slot(rb.count)] = value

	case i == 0:
		rb.start = newCursor(rb.start, 0, len(rb.slots)).retreat(1).pos
		rb.slots[rb.start] = value

	case i <= rb.count/2:
		// Open the gap on the front side: pull the elements before i one
		// slot toward the new start.
		rb.start = newCursor(rb.start, 0, len(rb.slots)).retreat(1).pos
		rb.move(0, 1, i)
		rb.slots[rb.slot(i)] = value

	default:
		rb.move(i+1, i, rb.count-i)
		rb.slots[rb.slot(i)] = value
	}

	rb.count++

	return nil
}

// Append places value after the last element, taking ownership of it.
func (rb *RingBuffer[T]) Append(value T) error {
	return rb.Insert(rb.count, value)
}

// AppendRingBuffer appends every element of other, in virtual order,
// retaining a reference for each one; other is not modified. If any single
// append fails, the elements appended by this call are removed and released
// again and the buffer is left exactly as it was.
//
// Appending a buffer to itself is allowed and doubles its contents: the
// source length is captured before the first append.
func (rb *RingBuffer[T]) AppendRingBuffer(other *RingBuffer[T]) error {
	n := other.count

	for i := range n {
		item, _ := other.Get(i)

		owned := rb.retain(item)
		if err := rb.Append(owned); err != nil {
			rb.release(owned)

			for range i {
				// Rollback is delete-from-the-end, which never shifts and
				// never fails on a live index.
				_ = rb.Del(rb.count - 1)
			}

			return err
		}
	}

	return nil
}

// Del removes the element at virtual index i and releases it. Whichever
// side of i holds fewer elements is shifted by one slot. When occupancy
// drops below an eighth of the capacity the storage is halved; a failed
// shrink is ignored, the removal has already committed.
func (rb *RingBuffer[T]) Del(i int) error {
	if i < 0 || i >= rb.count {
		return ErrIndexOutOfRange
	}

	var zero T

	rb.release(rb.slots[rb.slot(i)])

	switch {
	case i == rb.count-1:
		rb.slots[rb.slot(i)] = zero

	case i == 0:
		rb.slots[rb.start] = zero
		rb.start = newCursor(rb.start, 1, len(rb.slots)).pos

	case i < rb.count/2:
		// Close the gap from the front side: push the elements before i
		// one slot toward the back, then drop the first slot.
		rb.move(1, 0, i)
		rb.slots[rb.start] = zero
		rb.start = newCursor(rb.start, 1, len(rb.slots)).pos

	default:
		rb.move(i, i+1, rb.count-i-1)
		rb.slots[rb.slot(rb.count-1)] = zero
	}

	rb.count--

	if rb.count < len(rb.slots)/8 {
		// Best-effort shrink.
		_ = rb.resize(len(rb.slots) / 2)
	}

	return nil
}

// Clear releases every live element in virtual order, frees the storage and
// resets the buffer to its initial empty state. The buffer stays usable.
func (rb *RingBuffer[T]) Clear() {
	for i := range rb.count {
		rb.release(rb.slots[rb.slot(i)])
	}

	if rb.slots != nil {
		rb.alloc.Free(rb.slots)
	}

	rb.slots = nil
	rb.start = 0
	rb.count = 0
}

// Close releases all resources held by the buffer. It is equivalent to
// [RingBuffer.Clear].
func (rb *RingBuffer[T]) Close() {
	rb.Clear()
}
