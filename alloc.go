package jring

// Allocator provides the storage primitives used by a [RingBuffer]. Every
// primitive may fail, and the buffer treats a failure as recoverable: the
// operation that needed the storage reports an error and the buffer is left
// as it was.
type Allocator[T any] interface {
	// Alloc returns fresh storage for n slots.
	Alloc(n int) ([]T, error)

	// Realloc returns storage for n slots holding the prefix of old.
	// The old storage must not be used afterwards.
	Realloc(old []T, n int) ([]T, error)

	// Free releases storage previously obtained from Alloc or Realloc.
	Free(slots []T)
}

// HeapAllocator is the default [Allocator]. It allocates on the Go heap and
// never fails.
type HeapAllocator[T any] struct{}

func (HeapAllocator[T]) Alloc(n int) ([]T, error) {
	return make([]T, n), nil
}

func (HeapAllocator[T]) Realloc(old []T, n int) ([]T, error) {
	if n <= cap(old) {
		return old[:n], nil
	}

	slots := make([]T, n)
	copy(slots, old)

	return slots, nil
}

func (HeapAllocator[T]) Free(slots []T) {}
