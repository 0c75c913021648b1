package value

import "github.com/squadracorsepolito/jring"

// Array is an ordered collection of values. It owns one reference to every
// element it stores: Set, Insert and Append steal the caller's reference,
// Get returns a borrow, and Remove or Clear drop the array's reference.
type Array struct {
	rb *jring.RingBuffer[*Value]
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return a.rb.Len()
}

// Get returns the element at index i as a borrow: the array keeps its
// reference and the handle stays valid only until the next mutation.
func (a *Array) Get(i int) (*Value, bool) {
	return a.rb.Get(i)
}

// Set replaces the element at index i, stealing the caller's reference to v
// and dropping the reference to the previous element.
func (a *Array) Set(i int, v *Value) error {
	return a.rb.Set(i, v)
}

// Insert places v at index i, stealing the caller's reference.
func (a *Array) Insert(i int, v *Value) error {
	return a.rb.Insert(i, v)
}

// Append places v after the last element, stealing the caller's reference.
func (a *Array) Append(v *Value) error {
	return a.rb.Append(v)
}

// Remove deletes the element at index i and drops its reference.
func (a *Array) Remove(i int) error {
	return a.rb.Del(i)
}

// Extend appends every element of other, in order, taking a new reference
// for each; other is not modified. The operation is all-or-nothing: if any
// append fails, the elements already appended are removed again and the
// array is left as it was. Extending an array with itself doubles its
// contents.
func (a *Array) Extend(other *Array) error {
	return a.rb.AppendRingBuffer(other.rb)
}

// Clear removes all elements, dropping the array's reference to each one,
// and frees the backing storage.
func (a *Array) Clear() {
	a.rb.Clear()
}
