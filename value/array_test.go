package value

import (
	"testing"

	"github.com/squadracorsepolito/jring"
	"github.com/stretchr/testify/assert"
)

func Test_Array_StealAndBorrow(t *testing.T) {
	assert := assert.New(t)

	arr := NewArray()
	a := arr.Array()

	v := NewInt(1)
	assert.NoError(a.Append(v))

	// The array now owns the caller's reference.
	assert.Equal(1, v.Refs())

	// Get borrows: no reference change.
	got, ok := a.Get(0)
	assert.True(ok)
	assert.Same(v, got)
	assert.Equal(1, v.Refs())

	// Set drops the reference to the replaced element.
	replacement := NewInt(2)
	assert.NoError(a.Set(0, replacement))
	assert.Zero(v.Refs())
	assert.Equal(1, replacement.Refs())

	assert.NoError(a.Remove(0))
	assert.Zero(replacement.Refs())
	assert.Zero(a.Len())

	arr.Decref()
}

func Test_Array_InsertOrder(t *testing.T) {
	assert := assert.New(t)

	arr := NewArray()
	a := arr.Array()

	for i := range 3 {
		assert.NoError(a.Append(NewInt(int64(i + 1))))
	}
	assert.NoError(a.Insert(1, NewInt(99)))

	assert.Equal(4, a.Len())

	want := []int64{1, 99, 2, 3}
	for i, w := range want {
		v, ok := a.Get(i)
		assert.True(ok)
		assert.Equal(w, v.Int())
	}

	assert.ErrorIs(a.Insert(6, NewNull()), jring.ErrIndexOutOfRange)

	arr.Decref()
}

func Test_Array_Extend(t *testing.T) {
	assert := assert.New(t)

	dst := NewArray()
	src := NewArray()

	assert.NoError(dst.Array().Append(NewInt(1)))

	shared := make([]*Value, 0, 3)
	for i := range 3 {
		v := NewInt(int64(10 + i))
		shared = append(shared, v)
		assert.NoError(src.Array().Append(v))
	}

	assert.NoError(dst.Array().Extend(src.Array()))

	assert.Equal(4, dst.Array().Len())
	assert.Equal(3, src.Array().Len())

	// Both arrays own a reference to the shared elements.
	for _, v := range shared {
		assert.Equal(2, v.Refs())
	}

	src.Decref()
	for _, v := range shared {
		assert.Equal(1, v.Refs())
	}

	dst.Decref()
	for _, v := range shared {
		assert.Zero(v.Refs())
	}
}

func Test_Array_ExtendSelfDoublesContents(t *testing.T) {
	assert := assert.New(t)

	arr := NewArray()
	a := arr.Array()

	for i := range 3 {
		assert.NoError(a.Append(NewInt(int64(i))))
	}

	assert.NoError(a.Extend(a))

	assert.Equal(6, a.Len())
	for i := range 3 {
		first, _ := a.Get(i)
		second, _ := a.Get(i + 3)
		assert.Same(first, second)
		assert.Equal(2, first.Refs())
	}

	arr.Decref()
	for i := range 3 {
		_, ok := a.Get(i)
		assert.False(ok)
	}
}
