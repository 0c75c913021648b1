package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Value_Kinds(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(KindNull, NewNull().Kind())
	assert.True(NewNull().IsNull())

	b := NewBool(true)
	assert.Equal(KindBool, b.Kind())
	assert.True(b.Bool())

	i := NewInt(42)
	assert.Equal(KindInt, i.Kind())
	assert.Equal(int64(42), i.Int())

	f := NewFloat(1.5)
	assert.Equal(KindFloat, f.Kind())
	assert.Equal(1.5, f.Float())

	s := NewString("hello")
	assert.Equal(KindString, s.Kind())
	assert.Equal("hello", s.Str())

	a := NewArray()
	assert.Equal(KindArray, a.Kind())
	assert.NotNil(a.Array())
	assert.Nil(i.Array())
}

func Test_Value_Refcount(t *testing.T) {
	assert := assert.New(t)

	v := NewInt(7)
	assert.Equal(1, v.Refs())

	assert.Same(v, v.Incref())
	assert.Equal(2, v.Refs())

	v.Decref()
	assert.Equal(1, v.Refs())

	v.Decref()
	assert.Zero(v.Refs())

	// Dropping below zero is a no-op.
	v.Decref()
	assert.Zero(v.Refs())

	var nilValue *Value
	assert.Nil(nilValue.Incref())
	nilValue.Decref()
}

func Test_Value_ArrayDecrefReleasesChildren(t *testing.T) {
	assert := assert.New(t)

	arr := NewArray()

	child := NewInt(1)
	assert.NoError(arr.Array().Append(child))
	assert.Equal(1, child.Refs())

	// A nested array is released recursively.
	inner := NewArray()
	grandchild := NewString("deep")
	assert.NoError(inner.Array().Append(grandchild))
	assert.NoError(arr.Array().Append(inner))

	// An extra reference keeps a child alive past the array.
	kept := NewInt(2).Incref()
	assert.NoError(arr.Array().Append(kept))
	assert.Equal(2, kept.Refs())

	arr.Decref()

	assert.Zero(arr.Refs())
	assert.Zero(child.Refs())
	assert.Zero(inner.Refs())
	assert.Zero(grandchild.Refs())
	assert.Equal(1, kept.Refs())
}
