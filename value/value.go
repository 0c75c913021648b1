// Package value provides a dynamically typed, reference-counted value and
// an ordered array of values backed by a jring ring buffer.
//
// Reference counting is manual and single-threaded. Constructors return a
// value holding one reference owned by the caller; passing a value into an
// [Array] steals that reference. A value is destroyed when its last
// reference is dropped with [Value.Decref].
package value

import "github.com/squadracorsepolito/jring"

// Kind identifies the type a [Value] carries.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is a dynamically typed value with a manual reference count.
type Value struct {
	kind Kind
	refs int

	boolean bool
	integer int64
	decimal float64
	str     string
	arr     *Array
}

func newValue(kind Kind) *Value {
	return &Value{
		kind: kind,
		refs: 1,
	}
}

func NewNull() *Value {
	return newValue(KindNull)
}

func NewBool(b bool) *Value {
	v := newValue(KindBool)
	v.boolean = b
	return v
}

func NewInt(i int64) *Value {
	v := newValue(KindInt)
	v.integer = i
	return v
}

func NewFloat(f float64) *Value {
	v := newValue(KindFloat)
	v.decimal = f
	return v
}

func NewString(s string) *Value {
	v := newValue(KindString)
	v.str = s
	return v
}

// NewArray returns an array value backed by a ring buffer that owns one
// reference to every element stored in it.
func NewArray() *Value {
	v := newValue(KindArray)
	v.arr = &Array{
		rb: jring.NewRingBuffer(nil, jring.Hooks[*Value]{
			Release: (*Value).Decref,
			Retain:  (*Value).Incref,
		}),
	}
	return v
}

// Kind returns the type of the value.
func (v *Value) Kind() Kind {
	return v.kind
}

// Refs returns the current reference count.
func (v *Value) Refs() int {
	return v.refs
}

// Incref takes an additional reference and returns v.
func (v *Value) Incref() *Value {
	if v != nil {
		v.refs++
	}
	return v
}

// Decref drops one reference. When the last reference is dropped the value
// releases its children: an array clears its backing buffer, which in turn
// decrefs every element.
func (v *Value) Decref() {
	if v == nil || v.refs <= 0 {
		return
	}

	v.refs--
	if v.refs > 0 {
		return
	}

	if v.kind == KindArray {
		v.arr.Clear()
	}
}

func (v *Value) IsNull() bool {
	return v.kind == KindNull
}

// Bool returns the boolean payload; false for other kinds.
func (v *Value) Bool() bool {
	return v.boolean
}

// Int returns the integer payload; 0 for other kinds.
func (v *Value) Int() int64 {
	return v.integer
}

// Float returns the decimal payload; 0 for other kinds.
func (v *Value) Float() float64 {
	return v.decimal
}

// Str returns the string payload; empty for other kinds.
func (v *Value) Str() string {
	return v.str
}

// Array returns the array payload, or nil for other kinds.
func (v *Value) Array() *Array {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}
