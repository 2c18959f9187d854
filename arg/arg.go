/*
Package arg provides the explicit, heterogeneous argument representation
called for by the tinyprintf design notes: a tagged sum type standing in for
C's variadic argument access in a language that has no notion of "pull the
next argument with this width and signedness."

A Value carries exactly one populated payload field, selected by Kind.
A List is an ordered sequence of Values, built either by hand (Int, Uint,
Float, Str, Pointer) or from a Go ...any argument list via Collect.
*/
package arg

import "reflect"

// Kind selects which field of a Value is populated.
type Kind byte

const (
	KindInt Kind = iota
	KindUint
	KindFloat
	KindString
	KindPointer
)

// Value is one tagged argument: an integer, unsigned integer, float,
// string, or pointer, in the widest representation tinyprintf's renderers
// work with.
type Value struct {
	Kind Kind
	I    int64
	U    uint64
	F    float64
	S    string
	Ptr  uintptr
}

// Int wraps a signed integer argument.
func Int(v int64) Value { return Value{Kind: KindInt, I: v} }

// Uint wraps an unsigned integer argument.
func Uint(v uint64) Value { return Value{Kind: KindUint, U: v} }

// Float wraps a floating-point argument.
func Float(v float64) Value { return Value{Kind: KindFloat, F: v} }

// Str wraps a string argument.
func Str(v string) Value { return Value{Kind: KindString, S: v} }

// Pointer wraps a raw address argument, as rendered by %p.
func Pointer(v uintptr) Value { return Value{Kind: KindPointer, Ptr: v} }

// List is an ordered sequence of tagged arguments, consumed left to right
// by the format interpreter exactly as a C va_list would be.
type List []Value

// At returns the i-th value and whether it exists. Out-of-range access is
// not an error in this engine (spec §7): callers treat a missing argument
// as a zero Value rather than failing.
func (l List) At(i int) (Value, bool) {
	if i < 0 || i >= len(l) {
		return Value{}, false
	}
	return l[i], true
}

// Collect builds a List from a Go-idiomatic ...any argument list, the
// counterpart to the explicit facades. Every built-in numeric width,
// string, []byte, and pointer-like kind (pointer, slice, map, chan, func,
// unsafe.Pointer) is recognized; anything else degrades to the zero
// Value rather than panicking, matching the engine's no-error-channel
// design (spec §7).
func Collect(args ...any) List {
	list := make(List, len(args))
	for i, a := range args {
		list[i] = toValue(a)
	}
	return list
}

func toValue(a any) Value {
	switch v := a.(type) {
	case int:
		return Int(int64(v))
	case int8:
		return Int(int64(v))
	case int16:
		return Int(int64(v))
	case int32:
		return Int(int64(v))
	case int64:
		return Int(v)
	case uint:
		return Uint(uint64(v))
	case uint8:
		return Uint(uint64(v))
	case uint16:
		return Uint(uint64(v))
	case uint32:
		return Uint(uint64(v))
	case uint64:
		return Uint(v)
	case uintptr:
		return Pointer(v)
	case float32:
		return Float(float64(v))
	case float64:
		return Float(v)
	case string:
		return Str(v)
	case []byte:
		return Str(string(v))
	case stringer:
		return Str(v.String())
	}

	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Ptr, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice:
		if rv.IsNil() {
			return Pointer(0)
		}
		return Pointer(rv.Pointer())
	}
	return Value{}
}

// stringer mirrors fmt.Stringer without importing the fmt package, which
// this allocation-hostile engine otherwise avoids entirely.
type stringer interface {
	String() string
}
