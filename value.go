package jdoc

import (
	"math"
	"strconv"
)

// ValueType represents the kind of value held by a tree node.
type ValueType uint8

const (
	TypeUndefined ValueType = iota
	TypeNull
	TypeBool
	TypeInt
	TypeFloat
	TypeString
	TypeArray
	TypeObject
)

// String returns the name of the value type.
func (t ValueType) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	default:
		return "undefined"
	}
}

// Value is the single node type of a document tree. Scalars and
// containers share it, so traversal code switches exhaustively on
// Type(). Object nodes remember key insertion order.
type Value struct {
	t    ValueType
	b    bool
	i    int64
	f    float64
	s    string
	a    []*Value
	keys []string
	o    map[string]*Value
}

// NewNull returns a null node.
func NewNull() *Value { return &Value{t: TypeNull} }

// NewBool returns a boolean node.
func NewBool(b bool) *Value { return &Value{t: TypeBool, b: b} }

// NewInt returns an integer node.
func NewInt(i int64) *Value { return &Value{t: TypeInt, i: i} }

// NewFloat returns a floating-point node.
func NewFloat(f float64) *Value { return &Value{t: TypeFloat, f: f} }

// NewString returns a string node.
func NewString(s string) *Value { return &Value{t: TypeString, s: s} }

// NewArray returns an empty array node.
func NewArray() *Value { return &Value{t: TypeArray} }

// NewObject returns an empty object node.
func NewObject() *Value {
	return &Value{t: TypeObject, o: make(map[string]*Value)}
}

// Type reports the node's kind. A nil receiver is TypeUndefined.
func (v *Value) Type() ValueType {
	if v == nil {
		return TypeUndefined
	}
	return v.t
}

// Exists reports whether the node holds a value, including explicit null.
func (v *Value) Exists() bool {
	return v != nil && v.t != TypeUndefined
}

// IsNull reports whether the node holds an explicit null.
func (v *Value) IsNull() bool {
	return v != nil && v.t == TypeNull
}

// Bool returns the node as a bool. Strings are parsed, numbers are
// true when non-zero. Everything else is false.
func (v *Value) Bool() bool {
	if v == nil {
		return false
	}
	switch v.t {
	case TypeBool:
		return v.b
	case TypeInt:
		return v.i != 0
	case TypeFloat:
		return v.f != 0
	case TypeString:
		b, _ := strconv.ParseBool(v.s)
		return b
	default:
		return false
	}
}

// Int returns the node as an int64, parsing strings and truncating
// floats. Non-numeric nodes return 0.
func (v *Value) Int() int64 {
	if v == nil {
		return 0
	}
	switch v.t {
	case TypeInt:
		return v.i
	case TypeFloat:
		return int64(v.f)
	case TypeBool:
		if v.b {
			return 1
		}
		return 0
	case TypeString:
		if i, err := strconv.ParseInt(v.s, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(v.s, 64); err == nil {
			return int64(f)
		}
		return 0
	default:
		return 0
	}
}

// Float returns the node as a float64. Non-numeric nodes return 0.
func (v *Value) Float() float64 {
	if v == nil {
		return 0
	}
	switch v.t {
	case TypeFloat:
		return v.f
	case TypeInt:
		return float64(v.i)
	case TypeBool:
		if v.b {
			return 1
		}
		return 0
	case TypeString:
		f, _ := strconv.ParseFloat(v.s, 64)
		return f
	default:
		return 0
	}
}

// String returns the node as text: strings verbatim, numbers and bools
// formatted, containers as compact JSON. Null and undefined are "".
func (v *Value) String() string {
	if v == nil {
		return ""
	}
	switch v.t {
	case TypeString:
		return v.s
	case TypeInt:
		return strconv.FormatInt(v.i, 10)
	case TypeFloat:
		return formatFloat(v.f)
	case TypeBool:
		return strconv.FormatBool(v.b)
	case TypeArray, TypeObject:
		return string(appendValue(nil, v))
	default:
		return ""
	}
}

// Len returns the element count for arrays and the key count for
// objects, 0 otherwise.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.t {
	case TypeArray:
		return len(v.a)
	case TypeObject:
		return len(v.keys)
	default:
		return 0
	}
}

// Keys returns a copy of an object's keys in insertion order, nil for
// any other kind.
func (v *Value) Keys() []string {
	if v == nil || v.t != TypeObject {
		return nil
	}
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}

// Index returns the i-th element of an array, or nil when out of range
// or not an array.
func (v *Value) Index(i int) *Value {
	if v == nil || v.t != TypeArray || i < 0 || i >= len(v.a) {
		return nil
	}
	return v.a[i]
}

// Field returns the named entry of an object, or nil when absent or
// not an object.
func (v *Value) Field(key string) *Value {
	if v == nil || v.t != TypeObject {
		return nil
	}
	return v.o[key]
}

// Interface exports the subtree as plain Go values: nil, bool, int64,
// float64, string, []any, and map[string]any. Object key order is not
// representable in a Go map and is lost here; use JSON or YAML output
// when order matters.
func (v *Value) Interface() any {
	if v == nil {
		return nil
	}
	switch v.t {
	case TypeBool:
		return v.b
	case TypeInt:
		return v.i
	case TypeFloat:
		return v.f
	case TypeString:
		return v.s
	case TypeArray:
		out := make([]any, len(v.a))
		for i, el := range v.a {
			out[i] = el.Interface()
		}
		return out
	case TypeObject:
		out := make(map[string]any, len(v.keys))
		for _, k := range v.keys {
			out[k] = v.o[k].Interface()
		}
		return out
	default:
		return nil
	}
}

// field returns the entry for key; nil when absent. Caller guarantees
// the receiver is an object.
func (v *Value) field(key string) *Value {
	return v.o[key]
}

// setField inserts or replaces an object entry. A replaced key keeps
// its original position in the order.
func (v *Value) setField(key string, child *Value) {
	if _, ok := v.o[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.o[key] = child
}

// deleteField removes an object entry, reporting whether it was present.
func (v *Value) deleteField(key string) bool {
	if _, ok := v.o[key]; !ok {
		return false
	}
	delete(v.o, key)
	for i, k := range v.keys {
		if k == key {
			v.keys = append(v.keys[:i], v.keys[i+1:]...)
			break
		}
	}
	return true
}

// grow pads an array with nulls until it holds at least n elements.
// Arrays only ever grow; nothing shrinks them except Delete.
func (v *Value) grow(n int) {
	for len(v.a) < n {
		v.a = append(v.a, NewNull())
	}
}

func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
