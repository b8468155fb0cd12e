package jdoc

import (
	"encoding/json"
	"strconv"
)

// As resolves path and converts the result to T, trying in order: the
// value's own shape, numeric parse when T is numeric and the stored
// value is a string, stringification when T is a string and the stored
// value is numeric, and finally a structural re-decode through JSON
// for composite targets. Every failure along the chain, including a
// malformed or absent path, yields T's zero value. As never returns an
// error; use Get when failures matter.
func As[T any](d *Document, path string) T {
	var zero T
	v, err := d.Get(path)
	if err != nil || v == nil || v.t == TypeNull {
		return zero
	}
	out := zero
	switch p := any(&out).(type) {
	case *string:
		s, ok := asString(v)
		if !ok {
			return zero
		}
		*p = s
	case *bool:
		b, ok := asBool(v)
		if !ok {
			return zero
		}
		*p = b
	case *int:
		i, ok := asInt(v)
		if !ok {
			return zero
		}
		*p = int(i)
	case *int8:
		i, ok := asInt(v)
		if !ok {
			return zero
		}
		*p = int8(i)
	case *int16:
		i, ok := asInt(v)
		if !ok {
			return zero
		}
		*p = int16(i)
	case *int32:
		i, ok := asInt(v)
		if !ok {
			return zero
		}
		*p = int32(i)
	case *int64:
		i, ok := asInt(v)
		if !ok {
			return zero
		}
		*p = i
	case *uint:
		i, ok := asInt(v)
		if !ok || i < 0 {
			return zero
		}
		*p = uint(i)
	case *uint8:
		i, ok := asInt(v)
		if !ok || i < 0 {
			return zero
		}
		*p = uint8(i)
	case *uint16:
		i, ok := asInt(v)
		if !ok || i < 0 {
			return zero
		}
		*p = uint16(i)
	case *uint32:
		i, ok := asInt(v)
		if !ok || i < 0 {
			return zero
		}
		*p = uint32(i)
	case *uint64:
		i, ok := asInt(v)
		if !ok || i < 0 {
			return zero
		}
		*p = uint64(i)
	case *float32:
		f, ok := asFloat(v)
		if !ok {
			return zero
		}
		*p = float32(f)
	case *float64:
		f, ok := asFloat(v)
		if !ok {
			return zero
		}
		*p = f
	default:
		raw := appendValue(nil, v)
		if json.Unmarshal(raw, &out) != nil {
			return zero
		}
	}
	return out
}

func asString(v *Value) (string, bool) {
	switch v.t {
	case TypeString:
		return v.s, true
	case TypeInt:
		return strconv.FormatInt(v.i, 10), true
	case TypeFloat:
		return formatFloat(v.f), true
	case TypeBool:
		return strconv.FormatBool(v.b), true
	default:
		return "", false
	}
}

func asBool(v *Value) (bool, bool) {
	switch v.t {
	case TypeBool:
		return v.b, true
	case TypeString:
		b, err := strconv.ParseBool(v.s)
		return b, err == nil
	default:
		return false, false
	}
}

func asInt(v *Value) (int64, bool) {
	switch v.t {
	case TypeInt:
		return v.i, true
	case TypeFloat:
		return int64(v.f), true
	case TypeString:
		if i, err := strconv.ParseInt(v.s, 10, 64); err == nil {
			return i, true
		}
		if f, err := strconv.ParseFloat(v.s, 64); err == nil {
			return int64(f), true
		}
		return 0, false
	default:
		return 0, false
	}
}

func asFloat(v *Value) (float64, bool) {
	switch v.t {
	case TypeFloat:
		return v.f, true
	case TypeInt:
		return float64(v.i), true
	case TypeString:
		f, err := strconv.ParseFloat(v.s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
