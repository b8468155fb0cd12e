package jdoc

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"unicode/utf16"

	"github.com/tidwall/gjson"
)

// ErrInvalidDocument wraps every construction failure; callers never
// see a raw decoder error type.
var ErrInvalidDocument = errors.New("invalid document")

// FromJSON builds a document from JSON text. Blank input yields an
// empty document. UTF-16 input is detected by its byte order mark and
// transcoded before decoding. Object key order is preserved, and
// numbers keep their narrowest exact form: integers that fit int64
// become TypeInt, everything else TypeFloat. The top level must be a
// JSON object.
func FromJSON(data []byte) (*Document, error) {
	data = normalizeEncoding(data)
	if len(bytes.TrimSpace(data)) == 0 {
		return New(), nil
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidDocument)
	}
	r := gjson.ParseBytes(data)
	if !r.IsObject() {
		return nil, fmt.Errorf("%w: top-level value must be an object", ErrInvalidDocument)
	}
	return &Document{root: fromResult(r)}, nil
}

// FromJSONString is FromJSON for string input.
func FromJSONString(s string) (*Document, error) {
	return FromJSON([]byte(s))
}

// fromResult converts a decoded gjson node into the tree model.
// Result.ForEach visits object members in document order, which is
// what keeps insertion order intact.
func fromResult(r gjson.Result) *Value {
	switch {
	case r.IsObject():
		obj := NewObject()
		r.ForEach(func(k, v gjson.Result) bool {
			obj.setField(k.String(), fromResult(v))
			return true
		})
		return obj
	case r.IsArray():
		arr := NewArray()
		r.ForEach(func(_, v gjson.Result) bool {
			arr.a = append(arr.a, fromResult(v))
			return true
		})
		return arr
	case r.Type == gjson.String:
		return NewString(r.Str)
	case r.Type == gjson.Number:
		if i, err := strconv.ParseInt(r.Raw, 10, 64); err == nil {
			return NewInt(i)
		}
		return NewFloat(r.Num)
	case r.Type == gjson.True:
		return NewBool(true)
	case r.Type == gjson.False:
		return NewBool(false)
	default:
		return NewNull()
	}
}

// normalizeEncoding strips a UTF-8 BOM and transcodes UTF-16 input
// (either byte order) to UTF-8.
func normalizeEncoding(data []byte) []byte {
	if len(data) >= 2 {
		if data[0] == 0xFE && data[1] == 0xFF {
			return utf16ToUTF8(data[2:], binary.BigEndian)
		}
		if data[0] == 0xFF && data[1] == 0xFE {
			return utf16ToUTF8(data[2:], binary.LittleEndian)
		}
	}
	return bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
}

func utf16ToUTF8(data []byte, order binary.ByteOrder) []byte {
	units := make([]uint16, 0, len(data)/2)
	for i := 0; i+1 < len(data); i += 2 {
		units = append(units, order.Uint16(data[i:]))
	}
	return []byte(string(utf16.Decode(units)))
}

// toValue converts a Go value into a tree node. Scalars and the plain
// container shapes convert directly; map keys are sorted so the
// resulting object order is deterministic. Anything else goes through
// encoding/json, which handles structs and named types and preserves
// struct field order.
func toValue(value any) (*Value, error) {
	switch x := value.(type) {
	case nil:
		return NewNull(), nil
	case *Value:
		if x == nil {
			return NewNull(), nil
		}
		return x, nil
	case bool:
		return NewBool(x), nil
	case string:
		return NewString(x), nil
	case int:
		return NewInt(int64(x)), nil
	case int8:
		return NewInt(int64(x)), nil
	case int16:
		return NewInt(int64(x)), nil
	case int32:
		return NewInt(int64(x)), nil
	case int64:
		return NewInt(x), nil
	case uint:
		return NewInt(int64(x)), nil
	case uint8:
		return NewInt(int64(x)), nil
	case uint16:
		return NewInt(int64(x)), nil
	case uint32:
		return NewInt(int64(x)), nil
	case uint64:
		return NewInt(int64(x)), nil
	case float32:
		return NewFloat(float64(x)), nil
	case float64:
		return NewFloat(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return NewInt(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("cannot convert %q to a number", x)
		}
		return NewFloat(f), nil
	case []any:
		arr := NewArray()
		for _, el := range x {
			v, err := toValue(el)
			if err != nil {
				return nil, err
			}
			arr.a = append(arr.a, v)
		}
		return arr, nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := NewObject()
		for _, k := range keys {
			v, err := toValue(x[k])
			if err != nil {
				return nil, err
			}
			obj.setField(k, v)
		}
		return obj, nil
	default:
		data, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("cannot convert value of type %T: %w", value, err)
		}
		return fromResult(gjson.ParseBytes(data)), nil
	}
}
