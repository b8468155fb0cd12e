package jdoc

import (
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/tidwall/pretty"
)

// EncodeOptions controls JSON output.
type EncodeOptions struct {
	// Indent is the indentation string. Empty means compact output.
	Indent string
	// SortKeys orders object keys lexically instead of by insertion.
	SortKeys bool
}

// JSON renders the document. A nil opts pretty-prints with two-space
// indentation, which is the default format; pass &EncodeOptions{} for
// compact output.
func (d *Document) JSON(opts *EncodeOptions) []byte {
	raw := appendValue(make([]byte, 0, 256), d.root)
	if opts == nil {
		return pretty.Pretty(raw)
	}
	if opts.Indent == "" && !opts.SortKeys {
		return raw
	}
	indent := opts.Indent
	if indent == "" {
		indent = "  "
	}
	out := pretty.PrettyOptions(raw, &pretty.Options{
		Indent:   indent,
		SortKeys: opts.SortKeys,
		Width:    80,
	})
	if opts.Indent == "" {
		out = pretty.Ugly(out)
	}
	return out
}

// Compact renders the document without whitespace.
func (d *Document) Compact() []byte {
	return d.JSON(&EncodeOptions{})
}

// String renders the document in the default pretty format.
func (d *Document) String() string {
	return string(d.JSON(nil))
}

// appendValue writes v as compact JSON, object keys in insertion
// order. NaN and infinities have no JSON form and degrade to null.
func appendValue(dst []byte, v *Value) []byte {
	switch v.Type() {
	case TypeBool:
		return strconv.AppendBool(dst, v.b)
	case TypeInt:
		return strconv.AppendInt(dst, v.i, 10)
	case TypeFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return append(dst, "null"...)
		}
		return strconv.AppendFloat(dst, v.f, 'g', -1, 64)
	case TypeString:
		return appendString(dst, v.s)
	case TypeArray:
		dst = append(dst, '[')
		for i, el := range v.a {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendValue(dst, el)
		}
		return append(dst, ']')
	case TypeObject:
		dst = append(dst, '{')
		for i, k := range v.keys {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendString(dst, k)
			dst = append(dst, ':')
			dst = appendValue(dst, v.o[k])
		}
		return append(dst, '}')
	default:
		return append(dst, "null"...)
	}
}

const hexDigits = "0123456789abcdef"

// appendString writes s as a quoted JSON string. Valid UTF-8 passes
// through unescaped, only the characters JSON requires escaping for
// are escaped, and invalid bytes become U+FFFD the same way
// encoding/json replaces them, so the output is always valid JSON.
func appendString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			switch {
			case c == '"' || c == '\\':
				dst = append(dst, '\\', c)
			case c == '\n':
				dst = append(dst, '\\', 'n')
			case c == '\r':
				dst = append(dst, '\\', 'r')
			case c == '\t':
				dst = append(dst, '\\', 't')
			case c < 0x20:
				dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
			default:
				dst = append(dst, c)
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			dst = append(dst, "\uFFFD"...)
			i++
			continue
		}
		dst = append(dst, s[i:i+size]...)
		i += size
	}
	return append(dst, '"')
}
