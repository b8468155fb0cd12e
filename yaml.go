package jdoc

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-yaml"
)

// FromYAML builds a document from YAML text. Mappings are decoded as
// ordered maps so key order survives the trip. Blank input yields an
// empty document; the top level must be a mapping.
func FromYAML(data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return New(), nil
	}
	var ms yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(data, &ms, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	root := NewObject()
	for _, item := range ms {
		v, err := fromYAMLValue(item.Value)
		if err != nil {
			return nil, err
		}
		root.setField(fmt.Sprint(item.Key), v)
	}
	return &Document{root: root}, nil
}

// YAML renders the document as YAML, object keys in insertion order.
func (d *Document) YAML() ([]byte, error) {
	return yaml.Marshal(toYAMLValue(d.root))
}

func fromYAMLValue(value any) (*Value, error) {
	switch x := value.(type) {
	case yaml.MapSlice:
		obj := NewObject()
		for _, item := range x {
			v, err := fromYAMLValue(item.Value)
			if err != nil {
				return nil, err
			}
			obj.setField(fmt.Sprint(item.Key), v)
		}
		return obj, nil
	case []any:
		arr := NewArray()
		for _, el := range x {
			v, err := fromYAMLValue(el)
			if err != nil {
				return nil, err
			}
			arr.a = append(arr.a, v)
		}
		return arr, nil
	default:
		return toValue(value)
	}
}

func toYAMLValue(v *Value) any {
	switch v.Type() {
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
			out[i] = toYAMLValue(el)
		}
		return out
	case TypeObject:
		ms := make(yaml.MapSlice, 0, len(v.keys))
		for _, k := range v.keys {
			ms = append(ms, yaml.MapItem{Key: k, Value: toYAMLValue(v.o[k])})
		}
		return ms
	default:
		return nil
	}
}
