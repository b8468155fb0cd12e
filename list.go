package jdoc

import "strconv"

// ListPaths flattens the tree into a map from reconstructed path
// strings to their leaf values. Only scalars terminate a branch:
// containers are never emitted themselves. An explicit null under an
// object key is a visible leaf, while a null array slot is treated as
// structural padding and skipped, so sparse-array filler never shows
// up in the listing.
func (d *Document) ListPaths() map[string]*Value {
	out := make(map[string]*Value)
	listObject(d.root, "", out)
	return out
}

func listObject(obj *Value, prefix string, out map[string]*Value) {
	for _, k := range obj.keys {
		p := k
		if prefix != "" {
			p = prefix + ":" + k
		}
		child := obj.o[k]
		switch child.t {
		case TypeObject:
			listObject(child, p, out)
		case TypeArray:
			listArray(child, p, out)
		default:
			out[p] = child
		}
	}
}

func listArray(arr *Value, prefix string, out map[string]*Value) {
	for i, el := range arr.a {
		p := prefix + "[" + strconv.Itoa(i) + "]"
		switch el.t {
		case TypeObject:
			listObject(el, p, out)
		case TypeArray:
			// Nested arrays can only enter the tree through bulk
			// decoding; their paths are listed even though the
			// path grammar cannot address them back.
			listArray(el, p, out)
		case TypeNull:
			// array padding
		default:
			out[p] = el
		}
	}
}
