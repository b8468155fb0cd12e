package jdoc

import "errors"

// ErrCyclicValue is returned by Set when the stored value already
// contains the container it would be stored into.
var ErrCyclicValue = errors.New("value contains its own destination")

// Set stores value at path, building the tree as it goes. Missing
// intermediate nodes are created; an existing node whose kind does not
// match the container the path demands is discarded wholesale and
// replaced with a fresh empty container of the required kind. Array
// indices past the current length pad the gap with nulls, and arrays
// only ever grow here.
//
// value may be any Go value convertible to the tree model: nil, bool,
// string, integers, floats, []any, map[string]any (keys sorted for
// determinism), *Value, or anything encodable by encoding/json. A
// *Value is stored by reference, not copied; storing a live node into
// its own subtree would knot the tree into a cycle and is rejected
// with ErrCyclicValue.
//
// Path grammar violations are returned to the caller.
func (d *Document) Set(path string, value any) error {
	segs, err := parsePath(path)
	if err != nil {
		return err
	}
	v, err := toValue(value)
	if err != nil {
		return err
	}
	if (v.t == TypeObject || v.t == TypeArray) && d.wouldCycle(segs, v) {
		return ErrCyclicValue
	}
	cur := d.root
	for i, seg := range segs {
		last := i == len(segs)-1
		if !seg.isArray {
			if last {
				cur.setField(seg.key, v)
				return nil
			}
			cur = ensureObjectField(cur, seg.key)
			continue
		}
		arr := cur.field(seg.key)
		if arr == nil || arr.t != TypeArray {
			arr = NewArray()
			cur.setField(seg.key, arr)
		}
		arr.grow(seg.index + 1)
		if last {
			arr.a[seg.index] = v
			return nil
		}
		// The next segment starts with a key access, so this
		// element must be an object.
		elem := arr.a[seg.index]
		if elem.t != TypeObject {
			elem = NewObject()
			arr.a[seg.index] = elem
		}
		cur = elem
	}
	return nil
}

// ensureObjectField returns the object stored at key, replacing
// whatever else was there with a fresh empty object.
func ensureObjectField(parent *Value, key string) *Value {
	child := parent.field(key)
	if child == nil || child.t != TypeObject {
		child = NewObject()
		parent.setField(key, child)
	}
	return child
}

// wouldCycle reports whether storing v at the path would make the tree
// reach back into itself: v's subtree holding the destination slot's
// container, or any container above it. The node currently occupying
// the slot is not an ancestor, so writing a node back to its own
// position stays legal.
func (d *Document) wouldCycle(segs []segment, v *Value) bool {
	ancestors := map[*Value]bool{d.root: true}
	cur := d.root
	for i, seg := range segs {
		last := i == len(segs)-1
		if cur.t != TypeObject {
			break
		}
		child := cur.field(seg.key)
		if child == nil {
			break
		}
		if seg.isArray {
			if child.t != TypeArray {
				break
			}
			ancestors[child] = true
			if seg.index >= len(child.a) {
				break
			}
			child = child.a[seg.index]
		}
		if last {
			break
		}
		ancestors[child] = true
		cur = child
	}
	return subtreeContains(v, ancestors)
}

func subtreeContains(v *Value, targets map[*Value]bool) bool {
	if targets[v] {
		return true
	}
	switch v.t {
	case TypeArray:
		for _, el := range v.a {
			if subtreeContains(el, targets) {
				return true
			}
		}
	case TypeObject:
		for _, k := range v.keys {
			if subtreeContains(v.o[k], targets) {
				return true
			}
		}
	}
	return false
}
