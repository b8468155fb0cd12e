package jdoc

// Get returns the value at path, or nil when any intermediate key is
// missing, an index is out of range, or a non-container sits in the
// way. An explicit null stored at the path is returned as a non-nil
// TypeNull node: presence is independent of value. Malformed paths
// return a grammar error.
func (d *Document) Get(path string) (*Value, error) {
	segs, err := parsePath(path)
	if err != nil {
		return nil, err
	}
	return descend(d.root, segs), nil
}

// Exists reports whether path resolves to a value, explicit null
// included. It is a safe predicate: malformed paths and failed
// navigation both report false rather than returning an error.
func (d *Document) Exists(path string) bool {
	segs, err := parsePath(path)
	if err != nil {
		return false
	}
	return descend(d.root, segs) != nil
}

// descend walks segments read-only from root, returning the resolved
// node or nil as soon as the walk cannot continue. An empty segment
// slice resolves to root itself.
func descend(root *Value, segs []segment) *Value {
	cur := root
	for _, seg := range segs {
		if cur == nil || cur.t != TypeObject {
			return nil
		}
		child := cur.field(seg.key)
		if child == nil {
			return nil
		}
		if seg.isArray {
			if child.t != TypeArray || seg.index >= len(child.a) {
				return nil
			}
			child = child.a[seg.index]
		}
		cur = child
	}
	return cur
}
