package jdoc

// Delete removes the value at path, reporting whether anything was
// removed. Deleting an array index shifts all later elements down by
// one; deleting an object key drops it from the key order. Like
// Exists, Delete is safe: malformed paths and unresolvable parents
// report false instead of returning an error.
func (d *Document) Delete(path string) bool {
	segs, err := parsePath(path)
	if err != nil {
		return false
	}
	last := segs[len(segs)-1]
	parent := descend(d.root, segs[:len(segs)-1])
	if parent == nil || parent.t != TypeObject {
		return false
	}
	if !last.isArray {
		return parent.deleteField(last.key)
	}
	arr := parent.field(last.key)
	if arr == nil || arr.t != TypeArray || last.index >= len(arr.a) {
		return false
	}
	arr.a = append(arr.a[:last.index], arr.a[last.index+1:]...)
	return true
}
