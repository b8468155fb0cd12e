// Package jdoc provides a mutable, dynamically typed JSON document
// addressed through compact string paths such as
// "user:addresses[0]:city". Colons descend into object keys and [n]
// selects zero-based array elements; setting through a missing or
// mismatched intermediate node creates or replaces it, and setting an
// array index past the end pads the gap with nulls.
//
// The API is two-tiered: Set and Get return path grammar errors, while
// Exists and Delete are safe predicates that degrade every failure to
// false.
package jdoc

// Document is a mutable JSON tree rooted at an object. It is
// exclusively owned and unsynchronized; callers that share one across
// goroutines must serialize access themselves.
type Document struct {
	root *Value
}

// New returns an empty document.
func New() *Document {
	return &Document{root: NewObject()}
}

// Root returns the document's root object node.
func (d *Document) Root() *Value {
	return d.root
}

// Clear discards all content, leaving an empty root object.
func (d *Document) Clear() {
	d.root = NewObject()
}

// Len returns the number of top-level keys.
func (d *Document) Len() int {
	return d.root.Len()
}

// GetMany resolves several paths at once. Entries for absent or
// malformed paths are nil.
func (d *Document) GetMany(paths ...string) []*Value {
	out := make([]*Value, len(paths))
	for i, p := range paths {
		v, err := d.Get(p)
		if err == nil {
			out[i] = v
		}
	}
	return out
}
