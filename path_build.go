package jdoc

import (
	"strconv"
	"strings"
)

// JoinPath joins literal segments with the ':' separator, skipping
// empty ones. Segments are used verbatim: the path grammar has no
// escape syntax, so keys containing ':' or '[' cannot be addressed and
// are not rewritten here.
// Example: JoinPath("user", "addresses[0]", "city") -> "user:addresses[0]:city".
func JoinPath(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ":")
}

// IndexedSegment formats an array-access segment.
// Example: IndexedSegment("addresses", 2) -> "addresses[2]".
func IndexedSegment(key string, index int) string {
	return key + "[" + strconv.Itoa(index) + "]"
}
