package jdoc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Path grammar errors. Set and the throwing form of Get return these;
// Exists and Delete swallow them and report false.
var (
	ErrEmptyPath            = errors.New("empty path")
	ErrInvalidPathSegment   = errors.New("invalid path segment")
	ErrEmptyArrayIndex      = errors.New("empty array index")
	ErrInvalidArrayIndex    = errors.New("invalid array index")
	ErrNegativeArrayIndex   = errors.New("negative array index")
	ErrMultipleArrayIndices = errors.New("multiple array indices in path segment")
)

// segment is one colon-delimited unit of a parsed path. It lives only
// for the duration of the call that parsed it.
type segment struct {
	key     string
	isArray bool
	index   int
}

// parsePath splits a path such as "user:addresses[0]:city" into
// segments. Empty parts from doubled, leading, or trailing colons are
// skipped, so "a::b" means "a:b". Keys are taken verbatim: whitespace
// is preserved and only ':' and '[' carry syntax. There is no escape
// mechanism for those two characters inside a key.
func parsePath(path string) ([]segment, error) {
	parts := strings.Split(path, ":")
	segs := make([]segment, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		seg, err := parseSegment(part)
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
	}
	if len(segs) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyPath, path)
	}
	return segs, nil
}

func parseSegment(part string) (segment, error) {
	open := strings.IndexByte(part, '[')
	if open < 0 {
		// No index syntax. A stray ']' has no structural meaning
		// without '[' and stays part of the key.
		return segment{key: part}, nil
	}
	if part[len(part)-1] != ']' {
		return segment{}, fmt.Errorf("%w: %q: bracket suffix must end the segment", ErrInvalidPathSegment, part)
	}
	if strings.Count(part, "[") > 1 {
		return segment{}, fmt.Errorf("%w: %q", ErrMultipleArrayIndices, part)
	}
	key := part[:open]
	if key == "" {
		return segment{}, fmt.Errorf("%w: %q: empty key", ErrInvalidPathSegment, part)
	}
	idx, err := parseIndex(part[open+1 : len(part)-1])
	if err != nil {
		return segment{}, fmt.Errorf("%w: %q", err, part)
	}
	return segment{key: key, isArray: true, index: idx}, nil
}

func parseIndex(raw string) (int, error) {
	if raw == "" {
		return 0, ErrEmptyArrayIndex
	}
	digits := raw
	negative := false
	if digits[0] == '-' {
		negative = true
		digits = digits[1:]
	}
	if digits == "" {
		return 0, ErrInvalidArrayIndex
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, ErrInvalidArrayIndex
		}
	}
	if negative {
		return 0, ErrNegativeArrayIndex
	}
	idx, err := strconv.Atoi(digits)
	if err != nil {
		return 0, ErrInvalidArrayIndex
	}
	return idx, nil
}
