package i18n

import "strings"

// unsafeSegments are path segments that must never resolve. In the
// JavaScript ecosystem this class of key reaches into object internals
// (prototype pollution); translation keys and parameter names can come
// from files or user-ish input, so the guard is kept here regardless of
// runtime.
var unsafeSegments = map[string]struct{}{
	"__proto__":   {},
	"constructor": {},
	"prototype":   {},
}

// NestedValue walks tree along the dot-separated path and returns the
// value found there. It never panics: any non-map intermediate, missing
// segment, or unsafe segment short-circuits to a miss.
func NestedValue(tree map[string]any, path string) (any, bool) {
	if tree == nil || path == "" {
		return nil, false
	}

	var current any = tree
	for segment := range strings.SplitSeq(path, ".") {
		if _, unsafe := unsafeSegments[segment]; unsafe {
			return nil, false
		}

		node, ok := asTree(current)
		if !ok {
			return nil, false
		}

		current, ok = node[segment]
		if !ok {
			return nil, false
		}
	}

	return current, true
}
