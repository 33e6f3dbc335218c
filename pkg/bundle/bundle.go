package bundle

import (
	"fmt"
	"strings"
)

// Bundle is the full set of translated values for one language: a tree of
// string leaves and string-sequence leaves addressed by dotted keys.
// Bundles are immutable once loaded; the store replaces whole entries
// rather than mutating them.
type Bundle map[string]any

// Lookup resolves a dotted key against the bundle tree.
//
// The key is split on "." and walked segment by segment. If a segment is
// missing, an intermediate value is not a map, or the terminal value is
// empty, Lookup returns fallback when it is non-empty, otherwise the key
// itself. The raw key doubles as a highly visible missing-translation
// signal. Otherwise the resolved value is returned unchanged, whether it
// is a string or a sequence.
func (b Bundle) Lookup(key, fallback string) any {
	miss := key
	if fallback != "" {
		miss = fallback
	}
	if key == "" {
		return miss
	}

	var node any = map[string]any(b)
	for _, segment := range strings.Split(key, ".") {
		// Decoded bundles nest as map[string]any; hand-built ones may nest
		// Bundle values directly.
		var m map[string]any
		switch t := node.(type) {
		case map[string]any:
			m = t
		case Bundle:
			m = map[string]any(t)
		default:
			return miss
		}
		var ok bool
		if node, ok = m[segment]; !ok {
			return miss
		}
	}

	switch v := node.(type) {
	case nil:
		return miss
	case string:
		if v == "" {
			return miss
		}
		return v
	default:
		return node
	}
}

// String resolves a dotted key to a string value. Non-string values
// (including sequences) fall back the same way a missing key does.
func (b Bundle) String(key, fallback string) string {
	if s, ok := b.Lookup(key, fallback).(string); ok {
		return s
	}
	if fallback != "" {
		return fallback
	}
	return key
}

// List resolves a dotted key to an ordered sequence of strings.
// Returns false when the key is missing or the value is not a sequence,
// so callers can leave existing content untouched.
func (b Bundle) List(key string) ([]string, bool) {
	switch v := b.Lookup(key, "").(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprintf("%v", item))
			}
		}
		return out, true
	default:
		return nil, false
	}
}
