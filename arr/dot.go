package arr

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers for nested records
//
// A record is either a map[string]any or any value implementing [Keyed]
// (support.OrderedMap[string, any] does). Paths are dot-separated segments,
// mirroring Laravel's data_get / Arr::get:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//
//	Get(m, "user.address.city")  → "London"
//	Set(m, "user.age", 30)
//	Has(m, "user.name")          → true
//	Forget(m, "user.address")
// ─────────────────────────────────────────────────────────────────────────────

// Keyed is implemented by record types other than map[string]any that can
// be traversed with dot notation.
type Keyed interface {
	Lookup(key string) (any, bool)
}

// lookup reads one segment from a record.
func lookup(target any, seg string) (any, bool) {
	switch r := target.(type) {
	case map[string]any:
		v, ok := r[seg]
		return v, ok
	case Keyed:
		return r.Lookup(seg)
	default:
		return nil, false
	}
}

// Get retrieves a value from target using a dot-notation path.
// Returns def[0] (or nil) when the path does not resolve.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(target any, path string, def ...any) any {
	current := target
	for _, seg := range strings.Split(path, ".") {
		val, ok := lookup(current, seg)
		if !ok {
			if len(def) > 0 {
				return def[0]
			}
			return nil
		}
		current = val
	}
	return current
}

// Has reports whether the dot-notation path resolves in target, even when
// the value found there is nil.
func Has(target any, path string) bool {
	current := target
	for _, seg := range strings.Split(path, ".") {
		val, ok := lookup(current, seg)
		if !ok {
			return false
		}
		current = val
	}
	return true
}

// Set writes value into m at the dot-notation path, creating intermediate
// maps as needed. A non-map value in the way is replaced.
//
//	Set(m, "user.address.postcode", "EC1")
func Set(m map[string]any, path string, value any) {
	seg, rest, nested := strings.Cut(path, ".")
	if !nested {
		m[path] = value
		return
	}
	child, ok := m[seg].(map[string]any)
	if !ok {
		child = make(map[string]any)
		m[seg] = child
	}
	Set(child, rest, value)
}

// Forget removes the dot-notation path from m.
// Intermediate maps are not cleaned up.
func Forget(m map[string]any, path string) {
	seg, rest, nested := strings.Cut(path, ".")
	if !nested {
		delete(m, path)
		return
	}
	child, ok := m[seg].(map[string]any)
	if !ok {
		return
	}
	Forget(child, rest)
}
