package support

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

// OrderedMap is a generic, immutable-by-default ordered container of unique
// keys mapped to values.
//
// Insertion order is significant: iteration, [OrderedMap.First],
// [OrderedMap.Last] and JSON encoding all follow it. Every method that
// transforms the map returns a *new* OrderedMap and leaves the receiver
// unchanged. The only mutators are [OrderedMap.Set], [OrderedMap.Unset] and
// the package-level [Append], which mirror PHP's indexed assignment.
//
// # Creating a map
//
//	m := support.List("a", "b", "c")          // keys 0, 1, 2
//	m := support.FromPairs(support.Pair[string, int]{Key: "x", Value: 1})
//	m := support.New[string, int]()
//
// # Lists
//
// A map whose keys are exactly 0..n-1 in order is a "list". [List],
// [OrderedMap.Keys], [OrderedMap.Values], [Text.Split] and [GroupBy] all
// produce lists. [OrderedMap.DropWhere] and [OrderedMap.Filter] keep the
// original keys, so their result is generally not a list.
//
// # Laravel equivalents
//
// Callbacks receive (value, key), matching Laravel's Collection callbacks.
// Operations that change the value type (Map to U, GroupBy, Reduce) are
// package-level functions because methods cannot introduce type parameters.
type OrderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates an empty OrderedMap.
func New[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{values: make(map[K]V)}
}

// Empty is an alias for [New].
func Empty[K comparable, V any]() *OrderedMap[K, V] { return New[K, V]() }

// List creates a list keyed 0..n-1 from the given values (copied).
func List[V any](values ...V) *OrderedMap[int, V] {
	m := withCapacity[int, V](len(values))
	for i, v := range values {
		m.keys = append(m.keys, i)
		m.values[i] = v
	}
	return m
}

// FromPairs creates an OrderedMap from pairs in the given order.
// A repeated key keeps its first position and takes the last value.
func FromPairs[K comparable, V any](pairs ...Pair[K, V]) *OrderedMap[K, V] {
	m := withCapacity[K, V](len(pairs))
	for _, p := range pairs {
		m.put(p.Key, p.Value)
	}
	return m
}

func withCapacity[K comparable, V any](n int) *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		keys:   make([]K, 0, n),
		values: make(map[K]V, n),
	}
}

// put writes key/value, appending key when it is new.
func (m *OrderedMap[K, V]) put(key K, value V) {
	if m.values == nil {
		m.values = make(map[K]V)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of pairs.
func (m *OrderedMap[K, V]) Count() int { return len(m.keys) }

// IsEmpty reports whether the map holds no pairs.
func (m *OrderedMap[K, V]) IsEmpty() bool { return len(m.keys) == 0 }

// IsNotEmpty reports whether the map holds at least one pair.
func (m *OrderedMap[K, V]) IsNotEmpty() bool { return len(m.keys) > 0 }

// Get returns the value stored under key, or the zero value of V when the
// key is absent. It never fails; use [OrderedMap.Lookup] to tell a missing
// key from a stored zero value.
func (m *OrderedMap[K, V]) Get(key K) V {
	return m.values[key]
}

// Lookup returns the value stored under key together with a presence flag.
func (m *OrderedMap[K, V]) Lookup(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// At returns the pair at position i in insertion order.
// Returns zero values and false when i is out of range.
func (m *OrderedMap[K, V]) At(i int) (K, V, bool) {
	var (
		zk K
		zv V
	)
	if i < 0 || i >= len(m.keys) {
		return zk, zv, false
	}
	k := m.keys[i]
	return k, m.values[k], true
}

// ContainsKey reports whether key is present, regardless of its value.
func (m *OrderedMap[K, V]) ContainsKey(key K) bool {
	_, ok := m.values[key]
	return ok
}

// ContainsFunc reports whether at least one value satisfies fn.
// For plain equality on comparable values use the package-level [Contains].
func (m *OrderedMap[K, V]) ContainsFunc(fn func(V) bool) bool {
	for _, k := range m.keys {
		if fn(m.values[k]) {
			return true
		}
	}
	return false
}

// First returns the first value in insertion order.
// On an empty map it returns the zero value of V and false.
func (m *OrderedMap[K, V]) First() (V, bool) {
	var zero V
	if len(m.keys) == 0 {
		return zero, false
	}
	return m.values[m.keys[0]], true
}

// Last returns the last value in insertion order.
// On an empty map it returns the zero value of V and false.
func (m *OrderedMap[K, V]) Last() (V, bool) {
	var zero V
	if len(m.keys) == 0 {
		return zero, false
	}
	return m.values[m.keys[len(m.keys)-1]], true
}

// Pairs returns a copy of the contents as a slice of pairs.
func (m *OrderedMap[K, V]) Pairs() []Pair[K, V] {
	out := make([]Pair[K, V], len(m.keys))
	for i, k := range m.keys {
		out[i] = Pair[K, V]{Key: k, Value: m.values[k]}
	}
	return out
}

// All returns an iterator over the pairs in insertion order. The pairs are
// read when iteration starts; Set and Unset calls made while iterating do
// not change what is yielded.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range m.Pairs() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// In-place mutation
// ─────────────────────────────────────────────────────────────────────────────

// Set stores value under key in place. An existing key keeps its position;
// a new key is appended.
func (m *OrderedMap[K, V]) Set(key K, value V) {
	m.put(key, value)
}

// Unset removes key in place. Removing an absent key is a no-op.
func (m *OrderedMap[K, V]) Unset(key K) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	if i := slices.Index(m.keys, key); i >= 0 {
		m.keys = slices.Concat(m.keys[:i], m.keys[i+1:])
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// ForEach calls fn(value, key) for every pair in insertion order and returns
// m itself, so side-effecting steps can sit inside a chain.
//
// Like PHP's foreach, it walks a snapshot: fn may Set or Unset entries of m
// without changing which pairs are visited.
func (m *OrderedMap[K, V]) ForEach(fn func(V, K)) *OrderedMap[K, V] {
	for _, p := range m.Pairs() {
		fn(p.Value, p.Key)
	}
	return m
}

// Tap calls fn(m) for side-effects (e.g. logging or debugging) and returns
// m unchanged for further chaining.
func (m *OrderedMap[K, V]) Tap(fn func(*OrderedMap[K, V])) *OrderedMap[K, V] {
	fn(m)
	return m
}

// Dump prints the map to stdout and returns m for chaining.
func (m *OrderedMap[K, V]) Dump() *OrderedMap[K, V] {
	fmt.Println(m.String())
	return m
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a new map with the same keys in the same order, each value
// replaced by fn(value, key).
//
// To change the value type, use the package-level [Map] function instead.
func (m *OrderedMap[K, V]) Map(fn func(V, K) V) *OrderedMap[K, V] {
	return Map(m, fn)
}

// Filter returns a new map with only the pairs for which fn(value, key)
// returns true. Keys are preserved, not re-indexed.
func (m *OrderedMap[K, V]) Filter(fn func(V, K) bool) *OrderedMap[K, V] {
	out := withCapacity[K, V](len(m.keys))
	for _, k := range m.keys {
		if v := m.values[k]; fn(v, k) {
			out.keys = append(out.keys, k)
			out.values[k] = v
		}
	}
	return out
}

// DropWhere returns a new map without the pairs for which fn(value, key)
// returns true. It is the complement of [OrderedMap.Filter]: order and keys
// of the retained pairs are preserved.
func (m *OrderedMap[K, V]) DropWhere(fn func(V, K) bool) *OrderedMap[K, V] {
	return m.Filter(func(v V, k K) bool { return !fn(v, k) })
}

// Keys returns the keys as a new list.
func (m *OrderedMap[K, V]) Keys() *OrderedMap[int, K] {
	return List(m.keys...)
}

// Values returns the values as a new list, discarding the keys.
func (m *OrderedMap[K, V]) Values() *OrderedMap[int, V] {
	out := withCapacity[int, V](len(m.keys))
	for i, k := range m.keys {
		out.keys = append(out.keys, i)
		out.values[i] = m.values[k]
	}
	return out
}

// BeforeLast returns a new map holding every pair except the last one.
// The remaining keys are unchanged. An empty map yields an empty map.
func (m *OrderedMap[K, V]) BeforeLast() *OrderedMap[K, V] {
	if len(m.keys) == 0 {
		return New[K, V]()
	}
	out := withCapacity[K, V](len(m.keys) - 1)
	for _, k := range m.keys[:len(m.keys)-1] {
		out.keys = append(out.keys, k)
		out.values[k] = m.values[k]
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// String helpers
// ─────────────────────────────────────────────────────────────────────────────

// JoinToString concatenates the textual form of every value, separated by
// separator[0] (default ","), and returns the result as a [Text].
//
// Strings, [Text], [fmt.Stringer], errors, integers, floats and booleans
// have a natural textual form; nil becomes the empty string and any other
// value is formatted with fmt.Sprint. Use [OrderedMap.Implode] to supply an
// explicit formatter.
func (m *OrderedMap[K, V]) JoinToString(separator ...string) Text {
	sep := ","
	if len(separator) > 0 {
		sep = separator[0]
	}
	return m.Implode(sep, func(v V) string { return textOf(v) })
}

// Implode joins all values into a Text using sep, converting each value
// with fn.
func (m *OrderedMap[K, V]) Implode(sep string, fn func(V) string) Text {
	parts := make([]string, len(m.keys))
	for i, k := range m.keys {
		parts[i] = fn(m.values[k])
	}
	return Of(strings.Join(parts, sep))
}

func textOf(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case Text:
		return x.value
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	default:
		return fmt.Sprint(x)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

// When calls fn(m) if condition is true and returns the result.
// Otherwise returns m unchanged.
func (m *OrderedMap[K, V]) When(condition bool, fn func(*OrderedMap[K, V]) *OrderedMap[K, V]) *OrderedMap[K, V] {
	if condition {
		return fn(m)
	}
	return m
}

// Unless calls fn(m) if condition is false; otherwise returns m.
func (m *OrderedMap[K, V]) Unless(condition bool, fn func(*OrderedMap[K, V]) *OrderedMap[K, V]) *OrderedMap[K, V] {
	return m.When(!condition, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Encoding
// ─────────────────────────────────────────────────────────────────────────────

// isList reports whether the keys are exactly 0..n-1 in order.
func (m *OrderedMap[K, V]) isList() bool {
	for i, k := range m.keys {
		n, ok := any(k).(int)
		if !ok || n != i {
			return false
		}
	}
	return true
}

// MarshalJSON encodes a list as a JSON array and any other map as a JSON
// object whose members follow insertion order. Object keys are the fmt
// representation of K.
func (m *OrderedMap[K, V]) MarshalJSON() ([]byte, error) {
	if m.isList() {
		vals := make([]V, len(m.keys))
		for i, k := range m.keys {
			vals[i] = m.values[k]
		}
		return json.Marshal(vals)
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(fmt.Sprint(k))
		if err != nil {
			return nil, fmt.Errorf("support: encoding key %v: %w", k, err)
		}
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, fmt.Errorf("support: encoding value for key %v: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ToJSON is an alias for [OrderedMap.MarshalJSON].
func (m *OrderedMap[K, V]) ToJSON() ([]byte, error) { return m.MarshalJSON() }

// String returns the JSON representation of the map.
// It implements [fmt.Stringer].
func (m *OrderedMap[K, V]) String() string {
	b, err := m.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", m.Pairs())
	}
	return string(b)
}

// LogValue renders the map as an ordered slog group, so it can be passed
// directly as a structured logging attribute.
func (m *OrderedMap[K, V]) LogValue() slog.Value {
	attrs := make([]slog.Attr, len(m.keys))
	for i, k := range m.keys {
		attrs[i] = slog.Any(fmt.Sprint(k), m.values[k])
	}
	return slog.GroupValue(attrs...)
}
