package support

import (
	"reflect"

	"github.com/hasbyte1/go-fluent/arr"
)

// This file contains package-level generic functions for operations that
// change the value type of an OrderedMap or need a tighter constraint on it
// than the type itself carries.
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions. They compose with method
// chains:
//
//	lengths := support.Map(
//	    support.List("go", "php", "rust").DropWhere(func(s string, _ int) bool { return s == "php" }),
//	    func(s string, _ int) int { return len(s) },
//	) // → {0: 2, 2: 4}

// Map applies fn(value, key) to every pair and returns a new map with the
// same keys, in the same order, holding the results.
func Map[K comparable, V, U any](m *OrderedMap[K, V], fn func(V, K) U) *OrderedMap[K, U] {
	out := withCapacity[K, U](len(m.keys))
	for _, k := range m.keys {
		out.keys = append(out.keys, k)
		out.values[k] = fn(m.values[k], k)
	}
	return out
}

// Reduce folds the values of m into a single value of type U.
//
//	total := support.Reduce(support.List(1, 2, 3),
//	    func(acc, n, _ int) int { return acc + n }, 0)
func Reduce[K comparable, V, U any](m *OrderedMap[K, V], fn func(U, V, K) U, initial U) U {
	result := initial
	for _, k := range m.keys {
		result = fn(result, m.values[k], k)
	}
	return result
}

// Contains reports whether any value of m equals value under Go's ==.
//
// When V is an interface type and value holds something == cannot compare
// (a slice, a map, a func), values are compared with reflect.DeepEqual
// instead of panicking.
func Contains[K, V comparable](m *OrderedMap[K, V], value V) bool {
	equal := func(v V) bool { return v == value }
	if rv := reflect.ValueOf(any(value)); rv.IsValid() && !rv.Comparable() {
		equal = func(v V) bool { return reflect.DeepEqual(v, value) }
	}
	for _, k := range m.keys {
		if equal(m.values[k]) {
			return true
		}
	}
	return false
}

// Append stores value in place under the next integer key: one more than
// the largest existing key, or 0 when m is empty. It returns the key used.
//
// This is the Go spelling of PHP's `$list[] = $value`.
func Append[V any](m *OrderedMap[int, V], value V) int {
	next := 0
	for i, k := range m.keys {
		if i == 0 || k >= next {
			next = k + 1
		}
	}
	m.put(next, value)
	return next
}

// Group is one partition produced by [Groups]: the shared group value and
// the mapped members in encounter order.
type Group[G comparable, U any] struct {
	Name   G
	Values []U
}

// Groups partitions the values of m by the value keyFn extracts, maps every
// member through mapper and returns one [Group] per distinct key.
//
// Groups appear in first-seen order and members in encounter order. The
// result is a list (re-indexed 0..n-1), unlike [OrderedMap.DropWhere] which
// keeps the original keys.
func Groups[K comparable, V any, G comparable, U any](m *OrderedMap[K, V], keyFn func(V) G, mapper func(V) U) *OrderedMap[int, Group[G, U]] {
	index := make(map[G]int)
	groups := make([]Group[G, U], 0)
	for _, k := range m.keys {
		v := m.values[k]
		g := keyFn(v)
		i, seen := index[g]
		if !seen {
			i = len(groups)
			index[g] = i
			groups = append(groups, Group[G, U]{Name: g})
		}
		groups[i].Values = append(groups[i].Values, mapper(v))
	}
	return List(groups...)
}

// GroupBy is the record-producing form of [Groups]. Every group becomes a
// map[string]any record {nameField: group value, valuesField: []U}.
//
// Field names may use dot notation ("meta.name"), in which case the record
// is nested accordingly.
//
//	rows := support.List(
//	    map[string]any{"g": 1, "v": "a"},
//	    map[string]any{"g": 2, "v": "b"},
//	    map[string]any{"g": 1, "v": "c"},
//	)
//	support.GroupBy(rows, support.ByField[map[string]any]("g"),
//	    support.ByField[map[string]any]("v"), "name", "values")
//	// → [{name: 1, values: [a c]}, {name: 2, values: [b]}]
func GroupBy[K comparable, V any, G comparable, U any](
	m *OrderedMap[K, V],
	keyFn func(V) G,
	mapper func(V) U,
	nameField, valuesField string,
) *OrderedMap[int, map[string]any] {
	return Map(Groups(m, keyFn, mapper), func(g Group[G, U], _ int) map[string]any {
		record := make(map[string]any, 2)
		arr.Set(record, nameField, g.Name)
		arr.Set(record, valuesField, g.Values)
		return record
	})
}

// ByField returns an extractor that reads the dot-notation path from a
// record value (a map[string]any or any [arr.Keyed] such as an
// *OrderedMap[string, any]). Missing paths yield nil.
//
// The extracted value is used as a map key by [Groups] and [GroupBy], so it
// must be comparable at runtime.
func ByField[V any](path string) func(V) any {
	return func(v V) any { return arr.Get(v, path) }
}
