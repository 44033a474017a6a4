package support

import "iter"

// Enumerable is the read-only interface satisfied by [OrderedMap][K, V].
//
// Accept Enumerable in your own functions so that callers can pass any
// ordered container without depending on the concrete *OrderedMap type.
type Enumerable[K comparable, V any] interface {
	// All returns an iterator over the pairs in insertion order.
	All() iter.Seq2[K, V]

	// Count returns the number of pairs.
	Count() int

	// ContainsKey reports whether key is present.
	ContainsKey(key K) bool

	// First returns the first value, or the zero value and false when empty.
	First() (V, bool)

	// Last returns the last value, or the zero value and false when empty.
	Last() (V, bool)

	// Lookup returns the value stored under key and a presence flag.
	Lookup(key K) (V, bool)

	// IsEmpty reports whether there are no pairs.
	IsEmpty() bool
}

var _ Enumerable[string, int] = (*OrderedMap[string, int])(nil)
