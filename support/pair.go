package support

import "fmt"

// Pair is a single key/value entry of an [OrderedMap].
// It is the input of [FromPairs] and the element type of [OrderedMap.Pairs].
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// P is a shorthand constructor for a [Pair].
func P[K comparable, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// String returns a human-readable representation: "key: value".
func (p Pair[K, V]) String() string {
	return fmt.Sprintf("%v: %v", p.Key, p.Value)
}
