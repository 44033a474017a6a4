// Package support provides a generic, fluent ordered map and an immutable
// text value, inspired by Laravel's Illuminate\Support Collection and
// Stringable.
//
// # Overview
//
// [OrderedMap][K, V] keeps unique keys in insertion order and exposes a
// chainable API:
//
//	csv := support.List(3, 1, 4, 1, 5).
//	    DropWhere(func(n, _ int) bool { return n == 1 }).
//	    Map(func(n, _ int) int { return n * 10 }).
//	    JoinToString(",") // → "30,40,50"
//
// [Text] wraps a single string:
//
//	support.Of("  userName ").Trim().ToSnakeCase() // → "user_name"
//
// The two meet in exactly two places: [Text.Split] yields an
// *OrderedMap[int, Text], and [OrderedMap.JoinToString] yields a Text.
//
// # Immutability
//
// All transformation methods return a *new* value and leave the receiver
// unchanged, so instances may be read from several goroutines without
// locking. The in-place mutators [OrderedMap.Set], [OrderedMap.Unset] and
// [Append] are the exception and need external synchronisation.
//
// # Keys after transformation
//
// [OrderedMap.Map], [OrderedMap.Filter], [OrderedMap.DropWhere] and
// [OrderedMap.BeforeLast] keep the original keys. [GroupBy], [Groups],
// [OrderedMap.Keys] and [OrderedMap.Values] return lists re-indexed from 0.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the value type are package-level functions:
// [Map], [Reduce], [Groups], [GroupBy]. [Contains] lives there too because
// it needs comparable values.
//
// # Not-found is not an error
//
// Lookups on missing keys and First/Last on an empty map return the zero
// value of V. Text searches that find nothing return the receiver.
//
// # Pattern heuristic
//
// [IsRegex] and [Text.StartWith] decide whether a string is "a pattern" by
// trying to compile it ([TryCompile]). This is syntactic only: "abc" is a
// valid pattern and is treated as one.
package support
