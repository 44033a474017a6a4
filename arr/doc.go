// Package arr provides dot-notation access to nested records, inspired by
// Laravel's Arr facade and data_get helper.
//
// A record is a map[string]any or any value implementing [Keyed]; the two
// may be mixed freely at different depths:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//	arr.Get(m, "user.address.city")          // → "London"
//	arr.Set(m, "user.address.postcode", "EC1")
//	arr.Has(m, "user.name")                  // → true
//	arr.Forget(m, "user.address")
//
// The support package uses these helpers to extract group keys from record
// values and to build nested group records.
package arr
