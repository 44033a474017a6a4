package support

import "fmt"

// MapMacro extends every OrderedMap instantiation at once. m is the
// *OrderedMap the macro was called on; assert it to the instantiation the
// macro was written for.
type MapMacro func(m any, args ...any) any

// TextMacro extends Text. It returns a Text, so a macro call reads like any
// other step of a Text chain.
type TextMacro func(t Text, args ...any) Text

var (
	mapMacros  = newRegistry[MapMacro](nil)
	textMacros = newRegistry[TextMacro](nil)
)

// RegisterMapMacro makes fn callable as m.Macro(name, ...) on any
// OrderedMap, replacing an earlier macro of the same name.
//
//	support.RegisterMapMacro("sum", func(m any, _ ...any) any {
//	    return support.Reduce(m.(*support.OrderedMap[int, int]),
//	        func(acc, n, _ int) int { return acc + n }, 0)
//	})
//	total, _ := support.List(1, 2, 3).Macro("sum") // 6
func RegisterMapMacro(name string, fn MapMacro) { mapMacros.set(name, fn) }

// RegisterTextMacro makes fn callable as t.Macro(name, ...), replacing an
// earlier macro of the same name. Map and text macros live in separate
// namespaces.
//
//	support.RegisterTextMacro("slug", func(t support.Text, _ ...any) support.Text {
//	    return t.Trim().ToLowerCase().Replace(" ", "-")
//	})
func RegisterTextMacro(name string, fn TextMacro) { textMacros.set(name, fn) }

// HasMapMacro reports whether a map macro is registered under name.
func HasMapMacro(name string) bool {
	_, ok := mapMacros.get(name)
	return ok
}

// HasTextMacro reports whether a text macro is registered under name.
func HasTextMacro(name string) bool {
	_, ok := textMacros.get(name)
	return ok
}

// FlushMacros drops every map and text macro.
func FlushMacros() {
	mapMacros.reset()
	textMacros.reset()
}

// Macro runs the map macro registered under name with m as its receiver.
// An unknown name yields an error wrapping [ErrMacroNotFound].
func (m *OrderedMap[K, V]) Macro(name string, args ...any) (any, error) {
	fn, ok := mapMacros.get(name)
	if !ok {
		return nil, fmt.Errorf("%w: map macro %q", ErrMacroNotFound, name)
	}
	return fn(m, args...), nil
}

// Macro runs the text macro registered under name on t. An unknown name
// returns t itself with an error wrapping [ErrMacroNotFound].
func (t Text) Macro(name string, args ...any) (Text, error) {
	fn, ok := textMacros.get(name)
	if !ok {
		return t, fmt.Errorf("%w: text macro %q", ErrMacroNotFound, name)
	}
	return fn(t, args...), nil
}
