package support

import (
	"encoding/json"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Text is an immutable wrapper around a single string, in the spirit of
// Laravel's Stringable.
//
// Every transformation returns a new Text. Searches that find nothing
// return the receiver itself rather than an error, so
//
//	support.Of("report.pdf").SubstringAfter("/") == support.Of("report.pdf")
//
// Text is a comparable value type; two Texts are equal when their strings
// are.
type Text struct {
	value string
}

// Of wraps s in a Text.
func Of(s string) Text { return Text{value: s} }

// String returns the wrapped string.
func (t Text) String() string { return t.value }

// Length returns the number of runes in t.
func (t Text) Length() int { return utf8.RuneCountInString(t.value) }

// IsEmpty reports whether t is the empty string.
func (t Text) IsEmpty() bool { return t.value == "" }

// IsNotEmpty reports whether t is not the empty string.
func (t Text) IsNotEmpty() bool { return t.value != "" }

// ─────────────────────────────────────────────────────────────────────────────
// Replacement
// ─────────────────────────────────────────────────────────────────────────────

// Replace replaces every non-overlapping literal occurrence of search.
// An empty search returns t unchanged.
func (t Text) Replace(search, replacement string) Text {
	if search == "" {
		return t
	}
	return Text{value: strings.ReplaceAll(t.value, search, replacement)}
}

// ReplacePairs replaces search[i] with replacements[i] for every i, all at
// once: the original string is scanned a single time and substituted text
// is never searched again. At any position the first pattern, in argument
// order, that matches wins.
//
// A pattern without a replacement at its index is replaced by the empty
// string; surplus replacements are ignored. Empty patterns are skipped.
//
//	support.Of("abc").ReplacePairs([]string{"a", "b"}, []string{"b", "a"}) // "bac"
func (t Text) ReplacePairs(search, replacements []string) Text {
	oldnew := make([]string, 0, 2*len(search))
	for i, s := range search {
		if s == "" {
			continue
		}
		r := ""
		if i < len(replacements) {
			r = replacements[i]
		}
		oldnew = append(oldnew, s, r)
	}
	if len(oldnew) == 0 {
		return t
	}
	return Text{value: strings.NewReplacer(oldnew...).Replace(t.value)}
}

// ReplaceEach replaces every occurrence of every pattern in search with the
// single replacement, with the same one-pass semantics as
// [Text.ReplacePairs].
func (t Text) ReplaceEach(search []string, replacement string) Text {
	replacements := make([]string, len(search))
	for i := range replacements {
		replacements[i] = replacement
	}
	return t.ReplacePairs(search, replacements)
}

// ReplaceBefore replaces everything before the first occurrence of search
// with replacement. The matched search text and the rest of t are kept.
// Returns t unchanged when search is empty or not found.
//
//	support.Of("draft: hello").ReplaceBefore(":", "final") // "final: hello"
func (t Text) ReplaceBefore(search, replacement string) Text {
	i := t.indexOf(search)
	if i < 0 {
		return t
	}
	return Text{value: replacement + t.value[i:]}
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & slicing
// ─────────────────────────────────────────────────────────────────────────────

// indexOf is strings.Index with an empty needle treated as not found.
func (t Text) indexOf(search string) int {
	if search == "" {
		return -1
	}
	return strings.Index(t.value, search)
}

// SubstringAfter returns the text after the first occurrence of search.
// Returns t unchanged when search is empty or not found.
func (t Text) SubstringAfter(search string) Text {
	i := t.indexOf(search)
	if i < 0 {
		return t
	}
	return Text{value: t.value[i+len(search):]}
}

// SubstringBefore returns the text before the first occurrence of search.
// Returns t unchanged when search is empty or not found.
func (t Text) SubstringBefore(search string) Text {
	i := t.indexOf(search)
	if i < 0 {
		return t
	}
	return Text{value: t.value[:i]}
}

// Split splits t around each literal occurrence of delimiter and returns the
// pieces as a list keyed 0..n-1. An empty delimiter splits after each UTF-8
// sequence.
func (t Text) Split(delimiter string) *OrderedMap[int, Text] {
	parts := strings.Split(t.value, delimiter)
	out := withCapacity[int, Text](len(parts))
	for i, p := range parts {
		out.keys = append(out.keys, i)
		out.values[i] = Text{value: p}
	}
	return out
}

// Contains reports whether needle occurs in t.
func (t Text) Contains(needle string) bool { return strings.Contains(t.value, needle) }

// EndsWith reports whether t ends with the literal suffix.
func (t Text) EndsWith(suffix string) bool { return strings.HasSuffix(t.value, suffix) }

// StartWith reports whether t starts with search.
//
// When search passes the [IsRegex] heuristic it is used as a pattern and
// must match at position 0 of t; otherwise a literal prefix comparison is
// made. Because the heuristic accepts most plain words, a literal such as
// "a.c" is matched as a pattern (and so also accepts "abc").
func (t Text) StartWith(search string) bool {
	if p := TryCompile(search); p.OK() {
		return p.MatchPrefix(t.value)
	}
	return strings.HasPrefix(t.value, search)
}

// IsRegex reports whether t compiles as a pattern. See [IsRegex].
func (t Text) IsRegex() bool { return IsRegex(t.value) }

// ─────────────────────────────────────────────────────────────────────────────
// Whitespace & case
// ─────────────────────────────────────────────────────────────────────────────

// Trim strips leading and trailing Unicode whitespace.
func (t Text) Trim() Text { return Text{value: strings.TrimSpace(t.value)} }

// ToLowerCase applies full Unicode lower-case mapping.
func (t Text) ToLowerCase() Text {
	return Text{value: cases.Lower(language.Und).String(t.value)}
}

// ToUpperCase applies full Unicode upper-case mapping ("ß" becomes "SS").
func (t Text) ToUpperCase() Text {
	return Text{value: cases.Upper(language.Und).String(t.value)}
}

// Title upper-cases the first letter of every word and lower-cases the rest.
func (t Text) Title() Text {
	return Text{value: cases.Title(language.Und).String(t.value)}
}

// ToCamelCase removes every underscore that is followed by a letter and
// upper-cases that letter. Nothing else changes, byte for byte: "user_ID"
// becomes "userID", "User_name" becomes "UserName" and invalid UTF-8 passes
// through untouched.
func (t Text) ToCamelCase() Text {
	s := t.value
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '_' {
			if r, size := utf8.DecodeRuneInString(s[i+1:]); unicode.IsLetter(r) {
				b.WriteRune(unicode.ToUpper(r))
				i += size
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return Text{value: b.String()}
}

// ToSnakeCase writes "_" before every upper-case letter and lower-cases it.
// Separators are not collapsed and a leading one is kept:
// "helloWorld" becomes "hello_world" and "Hello" becomes "_hello".
func (t Text) ToSnakeCase() Text { return t.delimitUpper('_') }

// ToKebabCase is [Text.ToSnakeCase] with "-" as the separator.
func (t Text) ToKebabCase() Text { return t.delimitUpper('-') }

// delimitUpper copies every byte that is not part of an upper-case letter
// verbatim, so invalid UTF-8 survives.
func (t Text) delimitUpper(sep rune) Text {
	s := t.value
	var b strings.Builder
	b.Grow(len(s) + len(s)/2)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsUpper(r) {
			b.WriteRune(sep)
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return Text{value: b.String()}
}

// ─────────────────────────────────────────────────────────────────────────────
// Composition
// ─────────────────────────────────────────────────────────────────────────────

// Append returns t followed by parts.
func (t Text) Append(parts ...string) Text {
	return Text{value: t.value + strings.Join(parts, "")}
}

// Prepend returns parts followed by t.
func (t Text) Prepend(parts ...string) Text {
	return Text{value: strings.Join(parts, "") + t.value}
}

// ─────────────────────────────────────────────────────────────────────────────
// Encoding
// ─────────────────────────────────────────────────────────────────────────────

// MarshalJSON encodes t as a JSON string.
func (t Text) MarshalJSON() ([]byte, error) { return json.Marshal(t.value) }

// LogValue implements [slog.LogValuer].
func (t Text) LogValue() slog.Value { return slog.StringValue(t.value) }
