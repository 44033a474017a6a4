package support

import (
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// PatternConfig holds the runtime configuration used when compiling
// patterns with [TryCompileWith].
type PatternConfig struct {
	// MatchTimeout bounds a single match attempt, guarding against
	// catastrophic backtracking. Zero or negative disables the limit.
	MatchTimeout time.Duration
}

// DefaultPatternConfig returns a [PatternConfig] populated with sensible
// defaults.
func DefaultPatternConfig() PatternConfig {
	return PatternConfig{MatchTimeout: time.Second}
}

// Pattern is the outcome of trying to compile a string as a pattern. It
// either holds a compiled expression or the reason compilation failed;
// constructing one never panics and never writes diagnostics anywhere.
//
// The engine is github.com/dlclark/regexp2, a backtracking engine with
// Perl-style syntax (lookaround, backreferences, possessive groups).
type Pattern struct {
	source string
	expr   string
	re     *regexp2.Regexp
	err    error
}

// patternDelimiters are the non-bracket characters accepted around a
// delimited pattern such as "/^abc$/i".
const patternDelimiters = "/#~!@%|;,"

var closingBracket = map[byte]byte{'(': ')', '[': ']', '{': '}', '<': '>'}

// TryCompile compiles s with [DefaultPatternConfig].
func TryCompile(s string) Pattern {
	return TryCompileWith(s, DefaultPatternConfig())
}

// TryCompileWith compiles s as a pattern.
//
// A delimited string ("/body/flags", "#body#", "{body}i", ...) compiles its
// body with the trailing flags: i (ignore case), m (multi-line), s (dot
// matches newline), x (ignore pattern whitespace), n (explicit capture) and
// u (no-op). When s is not delimited, or its body does not compile, s itself
// is compiled as-is; "(a)(b)" is therefore a valid pattern even though it
// also looks like "(...)"-delimited text.
func TryCompileWith(s string, cfg PatternConfig) Pattern {
	if body, opts, ok := splitDelimited(s); ok {
		if p := compile(s, body, opts, cfg); p.OK() {
			return p
		}
	}
	return compile(s, s, regexp2.None, cfg)
}

func compile(source, expr string, opts regexp2.RegexOptions, cfg PatternConfig) (p Pattern) {
	p = Pattern{source: source, expr: expr}
	defer func() {
		if r := recover(); r != nil {
			p.re = nil
			p.err = fmt.Errorf("%w: %q: %v", ErrInvalidPattern, source, r)
		}
	}()
	re, err := regexp2.Compile(expr, opts)
	if err != nil {
		p.err = fmt.Errorf("%w: %q: %v", ErrInvalidPattern, source, err)
		return p
	}
	if cfg.MatchTimeout > 0 {
		re.MatchTimeout = cfg.MatchTimeout
	}
	p.re = re
	return p
}

// patternFlags maps the flag letters accepted after a delimited pattern to
// engine options. "u" is accepted for compatibility; strings are UTF-8.
var patternFlags = map[rune]regexp2.RegexOptions{
	'i': regexp2.IgnoreCase,
	'm': regexp2.Multiline,
	's': regexp2.Singleline,
	'x': regexp2.IgnorePatternWhitespace,
	'n': regexp2.ExplicitCapture,
	'u': regexp2.None,
}

// splitDelimited recognises "<d>body<d>flags". The trailing run must consist
// of known flags only, otherwise s is not treated as delimited.
func splitDelimited(s string) (body string, opts regexp2.RegexOptions, ok bool) {
	if len(s) < 2 {
		return "", opts, false
	}
	open := s[0]
	closing, isBracket := closingBracket[open]
	if !isBracket {
		if strings.IndexByte(patternDelimiters, open) < 0 {
			return "", opts, false
		}
		closing = open
	}
	end := strings.LastIndexByte(s, closing)
	if end < 1 {
		return "", opts, false
	}
	for _, f := range s[end+1:] {
		o, known := patternFlags[f]
		if !known {
			return "", regexp2.None, false
		}
		opts |= o
	}
	return s[1:end], opts, true
}

// OK reports whether the pattern compiled.
func (p Pattern) OK() bool { return p.re != nil }

// Err returns the compilation failure, wrapping [ErrInvalidPattern], or nil.
func (p Pattern) Err() error { return p.err }

// Source returns the string passed to [TryCompile].
func (p Pattern) Source() string { return p.source }

// Expr returns the expression handed to the engine: the body of a delimited
// pattern, otherwise the source itself.
func (p Pattern) Expr() string { return p.expr }

// MatchString reports whether the pattern matches anywhere in s. A pattern
// that did not compile, or a match that timed out, reports false.
func (p Pattern) MatchString(s string) bool {
	if p.re == nil {
		return false
	}
	ok, err := p.re.MatchString(s)
	return err == nil && ok
}

// MatchPrefix reports whether the pattern matches starting at the first
// character of s.
func (p Pattern) MatchPrefix(s string) bool {
	if p.re == nil {
		return false
	}
	m, err := p.re.FindStringMatch(s)
	return err == nil && m != nil && m.Index == 0
}

// IsRegex reports whether s compiles as a pattern (see [TryCompileWith]).
//
// It is a syntactic heuristic, not a statement of intent: most plain words
// are valid patterns, so IsRegex("abc") is true, while IsRegex("(abc") is
// false. Compilation failures are never surfaced.
func IsRegex(s string) bool {
	return TryCompile(s).OK()
}
