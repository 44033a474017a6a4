package support_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-fluent/support"
)

func TestIsRegex(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"/^abc$/", true},
		{"#\\d+#", true},
		{"{a|b}i", true},
		{"(?<=a)b", true},
		// Plain words compile too; the heuristic cannot tell intent.
		{"abc", true},
		{"ab", true},
		{"(abc", false},
		{"[a-", false},
		// Unknown trailing letters mean the string is not delimited.
		{"/abc/z", true},
		{"(a)(b)", true},
		{"a)", false},
		{"*abc", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, support.IsRegex(tt.in), tt.in)
		assert.Equal(t, tt.want, support.Of(tt.in).IsRegex(), tt.in)
	}
}

func TestTryCompileDelimited(t *testing.T) {
	p := support.TryCompile("/^abc$/i")
	assert.True(t, p.OK())
	assert.NoError(t, p.Err())
	assert.Equal(t, "/^abc$/i", p.Source())
	assert.Equal(t, "^abc$", p.Expr())
	assert.True(t, p.MatchString("ABC"))
	assert.False(t, p.MatchString("xabc"))
}

func TestTryCompileRaw(t *testing.T) {
	p := support.TryCompile("b+")
	assert.Equal(t, "b+", p.Expr())
	assert.True(t, p.MatchString("abbbc"))
	assert.False(t, p.MatchPrefix("abbbc"))
	assert.True(t, p.MatchPrefix("bbc"))
}

func TestTryCompileFlags(t *testing.T) {
	multi := support.TryCompile("/^b$/m")
	assert.True(t, multi.MatchString("a\nb\nc"))
	assert.False(t, support.TryCompile("/^b$/").MatchString("a\nb\nc"))

	assert.True(t, support.TryCompile("/a.b/s").MatchString("a\nb"))
	assert.True(t, support.TryCompile("/a b c/x").MatchString("abc"))
	assert.True(t, support.TryCompile("/é/u").OK())
}

func TestTryCompileFailure(t *testing.T) {
	p := support.TryCompile("(abc")
	assert.False(t, p.OK())
	assert.True(t, errors.Is(p.Err(), support.ErrInvalidPattern))
	assert.False(t, p.MatchString("(abc"))
	assert.False(t, p.MatchPrefix("(abc"))

	bad := support.TryCompile("/(ab/i")
	assert.False(t, bad.OK())
	assert.ErrorIs(t, bad.Err(), support.ErrInvalidPattern)
}

func TestTryCompileFallsBackToRaw(t *testing.T) {
	p := support.TryCompile("/abc/z")
	assert.True(t, p.OK())
	assert.Equal(t, "/abc/z", p.Expr())
	assert.True(t, p.MatchString("x/abc/zz"))
	assert.False(t, p.MatchString("abc"))

	group := support.TryCompile("(a)(b)")
	assert.Equal(t, "(a)(b)", group.Expr())
	assert.True(t, group.MatchPrefix("abc"))
}

func TestTryCompileWithConfig(t *testing.T) {
	assert.Positive(t, support.DefaultPatternConfig().MatchTimeout)

	p := support.TryCompileWith("a+", support.PatternConfig{})
	assert.True(t, p.OK())
	assert.True(t, p.MatchPrefix("aaa"))
}
