package setexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lang(t *testing.T, src string) func(string) bool {
	t.Helper()
	res, err := Eval(src)
	if err != nil {
		t.Fatalf("eval %q: %v", src, err)
	}
	if res.Lang == nil {
		t.Fatalf("eval %q: expected a language result", src)
	}
	return res.Lang.Contains
}

func verdict(t *testing.T, src string) bool {
	t.Helper()
	res, err := Eval(src)
	if err != nil {
		t.Fatalf("eval %q: %v", src, err)
	}
	if res.Bool == nil {
		t.Fatalf("eval %q: expected a relation verdict", src)
	}
	return *res.Bool
}

func TestEvalRegexAtom(t *testing.T) {
	in := lang(t, `/a|b+/`)
	assert.True(t, in("a"))
	assert.True(t, in("bbb"))
	assert.False(t, in("ab"))
	assert.False(t, in(""))
}

func TestEvalFiniteAtom(t *testing.T) {
	in := lang(t, `{ "ab", "cd" }`)
	assert.True(t, in("ab"))
	assert.True(t, in("cd"))
	assert.False(t, in("a"))

	empty := lang(t, `{}`)
	assert.False(t, empty(""))
}

func TestEvalAlgebra(t *testing.T) {
	union := lang(t, `/a/ | /b/`)
	assert.True(t, union("a"))
	assert.True(t, union("b"))
	assert.False(t, union("ab"))

	inter := lang(t, `(/a/ | /b/) & /a/`)
	assert.True(t, inter("a"))
	assert.False(t, inter("b"))

	concat := lang(t, `/a/ + /b/`)
	assert.True(t, concat("ab"))
	assert.False(t, concat("a"))

	diff := lang(t, `{ "a", "b" } - { "b" }`)
	assert.True(t, diff("a"))
	assert.False(t, diff("b"))

	sym := lang(t, `{ "a", "b" } ^ { "b", "c" }`)
	assert.True(t, sym("a"))
	assert.True(t, sym("c"))
	assert.False(t, sym("b"))

	comp := lang(t, `!{ "a" }`)
	assert.True(t, comp(""))
	assert.True(t, comp("aa"))
	assert.False(t, comp("a"))
}

func TestEvalRelations(t *testing.T) {
	assert.True(t, verdict(t, `/a+/ == /aa*/`))
	assert.False(t, verdict(t, `/a/ == /b/`))
	assert.True(t, verdict(t, `/a/ < /a*/`))
	assert.False(t, verdict(t, `/a*/ < /a/`))
	assert.True(t, verdict(t, `/a/ - /a/ == {}`))
}

func TestEvalEscapedSlash(t *testing.T) {
	in := lang(t, `/a\/b/`)
	assert.True(t, in("a/b"))
	assert.False(t, in("ab"))
}

func TestEvalErrors(t *testing.T) {
	_, err := Eval(`/a/ &`)
	assert.Error(t, err)

	_, err = Eval(`/(a/`)
	assert.Error(t, err, "malformed regex inside a literal should surface")
}
