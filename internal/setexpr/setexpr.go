// Package setexpr implements a small query language over regular
// languages: atoms are /regex/ literals and finite sets of quoted strings,
// combined with the language algebra and compared with the relations
// '<' (subset) and '==' (equality).
package setexpr

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"relang/regular"
)

var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Regex", Pattern: `/(?:\\.|[^/])*/`},
	{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
	{Name: "Op", Pattern: `==|[|^&+!<(){},-]`},
	{Name: "whitespace", Pattern: `\s+`},
})

type Query struct {
	Left  *Expr  `parser:"@@"`
	Op    string `parser:"[ @('<' | '==')"`
	Right *Expr  `parser:"@@ ]"`
}

type Expr struct {
	Left *Term     `parser:"@@"`
	Rest []*OpTerm `parser:"@@*"`
}

type OpTerm struct {
	Op    string `parser:"@('|' | '^')"`
	Right *Term  `parser:"@@"`
}

type Term struct {
	Left *Factor     `parser:"@@"`
	Rest []*OpFactor `parser:"@@*"`
}

type OpFactor struct {
	Op    string  `parser:"@('&' | '-' | '+')"`
	Right *Factor `parser:"@@"`
}

type Factor struct {
	Not  *Factor `parser:"'!' @@"`
	Atom *Atom   `parser:"| @@"`
}

type Atom struct {
	Regex  *string `parser:"@Regex"`
	Finite *Finite `parser:"| @@"`
	Sub    *Expr   `parser:"| '(' @@ ')'"`
}

type Finite struct {
	Words []string `parser:"'{' [ @String (',' @String)* ] '}'"`
}

var queryParser = participle.MustBuild[Query](
	participle.Lexer(exprLexer),
	participle.Unquote("String"),
)

// Result of a query: a language for algebraic queries, a verdict for
// relation queries.
type Result struct {
	Lang *regular.Regular
	Bool *bool
}

// Eval parses and evaluates a query against the regular-language algebra.
func Eval(src string) (*Result, error) {
	q, err := queryParser.ParseString("", src)
	if err != nil {
		return nil, err
	}

	left, err := q.Left.eval()
	if err != nil {
		return nil, err
	}
	if q.Op == "" {
		return &Result{Lang: left}, nil
	}

	right, err := q.Right.eval()
	if err != nil {
		return nil, err
	}
	var b bool
	switch q.Op {
	case "<":
		b = left.SubsetOf(right)
	case "==":
		b = left.Equal(right)
	default:
		return nil, fmt.Errorf("unknown relation %q", q.Op)
	}
	return &Result{Bool: &b}, nil
}

func (e *Expr) eval() (*regular.Regular, error) {
	lang, err := e.Left.eval()
	if err != nil {
		return nil, err
	}
	for _, ot := range e.Rest {
		right, err := ot.Right.eval()
		if err != nil {
			return nil, err
		}
		switch ot.Op {
		case "|":
			lang = lang.Union(right)
		case "^":
			lang = lang.SymmetricDifference(right)
		}
	}
	return lang, nil
}

func (t *Term) eval() (*regular.Regular, error) {
	lang, err := t.Left.eval()
	if err != nil {
		return nil, err
	}
	for _, of := range t.Rest {
		right, err := of.Right.eval()
		if err != nil {
			return nil, err
		}
		switch of.Op {
		case "&":
			lang = lang.Intersect(right)
		case "-":
			lang = lang.Difference(right)
		case "+":
			lang = lang.Concat(right)
		}
	}
	return lang, nil
}

func (f *Factor) eval() (*regular.Regular, error) {
	if f.Not != nil {
		lang, err := f.Not.eval()
		if err != nil {
			return nil, err
		}
		return lang.Complement(), nil
	}
	return f.Atom.eval()
}

func (a *Atom) eval() (*regular.Regular, error) {
	switch {
	case a.Regex != nil:
		pat := strings.TrimSuffix(strings.TrimPrefix(*a.Regex, "/"), "/")
		pat = strings.ReplaceAll(pat, `\/`, "/")
		return regular.FromRegex(pat)
	case a.Finite != nil:
		return regular.FromFinite(a.Finite.Words), nil
	default:
		return a.Sub.eval()
	}
}
