package regular

import (
	"errors"
	"fmt"
)

// parser is a recursive-descent parser for the grammar
//
//	expr    := term ('|' term)*
//	term    := factor factor*
//	factor  := (SYMBOL | DOT | '(' expr ')') exponent*
//	exponent:= '*' | '+' | '?'
//
// with one token of pushback.
type parser struct {
	lex      *lexer
	pushback *token
}

func newParser(pattern string) *parser { return &parser{lex: newLexer(pattern)} }

func (p *parser) next() token {
	if p.pushback != nil {
		t := *p.pushback
		p.pushback = nil
		return t
	}
	return p.lex.next()
}

// unread holds at most one token; a second unread before the first is
// consumed is an internal invariant violation, not a user input error.
func (p *parser) unread(t token) {
	if p.pushback != nil {
		panic("regular: token pushback overflow")
	}
	p.pushback = &t
}

// parse yields exactly one syntax tree per pattern.
func (p *parser) parse() (*astNode, error) {
	return p.parseExpr()
}

func (p *parser) parseExpr() (*astNode, error) {
	t1, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if t1 == nil {
		return nil, errors.New("missing term")
	}

	for {
		tok := p.next()
		if tok.typ != tUnion {
			p.unread(tok)
			break
		}
		t2, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if t2 == nil {
			return nil, errors.New("missing expression after '|'")
		}
		t1 = &astNode{kind: nUnion, left: t1, right: t2}
	}
	return t1, nil
}

// parseTerm returns (nil, nil) for an empty term.
func (p *parser) parseTerm() (*astNode, error) {
	f1, err := p.parseFactor()
	if err != nil || f1 == nil {
		return f1, err
	}
	for {
		f2, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		if f2 == nil {
			break
		}
		f1 = &astNode{kind: nConcat, left: f1, right: f2}
	}
	return f1, nil
}

func (p *parser) parseFactor() (*astNode, error) {
	tok := p.next()

	var expr *astNode
	switch tok.typ {
	case tSymbol, tDot:
		expr = leafNode(tok)
	case tLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.typ != tRParen {
			return nil, fmt.Errorf("missing ')'")
		}
		expr = inner
	default:
		p.unread(tok)
		return nil, nil
	}

	// exponents attach left to right: a** is STAR(STAR(a))
	for {
		switch exp := p.next(); exp.typ {
		case tStar:
			expr = &astNode{kind: nStar, left: expr}
		case tPlus:
			expr = &astNode{kind: nPlus, left: expr}
		case tQuestion:
			expr = &astNode{kind: nQuestion, left: expr}
		default:
			p.unread(exp)
			return expr, nil
		}
	}
}
