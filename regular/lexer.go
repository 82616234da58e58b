package regular

import (
	"unicode/utf8"
)

// lexer turns a pattern into a token stream, one token per next() call with
// at most one character of lookahead. Once the input is exhausted every
// further call returns tEnd.
type lexer struct {
	input string
	pos   int
}

func newLexer(pattern string) *lexer { return &lexer{input: pattern} }

func (l *lexer) next() token {
	if l.pos >= len(l.input) {
		return token{typ: tEnd}
	}
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
	switch r {
	case '.':
		return token{tDot, "."}
	case '*':
		return token{tStar, "*"}
	case '+':
		return token{tPlus, "+"}
	case '?':
		return token{tQuestion, "?"}
	case '|':
		return token{tUnion, "|"}
	case '(':
		return token{tLParen, "("}
	case ')':
		return token{tRParen, ")"}
	case '[':
		return token{tLBracket, "["}
	case ']':
		return token{tRBracket, "]"}
	case '\\':
		// escape neutralizes any operator meaning of the next character
		if l.pos >= len(l.input) {
			return token{typ: tError}
		}
		r2, s2 := utf8.DecodeRuneInString(l.input[l.pos:])
		l.pos += s2
		return token{tSymbol, string(r2)}
	default:
		return token{tSymbol, string(r)}
	}
}
