package regular

type tokenType int

const (
	tDot      tokenType = iota // .
	tStar                      // *
	tPlus                      // +
	tQuestion                  // ?
	tUnion                     // |
	tLParen                    // (
	tRParen                    // )
	tLBracket                  // [ reserved, rejected by the grammar
	tRBracket                  // ] reserved
	tSymbol                    // literal character
	tEnd                       // end of input
	tError                     // malformed input (dangling escape)
)

// token is a lexical unit: a type plus the corresponding lexeme.
type token struct {
	typ    tokenType
	lexeme string
}
