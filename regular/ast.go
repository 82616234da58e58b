package regular

import (
	"errors"
	"fmt"
)

type nodeKind int

const (
	nLeaf nodeKind = iota // literal token (SYMBOL or DOT)
	nUnion
	nConcat
	nStar
	nPlus
	nQuestion
)

// astNode is either an operator over one or two children or a token leaf.
// Union and concat require both children; star, plus and question use only
// the left child; a leaf has none.
type astNode struct {
	kind  nodeKind
	tok   token // for nLeaf
	left  *astNode
	right *astNode
}

func leafNode(t token) *astNode { return &astNode{kind: nLeaf, tok: t} }

// eval folds the tree into one NFA.
func (n *astNode) eval() (*NFA, error) {
	if n.kind == nLeaf {
		switch n.tok.typ {
		case tSymbol:
			return StringNFA(n.tok.lexeme), nil
		case tDot:
			return AlphabetNFA(Printable), nil
		default:
			return nil, fmt.Errorf("invalid operand %v", n.tok.typ)
		}
	}

	if n.left == nil {
		return nil, errors.New("missing left operand")
	}
	a, err := n.left.eval()
	if err != nil {
		return nil, err
	}

	switch n.kind {
	case nUnion, nConcat:
		if n.right == nil {
			return nil, errors.New("missing right operand")
		}
		b, err := n.right.eval()
		if err != nil {
			return nil, err
		}
		if n.kind == nUnion {
			return a.Union(b)
		}
		return a.Concat(b)
	case nStar:
		return a.Star(), nil
	case nPlus:
		// a+ = a · (copy of a)*; the copy keeps the operand state sets disjoint
		return a.Concat(a.Copy().Star())
	case nQuestion:
		return a.Union(StringNFA(""))
	default:
		return nil, fmt.Errorf("invalid operator %v", n.kind)
	}
}
