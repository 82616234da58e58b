// Package regular compiles regular expressions into finite automata and
// exposes the resulting languages as algebraic objects supporting the set
// operations union, intersection, complement, concatenation, difference and
// symmetric difference, plus the relations subset, equality, emptiness and
// membership.
//
// The supported syntax is union '|', concatenation, Kleene star '*',
// one-or-more '+', zero-or-one '?', '.' for any printable character, plain
// symbols and backslash escapes. There are no backreferences, lookaround or
// character classes.
package regular

// Regular is a regular language backed by a DFA. Values are immutable:
// every operation returns a new language.
type Regular struct {
	dfa *DFA
}

// FromRegex compiles a pattern into the language it denotes. Malformed
// syntax (unmatched '(', dangling '|', empty pattern, trailing escape in
// operand position) is an error.
func FromRegex(pattern string) (*Regular, error) {
	nfa, err := CompileNFA(pattern)
	if err != nil {
		return nil, err
	}
	return &Regular{dfa: FromNFA(nfa)}, nil
}

// MustRegex is FromRegex that panics on error.
func MustRegex(pattern string) *Regular {
	r, err := FromRegex(pattern)
	if err != nil {
		panic(err)
	}
	return r
}

// CompileNFA parses a pattern and evaluates its syntax tree into a
// Thompson NFA without determinizing it.
func CompileNFA(pattern string) (*NFA, error) {
	ast, err := newParser(pattern).parse()
	if err != nil {
		return nil, err
	}
	return ast.eval()
}

// FromFinite builds the language containing exactly the given strings.
func FromFinite(words []string) *Regular {
	nfa := EmptyNFA()
	for _, w := range words {
		next, err := nfa.Union(StringNFA(w))
		if err != nil {
			panic(err) // distinct arenas cannot overlap
		}
		nfa = next
	}
	return &Regular{dfa: FromNFA(nfa)}
}

// Contains reports whether w is a member of the language.
func (r *Regular) Contains(w string) bool { return r.dfa.Accept(w) }

// Union returns the language L(r) ∪ L(o), re-determinized from the epsilon
// NFA union of both automata.
func (r *Regular) Union(o *Regular) *Regular {
	nfa, err := r.dfa.NFA().Union(o.dfa.NFA())
	if err != nil {
		panic(err)
	}
	return &Regular{dfa: FromNFA(nfa)}
}

// Intersect returns the language L(r) ∩ L(o) by product construction.
func (r *Regular) Intersect(o *Regular) *Regular {
	return &Regular{dfa: r.dfa.Intersect(o.dfa)}
}

// Complement returns the language of all strings over the automaton's
// alphabet not in L(r).
func (r *Regular) Complement() *Regular {
	return &Regular{dfa: r.dfa.Complement()}
}

// Concat returns the language L(r)·L(o), re-determinized from the epsilon
// NFA concatenation of both automata.
func (r *Regular) Concat(o *Regular) *Regular {
	nfa, err := r.dfa.NFA().Concat(o.dfa.NFA())
	if err != nil {
		panic(err)
	}
	return &Regular{dfa: FromNFA(nfa)}
}

// Difference returns L(r) ∖ L(o), i.e. L(r) ∩ ¬L(o) with the complement
// taken over the union of both alphabets.
func (r *Regular) Difference(o *Regular) *Regular {
	return &Regular{dfa: r.dfa.Difference(o.dfa)}
}

// SymmetricDifference returns (L(r) ∖ L(o)) ∪ (L(o) ∖ L(r)).
func (r *Regular) SymmetricDifference(o *Regular) *Regular {
	return r.Difference(o).Union(o.Difference(r))
}

// IsEmpty reports whether the language contains no strings.
func (r *Regular) IsEmpty() bool { return r.dfa.IsEmpty() }

// SubsetOf reports whether L(r) ⊆ L(o), i.e. whether L(r) ∖ L(o) is empty.
func (r *Regular) SubsetOf(o *Regular) bool {
	return r.Difference(o).IsEmpty()
}

// Equal reports whether both languages contain exactly the same strings.
func (r *Regular) Equal(o *Regular) bool {
	return r.SubsetOf(o) && o.SubsetOf(r)
}

// DFA returns the automaton backing the language.
func (r *Regular) DFA() *DFA { return r.dfa }
