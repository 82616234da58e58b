package regular

import (
	"errors"
	"sort"
	"unicode/utf8"

	"github.com/bits-and-blooms/bitset"
)

// Epsilon labels the no-input transition. It sits outside the valid rune
// range so it can never collide with an input symbol, NUL included, and is
// never a member of an automaton's alphabet.
const Epsilon rune = utf8.MaxRune + 1

// State is a handle into the owning automaton's state arena. Handles are
// scoped to one automaton: the same index in two automata names two
// unrelated states.
type State int

// ErrStatesOverlap is returned by Concat and Union when both operands share
// state identities, i.e. when an automaton is combined with itself without
// an intervening Copy.
var ErrStatesOverlap = errors.New("states overlap")

type edgeKey struct {
	from State
	sym  rune
}

// NFA is the 5-tuple (Q, S, d, q0, F) with Q = {0 .. states-1}. The
// transition relation is sparse: a missing entry stands for the empty
// destination set. All combinators are pure and build a fresh arena.
type NFA struct {
	states   int
	alphabet []rune // sorted, Epsilon excluded
	trans    map[edgeKey][]State
	start    State
	accept   *bitset.BitSet
}

func newNFA(states int) *NFA {
	return &NFA{
		states: states,
		trans:  make(map[edgeKey][]State),
		accept: bitset.New(uint(states)),
	}
}

func (n *NFA) addEdge(from State, sym rune, to State) {
	k := edgeKey{from, sym}
	for _, q := range n.trans[k] {
		if q == to {
			return
		}
	}
	n.trans[k] = append(n.trans[k], to)
}

// d returns the destination set for (q, sym); missing entries are the empty
// set.
func (n *NFA) d(q State, sym rune) []State { return n.trans[edgeKey{q, sym}] }

// EmptyNFA builds the automaton of the empty language: one non-accepting
// state over an empty alphabet.
func EmptyNFA() *NFA { return newNFA(1) }

// StringNFA builds the automaton whose language contains only w: a chain of
// len(w)+1 states, state i stepping to i+1 on w[i]. The empty string yields
// a single state that is both start and accepting.
func StringNFA(w string) *NFA {
	runes := []rune(w)
	n := newNFA(len(runes) + 1)
	n.alphabet = sortedRunes(runes)
	for i, r := range runes {
		n.addEdge(State(i), r, State(i+1))
	}
	n.accept.Set(uint(len(runes)))
	return n
}

// AlphabetNFA builds the automaton whose language is the given alphabet
// itself: a fresh start with one symbol transition to a fresh accepting
// state per symbol.
func AlphabetNFA(alphabet []rune) *NFA {
	alpha := sortedRunes(alphabet)
	n := newNFA(len(alpha) + 1)
	n.alphabet = alpha
	for i, r := range alpha {
		to := State(i + 1)
		n.addEdge(0, r, to)
		n.accept.Set(uint(to))
	}
	return n
}

// Copy returns a structurally identical automaton backed by a fresh arena,
// so the result never shares state identities with the receiver.
func (n *NFA) Copy() *NFA {
	c := newNFA(n.states)
	c.alphabet = append([]rune(nil), n.alphabet...)
	for k, dests := range n.trans {
		c.trans[k] = append([]State(nil), dests...)
	}
	c.start = n.start
	c.accept = n.accept.Clone()
	return c
}

// copyEdges imports every transition of n into dst with state handles
// shifted by offset.
func (n *NFA) copyEdges(dst *NFA, offset State) {
	for k, dests := range n.trans {
		for _, q := range dests {
			dst.addEdge(k.from+offset, k.sym, q+offset)
		}
	}
}

// Concat builds the automaton of L(n)·L(o): an epsilon transition from
// every accepting state of n to o's start; the result starts at n's start
// and accepts exactly o's accepting set. The operands must have disjoint
// state sets; combining an automaton with itself is ErrStatesOverlap.
func (n *NFA) Concat(o *NFA) (*NFA, error) {
	if n == o {
		return nil, ErrStatesOverlap
	}
	r := newNFA(n.states + o.states)
	r.alphabet = unionRunes(n.alphabet, o.alphabet)
	offset := State(n.states)
	n.copyEdges(r, 0)
	o.copyEdges(r, offset)
	for q, ok := n.accept.NextSet(0); ok; q, ok = n.accept.NextSet(q + 1) {
		r.addEdge(State(q), Epsilon, o.start+offset)
	}
	r.start = n.start
	for q, ok := o.accept.NextSet(0); ok; q, ok = o.accept.NextSet(q + 1) {
		r.accept.Set(q + uint(offset))
	}
	return r, nil
}

// Union builds the automaton of L(n) ∪ L(o): a fresh start with epsilon
// transitions to both original starts, accepting the union of both
// accepting sets. Same disjointness contract as Concat.
func (n *NFA) Union(o *NFA) (*NFA, error) {
	if n == o {
		return nil, ErrStatesOverlap
	}
	r := newNFA(n.states + o.states + 1)
	r.alphabet = unionRunes(n.alphabet, o.alphabet)
	offset := State(n.states)
	newStart := State(n.states + o.states)
	n.copyEdges(r, 0)
	o.copyEdges(r, offset)
	r.addEdge(newStart, Epsilon, n.start)
	r.addEdge(newStart, Epsilon, o.start+offset)
	r.start = newStart
	for q, ok := n.accept.NextSet(0); ok; q, ok = n.accept.NextSet(q + 1) {
		r.accept.Set(q)
	}
	for q, ok := o.accept.NextSet(0); ok; q, ok = o.accept.NextSet(q + 1) {
		r.accept.Set(q + uint(offset))
	}
	return r, nil
}

// Star builds the automaton of L(n)*: a fresh accepting start with an
// epsilon transition to the old start, and an epsilon transition from every
// old accepting state back to the old start. The empty string is always in
// the result's language.
func (n *NFA) Star() *NFA {
	r := newNFA(n.states + 1)
	r.alphabet = append([]rune(nil), n.alphabet...)
	n.copyEdges(r, 0)
	newStart := State(n.states)
	r.addEdge(newStart, Epsilon, n.start)
	for q, ok := n.accept.NextSet(0); ok; q, ok = n.accept.NextSet(q + 1) {
		r.accept.Set(q)
		r.addEdge(State(q), Epsilon, n.start)
	}
	r.accept.Set(uint(newStart))
	r.start = newStart
	return r
}

// closure expands r in place to its epsilon-closure and returns it.
func (n *NFA) closure(r *bitset.BitSet) *bitset.BitSet {
	queue := make([]State, 0, r.Count())
	for q, ok := r.NextSet(0); ok; q, ok = r.NextSet(q + 1) {
		queue = append(queue, State(q))
	}
	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		for _, to := range n.d(q, Epsilon) {
			if !r.Test(uint(to)) {
				r.Set(uint(to))
				queue = append(queue, to)
			}
		}
	}
	return r
}

// IsEmpty reports whether no accepting state is reachable from the start
// via any transition, symbol or epsilon.
func (n *NFA) IsEmpty() bool {
	visited := bitset.New(uint(n.states))
	visited.Set(uint(n.start))
	queue := []State{n.start}
	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		visit := func(to State) {
			if !visited.Test(uint(to)) {
				visited.Set(uint(to))
				queue = append(queue, to)
			}
		}
		for _, to := range n.d(q, Epsilon) {
			visit(to)
		}
		for _, sym := range n.alphabet {
			for _, to := range n.d(q, sym) {
				visit(to)
			}
		}
	}
	return visited.IntersectionCardinality(n.accept) == 0
}

// Printable is the fixed alphabet of the '.' operator: the 95 ASCII
// printable characters plus the five whitespace controls.
var Printable = printableRunes()

func printableRunes() []rune {
	rs := make([]rune, 0, 100)
	for r := rune(' '); r <= '~'; r++ {
		rs = append(rs, r)
	}
	return append(rs, '\t', '\n', '\r', '\v', '\f')
}

func sortedRunes(rs []rune) []rune {
	m := map[rune]struct{}{}
	for _, r := range rs {
		m[r] = struct{}{}
	}
	out := make([]rune, 0, len(m))
	for r := range m {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func unionRunes(a, b []rune) []rune {
	m := map[rune]struct{}{}
	for _, r := range a {
		m[r] = struct{}{}
	}
	for _, r := range b {
		m[r] = struct{}{}
	}
	out := make([]rune, 0, len(m))
	for r := range m {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
