package regular

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// DFA is a deterministic automaton whose transition function is total over
// its own alphabet: every (state, symbol) pair with the symbol in the
// alphabet has exactly one successor. There are no epsilon transitions.
type DFA struct {
	states   int
	alphabet []rune // sorted
	trans    []map[rune]State
	start    State
	accept   *bitset.BitSet
}

// FromNFA builds an equivalent DFA by subset construction. A worklist of
// discovered epsilon-closed subsets is processed breadth-first; each
// distinct subset maps to one fresh state, accepting iff it intersects the
// NFA's accepting set. The empty subset becomes the rejecting sink, so the
// result is total by construction.
func FromNFA(n *NFA) *DFA {
	startSet := bitset.New(uint(n.states))
	startSet.Set(uint(n.start))
	n.closure(startSet)

	d := &DFA{
		alphabet: append([]rune(nil), n.alphabet...),
		trans:    []map[rune]State{make(map[rune]State)},
		accept:   bitset.New(1),
	}
	if startSet.IntersectionCardinality(n.accept) > 0 {
		d.accept.Set(0)
	}

	type item struct {
		set *bitset.BitSet
		id  State
	}
	ids := map[string]State{subsetKey(startSet): 0}
	queue := []item{{startSet, 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, sym := range d.alphabet {
			move := bitset.New(uint(n.states))
			for q, ok := cur.set.NextSet(0); ok; q, ok = cur.set.NextSet(q + 1) {
				for _, to := range n.d(State(q), sym) {
					move.Set(uint(to))
				}
			}
			n.closure(move)

			k := subsetKey(move)
			id, seen := ids[k]
			if !seen {
				id = State(len(d.trans))
				ids[k] = id
				d.trans = append(d.trans, make(map[rune]State))
				if move.IntersectionCardinality(n.accept) > 0 {
					d.accept.Set(uint(id))
				}
				queue = append(queue, item{move, id})
			}
			d.trans[cur.id][sym] = id
		}
	}

	d.states = len(d.trans)
	return d
}

func subsetKey(s *bitset.BitSet) string {
	ids := make([]uint, 0, s.Count())
	for q, ok := s.NextSet(0); ok; q, ok = s.NextSet(q + 1) {
		ids = append(ids, q)
	}
	return fmt.Sprint(ids)
}

// Accept walks the transition function one symbol at a time from the start
// state; the final state's membership in the accepting set is the verdict.
// A symbol outside the automaton's alphabet rejects: totality is guaranteed
// only over the alphabet itself.
func (d *DFA) Accept(w string) bool {
	q := d.start
	for _, c := range w {
		to, ok := d.trans[q][c]
		if !ok {
			return false
		}
		q = to
	}
	return d.accept.Test(uint(q))
}

// IsEmpty reports whether no accepting state is reachable from the start.
func (d *DFA) IsEmpty() bool {
	seen := bitset.New(uint(d.states))
	seen.Set(uint(d.start))
	queue := []State{d.start}
	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		if d.accept.Test(uint(q)) {
			return false
		}
		for _, to := range d.trans[q] {
			if !seen.Test(uint(to)) {
				seen.Set(uint(to))
				queue = append(queue, to)
			}
		}
	}
	return true
}

// NFA returns the automaton reinterpreted as an NFA over a fresh arena,
// for combination with the epsilon-based combinators.
func (d *DFA) NFA() *NFA {
	n := newNFA(d.states)
	n.alphabet = append([]rune(nil), d.alphabet...)
	for q, m := range d.trans {
		for sym, to := range m {
			n.addEdge(State(q), sym, to)
		}
	}
	n.start = d.start
	n.accept = d.accept.Clone()
	return n
}

// NumStates returns the size of the automaton's state set.
func (d *DFA) NumStates() int { return d.states }

// Alphabet returns a copy of the automaton's alphabet.
func (d *DFA) Alphabet() []rune { return append([]rune(nil), d.alphabet...) }
