package regular

import (
	"github.com/bits-and-blooms/bitset"
)

// Complement inverts the accepting set over the same states and
// transitions. Valid because every DFA built by this package is total over
// its alphabet.
func (d *DFA) Complement() *DFA {
	c := &DFA{
		states:   d.states,
		alphabet: append([]rune(nil), d.alphabet...),
		trans:    make([]map[rune]State, d.states),
		start:    d.start,
		accept:   bitset.New(uint(d.states)),
	}
	for q, m := range d.trans {
		c.trans[q] = make(map[rune]State, len(m))
		for sym, to := range m {
			c.trans[q][sym] = to
		}
	}
	for q := 0; q < d.states; q++ {
		if !d.accept.Test(uint(q)) {
			c.accept.Set(uint(q))
		}
	}
	return c
}

// Intersect builds the product automaton accepting L(d) ∩ L(o).
func (d *DFA) Intersect(o *DFA) *DFA {
	return product(d, o, func(x, y bool) bool { return x && y })
}

// Union builds the product automaton accepting L(d) ∪ L(o).
func (d *DFA) Union(o *DFA) *DFA {
	return product(d, o, func(x, y bool) bool { return x || y })
}

// Difference builds the product automaton accepting L(d) ∖ L(o). The
// complement of the right operand is taken over the product's union
// alphabet, not the operand's own, so the result is the set difference even
// when the alphabets differ.
func (d *DFA) Difference(o *DFA) *DFA {
	return product(d, o, func(x, y bool) bool { return x && !y })
}

// product explores the reachable pairs of states of a and b breadth-first,
// visiting each pair exactly once; accept decides acceptance of a pair from
// the operands' verdicts. The product ranges over the union of both
// alphabets: operands missing a symbol are first totalized by routing it to
// an added rejecting sink, so differing alphabets are not an error.
func product(a, b *DFA, accept func(bool, bool) bool) *DFA {
	alpha := unionRunes(a.alphabet, b.alphabet)
	a = a.totalized(alpha)
	b = b.totalized(alpha)

	type pair struct{ x, y State }
	startPair := pair{a.start, b.start}

	d := &DFA{
		alphabet: alpha,
		trans:    []map[rune]State{make(map[rune]State)},
		accept:   bitset.New(1),
	}
	if accept(a.accept.Test(uint(a.start)), b.accept.Test(uint(b.start))) {
		d.accept.Set(0)
	}

	ids := map[pair]State{startPair: 0}
	queue := []pair{startPair}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		cur := ids[p]
		for _, sym := range alpha {
			np := pair{a.trans[p.x][sym], b.trans[p.y][sym]}
			id, seen := ids[np]
			if !seen {
				id = State(len(d.trans))
				ids[np] = id
				d.trans = append(d.trans, make(map[rune]State))
				if accept(a.accept.Test(uint(np.x)), b.accept.Test(uint(np.y))) {
					d.accept.Set(uint(id))
				}
				queue = append(queue, np)
			}
			d.trans[cur][sym] = id
		}
	}

	d.states = len(d.trans)
	return d
}

// totalized returns a DFA total over alpha, which must be a superset of the
// receiver's alphabet. The receiver is returned unchanged when the
// alphabets already match; otherwise missing symbols are routed to an added
// non-accepting sink.
func (d *DFA) totalized(alpha []rune) *DFA {
	if len(alpha) == len(d.alphabet) {
		return d
	}
	sink := State(d.states)
	c := &DFA{
		states:   d.states + 1,
		alphabet: append([]rune(nil), alpha...),
		trans:    make([]map[rune]State, d.states+1),
		start:    d.start,
		accept:   d.accept.Clone(),
	}
	for q := 0; q <= d.states; q++ {
		c.trans[q] = make(map[rune]State, len(alpha))
		for _, sym := range alpha {
			to := sink
			if q < d.states {
				if t, ok := d.trans[q][sym]; ok {
					to = t
				}
			}
			c.trans[q][sym] = to
		}
	}
	return c
}
