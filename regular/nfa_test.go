package regular

import (
	"errors"
	"testing"

	"github.com/bits-and-blooms/bitset"
)

// simulate runs the NFA directly, resolving epsilon transitions, as an
// independent cross-check for subset construction.
func simulate(n *NFA, w string) bool {
	curr := bitset.New(uint(n.states))
	curr.Set(uint(n.start))
	n.closure(curr)
	for _, c := range w {
		next := bitset.New(uint(n.states))
		for q, ok := curr.NextSet(0); ok; q, ok = curr.NextSet(q + 1) {
			for _, to := range n.d(State(q), c) {
				next.Set(uint(to))
			}
		}
		n.closure(next)
		curr = next
	}
	return curr.IntersectionCardinality(n.accept) > 0
}

// ------------------------------------------------------------------- construction

func TestStringNFA(t *testing.T) {
	n := StringNFA("ab")
	if n.states != 3 {
		t.Fatalf("want 3 states got %d", n.states)
	}
	d := FromNFA(n)
	for w, want := range map[string]bool{"ab": true, "": false, "a": false, "abb": false, "ba": false} {
		if got := d.Accept(w); got != want {
			t.Errorf("StringNFA(ab).Accept(%q) = %v, want %v", w, got, want)
		}
	}
}

func TestStringNFAEmpty(t *testing.T) {
	n := StringNFA("")
	if n.states != 1 {
		t.Fatalf("want a single state got %d", n.states)
	}
	d := FromNFA(n)
	if !d.Accept("") || d.Accept("a") {
		t.Fatal("StringNFA(\"\") should accept exactly the empty string")
	}
}

func TestAlphabetNFA(t *testing.T) {
	d := FromNFA(AlphabetNFA([]rune("ab")))
	for w, want := range map[string]bool{"a": true, "b": true, "": false, "ab": false, "c": false} {
		if got := d.Accept(w); got != want {
			t.Errorf("AlphabetNFA(ab).Accept(%q) = %v, want %v", w, got, want)
		}
	}
}

func TestEmptyNFA(t *testing.T) {
	if !EmptyNFA().IsEmpty() {
		t.Fatal("EmptyNFA should have the empty language")
	}
}

// ------------------------------------------------------------------- combinators

func TestConcat(t *testing.T) {
	n, err := StringNFA("a").Concat(StringNFA("b"))
	if err != nil {
		t.Fatalf("concat: %v", err)
	}
	d := FromNFA(n)
	for w, want := range map[string]bool{"ab": true, "a": false, "b": false, "": false, "abb": false} {
		if got := d.Accept(w); got != want {
			t.Errorf("Accept(%q) = %v, want %v", w, got, want)
		}
	}
}

func TestUnion(t *testing.T) {
	n, err := StringNFA("a").Union(StringNFA("bc"))
	if err != nil {
		t.Fatalf("union: %v", err)
	}
	d := FromNFA(n)
	for w, want := range map[string]bool{"a": true, "bc": true, "": false, "abc": false} {
		if got := d.Accept(w); got != want {
			t.Errorf("Accept(%q) = %v, want %v", w, got, want)
		}
	}
}

func TestStar(t *testing.T) {
	d := FromNFA(StringNFA("ab").Star())
	for w, want := range map[string]bool{"": true, "ab": true, "abab": true, "aba": false, "a": false} {
		if got := d.Accept(w); got != want {
			t.Errorf("Accept(%q) = %v, want %v", w, got, want)
		}
	}
}

func TestStarOfEmptyLanguageContainsEpsilon(t *testing.T) {
	n := EmptyNFA().Star()
	if n.IsEmpty() {
		t.Fatal("the star of any language contains the empty string")
	}
	if !FromNFA(n).Accept("") {
		t.Fatal("star should accept the empty string")
	}
}

// ------------------------------------------------------------------- identity

func TestOverlapIsAnError(t *testing.T) {
	n := StringNFA("a")
	if _, err := n.Concat(n); !errors.Is(err, ErrStatesOverlap) {
		t.Fatalf("self concat: want ErrStatesOverlap got %v", err)
	}
	if _, err := n.Union(n); !errors.Is(err, ErrStatesOverlap) {
		t.Fatalf("self union: want ErrStatesOverlap got %v", err)
	}
}

func TestCopyAllowsSelfCombination(t *testing.T) {
	n := StringNFA("a")
	cat, err := n.Concat(n.Copy())
	if err != nil {
		t.Fatalf("concat with copy: %v", err)
	}
	d := FromNFA(cat)
	if !d.Accept("aa") || d.Accept("a") {
		t.Fatal("a concatenated with a copy of a should accept exactly aa")
	}
}

func TestCopyIsStructurallyIdentical(t *testing.T) {
	n := StringNFA("ab").Star()
	c := n.Copy()
	for _, w := range []string{"", "ab", "abab", "aba"} {
		if simulate(n, w) != simulate(c, w) {
			t.Fatalf("copy disagrees with original on %q", w)
		}
	}
	// mutating the copy must not leak into the original
	c.accept.ClearAll()
	if n.IsEmpty() {
		t.Fatal("clearing the copy's accepting set reached the original")
	}
}

// ------------------------------------------------------------------- emptiness

func TestNFAIsEmpty(t *testing.T) {
	if StringNFA("").IsEmpty() {
		t.Fatal("the language {\"\"} is not empty")
	}
	u, err := EmptyNFA().Union(EmptyNFA())
	if err != nil {
		t.Fatalf("union: %v", err)
	}
	if !u.IsEmpty() {
		t.Fatal("the union of two empty languages is empty")
	}
}
