package regular

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
)

// ------------------------------------------------------------------- subset construction

func TestFromNFATotality(t *testing.T) {
	d := MustRegex("a|bc").DFA()
	for q := 0; q < d.states; q++ {
		for _, sym := range d.alphabet {
			if _, ok := d.trans[q][sym]; !ok {
				t.Fatalf("state %d has no successor on %q", q, string(sym))
			}
		}
	}
}

func TestAcceptOutsideAlphabetRejects(t *testing.T) {
	lang := MustRegex("a")
	if lang.Contains("z") {
		t.Fatal("symbol outside the alphabet should reject")
	}
	// the same holds after complement: totality covers the alphabet only
	if lang.Complement().Contains("z") {
		t.Fatal("complement is relative to the automaton's own alphabet")
	}
}

// enumerate all strings over alpha up to length 4
func allWords(alpha string) []string {
	words := []string{""}
	prev := []string{""}
	for l := 0; l < 4; l++ {
		var next []string
		for _, w := range prev {
			for _, c := range alpha {
				next = append(next, w+string(c))
			}
		}
		words = append(words, next...)
		prev = next
	}
	return words
}

func TestSubsetConstructionMatchesNFASimulation(t *testing.T) {
	for _, pat := range []string{"a|b+", "(ab)*", "a?b*", "(a|b)*c", "a**", "(ab|a)*c"} {
		nfa, err := CompileNFA(pat)
		if err != nil {
			t.Fatalf("compile %q: %v", pat, err)
		}
		d := FromNFA(nfa)
		for _, w := range allWords("abc") {
			if got, want := d.Accept(w), simulate(nfa, w); got != want {
				t.Fatalf("pattern %q on %q: DFA %v, NFA simulation %v", pat, w, got, want)
			}
		}
	}
}

// ------------------------------------------------------------------- set operations

func TestComplement(t *testing.T) {
	comp := MustRegex("a").Complement()
	for w, want := range map[string]bool{"": true, "a": false, "aa": true, "aaa": true} {
		if got := comp.Contains(w); got != want {
			t.Errorf("Contains(%q) = %v, want %v", w, got, want)
		}
	}
}

func TestProductIntersectionDifferingAlphabets(t *testing.T) {
	// a* ∩ b* over the union alphabet is exactly the empty string
	inter := MustRegex("a*").DFA().Intersect(MustRegex("b*").DFA())
	for w, want := range map[string]bool{"": true, "a": false, "b": false, "ab": false} {
		if got := inter.Accept(w); got != want {
			t.Errorf("Accept(%q) = %v, want %v", w, got, want)
		}
	}
}

func TestProductUnion(t *testing.T) {
	un := MustRegex("a+").DFA().Union(MustRegex("b+").DFA())
	for w, want := range map[string]bool{"a": true, "bb": true, "": false, "ab": false} {
		if got := un.Accept(w); got != want {
			t.Errorf("Accept(%q) = %v, want %v", w, got, want)
		}
	}
}

// ------------------------------------------------------------------- emptiness

func TestDFAIsEmpty(t *testing.T) {
	if MustRegex("a").DFA().IsEmpty() {
		t.Fatal("the language {a} is not empty")
	}
	inter := MustRegex("a").DFA().Intersect(MustRegex("b").DFA())
	if !inter.IsEmpty() {
		t.Fatal("a ∩ b should be empty")
	}
}

func TestIsEmptyIgnoresUnreachableAcceptingStates(t *testing.T) {
	// state 1 is accepting but not reachable from the start; emptiness is
	// decided by reachability, not by F == ∅
	accept := bitset.New(2)
	accept.Set(1)
	d := &DFA{
		states:   2,
		alphabet: []rune{'a'},
		trans:    []map[rune]State{{'a': 0}, {'a': 1}},
		start:    0,
		accept:   accept,
	}
	if !d.IsEmpty() {
		t.Fatal("a DFA whose accepting states are unreachable is empty")
	}
}
